package request

type CreatePayerRequest struct {
	CPFCNPJ string `json:"cpf_cnpj" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
}

type UpdatePayerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}
