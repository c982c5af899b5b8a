package request

type CreateAgreementRequest struct {
	Number       string `json:"number" binding:"required"`
	PayerCPFCNPJ string `json:"payer_cpf_cnpj" binding:"required"`
	CreditorName string `json:"creditor_name" binding:"required"`
}
