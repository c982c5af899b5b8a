package request

type CreateInstallmentRequest struct {
	AgreementNumber string `json:"agreement_number" binding:"required"`
	Number          int    `json:"number" binding:"required"`
	DueDate         string `json:"due_date" binding:"required"`
}
