package response

import (
	"time"

	"cobranca_facil/internal/domain/entities"
)

type InstallmentResponse struct {
	AgreementNumber string    `json:"agreement_number"`
	Number          int       `json:"number"`
	DueDate         string    `json:"due_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromInstallment(i entities.Installment) InstallmentResponse {
	return InstallmentResponse{
		AgreementNumber: i.AgreementNumber,
		Number:          i.Number,
		DueDate:         i.DueDate.Format("2006-01-02"),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func FromInstallments(installments []entities.Installment) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(installments))
	for _, i := range installments {
		out = append(out, FromInstallment(i))
	}
	return out
}
