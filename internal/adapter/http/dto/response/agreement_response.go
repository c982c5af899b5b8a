package response

import (
	"time"

	"cobranca_facil/internal/domain/entities"
)

type AgreementResponse struct {
	Number       string    `json:"number"`
	PayerCPFCNPJ string    `json:"payer_cpf_cnpj"`
	CreditorName string    `json:"creditor_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		Number:       a.Number,
		PayerCPFCNPJ: a.PayerCPFCNPJ,
		CreditorName: a.CreditorName,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromAgreements(agreements []entities.Agreement) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(agreements))
	for _, a := range agreements {
		out = append(out, FromAgreement(a))
	}
	return out
}
