package response

import (
	"time"

	"cobranca_facil/internal/domain/entities"
)

type BoletoResponse struct {
	AgreementNumber   string    `json:"agreement_number"`
	InstallmentNumber int       `json:"installment_number"`
	PDFPath           string    `json:"pdf_path"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromBoleto(b entities.Boleto) BoletoResponse {
	return BoletoResponse{
		AgreementNumber:   b.AgreementNumber,
		InstallmentNumber: b.InstallmentNumber,
		PDFPath:           b.PDFPath,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
