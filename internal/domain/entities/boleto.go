package entities

import "time"

type BoletoStatus string

const (
	BoletoStatusPending BoletoStatus = "pending"
	BoletoStatusPaid    BoletoStatus = "paid"
)

// Boleto is the payment slip document of a single installment.
//
// Storage model (DynamoDB):
//   - PK: agreement_number
//   - SK: installment_number
//
// One boleto per installment. PDFPath points into the media storage area where
// the document bytes were persisted on commit.
type Boleto struct {
	AgreementNumber   string       `json:"agreement_number"`
	InstallmentNumber int          `json:"installment_number"`
	PDFPath           string       `json:"pdf_path"`
	Status            BoletoStatus `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
