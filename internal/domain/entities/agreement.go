package entities

import "time"

type AgreementStatus string

const (
	AgreementStatusOpen   AgreementStatus = "open"
	AgreementStatusClosed AgreementStatus = "closed"
)

// Agreement is a payment agreement between a payer and a creditor.
//
// Storage model (DynamoDB):
//   - PK: number (the external contract number, digits only)
//
// Payer and creditor are referenced by their natural keys rather than
// surrogate ids, matching the table layouts of the other repositories.
type Agreement struct {
	Number       string          `json:"number"`
	PayerCPFCNPJ string          `json:"payer_cpf_cnpj"`
	CreditorName string          `json:"creditor_name"`
	Status       AgreementStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
