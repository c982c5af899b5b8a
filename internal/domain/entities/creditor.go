package entities

import "time"

// Creditor is the institution that owns the debt behind an agreement.
//
// Storage model (DynamoDB):
//   - PK: name
//
// ReissueMargin is the number of days before an installment's due date under
// which a second-copy request triggers an automatic boleto reissue. Creditors
// synthesized by the spreadsheet engine start at 0 and are expected to be
// corrected during the staged review.
//
// Creditors are soft-deleted: agreements keep referencing them by name.
type Creditor struct {
	Name          string    `json:"name"`
	ReissueMargin int       `json:"reissue_margin"`
	Deleted       bool      `json:"deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
