package entities

import "time"

// Installment is one payment slice of an agreement.
//
// Storage model (DynamoDB):
//   - PK: agreement_number
//   - SK: number
//
// DueDate is a date (no time component); it is persisted as YYYY-MM-DD.
type Installment struct {
	AgreementNumber string    `json:"agreement_number"`
	Number          int       `json:"number"`
	DueDate         time.Time `json:"due_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
