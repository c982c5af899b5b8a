package entities

import "time"

// Payer is a debtor with one or more agreements under collection.
//
// Storage model (DynamoDB):
//   - PK: cpf_cnpj (same key as the payer's User; one payer per login identity)
//
// Phone is stored as digits only and is used for login-code delivery.
type Payer struct {
	CPFCNPJ   string    `json:"cpf_cnpj"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
