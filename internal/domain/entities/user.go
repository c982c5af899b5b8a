package entities

import "time"

// User is the login identity of a payer, keyed by CPF/CNPJ.
//
// Storage model (DynamoDB):
//   - PK: cpf_cnpj
//
// Users carry no password: access is granted through one-time login codes
// delivered out of band, which is outside this service's scope.
type User struct {
	CPFCNPJ   string    `json:"cpf_cnpj"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
