package response

import (
	"time"

	"cobranca_facil/internal/domain/entities"
)

type PayerResponse struct {
	CPFCNPJ   string    `json:"cpf_cnpj"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPayer(p entities.Payer) PayerResponse {
	return PayerResponse{
		CPFCNPJ:   p.CPFCNPJ,
		Name:      p.Name,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromPayers(payers []entities.Payer) []PayerResponse {
	out := make([]PayerResponse, 0, len(payers))
	for _, p := range payers {
		out = append(out, FromPayer(p))
	}
	return out
}
