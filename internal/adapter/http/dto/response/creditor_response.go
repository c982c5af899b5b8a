package response

import (
	"time"

	"cobranca_facil/internal/domain/entities"
)

type CreditorResponse struct {
	Name          string    `json:"name"`
	ReissueMargin int       `json:"reissue_margin"`
	Deleted       bool      `json:"deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromCreditor(c entities.Creditor) CreditorResponse {
	return CreditorResponse{
		Name:          c.Name,
		ReissueMargin: c.ReissueMargin,
		Deleted:       c.Deleted,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromCreditors(creditors []entities.Creditor) []CreditorResponse {
	out := make([]CreditorResponse, 0, len(creditors))
	for _, c := range creditors {
		out = append(out, FromCreditor(c))
	}
	return out
}
