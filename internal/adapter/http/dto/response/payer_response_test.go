package response

import (
	"testing"
	"time"

	"cobranca_facil/internal/domain/entities"
)

func TestFromPayer(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payer{
		CPFCNPJ:   "12345678901",
		Name:      "Maria Silva",
		Phone:     "11999990000",
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromPayer(p)
	if res.CPFCNPJ != "12345678901" || res.Name != "Maria Silva" || res.Phone != "11999990000" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", res)
	}
}

func TestFromInstallment(t *testing.T) {
	i := entities.Installment{
		AgreementNumber: "1000",
		Number:          2,
		DueDate:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	res := FromInstallment(i)
	if res.AgreementNumber != "1000" || res.Number != 2 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.DueDate != "2025-03-10" {
		t.Fatalf("unexpected due date: %s", res.DueDate)
	}
}
