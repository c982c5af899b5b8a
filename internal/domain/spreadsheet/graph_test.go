package spreadsheet

import (
	"encoding/json"
	"testing"
	"time"
)

func TestResult_Empty(t *testing.T) {
	r := NewResult()
	if !r.Empty() {
		t.Fatal("expected a fresh result to be empty")
	}

	r.Errors = append(r.Errors, "row 2: boom")
	if !r.Empty() {
		t.Fatal("errors alone should not make the result non-empty")
	}

	r.AddCreditor(&Creditor{Name: "Banco Azul"})
	if r.Empty() {
		t.Fatal("expected result with a creditor to be non-empty")
	}
}

func TestResult_AddPayerIdempotent(t *testing.T) {
	r := NewResult()
	first := &Payer{Name: "Maria", User: User{CPFCNPJ: "12345678901"}}
	second := &Payer{Name: "Maria Silva", User: User{CPFCNPJ: "12345678901"}}

	got := r.AddPayer(first)
	if got != first {
		t.Fatal("first insertion should return the inserted instance")
	}

	got = r.AddPayer(second)
	if got != first {
		t.Fatal("re-adding the same document number should return the existing instance")
	}
	if len(r.Payers) != 1 {
		t.Fatalf("expected 1 payer, got %d", len(r.Payers))
	}
}

func TestResult_AddAgreementPullsPayerIn(t *testing.T) {
	r := NewResult()
	payer := &Payer{Name: "Jose", User: User{CPFCNPJ: "98765432100", Readonly: true}, Readonly: true}
	agreement := &Agreement{Number: "1000", PayerCPFCNPJ: "98765432100", CreditorName: "Banco Azul"}

	r.AddAgreement(payer, agreement)

	if len(r.Payers) != 1 {
		t.Fatalf("expected the readonly payer to be pulled into the graph, got %d payers", len(r.Payers))
	}
	if len(r.Payers[0].Agreements) != 1 || r.Payers[0].Agreements[0] != agreement {
		t.Fatal("expected the agreement under the payer subtree")
	}

	// Same number again, even via a different instance.
	dup := &Agreement{Number: "1000"}
	if got := r.AddAgreement(payer, dup); got != agreement {
		t.Fatal("expected dedup by agreement number")
	}
	if len(r.Payers[0].Agreements) != 1 {
		t.Fatalf("expected 1 agreement, got %d", len(r.Payers[0].Agreements))
	}
}

func TestResult_AddInstallmentDedup(t *testing.T) {
	r := NewResult()
	payer := &Payer{User: User{CPFCNPJ: "11122233344"}}
	agreement := &Agreement{Number: "2000"}
	inst := &Installment{AgreementNum: "2000", Number: 1}

	r.AddInstallment(payer, agreement, inst)
	r.AddInstallment(payer, agreement, &Installment{AgreementNum: "2000", Number: 1})
	r.AddInstallment(payer, agreement, &Installment{AgreementNum: "2000", Number: 2})

	if len(r.Payers) != 1 || len(r.Payers[0].Agreements) != 1 {
		t.Fatal("expected parents inserted exactly once")
	}
	installments := r.Payers[0].Agreements[0].Installments
	if len(installments) != 2 {
		t.Fatalf("expected 2 installments, got %d", len(installments))
	}
	if installments[0] != inst {
		t.Fatal("expected the first instance to win the dedup")
	}
}

func TestResult_JSONShape(t *testing.T) {
	r := NewResult()
	due := Date{Time: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}
	payer := &Payer{Name: "Maria", User: User{CPFCNPJ: "12345678901"}, Phone: "12345678901"}
	agreement := &Agreement{Number: "1000", PayerCPFCNPJ: "12345678901", CreditorName: "Banco Azul"}
	r.AddInstallment(payer, agreement, &Installment{AgreementNum: "1000", Number: 1, DueDate: due})

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Payers) != 1 || decoded.Payers[0].User.CPFCNPJ != "12345678901" {
		t.Fatalf("unexpected payers: %+v", decoded.Payers)
	}
	got := decoded.Payers[0].Agreements[0].Installments[0].DueDate
	if !got.Equal(due.Time) {
		t.Fatalf("due date round trip mismatch: %s", got)
	}
}
