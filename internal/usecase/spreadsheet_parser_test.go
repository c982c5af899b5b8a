package usecase

import (
	"testing"

	"cobranca_facil/internal/infrastructure/logging"
	"cobranca_facil/internal/usecase/interfaces"
)

func TestSanitizeDigits(t *testing.T) {
	cases := map[string]string{
		"123.456.789-01":     "12345678901",
		"12.345.678/0001-99": "12345678000199",
		"CONTRATO 1000":      "1000",
		"":                   "",
		"abc":                "",
	}
	for in, want := range cases {
		if got := sanitizeDigits(in); got != want {
			t.Errorf("sanitizeDigits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractInstallmentNumber(t *testing.T) {
	if n, err := extractInstallmentNumber("3"); err != nil || n != 3 {
		t.Fatalf("plain ordinal: got %d, %v", n, err)
	}
	if n, err := extractInstallmentNumber("2/12"); err != nil || n != 2 {
		t.Fatalf("n/total form: got %d, %v", n, err)
	}
	if _, err := extractInstallmentNumber("abc"); err == nil {
		t.Fatal("expected error for a non-numeric ordinal")
	}
	if _, err := extractInstallmentNumber(""); err == nil {
		t.Fatal("expected error for an empty ordinal")
	}
}

func TestParseDueDate(t *testing.T) {
	got, err := parseDueDate("10/03/2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != 3 || got.Day() != 10 {
		t.Fatalf("unexpected date: %s", got)
	}

	for _, bad := range []string{"2025-03-10", "10/03", "32/01/2025", "01/13/2025", "aa/bb/cccc", ""} {
		if _, err := parseDueDate(bad); err == nil {
			t.Errorf("parseDueDate(%q): expected error", bad)
		}
	}
}

func TestExtractRow(t *testing.T) {
	row := []string{"10/03/2025", "CONTRATO 1000", " Maria Silva ", " Banco Azul ", "123.456.789-01", "2/12"}
	data, err := extractRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.agreementNum != "1000" {
		t.Errorf("agreement: got %q", data.agreementNum)
	}
	if data.cpfCNPJ != "12345678901" || data.phone != "12345678901" {
		t.Errorf("document/phone: got %q/%q", data.cpfCNPJ, data.phone)
	}
	if data.payerName != "Maria Silva" || data.creditorName != "Banco Azul" {
		t.Errorf("names: got %q/%q", data.payerName, data.creditorName)
	}
	if data.installmentNum != 2 || data.dueDateStr != "10/03/2025" {
		t.Errorf("installment/due: got %d/%q", data.installmentNum, data.dueDateStr)
	}

	if _, err := extractRow([]string{"10/03/2025", "1000"}); err == nil {
		t.Fatal("expected error for a short row")
	}
	if _, err := extractRow([]string{"10/03/2025", "1000", "Maria", "Banco", "123", "x"}); err == nil {
		t.Fatal("expected error for an invalid ordinal")
	}
}

func TestExtractRow_PhoneTruncatedFromCNPJ(t *testing.T) {
	row := []string{"10/03/2025", "1000", "ACME LTDA", "Banco Azul", "12.345.678/0001-99", "1"}
	data, err := extractRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.cpfCNPJ != "12345678000199" {
		t.Errorf("document: got %q", data.cpfCNPJ)
	}
	if data.phone != "12345678000" {
		t.Errorf("phone: got %q, want the first 11 digits", data.phone)
	}
}

func TestRowDataMissingRequired(t *testing.T) {
	full := rowData{
		creditorName: "Banco Azul", payerName: "Maria", cpfCNPJ: "123",
		phone: "123", agreementNum: "1000", installmentNum: 1, dueDateStr: "10/03/2025",
	}
	if full.missingRequired() {
		t.Fatal("complete row flagged as missing")
	}

	blank := full
	blank.creditorName = ""
	if !blank.missingRequired() {
		t.Fatal("expected missing creditor to be flagged")
	}

	blank = full
	blank.dueDateStr = ""
	if !blank.missingRequired() {
		t.Fatal("expected missing due date to be flagged")
	}
}

func TestBuildBoletoIndex(t *testing.T) {
	files := []interfaces.StoredFile{
		{Name: "CONTRATO 1000 PARC 1.pdf", Path: "/tmp/a.pdf"},
		{Name: "CONTRATO 1000 PARC 2.pdf", Path: "/tmp/b.pdf"},
		{Name: "2000 PARC 1 - 2a via.pdf", Path: "/tmp/c.pdf"},
		{Name: "sem_padrao.pdf", Path: "/tmp/d.pdf"},
	}

	idx := buildBoletoIndex(files, logging.GetLogger())

	if len(idx) != 2 {
		t.Fatalf("expected 2 agreements indexed, got %d", len(idx))
	}
	if f, ok := idx["1000"][2]; !ok || f.Path != "/tmp/b.pdf" {
		t.Fatalf("agreement 1000 installment 2: got %+v", idx["1000"])
	}
	if f, ok := idx["2000"][1]; !ok || f.Path != "/tmp/c.pdf" {
		t.Fatalf("agreement 2000 installment 1: got %+v", idx["2000"])
	}
	if _, ok := idx[""]; ok {
		t.Fatal("non-matching entry should not be indexed")
	}
}
