package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/domain/spreadsheet"

	"go.uber.org/mock/gomock"
)

// stageBoletoFile drops a fake extracted PDF on disk and returns its path, as
// Process would have left it under the job's boletos directory.
func stageBoletoFile(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "job-1", "boletos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestSpreadsheetUseCase_SaveResults_FullWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	boletoPath := stageBoletoFile(t, "1000 PARC 1.pdf")
	due := spreadsheet.NewDate(2025, time.March, 10)
	result := &spreadsheet.Result{
		Creditors: []*spreadsheet.Creditor{{Name: "Banco Azul", ReissueMargin: 5}},
		Payers: []*spreadsheet.Payer{{
			Name:  "Maria Silva",
			User:  spreadsheet.User{CPFCNPJ: "12345678901"},
			Phone: "12345678901",
			Agreements: []*spreadsheet.Agreement{{
				Number:       "1000",
				PayerCPFCNPJ: "12345678901",
				CreditorName: "Banco Azul",
				Installments: []*spreadsheet.Installment{{
					AgreementNum: "1000",
					Number:       1,
					DueDate:      due,
					Boleto:       &spreadsheet.Boleto{Path: boletoPath},
				}},
			}},
		}},
	}

	m.creditors.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Creditor) (entities.Creditor, error) {
			if c.Name != "Banco Azul" || c.ReissueMargin != 5 {
				t.Fatalf("unexpected creditor: %+v", c)
			}
			return c, nil
		})
	m.users.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.User{}, nil)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u entities.User) (entities.User, error) {
			if u.CPFCNPJ != "12345678901" || !u.Active {
				t.Fatalf("unexpected user: %+v", u)
			}
			return u, nil
		})
	m.payers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payer) (entities.Payer, error) {
			if p.CPFCNPJ != "12345678901" || p.Name != "Maria Silva" {
				t.Fatalf("unexpected payer: %+v", p)
			}
			return p, nil
		})
	m.agreements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
			if a.Number != "1000" || a.PayerCPFCNPJ != "12345678901" ||
				a.CreditorName != "Banco Azul" || a.Status != entities.AgreementStatusOpen {
				t.Fatalf("unexpected agreement: %+v", a)
			}
			return a, nil
		})
	m.installments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i entities.Installment) (entities.Installment, error) {
			if i.AgreementNumber != "1000" || i.Number != 1 || !i.DueDate.Equal(due.Time) {
				t.Fatalf("unexpected installment: %+v", i)
			}
			return i, nil
		})
	m.boletos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
			if b.AgreementNumber != "1000" || b.InstallmentNumber != 1 || b.Status != entities.BoletoStatusPending {
				t.Fatalf("unexpected boleto: %+v", b)
			}
			if b.PDFPath == "" || b.PDFPath == boletoPath {
				t.Fatalf("expected the pdf copied into the permanent area, got %q", b.PDFPath)
			}
			return b, nil
		})

	if err := uc.SaveResults(context.Background(), "job-1", result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSpreadsheetUseCase_SaveResults_DeletedSubtreeSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	result := &spreadsheet.Result{
		Creditors: []*spreadsheet.Creditor{{Name: "Banco Azul", Deleted: true}},
		Payers: []*spreadsheet.Payer{
			{
				Name:    "Maria Silva",
				User:    spreadsheet.User{CPFCNPJ: "12345678901"},
				Deleted: true,
				Agreements: []*spreadsheet.Agreement{{
					Number:       "1000",
					Installments: []*spreadsheet.Installment{{AgreementNum: "1000", Number: 1}},
				}},
			},
			{
				Name: "Jose Souza",
				User: spreadsheet.User{CPFCNPJ: "98765432100"},
				Agreements: []*spreadsheet.Agreement{{
					Number:  "2000",
					Deleted: true,
					Installments: []*spreadsheet.Installment{{
						AgreementNum: "2000", Number: 1,
						Boleto: &spreadsheet.Boleto{Path: "/nowhere.pdf"},
					}},
				}},
			},
		},
	}

	// Only the surviving payer is written; deleted subtrees produce no calls,
	// not even for their boletos.
	m.users.EXPECT().GetByCPFCNPJ(gomock.Any(), "98765432100").Return(entities.User{CPFCNPJ: "98765432100"}, nil)
	m.payers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payer) (entities.Payer, error) {
			if p.CPFCNPJ != "98765432100" {
				t.Fatalf("unexpected payer: %+v", p)
			}
			return p, nil
		})

	if err := uc.SaveResults(context.Background(), "job-1", result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSpreadsheetUseCase_SaveResults_ReadonlyResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	boletoPath := stageBoletoFile(t, "1000 PARC 2.pdf")
	result := &spreadsheet.Result{
		Creditors: []*spreadsheet.Creditor{{Name: "Banco Azul", ReissueMargin: 5, Readonly: true}},
		Payers: []*spreadsheet.Payer{{
			Name:     "Maria Silva",
			User:     spreadsheet.User{CPFCNPJ: "12345678901", Readonly: true},
			Readonly: true,
			Agreements: []*spreadsheet.Agreement{{
				Number:   "1000",
				Readonly: true,
				Installments: []*spreadsheet.Installment{{
					AgreementNum: "1000",
					Number:       2,
					Readonly:     true,
					Boleto:       &spreadsheet.Boleto{Path: boletoPath},
				}},
			}},
		}},
	}

	// Readonly nodes are looked up, never created. The boleto under the
	// readonly installment is still written.
	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Azul").
		Return(entities.Creditor{Name: "Banco Azul"}, nil)
	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
		Return(entities.Payer{CPFCNPJ: "12345678901"}, nil)
	m.agreements.EXPECT().GetByNumber(gomock.Any(), "1000").
		Return(entities.Agreement{Number: "1000"}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 2).
		Return(entities.Installment{AgreementNumber: "1000", Number: 2}, nil)
	m.boletos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
			if b.AgreementNumber != "1000" || b.InstallmentNumber != 2 {
				t.Fatalf("unexpected boleto: %+v", b)
			}
			return b, nil
		})

	if err := uc.SaveResults(context.Background(), "job-1", result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSpreadsheetUseCase_SaveResults_ReadonlyCreditorMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	result := &spreadsheet.Result{
		Creditors: []*spreadsheet.Creditor{{Name: "Banco Sumido", Readonly: true}},
	}

	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Sumido").Return(entities.Creditor{}, nil)

	err := uc.SaveResults(context.Background(), "job-1", result)
	if err == nil || !strings.Contains(err.Error(), "creditor Banco Sumido not found") {
		t.Fatalf("expected a not-found error, got %v", err)
	}
}

func TestSpreadsheetUseCase_SaveResults_CreateFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	result := &spreadsheet.Result{
		Creditors: []*spreadsheet.Creditor{{Name: "Banco Azul"}},
		Payers: []*spreadsheet.Payer{{
			Name: "Maria Silva",
			User: spreadsheet.User{CPFCNPJ: "12345678901"},
		}},
	}

	m.creditors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Creditor{}, errors.New("conditional check failed"))

	// The walk stops at the first failure; no payer calls happen.
	err := uc.SaveResults(context.Background(), "job-1", result)
	if err == nil || !strings.Contains(err.Error(), "creating creditor Banco Azul") {
		t.Fatalf("expected the creditor create error surfaced, got %v", err)
	}
}
