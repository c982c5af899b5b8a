package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/infrastructure/logging"
	"cobranca_facil/internal/infrastructure/storage"
	"cobranca_facil/internal/usecase/interfaces"
	mock_interfaces "cobranca_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const ledgerHeader = "Vencimento,Contrato,Cliente,Credor,CPF/CNPJ,Parcela\n"

type engineMocks struct {
	users        *mock_interfaces.MockIUserRepository
	payers       *mock_interfaces.MockIPayerRepository
	creditors    *mock_interfaces.MockICreditorRepository
	agreements   *mock_interfaces.MockIAgreementRepository
	installments *mock_interfaces.MockIInstallmentRepository
	boletos      *mock_interfaces.MockIBoletoRepository
}

func newEngine(t *testing.T, ctrl *gomock.Controller) (*SpreadsheetUseCase, engineMocks, *storage.MediaStorage) {
	t.Helper()
	m := engineMocks{
		users:        mock_interfaces.NewMockIUserRepository(ctrl),
		payers:       mock_interfaces.NewMockIPayerRepository(ctrl),
		creditors:    mock_interfaces.NewMockICreditorRepository(ctrl),
		agreements:   mock_interfaces.NewMockIAgreementRepository(ctrl),
		installments: mock_interfaces.NewMockIInstallmentRepository(ctrl),
		boletos:      mock_interfaces.NewMockIBoletoRepository(ctrl),
	}
	media := storage.NewMediaStorageAt(t.TempDir())
	uc := NewSpreadsheetUseCase(m.users, m.payers, m.creditors, m.agreements, m.installments, m.boletos, media, logging.GetLogger())
	return uc, m, media
}

// makeZip builds an in-memory archive with one empty PDF per entry name.
func makeZip(t *testing.T, names ...string) (*bytes.Reader, int64) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry: %v", err)
		}
		if _, err := w.Write([]byte("%PDF-1.4 " + name)); err != nil {
			t.Fatalf("writing zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return bytes.NewReader(buf.Bytes()), int64(buf.Len())
}

func TestSpreadsheetUseCase_Process_AllNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil)
	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Azul").Return(entities.Creditor{}, nil)
	m.agreements.EXPECT().GetByNumber(gomock.Any(), "1000").Return(entities.Agreement{}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 1).Return(entities.Installment{}, nil)

	ledger := strings.NewReader(ledgerHeader +
		"10/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1/12\n")
	archive, size := makeZip(t, "CONTRATO 1000 PARC 1.pdf")

	jobID, result, err := uc.Process(context.Background(), ledger, archive, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobID == "" {
		t.Fatal("expected a job id")
	}

	if len(result.Payers) != 1 || len(result.Creditors) != 1 {
		t.Fatalf("unexpected graph: %d payers, %d creditors", len(result.Payers), len(result.Creditors))
	}
	payer := result.Payers[0]
	if payer.Readonly || payer.User.CPFCNPJ != "12345678901" || payer.Phone != "12345678901" {
		t.Fatalf("unexpected payer: %+v", payer)
	}
	if result.Creditors[0].Readonly || result.Creditors[0].ReissueMargin != 0 {
		t.Fatalf("unexpected creditor: %+v", result.Creditors[0])
	}
	inst := payer.Agreements[0].Installments[0]
	if inst.Readonly || inst.Number != 1 {
		t.Fatalf("unexpected installment: %+v", inst)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !inst.DueDate.Equal(want) {
		t.Fatalf("due date: got %s", inst.DueDate)
	}
	if inst.Boleto == nil || inst.Boleto.Path == "" {
		t.Fatal("expected the matching boleto attached")
	}
	if len(result.Errors) != 0 || len(result.Warnings) != 0 {
		t.Fatalf("unexpected diagnostics: %+v %+v", result.Errors, result.Warnings)
	}

	// The staged artifact must round trip through Results.
	loaded, err := uc.Results(context.Background(), jobID)
	if err != nil {
		t.Fatalf("loading staged results: %v", err)
	}
	if len(loaded.Payers) != 1 || loaded.Payers[0].Agreements[0].Installments[0].Boleto == nil {
		t.Fatalf("staged artifact mismatch: %+v", loaded)
	}
}

func TestSpreadsheetUseCase_Process_DedupAcrossRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	// Each key resolves against the store exactly once; later rows hit the cache.
	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil).Times(1)
	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Azul").Return(entities.Creditor{}, nil).Times(1)
	m.agreements.EXPECT().GetByNumber(gomock.Any(), "1000").Return(entities.Agreement{}, nil).Times(1)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 1).Return(entities.Installment{}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 2).Return(entities.Installment{}, nil)

	ledger := strings.NewReader(ledgerHeader +
		"10/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1/12\n" +
		"10/04/2025,1000,Maria Silva,Banco Azul,123.456.789-01,2/12\n")
	archive, size := makeZip(t, "1000 PARC 1.pdf", "1000 PARC 2.pdf")

	_, result, err := uc.Process(context.Background(), ledger, archive, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Payers) != 1 {
		t.Fatalf("expected 1 payer, got %d", len(result.Payers))
	}
	agreements := result.Payers[0].Agreements
	if len(agreements) != 1 || len(agreements[0].Installments) != 2 {
		t.Fatalf("expected 1 agreement with 2 installments, got %+v", agreements)
	}
}

func TestSpreadsheetUseCase_Process_ReadonlyPayerPulledIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
		Return(entities.Payer{CPFCNPJ: "12345678901", Name: "Maria Silva", Phone: "11999990000"}, nil)
	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Azul").
		Return(entities.Creditor{Name: "Banco Azul", ReissueMargin: 5}, nil)
	m.agreements.EXPECT().GetByNumber(gomock.Any(), "1000").Return(entities.Agreement{}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 1).Return(entities.Installment{}, nil)

	ledger := strings.NewReader(ledgerHeader +
		"10/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1\n")
	archive, size := makeZip(t, "1000 PARC 1.pdf")

	_, result, err := uc.Process(context.Background(), ledger, archive, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The readonly payer enters the graph only because its agreement is new;
	// the stored phone wins over the ledger-derived one.
	if len(result.Payers) != 1 || !result.Payers[0].Readonly {
		t.Fatalf("expected one readonly payer, got %+v", result.Payers)
	}
	if result.Payers[0].Phone != "11999990000" {
		t.Fatalf("expected the stored phone, got %q", result.Payers[0].Phone)
	}
	if !result.Payers[0].User.Readonly {
		t.Fatal("expected the user marked readonly")
	}
	if result.Payers[0].Agreements[0].Readonly {
		t.Fatal("the new agreement must not be readonly")
	}
	// The existing creditor is never inserted into the flat creditor set.
	if len(result.Creditors) != 0 {
		t.Fatalf("expected no creditors, got %+v", result.Creditors)
	}
}

func TestSpreadsheetUseCase_Process_NothingNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, media := newEngine(t, ctrl)

	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
		Return(entities.Payer{CPFCNPJ: "12345678901", Name: "Maria Silva"}, nil)
	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Azul").
		Return(entities.Creditor{Name: "Banco Azul"}, nil)
	m.agreements.EXPECT().GetByNumber(gomock.Any(), "1000").
		Return(entities.Agreement{Number: "1000", PayerCPFCNPJ: "12345678901", CreditorName: "Banco Azul"}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 1).
		Return(entities.Installment{AgreementNumber: "1000", Number: 1, DueDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}, nil)

	ledger := strings.NewReader(ledgerHeader +
		"10/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1\n")
	archive, size := makeZip(t, "1000 PARC 1.pdf")

	jobID, result, err := uc.Process(context.Background(), ledger, archive, size)
	if !errors.Is(err, ErrNothingToProcess) {
		t.Fatalf("expected ErrNothingToProcess, got %v", err)
	}
	if jobID != "" {
		t.Fatalf("expected no job id, got %q", jobID)
	}
	if result == nil || !result.Empty() {
		t.Fatalf("expected an empty result, got %+v", result)
	}

	// Nothing may be staged for a degenerate run.
	if _, err := media.LoadResults(context.Background(), jobID); !errors.Is(err, interfaces.ErrResultsNotFound) {
		t.Fatalf("expected no staged artifact, got %v", err)
	}
}

func TestSpreadsheetUseCase_Process_RowFailuresAndWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	// Row 2: fine. Row 3: short. Row 4: required field empty (no creditor).
	// Row 5: new installment with an unparseable due date; the payer and
	// agreement resolved before the failure stay in the graph.
	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil)
	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Azul").Return(entities.Creditor{}, nil)
	m.agreements.EXPECT().GetByNumber(gomock.Any(), "1000").Return(entities.Agreement{}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 1).Return(entities.Installment{}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 3).Return(entities.Installment{}, nil)

	ledger := strings.NewReader(ledgerHeader +
		"10/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1/12\n" +
		"10/03/2025,1000\n" +
		"10/04/2025,1000,Maria Silva,,123.456.789-01,2/12\n" +
		"bogus,1000,Maria Silva,Banco Azul,123.456.789-01,3/12\n")
	archive, size := makeZip(t, "1000 PARC 1.pdf")

	_, result, err := uc.Process(context.Background(), ledger, archive, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Errors) != 3 {
		t.Fatalf("expected 3 row errors, got %+v", result.Errors)
	}
	if !strings.HasPrefix(result.Errors[0], "row 3:") {
		t.Fatalf("unexpected first error: %s", result.Errors[0])
	}
	if result.Errors[1] != "row 4 has required fields empty" {
		t.Fatalf("unexpected second error: %s", result.Errors[1])
	}
	if !strings.HasPrefix(result.Errors[2], "row 5:") || !strings.Contains(result.Errors[2], "invalid date format") {
		t.Fatalf("unexpected third error: %s", result.Errors[2])
	}

	// The valid row still produced its subtree.
	if len(result.Payers) != 1 || len(result.Payers[0].Agreements[0].Installments) != 1 {
		t.Fatalf("expected the valid row's graph, got %+v", result.Payers)
	}
}

func TestSpreadsheetUseCase_Process_BoletoWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), gomock.Any()).Return(entities.Payer{}, nil).AnyTimes()
	m.creditors.EXPECT().GetByName(gomock.Any(), gomock.Any()).Return(entities.Creditor{}, nil).AnyTimes()
	m.agreements.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(entities.Agreement{}, nil).AnyTimes()
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Installment{}, nil).AnyTimes()

	// Agreement 1000 has a document for installment 1 only; agreement 2000 has
	// none at all.
	ledger := strings.NewReader(ledgerHeader +
		"10/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1/12\n" +
		"10/04/2025,1000,Maria Silva,Banco Azul,123.456.789-01,2/12\n" +
		"10/03/2025,2000,Jose Souza,Banco Azul,987.654.321-00,1/6\n")
	archive, size := makeZip(t, "1000 PARC 1.pdf")

	_, result, err := uc.Process(context.Background(), ledger, archive, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %+v", result.Warnings)
	}
	if result.Warnings[0] != "row 3: installment 2 of agreement 1000 has no boleto in the archive" {
		t.Fatalf("unexpected warning: %s", result.Warnings[0])
	}
	if result.Warnings[1] != "row 4: agreement 2000 has no boletos in the archive" {
		t.Fatalf("unexpected warning: %s", result.Warnings[1])
	}
}

func TestSpreadsheetUseCase_Process_ConflictingDueDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m, _ := newEngine(t, ctrl)

	m.payers.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil)
	m.creditors.EXPECT().GetByName(gomock.Any(), "Banco Azul").Return(entities.Creditor{}, nil)
	m.agreements.EXPECT().GetByNumber(gomock.Any(), "1000").Return(entities.Agreement{}, nil)
	m.installments.EXPECT().GetByAgreementAndNumber(gomock.Any(), "1000", 1).Return(entities.Installment{}, nil).Times(1)

	ledger := strings.NewReader(ledgerHeader +
		"10/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1/12\n" +
		"11/03/2025,1000,Maria Silva,Banco Azul,123.456.789-01,1/12\n")
	archive, size := makeZip(t, "1000 PARC 1.pdf")

	_, result, err := uc.Process(context.Background(), ledger, archive, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First resolution wins; the later row only warns.
	inst := result.Payers[0].Agreements[0].Installments[0]
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !inst.DueDate.Equal(want) {
		t.Fatalf("expected the first due date kept, got %s", inst.DueDate)
	}
	if len(result.Warnings) != 1 ||
		result.Warnings[0] != "row 3: installment 1 of agreement 1000 has conflicting due date 2025-03-11; keeping 2025-03-10" {
		t.Fatalf("unexpected warnings: %+v", result.Warnings)
	}
}

func TestSpreadsheetUseCase_Process_BadArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _ := newEngine(t, ctrl)

	garbage := bytes.NewReader([]byte("not a zip"))
	_, _, err := uc.Process(context.Background(), strings.NewReader(ledgerHeader), garbage, int64(garbage.Len()))
	if err == nil || !strings.Contains(err.Error(), "extracting boleto archive") {
		t.Fatalf("expected an archive extraction error, got %v", err)
	}
}

func TestSpreadsheetUseCase_Results(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, media := newEngine(t, ctrl)

	t.Run("missing artifact", func(t *testing.T) {
		_, err := uc.Results(context.Background(), "no-such-job")
		if !errors.Is(err, interfaces.ErrResultsNotFound) {
			t.Fatalf("expected ErrResultsNotFound, got %v", err)
		}
	})

	t.Run("corrupt artifact", func(t *testing.T) {
		if err := media.SaveResults(context.Background(), "job-1", []byte("{broken")); err != nil {
			t.Fatalf("staging: %v", err)
		}
		_, err := uc.Results(context.Background(), "job-1")
		if err == nil || !strings.Contains(err.Error(), "parsing staged results") {
			t.Fatalf("expected a parse error, got %v", err)
		}
	})

	t.Run("edited artifact", func(t *testing.T) {
		// The reviewer may have set deleted flags and filled margins in.
		doc := `{"payers":[{"name":"Maria","user":{"cpf_cnpj":"123","readonly":false},"phone":"123","agreements":[],"readonly":false,"deleted":true}],"creditors":[{"name":"Banco Azul","reissue_margin":7,"readonly":false,"deleted":false}],"errors":[],"warnings":[]}`
		if err := media.SaveResults(context.Background(), "job-2", []byte(doc)); err != nil {
			t.Fatalf("staging: %v", err)
		}
		result, err := uc.Results(context.Background(), "job-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Payers[0].Deleted || result.Creditors[0].ReissueMargin != 7 {
			t.Fatalf("edited fields lost: %+v", result)
		}
	})
}
