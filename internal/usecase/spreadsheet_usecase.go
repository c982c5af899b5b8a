package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cobranca_facil/internal/domain/spreadsheet"
	"cobranca_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNothingToProcess is returned by Process when every ledger row matched
	// fully pre-existing entities: there is no change-set to review, so no job
	// is staged.
	ErrNothingToProcess = errors.New("nothing new to process")
)

// ISpreadsheetUseCase is the spreadsheet reconciliation engine.
//
// Lifecycle: Process ingests an uploaded ledger plus a zip of boleto PDFs,
// cross-references them against the entity store and stages the resulting
// change-set under an opaque job id. Results loads the staged artifact for
// review. SaveResults commits the (possibly human-edited) change-set back into
// the store.
type ISpreadsheetUseCase interface {
	Process(ctx context.Context, ledger io.Reader, archive io.ReaderAt, archiveSize int64) (string, *spreadsheet.Result, error)
	Results(ctx context.Context, jobID string) (*spreadsheet.Result, error)
	SaveResults(ctx context.Context, jobID string, result *spreadsheet.Result) error
}

type SpreadsheetUseCase struct {
	users        interfaces.IUserRepository
	payers       interfaces.IPayerRepository
	creditors    interfaces.ICreditorRepository
	agreements   interfaces.IAgreementRepository
	installments interfaces.IInstallmentRepository
	boletos      interfaces.IBoletoRepository
	storage      interfaces.IMediaStorage
	log          *logrus.Logger
}

var _ ISpreadsheetUseCase = (*SpreadsheetUseCase)(nil)

func NewSpreadsheetUseCase(
	users interfaces.IUserRepository,
	payers interfaces.IPayerRepository,
	creditors interfaces.ICreditorRepository,
	agreements interfaces.IAgreementRepository,
	installments interfaces.IInstallmentRepository,
	boletos interfaces.IBoletoRepository,
	storage interfaces.IMediaStorage,
	log *logrus.Logger,
) *SpreadsheetUseCase {
	return &SpreadsheetUseCase{
		users:        users,
		payers:       payers,
		creditors:    creditors,
		agreements:   agreements,
		installments: installments,
		boletos:      boletos,
		storage:      storage,
		log:          log,
	}
}

// runCache deduplicates store lookups within one Process call. One cache per
// run, owned exclusively by it; every map holds the same node instances the
// graph references, so a key resolved twice yields the same pointer.
type runCache struct {
	payers       map[string]*spreadsheet.Payer
	creditors    map[string]*spreadsheet.Creditor
	agreements   map[string]*spreadsheet.Agreement
	installments map[installmentKey]*spreadsheet.Installment
}

type installmentKey struct {
	agreementNum string
	number       int
}

func newRunCache() *runCache {
	return &runCache{
		payers:       map[string]*spreadsheet.Payer{},
		creditors:    map[string]*spreadsheet.Creditor{},
		agreements:   map[string]*spreadsheet.Agreement{},
		installments: map[installmentKey]*spreadsheet.Installment{},
	}
}

// Process extracts the boleto archive, scans the ledger row by row and builds
// the deduplicated reconciliation graph. Row-level failures are recorded and
// skipped; the scan never aborts mid-file. The graph plus error/warning lists
// are staged to a durable per-job artifact, since commit may run in a later
// process after the human review.
func (u *SpreadsheetUseCase) Process(ctx context.Context, ledger io.Reader, archive io.ReaderAt, archiveSize int64) (string, *spreadsheet.Result, error) {
	jobID := uuid.NewString()
	log := u.log.WithField("job_id", jobID)

	if err := u.storage.ExtractArchive(ctx, jobID, archive, archiveSize); err != nil {
		return "", nil, fmt.Errorf("extracting boleto archive: %w", err)
	}
	if _, err := u.storage.SaveLedger(ctx, jobID, ledger); err != nil {
		return "", nil, fmt.Errorf("saving spreadsheet: %w", err)
	}

	files, err := u.storage.ListBoletos(ctx, jobID)
	if err != nil {
		return "", nil, fmt.Errorf("reading boleto directory: %w", err)
	}
	index := buildBoletoIndex(files, u.log)

	rc, err := u.storage.OpenLedger(ctx, jobID)
	if err != nil {
		return "", nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer rc.Close()

	result := spreadsheet.NewResult()
	cache := newRunCache()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1

	// The header is line 1; data rows are numbered from 2.
	lineNum := 1
	if _, err := reader.Read(); err != nil && err != io.EOF {
		return "", nil, fmt.Errorf("reading spreadsheet header: %w", err)
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			log.WithField("row", lineNum).Error(err)
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", lineNum, err))
			continue
		}
		u.processRow(ctx, row, lineNum, index, cache, result)
	}

	if result.Empty() {
		log.Info("spreadsheet produced no new entities")
		return "", result, ErrNothingToProcess
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("serializing results: %w", err)
	}
	if err := u.storage.SaveResults(ctx, jobID, data); err != nil {
		return "", nil, fmt.Errorf("staging results: %w", err)
	}

	log.WithFields(logrus.Fields{
		"payers":    len(result.Payers),
		"creditors": len(result.Creditors),
		"errors":    len(result.Errors),
		"warnings":  len(result.Warnings),
	}).Info("spreadsheet processed")
	return jobID, result, nil
}

// processRow resolves the row's payer, creditor, agreement and installment
// against cache and store, inserts newly synthesized nodes into the graph and
// attaches the matching boleto document if the archive has one.
//
// A failure partway through leaves the sub-steps that already completed in
// place: the row is recorded as an error but earlier insertions are not rolled
// back.
func (u *SpreadsheetUseCase) processRow(ctx context.Context, row []string, lineNum int, index boletoIndex, cache *runCache, result *spreadsheet.Result) {
	rowErr := func(err error) {
		u.log.WithField("row", lineNum).Error(err)
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", lineNum, err))
	}

	data, err := extractRow(row)
	if err != nil {
		rowErr(err)
		return
	}
	if data.missingRequired() {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d has required fields empty", lineNum))
		return
	}

	payer, isNew, err := u.resolvePayer(ctx, cache, data)
	if err != nil {
		rowErr(err)
		return
	}
	if isNew {
		result.AddPayer(payer)
	}

	creditor, isNew, err := u.resolveCreditor(ctx, cache, data)
	if err != nil {
		rowErr(err)
		return
	}
	if isNew {
		result.AddCreditor(creditor)
	}

	agreement, isNew, err := u.resolveAgreement(ctx, cache, data)
	if err != nil {
		rowErr(err)
		return
	}
	if isNew {
		result.AddAgreement(payer, agreement)
	}

	installment, isNew, cached, err := u.resolveInstallment(ctx, cache, data)
	if err != nil {
		rowErr(err)
		return
	}
	if isNew {
		result.AddInstallment(payer, agreement, installment)
	} else if cached {
		// First resolution wins; a later row with a differing due date only
		// produces a warning. Comparison is best-effort: an unparseable date
		// on this path does not fail the row.
		if due, perr := parseDueDate(data.dueDateStr); perr == nil && !due.Equal(installment.DueDate.Time) {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"row %d: installment %d of agreement %s has conflicting due date %s; keeping %s",
				lineNum, installment.Number, agreement.Number,
				spreadsheet.Date{Time: due}, installment.DueDate,
			))
		}
	}

	// The boleto is attached whenever the archive has a matching document,
	// including on readonly installments: a pre-existing installment can still
	// gain a newly uploaded boleto.
	var boleto *spreadsheet.Boleto
	agreementEntries := index[agreement.Number]
	if len(agreementEntries) == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"row %d: agreement %s has no boletos in the archive", lineNum, agreement.Number))
	} else if f, ok := agreementEntries[installment.Number]; ok {
		boleto = &spreadsheet.Boleto{Path: f.Path}
		u.log.WithFields(logrus.Fields{"agreement": agreement.Number, "installment": installment.Number}).
			Debug("boleto matched for installment")
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"row %d: installment %d of agreement %s has no boleto in the archive",
			lineNum, installment.Number, agreement.Number))
	}
	installment.Boleto = boleto
}

// resolvePayer returns the payer node for the row's document number: the
// cached instance if the key was seen before, a readonly wrapper if the store
// has it, or a freshly synthesized node otherwise. isNew reports synthesis.
func (u *SpreadsheetUseCase) resolvePayer(ctx context.Context, cache *runCache, data rowData) (*spreadsheet.Payer, bool, error) {
	if p, ok := cache.payers[data.cpfCNPJ]; ok {
		return p, false, nil
	}

	dbPayer, err := u.payers.GetByCPFCNPJ(ctx, data.cpfCNPJ)
	if err != nil {
		return nil, false, err
	}

	var payer *spreadsheet.Payer
	isNew := false
	if dbPayer.CPFCNPJ == "" {
		isNew = true
		payer = &spreadsheet.Payer{
			Name:       data.payerName,
			User:       spreadsheet.User{CPFCNPJ: data.cpfCNPJ},
			Phone:      data.phone,
			Agreements: []*spreadsheet.Agreement{},
		}
	} else {
		payer = &spreadsheet.Payer{
			Name:       dbPayer.Name,
			User:       spreadsheet.User{CPFCNPJ: dbPayer.CPFCNPJ, Readonly: true},
			Phone:      dbPayer.Phone,
			Agreements: []*spreadsheet.Agreement{},
			Readonly:   true,
		}
	}
	cache.payers[data.cpfCNPJ] = payer
	return payer, isNew, nil
}

func (u *SpreadsheetUseCase) resolveCreditor(ctx context.Context, cache *runCache, data rowData) (*spreadsheet.Creditor, bool, error) {
	if c, ok := cache.creditors[data.creditorName]; ok {
		return c, false, nil
	}

	dbCreditor, err := u.creditors.GetByName(ctx, data.creditorName)
	if err != nil {
		return nil, false, err
	}

	var creditor *spreadsheet.Creditor
	isNew := false
	if dbCreditor.Name == "" {
		isNew = true
		// Reissue margin defaults to 0; a reviewer fills it in before commit.
		creditor = &spreadsheet.Creditor{Name: data.creditorName}
	} else {
		creditor = &spreadsheet.Creditor{
			Name:          dbCreditor.Name,
			ReissueMargin: dbCreditor.ReissueMargin,
			Readonly:      true,
		}
	}
	cache.creditors[data.creditorName] = creditor
	return creditor, isNew, nil
}

func (u *SpreadsheetUseCase) resolveAgreement(ctx context.Context, cache *runCache, data rowData) (*spreadsheet.Agreement, bool, error) {
	if a, ok := cache.agreements[data.agreementNum]; ok {
		return a, false, nil
	}

	dbAgreement, err := u.agreements.GetByNumber(ctx, data.agreementNum)
	if err != nil {
		return nil, false, err
	}

	var agreement *spreadsheet.Agreement
	isNew := false
	if dbAgreement.Number == "" {
		isNew = true
		agreement = &spreadsheet.Agreement{
			Number:       data.agreementNum,
			PayerCPFCNPJ: data.cpfCNPJ,
			CreditorName: data.creditorName,
			Installments: []*spreadsheet.Installment{},
		}
	} else {
		agreement = &spreadsheet.Agreement{
			Number:       dbAgreement.Number,
			PayerCPFCNPJ: dbAgreement.PayerCPFCNPJ,
			CreditorName: dbAgreement.CreditorName,
			Installments: []*spreadsheet.Installment{},
			Readonly:     true,
		}
	}
	cache.agreements[data.agreementNum] = agreement
	return agreement, isNew, nil
}

// resolveInstallment follows the same pattern; the due date is parsed only
// when a new node is synthesized. cached reports a cache hit, which is when a
// due-date conflict can be detected.
func (u *SpreadsheetUseCase) resolveInstallment(ctx context.Context, cache *runCache, data rowData) (inst *spreadsheet.Installment, isNew, cached bool, err error) {
	key := installmentKey{agreementNum: data.agreementNum, number: data.installmentNum}
	if i, ok := cache.installments[key]; ok {
		return i, false, true, nil
	}

	dbInstallment, err := u.installments.GetByAgreementAndNumber(ctx, data.agreementNum, data.installmentNum)
	if err != nil {
		return nil, false, false, err
	}

	if dbInstallment.AgreementNumber == "" {
		due, err := parseDueDate(data.dueDateStr)
		if err != nil {
			return nil, false, false, err
		}
		isNew = true
		inst = &spreadsheet.Installment{
			AgreementNum: data.agreementNum,
			Number:       data.installmentNum,
			DueDate:      spreadsheet.Date{Time: due},
		}
	} else {
		inst = &spreadsheet.Installment{
			AgreementNum: dbInstallment.AgreementNumber,
			Number:       dbInstallment.Number,
			DueDate:      spreadsheet.Date{Time: dbInstallment.DueDate},
			Readonly:     true,
		}
	}
	cache.installments[key] = inst
	return inst, isNew, false, nil
}

// Results loads the staged artifact for a job. A missing artifact surfaces as
// interfaces.ErrResultsNotFound; an unreadable one as a parse error.
func (u *SpreadsheetUseCase) Results(ctx context.Context, jobID string) (*spreadsheet.Result, error) {
	data, err := u.storage.LoadResults(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var result spreadsheet.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing staged results: %w", err)
	}
	return &result, nil
}
