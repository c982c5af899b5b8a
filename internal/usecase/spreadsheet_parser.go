package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cobranca_facil/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Ledger column order. The header row is ignored; data rows follow this fixed
// layout. Columns past the installment number are carried by the export but
// not used by reconciliation.
const (
	colDueDate = iota
	colContract
	colCustomer
	colCreditor
	colCPFCNPJ
	colInstallNum
	colValue
	colPaymentDate
	colPaymentValue
	colInstallmentsQty
)

// ledgerMinColumns is the highest column index reconciliation reads, plus one.
const ledgerMinColumns = colInstallNum + 1

var nonDigits = regexp.MustCompile(`\D`)

// sanitizeDigits strips every non-digit character. Document numbers and
// agreement numbers are normalized this way on both the ledger and the
// archive side so the two match.
func sanitizeDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// extractInstallmentNumber parses an installment ordinal, accepting both a
// plain integer and the "n/total" form (the numerator wins).
func extractInstallmentNumber(s string) (int, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid installment number %q", s)
	}
	return n, nil
}

// parseDueDate converts a DD/MM/YYYY string into a date, rejecting any other
// shape and out-of-range day/month values.
func parseDueDate(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date format: %s", s)
	}
	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date format: %s", s)
	}
	return t, nil
}

// rowData is one ledger row with all keys canonicalized.
type rowData struct {
	creditorName   string
	payerName      string
	cpfCNPJ        string
	phone          string
	agreementNum   string
	installmentNum int
	dueDateStr     string
}

// extractRow canonicalizes a raw CSV record. The due date stays a string here:
// it is only parsed when an installment is synthesized, so a bad date on a row
// that resolves to an existing installment does not fail the row.
func extractRow(row []string) (rowData, error) {
	if len(row) < ledgerMinColumns {
		return rowData{}, fmt.Errorf("short row: %d columns, expected at least %d", len(row), ledgerMinColumns)
	}

	document := sanitizeDigits(row[colCPFCNPJ])
	phone := document
	if len(phone) > 11 {
		phone = phone[:11]
	}

	installmentNum, err := extractInstallmentNumber(strings.TrimSpace(row[colInstallNum]))
	if err != nil {
		return rowData{}, err
	}

	return rowData{
		creditorName:   strings.TrimSpace(row[colCreditor]),
		payerName:      strings.TrimSpace(row[colCustomer]),
		cpfCNPJ:        document,
		phone:          phone,
		agreementNum:   sanitizeDigits(row[colContract]),
		installmentNum: installmentNum,
		dueDateStr:     strings.TrimSpace(row[colDueDate]),
	}, nil
}

func (d rowData) missingRequired() bool {
	return d.creditorName == "" ||
		d.payerName == "" ||
		d.cpfCNPJ == "" ||
		d.phone == "" ||
		d.agreementNum == "" ||
		d.dueDateStr == ""
}

// Archive entries are named "<agreement free text> PARC <ordinal>[...]".
var boletoNamePattern = regexp.MustCompile(`^(.*) PARC (\d+).*`)

// boletoIndex maps agreement number to installment ordinal to the extracted
// document.
type boletoIndex map[string]map[int]interfaces.StoredFile

// buildBoletoIndex indexes the extracted archive by the business keys embedded
// in each filename. Entries that do not match the pattern are skipped with a
// logged warning; they never fail the run.
func buildBoletoIndex(files []interfaces.StoredFile, log *logrus.Logger) boletoIndex {
	idx := boletoIndex{}
	for _, f := range files {
		m := boletoNamePattern.FindStringSubmatch(f.Name)
		if m == nil {
			log.WithField("file", f.Name).Warn("could not extract agreement data from archive entry")
			continue
		}
		agreement := sanitizeDigits(m[1])
		number, err := strconv.Atoi(m[2])
		if err != nil {
			log.WithField("file", f.Name).Warn("could not parse installment number from archive entry")
			continue
		}
		if idx[agreement] == nil {
			idx[agreement] = map[int]interfaces.StoredFile{}
		}
		idx[agreement][number] = f
	}
	return idx
}
