package request

import "cobranca_facil/internal/domain/spreadsheet"

// SaveSpreadsheetRequest is the reviewed change-set posted back for commit.
// The shape is exactly what GET results returned, with reviewer edits applied
// (deleted flags, creditor reissue margins, scalar fixes).
type SaveSpreadsheetRequest struct {
	Payers    []*spreadsheet.Payer    `json:"payers" binding:"required"`
	Creditors []*spreadsheet.Creditor `json:"creditors" binding:"required"`
}
