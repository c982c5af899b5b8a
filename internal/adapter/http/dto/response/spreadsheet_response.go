package response

type ProcessSpreadsheetResponse struct {
	JobID string `json:"job_id"`
}
