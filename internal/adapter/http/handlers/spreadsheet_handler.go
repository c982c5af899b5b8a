package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "cobranca_facil/internal/adapter/http/dto/request"
	response "cobranca_facil/internal/adapter/http/dto/response"
	"cobranca_facil/internal/domain/spreadsheet"
	"cobranca_facil/internal/usecase"
	"cobranca_facil/internal/usecase/interfaces"
	"cobranca_facil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingSpreadsheetFiles = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Both the spreadsheet and the boletos archive are required", http.StatusBadRequest)
	errInvalidResultsPayload   = pkg.NewDomainErrorSimple("INVALID_RESULTS_INPUT", "Invalid results payload", http.StatusBadRequest)
)

// SpreadsheetHandler exposes the spreadsheet reconciliation flow: upload and
// process, review the staged results, then commit them to the database.
type SpreadsheetHandler struct {
	usecase usecase.ISpreadsheetUseCase
}

func NewSpreadsheetHandler(uc usecase.ISpreadsheetUseCase) *SpreadsheetHandler {
	return &SpreadsheetHandler{usecase: uc}
}

// Process receives a multipart upload with the ledger CSV under "spreadsheet"
// and a zip of boleto PDFs under "boletos", runs the reconciliation and stages
// the change-set for review.
//
// @Summary      Process a collections spreadsheet
// @Description  Uploads a ledger CSV plus a zip of boleto PDFs, reconciles them against the database and stages the change-set under a job id.
// @Tags         spreadsheets
// @Accept       multipart/form-data
// @Produce      json
// @Param        spreadsheet  formData  file  true  "Ledger CSV"
// @Param        boletos      formData  file  true  "Zip archive of boleto PDFs"
// @Success      201  {object}  response.ProcessSpreadsheetResponse
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /spreadsheets/process [post]
func (h *SpreadsheetHandler) Process(c *gin.Context) {
	ledger, _, err := c.Request.FormFile("spreadsheet")
	if err != nil {
		c.JSON(errMissingSpreadsheetFiles.HTTPStatus, errMissingSpreadsheetFiles.ToHTTPError())
		return
	}
	defer ledger.Close()

	archive, archiveHeader, err := c.Request.FormFile("boletos")
	if err != nil {
		c.JSON(errMissingSpreadsheetFiles.HTTPStatus, errMissingSpreadsheetFiles.ToHTTPError())
		return
	}
	defer archive.Close()

	jobID, _, err := h.usecase.Process(c.Request.Context(), ledger, archive, archiveHeader.Size)
	if err != nil {
		if errors.Is(err, usecase.ErrNothingToProcess) {
			c.JSON(http.StatusOK, response.MessageResponse{Message: "There is no new information to process"})
			return
		}
		appErr := pkg.NewDomainError("SPREADSHEET_PROCESSING_FAILED", fmt.Sprintf("Processing spreadsheet failed: %v", err), err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ProcessSpreadsheetResponse{JobID: jobID})
}

// Results loads the staged change-set of a previously processed job so a
// reviewer can inspect and edit it before committing.
//
// @Summary      Get staged spreadsheet results
// @Tags         spreadsheets
// @Produce      json
// @Param        job_id  path  string  true  "Job id returned by process"
// @Success      200  {object}  spreadsheet.Result
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /spreadsheets/results/{job_id} [get]
func (h *SpreadsheetHandler) Results(c *gin.Context) {
	jobID := c.Param("job_id")

	result, err := h.usecase.Results(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, interfaces.ErrResultsNotFound) {
			appErr := pkg.NewDomainErrorSimple("RESULTS_NOT_FOUND", "Results not found for the given job id", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("RESULTS_LOAD_FAILED", fmt.Sprintf("Loading results failed: %v", err), err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

// SaveResults commits a reviewed change-set back into the database. The body
// is the staged graph, possibly edited by the reviewer.
//
// @Summary      Commit reviewed spreadsheet results
// @Tags         spreadsheets
// @Accept       json
// @Produce      json
// @Param        job_id  path  string                           true  "Job id returned by process"
// @Param        body    body  request.SaveSpreadsheetRequest  true  "Reviewed change-set"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /spreadsheets/save_results/{job_id} [post]
func (h *SpreadsheetHandler) SaveResults(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.SaveSpreadsheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResultsPayload.HTTPStatus, errInvalidResultsPayload.ToHTTPError())
		return
	}

	result := &spreadsheet.Result{Payers: payload.Payers, Creditors: payload.Creditors}
	if err := h.usecase.SaveResults(c.Request.Context(), jobID, result); err != nil {
		appErr := pkg.NewDomainError("RESULTS_SAVE_FAILED", fmt.Sprintf("Saving results to the database failed: %v", err), err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Results saved successfully to the database"})
}
