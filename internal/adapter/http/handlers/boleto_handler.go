package handlers

import (
	"errors"
	"io"
	"net/http"

	response "cobranca_facil/internal/adapter/http/dto/response"
	"cobranca_facil/internal/usecase"
	"cobranca_facil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBoletoUpload = pkg.NewDomainErrorSimple("INVALID_BOLETO_UPLOAD", "A boleto PDF file is required", http.StatusBadRequest)
)

// BoletoHandler handles HTTP requests for boletos.
type BoletoHandler struct {
	usecase usecase.IBoletoUseCase
}

func NewBoletoHandler(uc usecase.IBoletoUseCase) *BoletoHandler {
	return &BoletoHandler{usecase: uc}
}

// Create receives the boleto PDF as a multipart upload under "pdf" and
// registers it against the installment addressed by the path.
//
// @Summary      Upload a boleto for an installment
// @Tags         boletos
// @Accept       multipart/form-data
// @Produce      json
// @Param        agreement_number  path      string  true  "Agreement number"
// @Param        number            path      int     true  "Installment number"
// @Param        pdf               formData  file    true  "Boleto PDF"
// @Success      201  {object}  response.BoletoResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /boletos/{agreement_number}/{number} [post]
func (h *BoletoHandler) Create(c *gin.Context) {
	number, err := parseIntParam(c, "number")
	if err != nil {
		c.JSON(errInvalidBoletoUpload.HTTPStatus, errInvalidBoletoUpload.ToHTTPError())
		return
	}

	file, _, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(errInvalidBoletoUpload.HTTPStatus, errInvalidBoletoUpload.ToHTTPError())
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errInvalidBoletoUpload.HTTPStatus, errInvalidBoletoUpload.ToHTTPError())
		return
	}

	boleto, err := h.usecase.Create(c.Request.Context(), c.Param("agreement_number"), number, pdf)
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBoleto(boleto))
}

// @Summary      Get the boleto of an installment
// @Tags         boletos
// @Produce      json
// @Param        agreement_number  path  string  true  "Agreement number"
// @Param        number            path  int     true  "Installment number"
// @Success      200  {object}  response.BoletoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /boletos/{agreement_number}/{number} [get]
func (h *BoletoHandler) Get(c *gin.Context) {
	number, err := parseIntParam(c, "number")
	if err != nil {
		c.JSON(errInvalidBoletoUpload.HTTPStatus, errInvalidBoletoUpload.ToHTTPError())
		return
	}

	boleto, err := h.usecase.GetByInstallment(c.Request.Context(), c.Param("agreement_number"), number)
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoleto(boleto))
}

// @Summary      Mark a boleto as paid
// @Tags         boletos
// @Produce      json
// @Param        agreement_number  path  string  true  "Agreement number"
// @Param        number            path  int     true  "Installment number"
// @Success      200  {object}  response.BoletoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /boletos/{agreement_number}/{number}/pay [patch]
func (h *BoletoHandler) MarkPaid(c *gin.Context) {
	number, err := parseIntParam(c, "number")
	if err != nil {
		c.JSON(errInvalidBoletoUpload.HTTPStatus, errInvalidBoletoUpload.ToHTTPError())
		return
	}

	boleto, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("agreement_number"), number)
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoleto(boleto))
}

func mapBoletoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgreementNumber), errors.Is(err, usecase.ErrInvalidInstallmentNumber), errors.Is(err, usecase.ErrInvalidBoletoPDF):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBoletoAlreadyExists):
		return pkg.NewDomainErrorSimple("BOLETO_ALREADY_EXISTS", "Boleto already exists for this installment", http.StatusConflict)
	case errors.Is(err, usecase.ErrBoletoNotFound):
		return pkg.NewDomainErrorSimple("BOLETO_NOT_FOUND", "Boleto not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
