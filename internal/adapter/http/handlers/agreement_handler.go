package handlers

import (
	"errors"
	"net/http"

	request "cobranca_facil/internal/adapter/http/dto/request"
	response "cobranca_facil/internal/adapter/http/dto/response"
	"cobranca_facil/internal/usecase"
	"cobranca_facil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAgreementPayload = pkg.NewDomainErrorSimple("INVALID_AGREEMENT_INPUT", "Invalid agreement payload", http.StatusBadRequest)
)

// AgreementHandler handles HTTP requests for agreements.
type AgreementHandler struct {
	usecase usecase.IAgreementUseCase
}

func NewAgreementHandler(uc usecase.IAgreementUseCase) *AgreementHandler {
	return &AgreementHandler{usecase: uc}
}

// @Summary      Create an agreement
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateAgreementRequest  true  "Agreement"
// @Success      201  {object}  response.AgreementResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /agreements [post]
func (h *AgreementHandler) Create(c *gin.Context) {
	var payload request.CreateAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAgreementPayload.HTTPStatus, errInvalidAgreementPayload.ToHTTPError())
		return
	}

	agreement, err := h.usecase.Create(c.Request.Context(), payload.Number, payload.PayerCPFCNPJ, payload.CreditorName)
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAgreement(agreement))
}

// @Summary      Get an agreement by number
// @Tags         agreements
// @Produce      json
// @Param        number  path  string  true  "Agreement number"
// @Success      200  {object}  response.AgreementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /agreements/{number} [get]
func (h *AgreementHandler) Get(c *gin.Context) {
	agreement, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}

// @Summary      List agreements of a payer
// @Tags         agreements
// @Produce      json
// @Param        cpf_cnpj  query  string  true  "Payer CPF/CNPJ"
// @Success      200  {array}  response.AgreementResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /agreements [get]
func (h *AgreementHandler) ListByPayer(c *gin.Context) {
	cpfCNPJ := c.Query("cpf_cnpj")
	if cpfCNPJ == "" {
		c.JSON(errInvalidAgreementPayload.HTTPStatus, errInvalidAgreementPayload.ToHTTPError())
		return
	}

	agreements, err := h.usecase.ListByPayer(c.Request.Context(), cpfCNPJ)
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgreements(agreements))
}

// @Summary      Close an agreement
// @Tags         agreements
// @Produce      json
// @Param        number  path  string  true  "Agreement number"
// @Success      200  {object}  response.AgreementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /agreements/{number}/close [patch]
func (h *AgreementHandler) Close(c *gin.Context) {
	agreement, err := h.usecase.Close(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}

func mapAgreementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgreementNumber), errors.Is(err, usecase.ErrInvalidCPFCNPJ), errors.Is(err, usecase.ErrInvalidCreditorName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAgreementAlreadyExists):
		return pkg.NewDomainErrorSimple("AGREEMENT_ALREADY_EXISTS", "Agreement already exists with this number", http.StatusConflict)
	case errors.Is(err, usecase.ErrAgreementNotFound):
		return pkg.NewDomainErrorSimple("AGREEMENT_NOT_FOUND", "Agreement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPayerNotFound):
		return pkg.NewDomainErrorSimple("PAYER_NOT_FOUND", "Payer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCreditorNotFound):
		return pkg.NewDomainErrorSimple("CREDITOR_NOT_FOUND", "Creditor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
