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
	errInvalidPayerPayload = pkg.NewDomainErrorSimple("INVALID_PAYER_INPUT", "Invalid payer payload", http.StatusBadRequest)
)

// PayerHandler handles HTTP requests for payers.
type PayerHandler struct {
	usecase usecase.IPayerUseCase
}

func NewPayerHandler(uc usecase.IPayerUseCase) *PayerHandler {
	return &PayerHandler{usecase: uc}
}

// @Summary      Create a payer
// @Tags         payers
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreatePayerRequest  true  "Payer"
// @Success      201  {object}  response.PayerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payers [post]
func (h *PayerHandler) Create(c *gin.Context) {
	var payload request.CreatePayerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayerPayload.HTTPStatus, errInvalidPayerPayload.ToHTTPError())
		return
	}

	payer, err := h.usecase.Create(c.Request.Context(), payload.CPFCNPJ, payload.Name, payload.Phone)
	if err != nil {
		appErr := mapPayerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayer(payer))
}

// @Summary      Get a payer by CPF/CNPJ
// @Tags         payers
// @Produce      json
// @Param        cpf_cnpj  path  string  true  "CPF/CNPJ"
// @Success      200  {object}  response.PayerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payers/{cpf_cnpj} [get]
func (h *PayerHandler) Get(c *gin.Context) {
	payer, err := h.usecase.GetByCPFCNPJ(c.Request.Context(), c.Param("cpf_cnpj"))
	if err != nil {
		appErr := mapPayerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayer(payer))
}

// @Summary      List payers
// @Tags         payers
// @Produce      json
// @Success      200  {array}  response.PayerResponse
// @Router       /payers [get]
func (h *PayerHandler) List(c *gin.Context) {
	payers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPayerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayers(payers))
}

// @Summary      Update a payer
// @Tags         payers
// @Accept       json
// @Produce      json
// @Param        cpf_cnpj  path  string                      true  "CPF/CNPJ"
// @Param        body      body  request.UpdatePayerRequest  true  "Fields to update"
// @Success      200  {object}  response.PayerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payers/{cpf_cnpj} [put]
func (h *PayerHandler) Update(c *gin.Context) {
	var payload request.UpdatePayerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayerPayload.HTTPStatus, errInvalidPayerPayload.ToHTTPError())
		return
	}

	payer, err := h.usecase.Update(c.Request.Context(), c.Param("cpf_cnpj"), payload.Name, payload.Phone)
	if err != nil {
		appErr := mapPayerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayer(payer))
}

// @Summary      Delete a payer
// @Tags         payers
// @Produce      json
// @Param        cpf_cnpj  path  string  true  "CPF/CNPJ"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payers/{cpf_cnpj} [delete]
func (h *PayerHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("cpf_cnpj")); err != nil {
		appErr := mapPayerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Payer deleted"})
}

func mapPayerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCPFCNPJ), errors.Is(err, usecase.ErrInvalidPayerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayerAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYER_ALREADY_EXISTS", "Payer already exists for this CPF/CNPJ", http.StatusConflict)
	case errors.Is(err, usecase.ErrPayerNotFound):
		return pkg.NewDomainErrorSimple("PAYER_NOT_FOUND", "Payer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
