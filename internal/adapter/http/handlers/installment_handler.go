package handlers

import (
	"errors"
	"net/http"
	"time"

	request "cobranca_facil/internal/adapter/http/dto/request"
	response "cobranca_facil/internal/adapter/http/dto/response"
	"cobranca_facil/internal/usecase"
	"cobranca_facil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInstallmentPayload = pkg.NewDomainErrorSimple("INVALID_INSTALLMENT_INPUT", "Invalid installment payload", http.StatusBadRequest)
)

// InstallmentHandler handles HTTP requests for installments.
type InstallmentHandler struct {
	usecase usecase.IInstallmentUseCase
}

func NewInstallmentHandler(uc usecase.IInstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{usecase: uc}
}

// @Summary      Create an installment
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateInstallmentRequest  true  "Installment, due_date as YYYY-MM-DD"
// @Success      201  {object}  response.InstallmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /installments [post]
func (h *InstallmentHandler) Create(c *gin.Context) {
	var payload request.CreateInstallmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	dueDate, err := time.Parse("2006-01-02", payload.DueDate)
	if err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	installment, err := h.usecase.Create(c.Request.Context(), payload.AgreementNumber, payload.Number, dueDate)
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInstallment(installment))
}

// @Summary      Get an installment
// @Tags         installments
// @Produce      json
// @Param        agreement_number  path  string  true  "Agreement number"
// @Param        number            path  int     true  "Installment number"
// @Success      200  {object}  response.InstallmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /installments/{agreement_number}/{number} [get]
func (h *InstallmentHandler) Get(c *gin.Context) {
	number, err := parseIntParam(c, "number")
	if err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	installment, err := h.usecase.GetByAgreementAndNumber(c.Request.Context(), c.Param("agreement_number"), number)
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallment(installment))
}

// @Summary      List installments of an agreement
// @Tags         installments
// @Produce      json
// @Param        agreement_number  path  string  true  "Agreement number"
// @Success      200  {array}  response.InstallmentResponse
// @Router       /installments/{agreement_number} [get]
func (h *InstallmentHandler) ListByAgreement(c *gin.Context) {
	installments, err := h.usecase.ListByAgreement(c.Request.Context(), c.Param("agreement_number"))
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallments(installments))
}

func mapInstallmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgreementNumber), errors.Is(err, usecase.ErrInvalidInstallmentNumber), errors.Is(err, usecase.ErrInvalidDueDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInstallmentAlreadyExists):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_EXISTS", "Installment already exists for this agreement", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAgreementNotFound):
		return pkg.NewDomainErrorSimple("AGREEMENT_NOT_FOUND", "Agreement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
