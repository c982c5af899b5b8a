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
	errInvalidCreditorPayload = pkg.NewDomainErrorSimple("INVALID_CREDITOR_INPUT", "Invalid creditor payload", http.StatusBadRequest)
)

// CreditorHandler handles HTTP requests for creditors.
type CreditorHandler struct {
	usecase usecase.ICreditorUseCase
}

func NewCreditorHandler(uc usecase.ICreditorUseCase) *CreditorHandler {
	return &CreditorHandler{usecase: uc}
}

// @Summary      Create a creditor
// @Tags         creditors
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateCreditorRequest  true  "Creditor"
// @Success      201  {object}  response.CreditorResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /creditors [post]
func (h *CreditorHandler) Create(c *gin.Context) {
	var payload request.CreateCreditorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCreditorPayload.HTTPStatus, errInvalidCreditorPayload.ToHTTPError())
		return
	}

	creditor, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.ReissueMargin)
	if err != nil {
		appErr := mapCreditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreditor(creditor))
}

// @Summary      Get a creditor by name
// @Tags         creditors
// @Produce      json
// @Param        name  path  string  true  "Creditor name"
// @Success      200  {object}  response.CreditorResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /creditors/{name} [get]
func (h *CreditorHandler) Get(c *gin.Context) {
	creditor, err := h.usecase.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		appErr := mapCreditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditor(creditor))
}

// @Summary      List creditors
// @Tags         creditors
// @Produce      json
// @Success      200  {array}  response.CreditorResponse
// @Router       /creditors [get]
func (h *CreditorHandler) List(c *gin.Context) {
	creditors, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCreditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditors(creditors))
}

// @Summary      Update a creditor's reissue margin
// @Tags         creditors
// @Accept       json
// @Produce      json
// @Param        name  path  string                         true  "Creditor name"
// @Param        body  body  request.UpdateCreditorRequest  true  "Fields to update"
// @Success      200  {object}  response.CreditorResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /creditors/{name} [put]
func (h *CreditorHandler) Update(c *gin.Context) {
	var payload request.UpdateCreditorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCreditorPayload.HTTPStatus, errInvalidCreditorPayload.ToHTTPError())
		return
	}

	creditor, err := h.usecase.UpdateReissueMargin(c.Request.Context(), c.Param("name"), *payload.ReissueMargin)
	if err != nil {
		appErr := mapCreditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditor(creditor))
}

// @Summary      Delete a creditor
// @Description  Soft-deletes the creditor; agreements keep referencing it by name.
// @Tags         creditors
// @Produce      json
// @Param        name  path  string  true  "Creditor name"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /creditors/{name} [delete]
func (h *CreditorHandler) Delete(c *gin.Context) {
	if _, err := h.usecase.Delete(c.Request.Context(), c.Param("name")); err != nil {
		appErr := mapCreditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Creditor deleted"})
}

func mapCreditorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCreditorName), errors.Is(err, usecase.ErrInvalidReissueMargin):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCreditorAlreadyExists):
		return pkg.NewDomainErrorSimple("CREDITOR_ALREADY_EXISTS", "Creditor already exists with this name", http.StatusConflict)
	case errors.Is(err, usecase.ErrCreditorNotFound):
		return pkg.NewDomainErrorSimple("CREDITOR_NOT_FOUND", "Creditor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
