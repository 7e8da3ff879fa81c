package handler

import (
	"net/http"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/apierror"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/middleware"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// RecordPickup godoc
// @Summary Record a coin pickup at a store
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body dto.CreateTransactionRequest true "Pickup"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/transactions [post]
func (h *TransactionsHandler) RecordPickup(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Malformed token"))
		return
	}

	resp, err := h.svc.RecordPickup(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns the caller's own pickups; admins see every transaction.
func (h *TransactionsHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	if claims.Role == model.RoleAdmin || claims.Role == model.RoleSuperAdmin {
		resp, err := h.svc.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to list transactions"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Malformed token"))
		return
	}
	resp, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list transactions"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
