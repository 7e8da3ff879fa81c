package handler

import (
	"net/http"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/apierror"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/middleware"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StocksHandler struct{ svc service.StockService }

func NewStocksHandler(svc service.StockService) *StocksHandler {
	return &StocksHandler{svc: svc}
}

// MyStock returns the calling field user's coin ledger.
func (h *StocksHandler) MyStock(c *gin.Context) {
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Malformed token"))
		return
	}
	resp, err := h.svc.UserStock(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load stock"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UserStock returns a specific user's coin ledger (admin view).
func (h *StocksHandler) UserStock(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid user id"))
		return
	}
	resp, err := h.svc.UserStock(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load stock"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StocksHandler) WarehouseStock(c *gin.Context) {
	resp, err := h.svc.WarehouseStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load warehouse stock"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deposit moves a user's held stock into the warehouse ledger.
func (h *StocksHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid user id"))
		return
	}
	if err := h.svc.Deposit(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewWithDetails("Failed to deposit stock", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock deposited to warehouse."})
}
