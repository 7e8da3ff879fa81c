package handler

import (
	"net/http"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/apierror"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoresHandler struct{ svc service.StoreService }

func NewStoresHandler(svc service.StoreService) *StoresHandler {
	return &StoresHandler{svc: svc}
}

func (h *StoresHandler) Create(c *gin.Context) {
	var req dto.CreateStoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StoresHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list stores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoresHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid store id"))
		return
	}
	var req dto.UpdateStoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoresHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid store id"))
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to deactivate store"))
		return
	}
	c.Status(http.StatusNoContent)
}
