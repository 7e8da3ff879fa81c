package handler

import (
	"net/http"
	"time"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/apierror"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehiclesHandler struct{ svc service.VehicleService }

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

func (h *VehiclesHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
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

func (h *VehiclesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list vehicles"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid vehicle id"))
		return
	}
	var req dto.UpdateVehicleRequest
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

func (h *VehiclesHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid vehicle id"))
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to deactivate vehicle"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Route assignments ────────────────────────────────────────────────────────

func (h *VehiclesHandler) AssignRoute(c *gin.Context) {
	var req dto.CreateRouteAssignmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AssignRoute(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListRoutes returns assignments for ?date=YYYY-MM-DD, defaulting to today.
func (h *VehiclesHandler) ListRoutes(c *gin.Context) {
	date := time.Now().UTC()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid date, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}
	resp, err := h.svc.ListRoutes(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list route assignments"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) UnassignRoute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid assignment id"))
		return
	}
	if err := h.svc.UnassignRoute(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to remove route assignment"))
		return
	}
	c.Status(http.StatusNoContent)
}
