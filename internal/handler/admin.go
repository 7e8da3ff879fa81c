package handler

import (
	"net/http"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/apierror"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{ reset service.ResetService }

func NewAdminHandler(reset service.ResetService) *AdminHandler {
	return &AdminHandler{reset: reset}
}

// Reset godoc
// @Summary Irreversibly wipe all operational data
// @Description Deletes transaction details, transactions, route assignments,
// @Description user stocks, warehouse stocks and vehicles in one transaction.
// @Description Users and stores are preserved.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} apierror.APIError
// @Router /v1/admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	if _, err := h.reset.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError,
			apierror.NewWithDetails("Failed to reset system data.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "System data reset successfully."})
}

// ── Entry routing ────────────────────────────────────────────────────────────
// Pure navigation glue: send visitors to the right portal login.

func RedirectToApp(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/app/login")
}

func RedirectToAdmin(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/admin/login")
}
