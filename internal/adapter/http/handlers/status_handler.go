package handlers

import (
	"net/http"

	"nfe_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StatusHandler reports the availability of the fiscal backend, SEFAZ and the certificate.
type StatusHandler struct {
	usecase usecase.IStatusUseCase
}

func NewStatusHandler(uc usecase.IStatusUseCase) *StatusHandler {
	return &StatusHandler{usecase: uc}
}

// Overview godoc
// @Summary Dashboard status panel
// @Tags status
// @Produce json
// @Success 200 {object} usecase.StatusOverview
// @Router /status [get]
func (h *StatusHandler) Overview(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	overview, err := h.usecase.Overview(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Backend answers 200 even when the backend is offline; the body carries the verdict.
func (h *StatusHandler) Backend(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.BackendHealth(c.Request.Context()))
}

func (h *StatusHandler) Sefaz(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.SefazStatus(c.Request.Context(), companyID))
}

func (h *StatusHandler) Certificate(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	report, err := h.usecase.CertificateStatus(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
