package handlers

import (
	"net/http"

	"nfe_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

// GetCurrent godoc
// @Summary Profile of the authenticated company
// @Tags company
// @Produce json
// @Success 200 {object} usecase.CompanyProfile
// @Failure 403 {object} pkg.HTTPError
// @Router /company [get]
func (h *CompanyHandler) GetCurrent(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	profile, err := h.usecase.GetCurrent(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
