package handlers

import (
	"net/http"

	"nfe_backoffice/internal/adapter/http/dto/request"
	"nfe_backoffice/internal/adapter/http/dto/response"
	"nfe_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EmissionHandler starts emission jobs and exposes their progress for polling.
type EmissionHandler struct {
	usecase usecase.IEmissionUseCase
}

func NewEmissionHandler(uc usecase.IEmissionUseCase) *EmissionHandler {
	return &EmissionHandler{usecase: uc}
}

// StartEmission godoc
// @Summary Start the emission pipeline
// @Description Runs the pre-flight checks synchronously and the pipeline in the background.
// @Tags emissions
// @Accept json
// @Produce json
// @Param payload body request.EmitRequest true "Form to emit"
// @Success 202 {object} response.EmissionJobResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /emissions [post]
func (h *EmissionHandler) StartEmission(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.EmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	job, err := h.usecase.Start(c.Request.Context(), usecase.EmissionCommand{
		CompanyID:  companyID,
		DocumentID: payload.DocumentID,
		Form:       payload.Form,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/v1/emissions/"+job.ID)
	c.JSON(http.StatusAccepted, response.FromEmissionJob(job))
}

// GetEmission returns the current step snapshot of a job.
func (h *EmissionHandler) GetEmission(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	job, err := h.usecase.GetJob(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmissionJob(job))
}

func (h *EmissionHandler) CancelEmission(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	job, err := h.usecase.CancelJob(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmissionJob(job))
}
