package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"nfe_backoffice/internal/adapter/http/dto/request"
	"nfe_backoffice/internal/adapter/http/dto/response"
	"nfe_backoffice/internal/usecase"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const deferredWarning = `199 - "registered at SEFAZ, local update queued for reconciliation"`

// PostEmissionHandler exposes the actions available once a document left the draft state.
type PostEmissionHandler struct {
	usecase usecase.IPostEmissionUseCase
}

func NewPostEmissionHandler(uc usecase.IPostEmissionUseCase) *PostEmissionHandler {
	return &PostEmissionHandler{usecase: uc}
}

// CancelDocument godoc
// @Summary Cancel an authorized document
// @Tags post-emission
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Param payload body request.CancelRequest true "Justification (15 to 255 characters)"
// @Success 200 {object} response.DocumentResponse
// @Success 202 {object} response.DocumentResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /documents/{id}/cancel [post]
func (h *PostEmissionHandler) CancelDocument(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	doc, err := h.usecase.Cancel(c.Request.Context(), companyID, c.Param("id"), payload.Reason)
	switch {
	case errors.Is(err, usecase.ErrLocalUpdateDeferred):
		c.Header("Warning", deferredWarning)
		c.JSON(http.StatusAccepted, response.FromDocument(doc))
	case err != nil:
		respondError(c, err)
	default:
		c.JSON(http.StatusOK, response.FromDocument(doc))
	}
}

// InvalidateNumbers voids a range of unused numbers, optionally tied to a document.
func (h *PostEmissionHandler) InvalidateNumbers(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.InvalidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cmd := payload.ToCommand()
	if id := c.Param("id"); id != "" {
		cmd.DocumentID = id
	}
	result, err := h.usecase.Invalidate(c.Request.Context(), companyID, cmd)
	switch {
	case errors.Is(err, usecase.ErrLocalUpdateDeferred):
		c.Header("Warning", deferredWarning)
		c.JSON(http.StatusAccepted, result)
	case err != nil:
		respondError(c, err)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// IssueCorrectionLetter godoc
// @Summary Register a correction letter (CC-e)
// @Tags post-emission
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Param payload body request.CorrectionRequest true "Correction text (15 to 1000 characters)"
// @Success 201 {object} entities.CorrectionLetter
// @Failure 409 {object} pkg.HTTPError
// @Router /documents/{id}/corrections [post]
func (h *PostEmissionHandler) IssueCorrectionLetter(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.CorrectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	letter, err := h.usecase.IssueCorrectionLetter(c.Request.Context(), companyID, c.Param("id"), payload.Text)
	switch {
	case errors.Is(err, usecase.ErrLocalUpdateDeferred):
		c.Header("Warning", deferredWarning)
		c.JSON(http.StatusAccepted, letter)
	case err != nil:
		respondError(c, err)
	default:
		c.JSON(http.StatusCreated, letter)
	}
}

func (h *PostEmissionHandler) ListCorrectionLetters(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	letters, err := h.usecase.ListCorrectionLetters(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, letters)
}

func (h *PostEmissionHandler) CorrectionLetterPDF(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil {
		writeError(c, errInvalidPathParam)
		return
	}
	path, err := h.usecase.CorrectionLetterPDF(c.Request.Context(), companyID, c.Param("id"), seq)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PathResponse{Path: path})
}

// GenerateDANFE asks the backend to (re)render the DANFE and returns its path.
func (h *PostEmissionHandler) GenerateDANFE(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	path, err := h.usecase.GenerateDANFE(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PathResponse{Path: path})
}

func (h *PostEmissionHandler) DownloadXML(c *gin.Context) {
	h.download(c, interfaces.ArtifactXML)
}

func (h *PostEmissionHandler) DownloadPDF(c *gin.Context) {
	h.download(c, interfaces.ArtifactPDF)
}

func (h *PostEmissionHandler) download(c *gin.Context, kind interfaces.ArtifactKind) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	id := c.Param("id")
	art, err := h.usecase.DownloadArtifact(c.Request.Context(), companyID, id, kind)
	if err != nil {
		respondError(c, err)
		return
	}
	contentType := art.ContentType
	if contentType == "" {
		contentType = defaultContentType(kind)
	}
	disposition := "attachment"
	if kind == interfaces.ArtifactPDF {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s.%s"`, disposition, id, kind))
	c.Data(http.StatusOK, contentType, art.Body)
}

func defaultContentType(kind interfaces.ArtifactKind) string {
	if kind == interfaces.ArtifactPDF {
		return "application/pdf"
	}
	return "application/xml"
}

// SendEmail godoc
// @Summary E-mail the XML and DANFE to the recipient
// @Tags post-emission
// @Accept json
// @Param id path string true "Document id"
// @Param payload body request.EmailRequest false "Recipients; empty uses the ones on the form"
// @Success 204
// @Failure 400 {object} pkg.HTTPError
// @Router /documents/{id}/email [post]
func (h *PostEmissionHandler) SendEmail(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.EmailRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}
	if err := h.usecase.SendEmail(c.Request.Context(), companyID, c.Param("id"), payload.Emails); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
