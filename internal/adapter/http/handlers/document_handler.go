package handlers

import (
	"net/http"

	"nfe_backoffice/internal/adapter/http/dto/request"
	"nfe_backoffice/internal/adapter/http/dto/response"
	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves drafts, listings and the pre-emission helpers.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// SaveDraft godoc
// @Summary Create or update a draft
// @Tags documents
// @Accept json
// @Produce json
// @Param payload body request.SaveDraftRequest true "Draft"
// @Success 201 {object} response.DocumentResponse
// @Success 200 {object} response.DocumentResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /documents [post]
func (h *DocumentHandler) SaveDraft(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.SaveDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.saveDraft(c, companyID, payload.ID, payload.Form)
}

// ReplaceDraft overwrites the whole form of an existing draft.
func (h *DocumentHandler) ReplaceDraft(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.FormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.saveDraft(c, companyID, c.Param("id"), payload.Form)
}

func (h *DocumentHandler) saveDraft(c *gin.Context, companyID, id string, form entities.Form) {
	doc, err := h.usecase.SaveDraft(c.Request.Context(), companyID, usecase.SaveDraftCommand{DocumentID: id, Form: form})
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromDocument(doc))
}

// UpdateSection godoc
// @Summary Replace one section of a draft
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Param section path string true "Section (identificacao, destinatario, produtos, totais, pagamentos, chaves_ref, transportadora, intermediador)"
// @Success 200 {object} response.DocumentResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /documents/{id}/sections/{section} [put]
func (h *DocumentHandler) UpdateSection(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		writeError(c, errInvalidPayload)
		return
	}
	section, err := request.DecodeSection(c.Param("section"), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := h.usecase.UpdateSection(c.Request.Context(), companyID, c.Param("id"), section)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	doc, err := h.usecase.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ListDocuments godoc
// @Summary List documents, newest first
// @Tags documents
// @Produce json
// @Param status query string false "Status"
// @Param modelo query string false "Model (55 or 65)"
// @Param serie query int false "Series"
// @Success 200 {array} response.DocumentSummary
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var query request.DocumentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	docs, err := h.usecase.List(c.Request.Context(), companyID, query.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

// NextNumber suggests the next free number for a model and series.
func (h *DocumentHandler) NextNumber(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var query request.NextNumberQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	model := entities.DocumentModel(query.Model)
	number, err := h.usecase.NextNumber(c.Request.Context(), companyID, model, query.Series)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{Model: query.Model, Series: query.Series, Number: number})
}

func (h *DocumentHandler) CloneDocument(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	doc, err := h.usecase.Clone(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

// Validate runs the pre-emission checks without emitting anything.
func (h *DocumentHandler) Validate(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.FormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	violations, err := h.usecase.Validate(c.Request.Context(), companyID, payload.Form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromViolations(violations))
}

// Preview godoc
// @Summary Render an unsigned DANFE mirror of the form
// @Tags documents
// @Accept json
// @Produce application/pdf
// @Param payload body request.FormRequest true "Form"
// @Success 200 {file} binary
// @Failure 502 {object} pkg.HTTPError
// @Router /documents/preview [post]
func (h *DocumentHandler) Preview(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.FormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	pdf, err := h.usecase.Preview(c.Request.Context(), companyID, payload.Form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="espelho-danfe.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
