package handlers

import (
	"net/http"

	"nfe_backoffice/internal/adapter/http/dto/request"
	"nfe_backoffice/internal/adapter/http/dto/response"
	"nfe_backoffice/internal/adapter/http/middleware"
	"nfe_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OptionHandler exposes additional options (product modifier groups) and their items.
type OptionHandler struct {
	usecase usecase.IAdditionalOptionUseCase
}

func NewOptionHandler(uc usecase.IAdditionalOptionUseCase) *OptionHandler {
	return &OptionHandler{usecase: uc}
}

// ListOptions godoc
// @Summary List additional options
// @Tags options
// @Produce json
// @Success 200 {array} response.OptionResponse
// @Router /options [get]
func (h *OptionHandler) ListOptions(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	opts, err := h.usecase.List(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOptions(opts))
}

func (h *OptionHandler) GetOption(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	opt, err := h.usecase.Get(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOption(opt))
}

// CreateOption godoc
// @Summary Create an additional option
// @Tags options
// @Accept json
// @Produce json
// @Param payload body request.OptionRequest true "Option"
// @Success 201 {object} response.OptionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /options [post]
func (h *OptionHandler) CreateOption(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.OptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	opt, err := h.usecase.Create(c.Request.Context(), companyID, payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOption(opt))
}

func (h *OptionHandler) UpdateOption(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.OptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	opt, err := h.usecase.Update(c.Request.Context(), companyID, c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOption(opt))
}

// DeleteOption soft-deletes the option; the caller is recorded as the actor.
func (h *OptionHandler) DeleteOption(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), companyID, c.Param("id"), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OptionHandler) AddItem(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	opt, err := h.usecase.AddItem(c.Request.Context(), companyID, c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOption(opt))
}

func (h *OptionHandler) UpdateItem(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	opt, err := h.usecase.UpdateItem(c.Request.Context(), companyID, c.Param("id"), c.Param("itemId"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOption(opt))
}

func (h *OptionHandler) DeleteItem(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	opt, err := h.usecase.DeleteItem(c.Request.Context(), companyID, c.Param("id"), c.Param("itemId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOption(opt))
}

func (h *OptionHandler) ReorderItems(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	opt, err := h.usecase.ReorderItems(c.Request.Context(), companyID, c.Param("id"), payload.ItemIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOption(opt))
}

// SetPriceOverride sets or, with a null price, clears the item price for one price table.
func (h *OptionHandler) SetPriceOverride(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	var payload request.PriceOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	opt, err := h.usecase.SetPriceOverride(c.Request.Context(), companyID, c.Param("id"), c.Param("itemId"), c.Param("tableId"), payload.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOption(opt))
}

// ResolvePrice godoc
// @Summary Resolve an item price for a price table
// @Tags options
// @Produce json
// @Param tabela query string false "Price table id"
// @Success 200 {object} response.PriceResponse
// @Router /options/{id}/items/{itemId}/price [get]
func (h *OptionHandler) ResolvePrice(c *gin.Context) {
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	optionID, itemID, table := c.Param("id"), c.Param("itemId"), c.Query("tabela")
	price, err := h.usecase.ResolvePrice(c.Request.Context(), companyID, optionID, itemID, table)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PriceResponse{
		OptionID:     optionID,
		ItemID:       itemID,
		PriceTableID: table,
		Price:        price.StringFixed(2),
	})
}
