package request

import (
	"nfe_backoffice/internal/usecase"

	"github.com/shopspring/decimal"
)

type OptionRequest struct {
	Name          string `json:"nome" binding:"required"`
	MinSelections int    `json:"quantidade_minima"`
	MaxSelections int    `json:"quantidade_maxima"`
}

func (r OptionRequest) ToInput() usecase.OptionInput {
	return usecase.OptionInput{Name: r.Name, MinSelections: r.MinSelections, MaxSelections: r.MaxSelections}
}

type ItemRequest struct {
	Name  string          `json:"nome" binding:"required"`
	Price decimal.Decimal `json:"preco"`
}

func (r ItemRequest) ToInput() usecase.ItemInput {
	return usecase.ItemInput{Name: r.Name, Price: r.Price}
}

type ReorderRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
}

// PriceOverrideRequest sets a price-table override; a null price removes it.
type PriceOverrideRequest struct {
	Price *decimal.Decimal `json:"preco"`
}
