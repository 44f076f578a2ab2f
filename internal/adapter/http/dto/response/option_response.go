package response

import (
	"time"

	"nfe_backoffice/internal/domain/entities"
)

type OptionItemResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"nome"`
	Price          string            `json:"preco"`
	Position       int               `json:"posicao"`
	PriceOverrides map[string]string `json:"precos_tabela,omitempty"`
}

// OptionResponse only carries the active items, in display order.
type OptionResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"nome"`
	MinSelections int                  `json:"quantidade_minima"`
	MaxSelections int                  `json:"quantidade_maxima"`
	Items         []OptionItemResponse `json:"itens"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func FromOption(o entities.AdditionalOption) OptionResponse {
	active := o.ActiveItems()
	items := make([]OptionItemResponse, 0, len(active))
	for _, it := range active {
		item := OptionItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price.StringFixed(2),
			Position: it.Position,
		}
		if len(it.PriceOverrides) > 0 {
			item.PriceOverrides = make(map[string]string, len(it.PriceOverrides))
			for table, p := range it.PriceOverrides {
				item.PriceOverrides[table] = p.StringFixed(2)
			}
		}
		items = append(items, item)
	}
	return OptionResponse{
		ID:            o.ID,
		Name:          o.Name,
		MinSelections: o.MinSelections,
		MaxSelections: o.MaxSelections,
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOptions(opts []entities.AdditionalOption) []OptionResponse {
	out := make([]OptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, FromOption(o))
	}
	return out
}

type PriceResponse struct {
	OptionID     string `json:"option_id"`
	ItemID       string `json:"item_id"`
	PriceTableID string `json:"tabela_preco_id,omitempty"`
	Price        string `json:"preco"`
}
