package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AdditionalOption is a product modifier group ("opção adicional"), e.g. "Molhos".
//
// MinSelections/MaxSelections bound how many items a customer picks.
// MaxSelections == 0 means no upper bound.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// Options and items are soft-deleted only.
type AdditionalOption struct {
	ID            string           `json:"id"`
	CompanyID     string           `json:"company_id"`
	Name          string           `json:"nome"`
	MinSelections int              `json:"quantidade_minima"`
	MaxSelections int              `json:"quantidade_maxima"`
	Items         []AdditionalItem `json:"itens"`
	Deleted       bool             `json:"deletado"`
	DeletedAt     time.Time        `json:"deletado_em,omitempty"`
	DeletedBy     string           `json:"deletado_por,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type AdditionalItem struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"nome"`
	Price          decimal.Decimal            `json:"preco"`
	Position       int                        `json:"posicao"`
	PriceOverrides map[string]decimal.Decimal `json:"precos_tabela,omitempty"`
	Deleted        bool                       `json:"deletado"`
	DeletedAt      time.Time                  `json:"deletado_em,omitempty"`
	DeletedBy      string                     `json:"deletado_por,omitempty"`
}

// PriceFor returns the price-table override when present, otherwise the base price.
func (i AdditionalItem) PriceFor(priceTableID string) decimal.Decimal {
	if priceTableID != "" {
		if p, ok := i.PriceOverrides[priceTableID]; ok {
			return p
		}
	}
	return i.Price
}

// ActiveItems returns the non-deleted items ordered by position.
func (o AdditionalOption) ActiveItems() []AdditionalItem {
	out := make([]AdditionalItem, 0, len(o.Items))
	for _, it := range o.Items {
		if !it.Deleted {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Position < out[b].Position })
	return out
}

func (o AdditionalOption) ItemIndex(itemID string) int {
	for i, it := range o.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// ValidSelectionBounds checks 0 <= min and, when max is set, min <= max.
func ValidSelectionBounds(min, max int) bool {
	if min < 0 || max < 0 {
		return false
	}
	return max == 0 || min <= max
}

// SoftDelete flags the option and all of its items.
func (o *AdditionalOption) SoftDelete(actor string, now time.Time) {
	o.Deleted = true
	o.DeletedAt = now
	o.DeletedBy = actor
	for i := range o.Items {
		if !o.Items[i].Deleted {
			o.Items[i].Deleted = true
			o.Items[i].DeletedAt = now
			o.Items[i].DeletedBy = actor
		}
	}
	o.UpdatedAt = now
}
