package response

import (
	"testing"

	"nfe_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOption_OnlyActiveItemsInOrder(t *testing.T) {
	o := entities.AdditionalOption{
		ID:            "opt-1",
		Name:          "Molhos",
		MaxSelections: 2,
		Items: []entities.AdditionalItem{
			{ID: "b", Name: "Barbecue", Price: decimal.NewFromInt(2), Position: 2},
			{ID: "x", Name: "Removido", Position: 0, Deleted: true},
			{ID: "a", Name: "Alho", Price: decimal.RequireFromString("1.5"), Position: 1,
				PriceOverrides: map[string]decimal.Decimal{"delivery": decimal.NewFromInt(3)}},
		},
	}

	res := FromOption(o)
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 active items, got %d", len(res.Items))
	}
	if res.Items[0].ID != "a" || res.Items[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", res.Items)
	}
	if res.Items[0].Price != "1.50" || res.Items[0].PriceOverrides["delivery"] != "3.00" {
		t.Fatalf("unexpected prices: %+v", res.Items[0])
	}
	if res.Items[1].PriceOverrides != nil {
		t.Fatalf("expected no overrides on item b")
	}
}
