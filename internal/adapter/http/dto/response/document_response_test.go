package response

import (
	"encoding/json"
	"testing"
	"time"

	"nfe_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromDocument(t *testing.T) {
	now := time.Now().UTC()
	d := entities.FiscalDocument{
		ID:        "doc-1",
		Model:     entities.DocumentModelNFe,
		Series:    1,
		Number:    42,
		Status:    entities.DocumentStatusAutorizada,
		Total:     decimal.RequireFromString("10.5"),
		AccessKey: "35240112345678000195550010000000421000000420",
		CreatedAt: now,
	}

	res := FromDocument(d)
	if res.Total != "10.50" {
		t.Fatalf("expected total 10.50, got %q", res.Total)
	}
	if res.Actions.Edit || !res.Actions.Cancel || !res.Actions.Correct || !res.Actions.Download {
		t.Fatalf("unexpected actions: %+v", res.Actions)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["valor_total"] != "10.50" {
		t.Fatalf("expected outer total to win, got %v", body["valor_total"])
	}
	if body["id"] != "doc-1" {
		t.Fatalf("expected embedded fields, got %v", body)
	}
}

func TestFromDocuments_Draft(t *testing.T) {
	list := FromDocuments([]entities.FiscalDocument{{ID: "d", Status: entities.DocumentStatusRascunho}})
	if len(list) != 1 {
		t.Fatalf("expected one summary, got %d", len(list))
	}
	a := list[0].Actions
	if !a.Edit || a.Cancel || a.Correct || a.Download {
		t.Fatalf("unexpected draft actions: %+v", a)
	}
	if list[0].Total != "0.00" {
		t.Fatalf("expected zero total, got %q", list[0].Total)
	}
}

func TestFromViolations(t *testing.T) {
	ok := FromViolations(nil)
	if !ok.Valid || ok.Violations == nil {
		t.Fatalf("expected valid with empty list, got %+v", ok)
	}
	bad := FromViolations([]string{"x"})
	if bad.Valid || len(bad.Violations) != 1 {
		t.Fatalf("unexpected %+v", bad)
	}
}
