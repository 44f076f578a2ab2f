package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleItem() LineItem {
	return LineItem{
		Code:        "P1",
		Description: "Produto",
		NCM:         "21069090",
		CFOP:        "5102",
		Unit:        "UN",
		Quantity:    d("2"),
		UnitPrice:   d("10.50"),
	}
}

func TestForm_ReturnPurposeForcesSingleNoPaymentEntry(t *testing.T) {
	f := NewForm(DocumentModelNFe, 1)
	f.SetPayments(Payments{{Method: "01", Value: d("10")}, {Method: "03", Value: d("5")}})

	f.SetPurpose(PurposeReturn)
	assertNoPayment(t, f)

	t.Run("payments edit is overridden", func(t *testing.T) {
		f.SetPayments(Payments{{Method: "01", Value: d("99")}})
		assertNoPayment(t, f)
	})

	t.Run("line item edit keeps forced entry", func(t *testing.T) {
		f.AddLineItem(sampleItem())
		assertNoPayment(t, f)
	})

	t.Run("apply payments section keeps forced entry", func(t *testing.T) {
		if err := f.Apply(Payments{{Method: "17", Value: d("1")}}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		assertNoPayment(t, f)
	})
}

func assertNoPayment(t *testing.T, f Form) {
	t.Helper()
	if len(f.Payments) != 1 {
		t.Fatalf("expected exactly one payment, got %d", len(f.Payments))
	}
	if f.Payments[0].Method != PaymentMethodNone || !f.Payments[0].Value.IsZero() {
		t.Fatalf("expected 90/0, got %+v", f.Payments[0])
	}
}

func TestForm_LineItemTotal(t *testing.T) {
	f := NewForm(DocumentModelNFe, 1)
	f.AddLineItem(sampleItem())

	if !f.Items[0].Total.Equal(d("21")) {
		t.Fatalf("expected 21, got %s", f.Items[0].Total)
	}
	if !f.Totals.Products.Equal(d("21")) || !f.Totals.Total.Equal(d("21")) {
		t.Fatalf("unexpected totals %+v", f.Totals)
	}

	t.Run("manual override wins", func(t *testing.T) {
		it := sampleItem()
		o := d("5.00")
		it.Override = &o
		if err := f.UpdateLineItem(0, it); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !f.Items[0].Total.Equal(d("5")) {
			t.Fatalf("expected override 5, got %s", f.Items[0].Total)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		if err := f.UpdateLineItem(3, sampleItem()); !errors.Is(err, ErrLineItemIndex) {
			t.Fatalf("expected ErrLineItemIndex, got %v", err)
		}
	})

	t.Run("freight adds to total", func(t *testing.T) {
		f.Totals.Freight = d("2.5")
		f.RecalculateTotals()
		if !f.Totals.Total.Equal(d("7.5")) {
			t.Fatalf("expected 7.5, got %s", f.Totals.Total)
		}
	})
}

func TestForm_CarrierForbiddenWithoutTransport(t *testing.T) {
	f := NewForm(DocumentModelNFe, 1)

	err := f.SetTransport(Transport{FreightModality: FreightNoTransport, Carrier: &Carrier{Name: "Transp"}})
	if !errors.Is(err, ErrCarrierNotAllowed) {
		t.Fatalf("expected ErrCarrierNotAllowed, got %v", err)
	}

	if err := f.SetTransport(Transport{FreightModality: "0", Carrier: &Carrier{Name: "Transp"}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := f.SetTransport(Transport{FreightModality: FreightNoTransport}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.Transport.Carrier != nil {
		t.Fatalf("carrier should be cleared")
	}
}

func TestForm_SectionValidation(t *testing.T) {
	t.Run("identification model", func(t *testing.T) {
		id := NewForm(DocumentModelNFe, 1).Identification
		id.Model = "99"
		var se *SectionError
		if err := id.Validate(); !errors.As(err, &se) || se.Section != SectionIdentification {
			t.Fatalf("expected identification SectionError, got %v", err)
		}
	})

	t.Run("recipient email", func(t *testing.T) {
		r := Recipient{Emails: []string{"not-an-email"}}
		if err := r.Validate(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("reference key length", func(t *testing.T) {
		if err := (ReferenceKeys{"123"}).Validate(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("line item quantity", func(t *testing.T) {
		it := sampleItem()
		it.Quantity = decimal.Zero
		if err := (LineItems{it}).Validate(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("intermediary requires identification", func(t *testing.T) {
		if err := (Intermediary{Indicator: "1"}).Validate(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("valid form", func(t *testing.T) {
		f := NewForm(DocumentModelNFe, 1)
		f.Identification.OperationNature = "VENDA"
		f.AddLineItem(sampleItem())
		f.SetPayments(Payments{{Method: "01", Value: d("21")}})
		if err := f.Validate(); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestForm_CloneIsDeep(t *testing.T) {
	f := NewForm(DocumentModelNFe, 1)
	f.AddLineItem(sampleItem())
	f.SetPayments(Payments{{Method: "01", Value: d("21")}})
	f.ReferenceKeys = ReferenceKeys{"35200114200166000187550010000000071000000076"}
	f.Recipient.Emails = []string{"a@b.com"}

	c := f.Clone()
	c.Items[0].Description = "changed"
	c.Payments[0].Method = "03"
	c.ReferenceKeys[0] = "x"
	c.Recipient.Emails[0] = "x"

	if f.Items[0].Description != "Produto" || f.Payments[0].Method != "01" ||
		f.ReferenceKeys[0] == "x" || f.Recipient.Emails[0] != "a@b.com" {
		t.Fatalf("clone shares memory with source")
	}
}
