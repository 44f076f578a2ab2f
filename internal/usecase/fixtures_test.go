package usecase

import (
	"bytes"
	"context"
	"sync"
	"time"

	"nfe_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const testAccessKey = "35240112345678000195550010000000421000000420"

func testCompany() entities.Company {
	return entities.Company{
		ID:          "c-1",
		Name:        "Loja Exemplo LTDA",
		CNPJ:        "12345678000195",
		State:       "SP",
		Environment: entities.EnvironmentHomologacao,
		Certificate: entities.Certificate{
			Configured: true,
			ValidUntil: time.Now().Add(365 * 24 * time.Hour),
		},
	}
}

func testForm() entities.Form {
	f := entities.NewForm(entities.DocumentModelNFe, 1)
	f.Identification.OperationNature = "Venda de mercadoria"
	f.Recipient = entities.Recipient{
		Document:    "12345678909",
		Name:        "Cliente Teste",
		Street:      "Rua das Flores",
		Number:      "10",
		District:    "Centro",
		City:        "Sao Paulo",
		State:       "SP",
		ZipCode:     "01001000",
		IEIndicator: entities.DefaultIEIndicator,
	}
	f.SetLineItems(entities.LineItems{{
		Code:        "P1",
		Description: "Produto de teste",
		NCM:         "12345678",
		CFOP:        "5102",
		Unit:        "UN",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.RequireFromString("50.00"),
	}})
	f.SetPayments(entities.Payments{{Method: "01", Value: decimal.RequireFromString("100.00")}})
	return f
}

func validXML(key string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?><nfeProc><NFe><infNFe Id="NFe` + key + `"></infNFe></NFe></nfeProc>`)
}

func validPDF() []byte {
	return append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("0"), 2048)...)
}

// recordingPublisher keeps every published event for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...entities.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventName())
	}
	return out
}

func (p *recordingPublisher) has(name string) bool {
	for _, n := range p.names() {
		if n == name {
			return true
		}
	}
	return false
}

func stepStatus(job entities.EmissionJob, id entities.EmissionStepID) entities.StepStatus {
	for _, s := range job.Steps {
		if s.ID == id {
			return s.Status
		}
	}
	return ""
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
