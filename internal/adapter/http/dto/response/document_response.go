package response

import (
	"time"

	"nfe_backoffice/internal/domain/entities"
)

// DocumentSummary is the list view of a fiscal document, without form or XML.
type DocumentSummary struct {
	ID              string    `json:"id"`
	Model           string    `json:"modelo"`
	Series          int       `json:"serie"`
	Number          int       `json:"numero"`
	Status          string    `json:"status"`
	OperationNature string    `json:"natureza_operacao"`
	RecipientName   string    `json:"nome_destinatario"`
	Total           string    `json:"valor_total"`
	AccessKey       string    `json:"chave,omitempty"`
	Protocol        string    `json:"protocolo,omitempty"`
	AuthorizedAt    time.Time `json:"data_autorizacao,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Actions         Actions   `json:"acoes"`
}

// Actions tells the client which post-emission actions apply to the document.
type Actions struct {
	Edit       bool `json:"editar"`
	Cancel     bool `json:"cancelar"`
	Correct    bool `json:"carta_correcao"`
	Invalidate bool `json:"inutilizar"`
	Download   bool `json:"download"`
}

type DocumentResponse struct {
	entities.FiscalDocument
	Total   string  `json:"valor_total"`
	Actions Actions `json:"acoes"`
}

func actionsFor(d entities.FiscalDocument) Actions {
	return Actions{
		Edit:       d.IsDraft(),
		Cancel:     d.CanBeCancelled(),
		Correct:    d.CanReceiveCorrection(),
		Invalidate: d.CanBeInvalidated(),
		Download:   d.AccessKey != "",
	}
}

func FromDocument(d entities.FiscalDocument) DocumentResponse {
	return DocumentResponse{FiscalDocument: d, Total: d.Total.StringFixed(2), Actions: actionsFor(d)}
}

func FromDocuments(docs []entities.FiscalDocument) []DocumentSummary {
	out := make([]DocumentSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentSummary{
			ID:              d.ID,
			Model:           string(d.Model),
			Series:          d.Series,
			Number:          d.Number,
			Status:          string(d.Status),
			OperationNature: d.OperationNature,
			RecipientName:   d.RecipientName,
			Total:           d.Total.StringFixed(2),
			AccessKey:       d.AccessKey,
			Protocol:        d.Protocol,
			AuthorizedAt:    d.AuthorizedAt,
			CreatedAt:       d.CreatedAt,
			UpdatedAt:       d.UpdatedAt,
			Actions:         actionsFor(d),
		})
	}
	return out
}

type NextNumberResponse struct {
	Model  string `json:"modelo"`
	Series int    `json:"serie"`
	Number int    `json:"numero"`
}

type ValidationResponse struct {
	Valid      bool     `json:"valido"`
	Violations []string `json:"violacoes"`
}

func FromViolations(v []string) ValidationResponse {
	if v == nil {
		v = []string{}
	}
	return ValidationResponse{Valid: len(v) == 0, Violations: v}
}

type PathResponse struct {
	Path string `json:"pdf_path"`
}
