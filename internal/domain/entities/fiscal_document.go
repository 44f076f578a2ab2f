package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus represents the lifecycle of a fiscal document (NFe/NFC-e).
//
// Transitions:
//   - rascunho -> autorizada | pendente | rejeitada (emission)
//   - pendente -> autorizada | rejeitada (status re-check)
//   - autorizada -> cancelada
//   - rascunho | pendente | rejeitada -> inutilizada
type DocumentStatus string

const (
	DocumentStatusRascunho    DocumentStatus = "rascunho"
	DocumentStatusPendente    DocumentStatus = "pendente"
	DocumentStatusAutorizada  DocumentStatus = "autorizada"
	DocumentStatusRejeitada   DocumentStatus = "rejeitada"
	DocumentStatusCancelada   DocumentStatus = "cancelada"
	DocumentStatusInutilizada DocumentStatus = "inutilizada"
)

// DocumentModel is the fiscal model code: 55 (NFe) or 65 (NFC-e).
type DocumentModel string

const (
	DocumentModelNFe  DocumentModel = "55"
	DocumentModelNFCe DocumentModel = "65"
)

func (m DocumentModel) Valid() bool {
	return m == DocumentModelNFe || m == DocumentModelNFCe
}

// Environment is the SEFAZ environment a document was issued against.
type Environment string

const (
	EnvironmentHomologacao Environment = "homologacao"
	EnvironmentProducao    Environment = "producao"
)

// FiscalDocument is the persisted invoice record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// The full nested form is kept in Form so drafts can be resumed and
// authorized documents inspected or cloned.
type FiscalDocument struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Model           DocumentModel   `json:"modelo"`
	Series          int             `json:"serie"`
	Number          int             `json:"numero"`
	Status          DocumentStatus  `json:"status"`
	OperationNature string          `json:"natureza_operacao"`
	RecipientName   string          `json:"nome_destinatario"`
	Total           decimal.Decimal `json:"valor_total"`
	Environment     Environment     `json:"ambiente"`
	NumericCode     string          `json:"codigo_numerico"`

	AccessKey   string `json:"chave,omitempty"`
	Protocol    string `json:"protocolo,omitempty"`
	Receipt     string `json:"recibo,omitempty"`
	SefazCode   string `json:"codigo_sefaz,omitempty"`
	SefazReason string `json:"motivo_sefaz,omitempty"`
	XML         string `json:"xml,omitempty"`
	XMLPath     string `json:"xml_path,omitempty"`
	PDFPath     string `json:"pdf_path,omitempty"`

	Form Form `json:"form"`

	IssuedAt           time.Time `json:"data_emissao,omitempty"`
	AuthorizedAt       time.Time `json:"data_autorizacao,omitempty"`
	CancelReason       string    `json:"motivo_cancelamento,omitempty"`
	CancelledAt        time.Time `json:"data_cancelamento,omitempty"`
	InvalidationReason string    `json:"motivo_inutilizacao,omitempty"`
	InvalidatedAt      time.Time `json:"data_inutilizacao,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d FiscalDocument) IsDraft() bool {
	return d.Status == DocumentStatusRascunho
}

// CanBeCancelled reports whether SEFAZ accepts a cancellation event for the document.
func (d FiscalDocument) CanBeCancelled() bool {
	return d.Status == DocumentStatusAutorizada
}

// CanReceiveCorrection reports whether a CCe may be attached. Cancelled documents never qualify.
func (d FiscalDocument) CanReceiveCorrection() bool {
	return d.Status == DocumentStatusAutorizada
}

func (d FiscalDocument) CanBeInvalidated() bool {
	switch d.Status {
	case DocumentStatusAutorizada, DocumentStatusCancelada, DocumentStatusInutilizada:
		return false
	default:
		return true
	}
}

// CloneAsDraft copies the commercial content of the document into a new draft.
// Numbering, access key, protocol, XML and dates are left for the next emission.
func (d FiscalDocument) CloneAsDraft(id, numericCode string, now time.Time) FiscalDocument {
	form := d.Form.Clone()
	form.Identification.Number = 0
	form.Identification.IssueDate = time.Time{}

	return FiscalDocument{
		ID:              id,
		CompanyID:       d.CompanyID,
		Model:           d.Model,
		Series:          d.Series,
		Status:          DocumentStatusRascunho,
		OperationNature: d.OperationNature,
		RecipientName:   d.RecipientName,
		Total:           d.Total,
		Environment:     d.Environment,
		NumericCode:     numericCode,
		Form:            form,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// DocumentFilter narrows listings. Zero values match everything.
type DocumentFilter struct {
	Status DocumentStatus
	Model  DocumentModel
	Series int
}

func (f DocumentFilter) Match(d FiscalDocument) bool {
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.Model != "" && d.Model != f.Model {
		return false
	}
	if f.Series > 0 && d.Series != f.Series {
		return false
	}
	return true
}
