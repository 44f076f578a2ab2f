package fiscal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"
)

// envelope is the fiscal backend's response wrapper.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorType string          `json:"error_type,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// BackendError is a failure reported by the fiscal backend itself.
type BackendError struct {
	HTTPStatus int
	Type       string
	Message    string
}

func (e *BackendError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("fiscal backend %s (http %d): %s", e.Type, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("fiscal backend error (http %d): %s", e.HTTPStatus, e.Message)
}

func (e *BackendError) Is(target error) bool {
	return target == interfaces.ErrFiscalBackend
}

type emitPayload struct {
	CompanyID   string               `json:"empresa_id"`
	DocumentID  string               `json:"nfe_id,omitempty"`
	NumericCode string               `json:"codigo_numerico"`
	Environment entities.Environment `json:"ambiente"`
	Issuer      entities.Company     `json:"emitente"`
	Form        entities.Form        `json:"nfe_data"`
}

type emitData struct {
	AccessKey    string  `json:"chave"`
	Protocol     string  `json:"protocolo"`
	Receipt      string  `json:"recibo"`
	Status       string  `json:"status"`
	Reason       string  `json:"motivo"`
	XMLPath      string  `json:"xml_path"`
	PDFPath      string  `json:"pdf_path"`
	Number       flexInt `json:"numero"`
	Series       flexInt `json:"serie"`
	AuthorizedAt string  `json:"data_autorizacao"`
	XML          string  `json:"xml"`
}

type cancelPayload struct {
	CompanyID  string `json:"empresa_id"`
	DocumentID string `json:"nfe_id,omitempty"`
	AccessKey  string `json:"chave"`
	Reason     string `json:"motivo"`
}

type invalidatePayload struct {
	CompanyID string `json:"empresa_id"`
	CNPJ      string `json:"cnpj"`
	Model     string `json:"modelo"`
	Series    int    `json:"serie"`
	From      int    `json:"numero_inicial"`
	To        int    `json:"numero_final"`
	Reason    string `json:"justificativa"`
}

type correctionPayload struct {
	CompanyID string `json:"empresa_id"`
	AccessKey string `json:"chave"`
	Text      string `json:"correcao"`
	Sequence  int    `json:"sequencia"`
}

type eventData struct {
	Protocol string `json:"protocolo"`
	Status   string `json:"status"`
	Reason   string `json:"motivo"`
	XML      string `json:"xml"`
}

type correctionData struct {
	Sequence     flexInt `json:"sequencia"`
	Text         string  `json:"correcao"`
	Protocol     string  `json:"protocolo"`
	Status       string  `json:"codigo_status"`
	PDFPath      string  `json:"pdf_path"`
	RegisteredAt string  `json:"data_registro"`
}

type keyPayload struct {
	CompanyID string `json:"empresa_id"`
	AccessKey string `json:"chave"`
	Sequence  int    `json:"sequencia,omitempty"`
}

type pathData struct {
	PDFPath string `json:"pdf_path"`
}

type previewPayload struct {
	CompanyID string        `json:"empresa_id"`
	Form      entities.Form `json:"nfe_data"`
}

type emailPayload struct {
	CompanyID string   `json:"empresa_id"`
	AccessKey string   `json:"chave"`
	Emails    []string `json:"emails"`
	Number    int      `json:"numero"`
	Series    int      `json:"serie"`
	Total     string   `json:"valor_total"`
	Issuer    string   `json:"emitente"`
	Recipient string   `json:"destinatario"`
}

type sefazStatusData struct {
	Code         string  `json:"codigo_status"`
	Reason       string  `json:"motivo"`
	ResponseTime float64 `json:"tempo_resposta"`
}

type certificateData struct {
	Exists     bool   `json:"exists"`
	ValidUntil string `json:"validade"`
	Status     string `json:"status"`
	Subject    string `json:"nome_certificado"`
}

// flexInt accepts numbers sent either as JSON numbers or numeric strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	var n int
	if _, err := fmt.Sscan(s, &n); err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*f = flexInt(n)
	return nil
}

const backendTimeLayout = "2006-01-02 15:04:05"

// normalizeTimestamp converts the backend's local timestamp into RFC3339.
// Values already in RFC3339 pass through; anything else is dropped.
func normalizeTimestamp(s string, loc *time.Location) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	if t, err := time.ParseInLocation(backendTimeLayout, s, loc); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return ""
}
