package interfaces

import (
	"context"
	"errors"

	"nfe_backoffice/internal/domain/entities"
)

// ErrFiscalBackend matches every failure reported by the fiscal backend itself.
var ErrFiscalBackend = errors.New("fiscal backend error")

// IFiscalGateway abstracts the external fiscal backend that builds, signs and
// submits XML to SEFAZ, renders DANFE/CCe PDFs and dispatches e-mails.
//
// Every call honours ctx cancellation.
type IFiscalGateway interface {
	Emit(ctx context.Context, req EmitRequest) (EmitResponse, error)
	FetchArtifact(ctx context.Context, req ArtifactRequest) (Artifact, error)
	Cancel(ctx context.Context, req CancelRequest) (EventResponse, error)
	Invalidate(ctx context.Context, req InvalidateRequest) (EventResponse, error)
	SubmitCorrection(ctx context.Context, req CorrectionRequest) (EventResponse, error)
	ListCorrections(ctx context.Context, companyID, accessKey string) ([]entities.CorrectionLetter, error)
	GenerateCorrectionPDF(ctx context.Context, companyID, accessKey string, sequence int) (string, error)
	GenerateDANFE(ctx context.Context, companyID, accessKey string) (string, error)
	GeneratePreview(ctx context.Context, companyID string, form entities.Form) ([]byte, error)
	SendEmail(ctx context.Context, req EmailRequest) error
	QueryStatus(ctx context.Context, companyID, accessKey string) (EmitResponse, error)
	Health(ctx context.Context) (ProbeResult, error)
	SefazStatus(ctx context.Context, companyID string) (ProbeResult, error)
	CertificateStatus(ctx context.Context, companyID string) (CertificateInfo, error)
}

type EmitRequest struct {
	CompanyID   string
	DocumentID  string
	NumericCode string
	Environment entities.Environment
	Company     entities.Company
	Form        entities.Form
}

type EmitResponse struct {
	AccessKey    string
	Protocol     string
	Receipt      string
	Status       entities.SefazStatus
	Reason       string
	XML          string
	XMLPath      string
	PDFPath      string
	Number       int
	Series       int
	AuthorizedAt string
}

type ArtifactKind string

const (
	ArtifactXML ArtifactKind = "xml"
	ArtifactPDF ArtifactKind = "pdf"
)

type ArtifactRequest struct {
	Kind      ArtifactKind
	CompanyID string
	AccessKey string
	Path      string
}

type Artifact struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type CancelRequest struct {
	CompanyID  string
	DocumentID string
	AccessKey  string
	Reason     string
}

type InvalidateRequest struct {
	CompanyID string
	CNPJ      string
	Model     entities.DocumentModel
	Series    int
	From      int
	To        int
	Reason    string
}

type CorrectionRequest struct {
	CompanyID string
	AccessKey string
	Text      string
	Sequence  int
}

// EventResponse is the outcome of a SEFAZ event (cancellation, CCe, invalidation).
type EventResponse struct {
	Protocol string
	Status   entities.SefazStatus
	Reason   string
	XML      string
}

type EmailRequest struct {
	CompanyID string
	AccessKey string
	Emails    []string
	Number    int
	Series    int
	Total     string
	Company   entities.Company
	Recipient string
}

type ProbeResult struct {
	Online       bool
	Code         string
	Reason       string
	ResponseTime int64
}

type CertificateInfo struct {
	Exists     bool
	ValidUntil string
	Status     entities.CertificateStatus
	Subject    string
}
