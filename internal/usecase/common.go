package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCompanyID        = errors.New("invalid company id")
	ErrCompanyNotLoaded        = errors.New("company profile not loaded")
	ErrInvalidDocumentID       = errors.New("invalid document id")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrDocumentNotDraft        = errors.New("only drafts can be edited")
	ErrOperationNatureRequired = errors.New("operation nature is required")
	ErrInvalidModel            = errors.New("invalid document model")
	ErrInvalidSeries           = errors.New("invalid document series")
	ErrFiscalGatewayNotSet     = errors.New("fiscal gateway not configured")
)

// PreflightError carries the consolidated list of form violations.
type PreflightError struct {
	Violations []string
}

func (e *PreflightError) Error() string {
	return "form has violations: " + strings.Join(e.Violations, "; ")
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...entities.Event) {}

func publisherOrNoop(p interfaces.IEventPublisher) interfaces.IEventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// newNumericCode mints the 8-digit cNF that goes into the access key.
func newNumericCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100_000_000))
	if err != nil {
		return fmt.Sprintf("%08d", time.Now().UnixNano()%100_000_000)
	}
	return fmt.Sprintf("%08d", n.Int64())
}

func loadCompany(ctx context.Context, repo interfaces.ICompanyRepository, companyID string) (entities.Company, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}
	company, err := repo.GetByID(ctx, companyID)
	if err != nil {
		return entities.Company{}, err
	}
	if company.ID == "" {
		return entities.Company{}, ErrCompanyNotLoaded
	}
	return company, nil
}

func loadDocument(ctx context.Context, repo interfaces.IFiscalDocumentRepository, companyID, id string) (entities.FiscalDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FiscalDocument{}, ErrInvalidDocumentID
	}
	doc, err := repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if doc.ID == "" || doc.CompanyID != companyID {
		return entities.FiscalDocument{}, ErrDocumentNotFound
	}
	return doc, nil
}

// applyFormHeader copies the listing columns of a document from its form.
func applyFormHeader(doc *entities.FiscalDocument, form entities.Form) {
	doc.Form = form
	doc.Model = form.Identification.Model
	doc.Series = form.Identification.Series
	doc.Number = form.Identification.Number
	doc.OperationNature = form.Identification.OperationNature
	doc.RecipientName = form.Recipient.Name
	doc.Total = form.Totals.Total
}
