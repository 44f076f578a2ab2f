package usecase

import (
	"context"
	"strings"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IDocumentUseCase exposes draft authoring and document queries.
//
//   - "Salvar rascunho" => SaveDraft()
//   - section editors => UpdateSection()
//   - "Duplicar NFe" => Clone()
//   - "Espelho DANFE" => Preview()
type IDocumentUseCase interface {
	SaveDraft(ctx context.Context, companyID string, cmd SaveDraftCommand) (entities.FiscalDocument, error)
	UpdateSection(ctx context.Context, companyID, id string, section entities.Section) (entities.FiscalDocument, error)
	GetByID(ctx context.Context, companyID, id string) (entities.FiscalDocument, error)
	List(ctx context.Context, companyID string, filter entities.DocumentFilter) ([]entities.FiscalDocument, error)
	NextNumber(ctx context.Context, companyID string, model entities.DocumentModel, series int) (int, error)
	Clone(ctx context.Context, companyID, id string) (entities.FiscalDocument, error)
	Validate(ctx context.Context, companyID string, form entities.Form) ([]string, error)
	Preview(ctx context.Context, companyID string, form entities.Form) ([]byte, error)
}

type SaveDraftCommand struct {
	DocumentID string
	Form       entities.Form
}

type DocumentUseCase struct {
	docs      interfaces.IFiscalDocumentRepository
	companies interfaces.ICompanyRepository
	gateway   interfaces.IFiscalGateway
	logger    *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	docs interfaces.IFiscalDocumentRepository,
	companies interfaces.ICompanyRepository,
	gateway interfaces.IFiscalGateway,
	logger *zap.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{docs: docs, companies: companies, gateway: gateway, logger: loggerOrNop(logger)}
}

// SaveDraft persists the form as a draft. It only requires a loaded company and an
// operation nature; everything else is checked at emission time.
func (u *DocumentUseCase) SaveDraft(ctx context.Context, companyID string, cmd SaveDraftCommand) (entities.FiscalDocument, error) {
	company, err := loadCompany(ctx, u.companies, companyID)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if strings.TrimSpace(cmd.Form.Identification.OperationNature) == "" {
		return entities.FiscalDocument{}, ErrOperationNatureRequired
	}

	form := cmd.Form.Clone()
	if form.Identification.Model == "" {
		form.Identification.Model = entities.DocumentModelNFe
	}
	if !form.Identification.Model.Valid() {
		return entities.FiscalDocument{}, ErrInvalidModel
	}
	form.SetLineItems(form.Items)

	now := utcNow()
	if strings.TrimSpace(cmd.DocumentID) != "" {
		existing, err := loadDocument(ctx, u.docs, company.ID, cmd.DocumentID)
		if err != nil {
			return entities.FiscalDocument{}, err
		}
		if !existing.IsDraft() {
			return entities.FiscalDocument{}, ErrDocumentNotDraft
		}
		applyFormHeader(&existing, form)
		if existing.NumericCode == "" {
			existing.NumericCode = newNumericCode()
		}
		existing.Environment = company.Environment
		existing.UpdatedAt = now

		updated, err := u.docs.Update(ctx, existing)
		if err != nil {
			return entities.FiscalDocument{}, err
		}
		if updated.ID == "" {
			return entities.FiscalDocument{}, ErrDocumentNotFound
		}
		u.logger.Info("[nfe][usecase] draft updated", zap.String("document_id", updated.ID), zap.String("company_id", company.ID))
		return updated, nil
	}

	doc := entities.FiscalDocument{
		ID:          uuid.NewString(),
		CompanyID:   company.ID,
		Status:      entities.DocumentStatusRascunho,
		Environment: company.Environment,
		NumericCode: newNumericCode(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyFormHeader(&doc, form)

	created, err := u.docs.Create(ctx, doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	u.logger.Info("[nfe][usecase] draft created", zap.String("document_id", created.ID), zap.String("company_id", company.ID))
	return created, nil
}

// UpdateSection replaces one typed section of a draft.
func (u *DocumentUseCase) UpdateSection(ctx context.Context, companyID, id string, section entities.Section) (entities.FiscalDocument, error) {
	doc, err := loadDocument(ctx, u.docs, companyID, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if !doc.IsDraft() {
		return entities.FiscalDocument{}, ErrDocumentNotDraft
	}

	form := doc.Form.Clone()
	if err := form.Apply(section); err != nil {
		return entities.FiscalDocument{}, err
	}
	applyFormHeader(&doc, form)
	doc.UpdatedAt = utcNow()

	updated, err := u.docs.Update(ctx, doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if updated.ID == "" {
		return entities.FiscalDocument{}, ErrDocumentNotFound
	}
	return updated, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, companyID, id string) (entities.FiscalDocument, error) {
	if strings.TrimSpace(companyID) == "" {
		return entities.FiscalDocument{}, ErrInvalidCompanyID
	}
	return loadDocument(ctx, u.docs, companyID, id)
}

func (u *DocumentUseCase) List(ctx context.Context, companyID string, filter entities.DocumentFilter) ([]entities.FiscalDocument, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.docs.ListByCompany(ctx, companyID, filter)
}

// NextNumber returns max(number)+1 for the company, model and series.
func (u *DocumentUseCase) NextNumber(ctx context.Context, companyID string, model entities.DocumentModel, series int) (int, error) {
	if strings.TrimSpace(companyID) == "" {
		return 0, ErrInvalidCompanyID
	}
	if !model.Valid() {
		return 0, ErrInvalidModel
	}
	if series < 0 || series > 999 {
		return 0, ErrInvalidSeries
	}
	max, err := u.docs.MaxNumber(ctx, companyID, model, series)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// Clone copies a document into a new draft with numbering and fiscal artifacts cleared.
func (u *DocumentUseCase) Clone(ctx context.Context, companyID, id string) (entities.FiscalDocument, error) {
	src, err := loadDocument(ctx, u.docs, companyID, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}

	clone := src.CloneAsDraft(uuid.NewString(), newNumericCode(), utcNow())
	created, err := u.docs.Create(ctx, clone)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	u.logger.Info("[nfe][usecase] document cloned",
		zap.String("source_id", src.ID),
		zap.String("document_id", created.ID),
	)
	return created, nil
}

// Validate runs the pre-flight checks against the company profile.
func (u *DocumentUseCase) Validate(ctx context.Context, companyID string, form entities.Form) ([]string, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, ErrInvalidCompanyID
	}
	company, err := u.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return Preflight(company, form), nil
}

// Preview asks the fiscal backend for an unsigned DANFE mirror of the form.
func (u *DocumentUseCase) Preview(ctx context.Context, companyID string, form entities.Form) ([]byte, error) {
	if u.gateway == nil {
		return nil, ErrFiscalGatewayNotSet
	}
	if _, err := loadCompany(ctx, u.companies, companyID); err != nil {
		return nil, err
	}
	return u.gateway.GeneratePreview(ctx, companyID, form)
}
