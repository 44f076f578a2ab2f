package interfaces

import (
	"context"
	"nfe_backoffice/internal/domain/entities"
)

// IFiscalDocumentRepository abstracts DynamoDB persistence for fiscal documents.
//
// Lookups return the zero document (empty ID) when nothing matches.
type IFiscalDocumentRepository interface {
	Create(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error)
	Update(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error)
	GetByID(ctx context.Context, companyID, id string) (entities.FiscalDocument, error)
	GetByAccessKey(ctx context.Context, companyID, accessKey string) (entities.FiscalDocument, error)
	ListByCompany(ctx context.Context, companyID string, filter entities.DocumentFilter) ([]entities.FiscalDocument, error)
	FindByNumber(ctx context.Context, companyID string, model entities.DocumentModel, series, number int) ([]entities.FiscalDocument, error)
	MaxNumber(ctx context.Context, companyID string, model entities.DocumentModel, series int) (int, error)
}
