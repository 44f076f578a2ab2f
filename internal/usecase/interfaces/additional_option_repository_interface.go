package interfaces

import (
	"context"
	"nfe_backoffice/internal/domain/entities"
)

// IAdditionalOptionRepository stores options with their items embedded.
// Soft deletes are plain updates; nothing is ever removed.
type IAdditionalOptionRepository interface {
	Create(ctx context.Context, opt entities.AdditionalOption) (entities.AdditionalOption, error)
	Update(ctx context.Context, opt entities.AdditionalOption) (entities.AdditionalOption, error)
	GetByID(ctx context.Context, companyID, id string) (entities.AdditionalOption, error)
	ListByCompany(ctx context.Context, companyID string) ([]entities.AdditionalOption, error)
}
