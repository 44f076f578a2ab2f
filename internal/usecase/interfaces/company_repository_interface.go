package interfaces

import (
	"context"
	"nfe_backoffice/internal/domain/entities"
)

type ICompanyRepository interface {
	GetByID(ctx context.Context, id string) (entities.Company, error)
}

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
