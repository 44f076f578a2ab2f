package interfaces

import (
	"context"

	"nfe_backoffice/internal/domain/entities"
)

type IEventPublisher interface {
	Publish(ctx context.Context, events ...entities.Event)
}

// ITokenIssuer signs access tokens for authenticated users.
type ITokenIssuer interface {
	Issue(user entities.User) (token string, expiresAt int64, err error)
}
