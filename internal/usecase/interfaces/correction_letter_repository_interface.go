package interfaces

import (
	"context"
	"nfe_backoffice/internal/domain/entities"
)

type ICorrectionLetterRepository interface {
	Create(ctx context.Context, letter entities.CorrectionLetter) (entities.CorrectionLetter, error)
	ListByDocumentID(ctx context.Context, documentID string) ([]entities.CorrectionLetter, error)
}
