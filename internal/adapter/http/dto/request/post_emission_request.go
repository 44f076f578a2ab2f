package request

import (
	"strings"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase"
)

type CancelRequest struct {
	Reason string `json:"justificativa" binding:"required"`
}

type InvalidateRequest struct {
	DocumentID string `json:"document_id"`
	Model      string `json:"modelo"`
	Series     int    `json:"serie"`
	From       int    `json:"numero_inicial"`
	To         int    `json:"numero_final"`
	Reason     string `json:"justificativa" binding:"required"`
}

func (r InvalidateRequest) ToCommand() usecase.InvalidateCommand {
	return usecase.InvalidateCommand{
		DocumentID: strings.TrimSpace(r.DocumentID),
		Model:      entities.DocumentModel(strings.TrimSpace(r.Model)),
		Series:     r.Series,
		From:       r.From,
		To:         r.To,
		Reason:     r.Reason,
	}
}

type CorrectionRequest struct {
	Text string `json:"correcao" binding:"required"`
}

type EmailRequest struct {
	Emails []string `json:"emails"`
}
