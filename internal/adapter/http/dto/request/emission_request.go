package request

import "nfe_backoffice/internal/domain/entities"

// EmitRequest starts an emission. DocumentID links the run to an existing draft.
type EmitRequest struct {
	DocumentID string        `json:"document_id"`
	Form       entities.Form `json:"form"`
}
