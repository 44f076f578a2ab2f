package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"nfe_backoffice/internal/domain/entities"
)

var ErrInvalidSectionPayload = errors.New("invalid section payload")

// SaveDraftRequest creates a draft when ID is empty and overwrites it otherwise.
type SaveDraftRequest struct {
	ID   string        `json:"id"`
	Form entities.Form `json:"form"`
}

type FormRequest struct {
	Form entities.Form `json:"form"`
}

type DocumentListQuery struct {
	Status string `form:"status"`
	Model  string `form:"modelo"`
	Series int    `form:"serie"`
}

func (q DocumentListQuery) ToFilter() entities.DocumentFilter {
	return entities.DocumentFilter{
		Status: entities.DocumentStatus(strings.TrimSpace(q.Status)),
		Model:  entities.DocumentModel(strings.TrimSpace(q.Model)),
		Series: q.Series,
	}
}

type NextNumberQuery struct {
	Model  string `form:"modelo" binding:"required"`
	Series int    `form:"serie"`
}

// DecodeSection unmarshals raw into the typed section named by kind.
func DecodeSection(kind string, raw []byte) (entities.Section, error) {
	var (
		target  any
		section func() entities.Section
	)
	switch entities.SectionKind(kind) {
	case entities.SectionIdentification:
		var v entities.Identification
		target, section = &v, func() entities.Section { return v }
	case entities.SectionRecipient:
		var v entities.Recipient
		target, section = &v, func() entities.Section { return v }
	case entities.SectionLineItems:
		var v entities.LineItems
		target, section = &v, func() entities.Section { return v }
	case entities.SectionTotals:
		var v entities.Totals
		target, section = &v, func() entities.Section { return v }
	case entities.SectionPayments:
		var v entities.Payments
		target, section = &v, func() entities.Section { return v }
	case entities.SectionReferenceKeys:
		var v entities.ReferenceKeys
		target, section = &v, func() entities.Section { return v }
	case entities.SectionTransport:
		var v entities.Transport
		target, section = &v, func() entities.Section { return v }
	case entities.SectionIntermediary:
		var v entities.Intermediary
		target, section = &v, func() entities.Section { return v }
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownSection, kind)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSectionPayload, err)
	}
	return section(), nil
}
