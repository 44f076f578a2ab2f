package entities

import "time"

const (
	// MaxCorrectionSequence is the highest CCe sequence SEFAZ accepts per document.
	MaxCorrectionSequence  = 20
	MinJustificationLength = 15
	MaxCorrectionLength    = 1000
	MaxCancelReasonLength  = 255
)

// CorrectionLetter (CCe) is an append-only amendment attached to an authorized document.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (document_id-index): document_id
type CorrectionLetter struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"document_id"`
	CompanyID    string    `json:"company_id"`
	AccessKey    string    `json:"chave"`
	Sequence     int       `json:"sequencia"`
	Text         string    `json:"correcao"`
	Protocol     string    `json:"protocolo"`
	SefazCode    string    `json:"codigo_sefaz,omitempty"`
	PDFPath      string    `json:"pdf_path,omitempty"`
	RegisteredAt time.Time `json:"data_registro"`
}

// NextCorrectionSequence returns max(sequence)+1 over the existing letters.
func NextCorrectionSequence(letters []CorrectionLetter) int {
	max := 0
	for _, l := range letters {
		if l.Sequence > max {
			max = l.Sequence
		}
	}
	return max + 1
}
