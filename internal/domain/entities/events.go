package entities

import "time"

// Event is a typed domain notification published on the in-process bus.
type Event interface {
	EventName() string
}

type DocumentEmitted struct {
	DocumentID string
	CompanyID  string
	AccessKey  string
	Status     DocumentStatus
	Model      DocumentModel
	XMLPath    string
	PDFPath    string
	OccurredAt time.Time
}

func (DocumentEmitted) EventName() string { return "nfe.emitted" }

// EmissionAborted is raised when the pipeline halts before finalization.
type EmissionAborted struct {
	CompanyID  string
	Step       EmissionStepID
	Reason     string
	SefazCode  string
	OccurredAt time.Time
}

func (EmissionAborted) EventName() string { return "nfe.emission_failed" }

// DocumentPersistDeferred is raised when SEFAZ authorized a document but the
// local write failed and a reconciliation task was queued instead.
type DocumentPersistDeferred struct {
	DocumentID string
	CompanyID  string
	AccessKey  string
	Reason     string
	OccurredAt time.Time
}

func (DocumentPersistDeferred) EventName() string { return "nfe.persist_deferred" }

type DocumentCancelled struct {
	DocumentID string
	CompanyID  string
	AccessKey  string
	OccurredAt time.Time
}

func (DocumentCancelled) EventName() string { return "nfe.cancelled" }

type NumberRangeInvalidated struct {
	CompanyID  string
	Model      DocumentModel
	Series     int
	From       int
	To         int
	OccurredAt time.Time
}

func (NumberRangeInvalidated) EventName() string { return "nfe.range_invalidated" }

type CorrectionLetterRegistered struct {
	DocumentID string
	CompanyID  string
	AccessKey  string
	Sequence   int
	PDFPath    string
	OccurredAt time.Time
}

func (CorrectionLetterRegistered) EventName() string { return "nfe.cce_registered" }

// EmissionStepFinished is published whenever a pipeline step settles.
type EmissionStepFinished struct {
	Step     EmissionStepID
	Status   StepStatus
	Duration time.Duration
}

func (EmissionStepFinished) EventName() string { return "nfe.emission_step" }
