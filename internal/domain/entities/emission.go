package entities

import "time"

// EmissionStepID names one stage of the emission pipeline, in execution order.
type EmissionStepID string

const (
	StepValidation       EmissionStepID = "validation"
	StepXMLGeneration    EmissionStepID = "xml_generation"
	StepSefazSubmission  EmissionStepID = "sefaz_submission"
	StepXMLArtifactCheck EmissionStepID = "xml_artifact_check"
	StepPDFArtifactCheck EmissionStepID = "pdf_artifact_check"
	StepDatabasePersist  EmissionStepID = "database_persist"
	StepFinalization     EmissionStepID = "finalization"
	StepEmail            EmissionStepID = "email"
)

type StepStatus string

const (
	StepStatusPending StepStatus = "pending"
	StepStatusLoading StepStatus = "loading"
	StepStatusSuccess StepStatus = "success"
	StepStatusError   StepStatus = "error"
	StepStatusWarning StepStatus = "warning"
)

type EmissionStep struct {
	ID      EmissionStepID `json:"id"`
	Label   string         `json:"label"`
	Status  StepStatus     `json:"status"`
	Message string         `json:"message,omitempty"`
}

// DefaultEmissionSteps is the fixed pipeline. The email step is appended only
// when the recipient has registered addresses.
func DefaultEmissionSteps(withEmail bool) []EmissionStep {
	steps := []EmissionStep{
		{ID: StepValidation, Label: "Validando dados", Status: StepStatusPending},
		{ID: StepXMLGeneration, Label: "Gerando XML", Status: StepStatusPending},
		{ID: StepSefazSubmission, Label: "Enviando para SEFAZ", Status: StepStatusPending},
		{ID: StepXMLArtifactCheck, Label: "Verificando XML", Status: StepStatusPending},
		{ID: StepPDFArtifactCheck, Label: "Verificando DANFE", Status: StepStatusPending},
		{ID: StepDatabasePersist, Label: "Salvando no banco de dados", Status: StepStatusPending},
		{ID: StepFinalization, Label: "Finalizando", Status: StepStatusPending},
	}
	if withEmail {
		steps = append(steps, EmissionStep{ID: StepEmail, Label: "Enviando e-mail", Status: StepStatusPending})
	}
	return steps
}

type EmissionLogEntry struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

// EmissionOutcome is the terminal state of an emission job.
type EmissionOutcome string

const (
	EmissionRunning             EmissionOutcome = "running"
	EmissionEmitted             EmissionOutcome = "emitted"
	EmissionEmittedWithWarnings EmissionOutcome = "emitted_with_warnings"
	EmissionFailed              EmissionOutcome = "failed"
	EmissionCancelled           EmissionOutcome = "cancelled"
)

// EmissionResult is what a successful SEFAZ round trip yields.
type EmissionResult struct {
	DocumentID      string         `json:"document_id"`
	AccessKey       string         `json:"chave"`
	Protocol        string         `json:"protocolo"`
	SefazCode       SefazStatus    `json:"codigo_sefaz"`
	SefazReason     string         `json:"motivo_sefaz"`
	Status          DocumentStatus `json:"status"`
	Number          int            `json:"numero"`
	Series          int            `json:"serie"`
	XMLPath         string         `json:"xml_path,omitempty"`
	PDFPath         string         `json:"pdf_path,omitempty"`
	Persisted       bool           `json:"persisted"`
	EmailSent       bool           `json:"email_sent"`
	Warnings        []string       `json:"warnings,omitempty"`
	ActionsUnlocked bool           `json:"actions_unlocked"`
}

// EmissionJob is the observable state of one emission: tracker, log and outcome.
type EmissionJob struct {
	ID         string             `json:"id"`
	CompanyID  string             `json:"company_id"`
	DocumentID string             `json:"document_id,omitempty"`
	Steps      []EmissionStep     `json:"steps"`
	Log        []EmissionLogEntry `json:"log"`
	Outcome    EmissionOutcome    `json:"outcome"`
	Error      string             `json:"error,omitempty"`
	ErrorInfo  *SefazErrorInfo    `json:"error_info,omitempty"`
	Violations []string           `json:"violations,omitempty"`
	Result     *EmissionResult    `json:"result,omitempty"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at,omitempty"`
}

func (j EmissionJob) Finished() bool {
	return j.Outcome != EmissionRunning && j.Outcome != ""
}

// SefazErrorInfo is the operator-facing translation of a rejection.
type SefazErrorInfo struct {
	Code        string `json:"codigo"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Remedy      string `json:"solucao"`
	Category    string `json:"categoria"`
}
