package usecase

import (
	"fmt"
	"sync"
	"time"

	"nfe_backoffice/internal/domain/entities"
)

// EmissionTracker holds the step list and the append-only log of one emission.
// Settled steps never change again, and once a step errors the tracker is halted:
// later transitions are ignored.
type EmissionTracker struct {
	mu       sync.RWMutex
	job      entities.EmissionJob
	started  map[entities.EmissionStepID]time.Time
	halted   bool
	now      func() time.Time
	onSettle func(step entities.EmissionStepID, status entities.StepStatus, took time.Duration)
}

func NewEmissionTracker(jobID, companyID string, withEmail bool) *EmissionTracker {
	return &EmissionTracker{
		job: entities.EmissionJob{
			ID:        jobID,
			CompanyID: companyID,
			Steps:     entities.DefaultEmissionSteps(withEmail),
			Outcome:   entities.EmissionRunning,
			StartedAt: utcNow(),
		},
		started: map[entities.EmissionStepID]time.Time{},
		now:     utcNow,
	}
}

// OnSettle registers a callback fired when a step reaches a terminal status.
func (t *EmissionTracker) OnSettle(fn func(step entities.EmissionStepID, status entities.StepStatus, took time.Duration)) {
	t.mu.Lock()
	t.onSettle = fn
	t.mu.Unlock()
}

func (t *EmissionTracker) Begin(step entities.EmissionStepID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.halted {
		return
	}
	s := t.step(step)
	if s == nil || s.Status != entities.StepStatusPending {
		return
	}
	s.Status = entities.StepStatusLoading
	t.started[step] = t.now()
}

func (t *EmissionTracker) Succeed(step entities.EmissionStepID, message string) {
	t.settle(step, entities.StepStatusSuccess, message)
}

func (t *EmissionTracker) Warn(step entities.EmissionStepID, message string) {
	t.settle(step, entities.StepStatusWarning, message)
}

// Fail marks the step as errored and halts the tracker.
func (t *EmissionTracker) Fail(step entities.EmissionStepID, message string) {
	t.settle(step, entities.StepStatusError, message)
}

func (t *EmissionTracker) settle(step entities.EmissionStepID, status entities.StepStatus, message string) {
	t.mu.Lock()
	if t.halted {
		t.mu.Unlock()
		return
	}
	s := t.step(step)
	if s == nil || s.Status == entities.StepStatusSuccess || s.Status == entities.StepStatusWarning || s.Status == entities.StepStatusError {
		t.mu.Unlock()
		return
	}
	s.Status = status
	s.Message = message
	if status == entities.StepStatusError {
		t.halted = true
	}
	var took time.Duration
	if at, ok := t.started[step]; ok {
		took = t.now().Sub(at)
	}
	fn := t.onSettle
	t.mu.Unlock()

	if fn != nil {
		fn(step, status, took)
	}
}

// Logf appends a timestamped line to the emission log.
func (t *EmissionTracker) Logf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.Log = append(t.job.Log, entities.EmissionLogEntry{At: t.now(), Message: fmt.Sprintf(format, args...)})
}

func (t *EmissionTracker) Halted() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.halted
}

func (t *EmissionTracker) SetDocumentID(id string) {
	t.mu.Lock()
	t.job.DocumentID = id
	t.mu.Unlock()
}

func (t *EmissionTracker) SetViolations(v []string) {
	t.mu.Lock()
	t.job.Violations = append([]string(nil), v...)
	t.mu.Unlock()
}

func (t *EmissionTracker) SetErrorInfo(info entities.SefazErrorInfo) {
	t.mu.Lock()
	t.job.ErrorInfo = &info
	t.mu.Unlock()
}

// Finish records the terminal outcome. Only the first call has effect.
func (t *EmissionTracker) Finish(outcome entities.EmissionOutcome, result *entities.EmissionResult, errMsg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.job.Finished() {
		return
	}
	t.job.Outcome = outcome
	t.job.Error = errMsg
	if result != nil {
		r := *result
		r.Warnings = append([]string(nil), result.Warnings...)
		t.job.Result = &r
	}
	t.job.FinishedAt = t.now()
}

// Snapshot returns a copy safe to hand to other goroutines.
func (t *EmissionTracker) Snapshot() entities.EmissionJob {
	t.mu.RLock()
	defer t.mu.RUnlock()
	j := t.job
	j.Steps = append([]entities.EmissionStep(nil), t.job.Steps...)
	j.Log = append([]entities.EmissionLogEntry(nil), t.job.Log...)
	j.Violations = append([]string(nil), t.job.Violations...)
	if t.job.Result != nil {
		r := *t.job.Result
		r.Warnings = append([]string(nil), t.job.Result.Warnings...)
		j.Result = &r
	}
	if t.job.ErrorInfo != nil {
		info := *t.job.ErrorInfo
		j.ErrorInfo = &info
	}
	return j
}

func (t *EmissionTracker) step(id entities.EmissionStepID) *entities.EmissionStep {
	for i := range t.job.Steps {
		if t.job.Steps[i].ID == id {
			return &t.job.Steps[i]
		}
	}
	return nil
}
