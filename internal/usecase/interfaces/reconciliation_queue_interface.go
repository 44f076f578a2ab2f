package interfaces

import (
	"context"
	"time"

	"nfe_backoffice/internal/domain/entities"
)

type ReconciliationKind string

const (
	// ReconcilePersist retries the local write of a document SEFAZ already accepted.
	ReconcilePersist ReconciliationKind = "persist"
	// ReconcileStatusCheck asks the fiscal backend for the final status of a provisional document.
	ReconcileStatusCheck ReconciliationKind = "status_check"
)

type ReconciliationTask struct {
	ID         string                  `json:"id"`
	Kind       ReconciliationKind      `json:"kind"`
	Document   entities.FiscalDocument `json:"document"`
	IsNew      bool                    `json:"is_new"`
	Attempts   int                     `json:"attempts"`
	LastError  string                  `json:"last_error,omitempty"`
	EnqueuedAt time.Time               `json:"enqueued_at"`
}

type IReconciliationQueue interface {
	Enqueue(ctx context.Context, task ReconciliationTask) error
	Dequeue(ctx context.Context, wait time.Duration) (ReconciliationTask, bool, error)
	DeadLetter(ctx context.Context, task ReconciliationTask) error
}
