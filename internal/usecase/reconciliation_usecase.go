package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultReconcileMaxAttempts = 10
	DefaultReconcileInterval    = 30 * time.Second
	reconcileDequeueWait        = 5 * time.Second
)

var (
	ErrStillProcessing        = errors.New("document still being processed by SEFAZ")
	ErrUnknownReconcileTask   = errors.New("unknown reconciliation task kind")
	ErrReconcileQueueNotSet   = errors.New("reconciliation queue not configured")
	ErrReconcileMissingAccess = errors.New("status check requires an access key")
)

// ReconciliationWorker drains the reconciliation queue: it retries local writes
// of documents SEFAZ already accepted and polls provisional documents until
// their final status is known.
type ReconciliationWorker struct {
	queue       interfaces.IReconciliationQueue
	docs        interfaces.IFiscalDocumentRepository
	gateway     interfaces.IFiscalGateway
	publisher   interfaces.IEventPublisher
	logger      *zap.Logger
	maxAttempts int
	interval    time.Duration
}

func NewReconciliationWorker(
	queue interfaces.IReconciliationQueue,
	docs interfaces.IFiscalDocumentRepository,
	gateway interfaces.IFiscalGateway,
	publisher interfaces.IEventPublisher,
	logger *zap.Logger,
	maxAttempts int,
	interval time.Duration,
) *ReconciliationWorker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultReconcileMaxAttempts
	}
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	return &ReconciliationWorker{
		queue:       queue,
		docs:        docs,
		gateway:     gateway,
		publisher:   publisherOrNoop(publisher),
		logger:      loggerOrNop(logger),
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

// Run processes tasks until ctx is done. After a failed task it pauses for the
// configured interval so pending documents are not polled in a tight loop.
func (w *ReconciliationWorker) Run(ctx context.Context) error {
	if w.queue == nil {
		return ErrReconcileQueueNotSet
	}
	w.logger.Info("[reconcile][worker] started", zap.Int("max_attempts", w.maxAttempts))
	for {
		if ctx.Err() != nil {
			w.logger.Info("[reconcile][worker] stopped")
			return nil
		}
		_, err := w.RunOnce(ctx)
		if err == nil {
			continue
		}
		if ctx.Err() == nil {
			w.logger.Warn("[reconcile][worker] task not completed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
		case <-time.After(w.interval):
		}
	}
}

// RunOnce handles at most one task. It reports whether a task was dequeued.
func (w *ReconciliationWorker) RunOnce(ctx context.Context) (bool, error) {
	task, ok, err := w.queue.Dequeue(ctx, reconcileDequeueWait)
	if err != nil || !ok {
		return false, err
	}

	herr := w.handle(ctx, task)
	if herr == nil {
		w.logger.Info("[reconcile][worker] task done",
			zap.String("task_id", task.ID),
			zap.String("kind", string(task.Kind)),
			zap.String("document_id", task.Document.ID),
		)
		return true, nil
	}

	task.Attempts++
	task.LastError = herr.Error()
	bg := context.WithoutCancel(ctx)
	if task.Attempts >= w.maxAttempts {
		w.logger.Error("[reconcile][worker] giving up on task",
			zap.String("task_id", task.ID),
			zap.String("document_id", task.Document.ID),
			zap.String("access_key", task.Document.AccessKey),
			zap.Int("attempts", task.Attempts),
			zap.Error(herr),
		)
		if err := w.queue.DeadLetter(bg, task); err != nil {
			return true, fmt.Errorf("dead letter: %w", err)
		}
		return true, herr
	}
	if err := w.queue.Enqueue(bg, task); err != nil {
		return true, fmt.Errorf("requeue: %w", err)
	}
	return true, herr
}

func (w *ReconciliationWorker) handle(ctx context.Context, task interfaces.ReconciliationTask) error {
	switch task.Kind {
	case interfaces.ReconcilePersist:
		_, err := w.upsert(ctx, task.Document)
		return err
	case interfaces.ReconcileStatusCheck:
		return w.checkStatus(ctx, task.Document)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownReconcileTask, task.Kind)
	}
}

func (w *ReconciliationWorker) upsert(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
	existing, err := w.docs.GetByID(ctx, doc.CompanyID, doc.ID)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	doc.UpdatedAt = utcNow()
	if existing.ID == "" {
		return w.docs.Create(ctx, doc)
	}
	return w.docs.Update(ctx, doc)
}

func (w *ReconciliationWorker) checkStatus(ctx context.Context, doc entities.FiscalDocument) error {
	if doc.AccessKey == "" {
		return ErrReconcileMissingAccess
	}
	if w.gateway == nil {
		return ErrFiscalGatewayNotSet
	}

	current, err := w.docs.GetByID(ctx, doc.CompanyID, doc.ID)
	if err != nil {
		return err
	}
	if current.ID != "" {
		if current.Status != entities.DocumentStatusPendente {
			return nil
		}
		doc = current
	}

	resp, err := w.gateway.QueryStatus(ctx, doc.CompanyID, doc.AccessKey)
	if err != nil {
		return fmt.Errorf("status query: %w", err)
	}
	if resp.Status.IsProcessing() {
		return ErrStillProcessing
	}

	now := utcNow()
	doc.Status = resp.Status.DocumentStatus()
	doc.SefazCode = string(resp.Status)
	doc.SefazReason = resp.Reason
	if resp.Protocol != "" {
		doc.Protocol = resp.Protocol
	}
	if resp.XML != "" {
		doc.XML = resp.XML
	}
	if resp.XMLPath != "" {
		doc.XMLPath = resp.XMLPath
	}
	if resp.PDFPath != "" {
		doc.PDFPath = resp.PDFPath
	}
	if resp.Status.IsAuthorized() {
		doc.AuthorizedAt = now
		if t, err := time.Parse(time.RFC3339, resp.AuthorizedAt); err == nil {
			doc.AuthorizedAt = t.UTC()
		}
	}

	saved, err := w.upsert(ctx, doc)
	if err != nil {
		return err
	}
	if saved.ID == "" {
		saved = doc
	}
	w.logger.Info("[reconcile][worker] provisional document settled",
		zap.String("document_id", saved.ID),
		zap.String("access_key", saved.AccessKey),
		zap.String("status", string(saved.Status)),
	)
	if saved.Status == entities.DocumentStatusAutorizada {
		w.publisher.Publish(ctx, entities.DocumentEmitted{
			DocumentID: saved.ID,
			CompanyID:  saved.CompanyID,
			AccessKey:  saved.AccessKey,
			Status:     saved.Status,
			Model:      saved.Model,
			XMLPath:    saved.XMLPath,
			PDFPath:    saved.PDFPath,
			OccurredAt: now,
		})
	}
	return nil
}
