package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"
	mock_interfaces "nfe_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reconcileFixture struct {
	queue   *mock_interfaces.MockIReconciliationQueue
	docs    *mock_interfaces.MockIFiscalDocumentRepository
	gateway *mock_interfaces.MockIFiscalGateway
	events  *recordingPublisher
	worker  *ReconciliationWorker
}

func newReconcileFixture(t *testing.T, maxAttempts int) *reconcileFixture {
	ctrl := gomock.NewController(t)
	f := &reconcileFixture{
		queue:   mock_interfaces.NewMockIReconciliationQueue(ctrl),
		docs:    mock_interfaces.NewMockIFiscalDocumentRepository(ctrl),
		gateway: mock_interfaces.NewMockIFiscalGateway(ctrl),
		events:  &recordingPublisher{},
	}
	f.worker = NewReconciliationWorker(f.queue, f.docs, f.gateway, f.events, nil, maxAttempts, time.Millisecond)
	return f
}

func pendingDocument() entities.FiscalDocument {
	doc := authorizedDocument()
	doc.Status = entities.DocumentStatusPendente
	doc.Protocol = ""
	return doc
}

func TestReconciliationWorker_Persist(t *testing.T) {
	t.Run("creates missing document", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		doc := authorizedDocument()
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).
			Return(interfaces.ReconciliationTask{ID: "t-1", Kind: interfaces.ReconcilePersist, Document: doc, IsNew: true}, true, nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(entities.FiscalDocument{}, nil)
		f.docs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) { return d, nil })

		processed, err := f.worker.RunOnce(context.Background())
		if !processed || err != nil {
			t.Fatalf("expected processed task, got %v %v", processed, err)
		}
	})

	t.Run("failure is requeued with attempts", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).
			Return(interfaces.ReconciliationTask{ID: "t-1", Kind: interfaces.ReconcilePersist, Document: authorizedDocument()}, true, nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(entities.FiscalDocument{}, errors.New("db"))
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, task interfaces.ReconciliationTask) error {
				if task.Attempts != 1 || task.LastError != "db" {
					t.Fatalf("unexpected requeued task: %+v", task)
				}
				return nil
			})

		if _, err := f.worker.RunOnce(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("dead letter after max attempts", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).
			Return(interfaces.ReconciliationTask{ID: "t-1", Kind: interfaces.ReconcilePersist, Document: authorizedDocument(), Attempts: 2}, true, nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(entities.FiscalDocument{}, errors.New("db"))
		f.queue.EXPECT().DeadLetter(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := f.worker.RunOnce(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty queue", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(interfaces.ReconciliationTask{}, false, nil)

		processed, err := f.worker.RunOnce(context.Background())
		if processed || err != nil {
			t.Fatalf("expected idle run, got %v %v", processed, err)
		}
	})
}

func TestReconciliationWorker_StatusCheck(t *testing.T) {
	task := interfaces.ReconciliationTask{ID: "t-2", Kind: interfaces.ReconcileStatusCheck, Document: pendingDocument()}

	t.Run("authorized later", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(task, true, nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(pendingDocument(), nil).Times(2)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "c-1", testAccessKey).
			Return(interfaces.EmitResponse{Status: entities.SefazStatusAuthorized, Protocol: "P100"}, nil)
		f.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) {
				if d.Status != entities.DocumentStatusAutorizada || d.Protocol != "P100" || d.AuthorizedAt.IsZero() {
					t.Fatalf("unexpected update: %+v", d)
				}
				return d, nil
			})

		if _, err := f.worker.RunOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.events.has("nfe.emitted") {
			t.Fatalf("expected emitted event")
		}
	})

	t.Run("still processing is retried", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(task, true, nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(pendingDocument(), nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "c-1", testAccessKey).
			Return(interfaces.EmitResponse{Status: entities.SefazStatusBatchProcessing}, nil)
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := f.worker.RunOnce(context.Background()); !errors.Is(err, ErrStillProcessing) {
			t.Fatalf("expected ErrStillProcessing, got %v", err)
		}
	})

	t.Run("already settled elsewhere", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(task, true, nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)

		if _, err := f.worker.RunOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected after processing", func(t *testing.T) {
		f := newReconcileFixture(t, 3)
		f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(task, true, nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(pendingDocument(), nil).Times(2)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "c-1", testAccessKey).
			Return(interfaces.EmitResponse{Status: "204", Reason: "Duplicidade de NF-e"}, nil)
		f.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) {
				if d.Status != entities.DocumentStatusRejeitada || d.SefazCode != "204" {
					t.Fatalf("unexpected update: %+v", d)
				}
				return d, nil
			})

		if _, err := f.worker.RunOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.events.has("nfe.emitted") {
			t.Fatalf("rejected documents must not raise emitted events")
		}
	})
}

func TestReconciliationWorker_Run(t *testing.T) {
	f := newReconcileFixture(t, 3)
	ctx, cancel := context.WithCancel(context.Background())

	f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Duration) (interfaces.ReconciliationTask, bool, error) {
			cancel()
			return interfaces.ReconciliationTask{}, false, nil
		})

	done := make(chan error, 1)
	go func() { done <- f.worker.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not stop")
	}
}
