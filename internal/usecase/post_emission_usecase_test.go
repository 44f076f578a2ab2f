package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"
	mock_interfaces "nfe_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type postEmissionFixture struct {
	docs      *mock_interfaces.MockIFiscalDocumentRepository
	letters   *mock_interfaces.MockICorrectionLetterRepository
	companies *mock_interfaces.MockICompanyRepository
	gateway   *mock_interfaces.MockIFiscalGateway
	store     *mock_interfaces.MockIArtifactStore
	queue     *mock_interfaces.MockIReconciliationQueue
	events    *recordingPublisher
	uc        *PostEmissionUseCase
}

func newPostEmissionFixture(t *testing.T) *postEmissionFixture {
	ctrl := gomock.NewController(t)
	f := &postEmissionFixture{
		docs:      mock_interfaces.NewMockIFiscalDocumentRepository(ctrl),
		letters:   mock_interfaces.NewMockICorrectionLetterRepository(ctrl),
		companies: mock_interfaces.NewMockICompanyRepository(ctrl),
		gateway:   mock_interfaces.NewMockIFiscalGateway(ctrl),
		store:     mock_interfaces.NewMockIArtifactStore(ctrl),
		queue:     mock_interfaces.NewMockIReconciliationQueue(ctrl),
		events:    &recordingPublisher{},
	}
	f.uc = NewPostEmissionUseCase(f.docs, f.letters, f.companies, f.gateway, f.store, f.queue, f.events, nil)
	return f
}

func authorizedDocument() entities.FiscalDocument {
	return entities.FiscalDocument{
		ID:        "doc-1",
		CompanyID: "c-1",
		Model:     entities.DocumentModelNFe,
		Series:    1,
		Number:    42,
		Status:    entities.DocumentStatusAutorizada,
		AccessKey: testAccessKey,
		Protocol:  "135240000000001",
		XMLPath:   "xml/" + testAccessKey + ".xml",
		PDFPath:   "pdf/" + testAccessKey + ".pdf",
		Form:      testForm(),
	}
}

const validReason = "Erro na digitacao dos dados do destinatario"

func TestPostEmissionUseCase_Cancel(t *testing.T) {
	t.Run("draft is rejected before any network call", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		doc := authorizedDocument()
		doc.Status = entities.DocumentStatusRascunho
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(doc, nil)

		_, err := f.uc.Cancel(context.Background(), "c-1", "doc-1", validReason)
		if !errors.Is(err, ErrCannotCancel) {
			t.Fatalf("expected ErrCannotCancel, got %v", err)
		}
		if err.Error() != "only authorized documents can be cancelled" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("short reason", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)

		_, err := f.uc.Cancel(context.Background(), "c-1", "doc-1", "curto")
		if !errors.Is(err, ErrInvalidJustification) {
			t.Fatalf("expected ErrInvalidJustification, got %v", err)
		}
	})

	t.Run("document from another company", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		doc := authorizedDocument()
		doc.CompanyID = "c-2"
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(doc, nil)

		_, err := f.uc.Cancel(context.Background(), "c-1", "doc-1", validReason)
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("sefaz rejects the event", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.gateway.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(interfaces.EventResponse{Status: "501", Reason: "Prazo de cancelamento superior"}, nil)

		_, err := f.uc.Cancel(context.Background(), "c-1", "doc-1", validReason)
		var rej *SefazRejectionError
		if !errors.As(err, &rej) || rej.Code != "501" {
			t.Fatalf("expected SEFAZ rejection 501, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.gateway.EXPECT().Cancel(gomock.Any(), interfaces.CancelRequest{
			CompanyID: "c-1", DocumentID: "doc-1", AccessKey: testAccessKey, Reason: validReason,
		}).Return(interfaces.EventResponse{Status: entities.SefazStatusEventRegistered, Protocol: "P1"}, nil)
		f.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) { return d, nil })

		doc, err := f.uc.Cancel(context.Background(), "c-1", "doc-1", validReason)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Status != entities.DocumentStatusCancelada || doc.CancelReason != validReason || doc.CancelledAt.IsZero() {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if !f.events.has("nfe.cancelled") {
			t.Fatalf("expected cancelled event")
		}
	})

	t.Run("local update failure is queued", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.gateway.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(interfaces.EventResponse{Status: entities.SefazStatusEventRegistered}, nil)
		f.docs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.FiscalDocument{}, errors.New("db"))
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, task interfaces.ReconciliationTask) error {
				if task.Document.Status != entities.DocumentStatusCancelada || task.IsNew {
					t.Fatalf("unexpected task: %+v", task)
				}
				return nil
			})

		doc, err := f.uc.Cancel(context.Background(), "c-1", "doc-1", validReason)
		if err != nil || doc.Status != entities.DocumentStatusCancelada {
			t.Fatalf("expected cancelled document, got %v %v", doc.Status, err)
		}
	})
}

func TestPostEmissionUseCase_Invalidate(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)

		_, err := f.uc.Invalidate(context.Background(), "c-1", InvalidateCommand{Series: 1, From: 10, To: 5, Reason: validReason})
		if !errors.Is(err, ErrInvalidNumberRange) {
			t.Fatalf("expected ErrInvalidNumberRange, got %v", err)
		}
	})

	t.Run("authorized document cannot be invalidated", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)

		_, err := f.uc.Invalidate(context.Background(), "c-1", InvalidateCommand{DocumentID: "doc-1", Reason: validReason})
		if !errors.Is(err, ErrCannotInvalidate) {
			t.Fatalf("expected ErrCannotInvalidate, got %v", err)
		}
	})

	t.Run("bad cnpj", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		company := testCompany()
		company.CNPJ = "123"
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(company, nil)

		_, err := f.uc.Invalidate(context.Background(), "c-1", InvalidateCommand{Series: 1, From: 1, To: 2, Reason: validReason})
		if !errors.Is(err, ErrInvalidCNPJ) {
			t.Fatalf("expected ErrInvalidCNPJ, got %v", err)
		}
	})

	t.Run("rejected document is marked inutilizada", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		doc := authorizedDocument()
		doc.Status = entities.DocumentStatusRejeitada
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(doc, nil)
		f.gateway.EXPECT().Invalidate(gomock.Any(), interfaces.InvalidateRequest{
			CompanyID: "c-1", CNPJ: "12345678000195", Model: entities.DocumentModelNFe,
			Series: 1, From: 42, To: 42, Reason: validReason,
		}).Return(interfaces.EventResponse{Status: entities.SefazStatusRangeInvalidated, Protocol: "P9"}, nil)
		f.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) { return d, nil })

		res, err := f.uc.Invalidate(context.Background(), "c-1", InvalidateCommand{DocumentID: "doc-1", Reason: validReason})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Protocol != "P9" || res.Document == nil || res.Document.Status != entities.DocumentStatusInutilizada {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !f.events.has("nfe.range_invalidated") {
			t.Fatalf("expected range invalidated event")
		}
	})
}

func TestPostEmissionUseCase_IssueCorrectionLetter(t *testing.T) {
	t.Run("short text never reaches the backend", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)

		_, err := f.uc.IssueCorrectionLetter(context.Background(), "c-1", "doc-1", "1234567890")
		if !errors.Is(err, ErrInvalidJustification) {
			t.Fatalf("expected ErrInvalidJustification, got %v", err)
		}
	})

	t.Run("cancelled document", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		doc := authorizedDocument()
		doc.Status = entities.DocumentStatusCancelada
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(doc, nil)

		_, err := f.uc.IssueCorrectionLetter(context.Background(), "c-1", "doc-1", validReason)
		if !errors.Is(err, ErrCannotCorrect) {
			t.Fatalf("expected ErrCannotCorrect, got %v", err)
		}
	})

	t.Run("limit reached", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.letters.EXPECT().ListByDocumentID(gomock.Any(), "doc-1").
			Return([]entities.CorrectionLetter{{Sequence: 20}}, nil)

		_, err := f.uc.IssueCorrectionLetter(context.Background(), "c-1", "doc-1", validReason)
		if !errors.Is(err, ErrCorrectionLimit) {
			t.Fatalf("expected ErrCorrectionLimit, got %v", err)
		}
	})

	t.Run("next sequence and pdf", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.letters.EXPECT().ListByDocumentID(gomock.Any(), "doc-1").
			Return([]entities.CorrectionLetter{{Sequence: 1}, {Sequence: 3}}, nil)
		f.gateway.EXPECT().SubmitCorrection(gomock.Any(), interfaces.CorrectionRequest{
			CompanyID: "c-1", AccessKey: testAccessKey, Text: validReason, Sequence: 4,
		}).Return(interfaces.EventResponse{Status: entities.SefazStatusEventRegistered, Protocol: "P4"}, nil)
		f.gateway.EXPECT().GenerateCorrectionPDF(gomock.Any(), "c-1", testAccessKey, 4).Return("cce/4.pdf", nil)
		f.letters.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.CorrectionLetter) (entities.CorrectionLetter, error) { return l, nil })

		letter, err := f.uc.IssueCorrectionLetter(context.Background(), "c-1", "doc-1", validReason)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if letter.Sequence != 4 || letter.Protocol != "P4" || letter.PDFPath != "cce/4.pdf" {
			t.Fatalf("unexpected letter: %+v", letter)
		}
		if !f.events.has("nfe.cce_registered") {
			t.Fatalf("expected cce event")
		}
	})

	t.Run("pdf failure keeps the registration", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.letters.EXPECT().ListByDocumentID(gomock.Any(), "doc-1").Return(nil, nil)
		f.gateway.EXPECT().SubmitCorrection(gomock.Any(), gomock.Any()).
			Return(interfaces.EventResponse{Status: entities.SefazStatusEventRegistered, Protocol: "P1"}, nil)
		f.gateway.EXPECT().GenerateCorrectionPDF(gomock.Any(), "c-1", testAccessKey, 1).Return("", errors.New("timeout"))
		f.letters.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.CorrectionLetter) (entities.CorrectionLetter, error) { return l, nil })

		letter, err := f.uc.IssueCorrectionLetter(context.Background(), "c-1", "doc-1", validReason)
		if err != nil || letter.Sequence != 1 || letter.PDFPath != "" {
			t.Fatalf("unexpected result: %+v %v", letter, err)
		}
	})
}

func TestPostEmissionUseCase_ListCorrectionLetters(t *testing.T) {
	t.Run("falls back to the backend", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.letters.EXPECT().ListByDocumentID(gomock.Any(), "doc-1").Return(nil, nil)
		f.gateway.EXPECT().ListCorrections(gomock.Any(), "c-1", testAccessKey).
			Return([]entities.CorrectionLetter{{Sequence: 1}}, nil)

		got, err := f.uc.ListCorrectionLetters(context.Background(), "c-1", "doc-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})

	t.Run("local history wins", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.letters.EXPECT().ListByDocumentID(gomock.Any(), "doc-1").
			Return([]entities.CorrectionLetter{{Sequence: 1}, {Sequence: 2}}, nil)

		got, err := f.uc.ListCorrectionLetters(context.Background(), "c-1", "doc-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}

func TestPostEmissionUseCase_DownloadArtifact(t *testing.T) {
	key := ArtifactKey("c-1", testAccessKey, interfaces.ArtifactXML)

	t.Run("served from archive", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.store.EXPECT().Get(gomock.Any(), key).Return([]byte("<xml/>"), "application/xml", true, nil)

		art, err := f.uc.DownloadArtifact(context.Background(), "c-1", "doc-1", interfaces.ArtifactXML)
		if err != nil || string(art.Body) != "<xml/>" {
			t.Fatalf("unexpected result: %+v %v", art, err)
		}
	})

	t.Run("fetched from backend and archived", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		body := validXML(testAccessKey)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.store.EXPECT().Get(gomock.Any(), key).Return(nil, "", false, nil)
		f.gateway.EXPECT().FetchArtifact(gomock.Any(), interfaces.ArtifactRequest{
			Kind: interfaces.ArtifactXML, CompanyID: "c-1", AccessKey: testAccessKey, Path: "xml/" + testAccessKey + ".xml",
		}).Return(interfaces.Artifact{StatusCode: 200, ContentType: "application/xml", Body: body}, nil)
		f.store.EXPECT().Put(gomock.Any(), key, "application/xml", body).Return(nil)

		art, err := f.uc.DownloadArtifact(context.Background(), "c-1", "doc-1", interfaces.ArtifactXML)
		if err != nil || len(art.Body) == 0 {
			t.Fatalf("unexpected result: %+v %v", art, err)
		}
	})

	t.Run("draft has nothing to download", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		doc := authorizedDocument()
		doc.AccessKey = ""
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(doc, nil)

		_, err := f.uc.DownloadArtifact(context.Background(), "c-1", "doc-1", interfaces.ArtifactPDF)
		if !errors.Is(err, ErrDocumentNotEmitted) {
			t.Fatalf("expected ErrDocumentNotEmitted, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		_, err := f.uc.DownloadArtifact(context.Background(), "c-1", "doc-1", "zip")
		if !errors.Is(err, ErrInvalidArtifactKind) {
			t.Fatalf("expected ErrInvalidArtifactKind, got %v", err)
		}
	})
}

func TestPostEmissionUseCase_SendEmail(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)

		err := f.uc.SendEmail(context.Background(), "c-1", "doc-1", []string{"ok@example.com", "not-an-email"})
		if !errors.Is(err, ErrInvalidEmail) || !strings.Contains(err.Error(), "not-an-email") {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("no recipients", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)

		err := f.uc.SendEmail(context.Background(), "c-1", "doc-1", []string{"  "})
		if !errors.Is(err, ErrNoEmailRecipients) {
			t.Fatalf("expected ErrNoEmailRecipients, got %v", err)
		}
	})

	t.Run("falls back to registered addresses", func(t *testing.T) {
		f := newPostEmissionFixture(t)
		doc := authorizedDocument()
		doc.Form.Recipient.Emails = []string{"cliente@example.com"}
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(doc, nil)
		f.gateway.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.EmailRequest) error {
				if len(req.Emails) != 1 || req.Emails[0] != "cliente@example.com" || req.Number != 42 {
					t.Fatalf("unexpected request: %+v", req)
				}
				return nil
			})

		if err := f.uc.SendEmail(context.Background(), "c-1", "doc-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
