package usecase

import (
	"context"
	"errors"
	"testing"

	"nfe_backoffice/internal/domain/entities"
	mock_interfaces "nfe_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type documentFixture struct {
	docs      *mock_interfaces.MockIFiscalDocumentRepository
	companies *mock_interfaces.MockICompanyRepository
	gateway   *mock_interfaces.MockIFiscalGateway
	uc        *DocumentUseCase
}

func newDocumentFixture(t *testing.T) *documentFixture {
	ctrl := gomock.NewController(t)
	f := &documentFixture{
		docs:      mock_interfaces.NewMockIFiscalDocumentRepository(ctrl),
		companies: mock_interfaces.NewMockICompanyRepository(ctrl),
		gateway:   mock_interfaces.NewMockIFiscalGateway(ctrl),
	}
	f.uc = NewDocumentUseCase(f.docs, f.companies, f.gateway, nil)
	return f
}

func draftDocument() entities.FiscalDocument {
	doc := authorizedDocument()
	doc.Status = entities.DocumentStatusRascunho
	doc.AccessKey = ""
	doc.Protocol = ""
	return doc
}

func TestDocumentUseCase_SaveDraft(t *testing.T) {
	t.Run("creates draft", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) { return d, nil })

		doc, err := f.uc.SaveDraft(context.Background(), "c-1", SaveDraftCommand{Form: testForm()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.ID == "" || doc.Status != entities.DocumentStatusRascunho || len(doc.NumericCode) != 8 {
			t.Fatalf("unexpected draft: %+v", doc)
		}
		if doc.RecipientName != "Cliente Teste" || !doc.Total.Equal(decimal.RequireFromString("100.00")) {
			t.Fatalf("header not copied from form: %+v", doc)
		}
	})

	t.Run("operation nature required", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		form := testForm()
		form.Identification.OperationNature = " "

		_, err := f.uc.SaveDraft(context.Background(), "c-1", SaveDraftCommand{Form: form})
		if !errors.Is(err, ErrOperationNatureRequired) {
			t.Fatalf("expected ErrOperationNatureRequired, got %v", err)
		}
	})

	t.Run("emitted documents are not editable", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)

		_, err := f.uc.SaveDraft(context.Background(), "c-1", SaveDraftCommand{DocumentID: "doc-1", Form: testForm()})
		if !errors.Is(err, ErrDocumentNotDraft) {
			t.Fatalf("expected ErrDocumentNotDraft, got %v", err)
		}
	})

	t.Run("updates existing draft", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(draftDocument(), nil)
		f.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) { return d, nil })

		form := testForm()
		form.Identification.OperationNature = "Remessa"
		doc, err := f.uc.SaveDraft(context.Background(), "c-1", SaveDraftCommand{DocumentID: "doc-1", Form: form})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.OperationNature != "Remessa" {
			t.Fatalf("expected header update, got %q", doc.OperationNature)
		}
	})
}

func TestDocumentUseCase_UpdateSection(t *testing.T) {
	t.Run("invalid section is not applied", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(draftDocument(), nil)

		_, err := f.uc.UpdateSection(context.Background(), "c-1", "doc-1", entities.Payments{{Method: "x", Value: decimal.NewFromInt(1)}})
		var secErr *entities.SectionError
		if !errors.As(err, &secErr) {
			t.Fatalf("expected SectionError, got %v", err)
		}
	})

	t.Run("applies payments", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(draftDocument(), nil)
		f.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) { return d, nil })

		doc, err := f.uc.UpdateSection(context.Background(), "c-1", "doc-1",
			entities.Payments{{Method: "17", Value: decimal.RequireFromString("100.00")}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doc.Form.Payments) != 1 || doc.Form.Payments[0].Method != "17" {
			t.Fatalf("payments not applied: %+v", doc.Form.Payments)
		}
	})
}

func TestDocumentUseCase_Queries(t *testing.T) {
	t.Run("next number", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.docs.EXPECT().MaxNumber(gomock.Any(), "c-1", entities.DocumentModelNFe, 1).Return(41, nil)

		n, err := f.uc.NextNumber(context.Background(), "c-1", entities.DocumentModelNFe, 1)
		if err != nil || n != 42 {
			t.Fatalf("expected 42, got %d %v", n, err)
		}
	})

	t.Run("next number invalid series", func(t *testing.T) {
		f := newDocumentFixture(t)
		if _, err := f.uc.NextNumber(context.Background(), "c-1", entities.DocumentModelNFe, 1000); !errors.Is(err, ErrInvalidSeries) {
			t.Fatalf("expected ErrInvalidSeries, got %v", err)
		}
	})

	t.Run("other company's document is hidden", func(t *testing.T) {
		f := newDocumentFixture(t)
		doc := authorizedDocument()
		doc.CompanyID = "c-2"
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(doc, nil)

		if _, err := f.uc.GetByID(context.Background(), "c-1", "doc-1"); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("clone clears numbering", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.docs.EXPECT().GetByID(gomock.Any(), "c-1", "doc-1").Return(authorizedDocument(), nil)
		f.docs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) { return d, nil })

		clone, err := f.uc.Clone(context.Background(), "c-1", "doc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if clone.ID == "doc-1" || clone.AccessKey != "" || clone.Form.Identification.Number != 0 || clone.Status != entities.DocumentStatusRascunho {
			t.Fatalf("unexpected clone: %+v", clone)
		}
	})

	t.Run("preview requires gateway", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.uc.gateway = nil
		if _, err := f.uc.Preview(context.Background(), "c-1", testForm()); !errors.Is(err, ErrFiscalGatewayNotSet) {
			t.Fatalf("expected ErrFiscalGatewayNotSet, got %v", err)
		}
	})

	t.Run("preview", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.companies.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		f.gateway.EXPECT().GeneratePreview(gomock.Any(), "c-1", gomock.Any()).Return(validPDF(), nil)

		pdf, err := f.uc.Preview(context.Background(), "c-1", testForm())
		if err != nil || len(pdf) == 0 {
			t.Fatalf("expected preview, got %d bytes %v", len(pdf), err)
		}
	})
}
