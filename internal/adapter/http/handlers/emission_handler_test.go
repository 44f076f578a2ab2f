package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"nfe_backoffice/internal/adapter/http/dto/response"
	"nfe_backoffice/internal/adapter/http/handlers/mocks"
	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestEmissionHandler_StartEmission(t *testing.T) {
	t.Run("preflight violations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmissionUseCase(ctrl)
		r := newRouter(http.MethodPost, "/v1/emissions", NewEmissionHandler(uc).StartEmission)

		uc.EXPECT().
			Start(gomock.Any(), gomock.Any()).
			Return(entities.EmissionJob{}, &usecase.PreflightError{Violations: []string{"Informe a natureza da operação", "Adicione pelo menos um produto"}})

		w := perform(r, http.MethodPost, "/v1/emissions", `{"form":{}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "PREFLIGHT_FAILED" || len(body.Details) != 2 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("expired certificate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmissionUseCase(ctrl)
		r := newRouter(http.MethodPost, "/v1/emissions", NewEmissionHandler(uc).StartEmission)

		uc.EXPECT().Start(gomock.Any(), gomock.Any()).Return(entities.EmissionJob{}, usecase.ErrCertificateExpired)

		w := perform(r, http.MethodPost, "/v1/emissions", `{"form":{}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "CERTIFICATE_EXPIRED" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmissionUseCase(ctrl)
		r := newRouter(http.MethodPost, "/v1/emissions", NewEmissionHandler(uc).StartEmission)

		uc.EXPECT().
			Start(gomock.Any(), usecase.EmissionCommand{CompanyID: testCompanyID, DocumentID: "doc-1"}).
			Return(entities.EmissionJob{ID: "job-1", CompanyID: testCompanyID, Outcome: entities.EmissionRunning}, nil)

		w := perform(r, http.MethodPost, "/v1/emissions", `{"document_id":"doc-1"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/v1/emissions/job-1" {
			t.Fatalf("unexpected location %q", loc)
		}
		var body response.EmissionJobResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "job-1" || body.Finished {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestEmissionHandler_GetEmission(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmissionUseCase(ctrl)
		r := newRouter(http.MethodGet, "/v1/emissions/:id", NewEmissionHandler(uc).GetEmission)

		uc.EXPECT().GetJob(gomock.Any(), testCompanyID, "job-x").Return(entities.EmissionJob{}, usecase.ErrEmissionJobNotFound)

		w := perform(r, http.MethodGet, "/v1/emissions/job-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("finished job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmissionUseCase(ctrl)
		r := newRouter(http.MethodGet, "/v1/emissions/:id", NewEmissionHandler(uc).GetEmission)

		uc.EXPECT().
			GetJob(gomock.Any(), testCompanyID, "job-1").
			Return(entities.EmissionJob{ID: "job-1", Outcome: entities.EmissionEmitted}, nil)

		w := perform(r, http.MethodGet, "/v1/emissions/job-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.EmissionJobResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Finished {
			t.Fatalf("expected finished job")
		}
	})
}

func TestEmissionHandler_CancelEmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEmissionUseCase(ctrl)
	r := newRouter(http.MethodPost, "/v1/emissions/:id/cancel", NewEmissionHandler(uc).CancelEmission)

	uc.EXPECT().
		CancelJob(gomock.Any(), testCompanyID, "job-1").
		Return(entities.EmissionJob{ID: "job-1", Outcome: entities.EmissionCancelled}, nil)

	w := perform(r, http.MethodPost, "/v1/emissions/job-1/cancel", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
