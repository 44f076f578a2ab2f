package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nfe_backoffice/internal/domain/entities"
	mock_interfaces "nfe_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCompanyUseCase_GetCurrent(t *testing.T) {
	t.Run("reports certificate status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		company := testCompany()
		company.Certificate.ValidUntil = time.Now().Add(10 * 24 * time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(company, nil)

		profile, err := NewCompanyUseCase(repo).GetCurrent(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.CNPJ != company.CNPJ || profile.CertificateStatus != entities.CertificateStatusVencendo {
			t.Fatalf("unexpected profile: %+v", profile)
		}
	})

	t.Run("missing company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Company{}, nil)

		_, err := NewCompanyUseCase(repo).GetCurrent(context.Background(), "c-9")
		if !errors.Is(err, ErrCompanyNotLoaded) {
			t.Fatalf("expected ErrCompanyNotLoaded, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)

		_, err := NewCompanyUseCase(repo).GetCurrent(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})
}
