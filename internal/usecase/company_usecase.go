package usecase

import (
	"context"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"
)

type CompanyProfile struct {
	entities.Company
	CertificateStatus entities.CertificateStatus `json:"status_certificado"`
}

type ICompanyUseCase interface {
	GetCurrent(ctx context.Context, companyID string) (CompanyProfile, error)
}

type CompanyUseCase struct {
	companies interfaces.ICompanyRepository
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(companies interfaces.ICompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies}
}

func (u *CompanyUseCase) GetCurrent(ctx context.Context, companyID string) (CompanyProfile, error) {
	company, err := loadCompany(ctx, u.companies, companyID)
	if err != nil {
		return CompanyProfile{}, err
	}
	return CompanyProfile{Company: company, CertificateStatus: company.Certificate.Status(utcNow())}, nil
}
