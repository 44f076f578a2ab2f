package repository

import (
	"context"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"
)

const defaultCompaniesTableName = "companies"

type certificateItem struct {
	Configured bool   `dynamodbav:"configured"`
	Subject    string `dynamodbav:"subject,omitempty"`
	ValidFrom  string `dynamodbav:"valid_from,omitempty"`
	ValidUntil string `dynamodbav:"valid_until,omitempty"`
}

type companyItem struct {
	ID                string          `dynamodbav:"id"`
	Name              string          `dynamodbav:"name"`
	TradeName         string          `dynamodbav:"trade_name"`
	CNPJ              string          `dynamodbav:"cnpj"`
	StateRegistration string          `dynamodbav:"state_registration"`
	TaxRegime         string          `dynamodbav:"tax_regime"`
	Street            string          `dynamodbav:"street"`
	Number            string          `dynamodbav:"number"`
	District          string          `dynamodbav:"district"`
	City              string          `dynamodbav:"city"`
	CityCode          string          `dynamodbav:"city_code"`
	State             string          `dynamodbav:"state"`
	ZipCode           string          `dynamodbav:"zip_code"`
	Phone             string          `dynamodbav:"phone"`
	Email             string          `dynamodbav:"email"`
	Environment       string          `dynamodbav:"environment"`
	Certificate       certificateItem `dynamodbav:"certificate"`
	CreatedAt         string          `dynamodbav:"created_at"`
	UpdatedAt         string          `dynamodbav:"updated_at"`
}

// CompanyDynamoRepository reads tenant profiles.
//
// Table requirements:
//   - PK: id (string)
type CompanyDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb DynamoAPI, tableName string) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCompaniesTableName),
	}
}

// Create registers a company. Used by the seed command.
func (r *CompanyDynamoRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toCompanyItem(c), false); err != nil {
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	it, found, err := getItem[companyItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func toCompanyItem(c entities.Company) companyItem {
	return companyItem{
		ID:                c.ID,
		Name:              c.Name,
		TradeName:         c.TradeName,
		CNPJ:              c.CNPJ,
		StateRegistration: c.StateRegistration,
		TaxRegime:         c.TaxRegime,
		Street:            c.Street,
		Number:            c.Number,
		District:          c.District,
		City:              c.City,
		CityCode:          c.CityCode,
		State:             c.State,
		ZipCode:           c.ZipCode,
		Phone:             c.Phone,
		Email:             c.Email,
		Environment:       string(c.Environment),
		Certificate: certificateItem{
			Configured: c.Certificate.Configured,
			Subject:    c.Certificate.Subject,
			ValidFrom:  formatTime(c.Certificate.ValidFrom),
			ValidUntil: formatTime(c.Certificate.ValidUntil),
		},
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCompanyItem(it companyItem) entities.Company {
	return entities.Company{
		ID:                it.ID,
		Name:              it.Name,
		TradeName:         it.TradeName,
		CNPJ:              it.CNPJ,
		StateRegistration: it.StateRegistration,
		TaxRegime:         it.TaxRegime,
		Street:            it.Street,
		Number:            it.Number,
		District:          it.District,
		City:              it.City,
		CityCode:          it.CityCode,
		State:             it.State,
		ZipCode:           it.ZipCode,
		Phone:             it.Phone,
		Email:             it.Email,
		Environment:       entities.Environment(it.Environment),
		Certificate: entities.Certificate{
			Configured: it.Certificate.Configured,
			Subject:    it.Certificate.Subject,
			ValidFrom:  parseTime(it.Certificate.ValidFrom),
			ValidUntil: parseTime(it.Certificate.ValidUntil),
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
