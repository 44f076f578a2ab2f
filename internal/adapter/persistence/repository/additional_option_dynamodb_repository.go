package repository

import (
	"context"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOptionsTableName = "additional_options"
	optionsCompanyIndex     = "company_id-index"
)

type additionalItemItem struct {
	ID             string            `dynamodbav:"id"`
	Name           string            `dynamodbav:"name"`
	Price          string            `dynamodbav:"price"`
	Position       int               `dynamodbav:"position"`
	PriceOverrides map[string]string `dynamodbav:"price_overrides,omitempty"`
	Deleted        bool              `dynamodbav:"deleted"`
	DeletedAt      string            `dynamodbav:"deleted_at,omitempty"`
	DeletedBy      string            `dynamodbav:"deleted_by,omitempty"`
}

type additionalOptionItem struct {
	ID            string               `dynamodbav:"id"`
	CompanyID     string               `dynamodbav:"company_id"`
	Name          string               `dynamodbav:"name"`
	MinSelections int                  `dynamodbav:"min_selections"`
	MaxSelections int                  `dynamodbav:"max_selections"`
	Items         []additionalItemItem `dynamodbav:"items"`
	Deleted       bool                 `dynamodbav:"deleted"`
	DeletedAt     string               `dynamodbav:"deleted_at,omitempty"`
	DeletedBy     string               `dynamodbav:"deleted_by,omitempty"`
	CreatedAt     string               `dynamodbav:"created_at"`
	UpdatedAt     string               `dynamodbav:"updated_at"`
}

// AdditionalOptionDynamoRepository stores options with their items embedded.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)
type AdditionalOptionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAdditionalOptionRepository = (*AdditionalOptionDynamoRepository)(nil)

func NewAdditionalOptionDynamoRepository(ddb DynamoAPI, tableName string) *AdditionalOptionDynamoRepository {
	return &AdditionalOptionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOptionsTableName),
	}
}

func (r *AdditionalOptionDynamoRepository) Create(ctx context.Context, opt entities.AdditionalOption) (entities.AdditionalOption, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toAdditionalOptionItem(opt), false); err != nil {
		return entities.AdditionalOption{}, err
	}
	return opt, nil
}

func (r *AdditionalOptionDynamoRepository) Update(ctx context.Context, opt entities.AdditionalOption) (entities.AdditionalOption, error) {
	applied, err := putItem(ctx, r.ddb, r.tableName, toAdditionalOptionItem(opt), true)
	if err != nil || !applied {
		return entities.AdditionalOption{}, err
	}
	return opt, nil
}

func (r *AdditionalOptionDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.AdditionalOption, error) {
	it, found, err := getItem[additionalOptionItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found || it.CompanyID != companyID {
		return entities.AdditionalOption{}, err
	}
	return fromAdditionalOptionItem(it), nil
}

// ListByCompany includes soft-deleted options; callers decide what to show.
func (r *AdditionalOptionDynamoRepository) ListByCompany(ctx context.Context, companyID string) ([]entities.AdditionalOption, error) {
	items, err := queryAll[additionalOptionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(optionsCompanyIndex),
		KeyConditionExpression: aws.String("company_id = :c"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}
	opts := make([]entities.AdditionalOption, 0, len(items))
	for _, it := range items {
		opts = append(opts, fromAdditionalOptionItem(it))
	}
	return opts, nil
}

func toAdditionalOptionItem(o entities.AdditionalOption) additionalOptionItem {
	items := make([]additionalItemItem, 0, len(o.Items))
	for _, it := range o.Items {
		var overrides map[string]string
		if len(it.PriceOverrides) > 0 {
			overrides = make(map[string]string, len(it.PriceOverrides))
			for table, p := range it.PriceOverrides {
				overrides[table] = p.String()
			}
		}
		items = append(items, additionalItemItem{
			ID:             it.ID,
			Name:           it.Name,
			Price:          it.Price.String(),
			Position:       it.Position,
			PriceOverrides: overrides,
			Deleted:        it.Deleted,
			DeletedAt:      formatTime(it.DeletedAt),
			DeletedBy:      it.DeletedBy,
		})
	}
	return additionalOptionItem{
		ID:            o.ID,
		CompanyID:     o.CompanyID,
		Name:          o.Name,
		MinSelections: o.MinSelections,
		MaxSelections: o.MaxSelections,
		Items:         items,
		Deleted:       o.Deleted,
		DeletedAt:     formatTime(o.DeletedAt),
		DeletedBy:     o.DeletedBy,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromAdditionalOptionItem(it additionalOptionItem) entities.AdditionalOption {
	items := make([]entities.AdditionalItem, 0, len(it.Items))
	for _, i := range it.Items {
		var overrides map[string]decimal.Decimal
		if len(i.PriceOverrides) > 0 {
			overrides = make(map[string]decimal.Decimal, len(i.PriceOverrides))
			for table, p := range i.PriceOverrides {
				overrides[table] = parseDecimal(p)
			}
		}
		items = append(items, entities.AdditionalItem{
			ID:             i.ID,
			Name:           i.Name,
			Price:          parseDecimal(i.Price),
			Position:       i.Position,
			PriceOverrides: overrides,
			Deleted:        i.Deleted,
			DeletedAt:      parseTime(i.DeletedAt),
			DeletedBy:      i.DeletedBy,
		})
	}
	return entities.AdditionalOption{
		ID:            it.ID,
		CompanyID:     it.CompanyID,
		Name:          it.Name,
		MinSelections: it.MinSelections,
		MaxSelections: it.MaxSelections,
		Items:         items,
		Deleted:       it.Deleted,
		DeletedAt:     parseTime(it.DeletedAt),
		DeletedBy:     it.DeletedBy,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
