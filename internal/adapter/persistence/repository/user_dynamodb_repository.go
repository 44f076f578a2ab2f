package repository

import (
	"context"
	"strings"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	CompanyID    string `dynamodbav:"company_id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists back-office operators.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email), emails stored lowercased
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultUsersTableName),
	}
}

// Create registers a user. Used by the seed command.
func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if _, err := putItem(ctx, r.ddb, r.tableName, toUserItem(u), false); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	it, found, err := getItem[userItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	items, err := queryAll[userItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: strings.ToLower(strings.TrimSpace(email))},
		},
	})
	if err != nil || len(items) == 0 {
		return entities.User{}, err
	}
	return fromUserItem(items[0]), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		CompanyID:    u.CompanyID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
