package repository

import (
	"context"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCorrectionLettersTableName = "correction_letters"
	correctionLettersDocumentIndex    = "document_id-sequence-index"
)

type correctionLetterItem struct {
	ID           string `dynamodbav:"id"`
	DocumentID   string `dynamodbav:"document_id"`
	CompanyID    string `dynamodbav:"company_id"`
	AccessKey    string `dynamodbav:"access_key"`
	Sequence     int    `dynamodbav:"sequence"`
	Text         string `dynamodbav:"text"`
	Protocol     string `dynamodbav:"protocol"`
	SefazCode    string `dynamodbav:"sefaz_code,omitempty"`
	PDFPath      string `dynamodbav:"pdf_path,omitempty"`
	RegisteredAt string `dynamodbav:"registered_at"`
}

// CorrectionLetterDynamoRepository persists CCe records. Letters are append-only.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: document_id-sequence-index (PK: document_id, SK: sequence)
type CorrectionLetterDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICorrectionLetterRepository = (*CorrectionLetterDynamoRepository)(nil)

func NewCorrectionLetterDynamoRepository(ddb DynamoAPI, tableName string) *CorrectionLetterDynamoRepository {
	return &CorrectionLetterDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCorrectionLettersTableName),
	}
}

func (r *CorrectionLetterDynamoRepository) Create(ctx context.Context, l entities.CorrectionLetter) (entities.CorrectionLetter, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, toCorrectionLetterItem(l), false); err != nil {
		return entities.CorrectionLetter{}, err
	}
	return l, nil
}

// ListByDocumentID returns the letters ordered by sequence.
func (r *CorrectionLetterDynamoRepository) ListByDocumentID(ctx context.Context, documentID string) ([]entities.CorrectionLetter, error) {
	items, err := queryAll[correctionLetterItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(correctionLettersDocumentIndex),
		KeyConditionExpression: aws.String("document_id = :d"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":d": &types.AttributeValueMemberS{Value: documentID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	letters := make([]entities.CorrectionLetter, 0, len(items))
	for _, it := range items {
		letters = append(letters, fromCorrectionLetterItem(it))
	}
	return letters, nil
}

func toCorrectionLetterItem(l entities.CorrectionLetter) correctionLetterItem {
	return correctionLetterItem{
		ID:           l.ID,
		DocumentID:   l.DocumentID,
		CompanyID:    l.CompanyID,
		AccessKey:    l.AccessKey,
		Sequence:     l.Sequence,
		Text:         l.Text,
		Protocol:     l.Protocol,
		SefazCode:    l.SefazCode,
		PDFPath:      l.PDFPath,
		RegisteredAt: formatTime(l.RegisteredAt),
	}
}

func fromCorrectionLetterItem(it correctionLetterItem) entities.CorrectionLetter {
	return entities.CorrectionLetter{
		ID:           it.ID,
		DocumentID:   it.DocumentID,
		CompanyID:    it.CompanyID,
		AccessKey:    it.AccessKey,
		Sequence:     it.Sequence,
		Text:         it.Text,
		Protocol:     it.Protocol,
		SefazCode:    it.SefazCode,
		PDFPath:      it.PDFPath,
		RegisteredAt: parseTime(it.RegisteredAt),
	}
}
