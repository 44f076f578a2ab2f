package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDocumentsTableName = "fiscal_documents"
	documentsCompanyIndex     = "company_id-created_at-index"
	documentsNumberingIndex   = "numbering_key-number-index"
	documentsAccessKeyIndex   = "access_key-index"
)

type fiscalDocumentItem struct {
	ID                 string `dynamodbav:"id"`
	CompanyID          string `dynamodbav:"company_id"`
	NumberingKey       string `dynamodbav:"numbering_key"`
	Model              string `dynamodbav:"model"`
	Series             int    `dynamodbav:"series"`
	Number             int    `dynamodbav:"number"`
	Status             string `dynamodbav:"status"`
	OperationNature    string `dynamodbav:"operation_nature"`
	RecipientName      string `dynamodbav:"recipient_name"`
	Total              string `dynamodbav:"total"`
	Environment        string `dynamodbav:"environment"`
	NumericCode        string `dynamodbav:"numeric_code"`
	AccessKey          string `dynamodbav:"access_key,omitempty"`
	Protocol           string `dynamodbav:"protocol,omitempty"`
	Receipt            string `dynamodbav:"receipt,omitempty"`
	SefazCode          string `dynamodbav:"sefaz_code,omitempty"`
	SefazReason        string `dynamodbav:"sefaz_reason,omitempty"`
	XML                string `dynamodbav:"xml,omitempty"`
	XMLPath            string `dynamodbav:"xml_path,omitempty"`
	PDFPath            string `dynamodbav:"pdf_path,omitempty"`
	Form               string `dynamodbav:"form"`
	IssuedAt           string `dynamodbav:"issued_at,omitempty"`
	AuthorizedAt       string `dynamodbav:"authorized_at,omitempty"`
	CancelReason       string `dynamodbav:"cancel_reason,omitempty"`
	CancelledAt        string `dynamodbav:"cancelled_at,omitempty"`
	InvalidationReason string `dynamodbav:"invalidation_reason,omitempty"`
	InvalidatedAt      string `dynamodbav:"invalidated_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// FiscalDocumentDynamoRepository persists fiscal documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-created_at-index (PK: company_id, SK: created_at)
//   - GSI: numbering_key-number-index (PK: numbering_key, SK: number)
//   - GSI: access_key-index (PK: access_key), sparse
//
// numbering_key is "{company_id}#{model}#{series}" so duplicate and next-number
// lookups are single-partition queries.
type FiscalDocumentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFiscalDocumentRepository = (*FiscalDocumentDynamoRepository)(nil)

func NewFiscalDocumentDynamoRepository(ddb DynamoAPI, tableName string) *FiscalDocumentDynamoRepository {
	return &FiscalDocumentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultDocumentsTableName),
	}
}

func (r *FiscalDocumentDynamoRepository) Create(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
	it, err := toFiscalDocumentItem(doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if _, err := putItem(ctx, r.ddb, r.tableName, it, false); err != nil {
		return entities.FiscalDocument{}, err
	}
	return doc, nil
}

// Update replaces the stored document. A missing document yields the zero value.
func (r *FiscalDocumentDynamoRepository) Update(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
	it, err := toFiscalDocumentItem(doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	applied, err := putItem(ctx, r.ddb, r.tableName, it, true)
	if err != nil || !applied {
		return entities.FiscalDocument{}, err
	}
	return doc, nil
}

func (r *FiscalDocumentDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.FiscalDocument, error) {
	it, found, err := getItem[fiscalDocumentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found || it.CompanyID != companyID {
		return entities.FiscalDocument{}, err
	}
	return fromFiscalDocumentItem(it)
}

func (r *FiscalDocumentDynamoRepository) GetByAccessKey(ctx context.Context, companyID, accessKey string) (entities.FiscalDocument, error) {
	items, err := queryAll[fiscalDocumentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsAccessKeyIndex),
		KeyConditionExpression: aws.String("access_key = :k"),
		FilterExpression:       aws.String("company_id = :c"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: accessKey},
			":c": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil || len(items) == 0 {
		return entities.FiscalDocument{}, err
	}
	return fromFiscalDocumentItem(items[0])
}

// ListByCompany returns the company's documents, newest first.
func (r *FiscalDocumentDynamoRepository) ListByCompany(ctx context.Context, companyID string, filter entities.DocumentFilter) ([]entities.FiscalDocument, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsCompanyIndex),
		KeyConditionExpression: aws.String("company_id = :c"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: companyID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	applyDocumentFilter(in, filter)

	items, err := queryAll[fiscalDocumentItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	docs := make([]entities.FiscalDocument, 0, len(items))
	for _, it := range items {
		d, err := fromFiscalDocumentItem(it)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (r *FiscalDocumentDynamoRepository) FindByNumber(ctx context.Context, companyID string, model entities.DocumentModel, series, number int) ([]entities.FiscalDocument, error) {
	items, err := queryAll[fiscalDocumentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsNumberingIndex),
		KeyConditionExpression: aws.String("numbering_key = :k AND #number = :n"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: numberingKey(companyID, model, series)},
			":n": &types.AttributeValueMemberN{Value: strconv.Itoa(number)},
		},
	})
	if err != nil {
		return nil, err
	}
	docs := make([]entities.FiscalDocument, 0, len(items))
	for _, it := range items {
		d, err := fromFiscalDocumentItem(it)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// MaxNumber reads the highest number of the series; 0 when the series is empty.
func (r *FiscalDocumentDynamoRepository) MaxNumber(ctx context.Context, companyID string, model entities.DocumentModel, series int) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsNumberingIndex),
		KeyConditionExpression: aws.String("numbering_key = :k"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: numberingKey(companyID, model, series)},
		},
		ProjectionExpression:     aws.String("#number"),
		ExpressionAttributeNames: map[string]string{"#number": "number"},
		ScanIndexForward:         aws.Bool(false),
		Limit:                    aws.Int32(1),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Items) == 0 {
		return 0, nil
	}
	var it struct {
		Number int `dynamodbav:"number"`
	}
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return 0, err
	}
	return it.Number, nil
}

func applyDocumentFilter(in *dynamodb.QueryInput, f entities.DocumentFilter) {
	var conds []string
	names := map[string]string{}
	if f.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if f.Model != "" {
		conds = append(conds, "#model = :model")
		names["#model"] = "model"
		in.ExpressionAttributeValues[":model"] = &types.AttributeValueMemberS{Value: string(f.Model)}
	}
	if f.Series > 0 {
		conds = append(conds, "series = :series")
		in.ExpressionAttributeValues[":series"] = &types.AttributeValueMemberN{Value: strconv.Itoa(f.Series)}
	}
	if len(conds) == 0 {
		return
	}
	in.FilterExpression = aws.String(strings.Join(conds, " AND "))
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}
}

func numberingKey(companyID string, model entities.DocumentModel, series int) string {
	return fmt.Sprintf("%s#%s#%d", companyID, model, series)
}

func toFiscalDocumentItem(d entities.FiscalDocument) (fiscalDocumentItem, error) {
	form, err := json.Marshal(d.Form)
	if err != nil {
		return fiscalDocumentItem{}, fmt.Errorf("encode form: %w", err)
	}
	return fiscalDocumentItem{
		ID:                 d.ID,
		CompanyID:          d.CompanyID,
		NumberingKey:       numberingKey(d.CompanyID, d.Model, d.Series),
		Model:              string(d.Model),
		Series:             d.Series,
		Number:             d.Number,
		Status:             string(d.Status),
		OperationNature:    d.OperationNature,
		RecipientName:      d.RecipientName,
		Total:              d.Total.StringFixed(2),
		Environment:        string(d.Environment),
		NumericCode:        d.NumericCode,
		AccessKey:          d.AccessKey,
		Protocol:           d.Protocol,
		Receipt:            d.Receipt,
		SefazCode:          d.SefazCode,
		SefazReason:        d.SefazReason,
		XML:                d.XML,
		XMLPath:            d.XMLPath,
		PDFPath:            d.PDFPath,
		Form:               string(form),
		IssuedAt:           formatTime(d.IssuedAt),
		AuthorizedAt:       formatTime(d.AuthorizedAt),
		CancelReason:       d.CancelReason,
		CancelledAt:        formatTime(d.CancelledAt),
		InvalidationReason: d.InvalidationReason,
		InvalidatedAt:      formatTime(d.InvalidatedAt),
		CreatedAt:          formatTime(d.CreatedAt),
		UpdatedAt:          formatTime(d.UpdatedAt),
	}, nil
}

func fromFiscalDocumentItem(it fiscalDocumentItem) (entities.FiscalDocument, error) {
	var form entities.Form
	if it.Form != "" {
		if err := json.Unmarshal([]byte(it.Form), &form); err != nil {
			return entities.FiscalDocument{}, fmt.Errorf("decode form of %s: %w", it.ID, err)
		}
	}
	return entities.FiscalDocument{
		ID:                 it.ID,
		CompanyID:          it.CompanyID,
		Model:              entities.DocumentModel(it.Model),
		Series:             it.Series,
		Number:             it.Number,
		Status:             entities.DocumentStatus(it.Status),
		OperationNature:    it.OperationNature,
		RecipientName:      it.RecipientName,
		Total:              parseDecimal(it.Total),
		Environment:        entities.Environment(it.Environment),
		NumericCode:        it.NumericCode,
		AccessKey:          it.AccessKey,
		Protocol:           it.Protocol,
		Receipt:            it.Receipt,
		SefazCode:          it.SefazCode,
		SefazReason:        it.SefazReason,
		XML:                it.XML,
		XMLPath:            it.XMLPath,
		PDFPath:            it.PDFPath,
		Form:               form,
		IssuedAt:           parseTime(it.IssuedAt),
		AuthorizedAt:       parseTime(it.AuthorizedAt),
		CancelReason:       it.CancelReason,
		CancelledAt:        parseTime(it.CancelledAt),
		InvalidationReason: it.InvalidationReason,
		InvalidatedAt:      parseTime(it.InvalidatedAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}, nil
}
