package repository

import (
	"context"
	"strconv"
	"time"

	"roofquote/internal/domain/entities"
	"roofquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesOwnerIDIndex     = "owner_id-index"
)

// Monetary and volume fields are stored as strings so DynamoDB never
// re-rounds what the assembler already rounded.
type quoteItem struct {
	ID            string `dynamodbav:"id"`
	OwnerID       string `dynamodbav:"owner_id"`
	AreaM2        string `dynamodbav:"area_m2,omitempty"`
	SealantLiters string `dynamodbav:"sealant_liters"`
	ItemCount     int    `dynamodbav:"item_count"`
	Subtotal      string `dynamodbav:"subtotal"`
	Total         string `dynamodbav:"total"`
	Currency      string `dynamodbav:"currency"`
	CheckoutURL   string `dynamodbav:"checkout_url"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists assembled checkout previews.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:            q.ID,
		OwnerID:       q.OwnerID,
		SealantLiters: floatToString(q.SealantLiters),
		ItemCount:     q.ItemCount,
		Subtotal:      floatToString(q.Subtotal),
		Total:         floatToString(q.Total),
		Currency:      q.Currency,
		CheckoutURL:   q.CheckoutURL,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.AreaM2 > 0 {
		it.AreaM2 = floatToString(q.AreaM2)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	area, _ := strconv.ParseFloat(it.AreaM2, 64)
	liters, _ := strconv.ParseFloat(it.SealantLiters, 64)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	return entities.Quote{
		ID:            it.ID,
		OwnerID:       it.OwnerID,
		AreaM2:        area,
		SealantLiters: liters,
		ItemCount:     it.ItemCount,
		Subtotal:      subtotal,
		Total:         total,
		Currency:      it.Currency,
		CheckoutURL:   it.CheckoutURL,
		CreatedAt:     createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
