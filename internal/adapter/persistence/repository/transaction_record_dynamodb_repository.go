package repository

import (
	"context"
	"time"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionRecordsTableName = "transaction_records"
	recordsCustomerIDIndex             = "customer_id-index"
)

type transactionRecordItem struct {
	ID         string                 `dynamodbav:"id"`
	Reference  string                 `dynamodbav:"reference,omitempty"`
	CustomerID string                 `dynamodbav:"customer_id,omitempty"`
	Action     string                 `dynamodbav:"action"`
	Amount     string                 `dynamodbav:"amount,omitempty"`
	Currency   string                 `dynamodbav:"currency,omitempty"`
	Status     string                 `dynamodbav:"status,omitempty"`
	Date       string                 `dynamodbav:"date"`
	Payload    map[string]interface{} `dynamodbav:"payload,omitempty"`
}

// TransactionRecordDynamoRepository persists TransactionRecord entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string, the merchant transaction id)
//   - GSI: customer_id-index (PK: customer_id)

type TransactionRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRecordRepository = (*TransactionRecordDynamoRepository)(nil)

func NewTransactionRecordDynamoRepository(ddb *dynamodb.Client) *TransactionRecordDynamoRepository {
	return &TransactionRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTION_RECORDS_TABLE", defaultTransactionRecordsTableName),
	}
}

func (r *TransactionRecordDynamoRepository) Create(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	it := toTransactionRecordItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TransactionRecord{}, err
	}

	// Same id may be written again on a later lifecycle action (auth then
	// capture), so no attribute_not_exists condition here.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	return rec, nil
}

func (r *TransactionRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.TransactionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransactionRecord{}, nil
	}

	var it transactionRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TransactionRecord{}, err
	}
	return fromTransactionRecordItem(it), nil
}

func (r *TransactionRecordDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.TransactionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(recordsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TransactionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionRecordItem(it))
	}
	return items, nil
}

func toTransactionRecordItem(rec entities.TransactionRecord) transactionRecordItem {
	return transactionRecordItem{
		ID:         rec.ID,
		Reference:  rec.Reference,
		CustomerID: rec.CustomerID,
		Action:     rec.Action,
		Amount:     rec.Amount,
		Currency:   rec.Currency,
		Status:     rec.Status,
		Date:       rec.Date.UTC().Format(time.RFC3339Nano),
		Payload:    rec.Payload,
	}
}

func fromTransactionRecordItem(it transactionRecordItem) entities.TransactionRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.TransactionRecord{
		ID:         it.ID,
		Reference:  it.Reference,
		CustomerID: it.CustomerID,
		Action:     it.Action,
		Amount:     it.Amount,
		Currency:   it.Currency,
		Status:     it.Status,
		Date:       dt,
		Payload:    it.Payload,
	}
}
