package repository

import (
	"context"
	"errors"
	"time"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHOASessionsTableName = "hoa_sessions"

type hoaSessionItem struct {
	Reference string `dynamodbav:"reference"`
	Method    string `dynamodbav:"method"`
	ReturnURL string `dynamodbav:"return_url"`
	ErrorURL  string `dynamodbav:"error_url"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// HOASessionDynamoRepository persists HOASession entities in DynamoDB.
//
// Table requirements:
//   - PK: reference (string, the processor-assigned session VID)
//
// The VID is unique per initialize call, so it doubles as the natural key the
// finalize callback carries back to us.

type HOASessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHOASessionRepository = (*HOASessionDynamoRepository)(nil)

func NewHOASessionDynamoRepository(ddb *dynamodb.Client) *HOASessionDynamoRepository {
	return &HOASessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HOA_SESSIONS_TABLE", defaultHOASessionsTableName),
	}
}

func (r *HOASessionDynamoRepository) Create(ctx context.Context, s entities.HOASession) (entities.HOASession, error) {
	it := toHOASessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.HOASession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#reference)"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
	})
	if err != nil {
		return entities.HOASession{}, err
	}
	return s, nil
}

func (r *HOASessionDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.HOASession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HOASession{}, err
	}
	if len(out.Item) == 0 {
		return entities.HOASession{}, nil
	}

	var it hoaSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HOASession{}, err
	}
	return fromHOASessionItem(it), nil
}

func (r *HOASessionDynamoRepository) UpdateStatus(ctx context.Context, reference string, status entities.HOASessionStatus) (entities.HOASession, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConditionExpression: aws.String("attribute_exists(#reference)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#reference":  "reference",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.HOASession{}, nil
		}
		return entities.HOASession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.HOASession{}, nil
	}
	var it hoaSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.HOASession{}, err
	}
	return fromHOASessionItem(it), nil
}

func toHOASessionItem(s entities.HOASession) hoaSessionItem {
	return hoaSessionItem{
		Reference: s.Reference,
		Method:    s.Method,
		ReturnURL: s.ReturnURL,
		ErrorURL:  s.ErrorURL,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromHOASessionItem(it hoaSessionItem) entities.HOASession {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.HOASession{
		Reference: it.Reference,
		Method:    it.Method,
		ReturnURL: it.ReturnURL,
		ErrorURL:  it.ErrorURL,
		Status:    entities.HOASessionStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
