package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type sessionStateItem struct {
	ID        string `dynamodbav:"id"`
	Version   int64  `dynamodbav:"version"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the repository.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// SessionStateDynamoRepository persists session snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The snapshot is stored as a JSON payload. A write carrying an older
// version than the stored one is dropped.
type SessionStateDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISessionStateRepository = (*SessionStateDynamoRepository)(nil)

func NewSessionStateDynamoRepository(ddb DynamoDBAPI) *SessionStateDynamoRepository {
	return &SessionStateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionStateDynamoRepository) TableName() string { return r.tableName }

func (r *SessionStateDynamoRepository) Save(ctx context.Context, state entities.SessionState) error {
	it, err := toSessionStateItem(state)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #version < :version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", state.Version)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *SessionStateDynamoRepository) Load(ctx context.Context, id string) (entities.SessionState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SessionState{}, err
	}
	if len(out.Item) == 0 {
		return entities.SessionState{}, nil
	}

	var it sessionStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SessionState{}, err
	}
	return fromSessionStateItem(it)
}

func toSessionStateItem(s entities.SessionState) (sessionStateItem, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return sessionStateItem{}, fmt.Errorf("marshal session %s: %w", s.ID, err)
	}
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return sessionStateItem{
		ID:        s.ID,
		Version:   s.Version,
		Payload:   string(payload),
		UpdatedAt: updatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSessionStateItem(it sessionStateItem) (entities.SessionState, error) {
	var s entities.SessionState
	if err := json.Unmarshal([]byte(it.Payload), &s); err != nil {
		return entities.SessionState{}, fmt.Errorf("unmarshal session %s: %w", it.ID, err)
	}
	s.ID = it.ID
	s.Version = it.Version
	if t, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
		s.UpdatedAt = t
	}
	return s, nil
}
