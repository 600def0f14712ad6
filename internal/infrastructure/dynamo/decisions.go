package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
)

// DecisionRepo is the durable half of the decision store: key/value entries
// per visitor with no built-in expiry.
// PK: visitor_id, SK: key.
type DecisionRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewDecisionRepo(client *dynamodb.Client, tableName string) *DecisionRepo {
	return &DecisionRepo{client: client, tableName: tableName}
}

func (r *DecisionRepo) Put(ctx context.Context, visitorID, key, value string) error {
	item, err := attributevalue.MarshalMap(&domain.Decision{
		VisitorID: visitorID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *DecisionRepo) Get(ctx context.Context, visitorID, key string) (string, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("visitor_id", visitorID, "key", key),
	})
	if err != nil {
		return "", err
	}
	if out.Item == nil {
		return "", fmt.Errorf("decision not found: %w", domain.ErrNotFound)
	}
	var d domain.Decision
	if err := attributevalue.UnmarshalMap(out.Item, &d); err != nil {
		return "", err
	}
	return d.Value, nil
}
