package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoTransactLimit is the DynamoDB TransactWriteItems item cap.
const dynamoTransactLimit = 100

// record is the single-table item shape: one partition per collection,
// entity keys as the sort key, encoded value as a binary attribute.
type record struct {
	Collection string `dynamodbav:"pk"`
	Key        string `dynamodbav:"sk"`
	Value      []byte `dynamodbav:"v"`
}

// Dynamo is a Store backed by a single DynamoDB table.
type Dynamo struct {
	client *dynamodb.Client
	config DynamoConfig
}

// NewDynamo creates a DynamoDB-backed store.
func NewDynamo(client *dynamodb.Client, config DynamoConfig) *Dynamo {
	config.validate()
	return &Dynamo{
		client: client,
		config: config,
	}
}

// Get retrieves the value at key in collection.
func (d *Dynamo) Get(ctx context.Context, collection, key string) ([]byte, error) {
	result, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.config.TableName),
		Key:       itemKey(collection, key),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	var rec record
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal %s/%s: %w", collection, key, err)
	}
	return rec.Value, nil
}

// Scan walks a collection's partition in ascending sort-key order. The
// exclusive lower bound becomes a sk > :after key condition.
func (d *Dynamo) Scan(ctx context.Context, collection, startAfter string, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	input := d.scanInput(collection, startAfter, limit)

	var entries []Entry
	paginator := dynamodb.NewQueryPaginator(d.client, input)
	for paginator.HasMorePages() && len(entries) < limit {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		for _, raw := range page.Items {
			var rec record
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal %s: %w", collection, err)
			}
			entries = append(entries, Entry{Key: rec.Key, Value: rec.Value})
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// scanInput builds the Query input for a Scan call.
func (d *Dynamo) scanInput(collection, startAfter string, limit int) *dynamodb.QueryInput {
	keyCond := "pk = :pk"
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: collection},
	}
	if startAfter != "" {
		keyCond = "pk = :pk AND sk > :after"
		values[":after"] = &types.AttributeValueMemberS{Value: startAfter}
	}

	return &dynamodb.QueryInput{
		TableName:                 aws.String(d.config.TableName),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeValues: values,
		Limit:                     aws.Int32(int32(limit)),
		ScanIndexForward:          aws.Bool(true),
	}
}

// Apply writes the batch with TransactWriteItems so a mutation's entity
// writes land all-or-nothing.
func (d *Dynamo) Apply(ctx context.Context, batch *Batch) error {
	if batch == nil || len(batch.ops) == 0 {
		return ErrEmptyBatch
	}
	if len(batch.ops) > dynamoTransactLimit {
		return ErrBatchTooLarge
	}

	items := make([]types.TransactWriteItem, 0, len(batch.ops))
	for _, op := range batch.ops {
		if op.delete {
			items = append(items, types.TransactWriteItem{
				Delete: &types.Delete{
					TableName: aws.String(d.config.TableName),
					Key:       itemKey(op.collection, op.key),
				},
			})
			continue
		}

		item, err := attributevalue.MarshalMap(record{
			Collection: op.collection,
			Key:        op.key,
			Value:      op.value,
		})
		if err != nil {
			return fmt.Errorf("marshal %s/%s: %w", op.collection, op.key, err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(d.config.TableName),
				Item:      item,
			},
		})
	}

	_, err := d.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return fmt.Errorf("apply batch: %w", err)
	}
	return nil
}

// itemKey builds the primary key for an item.
func itemKey(collection, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: collection},
		"sk": &types.AttributeValueMemberS{Value: key},
	}
}
