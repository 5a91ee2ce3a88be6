package store

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// --- Dynamo request construction ---

func TestScanInput_NoStartAfter(t *testing.T) {
	d := NewDynamo(nil, DynamoConfig{TableName: "test-table"})
	input := d.scanInput("mentors", "", 10)

	if *input.TableName != "test-table" {
		t.Errorf("expected table 'test-table', got %q", *input.TableName)
	}
	if *input.KeyConditionExpression != "pk = :pk" {
		t.Errorf("unexpected key condition %q", *input.KeyConditionExpression)
	}
	if *input.Limit != 10 {
		t.Errorf("expected limit 10, got %d", *input.Limit)
	}
	if !*input.ScanIndexForward {
		t.Error("expected ascending scan")
	}

	pk, ok := input.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS)
	if !ok || pk.Value != "mentors" {
		t.Errorf("expected :pk = 'mentors', got %v", input.ExpressionAttributeValues[":pk"])
	}
	if _, present := input.ExpressionAttributeValues[":after"]; present {
		t.Error("expected no :after value without a start bound")
	}
}

func TestScanInput_WithStartAfter(t *testing.T) {
	d := NewDynamo(nil, DynamoConfig{})
	input := d.scanInput("comments", "cid5", 30)

	if *input.TableName != "mentorboard" {
		t.Errorf("expected default table name, got %q", *input.TableName)
	}
	if *input.KeyConditionExpression != "pk = :pk AND sk > :after" {
		t.Errorf("unexpected key condition %q", *input.KeyConditionExpression)
	}

	after, ok := input.ExpressionAttributeValues[":after"].(*types.AttributeValueMemberS)
	if !ok || after.Value != "cid5" {
		t.Errorf("expected :after = 'cid5', got %v", input.ExpressionAttributeValues[":after"])
	}
}

func TestItemKey(t *testing.T) {
	key := itemKey("votes", "alice#cid1")

	pk, ok := key["pk"].(*types.AttributeValueMemberS)
	if !ok || pk.Value != "votes" {
		t.Errorf("expected pk 'votes', got %v", key["pk"])
	}
	sk, ok := key["sk"].(*types.AttributeValueMemberS)
	if !ok || sk.Value != "alice#cid1" {
		t.Errorf("expected sk 'alice#cid1', got %v", key["sk"])
	}
}

// --- Batch staging ---

func TestBatch_StageReplacesSameItem(t *testing.T) {
	b := NewBatch().
		Put("comments", "cid1", []byte("v1")).
		Put("comments", "cid2", []byte("other")).
		Delete("comments", "cid1")

	if len(b.ops) != 2 {
		t.Fatalf("expected 2 ops after superseding delete, got %d", len(b.ops))
	}
	if !b.ops[0].delete {
		t.Error("expected first op to have become a delete")
	}
	if b.ops[0].key != "cid1" || b.ops[1].key != "cid2" {
		t.Errorf("unexpected op keys %q, %q", b.ops[0].key, b.ops[1].key)
	}
}

func TestBatch_DistinctCollectionsSameKey(t *testing.T) {
	b := NewBatch().
		Put("mentors", "alice", []byte("mentor")).
		Put("users", "alice", []byte("user"))

	if len(b.ops) != 2 {
		t.Fatalf("expected same key in distinct collections to stay separate, got %d ops", len(b.ops))
	}
}

// --- rawKey composition (Badger backend) ---

func TestRawKey(t *testing.T) {
	raw := rawKey("mentors", "alice")
	expected := "mentors\x00alice"
	if string(raw) != expected {
		t.Errorf("expected %q, got %q", expected, raw)
	}
}
