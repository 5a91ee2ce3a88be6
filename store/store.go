package store

import "context"

// Entry is a single key/value pair returned by Scan.
type Entry struct {
	Key   string
	Value []byte
}

// Store is an ordered keyed store holding named collections of opaque
// byte values.
type Store interface {
	// Get returns the value at key in collection, or ErrNotFound.
	Get(ctx context.Context, collection, key string) ([]byte, error)

	// Scan returns up to limit entries from collection in ascending key
	// order, starting strictly after startAfter. An empty startAfter
	// scans from the beginning of the collection.
	Scan(ctx context.Context, collection, startAfter string, limit int) ([]Entry, error)

	// Apply applies every staged write in the batch atomically.
	Apply(ctx context.Context, batch *Batch) error
}

type writeOp struct {
	collection string
	key        string
	value      []byte // nil means delete
	delete     bool
}

// Batch accumulates puts and deletes to be applied as one atomic unit.
// A Batch is not safe for concurrent use.
type Batch struct {
	ops []writeOp
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Put stages a write of value at key in collection. A later Put or
// Delete for the same key supersedes an earlier one.
func (b *Batch) Put(collection, key string, value []byte) *Batch {
	b.stage(writeOp{collection: collection, key: key, value: value})
	return b
}

// Delete stages removal of key from collection. Deleting an absent key
// is a no-op.
func (b *Batch) Delete(collection, key string) *Batch {
	b.stage(writeOp{collection: collection, key: key, delete: true})
	return b
}

// Len returns the number of staged operations.
func (b *Batch) Len() int {
	return len(b.ops)
}

// stage replaces any earlier op for the same (collection, key) so a
// batch never carries two writes to one item. DynamoDB rejects
// transactions that touch the same item twice.
func (b *Batch) stage(op writeOp) {
	for i := range b.ops {
		if b.ops[i].collection == op.collection && b.ops[i].key == op.key {
			b.ops[i] = op
			return
		}
	}
	b.ops = append(b.ops, op)
}
