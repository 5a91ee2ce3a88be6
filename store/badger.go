package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// collectionSep separates the collection prefix from the entity key.
// Entity keys are identities and comment ids, which never contain NUL.
const collectionSep = byte(0)

// BadgerConfig holds configuration for the embedded Badger backend.
type BadgerConfig struct {
	// Path is the directory for database files. Ignored when InMemory.
	Path string

	// InMemory runs without disk persistence. Used by tests.
	InMemory bool

	// SyncWrites forces each commit to disk before returning.
	SyncWrites bool
}

// DefaultBadgerConfig returns production defaults for a database at path.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{
		Path:       path,
		SyncWrites: true,
	}
}

// InMemoryBadgerConfig returns a configuration for tests: in-memory,
// no sync.
func InMemoryBadgerConfig() BadgerConfig {
	return BadgerConfig{
		InMemory: true,
	}
}

// Badger is a Store backed by an embedded BadgerDB database. It serves
// local runs and unit tests; collections become key prefixes.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens a Badger-backed store with the given configuration.
func OpenBadger(cfg BadgerConfig) (*Badger, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("mentorboard: badger path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Badger{db: db}, nil
}

// Close closes the underlying database.
func (b *Badger) Close() error {
	return b.db.Close()
}

// Get retrieves the value at key in collection.
func (b *Badger) Get(ctx context.Context, collection, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(rawKey(collection, key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	return value, nil
}

// Scan walks the collection prefix in ascending key order. The iterator
// seeks to the exclusive lower bound and skips an exact match, so the
// first entry returned is strictly greater than startAfter.
func (b *Badger) Scan(ctx context.Context, collection, startAfter string, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	prefix := append([]byte(collection), collectionSep)
	seek := prefix
	if startAfter != "" {
		seek = append(append([]byte{}, prefix...), startAfter...)
	}

	var entries []Entry
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(seek); it.Valid() && len(entries) < limit; it.Next() {
			item := it.Item()
			raw := item.Key()
			if bytes.Equal(raw, seek) {
				continue // exclusive bound
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			entries = append(entries, Entry{
				Key:   string(raw[len(prefix):]),
				Value: value,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", collection, err)
	}
	return entries, nil
}

// Apply commits the batch in a single read-write transaction.
func (b *Badger) Apply(ctx context.Context, batch *Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if batch == nil || len(batch.ops) == 0 {
		return ErrEmptyBatch
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		for _, op := range batch.ops {
			raw := rawKey(op.collection, op.key)
			if op.delete {
				if err := txn.Delete(raw); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set(raw, op.value); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, badger.ErrTxnTooBig) {
		return ErrBatchTooLarge
	}
	if err != nil {
		return fmt.Errorf("apply batch: %w", err)
	}
	return nil
}

// rawKey builds the composite storage key for an entity.
func rawKey(collection, key string) []byte {
	raw := make([]byte, 0, len(collection)+1+len(key))
	raw = append(raw, collection...)
	raw = append(raw, collectionSep)
	raw = append(raw, key...)
	return raw
}
