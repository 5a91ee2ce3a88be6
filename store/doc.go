// Package store provides an ordered keyed store with pluggable backends.
//
// Mentorboard keeps its entire domain state in named collections of
// string-keyed opaque byte values. The package defines the contract the
// rest of the system programs against, plus two implementations:
//
//   - [Dynamo] - a single DynamoDB table (partition key = collection,
//     sort key = entity key). Multi-key writes use TransactWriteItems.
//   - [Badger] - an embedded BadgerDB database for local runs and tests.
//
// # Contract
//
// Keys within a collection are ordered lexicographically. [Store.Scan]
// walks a collection ascending from an exclusive lower bound, which is
// the primitive the board package builds cursor pagination on.
//
// [Store.Apply] applies a [Batch] of puts and deletes as a unit: either
// every write lands or none do. The store performs no locking beyond
// that; the host invoking mentorboard serializes mutation calls, so a
// read-check-write sequence inside one call never races another.
//
// # Errors
//
//   - [ErrNotFound] - no value at the requested key
//   - [ErrEmptyBatch] - Apply called with nothing staged
package store
