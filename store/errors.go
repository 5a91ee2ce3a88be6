package store

import "errors"

var (
	// ErrNotFound is returned by Get when no value exists at the key.
	ErrNotFound = errors.New("mentorboard: entry not found")

	// ErrEmptyBatch is returned by Apply when the batch has no staged writes.
	ErrEmptyBatch = errors.New("mentorboard: empty batch")

	// ErrBatchTooLarge is returned when a batch exceeds the backend's
	// transaction size limit (100 items for DynamoDB).
	ErrBatchTooLarge = errors.New("mentorboard: batch exceeds transaction limit")
)
