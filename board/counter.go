package board

import (
	"context"

	"github.com/jacentio/mentorboard/internal/keyspace"
	"github.com/jacentio/mentorboard/store"
)

// nextCommentID mints the next comment identifier from the durable
// counter. The incremented State is staged into batch, not written
// directly, so the mint commits or aborts together with the comment
// that consumes it.
func (e *Engine) nextCommentID(ctx context.Context, batch *store.Batch) (string, error) {
	state, err := e.loadState(ctx)
	if err != nil {
		return "", err
	}

	state.CommentCounter++

	data, err := encode(state)
	if err != nil {
		return "", err
	}
	batch.Put(colState, stateKey, data)

	return keyspace.CommentID(state.CommentCounter), nil
}
