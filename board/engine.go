package board

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jacentio/mentorboard/internal/keyspace"
	"github.com/jacentio/mentorboard/store"
)

// Engine owns all reads and writes of the board's domain state.
type Engine struct {
	store  store.Store
	logger *slog.Logger
}

// New creates an Engine over the given store.
func New(s store.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:  s,
		logger: logger,
	}
}

// Init instantiates the board, recording the owner identity and zeroing
// the comment counter. It fails if the board was already instantiated.
func (e *Engine) Init(ctx context.Context, owner string) error {
	_, err := e.store.Get(ctx, colState, stateKey)
	if err == nil {
		return ErrAlreadyInitialized
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	data, err := encode(State{Owner: owner, CommentCounter: 0})
	if err != nil {
		return err
	}

	if err := e.store.Apply(ctx, store.NewBatch().Put(colState, stateKey, data)); err != nil {
		return err
	}

	e.logger.Info("board initialized", "owner", owner)
	return nil
}

// --- Entity loaders ---

func (e *Engine) loadState(ctx context.Context) (State, error) {
	var state State
	data, err := e.store.Get(ctx, colState, stateKey)
	if errors.Is(err, store.ErrNotFound) {
		return state, ErrNotInitialized
	}
	if err != nil {
		return state, err
	}
	return state, decode(data, &state)
}

func (e *Engine) loadMentor(ctx context.Context, mentorID string) (Mentor, error) {
	var mentor Mentor
	data, err := e.store.Get(ctx, colMentors, mentorID)
	if errors.Is(err, store.ErrNotFound) {
		return mentor, ErrMentorNotFound
	}
	if err != nil {
		return mentor, err
	}
	return mentor, decode(data, &mentor)
}

func (e *Engine) loadUser(ctx context.Context, userID string) (User, error) {
	var user User
	data, err := e.store.Get(ctx, colUsers, userID)
	if errors.Is(err, store.ErrNotFound) {
		return user, ErrUserNotFound
	}
	if err != nil {
		return user, err
	}
	return user, decode(data, &user)
}

func (e *Engine) loadComment(ctx context.Context, commentID string) (Comment, error) {
	var comment Comment
	data, err := e.store.Get(ctx, colComments, commentID)
	if errors.Is(err, store.ErrNotFound) {
		return comment, ErrCommentNotFound
	}
	if err != nil {
		return comment, err
	}
	return comment, decode(data, &comment)
}

// loadVote returns the voter's current vote on a comment, or NoVote if
// no record exists.
func (e *Engine) loadVote(ctx context.Context, voter, commentID string) (Vote, error) {
	data, err := e.store.Get(ctx, colVotes, keyspace.VoteKey(voter, commentID))
	if errors.Is(err, store.ErrNotFound) {
		return NoVote, nil
	}
	if err != nil {
		return NoVote, err
	}
	var vote Vote
	return vote, decode(data, &vote)
}
