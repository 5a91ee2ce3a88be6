package board

import (
	"context"
	"errors"
)

// Pagination defaults and caps. Requested limits above the cap are
// clamped, never rejected.
const (
	defaultLimit     = 10
	maxMentorsLimit  = 30
	maxCommentsLimit = 50

	// overFetchFactor sizes the scan window for mentor-filtered comment
	// listings. The store has no secondary index on mentor id, so the
	// engine scans limit*overFetchFactor records and filters. When fewer
	// matches fall inside the window the page comes back short even
	// though more matches exist further along the keyspace; callers
	// paginating a filtered view may skip or duplicate results across
	// page boundaries.
	overFetchFactor = 3
)

// MentorDetail is a mentor with its referenced comments hydrated.
type MentorDetail struct {
	Mentor   Mentor    `json:"mentor"`
	Comments []Comment `json:"comments"`
}

// UserDetail is a user with their posted comments hydrated.
type UserDetail struct {
	User     User      `json:"user"`
	Comments []Comment `json:"comments"`
}

// GetMentor returns a mentor and every comment its back-reference list
// names. Dangling comment ids are skipped, not surfaced.
func (e *Engine) GetMentor(ctx context.Context, mentorID string) (*MentorDetail, error) {
	mentor, err := e.loadMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	comments, err := e.hydrateComments(ctx, mentor.CommentIDs)
	if err != nil {
		return nil, err
	}

	return &MentorDetail{Mentor: mentor, Comments: comments}, nil
}

// GetUser returns a user and every comment they posted, with the same
// skip policy as GetMentor.
func (e *Engine) GetUser(ctx context.Context, userID string) (*UserDetail, error) {
	user, err := e.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	comments, err := e.hydrateComments(ctx, user.PostedCommentIDs)
	if err != nil {
		return nil, err
	}

	return &UserDetail{User: user, Comments: comments}, nil
}

// GetComment returns a single comment.
func (e *Engine) GetComment(ctx context.Context, commentID string) (*Comment, error) {
	comment, err := e.loadComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListMentors pages through mentors ascending by identity. startAfter
// is an exclusive lower bound; a non-positive limit means the default.
func (e *Engine) ListMentors(ctx context.Context, startAfter string, limit int) ([]Mentor, error) {
	limit = clampLimit(limit, maxMentorsLimit)

	entries, err := e.store.Scan(ctx, colMentors, startAfter, limit)
	if err != nil {
		return nil, err
	}

	mentors := make([]Mentor, 0, len(entries))
	for _, entry := range entries {
		var mentor Mentor
		if err := decode(entry.Value, &mentor); err != nil {
			return nil, err
		}
		mentors = append(mentors, mentor)
	}
	return mentors, nil
}

// ListComments pages through comments ascending by comment id. An empty
// mentorID lists every comment; otherwise results are filtered to the
// mentor within an over-fetched scan window (see overFetchFactor).
func (e *Engine) ListComments(ctx context.Context, mentorID, startAfter string, limit int) ([]Comment, error) {
	limit = clampLimit(limit, maxCommentsLimit)

	window := limit
	if mentorID != "" {
		window = limit * overFetchFactor
	}

	entries, err := e.store.Scan(ctx, colComments, startAfter, window)
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, limit)
	for _, entry := range entries {
		var comment Comment
		if err := decode(entry.Value, &comment); err != nil {
			return nil, err
		}
		if mentorID != "" && comment.MentorID != mentorID {
			continue
		}
		comments = append(comments, comment)
		if len(comments) == limit {
			break
		}
	}
	return comments, nil
}

// hydrateComments point-loads each referenced comment. Under the
// engine's invariants every id resolves; a dangling reference is
// skipped rather than failing the whole aggregate.
func (e *Engine) hydrateComments(ctx context.Context, ids []string) ([]Comment, error) {
	comments := make([]Comment, 0, len(ids))
	for _, id := range ids {
		comment, err := e.loadComment(ctx, id)
		if errors.Is(err, ErrCommentNotFound) {
			e.logger.Warn("skipping dangling comment reference", "commentID", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func clampLimit(limit, max int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > max {
		return max
	}
	return limit
}
