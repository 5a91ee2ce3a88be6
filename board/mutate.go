package board

import (
	"context"
	"errors"
	"time"

	"github.com/jacentio/mentorboard/internal/keyspace"
	"github.com/jacentio/mentorboard/store"
)

// CreateMentorParams carries the fields of a new mentor profile.
type CreateMentorParams struct {
	Name        string
	Institution string
	Department  string
	Avatar      *string
	Links       []string
}

// CreateMentor creates the caller's mentor profile. Each identity may
// hold at most one profile; the identity is the profile's key.
func (e *Engine) CreateMentor(ctx context.Context, caller string, now time.Time, p CreateMentorParams) error {
	_, err := e.store.Get(ctx, colMentors, caller)
	if err == nil {
		return ErrMentorExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	mentor := Mentor{
		Name:        p.Name,
		Institution: p.Institution,
		Department:  p.Department,
		Avatar:      p.Avatar,
		CreatedAt:   now,
		CreatedBy:   caller,
		Links:       p.Links,
		UpdatedAt:   now,
		UpdatedBy:   caller,
		CommentIDs:  []string{},
	}

	data, err := encode(mentor)
	if err != nil {
		return err
	}

	if err := e.store.Apply(ctx, store.NewBatch().Put(colMentors, caller, data)); err != nil {
		return err
	}

	e.logger.Info("mentor created", "mentorID", caller, "name", p.Name)
	return nil
}

// CreateComment records a rated comment against a mentor and returns
// the minted comment id.
//
// One atomic batch carries the counter increment, the comment, the
// mentor's back-reference append (which also stamps the mentor's
// update provenance with the commenter, not the mentor), and the
// author's lazily created user record.
func (e *Engine) CreateComment(ctx context.Context, caller string, now time.Time, mentorID string, rating uint8, text string) (string, error) {
	if rating < MinRating || rating > MaxRating {
		return "", ErrInvalidRating
	}

	mentor, err := e.loadMentor(ctx, mentorID)
	if err != nil {
		return "", err
	}

	batch := store.NewBatch()

	commentID, err := e.nextCommentID(ctx, batch)
	if err != nil {
		return "", err
	}

	comment := Comment{
		ID:        commentID,
		CreatedAt: now,
		CreatedBy: caller,
		MentorID:  mentorID,
		Rating:    rating,
		Text:      text,
		Likes:     0,
	}
	commentData, err := encode(comment)
	if err != nil {
		return "", err
	}
	batch.Put(colComments, commentID, commentData)

	mentor.CommentIDs = append(mentor.CommentIDs, commentID)
	mentor.UpdatedAt = now
	mentor.UpdatedBy = caller
	mentorData, err := encode(mentor)
	if err != nil {
		return "", err
	}
	batch.Put(colMentors, mentorID, mentorData)

	user, err := e.loadUser(ctx, caller)
	if errors.Is(err, ErrUserNotFound) {
		user = User{ID: caller}
	} else if err != nil {
		return "", err
	}
	user.PostedCommentIDs = append(user.PostedCommentIDs, commentID)
	userData, err := encode(user)
	if err != nil {
		return "", err
	}
	batch.Put(colUsers, caller, userData)

	if err := e.store.Apply(ctx, batch); err != nil {
		return "", err
	}

	e.logger.Info("comment created",
		"commentID", commentID,
		"mentorID", mentorID,
		"author", caller,
		"rating", rating,
	)
	return commentID, nil
}

// VoteComment reconciles the caller's vote on a comment and returns the
// comment's new likes tally.
//
// The delta computation subtracts the caller's previous vote before
// adding the new one, so the stored tally always equals the sum of all
// voters' current choices no matter how often any voter flips. A zero
// vote deletes the vote record.
func (e *Engine) VoteComment(ctx context.Context, caller, commentID string, vote Vote) (int32, error) {
	if !vote.Valid() {
		return 0, ErrInvalidVote
	}

	comment, err := e.loadComment(ctx, commentID)
	if err != nil {
		return 0, err
	}

	previous, err := e.loadVote(ctx, caller, commentID)
	if err != nil {
		return 0, err
	}

	comment.Likes = comment.Likes - int32(previous) + int32(vote)

	commentData, err := encode(comment)
	if err != nil {
		return 0, err
	}

	batch := store.NewBatch().Put(colComments, commentID, commentData)

	voteKey := keyspace.VoteKey(caller, commentID)
	if vote == NoVote {
		batch.Delete(colVotes, voteKey)
	} else {
		voteData, err := encode(vote)
		if err != nil {
			return 0, err
		}
		batch.Put(colVotes, voteKey, voteData)
	}

	if err := e.store.Apply(ctx, batch); err != nil {
		return 0, err
	}

	e.logger.Info("vote recorded",
		"commentID", commentID,
		"voter", caller,
		"vote", int8(vote),
		"likes", comment.Likes,
	)
	return comment.Likes, nil
}

// UpdateMentorParams carries the optional fields of a mentor update.
// Nil fields are left untouched.
type UpdateMentorParams struct {
	Name        *string
	Institution *string
	Department  *string
	Avatar      *string
	Links       []string
}

// UpdateMentor applies a partial update to the caller's own mentor
// profile. There is no path to update another identity's profile.
// Update provenance always refreshes, even for an empty update.
func (e *Engine) UpdateMentor(ctx context.Context, caller string, now time.Time, p UpdateMentorParams) error {
	mentor, err := e.loadMentor(ctx, caller)
	if err != nil {
		return err
	}

	if p.Name != nil {
		mentor.Name = *p.Name
	}
	if p.Institution != nil {
		mentor.Institution = *p.Institution
	}
	if p.Department != nil {
		mentor.Department = *p.Department
	}
	if p.Avatar != nil {
		mentor.Avatar = p.Avatar
	}
	if p.Links != nil {
		mentor.Links = p.Links
	}

	mentor.UpdatedAt = now
	mentor.UpdatedBy = caller

	data, err := encode(mentor)
	if err != nil {
		return err
	}

	if err := e.store.Apply(ctx, store.NewBatch().Put(colMentors, caller, data)); err != nil {
		return err
	}

	e.logger.Info("mentor updated", "mentorID", caller)
	return nil
}

// UpdateUserInstitution sets the caller's institution, creating the
// user record if needed. Unlike UpdateMentor this is a full overwrite:
// a nil institution clears the stored value.
func (e *Engine) UpdateUserInstitution(ctx context.Context, caller string, institution *string) error {
	user, err := e.loadUser(ctx, caller)
	if errors.Is(err, ErrUserNotFound) {
		user = User{ID: caller}
	} else if err != nil {
		return err
	}

	user.Institution = institution

	data, err := encode(user)
	if err != nil {
		return err
	}

	if err := e.store.Apply(ctx, store.NewBatch().Put(colUsers, caller, data)); err != nil {
		return err
	}

	e.logger.Info("user institution updated", "userID", caller)
	return nil
}
