package board

import "errors"

var (
	// ErrAlreadyInitialized is returned by Init when the board was
	// already instantiated.
	ErrAlreadyInitialized = errors.New("mentorboard: already initialized")

	// ErrNotInitialized is returned when a mutation runs before Init.
	ErrNotInitialized = errors.New("mentorboard: not initialized")

	// ErrMentorExists is returned when an identity creates a second
	// mentor profile.
	ErrMentorExists = errors.New("mentorboard: mentor already exists for this identity")

	// ErrMentorNotFound is returned when the referenced mentor is absent.
	ErrMentorNotFound = errors.New("mentorboard: mentor not found")

	// ErrUserNotFound is returned when the referenced user is absent.
	ErrUserNotFound = errors.New("mentorboard: user not found")

	// ErrCommentNotFound is returned when the referenced comment is absent.
	ErrCommentNotFound = errors.New("mentorboard: comment not found")

	// ErrInvalidRating is returned for ratings outside [1, 10].
	ErrInvalidRating = errors.New("mentorboard: invalid rating: must be between 1 and 10")

	// ErrInvalidVote is returned for votes outside {-1, 0, 1}.
	ErrInvalidVote = errors.New("mentorboard: invalid vote: must be -1, 0, or 1")
)
