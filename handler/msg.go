package handler

import (
	"encoding/json"

	"github.com/jacentio/mentorboard/board"
)

// Request is the invocation envelope. The host authenticates Sender
// before the payload reaches this handler; exactly one of Execute or
// Query must be set.
type Request struct {
	Sender  string      `json:"sender,omitempty"`
	Execute *ExecuteMsg `json:"execute,omitempty"`
	Query   *QueryMsg   `json:"query,omitempty"`
}

// ExecuteMsg is a tagged union of mutation messages; exactly one field
// must be set.
type ExecuteMsg struct {
	Init                  *InitMsg                  `json:"init,omitempty"`
	CreateMentor          *CreateMentorMsg          `json:"create_mentor,omitempty"`
	CreateComment         *CreateCommentMsg         `json:"create_comment,omitempty"`
	VoteComment           *VoteCommentMsg           `json:"vote_comment,omitempty"`
	UpdateMentor          *UpdateMentorMsg          `json:"update_mentor,omitempty"`
	UpdateUserInstitution *UpdateUserInstitutionMsg `json:"update_user_institution,omitempty"`
}

// InitMsg instantiates the board with the sender as owner.
type InitMsg struct{}

// CreateMentorMsg creates the sender's mentor profile.
type CreateMentorMsg struct {
	Name        string   `json:"name"`
	Institution string   `json:"institution"`
	Department  string   `json:"department"`
	Avatar      *string  `json:"avatar,omitempty"`
	Links       []string `json:"links"`
}

// CreateCommentMsg posts a rated comment against a mentor.
type CreateCommentMsg struct {
	MentorID string `json:"mentor_id"`
	Rating   uint8  `json:"rating"`
	Comment  string `json:"comment"`
}

// VoteCommentMsg casts, changes, or retracts (vote 0) the sender's vote.
type VoteCommentMsg struct {
	CommentID string `json:"comment_id"`
	Vote      int8   `json:"vote"`
}

// UpdateMentorMsg partially updates the sender's own profile; absent
// fields are left untouched.
type UpdateMentorMsg struct {
	Name        *string  `json:"name,omitempty"`
	Institution *string  `json:"institution,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Avatar      *string  `json:"avatar,omitempty"`
	Links       []string `json:"links,omitempty"`
}

// UpdateUserInstitutionMsg overwrites the sender's institution; an
// absent institution clears it.
type UpdateUserInstitutionMsg struct {
	Institution *string `json:"institution,omitempty"`
}

// QueryMsg is a tagged union of query messages; exactly one field must
// be set.
type QueryMsg struct {
	GetMentor    *GetMentorMsg    `json:"get_mentor,omitempty"`
	GetUser      *GetUserMsg      `json:"get_user,omitempty"`
	GetComment   *GetCommentMsg   `json:"get_comment,omitempty"`
	ListMentors  *ListMentorsMsg  `json:"list_mentors,omitempty"`
	ListComments *ListCommentsMsg `json:"list_comments,omitempty"`
}

// GetMentorMsg fetches a mentor with its comments hydrated.
type GetMentorMsg struct {
	MentorID string `json:"mentor_id"`
}

// GetUserMsg fetches a user with their posted comments hydrated.
type GetUserMsg struct {
	UserID string `json:"user_id"`
}

// GetCommentMsg fetches a single comment.
type GetCommentMsg struct {
	CommentID string `json:"comment_id"`
}

// ListMentorsMsg pages mentors ascending by identity.
type ListMentorsMsg struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *int    `json:"limit,omitempty"`
}

// ListCommentsMsg pages comments ascending by comment id, optionally
// filtered to one mentor.
type ListCommentsMsg struct {
	MentorID   *string `json:"mentor_id,omitempty"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *int    `json:"limit,omitempty"`
}

// Attribute is a key/value pair attached to an execute response.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the invocation result. Executes carry attributes, queries
// carry data, failures carry an error and nothing else.
type Response struct {
	Attributes []Attribute     `json:"attributes,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
}

// ErrorDetail is a machine-readable failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CommentResponse wraps a single comment query result.
type CommentResponse struct {
	Comment board.Comment `json:"comment"`
}

// MentorsResponse wraps a mentor listing page.
type MentorsResponse struct {
	Mentors []board.Mentor `json:"mentors"`
}

// CommentsResponse wraps a comment listing page.
type CommentsResponse struct {
	Comments []board.Comment `json:"comments"`
}
