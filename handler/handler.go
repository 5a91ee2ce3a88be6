// Package handler adapts the board engine to AWS Lambda invocations.
//
// The handler receives a JSON [Request] envelope, dispatches to the
// engine, and folds results and domain errors into a [Response]. The
// invoking host has already authenticated the sender identity; the
// handler supplies the call timestamp.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jacentio/mentorboard/board"
)

// Error codes returned in Response.Error.
const (
	codeBadRequest         = "bad_request"
	codeAlreadyInitialized = "already_initialized"
	codeNotInitialized     = "not_initialized"
	codeMentorExists       = "mentor_already_exists"
	codeMentorNotFound     = "mentor_not_found"
	codeUserNotFound       = "user_not_found"
	codeCommentNotFound    = "comment_not_found"
	codeInvalidRating      = "invalid_rating"
	codeInvalidVote        = "invalid_vote"
	codeInternal           = "internal"
)

// Handler processes board invocations. Use with lambda.Start.
type Handler struct {
	engine *board.Engine
	logger *slog.Logger
	now    func() time.Time
}

// New creates a handler over the given engine.
func New(engine *board.Engine, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		engine: engine,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Handle dispatches one invocation. Failures are reported inside the
// Response; the returned error is always nil so the host never retries
// what is a deterministic, host-serialized call.
func (h *Handler) Handle(ctx context.Context, req Request) (Response, error) {
	switch {
	case req.Execute != nil && req.Query != nil:
		return badRequest("request must carry either execute or query, not both"), nil
	case req.Execute != nil:
		if req.Sender == "" {
			return badRequest("execute requires a sender"), nil
		}
		return h.execute(ctx, req.Sender, req.Execute), nil
	case req.Query != nil:
		return h.query(ctx, req.Query), nil
	default:
		return badRequest("request carries neither execute nor query"), nil
	}
}

func (h *Handler) execute(ctx context.Context, sender string, msg *ExecuteMsg) Response {
	now := h.now()

	switch {
	case msg.Init != nil:
		if err := h.engine.Init(ctx, sender); err != nil {
			return h.failure(err)
		}
		return attributes(
			Attribute{"action", "init"},
			Attribute{"owner", sender},
		)

	case msg.CreateMentor != nil:
		m := msg.CreateMentor
		err := h.engine.CreateMentor(ctx, sender, now, board.CreateMentorParams{
			Name:        m.Name,
			Institution: m.Institution,
			Department:  m.Department,
			Avatar:      m.Avatar,
			Links:       m.Links,
		})
		if err != nil {
			return h.failure(err)
		}
		return attributes(
			Attribute{"action", "create_mentor"},
			Attribute{"mentor_id", sender},
			Attribute{"name", m.Name},
			Attribute{"institution", m.Institution},
		)

	case msg.CreateComment != nil:
		m := msg.CreateComment
		commentID, err := h.engine.CreateComment(ctx, sender, now, m.MentorID, m.Rating, m.Comment)
		if err != nil {
			return h.failure(err)
		}
		return attributes(
			Attribute{"action", "create_comment"},
			Attribute{"comment_id", commentID},
			Attribute{"mentor_id", m.MentorID},
			Attribute{"rating", strconv.Itoa(int(m.Rating))},
		)

	case msg.VoteComment != nil:
		m := msg.VoteComment
		likes, err := h.engine.VoteComment(ctx, sender, m.CommentID, board.Vote(m.Vote))
		if err != nil {
			return h.failure(err)
		}
		return attributes(
			Attribute{"action", "vote_comment"},
			Attribute{"comment_id", m.CommentID},
			Attribute{"vote", strconv.Itoa(int(m.Vote))},
			Attribute{"new_likes", strconv.Itoa(int(likes))},
		)

	case msg.UpdateMentor != nil:
		m := msg.UpdateMentor
		err := h.engine.UpdateMentor(ctx, sender, now, board.UpdateMentorParams{
			Name:        m.Name,
			Institution: m.Institution,
			Department:  m.Department,
			Avatar:      m.Avatar,
			Links:       m.Links,
		})
		if err != nil {
			return h.failure(err)
		}
		return attributes(
			Attribute{"action", "update_mentor"},
			Attribute{"mentor_id", sender},
		)

	case msg.UpdateUserInstitution != nil:
		m := msg.UpdateUserInstitution
		if err := h.engine.UpdateUserInstitution(ctx, sender, m.Institution); err != nil {
			return h.failure(err)
		}
		return attributes(
			Attribute{"action", "update_user_institution"},
			Attribute{"user_id", sender},
		)

	default:
		return badRequest("execute message carries no known variant")
	}
}

func (h *Handler) query(ctx context.Context, msg *QueryMsg) Response {
	switch {
	case msg.GetMentor != nil:
		detail, err := h.engine.GetMentor(ctx, msg.GetMentor.MentorID)
		if err != nil {
			return h.failure(err)
		}
		return h.data(detail)

	case msg.GetUser != nil:
		detail, err := h.engine.GetUser(ctx, msg.GetUser.UserID)
		if err != nil {
			return h.failure(err)
		}
		return h.data(detail)

	case msg.GetComment != nil:
		comment, err := h.engine.GetComment(ctx, msg.GetComment.CommentID)
		if err != nil {
			return h.failure(err)
		}
		return h.data(CommentResponse{Comment: *comment})

	case msg.ListMentors != nil:
		m := msg.ListMentors
		mentors, err := h.engine.ListMentors(ctx, strOrEmpty(m.StartAfter), intOrZero(m.Limit))
		if err != nil {
			return h.failure(err)
		}
		return h.data(MentorsResponse{Mentors: mentors})

	case msg.ListComments != nil:
		m := msg.ListComments
		comments, err := h.engine.ListComments(ctx, strOrEmpty(m.MentorID), strOrEmpty(m.StartAfter), intOrZero(m.Limit))
		if err != nil {
			return h.failure(err)
		}
		return h.data(CommentsResponse{Comments: comments})

	default:
		return badRequest("query message carries no known variant")
	}
}

// failure maps a domain error to its stable response code. Anything
// outside the taxonomy is an infrastructure failure and is logged.
func (h *Handler) failure(err error) Response {
	code := codeInternal
	switch {
	case errors.Is(err, board.ErrAlreadyInitialized):
		code = codeAlreadyInitialized
	case errors.Is(err, board.ErrNotInitialized):
		code = codeNotInitialized
	case errors.Is(err, board.ErrMentorExists):
		code = codeMentorExists
	case errors.Is(err, board.ErrMentorNotFound):
		code = codeMentorNotFound
	case errors.Is(err, board.ErrUserNotFound):
		code = codeUserNotFound
	case errors.Is(err, board.ErrCommentNotFound):
		code = codeCommentNotFound
	case errors.Is(err, board.ErrInvalidRating):
		code = codeInvalidRating
	case errors.Is(err, board.ErrInvalidVote):
		code = codeInvalidVote
	}

	if code == codeInternal {
		h.logger.Error("invocation failed", "error", err)
		return Response{Error: &ErrorDetail{Code: code, Message: "internal error"}}
	}
	return Response{Error: &ErrorDetail{Code: code, Message: err.Error()}}
}

func (h *Handler) data(v any) Response {
	raw, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("marshal query response", "error", err)
		return Response{Error: &ErrorDetail{Code: codeInternal, Message: "internal error"}}
	}
	return Response{Data: raw}
}

func attributes(attrs ...Attribute) Response {
	return Response{Attributes: attrs}
}

func badRequest(format string, args ...any) Response {
	return Response{Error: &ErrorDetail{
		Code:    codeBadRequest,
		Message: fmt.Sprintf(format, args...),
	}}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
