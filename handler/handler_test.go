package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/mentorboard/board"
	"github.com/jacentio/mentorboard/handler"
	"github.com/jacentio/mentorboard/store"
)

func newTestHandler(t *testing.T) *handler.Handler {
	t.Helper()

	s, err := store.OpenBadger(store.InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.New(board.New(s, logger), logger)

	resp, err := h.Handle(context.Background(), handler.Request{
		Sender:  "creator",
		Execute: &handler.ExecuteMsg{Init: &handler.InitMsg{}},
	})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	return h
}

func handle(t *testing.T, h *handler.Handler, req handler.Request) handler.Response {
	t.Helper()
	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func handleJSON(t *testing.T, h *handler.Handler, raw string) handler.Response {
	t.Helper()
	var req handler.Request
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return handle(t, h, req)
}

func attrValue(t *testing.T, resp handler.Response, key string) string {
	t.Helper()
	for _, attr := range resp.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	t.Fatalf("attribute %q not found in %v", key, resp.Attributes)
	return ""
}

func TestHandle_EnvelopeValidation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		req  handler.Request
	}{
		{"empty request", handler.Request{}},
		{"both execute and query", handler.Request{
			Sender:  "alice",
			Execute: &handler.ExecuteMsg{Init: &handler.InitMsg{}},
			Query:   &handler.QueryMsg{ListMentors: &handler.ListMentorsMsg{}},
		}},
		{"execute without sender", handler.Request{
			Execute: &handler.ExecuteMsg{Init: &handler.InitMsg{}},
		}},
		{"execute without variant", handler.Request{
			Sender:  "alice",
			Execute: &handler.ExecuteMsg{},
		}},
		{"query without variant", handler.Request{
			Query: &handler.QueryMsg{},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handle(t, h, tt.req)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "bad_request", resp.Error.Code)
		})
	}
}

func TestHandle_CreateMentorAttributes(t *testing.T) {
	h := newTestHandler(t)

	resp := handleJSON(t, h, `{
		"sender": "mentor1",
		"execute": {"create_mentor": {
			"name": "Ivy",
			"institution": "Example University",
			"department": "Computer Science",
			"links": ["https://example.com/ivy"]
		}}
	}`)

	require.Nil(t, resp.Error)
	assert.Equal(t, "create_mentor", attrValue(t, resp, "action"))
	assert.Equal(t, "mentor1", attrValue(t, resp, "mentor_id"))
	assert.Equal(t, "Ivy", attrValue(t, resp, "name"))
}

func TestHandle_ErrorCodes(t *testing.T) {
	h := newTestHandler(t)

	create := `{"sender":"mentor1","execute":{"create_mentor":{"name":"Ivy","institution":"U","department":"CS","links":[]}}}`
	require.Nil(t, handleJSON(t, h, create).Error)

	tests := []struct {
		name string
		raw  string
		code string
	}{
		{"duplicate mentor", create, "mentor_already_exists"},
		{"second init", `{"sender":"x","execute":{"init":{}}}`, "already_initialized"},
		{"invalid rating", `{"sender":"s1","execute":{"create_comment":{"mentor_id":"mentor1","rating":11,"comment":"no"}}}`, "invalid_rating"},
		{"mentor not found", `{"sender":"s1","execute":{"create_comment":{"mentor_id":"ghost","rating":5,"comment":"no"}}}`, "mentor_not_found"},
		{"invalid vote", `{"sender":"s1","execute":{"vote_comment":{"comment_id":"cid1","vote":2}}}`, "invalid_vote"},
		{"comment not found", `{"sender":"s1","execute":{"vote_comment":{"comment_id":"cid9","vote":1}}}`, "comment_not_found"},
		{"update unknown mentor", `{"sender":"ghost","execute":{"update_mentor":{"name":"X"}}}`, "mentor_not_found"},
		{"get unknown user", `{"query":{"get_user":{"user_id":"ghost"}}}`, "user_not_found"},
		{"get unknown comment", `{"query":{"get_comment":{"comment_id":"cid9"}}}`, "comment_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handleJSON(t, h, tt.raw)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandle_CommentAndVoteFlow(t *testing.T) {
	h := newTestHandler(t)

	require.Nil(t, handleJSON(t, h,
		`{"sender":"mentor1","execute":{"create_mentor":{"name":"Ivy","institution":"U","department":"CS","links":[]}}}`).Error)

	resp := handleJSON(t, h,
		`{"sender":"student1","execute":{"create_comment":{"mentor_id":"mentor1","rating":9,"comment":"great teacher"}}}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "cid1", attrValue(t, resp, "comment_id"))
	assert.Equal(t, "9", attrValue(t, resp, "rating"))

	resp = handleJSON(t, h,
		`{"sender":"voter1","execute":{"vote_comment":{"comment_id":"cid1","vote":1}}}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "1", attrValue(t, resp, "new_likes"))

	resp = handleJSON(t, h,
		`{"sender":"voter1","execute":{"vote_comment":{"comment_id":"cid1","vote":0}}}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "0", attrValue(t, resp, "new_likes"))

	resp = handleJSON(t, h, `{"query":{"get_comment":{"comment_id":"cid1"}}}`)
	require.Nil(t, resp.Error)

	var comment handler.CommentResponse
	require.NoError(t, json.Unmarshal(resp.Data, &comment))
	assert.Equal(t, "cid1", comment.Comment.ID)
	assert.Equal(t, int32(0), comment.Comment.Likes)
	assert.Equal(t, "great teacher", comment.Comment.Text)
}

func TestHandle_GetMentorData(t *testing.T) {
	h := newTestHandler(t)

	require.Nil(t, handleJSON(t, h,
		`{"sender":"mentor1","execute":{"create_mentor":{"name":"Ivy","institution":"U","department":"CS","links":[]}}}`).Error)
	require.Nil(t, handleJSON(t, h,
		`{"sender":"student1","execute":{"create_comment":{"mentor_id":"mentor1","rating":8,"comment":"solid"}}}`).Error)

	resp := handleJSON(t, h, `{"query":{"get_mentor":{"mentor_id":"mentor1"}}}`)
	require.Nil(t, resp.Error)

	var detail board.MentorDetail
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Equal(t, "Ivy", detail.Mentor.Name)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, uint8(8), detail.Comments[0].Rating)
}

func TestHandle_ListWithLimits(t *testing.T) {
	h := newTestHandler(t)

	for _, id := range []string{"m1", "m2", "m3"} {
		require.Nil(t, handle(t, h, handler.Request{
			Sender: id,
			Execute: &handler.ExecuteMsg{CreateMentor: &handler.CreateMentorMsg{
				Name: "Mentor " + id, Institution: "U", Department: "CS", Links: []string{},
			}},
		}).Error)
	}

	resp := handleJSON(t, h, `{"query":{"list_mentors":{"limit":2,"start_after":"m1"}}}`)
	require.Nil(t, resp.Error)

	var mentors handler.MentorsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &mentors))
	require.Len(t, mentors.Mentors, 2)
	assert.Equal(t, "Mentor m2", mentors.Mentors[0].Name)
	assert.Equal(t, "Mentor m3", mentors.Mentors[1].Name)

	resp = handleJSON(t, h, `{"query":{"list_comments":{"mentor_id":"m1"}}}`)
	require.Nil(t, resp.Error)

	var comments handler.CommentsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &comments))
	assert.Empty(t, comments.Comments)
}
