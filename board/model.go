package board

import "time"

// Collection names in the keyed store.
const (
	colState    = "state"
	colMentors  = "mentors"
	colUsers    = "users"
	colComments = "comments"
	colVotes    = "votes"
)

// stateKey is the fixed key of the State singleton.
const stateKey = "state"

// Rating bounds for comments, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

// State is the singleton instantiation record. CommentCounter only
// increases, by exactly one per comment created.
type State struct {
	Owner          string `msgpack:"owner" json:"owner"`
	CommentCounter uint64 `msgpack:"comment_counter" json:"comment_counter"`
}

// Mentor is a reviewable profile. It is keyed in the store by its
// owner's identity, which doubles as the primary key, so the struct
// carries no id field of its own.
//
// CommentIDs is append-only in creation order and holds every comment
// ever created against this mentor.
type Mentor struct {
	Name        string    `msgpack:"name" json:"name"`
	Institution string    `msgpack:"institution" json:"institution"`
	Department  string    `msgpack:"department" json:"department"`
	Avatar      *string   `msgpack:"avatar" json:"avatar"`
	CreatedAt   time.Time `msgpack:"created_at" json:"created_at"`
	CreatedBy   string    `msgpack:"created_by" json:"created_by"`
	Links       []string  `msgpack:"links" json:"links"`
	UpdatedAt   time.Time `msgpack:"updated_at" json:"updated_at"`
	UpdatedBy   string    `msgpack:"updated_by" json:"updated_by"`
	CommentIDs  []string  `msgpack:"comments" json:"comments"`
}

// User is a commenter record, keyed by identity. A user is not
// implicitly a mentor; Institution here is unrelated to any Mentor
// record.
type User struct {
	ID               string   `msgpack:"id" json:"id"`
	Institution      *string  `msgpack:"institution" json:"institution"`
	PostedCommentIDs []string `msgpack:"posted_comments" json:"posted_comments"`
}

// Comment is an immutable review record. Only Likes ever changes after
// creation; there is no edit operation.
type Comment struct {
	ID        string    `msgpack:"id" json:"id"`
	CreatedAt time.Time `msgpack:"created_at" json:"created_at"`
	CreatedBy string    `msgpack:"created_by" json:"created_by"`
	MentorID  string    `msgpack:"mentor_id" json:"mentor_id"`
	Rating    uint8     `msgpack:"rating" json:"rating"`
	Text      string    `msgpack:"comment" json:"comment"`
	Likes     int32     `msgpack:"likes" json:"likes"`
}

// Vote is a voter's signed preference on a comment. NoVote is never
// persisted; storing it deletes the record.
type Vote int8

const (
	Dislike Vote = -1
	NoVote  Vote = 0
	Like    Vote = 1
)

// Valid reports whether v is one of the three allowed values.
func (v Vote) Valid() bool {
	return v >= Dislike && v <= Like
}
