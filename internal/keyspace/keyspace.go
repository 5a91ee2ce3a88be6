// Package keyspace provides key composition for the mentorboard keyspace.
package keyspace

import (
	"fmt"
	"strconv"
)

// commentIDPrefix is the string form prefix of minted comment ids.
const commentIDPrefix = "cid"

// CommentID formats the nth minted comment identifier, e.g. CommentID(1)
// returns "cid1". The counter is monotonic and never reused, so ids are
// collision-free by construction.
func CommentID(n uint64) string {
	return commentIDPrefix + strconv.FormatUint(n, 10)
}

// VoteKey computes the composite key for a voter's vote on a comment.
// Voter identities are host-authenticated addresses and never contain "#".
func VoteKey(voter, commentID string) string {
	return fmt.Sprintf("%s#%s", voter, commentID)
}
