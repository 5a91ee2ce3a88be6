// Package board implements the mentorboard domain: mentor profiles,
// rated comments against them, and per-voter vote records reconciled
// into each comment's likes tally.
//
// All state lives in a [store.Store]. The [Engine] owns every write;
// each mutation reads the entities it needs, validates, and applies a
// single atomic batch. Queries are read-only.
//
// The host invoking the engine supplies the caller identity and the
// call timestamp, serializes mutation calls, and guarantees the batch
// applies all-or-nothing. The engine performs no locking and no
// compensating rollback of its own.
//
// # Entities
//
//   - [State] - singleton: instantiator identity plus the monotonic
//     comment counter that mints "cid<N>" identifiers.
//   - [Mentor] - keyed by the mentor's own identity, one profile per
//     identity, with an append-only list of its comment ids.
//   - [User] - keyed by identity, created lazily on first comment or
//     institution update, never deleted.
//   - [Comment] - keyed by its minted id; rating is immutable, likes
//     moves with votes and may go negative.
//   - [Vote] - keyed by (voter, comment); a zero vote is never stored,
//     it deletes the record.
package board
