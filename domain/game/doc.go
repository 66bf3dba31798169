// Package game drives a provably fair non-transitive dice series between the
// house and a counterpart.
//
// # Core Types
//
// Round: A single commit-reveal exchange. It moves through three phases,
// PhaseAwaitCommitment → PhaseAwaitContribution → PhaseResolved, and only
// discloses the house value and key once the counterpart has contributed.
//
// Resolver: Runs exchanges against an InputProvider and resolves dice rounds
// from the combined index (c + v) mod n.
//
// Controller: Decides the first picker with a guess-the-bit exchange, lets
// both parties pick distinct dice and plays the configured number of rounds.
//
// Series: The accumulated score, concluded under an explicit TiePolicy.
//
// # Collaborators
//
// InputProvider collects validated integers from the counterpart and
// Observer receives commitments, reveals and results for display. Both are
// blocking, single-threaded calls; nothing in this package runs concurrently.
package game
