// Package fairness implements the commit-reveal primitives used to make every
// random outcome of a game verifiable by the counterpart.
//
// # Core Components
//
// Scheme: Generates fresh 256-bit secret keys from a kyber random stream.
//
// Commit / Verify: HMAC-SHA3-256 commitments over the decimal representation
// of the committed integer, rendered as upper-case hex.
//
// Generator: Draws a value uniformly from [0, n) and commits to it with a
// fresh key, so the commitment can be published before the counterpart moves.
//
// # Protocol
//
// The committing party publishes Draw.Commitment, waits for the counterpart's
// contribution, then discloses Draw.Value and Draw.Key. The counterpart calls
// Verify to confirm that the value was not substituted after the fact.
package fairness
