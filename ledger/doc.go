// Package ledger implements an append-only transcript of the commit-reveal
// exchanges played in a dice series.
//
// # Core Components
//
// Transcript: An append-only log of exchanges with BLAKE3 hash chaining for
// tamper detection.
//
// Block: A single revealed exchange together with its link to the previous
// block.
//
// # Security Properties
//
// The transcript provides:
//   - Verifiability: every block carries the revealed key and value, so each
//     commitment can be recomputed by the counterpart
//   - Tamper detection: any modification breaks the hash chain
//   - Auditability: the complete history of a series, exportable as JSON
//
// # Usage
//
// Create a transcript, append exchanges as they are revealed, and call
// Verify at any time. WriteJSON and ReadTranscript move a completed
// transcript to and from a file so it can be re-verified after the game.
package ledger
