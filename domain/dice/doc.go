// Package dice models the six-sided dice of a non-transitive dice game.
//
// # Core Types
//
// Die: An immutable ordered set of six positive faces. Two dice are the same
// option only if they are the same *Die; identical faces do not merge choices.
//
// # Configuration
//
// Dice are supplied as strings of six comma-separated positive integers,
// e.g. "2,2,4,4,9,9". ParseSet requires at least three of them, otherwise
// picking a die would leave the second player no real choice.
//
// # Win Rates
//
// WinRate and SharedIndexWinRate give the exact probability that one die
// beats another, for independent throws and for a single shared face index.
package dice
