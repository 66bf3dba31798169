package fairness

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a draw is requested over an empty range.
var ErrInvalidRange = errors.New("range must be at least 1")

// Draw is a committed fair value. Value and Key stay with the committing
// party until the counterpart's contribution is fixed; Commitment is public.
type Draw struct {
	Value      int
	Key        SecretKey
	Commitment Commitment
}

// Generator draws uniform values and commits to them.
type Generator struct {
	scheme *Scheme
}

// NewGenerator returns a Generator reading from stream (nil selects the
// suite's crypto/rand backed stream).
func NewGenerator(stream cipher.Stream) *Generator {
	return &Generator{scheme: NewScheme(stream)}
}

// Generate draws a value uniformly from [0, n) and commits to it with a
// fresh key.
func (g *Generator) Generate(n int) (Draw, error) {
	if n < 1 {
		return Draw{}, fmt.Errorf("generate over %d: %w", n, ErrInvalidRange)
	}
	value := g.uniform(uint64(n))
	key := g.scheme.GenerateKey()
	return Draw{
		Value:      value,
		Key:        key,
		Commitment: Commit(key, value),
	}, nil
}

// Intn returns a uniform value in [0, n) without any commitment.
// It panics if n < 1.
func (g *Generator) Intn(n int) int {
	if n < 1 {
		panic("fairness: Intn called with n < 1")
	}
	return g.uniform(uint64(n))
}

// uniform reduces 64-bit words from the stream modulo n, rejecting the
// 2^64 mod n lowest words so that every residue is equally likely.
func (g *Generator) uniform(n uint64) int {
	threshold := -n % n
	var buf [8]byte
	for {
		clear(buf[:])
		g.scheme.stream.XORKeyStream(buf[:], buf[:])
		x := binary.BigEndian.Uint64(buf[:])
		if x >= threshold {
			return int(x % n)
		}
	}
}
