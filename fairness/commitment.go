package fairness

import (
	"crypto/cipher"
	"crypto/hmac"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"go.dedis.ch/kyber/v4/suites"
	"golang.org/x/crypto/sha3"
)

// KeySize is the length in bytes of a SecretKey (256 bits).
const KeySize = 32

// SecretKey is the HMAC key attesting to a single committed value.
// It must never be reused across exchanges.
type SecretKey []byte

// String returns the upper-case hex encoding of the key.
func (k SecretKey) String() string {
	return strings.ToUpper(hex.EncodeToString(k))
}

// ParseKey decodes a hex encoded SecretKey.
func ParseKey(s string) (SecretKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse key: %w", err)
	}
	if len(b) != KeySize {
		return nil, fmt.Errorf("parse key: incorrect length (got %d, expected %d)", len(b), KeySize)
	}
	return SecretKey(b), nil
}

// Commitment is the printable HMAC digest published before a reveal.
type Commitment string

var suite suites.Suite = suites.MustFind("Ed25519")

// Scheme produces secret keys. The zero value is not usable, use NewScheme.
type Scheme struct {
	stream cipher.Stream
}

// NewScheme returns a Scheme reading entropy from stream. A nil stream
// selects the Ed25519 suite's random stream, backed by crypto/rand.
func NewScheme(stream cipher.Stream) *Scheme {
	if stream == nil {
		stream = suite.RandomStream()
	}
	return &Scheme{stream: stream}
}

// GenerateKey returns a fresh KeySize bytes key.
// The underlying stream panics if the system entropy source fails.
func (s *Scheme) GenerateKey() SecretKey {
	key := make(SecretKey, KeySize)
	s.stream.XORKeyStream(key, key)
	return key
}

// Commit computes HMAC-SHA3-256(key, decimal(value)).
func Commit(key SecretKey, value int) Commitment {
	return Commitment(strings.ToUpper(hex.EncodeToString(mac(key, value))))
}

// Verify reports whether commitment was produced by Commit(key, value).
// Malformed commitments and keys that are not KeySize bytes long fail
// verification.
func Verify(key SecretKey, value int, commitment Commitment) bool {
	if len(key) != KeySize {
		return false
	}
	got, err := hex.DecodeString(string(commitment))
	if err != nil {
		return false
	}
	return hmac.Equal(got, mac(key, value))
}

func mac(key SecretKey, value int) []byte {
	h := hmac.New(sha3.New256, key)
	h.Write([]byte(strconv.Itoa(value)))
	return h.Sum(nil)
}
