package ledger

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/zeebo/blake3"

	"github.com/luca-patrignani/fair-dice/fairness"
)

var (
	// ErrBrokenChain reports a block that does not link to its predecessor.
	ErrBrokenChain = errors.New("broken chain")
	// ErrCommitmentMismatch reports an exchange whose reveal does not open
	// its commitment, or whose combined index is wrong.
	ErrCommitmentMismatch = errors.New("commitment mismatch")
)

// Transcript is a hash-chained log of exchanges starting at a genesis block.
type Transcript struct {
	blocks []Block
}

// NewTranscript creates a transcript holding only the genesis block.
// The genesis block has index 0 and previous hash "0".
func NewTranscript() *Transcript {
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Exchange:  Exchange{Stage: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	return &Transcript{blocks: []Block{genesis}}
}

// Append links a new block for ex to the chain.
func (t *Transcript) Append(ex Exchange) error {
	latest := t.blocks[len(t.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Exchange:  ex,
	}
	b.Hash = calculateHash(b)
	if err := validateLink(b, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	t.blocks = append(t.blocks, b)
	return nil
}

// Latest returns the most recent block.
func (t *Transcript) Latest() Block {
	return t.blocks[len(t.blocks)-1]
}

// ByIndex returns the block at index.
func (t *Transcript) ByIndex(index int) (Block, error) {
	if index < 0 || index >= len(t.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return t.blocks[index], nil
}

// Blocks returns a copy of every block, genesis included.
func (t *Transcript) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// Len is the number of recorded exchanges, genesis excluded.
func (t *Transcript) Len() int {
	return len(t.blocks) - 1
}

// Verify checks the whole chain and re-opens every commitment.
func (t *Transcript) Verify() error {
	if len(t.blocks) == 0 {
		return fmt.Errorf("%w: empty transcript", ErrBrokenChain)
	}
	genesis := t.blocks[0]
	if genesis.PrevHash != "0" || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("%w: invalid genesis block", ErrBrokenChain)
	}
	for i := 1; i < len(t.blocks); i++ {
		if err := validateLink(t.blocks[i], t.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if err := verifyExchange(t.blocks[i].Exchange); err != nil {
			return fmt.Errorf("block %d (%s): %w", i, t.blocks[i].Exchange.Stage, err)
		}
	}
	return nil
}

// WriteJSON encodes the transcript to w.
func (t *Transcript) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.blocks); err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	return nil
}

// ReadTranscript decodes a transcript written by WriteJSON. The result is
// not verified; call Verify.
func ReadTranscript(r io.Reader) (*Transcript, error) {
	var blocks []Block
	if err := json.NewDecoder(r).Decode(&blocks); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("decode transcript: %w: no genesis block", ErrBrokenChain)
	}
	return &Transcript{blocks: blocks}, nil
}

func validateLink(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrBrokenChain, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: expected prev hash %s, got %s", ErrBrokenChain, previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrBrokenChain, expected, current.Hash)
	}
	return nil
}

func verifyExchange(ex Exchange) error {
	if ex.Range < 1 {
		return fmt.Errorf("%w: range %d", ErrCommitmentMismatch, ex.Range)
	}
	key, err := fairness.ParseKey(ex.Key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommitmentMismatch, err)
	}
	if !fairness.Verify(key, ex.Value, fairness.Commitment(ex.Commitment)) {
		return fmt.Errorf("%w: value %d does not open %s", ErrCommitmentMismatch, ex.Value, ex.Commitment)
	}
	if ex.Value < 0 || ex.Value >= ex.Range || ex.Contribution < 0 || ex.Contribution >= ex.Range {
		return fmt.Errorf("%w: value or contribution outside [0, %d)", ErrCommitmentMismatch, ex.Range)
	}
	if want := (ex.Contribution + ex.Value) % ex.Range; ex.Index != want {
		return fmt.Errorf("%w: index %d, expected %d", ErrCommitmentMismatch, ex.Index, want)
	}
	return nil
}

// calculateHash is BLAKE3-256 over index, timestamp, previous hash and the
// JSON encoded exchange.
func calculateHash(b Block) string {
	exchangeBytes, _ := json.Marshal(b.Exchange)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, exchangeBytes)
	sum := blake3.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
