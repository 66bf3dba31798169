package game

import (
	"fmt"

	"github.com/luca-patrignani/fair-dice/fairness"
)

// Phase is the state of a Round.
type Phase int

const (
	PhaseAwaitCommitment Phase = iota
	PhaseAwaitContribution
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitCommitment:
		return "await-commitment"
	case PhaseAwaitContribution:
		return "await-contribution"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Reveal is everything the counterpart learns once a round is resolved.
type Reveal struct {
	Stage        string
	Range        int
	Commitment   fairness.Commitment
	Contribution int
	Value        int
	Key          fairness.SecretKey
	Index        int
	Verified     bool
}

// Round is a single commit-reveal exchange over [0, n).
type Round struct {
	stage        string
	n            int
	phase        Phase
	draw         fairness.Draw
	contribution int
	index        int
}

// NewRound returns a round over [0, n) waiting for the house commitment.
func NewRound(stage string, n int) *Round {
	return &Round{stage: stage, n: n, phase: PhaseAwaitCommitment}
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Commit draws the house value from src and returns the commitment to publish.
func (r *Round) Commit(src FairSource) (fairness.Commitment, error) {
	if r.phase != PhaseAwaitCommitment {
		return "", fmt.Errorf("commit in phase %s: %w", r.phase, ErrWrongPhase)
	}
	draw, err := src.Generate(r.n)
	if err != nil {
		return "", fmt.Errorf("%s: %w", r.stage, err)
	}
	r.draw = draw
	r.phase = PhaseAwaitContribution
	return draw.Commitment, nil
}

// Commitment returns the published commitment, empty before Commit.
func (r *Round) Commitment() fairness.Commitment {
	return r.draw.Commitment
}

// Contribute fixes the counterpart contribution c and combines it with the
// house value. An out of range c leaves the round untouched.
func (r *Round) Contribute(c int) error {
	if r.phase != PhaseAwaitContribution {
		return fmt.Errorf("contribute in phase %s: %w", r.phase, ErrWrongPhase)
	}
	if c < 0 || c >= r.n {
		return fmt.Errorf("%d not in [0, %d): %w", c, r.n, ErrInvalidContribution)
	}
	r.contribution = c
	r.index = Combine(c, r.draw.Value, r.n)
	r.phase = PhaseResolved
	return nil
}

// Reveal discloses the house value and key, and checks them against the
// published commitment.
func (r *Round) Reveal() (Reveal, error) {
	if r.phase != PhaseResolved {
		return Reveal{}, fmt.Errorf("%s: %w", r.stage, ErrNotResolved)
	}
	return Reveal{
		Stage:        r.stage,
		Range:        r.n,
		Commitment:   r.draw.Commitment,
		Contribution: r.contribution,
		Value:        r.draw.Value,
		Key:          r.draw.Key,
		Index:        r.index,
		Verified:     fairness.Verify(r.draw.Key, r.draw.Value, r.draw.Commitment),
	}, nil
}

// Combine returns (c + v) mod n, always in [0, n).
func Combine(c, v, n int) int {
	i := (c + v) % n
	if i < 0 {
		i += n
	}
	return i
}
