package game

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/fairness"
	"github.com/luca-patrignani/fair-dice/ledger"
)

var (
	// ErrInvalidContribution is an out of range contribution. The resolver
	// recovers from it by asking again.
	ErrInvalidContribution = errors.New("invalid contribution")
	// ErrNotResolved is returned when a reveal is requested before the
	// counterpart contributed.
	ErrNotResolved = errors.New("round not resolved")
	// ErrWrongPhase is returned when a round step is called out of order.
	ErrWrongPhase = errors.New("wrong round phase")
	// ErrFairnessViolation means a revealed value does not match its commitment.
	ErrFairnessViolation = errors.New("fairness violation: commitment does not match reveal")
	// ErrQuit is returned by an InputProvider when the counterpart leaves.
	ErrQuit = errors.New("counterpart quit")
	// ErrInvalidChoice is a Strategy index outside its options.
	ErrInvalidChoice = errors.New("invalid die choice")
)

// Party identifies a participant. PartyNone stands for "no winner".
type Party int

const (
	PartyNone Party = iota
	// PartyHouse commits to every random value.
	PartyHouse
	// PartyCounterpart contributes after each commitment.
	PartyCounterpart
)

func (p Party) String() string {
	switch p {
	case PartyHouse:
		return "house"
	case PartyCounterpart:
		return "counterpart"
	default:
		return "none"
	}
}

// TiePolicy decides the winner of a series that ends with equal scores.
type TiePolicy string

const (
	TieDraw        TiePolicy = "draw"
	TieHouse       TiePolicy = "house"
	TieCounterpart TiePolicy = "counterpart"
)

// Validate rejects unknown policies with dice.ErrConfiguration.
func (p TiePolicy) Validate() error {
	switch p {
	case TieDraw, TieHouse, TieCounterpart:
		return nil
	}
	return fmt.Errorf("%w: unknown tie policy %q", dice.ErrConfiguration, string(p))
}

// RollMode selects how dice faces are derived from exchanges.
type RollMode string

const (
	// RollShared resolves both dice at the index of one exchange.
	RollShared RollMode = "shared"
	// RollSeparate runs one exchange per throw.
	RollSeparate RollMode = "separate"
)

// Validate rejects unknown modes with dice.ErrConfiguration.
func (m RollMode) Validate() error {
	switch m {
	case RollShared, RollSeparate:
		return nil
	}
	return fmt.Errorf("%w: unknown roll mode %q", dice.ErrConfiguration, string(m))
}

// WinRate returns the exact probability that a beats b under this mode.
func (m RollMode) WinRate(a, b *dice.Die) float64 {
	if m == RollSeparate {
		return dice.WinRate(a, b)
	}
	return dice.SharedIndexWinRate(a, b)
}

// FirstPicker selects which party chooses a die first.
type FirstPicker string

const (
	// PickLoserFirst gives the first pick to the loser of the toss.
	PickLoserFirst       FirstPicker = "loser"
	PickHouseFirst       FirstPicker = "house"
	PickCounterpartFirst FirstPicker = "counterpart"
)

// Validate rejects unknown pickers with dice.ErrConfiguration.
func (f FirstPicker) Validate() error {
	switch f {
	case PickLoserFirst, PickHouseFirst, PickCounterpartFirst:
		return nil
	}
	return fmt.Errorf("%w: unknown first picker %q", dice.ErrConfiguration, string(f))
}

// PromptKind tells the InputProvider what is being asked.
type PromptKind int

const (
	// PromptGuess asks for a guess of the house bit, in [0, 2).
	PromptGuess PromptKind = iota
	// PromptDie asks for the index of a die among Prompt.Options.
	PromptDie
	// PromptThrow asks for a contribution to a throw, in [0, 6).
	PromptThrow
)

// Prompt describes a single request for an integer.
type Prompt struct {
	Kind       PromptKind
	Stage      string
	Commitment fairness.Commitment
	Options    []string
}

// InputProvider returns an integer in [0, validRange). It blocks until the
// counterpart answers and re-prompts on malformed input itself.
type InputProvider interface {
	RequestInteger(p Prompt, validRange int) (int, error)
}

// FairSource produces committed fair values.
type FairSource interface {
	Generate(n int) (fairness.Draw, error)
}

// Intner returns a uniform integer in [0, n).
type Intner interface {
	Intn(n int) int
}

// Recorder keeps the transcript of completed exchanges.
type Recorder interface {
	Append(ex ledger.Exchange) error
}

// Observer is notified of every public step of a series.
type Observer interface {
	Committed(stage string, n int, c fairness.Commitment)
	Revealed(r Reveal)
	TossDecided(t Toss)
	DiePicked(p Party, d *dice.Die)
	RoundPlayed(r RoundResult)
	SeriesConcluded(r SeriesResult)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) Committed(string, int, fairness.Commitment) {}

func (NopObserver) Revealed(Reveal) {}

func (NopObserver) TossDecided(Toss) {}

func (NopObserver) DiePicked(Party, *dice.Die) {}

func (NopObserver) RoundPlayed(RoundResult) {}

func (NopObserver) SeriesConcluded(SeriesResult) {}
