package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/fairness"
)

// Toss is the outcome of the guess-the-bit exchange deciding the first pick.
type Toss struct {
	Guess          int
	HouseBit       int
	CounterpartWon bool
	FirstPicker    Party
}

// Controller plays a full series.
type Controller struct {
	dice        []*dice.Die
	input       InputProvider
	rounds      int
	tiePolicy   TiePolicy
	firstPicker FirstPicker
	mode        RollMode
	source      FairSource
	strategy    Strategy
	observer    Observer
	recorder    Recorder
	logger      *slog.Logger
}

type controllerOption func(Controller) Controller

// WithRounds sets the number of scoring rounds.
func WithRounds(n int) controllerOption {
	return func(c Controller) Controller {
		c.rounds = n
		return c
	}
}

// WithTiePolicy sets who wins a series that ends level.
func WithTiePolicy(p TiePolicy) controllerOption {
	return func(c Controller) Controller {
		c.tiePolicy = p
		return c
	}
}

// WithFirstPicker sets which party picks a die first.
func WithFirstPicker(f FirstPicker) controllerOption {
	return func(c Controller) Controller {
		c.firstPicker = f
		return c
	}
}

// WithRollMode sets how faces are derived from exchanges.
func WithRollMode(m RollMode) controllerOption {
	return func(c Controller) Controller {
		c.mode = m
		return c
	}
}

// WithSource replaces the fair value source. The default strategy keeps
// using its own generator for non-protocol choices.
func WithSource(src FairSource) controllerOption {
	return func(c Controller) Controller {
		c.source = src
		return c
	}
}

// WithStrategy replaces the house die selection.
func WithStrategy(s Strategy) controllerOption {
	return func(c Controller) Controller {
		c.strategy = s
		return c
	}
}

// WithObserver receives every commitment, reveal and result.
func WithObserver(o Observer) controllerOption {
	return func(c Controller) Controller {
		c.observer = o
		return c
	}
}

// WithRecorder appends every exchange to a transcript.
func WithRecorder(r Recorder) controllerOption {
	return func(c Controller) Controller {
		c.recorder = r
		return c
	}
}

// WithLogger sets the logger, slog.Default() otherwise.
func WithLogger(l *slog.Logger) controllerOption {
	return func(c Controller) Controller {
		c.logger = l
		return c
	}
}

// NewController validates the configuration of a series. Dice, round count
// and policies are all checked here so that no round starts on a bad setup.
func NewController(set []*dice.Die, input InputProvider, opts ...controllerOption) (*Controller, error) {
	c := Controller{
		dice:        set,
		input:       input,
		rounds:      1,
		tiePolicy:   TieDraw,
		firstPicker: PickLoserFirst,
		mode:        RollShared,
		observer:    NopObserver{},
	}
	for _, opt := range opts {
		c = opt(c)
	}
	if len(c.dice) < dice.MinDice {
		return nil, fmt.Errorf("%w: at least %d dice are required, got %d", dice.ErrConfiguration, dice.MinDice, len(c.dice))
	}
	seen := make(map[*dice.Die]int, len(c.dice))
	for i, d := range c.dice {
		if d == nil {
			return nil, fmt.Errorf("%w: die %d is missing", dice.ErrConfiguration, i)
		}
		if j, ok := seen[d]; ok {
			return nil, fmt.Errorf("%w: dice %d and %d are the same die", dice.ErrConfiguration, j, i)
		}
		seen[d] = i
	}
	if c.rounds < 1 {
		return nil, fmt.Errorf("%w: round count must be positive, got %d", dice.ErrConfiguration, c.rounds)
	}
	if err := errors.Join(c.tiePolicy.Validate(), c.firstPicker.Validate(), c.mode.Validate()); err != nil {
		return nil, err
	}
	if c.input == nil {
		return nil, errors.New("an input provider is required")
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.source == nil || c.strategy == nil {
		gen := fairness.NewGenerator(nil)
		if c.source == nil {
			c.source = gen
		}
		if c.strategy == nil {
			c.strategy = BestResponse{Rand: gen, Mode: c.mode}
		}
	}
	return &c, nil
}

// Play runs the toss, the die selection and every scoring round.
// It stops at the first error; ErrQuit and ErrFairnessViolation are
// returned wrapped and can be checked with errors.Is.
func (c *Controller) Play() (SeriesResult, error) {
	res := &Resolver{
		source:   c.source,
		input:    c.input,
		observer: c.observer,
		recorder: c.recorder,
		mode:     c.mode,
		log:      c.logger,
	}

	toss, err := c.toss(res)
	if err != nil {
		return SeriesResult{}, err
	}
	houseDie, counterpartDie, err := c.pickDice(toss.FirstPicker)
	if err != nil {
		return SeriesResult{}, err
	}

	var series Series
	for i := 1; i <= c.rounds; i++ {
		rr, err := res.PlayRound(i, houseDie, counterpartDie)
		if err != nil {
			return SeriesResult{}, fmt.Errorf("round %d: %w", i, err)
		}
		series.Record(rr.Winner)
		c.observer.RoundPlayed(rr)
	}

	result := series.Conclude(c.tiePolicy)
	c.logger.Info("series concluded", "house", series.House, "counterpart", series.Counterpart, "ties", series.Ties, "winner", result.Winner.String())
	c.observer.SeriesConcluded(result)
	return result, nil
}

func (c *Controller) toss(res *Resolver) (Toss, error) {
	rev, err := res.Exchange("first move", 2, PromptGuess)
	if err != nil {
		return Toss{}, fmt.Errorf("first move: %w", err)
	}
	t := Toss{
		Guess:          rev.Contribution,
		HouseBit:       rev.Value,
		CounterpartWon: rev.Index == 0,
	}
	switch c.firstPicker {
	case PickHouseFirst:
		t.FirstPicker = PartyHouse
	case PickCounterpartFirst:
		t.FirstPicker = PartyCounterpart
	default:
		if t.CounterpartWon {
			t.FirstPicker = PartyHouse
		} else {
			t.FirstPicker = PartyCounterpart
		}
	}
	c.observer.TossDecided(t)
	return t, nil
}

func (c *Controller) pickDice(first Party) (house, counterpart *dice.Die, err error) {
	if first == PartyHouse {
		i := c.strategy.PickFirst(c.dice)
		if i < 0 || i >= len(c.dice) {
			return nil, nil, fmt.Errorf("house opened with die %d of %d: %w", i, len(c.dice), ErrInvalidChoice)
		}
		house = c.dice[i]
		c.observer.DiePicked(PartyHouse, house)
		counterpart, err = c.askDie(without(c.dice, house))
		if err != nil {
			return nil, nil, err
		}
		c.observer.DiePicked(PartyCounterpart, counterpart)
		return house, counterpart, nil
	}

	counterpart, err = c.askDie(c.dice)
	if err != nil {
		return nil, nil, err
	}
	c.observer.DiePicked(PartyCounterpart, counterpart)
	options := without(c.dice, counterpart)
	i := c.strategy.PickResponse(options, counterpart)
	if i < 0 || i >= len(options) {
		return nil, nil, fmt.Errorf("house answered with die %d of %d: %w", i, len(options), ErrInvalidChoice)
	}
	house = options[i]
	c.observer.DiePicked(PartyHouse, house)
	return house, counterpart, nil
}

func (c *Controller) askDie(options []*dice.Die) (*dice.Die, error) {
	labels := make([]string, len(options))
	for i, d := range options {
		labels[i] = d.String()
	}
	prompt := Prompt{Kind: PromptDie, Stage: "die selection", Options: labels}
	for {
		i, err := c.input.RequestInteger(prompt, len(options))
		if err != nil {
			return nil, fmt.Errorf("die selection: %w", err)
		}
		if i >= 0 && i < len(options) {
			return options[i], nil
		}
		c.logger.Warn("die selection rejected", "index", i, "options", len(options))
	}
}
