package game

import (
	"errors"
	"slices"
	"testing"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/fairness"
	"github.com/luca-patrignani/fair-dice/ledger"
)

func TestPlay_ThreeRounds(t *testing.T) {
	set := mustDice(t, "1,1,1,1,1,1", "6,6,6,1,1,1", "2,2,2,2,2,2")
	obs := newRecordingObserver()
	tr := ledger.NewTranscript()
	input := &scriptedInput{answers: []int{1, 0, 0, 0, 0}}
	c, err := NewController(set, input,
		WithRounds(3),
		WithFirstPicker(PickCounterpartFirst),
		WithSource(newScriptedSource(0, 0, 1, 4)),
		WithStrategy(fixedStrategy{response: 0}),
		WithObserver(obs),
		WithRecorder(tr),
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := c.Play()
	if err != nil {
		t.Fatal(err)
	}
	if result.Score.House != 2 || result.Score.Counterpart != 0 || result.Score.Ties != 1 {
		t.Fatalf("unexpected score %+v", result.Score)
	}
	if result.Winner != PartyHouse {
		t.Fatalf("expected house to win, got %s", result.Winner)
	}
	if obs.toss == nil || obs.toss.CounterpartWon {
		t.Fatalf("guess 1 against bit 0 must lose the toss: %+v", obs.toss)
	}
	if obs.picks[PartyCounterpart] != set[0] || obs.picks[PartyHouse] != set[1] {
		t.Fatal("unexpected die selection")
	}

	want := []string{
		"commit:first move", "reveal:first move", "toss",
		"pick:counterpart", "pick:house",
		"commit:round 1", "reveal:round 1", "round:1",
		"commit:round 2", "reveal:round 2", "round:2",
		"commit:round 3", "reveal:round 3", "round:3",
		"series",
	}
	if !slices.Equal(obs.events, want) {
		t.Fatalf("unexpected events:\n got %v\nwant %v", obs.events, want)
	}

	if tr.Len() != 4 {
		t.Fatalf("expected 4 recorded exchanges, got %d", tr.Len())
	}
	if err := tr.Verify(); err != nil {
		t.Fatalf("transcript does not verify: %v", err)
	}
}

func TestPlay_LoserPicksFirst(t *testing.T) {
	set := mustDice(t, "1,2,3,4,5,6", "1,2,3,4,5,6", "1,2,3,4,5,6")
	obs := newRecordingObserver()
	input := &scriptedInput{answers: []int{1, 1, 0}}
	c, err := NewController(set, input,
		WithSource(newScriptedSource(1, 0)),
		WithStrategy(fixedStrategy{first: 1}),
		WithObserver(obs),
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := c.Play()
	if err != nil {
		t.Fatal(err)
	}
	if !obs.toss.CounterpartWon || obs.toss.FirstPicker != PartyHouse {
		t.Fatalf("counterpart won the toss, house must pick first: %+v", obs.toss)
	}
	diePrompt := input.prompts[1]
	if diePrompt.Kind != PromptDie || len(diePrompt.Options) != 2 {
		t.Fatalf("expected a die prompt with 2 options, got %+v", diePrompt)
	}
	if obs.picks[PartyHouse] != set[1] || obs.picks[PartyCounterpart] != set[2] {
		t.Fatal("identical dice must still be told apart by identity")
	}
	if result.Winner != PartyNone || result.Score.Ties != 1 {
		t.Fatalf("identical dice must tie, got %+v", result)
	}
}

func TestPlay_BestResponse(t *testing.T) {
	set := mustDice(t, "2,2,4,4,9,9", "1,1,1,4,4,4", "3,3,5,5,7,7")
	obs := newRecordingObserver()
	input := &scriptedInput{answers: []int{0, 1, 0}}
	c, err := NewController(set, input,
		WithFirstPicker(PickCounterpartFirst),
		WithSource(newScriptedSource(0, 0)),
		WithObserver(obs),
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := c.Play()
	if err != nil {
		t.Fatal(err)
	}
	if obs.picks[PartyHouse] != set[2] {
		t.Fatalf("expected the house to answer %s with %s, got %s", set[1], set[2], obs.picks[PartyHouse])
	}
	if result.Winner != PartyHouse {
		t.Fatalf("expected house to win, got %s", result.Winner)
	}
}

func TestPlay_RepromptsDieSelection(t *testing.T) {
	set := mustDice(t, "1,1,1,1,1,1", "2,2,2,2,2,2", "3,3,3,3,3,3")
	obs := newRecordingObserver()
	input := &scriptedInput{answers: []int{0, 5, -1, 3, 2, 0}}
	c, err := NewController(set, input,
		WithFirstPicker(PickCounterpartFirst),
		WithSource(newScriptedSource(1, 0)),
		WithStrategy(fixedStrategy{}),
		WithObserver(obs),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Play(); err != nil {
		t.Fatal(err)
	}
	if obs.picks[PartyCounterpart] != set[2] {
		t.Fatal("expected the counterpart to end up with the third die")
	}
	if len(input.prompts) != 6 {
		t.Fatalf("expected 6 prompts, got %d", len(input.prompts))
	}
}

func TestPlay_Quit(t *testing.T) {
	set := mustDice(t, "1,1,1,1,1,1", "2,2,2,2,2,2", "3,3,3,3,3,3")
	obs := newRecordingObserver()
	input := &scriptedInput{answers: []int{0}, err: ErrQuit}
	c, err := NewController(set, input,
		WithSource(newScriptedSource(0, 0)),
		WithStrategy(fixedStrategy{}),
		WithObserver(obs),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Play(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if obs.result != nil {
		t.Fatal("a quit series must not be concluded")
	}
}

func TestPlay_FairnessViolation(t *testing.T) {
	set := mustDice(t, "1,1,1,1,1,1", "2,2,2,2,2,2", "3,3,3,3,3,3")
	input := &scriptedInput{answers: []int{0}}
	c, err := NewController(set, input, WithSource(cheatingSource{scheme: fairness.NewScheme(nil)}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Play(); !errors.Is(err, ErrFairnessViolation) {
		t.Fatalf("expected ErrFairnessViolation, got %v", err)
	}
}

func TestPlay_RandomCounterpart(t *testing.T) {
	set := mustDice(t, "2,2,4,4,9,9", "6,8,1,1,8,6", "7,5,3,7,5,3")
	tr := ledger.NewTranscript()
	c, err := NewController(set, randomInput{rand: fairness.NewGenerator(nil)},
		WithRounds(10),
		WithRollMode(RollSeparate),
		WithRecorder(tr),
	)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Play()
	if err != nil {
		t.Fatal(err)
	}
	if result.Score.House+result.Score.Counterpart+result.Score.Ties != 10 {
		t.Fatalf("expected 10 rounds, got %+v", result.Score)
	}
	if tr.Len() != 21 {
		t.Fatalf("expected 21 exchanges, got %d", tr.Len())
	}
	if err := tr.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestPlay_StrategyOutOfRange(t *testing.T) {
	set := mustDice(t, "1,1,1,1,1,1", "2,2,2,2,2,2", "3,3,3,3,3,3")
	tests := []struct {
		name     string
		first    FirstPicker
		strategy fixedStrategy
		answers  []int
	}{
		{name: "house opens past the end", first: PickHouseFirst, strategy: fixedStrategy{first: 3}, answers: []int{0}},
		{name: "house answers past the end", first: PickCounterpartFirst, strategy: fixedStrategy{response: 2}, answers: []int{0, 0}},
		{name: "negative answer", first: PickCounterpartFirst, strategy: fixedStrategy{response: -1}, answers: []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewController(set, &scriptedInput{answers: tt.answers},
				WithFirstPicker(tt.first),
				WithSource(newScriptedSource(0)),
				WithStrategy(tt.strategy),
			)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := c.Play(); !errors.Is(err, ErrInvalidChoice) {
				t.Fatalf("expected ErrInvalidChoice, got %v", err)
			}
		})
	}
}

func TestNewController_Validation(t *testing.T) {
	three := mustDice(t, "1,2,3,4,5,6", "1,2,3,4,5,6", "1,2,3,4,5,6")
	input := &scriptedInput{}
	tests := []struct {
		name   string
		set    []*dice.Die
		input  InputProvider
		opts   []controllerOption
		config bool
	}{
		{name: "two dice", set: three[:2], input: input, config: true},
		{name: "nil die", set: []*dice.Die{three[0], nil, three[2]}, input: input, config: true},
		{name: "same die three times", set: []*dice.Die{three[0], three[0], three[0]}, input: input, config: true},
		{name: "same die twice among four", set: []*dice.Die{three[0], three[1], three[2], three[1]}, input: input, config: true},
		{name: "zero rounds", set: three, input: input, opts: []controllerOption{WithRounds(0)}, config: true},
		{name: "unknown tie policy", set: three, input: input, opts: []controllerOption{WithTiePolicy("coin")}, config: true},
		{name: "unknown roll mode", set: three, input: input, opts: []controllerOption{WithRollMode("loaded")}, config: true},
		{name: "unknown first picker", set: three, input: input, opts: []controllerOption{WithFirstPicker("nobody")}, config: true},
		{name: "no input", set: three, input: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewController(tt.set, tt.input, tt.opts...)
			if err == nil {
				t.Fatalf("expected an error, got controller %+v", c)
			}
			if errors.Is(err, dice.ErrConfiguration) != tt.config {
				t.Fatalf("unexpected error class: %v", err)
			}
		})
	}

	if _, err := NewController(three, input); err != nil {
		t.Fatalf("default configuration rejected: %v", err)
	}
}
