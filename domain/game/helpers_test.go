package game

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/fairness"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedSource commits honestly to a predetermined sequence of values.
type scriptedSource struct {
	values []int
	scheme *fairness.Scheme
}

func newScriptedSource(values ...int) *scriptedSource {
	return &scriptedSource{values: values, scheme: fairness.NewScheme(nil)}
}

func (s *scriptedSource) Generate(n int) (fairness.Draw, error) {
	if len(s.values) == 0 {
		return fairness.Draw{}, errScriptExhausted
	}
	v := s.values[0]
	s.values = s.values[1:]
	key := s.scheme.GenerateKey()
	return fairness.Draw{Value: v, Key: key, Commitment: fairness.Commit(key, v)}, nil
}

// cheatingSource publishes a commitment to one value and reveals another.
type cheatingSource struct {
	scheme *fairness.Scheme
}

func (s cheatingSource) Generate(n int) (fairness.Draw, error) {
	key := s.scheme.GenerateKey()
	return fairness.Draw{Value: 1 % n, Key: key, Commitment: fairness.Commit(key, 0)}, nil
}

// scriptedInput answers prompts from a queue.
type scriptedInput struct {
	answers   []int
	prompts   []Prompt
	err       error
	onRequest func(p Prompt)
}

func (s *scriptedInput) RequestInteger(p Prompt, validRange int) (int, error) {
	s.prompts = append(s.prompts, p)
	if s.onRequest != nil {
		s.onRequest(p)
	}
	if len(s.answers) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, errScriptExhausted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

// randomInput is an automated counterpart contributing uniform values.
type randomInput struct {
	rand Intner
}

func (r randomInput) RequestInteger(p Prompt, validRange int) (int, error) {
	return r.rand.Intn(validRange), nil
}

// fixedStrategy always picks the same option index.
type fixedStrategy struct {
	first, response int
}

func (f fixedStrategy) PickFirst([]*dice.Die) int {
	return f.first
}

func (f fixedStrategy) PickResponse([]*dice.Die, *dice.Die) int {
	return f.response
}

// recordingObserver keeps a log of notifications.
type recordingObserver struct {
	events  []string
	reveals []Reveal
	picks   map[Party]*dice.Die
	rounds  []RoundResult
	toss    *Toss
	result  *SeriesResult
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{picks: make(map[Party]*dice.Die)}
}

func (o *recordingObserver) Committed(stage string, n int, c fairness.Commitment) {
	o.events = append(o.events, "commit:"+stage)
}

func (o *recordingObserver) Revealed(r Reveal) {
	o.events = append(o.events, "reveal:"+r.Stage)
	o.reveals = append(o.reveals, r)
}

func (o *recordingObserver) TossDecided(t Toss) {
	o.events = append(o.events, "toss")
	o.toss = &t
}

func (o *recordingObserver) DiePicked(p Party, d *dice.Die) {
	o.events = append(o.events, fmt.Sprintf("pick:%s", p))
	o.picks[p] = d
}

func (o *recordingObserver) RoundPlayed(r RoundResult) {
	o.events = append(o.events, fmt.Sprintf("round:%d", r.Number))
	o.rounds = append(o.rounds, r)
}

func (o *recordingObserver) SeriesConcluded(r SeriesResult) {
	o.events = append(o.events, "series")
	o.result = &r
}

func newTestResolver(src FairSource, input InputProvider, obs Observer, rec Recorder, mode RollMode) *Resolver {
	return &Resolver{
		source:   src,
		input:    input,
		observer: obs,
		recorder: rec,
		mode:     mode,
		log:      slog.Default(),
	}
}

func mustDice(t *testing.T, configs ...string) []*dice.Die {
	t.Helper()
	set := make([]*dice.Die, 0, len(configs))
	for _, c := range configs {
		d, err := dice.Parse(c)
		if err != nil {
			t.Fatal(err)
		}
		set = append(set, d)
	}
	return set
}
