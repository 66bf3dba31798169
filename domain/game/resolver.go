package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/ledger"
)

// Throw is a resolved face of a die.
type Throw struct {
	Index int
	Face  int
}

// RoundResult is the outcome of one scoring round.
type RoundResult struct {
	Number         int
	HouseDie       *dice.Die
	CounterpartDie *dice.Die
	House          Throw
	Counterpart    Throw
	Winner         Party
}

// Resolver runs commit-reveal exchanges and resolves dice rounds.
type Resolver struct {
	source   FairSource
	input    InputProvider
	observer Observer
	recorder Recorder
	mode     RollMode
	log      *slog.Logger
}

// Exchange runs one full cycle over [0, n): commit, publish, collect the
// counterpart contribution, reveal and verify. A reveal that does not match
// its commitment is returned together with ErrFairnessViolation.
func (r *Resolver) Exchange(stage string, n int, kind PromptKind) (Reveal, error) {
	round := NewRound(stage, n)
	commitment, err := round.Commit(r.source)
	if err != nil {
		return Reveal{}, err
	}
	r.observer.Committed(stage, n, commitment)
	r.log.Debug("commitment published", "stage", stage, "range", n, "commitment", string(commitment))

	prompt := Prompt{Kind: kind, Stage: stage, Commitment: commitment}
	for {
		c, err := r.input.RequestInteger(prompt, n)
		if err != nil {
			return Reveal{}, err
		}
		err = round.Contribute(c)
		if errors.Is(err, ErrInvalidContribution) {
			r.log.Warn("contribution rejected", "stage", stage, "error", err)
			continue
		}
		if err != nil {
			return Reveal{}, err
		}
		break
	}

	rev, err := round.Reveal()
	if err != nil {
		return Reveal{}, err
	}
	r.observer.Revealed(rev)
	if r.recorder != nil {
		if err := r.recorder.Append(exchangeOf(rev)); err != nil {
			return rev, fmt.Errorf("record %s: %w", stage, err)
		}
	}
	if !rev.Verified {
		r.log.Error("commitment mismatch", "stage", stage, "commitment", string(rev.Commitment))
		return rev, fmt.Errorf("%s: %w", stage, ErrFairnessViolation)
	}
	r.log.Debug("exchange resolved", "stage", stage, "value", rev.Value, "contribution", rev.Contribution, "index", rev.Index)
	return rev, nil
}

// PlayRound throws both dice and compares the faces.
func (r *Resolver) PlayRound(number int, houseDie, counterpartDie *dice.Die) (RoundResult, error) {
	res := RoundResult{Number: number, HouseDie: houseDie, CounterpartDie: counterpartDie}
	switch r.mode {
	case RollSeparate:
		h, err := r.Exchange(fmt.Sprintf("round %d: house throw", number), dice.Faces, PromptThrow)
		if err != nil {
			return res, err
		}
		c, err := r.Exchange(fmt.Sprintf("round %d: counterpart throw", number), dice.Faces, PromptThrow)
		if err != nil {
			return res, err
		}
		res.House = Throw{Index: h.Index, Face: houseDie.Resolve(h.Index)}
		res.Counterpart = Throw{Index: c.Index, Face: counterpartDie.Resolve(c.Index)}
	default:
		rev, err := r.Exchange(fmt.Sprintf("round %d", number), dice.Faces, PromptThrow)
		if err != nil {
			return res, err
		}
		res.House = Throw{Index: rev.Index, Face: houseDie.Resolve(rev.Index)}
		res.Counterpart = Throw{Index: rev.Index, Face: counterpartDie.Resolve(rev.Index)}
	}
	res.Winner = compareFaces(res.House.Face, res.Counterpart.Face)
	r.log.Debug("round resolved", "round", number, "house", res.House.Face, "counterpart", res.Counterpart.Face, "winner", res.Winner.String())
	return res, nil
}

func compareFaces(house, counterpart int) Party {
	switch {
	case house > counterpart:
		return PartyHouse
	case counterpart > house:
		return PartyCounterpart
	default:
		return PartyNone
	}
}

func exchangeOf(rev Reveal) ledger.Exchange {
	return ledger.Exchange{
		Stage:        rev.Stage,
		Range:        rev.Range,
		Commitment:   string(rev.Commitment),
		Contribution: rev.Contribution,
		Value:        rev.Value,
		Key:          rev.Key.String(),
		Index:        rev.Index,
		Verified:     rev.Verified,
	}
}
