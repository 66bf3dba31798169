package game

import "github.com/luca-patrignani/fair-dice/domain/dice"

// Strategy chooses the house die.
type Strategy interface {
	// PickFirst returns the index of the house die when the house opens.
	PickFirst(options []*dice.Die) int
	// PickResponse returns the index of the house die among options once
	// the counterpart has chosen against.
	PickResponse(options []*dice.Die, against *dice.Die) int
}

// BestResponse opens with a random die and otherwise answers with the die
// that beats the counterpart's most often.
type BestResponse struct {
	Rand Intner
	Mode RollMode
}

// PickFirst draws one of options uniformly.
func (b BestResponse) PickFirst(options []*dice.Die) int {
	return b.Rand.Intn(len(options))
}

// PickResponse returns the option with the highest win rate against the
// counterpart die, the lowest index on equal rates.
func (b BestResponse) PickResponse(options []*dice.Die, against *dice.Die) int {
	best, bestRate := 0, -1.0
	for i, d := range options {
		if rate := b.Mode.WinRate(d, against); rate > bestRate {
			best, bestRate = i, rate
		}
	}
	return best
}

// without returns set minus the die chosen, compared by identity.
func without(set []*dice.Die, chosen *dice.Die) []*dice.Die {
	out := make([]*dice.Die, 0, len(set))
	for _, d := range set {
		if d != chosen {
			out = append(out, d)
		}
	}
	return out
}
