package game

// Series is the running score of a game.
type Series struct {
	House       int
	Counterpart int
	Ties        int
}

// Record adds the outcome of one round.
func (s *Series) Record(winner Party) {
	switch winner {
	case PartyHouse:
		s.House++
	case PartyCounterpart:
		s.Counterpart++
	default:
		s.Ties++
	}
}

// Played is the number of recorded rounds.
func (s Series) Played() int {
	return s.House + s.Counterpart + s.Ties
}

// SeriesResult is the final standing of a series.
type SeriesResult struct {
	Score  Series
	Winner Party
	// TieBroken is set when equal scores were decided by the tie policy.
	TieBroken bool
}

// Conclude picks the winner: the strictly higher score, otherwise policy.
func (s Series) Conclude(policy TiePolicy) SeriesResult {
	res := SeriesResult{Score: s}
	switch {
	case s.House > s.Counterpart:
		res.Winner = PartyHouse
	case s.Counterpart > s.House:
		res.Winner = PartyCounterpart
	case policy == TieHouse:
		res.Winner, res.TieBroken = PartyHouse, true
	case policy == TieCounterpart:
		res.Winner, res.TieBroken = PartyCounterpart, true
	default:
		res.Winner = PartyNone
	}
	return res
}
