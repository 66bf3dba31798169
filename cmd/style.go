package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/fair-dice/config"
	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/game"
	"github.com/luca-patrignani/fair-dice/fairness"
)

// consoleObserver renders the progress of a series with pterm.
type consoleObserver struct{}

func (consoleObserver) Committed(stage string, n int, c fairness.Commitment) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := fmt.Sprintf("The house picked a number from 0 to %d.\nCommitment: %s", n-1, pterm.LightCyan(string(c)))
	pbox.WithTitle(pterm.LightYellow("|" + stage + "|")).WithTitleTopCenter().Println(body)
}

func (consoleObserver) Revealed(r game.Reveal) {
	pterm.Println(revealText(r))
	if r.Verified {
		pterm.Success.Println("Commitment verified")
	} else {
		pterm.Error.Println("Commitment does NOT match the revealed value")
	}
}

func (consoleObserver) TossDecided(t game.Toss) {
	if t.CounterpartWon {
		pterm.Success.Printfln("You guessed %d, the house had %d: you won the toss", t.Guess, t.HouseBit)
	} else {
		pterm.Warning.Printfln("You guessed %d, the house had %d: you lost the toss", t.Guess, t.HouseBit)
	}
	pterm.Info.Printfln("The %s picks a die first", t.FirstPicker)
}

func (consoleObserver) DiePicked(p game.Party, d *dice.Die) {
	pterm.Info.Printfln("The %s picked %s", p, pterm.LightCyan(d.String()))
}

func (consoleObserver) RoundPlayed(r game.RoundResult) {
	data := pterm.TableData{
		{"", "Die", "Index", "Face"},
		{"House", r.HouseDie.String(), fmt.Sprint(r.House.Index), fmt.Sprint(r.House.Face)},
		{"You", r.CounterpartDie.String(), fmt.Sprint(r.Counterpart.Index), fmt.Sprint(r.Counterpart.Face)},
	}
	pterm.DefaultSection.Printfln("Round %d", r.Number)
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
	pterm.Println(roundOutcome(r.Winner))
}

func (consoleObserver) SeriesConcluded(r game.SeriesResult) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := fmt.Sprintf("House %d - You %d - Ties %d\n%s", r.Score.House, r.Score.Counterpart, r.Score.Ties, seriesOutcome(r))
	pbox.WithTitle(pterm.LightGreen("|RESULT|")).WithTitleTopCenter().Println(body)
}

func revealText(r game.Reveal) string {
	return fmt.Sprintf("%s: house value %d, your contribution %d, index (%d + %d) mod %d = %d\nKey: %s",
		r.Stage, r.Value, r.Contribution, r.Contribution, r.Value, r.Range, r.Index, r.Key)
}

func roundOutcome(w game.Party) string {
	switch w {
	case game.PartyHouse:
		return pterm.LightRed("The house wins the round")
	case game.PartyCounterpart:
		return pterm.LightGreen("You win the round")
	default:
		return pterm.LightYellow("Tie")
	}
}

func seriesOutcome(r game.SeriesResult) string {
	var s string
	switch r.Winner {
	case game.PartyHouse:
		s = "The house wins the series"
	case game.PartyCounterpart:
		s = "You win the series"
	default:
		return "The series is a draw"
	}
	if r.TieBroken {
		s += " on the tie policy"
	}
	return s
}

// winRateData lists how often each row die beats each column die.
func winRateData(set []*dice.Die, mode game.RollMode) pterm.TableData {
	header := []string{"beats"}
	for _, d := range set {
		header = append(header, d.String())
	}
	data := pterm.TableData{header}
	for _, a := range set {
		row := []string{a.String()}
		for _, b := range set {
			if a == b {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.0f%%", 100*mode.WinRate(a, b)))
		}
		data = append(data, row)
	}
	return data
}

func printWinRates(set []*dice.Die, mode game.RollMode) {
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(winRateData(set, mode)).Render()
}

func printRules(cfg config.Config) {
	pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: fmt.Sprintf("%d round(s), %s rolls", cfg.Rounds, cfg.RollMode)},
		{Level: 0, Text: "Every random value is committed before you answer and revealed after"},
		{Level: 0, Text: fmt.Sprintf("First pick: %s, even series: %s", cfg.FirstPicker, cfg.TiePolicy)},
	}).Render()
}
