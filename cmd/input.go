package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/game"
)

const (
	helpOption = "Show win rates"
	quitOption = "Quit"
)

var errHelp = errors.New("help requested")

// consoleInput asks the counterpart for contributions on the terminal.
type consoleInput struct {
	set  []*dice.Die
	mode game.RollMode
	// ask and choose default to pterm interactive widgets.
	ask    func(text string) (string, error)
	choose func(text string, options []string) (string, error)
}

func newConsoleInput(set []*dice.Die, mode game.RollMode) *consoleInput {
	return &consoleInput{
		set:  set,
		mode: mode,
		ask: func(text string) (string, error) {
			return pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
		},
		choose: func(text string, options []string) (string, error) {
			return pterm.DefaultInteractiveSelect.WithDefaultText(text).WithOptions(options).WithMaxHeight(len(options)).Show()
		},
	}
}

func (ci *consoleInput) RequestInteger(p game.Prompt, validRange int) (int, error) {
	if p.Kind == game.PromptDie {
		return ci.selectDie(p)
	}
	text := fmt.Sprintf("%s: enter a number from 0 to %d (? for win rates, x to quit)", p.Stage, validRange-1)
	if p.Kind == game.PromptGuess {
		text = fmt.Sprintf("%s: guess the house bit, 0 or 1 (? for win rates, x to quit)", p.Stage)
	}
	for {
		answer, err := ci.ask(text)
		if err != nil {
			return 0, err
		}
		n, err := parseAnswer(answer, validRange)
		switch {
		case errors.Is(err, errHelp):
			printWinRates(ci.set, ci.mode)
		case errors.Is(err, game.ErrQuit):
			return 0, err
		case err != nil:
			pterm.Warning.Println(err)
		default:
			return n, nil
		}
	}
}

func (ci *consoleInput) selectDie(p game.Prompt) (int, error) {
	options := make([]string, 0, len(p.Options)+2)
	for i, o := range p.Options {
		options = append(options, fmt.Sprintf("%d) %s", i+1, o))
	}
	options = append(options, helpOption, quitOption)
	for {
		chosen, err := ci.choose("Pick your die", options)
		if err != nil {
			return 0, err
		}
		switch chosen {
		case helpOption:
			printWinRates(ci.set, ci.mode)
			continue
		case quitOption:
			return 0, game.ErrQuit
		}
		for i, o := range options[:len(p.Options)] {
			if o == chosen {
				return i, nil
			}
		}
		pterm.Warning.Printfln("unknown option %q", chosen)
	}
}

// parseAnswer reads a contribution in [0, validRange). "?" asks for help
// and "x" quits the series.
func parseAnswer(s string, validRange int) (int, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "?":
		return 0, errHelp
	case "x":
		return 0, game.ErrQuit
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 || n >= validRange {
		return 0, fmt.Errorf("%d is not between 0 and %d", n, validRange-1)
	}
	return n, nil
}
