package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/fair-dice/config"
	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/game"
	"github.com/luca-patrignani/fair-dice/ledger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("fair-dice", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] <die> <die> <die> [<die>...]\n", fs.Name())
		fmt.Fprintf(fs.Output(), "       %s -verify <transcript>\n", fs.Name())
		fs.PrintDefaults()
	}
	cfg, err := config.Load(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	if cfg.Verify != "" {
		n, err := verifyTranscript(cfg.Verify)
		if err != nil {
			pterm.Error.Printfln("transcript %s rejected: %v", cfg.Verify, err)
			return 1
		}
		pterm.Success.Printfln("transcript %s verified: %d exchanges", cfg.Verify, n)
		return 0
	}

	set, err := dice.ParseSet(cfg.Dice)
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("F", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("air ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ice", pterm.FgDarkGray.ToStyle()),
	).Render()
	printRules(cfg)

	transcript := ledger.NewTranscript()
	controller, err := game.NewController(set, newConsoleInput(set, cfg.RollMode),
		game.WithRounds(cfg.Rounds),
		game.WithTiePolicy(cfg.TiePolicy),
		game.WithFirstPicker(cfg.FirstPicker),
		game.WithRollMode(cfg.RollMode),
		game.WithObserver(consoleObserver{}),
		game.WithRecorder(transcript),
		game.WithLogger(logger),
	)
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}

	if _, err := controller.Play(); err != nil {
		switch {
		case errors.Is(err, game.ErrQuit):
			pterm.Info.Println("Series abandoned, see you next time")
			return 0
		case errors.Is(err, game.ErrFairnessViolation):
			pterm.Error.Println(err)
			logger.Error("series aborted", "error", err.Error())
			return 1
		default:
			logger.Error("series failed", "error", err.Error())
			return 1
		}
	}

	if cfg.Transcript != "" {
		if err := writeTranscript(cfg.Transcript, transcript); err != nil {
			logger.Error("could not save transcript", "path", cfg.Transcript, "error", err.Error())
			return 1
		}
		pterm.Info.Printfln("Transcript saved to %s, check it with -verify %s", cfg.Transcript, cfg.Transcript)
	}
	return 0
}

func verifyTranscript(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	t, err := ledger.ReadTranscript(f)
	if err != nil {
		return 0, err
	}
	if err := t.Verify(); err != nil {
		return 0, err
	}
	return t.Len(), nil
}

func writeTranscript(path string, t *ledger.Transcript) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
