// Package config reads the fair-dice command configuration from the
// environment and the command line. Flags override environment values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/game"
)

// Config holds the command configuration.
type Config struct {
	Rounds      int              `env:"FAIRDICE_ROUNDS"       envDefault:"1"`
	TiePolicy   game.TiePolicy   `env:"FAIRDICE_TIE_POLICY"   envDefault:"draw"`
	RollMode    game.RollMode    `env:"FAIRDICE_ROLL_MODE"    envDefault:"shared"`
	FirstPicker game.FirstPicker `env:"FAIRDICE_FIRST_PICKER" envDefault:"loser"`
	LogLevel    string           `env:"FAIRDICE_LOG_LEVEL"    envDefault:"info"`
	Transcript  string           `env:"FAIRDICE_TRANSCRIPT"`

	// Verify is a transcript to check instead of playing.
	Verify string
	// Dice are the die configurations given as positional arguments.
	Dice []string
}

// Load parses the environment, then args with fs. Playing needs at least
// dice.MinDice positional die configurations; verification needs none.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	tie := string(cfg.TiePolicy)
	mode := string(cfg.RollMode)
	first := string(cfg.FirstPicker)
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "number of scoring rounds")
	fs.StringVar(&tie, "tie", tie, "winner of an even series: draw, house or counterpart")
	fs.StringVar(&mode, "mode", mode, "roll mode: shared or separate")
	fs.StringVar(&first, "first", first, "first die picker: loser, house or counterpart")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.Transcript, "transcript", cfg.Transcript, "write the series transcript to this file")
	fs.StringVar(&cfg.Verify, "verify", "", "verify a saved transcript and exit")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.TiePolicy = game.TiePolicy(tie)
	cfg.RollMode = game.RollMode(mode)
	cfg.FirstPicker = game.FirstPicker(first)
	cfg.Dice = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting before any round starts.
func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Verify != "" {
		return nil
	}
	var errs []error
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("%w: round count must be positive, got %d", dice.ErrConfiguration, c.Rounds))
	}
	if len(c.Dice) < dice.MinDice {
		errs = append(errs, fmt.Errorf("%w: at least %d dice are required, got %d", dice.ErrConfiguration, dice.MinDice, len(c.Dice)))
	}
	errs = append(errs, c.TiePolicy.Validate(), c.RollMode.Validate(), c.FirstPicker.Validate())
	return errors.Join(errs...)
}

// ParseLogLevel maps a level name to the pterm logger level.
func ParseLogLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return pterm.LogLevelDisabled, fmt.Errorf("%w: unknown log level %q", dice.ErrConfiguration, s)
}
