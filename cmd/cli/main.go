package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/minaorangina/hangman/config"
	"github.com/minaorangina/hangman/engine"
	"github.com/minaorangina/hangman/store"
	"github.com/minaorangina/hangman/words"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read configuration: %s\n", err)
		os.Exit(1)
	}

	if err := rootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hangman",
		Short:        "Play Hangman against the computer",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.DictionaryPath, "dictionary", cfg.DictionaryPath, "path to the word list")
	flags.StringVar(&cfg.SavePath, "save-file", cfg.SavePath, "where the saved game is kept")
	flags.IntVar(&cfg.MaxGuesses, "max-guesses", cfg.MaxGuesses, "wrong guesses allowed before the guesser loses")
	flags.DurationVar(&cfg.ComputerPace, "pace", cfg.ComputerPace, "pause after each of the computer's guesses")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable coloured output")

	return cmd
}

func run(cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	dict, err := words.Load(cfg.DictionaryPath)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.DictionaryPath).Msg("could not load dictionary")
		return err
	}
	logger.Info().Int("words", dict.Len()).Str("path", cfg.DictionaryPath).Msg("dictionary loaded")

	saves := store.NewFileStore(cfg.SavePath)
	logger.Debug().Str("path", saves.Path()).Msg("saving games to file")

	terminal := isatty.IsTerminal(os.Stdout.Fd())

	e, err := engine.New(engine.Opts{
		In:          os.Stdin,
		Out:         os.Stdout,
		Dictionary:  dict,
		Store:       saves,
		Logger:      &logger,
		MaxGuesses:  cfg.MaxGuesses,
		Pace:        cfg.ComputerPace,
		NoColor:     cfg.NoColor || !terminal,
		ClearScreen: terminal,
	})
	if err != nil {
		return err
	}

	return e.Run()
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("unknown log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
