package engine

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/minaorangina/hangman/game"
	"github.com/minaorangina/hangman/players"
	"github.com/minaorangina/hangman/protocol"
	"github.com/minaorangina/hangman/store"
	"github.com/minaorangina/hangman/words"
	"github.com/rs/zerolog"
)

// PlayState represents the state of the engine
// Idle -> at the menu, between rounds
// InProgress -> a round is being played
type PlayState int

const (
	Idle PlayState = iota
	InProgress
)

func (ps PlayState) String() string {
	if ps == InProgress {
		return "inProgress"
	}
	return "idle"
}

const (
	defaultHumanName    = "Player"
	defaultComputerName = "Computer"
)

var (
	ErrNoDictionary = errors.New("engine requires a dictionary")
	ErrNoStore      = errors.New("engine requires a save store")
)

type Opts struct {
	In          io.Reader
	Out         io.Writer
	Dictionary  *words.Dictionary
	Store       store.SaveStore
	Logger      *zerolog.Logger
	MaxGuesses  int
	Pace        time.Duration
	NoColor     bool
	ClearScreen bool
}

// Engine runs the menu and plays rounds, one at a time
type Engine struct {
	conn       *players.Conn
	display    *display
	dict       *words.Dictionary
	store      store.SaveStore
	log        zerolog.Logger
	maxGuesses int
	pace       time.Duration
	playState  PlayState
}

func New(opts Opts) (*Engine, error) {
	if opts.Dictionary == nil || opts.Dictionary.Len() == 0 {
		return nil, ErrNoDictionary
	}
	if opts.Store == nil {
		return nil, ErrNoStore
	}
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = game.DefaultMaxGuesses
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Engine{
		conn:       players.NewConn(opts.In, opts.Out),
		display:    newDisplay(opts.Out, opts.NoColor, opts.ClearScreen),
		dict:       opts.Dictionary,
		store:      opts.Store,
		log:        logger,
		maxGuesses: opts.MaxGuesses,
		pace:       opts.Pace,
	}, nil
}

func (e *Engine) PlayState() PlayState {
	return e.playState
}

// Run shows the menu and plays rounds until the user quits or input ends
func (e *Engine) Run() error {
	for {
		e.display.intro(e.maxGuesses)

		mode, err := e.chooseMode()
		if errors.Is(err, players.ErrNoInput) {
			return nil
		}
		if err != nil {
			return err
		}

		var round *Round
		switch mode {
		case protocol.Quit:
			e.log.Info().Msg("quit from menu")
			return nil

		case protocol.LoadSave:
			snapshot, err := e.store.Load()
			if errors.Is(err, store.ErrNoSave) {
				e.display.fileNotFound()
				e.pause()
				continue
			}
			if err != nil {
				e.log.Warn().Err(err).Msg("could not load saved game")
				e.display.saveUnusable()
				e.pause()
				continue
			}
			e.log.Info().Str("round", snapshot.ID).Str("mode", snapshot.Mode.String()).Msg("loaded saved game")
			round = e.ResumeRound(snapshot)

		default:
			round, err = e.NewRound(mode)
			if errors.Is(err, players.ErrNoInput) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		_, err = e.Play(round)
		if errors.Is(err, players.ErrNoInput) {
			return nil
		}
		if err != nil {
			e.log.Error().Err(err).Str("round", round.ID).Msg("round aborted")
			e.display.noGuess(round.Guesser.Name(), err)
		}

		again, err := e.playAgain()
		if err != nil && !errors.Is(err, players.ErrNoInput) {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (e *Engine) chooseMode() (protocol.Mode, error) {
	for {
		line, err := e.conn.ReadLine()
		if err != nil {
			return protocol.Unknown, err
		}
		if mode, ok := protocol.ParseMode(line); ok {
			return mode, nil
		}
		e.display.tryAgain()
	}
}

func (e *Engine) playAgain() (bool, error) {
	e.display.playAgainPrompt()
	line, err := e.conn.ReadLine()
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}

func (e *Engine) pause() {
	if e.pace > 0 {
		time.Sleep(e.pace)
	}
}
