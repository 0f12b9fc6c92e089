package engine

import (
	"fmt"
	"time"

	"github.com/minaorangina/hangman/game"
	"github.com/minaorangina/hangman/players"
	"github.com/minaorangina/hangman/protocol"
	"github.com/minaorangina/hangman/store"
)

// Round is one play-through, from choosing the secret word to a win or loss.
// Guesser tries to find the word Holder chose.
type Round struct {
	ID         string
	Mode       protocol.Mode
	Guesser    players.Player
	Holder     players.Player
	SecretWord string
	State      game.State
}

// NewRound sets up the players for mode and asks the holder for a secret word
func (e *Engine) NewRound(mode protocol.Mode) (*Round, error) {
	guesser, holder := e.playersFor(mode, defaultHumanName, defaultComputerName)

	secretWord, err := holder.SecretWord()
	if err != nil {
		return nil, err
	}

	round := &Round{
		ID:         store.NewID(),
		Mode:       mode,
		Guesser:    guesser,
		Holder:     holder,
		SecretWord: secretWord,
		State:      game.NewState(secretWord, e.maxGuesses),
	}
	e.log.Info().Str("round", round.ID).Str("mode", mode.String()).Msg("round started")
	return round, nil
}

// ResumeRound rebuilds a saved round
func (e *Engine) ResumeRound(snapshot store.Snapshot) *Round {
	human, computer := snapshot.Guesser, snapshot.Holder
	if snapshot.Mode == protocol.ComputerGuessesWord {
		human, computer = snapshot.Holder, snapshot.Guesser
	}
	guesser, holder := e.playersFor(snapshot.Mode, human, computer)

	return &Round{
		ID:         snapshot.ID,
		Mode:       snapshot.Mode,
		Guesser:    guesser,
		Holder:     holder,
		SecretWord: snapshot.SecretWord,
		State:      snapshot.State.Copy(),
	}
}

// playersFor returns the guesser and the holder of the secret word
func (e *Engine) playersFor(mode protocol.Mode, humanName, computerName string) (players.Player, players.Player) {
	human := players.NewHumanPlayer(humanName, e.dict, e.conn)
	computer := players.NewComputerPlayer(computerName, e.dict)
	if mode == protocol.ComputerGuessesWord {
		return computer, human
	}
	return human, computer
}

// Play takes guesses until the round is won or lost.
// Save tokens store the round and do not count as a turn.
func (e *Engine) Play(r *Round) (game.Result, error) {
	e.playState = InProgress
	defer func() { e.playState = Idle }()

	if starter, ok := r.Guesser.(players.RoundStarter); ok {
		starter.StartRound()
	}
	_, humanGuesser := r.Guesser.(*players.HumanPlayer)
	_, computerGuesser := r.Guesser.(*players.ComputerPlayer)

	tipShown := false
	for r.State.GuessesLeft > 0 {
		if humanGuesser && r.State.Turn == 0 && !tipShown {
			e.display.saveTip()
			tipShown = true
		}
		e.display.gameState(r.State, r.Guesser.Name(), e.maxGuesses)

		guess, err := r.Guesser.Guess(r.State)
		if err != nil {
			return game.InProgress, fmt.Errorf("%s could not guess: %w", r.Guesser.Name(), err)
		}

		if protocol.IsSaveToken(guess) {
			e.save(r)
			continue
		}

		r.State = game.ApplyGuess(r.State, guess, r.SecretWord)
		e.log.Debug().
			Str("round", r.ID).
			Int("turn", r.State.Turn).
			Str("guess", guess).
			Str("clue", r.State.ClueWord).
			Int("guesses_left", r.State.GuessesLeft).
			Msg("guess applied")

		if computerGuesser {
			e.pause()
		}

		if game.Outcome(r.State, guess, r.SecretWord) == game.Won {
			r.State = game.RevealAll(r.State, r.SecretWord)
			e.display.gameState(r.State, r.Guesser.Name(), e.maxGuesses)
			e.display.win(r.Guesser.Name(), r.SecretWord)
			e.log.Info().Str("round", r.ID).Str("result", game.Won.String()).Int("turns", r.State.Turn).Msg("round over")
			return game.Won, nil
		}
	}

	e.display.gameState(r.State, r.Guesser.Name(), e.maxGuesses)
	e.display.loss(r.Guesser.Name(), r.SecretWord)
	e.log.Info().Str("round", r.ID).Str("result", game.Lost.String()).Int("turns", r.State.Turn).Msg("round over")
	return game.Lost, nil
}

func (e *Engine) save(r *Round) {
	snapshot := store.Snapshot{
		ID:         r.ID,
		Mode:       r.Mode,
		SecretWord: r.SecretWord,
		Guesser:    r.Guesser.Name(),
		Holder:     r.Holder.Name(),
		State:      r.State.Copy(),
		SavedAt:    time.Now().UTC(),
	}

	if err := e.store.Save(snapshot); err != nil {
		e.log.Warn().Err(err).Str("round", r.ID).Msg("could not save game")
		e.display.saveFailed()
		return
	}

	e.log.Info().Str("round", r.ID).Int("turn", r.State.Turn).Msg("game saved")
	e.display.gameSaved()
}
