package engine

import (
	"errors"
	"testing"

	"github.com/minaorangina/hangman/game"
	utils "github.com/minaorangina/hangman/internal"
	"github.com/minaorangina/hangman/players"
	"github.com/minaorangina/hangman/protocol"
	"github.com/minaorangina/hangman/store"
	"github.com/minaorangina/hangman/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptedRound(secret string, maxGuesses int, guesses ...string) (*Round, *players.ScriptedPlayer) {
	guesser := players.NewScriptedPlayer("Guesser", "", guesses...)
	return &Round{
		ID:         "round-1",
		Mode:       protocol.GuessComputerWord,
		Guesser:    guesser,
		Holder:     players.NewScriptedPlayer("Holder", secret),
		SecretWord: secret,
		State:      game.NewState(secret, maxGuesses),
	}, guesser
}

func quietEngine(t *testing.T, s store.SaveStore) (*Engine, *utils.TestBuffer) {
	t.Helper()
	return engineWithInput(t, words.New("APPLE"), s, 10)
}

func TestPlay(t *testing.T) {
	t.Run("guesser wins", func(t *testing.T) {
		e, stdout := quietEngine(t, store.NewInMemoryStore())
		round, guesser := scriptedRound("APPLE", 10, "A", "P", "X", "L", "E")

		result, err := e.Play(round)
		require.NoError(t, err)

		utils.AssertEqual(t, result, game.Won)
		utils.AssertEqual(t, round.State.GuessesLeft, 9)
		utils.AssertEqual(t, round.State.Turn, 5)
		utils.AssertEqual(t, round.State.ClueWord, "APPLE")
		utils.AssertEqual(t, len(guesser.Seen), 5)
		utils.AssertEqual(t, guesser.Seen[3].ClueWord, "APP__")
		utils.AssertEqual(t, e.PlayState(), Idle)
		utils.AssertContains(t, stdout.String(), "Guesser wins! The secret word was APPLE!")
	})

	t.Run("guesser runs out of guesses", func(t *testing.T) {
		e, stdout := quietEngine(t, store.NewInMemoryStore())
		round, _ := scriptedRound("APPLE", 3, "A", "Q", "MANGO", "Z", "P")

		result, err := e.Play(round)
		require.NoError(t, err)

		utils.AssertEqual(t, result, game.Lost)
		utils.AssertEqual(t, round.State.GuessesLeft, 0)
		utils.AssertEqual(t, round.State.ClueWord, "A____")
		utils.AssertContains(t, stdout.String(), "Guesser loses! The secret word was APPLE!")
	})

	t.Run("a round saved with no guesses left is already lost", func(t *testing.T) {
		e, _ := quietEngine(t, store.NewInMemoryStore())
		round, guesser := scriptedRound("APPLE", 1, "E")
		round.State.GuessesLeft = 0

		result, err := e.Play(round)
		require.NoError(t, err)
		utils.AssertEqual(t, result, game.Lost)
		utils.AssertEqual(t, len(guesser.Seen), 0)
	})

	t.Run("saves without changing the state", func(t *testing.T) {
		s := store.NewInMemoryStore()
		e, _ := quietEngine(t, s)
		round, _ := scriptedRound("APPLE", 10, "P", "/SAVE", "/S", "APPLE")

		result, err := e.Play(round)
		require.NoError(t, err)
		utils.AssertEqual(t, result, game.Won)
		utils.AssertEqual(t, round.State.Turn, 2)

		snapshot, err := s.Load()
		require.NoError(t, err)
		utils.AssertEqual(t, snapshot.ID, "round-1")
		utils.AssertEqual(t, snapshot.State.Turn, 1)
		utils.AssertEqual(t, snapshot.State.ClueWord, "_PP__")
		utils.AssertEqual(t, s.Saves, 2)
	})

	t.Run("reports a failed save and carries on", func(t *testing.T) {
		e, stdout := quietEngine(t, failingStore{})
		round, _ := scriptedRound("APPLE", 10, "/S", "APPLE")

		result, err := e.Play(round)
		require.NoError(t, err)
		utils.AssertEqual(t, result, game.Won)
		utils.AssertContains(t, stdout.String(), saveFailedText)
	})

	t.Run("passes on guesser errors", func(t *testing.T) {
		e, _ := quietEngine(t, store.NewInMemoryStore())
		round, _ := scriptedRound("APPLE", 10, "A")

		_, err := e.Play(round)
		assert.True(t, errors.Is(err, players.ErrNoInput))
	})

	t.Run("computer with no candidates aborts the round", func(t *testing.T) {
		e, _ := quietEngine(t, store.NewInMemoryStore())
		dict := words.New("CRANE")
		round := &Round{
			ID:         "round-2",
			Mode:       protocol.ComputerGuessesWord,
			Guesser:    players.NewComputerPlayer("Computer", dict),
			Holder:     players.NewScriptedPlayer("Player", "PLUMBS"),
			SecretWord: "PLUMBS",
			State:      game.NewState("PLUMBS", 10),
		}

		result, err := e.Play(round)
		utils.AssertEqual(t, result, game.InProgress)
		assert.True(t, errors.Is(err, players.ErrNoCandidates))
	})
}

func TestRunComputerRecoversFromMisses(t *testing.T) {
	t.Log("Given a dictionary where the computer's first letters all miss")
	dict := words.New("CRANE", "PLUMB")
	e, stdout := engineWithInput(t, dict, store.NewInMemoryStore(), 10, "2", "plumb", "n")

	t.Log("When the computer plays")
	require.NoError(t, e.Run())

	t.Log("Then the computer still finds the word")
	utils.AssertContains(t, stdout.String(),
		"Letters used: E A R N",
		"Computer has 6 guesses remaining",
		"Computer wins! The secret word was PLUMB!",
	)
}

func TestResumeRound(t *testing.T) {
	e, _ := quietEngine(t, store.NewInMemoryStore())
	state := game.NewState("GRACE", 10)

	t.Run("player guessing", func(t *testing.T) {
		r := e.ResumeRound(store.Snapshot{ID: "a", Mode: protocol.GuessComputerWord, SecretWord: "GRACE", Guesser: "Ginny", Holder: "Computer", State: state})

		_, ok := r.Guesser.(*players.HumanPlayer)
		assert.True(t, ok)
		utils.AssertEqual(t, r.Guesser.Name(), "Ginny")
		utils.AssertEqual(t, r.Holder.Name(), "Computer")
	})

	t.Run("computer guessing", func(t *testing.T) {
		r := e.ResumeRound(store.Snapshot{ID: "b", Mode: protocol.ComputerGuessesWord, SecretWord: "GRACE", Guesser: "Computer", Holder: "Ginny", State: state})

		_, ok := r.Guesser.(*players.ComputerPlayer)
		assert.True(t, ok)
		utils.AssertEqual(t, r.Guesser.Name(), "Computer")
		utils.AssertEqual(t, r.Holder.Name(), "Ginny")
	})
}

type failingStore struct{}

func (failingStore) Save(store.Snapshot) error {
	return errors.New("disk full")
}

func (failingStore) Load() (store.Snapshot, error) {
	return store.Snapshot{}, store.ErrNoSave
}
