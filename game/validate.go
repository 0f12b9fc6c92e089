package game

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeGuesses = errors.New("guesses left cannot be negative")
	ErrNegativeTurn    = errors.New("turn cannot be negative")
	ErrLettersOverlap  = errors.New("letter is both available and used")
	ErrLettersMissing  = errors.New("available and used letters do not cover the alphabet")
	ErrBadLetter       = errors.New("letters must be single characters A-Z")
	ErrClueLength      = errors.New("clue word length does not match the secret word")
	ErrFnClueMismatch  = func(pos int, got, want string) error {
		return fmt.Errorf("clue word position %d is %q, expected %q", pos, got, want)
	}
)

// Validate checks the state is one ApplyGuess could have produced
// for secretWord.
func (s State) Validate(secretWord string) error {
	if s.GuessesLeft < 0 {
		return ErrNegativeGuesses
	}
	if s.Turn < 0 {
		return ErrNegativeTurn
	}

	visited := map[string]struct{}{}
	for _, l := range s.LettersAvailable {
		if !isLetter(l) {
			return ErrBadLetter
		}
		if _, ok := visited[l]; ok {
			return ErrLettersOverlap
		}
		visited[l] = struct{}{}
	}
	for _, l := range s.LettersUsed {
		if !isLetter(l) {
			return ErrBadLetter
		}
		if _, ok := visited[l]; ok {
			return ErrLettersOverlap
		}
		visited[l] = struct{}{}
	}
	if len(visited) != 26 {
		return ErrLettersMissing
	}

	if len(s.ClueWord) != len(secretWord) {
		return ErrClueLength
	}
	want := buildClue(secretWord, s.LettersUsed)
	for i := range want {
		if s.ClueWord[i] != want[i] {
			return ErrFnClueMismatch(i, string(s.ClueWord[i]), string(want[i]))
		}
	}

	return nil
}

func isLetter(l string) bool {
	return len(l) == 1 && l[0] >= 'A' && l[0] <= 'Z'
}
