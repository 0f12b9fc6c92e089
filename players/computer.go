package players

import (
	"errors"

	"github.com/minaorangina/hangman/game"
	"github.com/minaorangina/hangman/words"
)

// LettersByFrequency ranks letters by how often they appear in
// dictionary words (not running English text), most frequent first.
const LettersByFrequency = "ESIARNTOLCDUGPMKHBYFVWZXQJ"

// Above this many candidates the frequency table alone picks the letter
const candidateScanLimit = 100

var (
	ErrRoundNotStarted = errors.New("computer player has not started a round")
	ErrNoCandidates    = errors.New("no dictionary word matches the clue")
	ErrNoViableLetter  = errors.New("no viable candidate letter")
)

type strategyState int

const (
	uninitialised strategyState = iota
	narrowing
	exhausted
)

// ComputerPlayer picks secret words at random and guesses letters by
// narrowing down which dictionary words are still possible.
// It never guesses a whole word.
type ComputerPlayer struct {
	name       string
	dict       *words.Dictionary
	candidates []string
	state      strategyState
}

func NewComputerPlayer(name string, dict *words.Dictionary) *ComputerPlayer {
	return &ComputerPlayer{name: name, dict: dict}
}

func (c *ComputerPlayer) Name() string {
	return c.name
}

// SecretWord samples a word from the dictionary
func (c *ComputerPlayer) SecretWord() (string, error) {
	return c.dict.Sample()
}

// StartRound resets the candidates to the whole dictionary.
// It must be called before the first Guess of every round.
func (c *ComputerPlayer) StartRound() {
	c.candidates = c.dict.Words()
	c.state = narrowing
}

// Candidates returns a copy of the words still considered possible
func (c *ComputerPlayer) Candidates() []string {
	out := make([]string, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Guess narrows the candidates against the clue and picks a letter
func (c *ComputerPlayer) Guess(state game.State) (string, error) {
	if c.state == uninitialised {
		return "", ErrRoundNotStarted
	}

	c.candidates = FilterCandidates(c.candidates, state.ClueWord)
	if len(c.candidates) == 0 {
		c.state = exhausted
		return "", ErrNoCandidates
	}

	return PickLetter(c.candidates, state.LettersAvailable)
}

// FilterCandidates keeps the words that have the clue's length and
// agree with every revealed position of the clue.
// The result is always a subset of candidates, in the same order.
func FilterCandidates(candidates []string, clue string) []string {
	kept := []string{}
	for _, word := range candidates {
		if matchesClue(word, clue) {
			kept = append(kept, word)
		}
	}
	return kept
}

// PickLetter chooses the next letter to guess from the letters still available
func PickLetter(candidates []string, available []string) (string, error) {
	availableSet := map[rune]struct{}{}
	for _, l := range available {
		for _, char := range l {
			availableSet[char] = struct{}{}
		}
	}

	inCandidates := func(rune) bool { return true }
	if len(candidates) <= candidateScanLimit {
		present := map[rune]struct{}{}
		for _, word := range candidates {
			for _, char := range word {
				present[char] = struct{}{}
			}
		}
		inCandidates = func(char rune) bool {
			_, ok := present[char]
			return ok
		}
	}

	for _, char := range LettersByFrequency {
		if _, ok := availableSet[char]; ok && inCandidates(char) {
			return string(char), nil
		}
	}

	return "", ErrNoViableLetter
}

func matchesClue(word, clue string) bool {
	if len(word) != len(clue) {
		return false
	}
	for i := 0; i < len(clue); i++ {
		if clue[i] != game.Placeholder[0] && clue[i] != word[i] {
			return false
		}
	}
	return true
}
