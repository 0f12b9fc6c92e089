package game

import "strings"

const (
	DefaultMaxGuesses = 10
	Placeholder       = "_"
)

// State is the public state of a single round.
// It is only ever advanced by ApplyGuess.
type State struct {
	GuessesLeft      int      `yaml:"guesses_left"`
	Turn             int      `yaml:"turn"`
	LettersAvailable []string `yaml:"letters_available"`
	LettersUsed      []string `yaml:"letters_used"`
	ClueWord         string   `yaml:"clue_word"`
}

// NewState constructs the state at the start of a round
func NewState(secretWord string, maxGuesses int) State {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}

	return State{
		GuessesLeft:      maxGuesses,
		Turn:             0,
		LettersAvailable: Alphabet(),
		LettersUsed:      []string{},
		ClueWord:         buildClue(secretWord, nil),
	}
}

// ApplyGuess returns the state after guess has been made against secretWord.
// Guesses must already be validated: upper case, and not a used letter.
func ApplyGuess(s State, guess, secretWord string) State {
	next := s.Copy()
	next.Turn++

	productive := false
	if len(guess) == 1 && !containsLetter(next.LettersUsed, guess) {
		next.LettersUsed = append(next.LettersUsed, guess)
		next.LettersAvailable = removeLetter(next.LettersAvailable, guess)

		clue := buildClue(secretWord, next.LettersUsed)
		productive = clue != next.ClueWord
		next.ClueWord = clue
	}

	// a wrong full-word guess costs a guess too
	if !productive && guess != secretWord {
		next.GuessesLeft--
	}

	return next
}

// Outcome reports whether the round is won, lost or still going
// once guess has been applied.
func Outcome(s State, guess, secretWord string) Result {
	if s.ClueWord == secretWord || guess == secretWord {
		return Won
	}
	if s.GuessesLeft <= 0 {
		return Lost
	}
	return InProgress
}

// RevealAll returns the state with the whole word shown
func RevealAll(s State, secretWord string) State {
	next := s.Copy()
	next.ClueWord = secretWord
	return next
}

// Copy returns a State that shares no memory with s
func (s State) Copy() State {
	next := s
	next.LettersAvailable = append([]string{}, s.LettersAvailable...)
	next.LettersUsed = append([]string{}, s.LettersUsed...)
	return next
}

// Available reports whether letter has not been guessed yet
func (s State) Available(letter string) bool {
	return containsLetter(s.LettersAvailable, letter)
}

// Used reports whether letter has been guessed already
func (s State) Used(letter string) bool {
	return containsLetter(s.LettersUsed, letter)
}

// Alphabet returns the letters A-Z in order
func Alphabet() []string {
	letters := make([]string, 0, 26)
	for c := 'A'; c <= 'Z'; c++ {
		letters = append(letters, string(c))
	}
	return letters
}

func buildClue(secretWord string, lettersUsed []string) string {
	used := letterSet(lettersUsed)

	var clue strings.Builder
	for _, char := range secretWord {
		if _, ok := used[string(char)]; ok {
			clue.WriteRune(char)
		} else {
			clue.WriteString(Placeholder)
		}
	}
	return clue.String()
}

func letterSet(letters []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, l := range letters {
		set[l] = struct{}{}
	}
	return set
}

func containsLetter(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}

func removeLetter(letters []string, letter string) []string {
	out := make([]string, 0, len(letters))
	for _, l := range letters {
		if l != letter {
			out = append(out, l)
		}
	}
	return out
}
