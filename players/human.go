package players

import (
	"strings"

	"github.com/minaorangina/hangman/game"
	"github.com/minaorangina/hangman/protocol"
	"github.com/minaorangina/hangman/words"
)

// HumanPlayer plays from the terminal
type HumanPlayer struct {
	name string
	dict *words.Dictionary
	conn *Conn
}

func NewHumanPlayer(name string, dict *words.Dictionary, conn *Conn) *HumanPlayer {
	return &HumanPlayer{name: name, dict: dict, conn: conn}
}

func (p *HumanPlayer) Name() string {
	return p.name
}

// SecretWord asks until the player types a dictionary word
func (p *HumanPlayer) SecretWord() (string, error) {
	for {
		p.conn.Send(secretWordPromptText, p.name)
		line, err := p.conn.ReadLine()
		if err != nil {
			return "", err
		}
		p.conn.Send("\n")

		word := words.Normalise(line)
		if p.dict.Contains(word) {
			return word, nil
		}

		if words.ValidLength(word) {
			p.conn.Send(notAWordText)
		} else {
			p.conn.Send(wordLengthText, words.MinLength, words.MaxLength)
		}
	}
}

// Guess asks until the player types an unused letter, a word, or a
// save token. Save tokens are returned as typed, upper-cased.
func (p *HumanPlayer) Guess(state game.State) (string, error) {
	for {
		p.conn.Send(guessPromptText, p.name)
		line, err := p.conn.ReadLine()
		if err != nil {
			return "", err
		}

		guess := strings.ToUpper(strings.TrimSpace(line))
		if protocol.IsSaveToken(guess) {
			return guess, nil
		}

		validChars := charsInRange(guess, 'A', 'Z')
		used := state.Used(guess)
		if validChars && !used {
			return guess, nil
		}

		if used {
			p.conn.Send(letterUsedText)
		}
		if !validChars {
			p.conn.Send(notALetterText)
		}
	}
}

func charsInRange(chars string, lower, upper rune) bool {
	if chars == "" {
		return false
	}
	for _, char := range chars {
		if char < lower || char > upper {
			return false
		}
	}
	return true
}
