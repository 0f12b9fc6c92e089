package players

import (
	"github.com/minaorangina/hangman/game"
)

// ScriptedPlayer plays a fixed list of guesses. Used in tests.
type ScriptedPlayer struct {
	name    string
	secret  string
	guesses []string
	Seen    []game.State
}

func NewScriptedPlayer(name, secret string, guesses ...string) *ScriptedPlayer {
	return &ScriptedPlayer{name: name, secret: secret, guesses: guesses}
}

func (sp *ScriptedPlayer) Name() string {
	return sp.name
}

func (sp *ScriptedPlayer) SecretWord() (string, error) {
	return sp.secret, nil
}

func (sp *ScriptedPlayer) Guess(state game.State) (string, error) {
	sp.Seen = append(sp.Seen, state)
	if len(sp.guesses) == 0 {
		return "", ErrNoInput
	}
	guess := sp.guesses[0]
	sp.guesses = sp.guesses[1:]
	return guess, nil
}
