package store

import (
	"errors"
	"time"

	"github.com/minaorangina/hangman/game"
	"github.com/minaorangina/hangman/protocol"
	"github.com/minaorangina/hangman/words"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnplayableMode = errors.New("saved mode cannot be played")
	ErrBadSecretWord  = errors.New("saved secret word is not a valid word")
)

// Snapshot is everything needed to resume a round
type Snapshot struct {
	ID         string        `yaml:"id"`
	Mode       protocol.Mode `yaml:"mode"`
	SecretWord string        `yaml:"secret_word"`
	Guesser    string        `yaml:"guesser"`
	Holder     string        `yaml:"holder"`
	State      game.State    `yaml:"state"`
	SavedAt    time.Time     `yaml:"saved_at"`
}

// NewID constructs a snapshot ID
func NewID() string {
	return uuid.NewV4().String()
}

// Validate checks a snapshot describes a round that can be resumed
func (s Snapshot) Validate() error {
	if !s.Mode.Playable() {
		return ErrUnplayableMode
	}
	if !words.Usable(s.SecretWord) {
		return ErrBadSecretWord
	}
	return s.State.Validate(s.SecretWord)
}
