package players

import (
	"bufio"
	"errors"
	"io"

	"github.com/minaorangina/hangman/game"
)

var ErrNoInput = errors.New("no more input")

// Player is anyone who can take part in a round: one player holds the
// secret word and the other guesses it.
type Player interface {
	Name() string
	SecretWord() (string, error)
	Guess(state game.State) (string, error)
}

// RoundStarter is implemented by players that keep state across turns
type RoundStarter interface {
	StartRound()
}

// Conn is a player's connection to the terminal.
// The engine shares one Conn with the human player so that buffered
// input is never lost between the two.
type Conn struct {
	In  *bufio.Scanner
	Out io.Writer
}

func NewConn(in io.Reader, out io.Writer) *Conn {
	return &Conn{In: bufio.NewScanner(in), Out: out}
}

// Send writes formatted text to the player
func (c *Conn) Send(text string, a ...interface{}) {
	SendText(c.Out, text, a...)
}

// ReadLine reads the next line of input, without its line ending
func (c *Conn) ReadLine() (string, error) {
	if !c.In.Scan() {
		if err := c.In.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return c.In.Text(), nil
}
