package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode represents a selection from the main menu
type Mode int

const (
	Unknown Mode = iota
	GuessComputerWord
	ComputerGuessesWord
	LoadSave
	Quit
)

var modeNames = []string{
	"Unknown",
	"GuessComputerWord",
	"ComputerGuessesWord",
	"LoadSave",
	"Quit",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return modeNames[Unknown]
	}
	return modeNames[m]
}

// Playable reports whether the mode starts a round
func (m Mode) Playable() bool {
	return m == GuessComputerWord || m == ComputerGuessesWord
}

// ParseMode converts a menu choice ("1" to "4") to a Mode
func ParseMode(choice string) (Mode, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || n <= int(Unknown) || n > int(Quit) {
		return Unknown, false
	}
	return Mode(n), true
}

// ModeFromName is the inverse of String
func ModeFromName(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name && Mode(i) != Unknown {
			return Mode(i), true
		}
	}
	return Unknown, false
}

// MarshalYAML writes modes by name
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	mode, ok := ModeFromName(name)
	if !ok {
		return fmt.Errorf("unknown mode %q", name)
	}
	*m = mode
	return nil
}
