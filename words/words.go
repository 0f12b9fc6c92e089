package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

const (
	MinLength = 5
	MaxLength = 12
)

var (
	ErrEmptyDictionary = errors.New("dictionary has no usable words")
	ErrFnUnreadable    = func(path string, err error) error {
		return fmt.Errorf("could not read dictionary \"%s\": %w", path, err)
	}
)

// Dictionary is the static list of words secret words are drawn from.
// It is read-only once loaded.
type Dictionary struct {
	words []string
	index map[string]struct{}
}

// New builds a Dictionary, keeping only words of 5 to 12 letters A-Z.
// Words are upper-cased and duplicates dropped; order is preserved.
func New(ws ...string) *Dictionary {
	d := &Dictionary{
		words: []string{},
		index: map[string]struct{}{},
	}
	for _, w := range ws {
		word := Normalise(w)
		if !Usable(word) {
			continue
		}
		if _, ok := d.index[word]; ok {
			continue
		}
		d.index[word] = struct{}{}
		d.words = append(d.words, word)
	}
	return d
}

// Read builds a Dictionary from one word per line.
func Read(r io.Reader) (*Dictionary, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	d := New(lines...)
	if d.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// Load reads the dictionary file at path
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrFnUnreadable(path, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, ErrFnUnreadable(path, err)
	}
	return d, nil
}

// Len returns the number of words
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the words, in file order
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Contains reports whether word is in the dictionary.
// The lookup is case-insensitive.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[Normalise(word)]
	return ok
}

// Sample returns a uniformly random word
func (d *Dictionary) Sample() (string, error) {
	if len(d.words) == 0 {
		return "", ErrEmptyDictionary
	}
	return d.words[rand.Intn(len(d.words))], nil
}

// Normalise trims and upper-cases a word
func Normalise(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// ValidLength reports whether word has an allowed number of letters
func ValidLength(word string) bool {
	return len(word) >= MinLength && len(word) <= MaxLength
}

// Usable reports whether an already normalised word may be a secret word
func Usable(word string) bool {
	return ValidLength(word) && IsUpperAlpha(word)
}

// IsUpperAlpha reports whether s is non-empty and only contains A-Z
func IsUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, char := range s {
		if char < 'A' || char > 'Z' {
			return false
		}
	}
	return true
}
