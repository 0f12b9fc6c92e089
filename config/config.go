package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidMaxGuesses = errors.New("max guesses must be at least 1")
	ErrInvalidPace       = errors.New("computer pace cannot be negative")
)

// Config is read from the environment, optionally via a .env file
type Config struct {
	DictionaryPath string        `env:"HANGMAN_DICTIONARY,default=dictionary.txt"`
	SavePath       string        `env:"HANGMAN_SAVE_FILE,default=save_data.yml"`
	MaxGuesses     int           `env:"HANGMAN_MAX_GUESSES,default=10"`
	ComputerPace   time.Duration `env:"HANGMAN_COMPUTER_PACE,default=1s"`
	LogLevel       string        `env:"HANGMAN_LOG_LEVEL,default=warn"`
	NoColor        bool          `env:"HANGMAN_NO_COLOR,default=false"`
}

// Load reads the given .env files (missing files are skipped) and
// then decodes the environment. The result is not validated, so that
// flags can still override it.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the final configuration
func (c *Config) Validate() error {
	if c.MaxGuesses < 1 {
		return ErrInvalidMaxGuesses
	}
	if c.ComputerPace < 0 {
		return ErrInvalidPace
	}
	return nil
}
