package main

import (
	"testing"
	"time"

	"github.com/minaorangina/hangman/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cfg := &config.Config{
		DictionaryPath: "dictionary.txt",
		SavePath:       "save_data.yml",
		MaxGuesses:     10,
		ComputerPace:   time.Second,
		LogLevel:       "warn",
	}
	cmd := rootCmd(cfg)

	err := cmd.ParseFlags([]string{
		"--dictionary", "words.txt",
		"--max-guesses", "6",
		"--pace", "0s",
		"--no-color",
	})
	require.NoError(t, err)

	assert.Equal(t, "words.txt", cfg.DictionaryPath)
	assert.Equal(t, "save_data.yml", cfg.SavePath)
	assert.Equal(t, 6, cfg.MaxGuesses)
	assert.Equal(t, time.Duration(0), cfg.ComputerPace)
	assert.True(t, cfg.NoColor)
}

func TestRootCmdFlagsOverrideInvalidEnvironment(t *testing.T) {
	t.Log("Given the environment sets zero max guesses")
	t.Setenv("HANGMAN_MAX_GUESSES", "0")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ErrInvalidMaxGuesses, cfg.Validate())

	t.Log("When --max-guesses is passed")
	cmd := rootCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--max-guesses", "5"}))

	t.Log("Then the configuration is valid")
	assert.Equal(t, 5, cfg.MaxGuesses)
	assert.NoError(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	t.Run("known level", func(t *testing.T) {
		logger, err := newLogger("debug")
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := newLogger("loud")
		assert.Error(t, err)
	})
}
