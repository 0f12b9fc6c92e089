package protocol

import (
	"testing"

	utils "github.com/minaorangina/hangman/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		ok    bool
	}{
		{"1", GuessComputerWord, true},
		{"2", ComputerGuessesWord, true},
		{" 3 ", LoadSave, true},
		{"4", Quit, true},
		{"0", Unknown, false},
		{"5", Unknown, false},
		{"two", Unknown, false},
		{"", Unknown, false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.input)
		utils.AssertEqual(t, got, tt.want)
		utils.AssertEqual(t, ok, tt.ok)
	}
}

func TestModePlayable(t *testing.T) {
	assert.True(t, GuessComputerWord.Playable())
	assert.True(t, ComputerGuessesWord.Playable())
	assert.False(t, LoadSave.Playable())
	assert.False(t, Quit.Playable())
	assert.False(t, Unknown.Playable())
}

func TestModeYAML(t *testing.T) {
	type wrapper struct {
		Mode Mode `yaml:"mode"`
	}

	t.Run("written by name", func(t *testing.T) {
		out, err := yaml.Marshal(wrapper{ComputerGuessesWord})
		require.NoError(t, err)
		utils.AssertEqual(t, string(out), "mode: ComputerGuessesWord\n")

		var got wrapper
		require.NoError(t, yaml.Unmarshal(out, &got))
		utils.AssertEqual(t, got.Mode, ComputerGuessesWord)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		var got wrapper
		assert.Error(t, yaml.Unmarshal([]byte("mode: Unknown\n"), &got))
		assert.Error(t, yaml.Unmarshal([]byte("mode: Chess\n"), &got))
	})
}

func TestIsSaveToken(t *testing.T) {
	for _, in := range []string{"/SAVE", "/S", "/save", " /s "} {
		assert.True(t, IsSaveToken(in), in)
	}
	for _, in := range []string{"SAVE", "S", "/SAVED", ""} {
		assert.False(t, IsSaveToken(in), in)
	}
}
