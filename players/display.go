package players

import (
	"fmt"
	"io"
)

const (
	secretWordPromptText = "%s, enter your secret word: "
	guessPromptText      = "\n%s, enter your guess (a letter or word): "
	notAWordText         = "Error: That's not a word.\n\n"
	wordLengthText       = "Error: The word must be between %d and %d characters long.\n\n"
	letterUsedText       = "Error: you already used that letter\n"
	notALetterText       = "Error: that's not a letter or word\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}
