package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minaorangina/hangman/game"
	"github.com/minaorangina/hangman/protocol"
)

const (
	clearScreenText   = "\033[H\033[2J"
	welcomeText       = "Welcome to %s!\n\n"
	tryAgainText      = "Oops, try again:\n"
	gameSavedText     = "Your game has been saved.\n"
	saveFailedText    = "Sorry, your game could not be saved."
	fileNotFoundText  = "File not found.\n"
	saveUnusableText  = "Sorry, the saved game could not be loaded."
	guessesLeftText   = "%s has %s guesses remaining\n"
	lettersUsedText   = "Letters used: %s\n"
	winText           = "\n%s wins! The secret word was %s!\n\n"
	lossText          = "\n%s loses! The secret word was %s!\n\n"
	noGuessText       = "\n%s could not come up with a guess: %s\n\n"
	playAgainText     = "Would you like to play again? Enter 'y' for yes or 'n' for no: "
	saveTipText       = "Tip: You can save the game by typing %s or %s.\n"
	rulesText         = `Rules:
1. One player thinks of an English word and the other tries to guess it by
   suggesting letters.
2. If the guesser gets a letter wrong (one not contained in the secret word),
   they lose a guess.
3. The guesser can have up to %d wrong guesses before they lose.
4. The guesser is also allowed to guess the entire word, but they lose a guess
   if they get it wrong.

`
)

var menuChoices = []struct {
	mode protocol.Mode
	text string
}{
	{protocol.GuessComputerWord, "Guess the computer's word"},
	{protocol.ComputerGuessesWord, "Have the computer guess your word"},
	{protocol.LoadSave, "Load a previous save"},
	{protocol.Quit, "Quit"},
}

type styles struct {
	title     lipgloss.Style
	highlight lipgloss.Style
	used      lipgloss.Style
	warning   lipgloss.Style
}

func newStyles(out io.Writer, noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain}
	}

	r := lipgloss.NewRenderer(out)
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		used:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warning:   r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// display renders the game for the terminal
type display struct {
	out         io.Writer
	styles      styles
	clearScreen bool
}

func newDisplay(out io.Writer, noColor, clearScreen bool) *display {
	return &display{out: out, styles: newStyles(out, noColor), clearScreen: clearScreen}
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func (d *display) send(text string, a ...interface{}) {
	SendText(d.out, text, a...)
}

func (d *display) clear() {
	if d.clearScreen {
		d.send(clearScreenText)
	}
}

func (d *display) intro(maxGuesses int) {
	d.clear()
	d.send(welcomeText, d.styles.title.Render("Hangman"))
	d.send(rulesText, maxGuesses)
	d.send(buildMenuText(d.styles.highlight))
}

func (d *display) tryAgain() {
	d.send(tryAgainText)
}

func (d *display) saveTip() {
	d.send(saveTipText,
		d.styles.highlight.Render(strings.ToLower(protocol.SaveTokens[0])),
		d.styles.highlight.Render(strings.ToLower(protocol.SaveTokens[1])),
	)
}

func (d *display) gameState(state game.State, guesserName string, maxGuesses int) {
	d.clear()
	d.send("%s\n", gallowsFor(state.GuessesLeft, maxGuesses))
	d.send("\n%s\n", spaced(state.ClueWord))
	d.send(guessesLeftText, guesserName, d.styles.highlight.Render(fmt.Sprint(state.GuessesLeft)))
	if len(state.LettersUsed) > 0 {
		d.send(lettersUsedText, d.styles.used.Render(strings.Join(state.LettersUsed, " ")))
	}
}

func (d *display) win(winner, secretWord string) {
	d.send(winText, winner, secretWord)
}

func (d *display) loss(loser, secretWord string) {
	d.send(lossText, loser, secretWord)
}

func (d *display) noGuess(guesser string, err error) {
	d.send(noGuessText, guesser, d.styles.warning.Render(err.Error()))
}

func (d *display) gameSaved() {
	d.send(gameSavedText)
}

func (d *display) saveFailed() {
	d.send("%s\n", d.styles.warning.Render(saveFailedText))
}

func (d *display) fileNotFound() {
	d.send(fileNotFoundText)
}

func (d *display) saveUnusable() {
	d.send("%s\n", d.styles.warning.Render(saveUnusableText))
}

func (d *display) playAgainPrompt() {
	d.send(playAgainText)
}

func buildMenuText(number lipgloss.Style) string {
	text := "Please make a selection:\n"
	for _, c := range menuChoices {
		text += fmt.Sprintf("%s - %s\n", number.Render(fmt.Sprint(int(c.mode))), c.text)
	}
	return text
}

// spaced puts a space between each letter of the clue word
func spaced(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}
