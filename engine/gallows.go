package engine

var gallows = []string{
	`




=========`,
	`
      |
      |
      |
      |
      |
=========`,
	`  +---+
      |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// gallowsFor picks the drawing for the number of guesses used,
// stretched over however many guesses the round allows
func gallowsFor(guessesLeft, maxGuesses int) string {
	if maxGuesses <= 0 {
		return gallows[len(gallows)-1]
	}
	used := maxGuesses - guessesLeft
	if used < 0 {
		used = 0
	}
	idx := used * len(gallows) / maxGuesses
	if idx >= len(gallows) {
		idx = len(gallows) - 1
	}
	return gallows[idx]
}
