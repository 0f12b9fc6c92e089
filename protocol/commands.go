package protocol

import "strings"

// SaveTokens are typed in place of a guess to save the round
var SaveTokens = []string{"/SAVE", "/S"}

// IsSaveToken reports whether input asks for the round to be saved
func IsSaveToken(input string) bool {
	in := strings.ToUpper(strings.TrimSpace(input))
	for _, token := range SaveTokens {
		if in == token {
			return true
		}
	}
	return false
}
