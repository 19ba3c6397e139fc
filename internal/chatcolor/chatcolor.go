// Package chatcolor handles the legacy chat formatting codes used by the game
// client: a section sign followed by one code character.
package chatcolor

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// ColorChar prefixes every formatting code on the wire
	ColorChar = '§'
	// AltColorChar is the escape used in configuration files
	AltColorChar = '&'

	validCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"
)

var stripPattern = regexp.MustCompile(`(?i)` + string(ColorChar) + `[0-9A-FK-ORX]`)

// Translate replaces altChar escapes followed by a valid code with the
// section-sign form. The code character is lower-cased.
func Translate(altChar rune, text string) string {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == altChar && strings.ContainsRune(validCodes, runes[i+1]) {
			runes[i] = ColorChar
			runes[i+1] = unicode.ToLower(runes[i+1])
		}
	}
	return string(runes)
}

// TranslateDefault is Translate with the '&' escape
func TranslateDefault(text string) string {
	return Translate(AltColorChar, text)
}

// Strip removes every formatting code
func Strip(text string) string {
	return stripPattern.ReplaceAllString(text, "")
}
