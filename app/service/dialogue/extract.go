package dialogue

import (
	"strings"
	"time"
	"unicode"
)

// knownCities is the closed list of recognized cities. List order decides
// precedence when several cities appear in one utterance.
var knownCities = []string{
	"lahore",
	"karachi",
	"islamabad",
	"multan",
	"peshawar",
	"faisalabad",
	"quetta",
}

// Self-introduction phrases and the connective words whose following token
// is taken as the name.
var (
	namePhrases = [][]string{
		{"my", "name", "is"},
		{"mera", "naam"},
		{"i", "am"},
		{"i'm"},
		{"mai"},
		{"main"},
	}
	nameConnectives = map[string]bool{
		"is":   true,
		"am":   true,
		"naam": true,
		"i'm":  true,
	}
)

var (
	precautionWords = []string{"precaution", "precautions", "measures", "ehtiyaati", "ehtiyaat"}
	weatherWords    = []string{"weather", "mosam", "mausam"}
)

// Extract scans one utterance for a name, a known city, a date expression
// and intent keywords. It returns a diff; it never touches the Context
// itself. Matching is token-based, so city names embedded inside longer
// words do not fire.
func Extract(utterance string, today time.Time) Extraction {
	tokens := tokenize(utterance)

	var ex Extraction

	ex.Name = extractName(tokens)

	for _, city := range knownCities {
		if hasAny(tokens, city) {
			ex.City = city
			break
		}
	}

	if date, ok := ResolveDate(utterance, today); ok {
		ex.Date = date
	}

	switch {
	case hasAny(tokens, precautionWords...):
		ex.Intent = IntentPrecaution
	case hasAny(tokens, weatherWords...):
		ex.Intent = IntentWeather
	}

	return ex
}

// extractName returns the token after the first connective word, provided
// some self-introduction phrase is present. A phrase without a trailing
// token yields nothing.
func extractName(tokens []string) string {
	found := false
	for _, phrase := range namePhrases {
		if containsSeq(tokens, phrase) {
			found = true
			break
		}
	}
	if !found {
		return ""
	}

	for i, tok := range tokens {
		if nameConnectives[tok] && i+1 < len(tokens) {
			return capitalize(tokens[i+1])
		}
	}

	return ""
}

func containsSeq(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(tokens) < len(phrase) {
		return false
	}

	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j := range phrase {
			if tokens[i+j] != phrase[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// tokenize lower-cases an utterance and splits it on word boundaries.
// Apostrophes stay inside tokens so "i'm" survives as one word.
func tokenize(s string) []string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "’", "'")

	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
