package dialogue

import "time"

const isoDate = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ResolveDate maps a relative date expression inside an utterance to an
// absolute ISO date. Priority: today, tomorrow, then weekday names. A
// weekday equal to today's resolves to next week's occurrence, never today.
// Absolute dates ("March 5") are not supported.
func ResolveDate(utterance string, today time.Time) (string, bool) {
	tokens := tokenize(utterance)

	if hasAny(tokens, "today", "aaj") {
		return today.Format(isoDate), true
	}

	if hasAny(tokens, "tomorrow", "kal") {
		return today.AddDate(0, 0, 1).Format(isoDate), true
	}

	for _, tok := range tokens {
		day, ok := weekdays[tok]
		if !ok {
			continue
		}

		ahead := (int(day) - int(today.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}

		return today.AddDate(0, 0, ahead).Format(isoDate), true
	}

	return "", false
}

func hasAny(tokens []string, wanted ...string) bool {
	for _, tok := range tokens {
		for _, w := range wanted {
			if tok == w {
				return true
			}
		}
	}

	return false
}
