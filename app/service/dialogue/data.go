package dialogue

import "sync"

type Intent string

const (
	IntentNone       Intent = ""
	IntentWeather    Intent = "weather"
	IntentPrecaution Intent = "precaution"
)

// State is the dialogue position derived from which slots are filled.
type State string

const (
	StateNoIntent State = "no_intent"
	StateNeedCity State = "need_city"
	StateNeedDate State = "need_date"
	StateReady    State = "ready"
)

// Context holds the slots of one conversation. Fields persist across turns
// until overwritten; nothing is cleared automatically. Every conversation
// owns its own Context, there is no process-wide instance.
type Context struct {
	mu sync.Mutex

	Name         string
	City         string
	ForecastDate string
	LastIntent   Intent
}

// State evaluates the slots top-down: intent first, then city, then date.
func (c *Context) State() State {
	switch {
	case c.LastIntent == IntentNone:
		return StateNoIntent
	case c.City == "":
		return StateNeedCity
	case c.ForecastDate == "":
		return StateNeedDate
	default:
		return StateReady
	}
}

// Extraction is the per-utterance slot diff produced by Extract.
// Empty fields mean "nothing new", not "clear".
type Extraction struct {
	Name   string
	City   string
	Date   string
	Intent Intent
}

func (c *Context) apply(ex Extraction) {
	if ex.Name != "" {
		c.Name = ex.Name
	}
	if ex.City != "" {
		c.City = ex.City
	}
	if ex.Date != "" {
		c.ForecastDate = ex.Date
	}
	if ex.Intent != IntentNone {
		c.LastIntent = ex.Intent
	}
}

// prefixed prepends the remembered name to a reply. Applied on every
// branch so the formatting stays consistent.
func (c *Context) prefixed(text string) string {
	if c.Name == "" {
		return text
	}

	return c.Name + ", " + text
}
