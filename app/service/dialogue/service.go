package dialogue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mosambot/app/config"
	"mosambot/app/service/weather"

	"github.com/jonboulle/clockwork"
	"github.com/samber/do"
)

// SignalExit is the sentinel reply telling the caller to end the session.
const SignalExit = "exit"

const (
	Greeting = "Assalamualaikum! Weather Assistant aapki madad ke liye haazir hai. " +
		"Mosam ya ehtiyaat se related koi bhi sawal poochein. Band karne ke liye exit likhein."
	Farewell = "Khuda Hafiz! Aapka din acha guzray."
)

var urduDayNames = map[time.Weekday]string{
	time.Monday:    "Pehla din (Monday)",
	time.Tuesday:   "Doosra din (Tuesday)",
	time.Wednesday: "Teesra din (Wednesday)",
	time.Thursday:  "Chautha din (Thursday)",
	time.Friday:    "Paanchwa din (Friday)",
	time.Saturday:  "Chhata din (Saturday)",
	time.Sunday:    "Aakhri din (Sunday)",
}

// Gateway is the slice of the weather service the dialogue needs.
type Gateway interface {
	Forecast(ctx context.Context, city string) (*weather.ForecastSeries, error)
}

// Service runs the turn-by-turn dialogue: it feeds each utterance through
// the extractor, decides which slot is still missing and either asks a
// clarifying question or answers via the weather gateway.
type Service struct {
	cfg     *config.Config
	gateway Gateway
	clock   clockwork.Clock
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:     do.MustInvoke[*config.Config](di),
		gateway: do.MustInvoke[*weather.Service](di),
		clock:   clockwork.NewRealClock(),
	}, nil
}

// HandleTurn processes one utterance against one conversation and returns
// exactly one reply. It never fails: gateway errors become apology text.
// Turns of the same conversation are serialized by the context mutex.
func (s *Service) HandleTurn(ctx context.Context, conv *Context, utterance string) string {
	trimmed := strings.ToLower(strings.TrimSpace(utterance))
	if trimmed == "exit" || trimmed == "quit" {
		return SignalExit
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()

	ex := Extract(utterance, s.clock.Now())
	conv.apply(ex)

	// A name-setting turn only acknowledges the name, nothing else runs.
	if ex.Name != "" {
		return fmt.Sprintf("Shukriya %s, aapka naam yaad rakh liya gaya hai.", ex.Name)
	}

	switch conv.State() {
	case StateNoIntent:
		return conv.prefixed("Maaf kijiye, mujhe samajh nahi aaya. Aap mosam ya ehtiyaati tadabeer se related sawal pooch sakte hain.")

	case StateNeedCity:
		if conv.LastIntent == IntentPrecaution {
			return conv.prefixed("Pehle mujhe sheher ka naam batayein jiska mosam maloom karna hai.")
		}
		return conv.prefixed("Mujhe sheher ka naam nahi mila. Kya aap city bata sakte hain?")

	case StateNeedDate:
		if conv.LastIntent == IntentPrecaution {
			return conv.prefixed("Pehle mujhe din batayein jiska mosam maloom karna hai.")
		}
		return conv.prefixed("Aapko aaj ka mosam chahiye ya kisi aur din ka?")
	}

	return s.answer(ctx, conv)
}

func (s *Service) answer(ctx context.Context, conv *Context) string {
	series, err := s.gateway.Forecast(ctx, conv.City)
	if err != nil {
		return conv.prefixed(s.apology(conv, err))
	}

	day, ok := series.DayAt(conv.ForecastDate)
	if !ok {
		return conv.prefixed(fmt.Sprintf("%s ke liye %s ka forecast mojood nahi.", series.City, conv.ForecastDate))
	}

	var reply string
	if conv.LastIntent == IntentPrecaution {
		reply = PrecautionFor(day.WeatherCode)
	} else {
		reply = fmt.Sprintf("%s ka %s ka mosam: temperature: %s°C\n%s",
			series.City,
			urduDayName(conv.ForecastDate),
			strconv.FormatFloat(day.TemperatureMax, 'f', -1, 64),
			Describe(day.WeatherCode),
		)
	}

	if s.cfg.Dialogue.ResetOnAnswer {
		conv.LastIntent = IntentNone
		conv.ForecastDate = ""
	}

	return conv.prefixed(reply)
}

// apology converts a gateway failure into user-facing text. City stays set
// in the context so a corrected spelling next turn reuses intent and date.
func (s *Service) apology(conv *Context, err error) string {
	if errors.Is(err, weather.ErrCityNotFound) {
		slog.Info("City not resolvable", "city", conv.City)

		if conv.LastIntent == IntentPrecaution {
			return fmt.Sprintf("%s ka mosam nahi mil saka, is wajah se ehtiyaati tadabeer nahi dein sakta.", conv.City)
		}
		return fmt.Sprintf("Weather info not found for %s.", conv.City)
	}

	slog.Error("Weather gateway failed",
		"city", conv.City,
		"error", err,
	)

	return "Maazrat, mosam ki service se rabta nahi ho paa raha. Thodi dair baad dobara koshish karein."
}

func urduDayName(isoDateStr string) string {
	t, err := time.Parse(isoDate, isoDateStr)
	if err != nil {
		return isoDateStr
	}

	return urduDayNames[t.Weekday()]
}
