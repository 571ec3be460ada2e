package dialogue

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"mosambot/app/config"
	"mosambot/app/service/weather"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	series   *weather.ForecastSeries
	err      error
	calls    int
	lastCity string
}

func (f *fakeGateway) Forecast(_ context.Context, city string) (*weather.ForecastSeries, error) {
	f.calls++
	f.lastCity = city

	if f.err != nil {
		return nil, f.err
	}

	return f.series, nil
}

func lahoreSeries() *weather.ForecastSeries {
	return &weather.ForecastSeries{
		City: "Lahore",
		Days: []weather.Day{
			{Date: "2025-03-05", TemperatureMax: 31.5, WeatherCode: 0},
			{Date: "2025-03-06", TemperatureMax: 28, WeatherCode: 61},
			{Date: "2025-03-07", TemperatureMax: 26.5, WeatherCode: 95},
		},
	}
}

func newTestService(gw Gateway, resetOnAnswer bool) *Service {
	return &Service{
		cfg: &config.Config{
			Dialogue: config.Dialogue{ResetOnAnswer: resetOnAnswer},
		},
		gateway: gw,
		clock:   clockwork.NewFakeClockAt(testToday),
	}
}

func TestHandleTurnFullWeatherQuery(t *testing.T) {
	gw := &fakeGateway{series: lahoreSeries()}
	svc := newTestService(gw, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "what's the weather in lahore today")

	assert.Equal(t, "lahore", conv.City)
	assert.Equal(t, "2025-03-05", conv.ForecastDate)
	assert.Equal(t, IntentWeather, conv.LastIntent)
	assert.Equal(t, 1, gw.calls)
	assert.Contains(t, reply, "Lahore")
	assert.Contains(t, reply, "31.5")
	assert.Contains(t, reply, "Teesra din (Wednesday)")
	assert.Contains(t, reply, "Aaj aasman bilkul saaf hai.")
}

func TestHandleTurnAsksForCity(t *testing.T) {
	gw := &fakeGateway{series: lahoreSeries()}
	svc := newTestService(gw, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "weather")

	assert.Equal(t, "Mujhe sheher ka naam nahi mila. Kya aap city bata sakte hain?", reply)
	assert.Empty(t, conv.City)
	assert.Zero(t, gw.calls)
}

func TestHandleTurnAsksForDate(t *testing.T) {
	svc := newTestService(&fakeGateway{series: lahoreSeries()}, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "weather in lahore")

	assert.Equal(t, "Aapko aaj ka mosam chahiye ya kisi aur din ka?", reply)
}

func TestHandleTurnPrecautionClarifications(t *testing.T) {
	svc := newTestService(&fakeGateway{series: lahoreSeries()}, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "precaution batao")
	assert.Equal(t, "Pehle mujhe sheher ka naam batayein jiska mosam maloom karna hai.", reply)

	reply = svc.HandleTurn(context.Background(), conv, "karachi")
	assert.Equal(t, "Pehle mujhe din batayein jiska mosam maloom karna hai.", reply)
}

func TestHandleTurnRemembersName(t *testing.T) {
	gw := &fakeGateway{series: lahoreSeries()}
	svc := newTestService(gw, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "mera naam Ali hai")

	assert.Equal(t, "Shukriya Ali, aapka naam yaad rakh liya gaya hai.", reply)
	assert.Equal(t, "Ali", conv.Name)
	// a name turn must not run a weather lookup
	assert.Zero(t, gw.calls)
}

func TestHandleTurnNamePrefixOnEveryBranch(t *testing.T) {
	tests := []struct {
		name      string
		gw        *fakeGateway
		utterance string
	}{
		{"fallback", &fakeGateway{series: lahoreSeries()}, "kuch bhi"},
		{"city question", &fakeGateway{series: lahoreSeries()}, "weather"},
		{"date question", &fakeGateway{series: lahoreSeries()}, "weather in lahore"},
		{"answer", &fakeGateway{series: lahoreSeries()}, "weather in lahore today"},
		{"city not found", &fakeGateway{err: weather.ErrCityNotFound}, "weather in lahore today"},
		{"unavailable", &fakeGateway{err: weather.ErrUnavailable}, "weather in lahore today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.gw, false)
			conv := &Context{Name: "Ali"}

			reply := svc.HandleTurn(context.Background(), conv, tt.utterance)

			assert.True(t, strings.HasPrefix(reply, "Ali, "), "reply %q lacks name prefix", reply)
		})
	}
}

func TestHandleTurnPrecautionAnswer(t *testing.T) {
	gw := &fakeGateway{series: &weather.ForecastSeries{
		City: "Karachi",
		Days: []weather.Day{
			{Date: "2025-03-06", TemperatureMax: 29, WeatherCode: 95},
		},
	}}
	svc := newTestService(gw, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "precaution for karachi kal")

	assert.Equal(t, "karachi", gw.lastCity)
	assert.Equal(t, PrecautionFor(95), reply)
}

func TestHandleTurnCityNotFound(t *testing.T) {
	gw := &fakeGateway{err: fmt.Errorf("%w: %q", weather.ErrCityNotFound, "quetta")}
	svc := newTestService(gw, false)
	conv := &Context{City: "quetta", ForecastDate: "2025-03-05", LastIntent: IntentWeather}

	reply := svc.HandleTurn(context.Background(), conv, "quetta ka mosam")

	assert.Equal(t, "Weather info not found for quetta.", reply)
	// the slot stays set so a corrected city next turn reuses intent and date
	assert.Equal(t, "quetta", conv.City)
	assert.Equal(t, IntentWeather, conv.LastIntent)
}

func TestHandleTurnCityNotFoundPrecautionWording(t *testing.T) {
	gw := &fakeGateway{err: weather.ErrCityNotFound}
	svc := newTestService(gw, false)
	conv := &Context{City: "quetta", ForecastDate: "2025-03-05", LastIntent: IntentPrecaution}

	reply := svc.HandleTurn(context.Background(), conv, "ehtiyaati tadabeer")

	assert.Equal(t, "quetta ka mosam nahi mil saka, is wajah se ehtiyaati tadabeer nahi dein sakta.", reply)
}

func TestHandleTurnGatewayUnavailable(t *testing.T) {
	gw := &fakeGateway{err: fmt.Errorf("%w: connection refused", weather.ErrUnavailable)}
	svc := newTestService(gw, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "weather in lahore today")

	assert.Contains(t, reply, "Maazrat")
}

func TestHandleTurnDateNotInSeries(t *testing.T) {
	svc := newTestService(&fakeGateway{series: lahoreSeries()}, false)
	conv := &Context{City: "lahore", ForecastDate: "2025-04-01", LastIntent: IntentWeather}

	reply := svc.HandleTurn(context.Background(), conv, "mosam?")

	assert.Equal(t, "Lahore ke liye 2025-04-01 ka forecast mojood nahi.", reply)
}

func TestHandleTurnExitSentinel(t *testing.T) {
	svc := newTestService(&fakeGateway{}, false)
	conv := &Context{}

	assert.Equal(t, SignalExit, svc.HandleTurn(context.Background(), conv, "exit"))
	assert.Equal(t, SignalExit, svc.HandleTurn(context.Background(), conv, "  Quit "))
}

func TestHandleTurnStickyIntentAcrossCities(t *testing.T) {
	gw := &fakeGateway{series: lahoreSeries()}
	svc := newTestService(gw, false)
	conv := &Context{}

	first := svc.HandleTurn(context.Background(), conv, "weather in lahore today")
	require.Contains(t, first, "Lahore")

	// no intent keyword this turn, the previous intent re-triggers
	svc.HandleTurn(context.Background(), conv, "karachi")

	assert.Equal(t, 2, gw.calls)
	assert.Equal(t, "karachi", gw.lastCity)
}

func TestHandleTurnResetOnAnswer(t *testing.T) {
	gw := &fakeGateway{series: lahoreSeries()}
	svc := newTestService(gw, true)
	conv := &Context{Name: "Ali"}

	svc.HandleTurn(context.Background(), conv, "weather in lahore today")

	assert.Equal(t, IntentNone, conv.LastIntent)
	assert.Empty(t, conv.ForecastDate)
	// name and city survive the reset
	assert.Equal(t, "Ali", conv.Name)
	assert.Equal(t, "lahore", conv.City)

	reply := svc.HandleTurn(context.Background(), conv, "karachi")

	assert.Equal(t, 1, gw.calls)
	assert.Contains(t, reply, "samajh nahi aaya")
}

func TestHandleTurnEmptyUtteranceFallsThrough(t *testing.T) {
	svc := newTestService(&fakeGateway{}, false)
	conv := &Context{}

	reply := svc.HandleTurn(context.Background(), conv, "   ")

	assert.Contains(t, reply, "samajh nahi aaya")
}
