package weather

import (
	"errors"

	"github.com/elliotchance/pie/v2"
)

var (
	// ErrCityNotFound means geocoding returned no match for the city.
	ErrCityNotFound = errors.New("city not found")
	// ErrUnavailable covers transport and service failures of the weather APIs.
	ErrUnavailable = errors.New("weather service unavailable")
)

// Day is one entry of a daily forecast series.
type Day struct {
	Date             string
	TemperatureMax   float64
	TemperatureMin   float64
	PrecipitationSum float64
	WeatherCode      int
}

// ForecastSeries is a multi-day forecast for one resolved location.
// City carries the canonical spelling returned by geocoding, which may
// differ from what the user typed.
type ForecastSeries struct {
	City string
	Days []Day
}

// DayAt returns the entry for an ISO date, if the series covers it.
func (s *ForecastSeries) DayAt(date string) (Day, bool) {
	idx := pie.FindFirstUsing(s.Days, func(d Day) bool {
		return d.Date == date
	})
	if idx < 0 {
		return Day{}, false
	}

	return s.Days[idx], true
}
