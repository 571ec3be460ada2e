package weather

import (
	"context"
	"fmt"
	"log/slog"

	"mosambot/app/client/openmeteo"

	"github.com/samber/do"
)

// Service resolves a city name to coordinates and fetches its daily
// forecast, converting client failures into the gateway error taxonomy.
type Service struct {
	client *openmeteo.Client
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		client: do.MustInvoke[*openmeteo.Client](di),
	}, nil
}

// Forecast returns the forecast series for a city. Errors are ErrCityNotFound
// when the name does not geocode and ErrUnavailable for everything else.
func (s *Service) Forecast(ctx context.Context, city string) (*ForecastSeries, error) {
	results, err := s.client.Geocode(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}

	place := results[0]

	daily, err := s.client.DailyForecast(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	series, err := zipSeries(place.Name, daily)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	slog.Debug("Fetched forecast",
		"city", place.Name,
		"days", len(series.Days),
	)

	return series, nil
}

// zipSeries converts the API's parallel arrays into per-day records,
// rejecting misaligned responses.
func zipSeries(city string, daily *openmeteo.DailyForecast) (*ForecastSeries, error) {
	n := len(daily.Time)
	if len(daily.TemperatureMax) != n || len(daily.WeatherCode) != n {
		return nil, fmt.Errorf("misaligned daily arrays: %d dates, %d temps, %d codes",
			n, len(daily.TemperatureMax), len(daily.WeatherCode))
	}

	series := &ForecastSeries{
		City: city,
		Days: make([]Day, 0, n),
	}

	for i := 0; i < n; i++ {
		day := Day{
			Date:           daily.Time[i],
			TemperatureMax: daily.TemperatureMax[i],
			WeatherCode:    daily.WeatherCode[i],
		}
		// min temp and precipitation are informational extras, tolerate
		// responses that omit them
		if i < len(daily.TemperatureMin) {
			day.TemperatureMin = daily.TemperatureMin[i]
		}
		if i < len(daily.PrecipitationSum) {
			day.PrecipitationSum = daily.PrecipitationSum[i]
		}

		series.Days = append(series.Days, day)
	}

	return series, nil
}
