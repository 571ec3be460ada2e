package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mosambot/app/config"

	"github.com/samber/do"
)

// Client talks to the Open-Meteo geocoding and forecast APIs.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Weather.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Geocode resolves a city name to candidate locations. An unknown name
// yields an empty slice, not an error.
func (c *Client) Geocode(ctx context.Context, name string) ([]GeoResult, error) {
	params := url.Values{
		"name":  {name},
		"count": {"1"},
	}

	var resp geoResponse
	if err := c.getJSON(ctx, c.cfg.Weather.GeocodingURL+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}

	return resp.Results, nil
}

// DailyForecast fetches the daily forecast series for a coordinate pair.
func (c *Client) DailyForecast(ctx context.Context, lat, lon float64) (*DailyForecast, error) {
	params := url.Values{
		"latitude":      {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":     {strconv.FormatFloat(lon, 'f', -1, 64)},
		"daily":         {"temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode"},
		"timezone":      {"auto"},
		"forecast_days": {strconv.Itoa(c.cfg.Weather.ForecastDays)},
	}

	var resp forecastResponse
	if err := c.getJSON(ctx, c.cfg.Weather.ForecastURL+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("forecast for %f,%f: %w", lat, lon, err)
	}

	return &resp.Daily, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
