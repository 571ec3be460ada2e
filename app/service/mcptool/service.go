package mcptool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"mosambot/app/service/dialogue"
	"mosambot/app/service/weather"

	"github.com/jonboulle/clockwork"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
)

// Service serves the forecast and precaution lookups as MCP tools over
// stdio, so assistant hosts can call the same core the chat surfaces use.
type Service struct {
	weatherSvc *weather.Service
	clock      clockwork.Clock
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		weatherSvc: do.MustInvoke[*weather.Service](di),
		clock:      clockwork.NewRealClock(),
	}, nil
}

// Run serves until stdin closes or the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	mcpServer := server.NewMCPServer("mosambot", "1.0.0",
		server.WithToolCapabilities(false),
	)

	mcpServer.AddTool(
		mcp.NewTool("get_weather",
			mcp.WithDescription("Daily forecast for a city, described in Roman Urdu."),
			mcp.WithString("city",
				mcp.Required(),
				mcp.Description("City name, e.g. lahore"),
			),
			mcp.WithString("day",
				mcp.Description("today, tomorrow or a weekday name; defaults to today"),
			),
		),
		s.handleWeather,
	)

	mcpServer.AddTool(
		mcp.NewTool("get_precautions",
			mcp.WithDescription("Weather precautions for a city, described in Roman Urdu."),
			mcp.WithString("city",
				mcp.Required(),
				mcp.Description("City name, e.g. karachi"),
			),
			mcp.WithString("day",
				mcp.Description("today, tomorrow or a weekday name; defaults to today"),
			),
		),
		s.handlePrecautions,
	)

	slog.Info("Serving MCP tools on stdio")

	stdioServer := server.NewStdioServer(mcpServer)

	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("mcp stdio server: %w", err)
	}

	return nil
}

func (s *Service) handleWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := s.lookup(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := fmt.Sprintf("%s: max %s°C, min %s°C. %s",
		day.Date,
		strconv.FormatFloat(day.TemperatureMax, 'f', -1, 64),
		strconv.FormatFloat(day.TemperatureMin, 'f', -1, 64),
		dialogue.Describe(day.WeatherCode),
	)

	return mcp.NewToolResultText(text), nil
}

func (s *Service) handlePrecautions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := s.lookup(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(dialogue.PrecautionFor(day.WeatherCode)), nil
}

// lookup resolves the (city, day) arguments shared by both tools into a
// single forecast day.
func (s *Service) lookup(ctx context.Context, req mcp.CallToolRequest) (weather.Day, error) {
	city, err := req.RequireString("city")
	if err != nil {
		return weather.Day{}, err
	}

	dayArg := req.GetString("day", "today")

	date, ok := dialogue.ResolveDate(dayArg, s.clock.Now())
	if !ok {
		return weather.Day{}, fmt.Errorf("cannot resolve day %q: use today, tomorrow or a weekday name", dayArg)
	}

	series, err := s.weatherSvc.Forecast(ctx, city)
	if err != nil {
		if errors.Is(err, weather.ErrCityNotFound) {
			return weather.Day{}, fmt.Errorf("weather info not found for %s", city)
		}

		return weather.Day{}, fmt.Errorf("weather service unavailable: %w", err)
	}

	day, ok := series.DayAt(date)
	if !ok {
		return weather.Day{}, fmt.Errorf("no forecast for %s on %s", series.City, date)
	}

	return day, nil
}
