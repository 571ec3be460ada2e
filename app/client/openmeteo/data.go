package openmeteo

// GeoResult is a single match from the Open-Meteo geocoding API.
type GeoResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

type geoResponse struct {
	Results []GeoResult `json:"results"`
}

// DailyForecast mirrors the daily block of the Open-Meteo forecast API.
// All slices are index-aligned: Time[i] corresponds to TemperatureMax[i]
// and WeatherCode[i].
type DailyForecast struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WeatherCode      []int     `json:"weathercode"`
}

type forecastResponse struct {
	Daily DailyForecast `json:"daily"`
}
