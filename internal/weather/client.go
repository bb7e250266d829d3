// Package weather fetches 7-day forecasts from the Open-Meteo public API.
// City names are resolved to coordinates first, no API key required.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// ErrCityNotFound is returned when geocoding produces no match for the
// requested city.
var ErrCityNotFound = errors.New("city not found")

// Location is the resolved place a forecast applies to.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Day is one day of the forecast.
type Day struct {
	Date                string  `json:"date"`
	TempMax             float64 `json:"temp_max"`
	TempMin             float64 `json:"temp_min"`
	PrecipitationChance float64 `json:"precipitation_chance"`
	WeatherCode         int     `json:"weathercode"`
	Summary             string  `json:"weather_summary"`
}

// Forecast is the full weather answer for a city.
type Forecast struct {
	Location Location `json:"location"`
	Days     []Day    `json:"forecast"`
}

// Client talks to the Open-Meteo geocoding and forecast endpoints.
type Client struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
}

// NewClient creates a weather client with the public Open-Meteo endpoints.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		geocodingURL: defaultGeocodingURL,
		forecastURL:  defaultForecastURL,
	}
}

// Forecast resolves the city and returns its 7-day forecast.
func (c *Client) Forecast(ctx context.Context, city string) (*Forecast, error) {
	loc, err := c.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	days, err := c.daily(ctx, loc)
	if err != nil {
		return nil, err
	}

	return &Forecast{Location: *loc, Days: days}, nil
}

func (c *Client) geocode(ctx context.Context, city string) (*Location, error) {
	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")

	var parsed struct {
		Results []Location `json:"results"`
	}
	if err := c.getJSON(ctx, c.geocodingURL+"?"+query.Encode(), &parsed); err != nil {
		return nil, fmt.Errorf("geocoding city: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, fmt.Errorf("%w: %q, check the spelling and try again", ErrCityNotFound, city)
	}
	return &parsed.Results[0], nil
}

func (c *Client) daily(ctx context.Context, loc *Location) ([]Day, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%g", loc.Latitude))
	query.Set("longitude", fmt.Sprintf("%g", loc.Longitude))
	query.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weathercode")
	query.Set("timezone", "auto")

	var parsed struct {
		Daily struct {
			Time                        []string  `json:"time"`
			TemperatureMax              []float64 `json:"temperature_2m_max"`
			TemperatureMin              []float64 `json:"temperature_2m_min"`
			PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
			WeatherCode                 []int     `json:"weathercode"`
		} `json:"daily"`
	}
	if err := c.getJSON(ctx, c.forecastURL+"?"+query.Encode(), &parsed); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	daily := parsed.Daily
	days := make([]Day, 0, len(daily.Time))
	for i, date := range daily.Time {
		// The arrays are parallel; guard against a short one.
		if i >= len(daily.TemperatureMax) || i >= len(daily.TemperatureMin) ||
			i >= len(daily.PrecipitationProbabilityMax) || i >= len(daily.WeatherCode) {
			break
		}
		day := Day{
			Date:                date,
			TempMax:             daily.TemperatureMax[i],
			TempMin:             daily.TemperatureMin[i],
			PrecipitationChance: daily.PrecipitationProbabilityMax[i],
			WeatherCode:         daily.WeatherCode[i],
		}
		day.Summary = fmt.Sprintf("%s, %g°C - %g°C",
			codeDescription(day.WeatherCode), day.TempMin, day.TempMax)
		days = append(days, day)
	}
	return days, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
