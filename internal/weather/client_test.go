package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(geoURL, forecastURL string) *Client {
	return &Client{
		httpClient:   &http.Client{},
		geocodingURL: geoURL,
		forecastURL:  forecastURL,
	}
}

func TestForecast(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Mumbai" {
			t.Errorf("geocode name = %q, want Mumbai", got)
		}
		if got := r.URL.Query().Get("count"); got != "1" {
			t.Errorf("geocode count = %q, want 1", got)
		}
		fmt.Fprint(w, `{"results":[{"name":"Mumbai","country":"India","latitude":19.07,"longitude":72.88}]}`)
	}))
	defer geo.Close()

	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("latitude"); got != "19.07" {
			t.Errorf("latitude = %q", got)
		}
		if got := q.Get("timezone"); got != "auto" {
			t.Errorf("timezone = %q", got)
		}
		fmt.Fprint(w, `{"daily":{
			"time":["2026-08-28","2026-08-29"],
			"temperature_2m_max":[31.4,30],
			"temperature_2m_min":[26.1,25.5],
			"precipitation_probability_max":[85,40],
			"weathercode":[63,2]
		}}`)
	}))
	defer forecast.Close()

	client := newTestClient(geo.URL, forecast.URL)
	got, err := client.Forecast(context.Background(), "Mumbai")
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}

	if got.Location.Name != "Mumbai" || got.Location.Country != "India" {
		t.Errorf("location = %+v", got.Location)
	}
	if len(got.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(got.Days))
	}
	first := got.Days[0]
	if first.Date != "2026-08-28" || first.TempMax != 31.4 || first.PrecipitationChance != 85 {
		t.Errorf("first day = %+v", first)
	}
	if first.Summary != "Moderate rain, 26.1°C - 31.4°C" {
		t.Errorf("summary = %q", first.Summary)
	}
	if got.Days[1].Summary != "Partly cloudy, 25.5°C - 30°C" {
		t.Errorf("second summary = %q", got.Days[1].Summary)
	}
}

func TestForecastCityNotFound(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer geo.Close()

	client := newTestClient(geo.URL, "http://localhost:0")
	_, err := client.Forecast(context.Background(), "Atlantis")
	if !errors.Is(err, ErrCityNotFound) {
		t.Errorf("error = %v, want ErrCityNotFound", err)
	}
}

func TestForecastShortParallelArrays(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"name":"Pune","country":"India","latitude":18.52,"longitude":73.86}]}`)
	}))
	defer geo.Close()

	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"daily":{
			"time":["2026-08-28","2026-08-29"],
			"temperature_2m_max":[30],
			"temperature_2m_min":[24],
			"precipitation_probability_max":[10],
			"weathercode":[0]
		}}`)
	}))
	defer forecast.Close()

	client := newTestClient(geo.URL, forecast.URL)
	got, err := client.Forecast(context.Background(), "Pune")
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(got.Days) != 1 {
		t.Errorf("got %d days, want 1", len(got.Days))
	}
}

func TestCodeDescription(t *testing.T) {
	if got := codeDescription(95); got != "Thunderstorm" {
		t.Errorf("codeDescription(95) = %q", got)
	}
	if got := codeDescription(42); got != "Unknown" {
		t.Errorf("codeDescription(42) = %q", got)
	}
}
