// Package weather fetches current conditions for a city from the
// OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production OpenWeatherMap endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// APIError is a non-OK answer from the weather service, e.g. an
// unknown city or a rejected API key.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather service returned status %d", e.Status)
	}
	return fmt.Sprintf("weather service: %s (status %d)", e.Message, e.Status)
}

// Report holds the fields shown to the user. Temperature is in
// degrees Celsius, wind speed in m/s.
type Report struct {
	City       string
	Temp       float64
	Conditions string
	Humidity   int
	WindSpeed  float64
}

// String formats the report one field per line.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "City: %s\n", r.City)
	fmt.Fprintf(&sb, "Temperature: %.1f °C\n", r.Temp)
	fmt.Fprintf(&sb, "Weather: %s\n", titleCase(r.Conditions))
	fmt.Fprintf(&sb, "Humidity: %d%%\n", r.Humidity)
	fmt.Fprintf(&sb, "Wind Speed: %.1f m/s", r.WindSpeed)
	return sb.String()
}

// Client issues requests against the weather API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with a short request timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches the current weather for the named city in metric
// units. A non-OK response is returned as an *APIError.
func (c *Client) Current(ctx context.Context, city string) (Report, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Message string `json:"message"`
		}
		// Best effort: the error body may not be JSON at all.
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return Report{}, &APIError{Status: resp.StatusCode, Message: body.Message}
	}

	var body struct {
		Name string `json:"name"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("decoding weather response: %w", err)
	}

	report := Report{
		City:      body.Name,
		Temp:      body.Main.Temp,
		Humidity:  body.Main.Humidity,
		WindSpeed: body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		report.Conditions = body.Weather[0].Description
	}
	return report, nil
}

// titleCase uppercases the first letter of every word, matching how
// the report has always been displayed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
