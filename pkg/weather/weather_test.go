package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCurrent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "London" {
			t.Errorf("city query = %q, want London", got)
		}
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("appid query = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("units query = %q, want metric", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "London",
			"main": {"temp": 11.5, "humidity": 81},
			"weather": [{"description": "light rain"}],
			"wind": {"speed": 4.2}
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	report, err := c.Current(context.Background(), "London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if report.City != "London" {
		t.Errorf("city = %q, want London", report.City)
	}
	if report.Temp != 11.5 || report.Humidity != 81 || report.WindSpeed != 4.2 {
		t.Errorf("unexpected numbers: %+v", report)
	}
	if report.Conditions != "light rain" {
		t.Errorf("conditions = %q, want light rain", report.Conditions)
	}

	out := report.String()
	for _, want := range []string{"City: London", "Humidity: 81%", "Weather: Light Rain"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestCurrent_CityNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	_, err := c.Current(context.Background(), "Nowhereville")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "city not found" {
		t.Errorf("message = %q, want %q", apiErr.Message, "city not found")
	}
}

func TestCurrent_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	_, err := c.Current(context.Background(), "London")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", apiErr.Status)
	}
}
