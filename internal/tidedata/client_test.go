package tidedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ngmaloney/strait-current/internal/database"
	"github.com/ngmaloney/strait-current/internal/models"
)

func TestNewNOAAClient(t *testing.T) {
	client := NewNOAAClient("9447130", 0)

	if client == nil {
		t.Fatal("NewNOAAClient() returned nil")
	}

	if client.baseURL != "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter" {
		t.Errorf("baseURL = %s, unexpected value", client.baseURL)
	}

	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		provider string
		wantErr  bool
	}{
		{"", false},
		{ProviderProxy, false},
		{ProviderNOAA, false},
		{"carrier-pigeon", true},
	}

	for _, tt := range tests {
		_, err := NewClient(Config{Provider: tt.provider, BaseURL: "http://example.invalid", Station: "S1"})
		if (err != nil) != tt.wantErr {
			t.Errorf("NewClient(%q) error = %v, wantErr %v", tt.provider, err, tt.wantErr)
		}
	}
}

func TestProxyClient_GetDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("station") != "strait" {
			t.Errorf("station param = %s, want strait", query.Get("station"))
		}
		if query.Get("date") != "2025-06-01" {
			t.Errorf("date param = %s, want 2025-06-01", query.Get("date"))
		}

		w.Header().Set("Content-Type", "application/json")
		data, _ := os.ReadFile("testdata/proxy_day.json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewProxyClient(server.URL, "strait", time.Second)
	day, err := client.GetDay(context.Background(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDay() error = %v", err)
	}

	if len(day.High) != 2 {
		t.Errorf("len(High) = %d, want 2", len(day.High))
	}
	if len(day.Low) != 3 {
		t.Errorf("len(Low) = %d, want 3 (sentinel kept for the estimator to drop)", len(day.Low))
	}
	if day.Low[1].Time != models.NoDataTime {
		t.Errorf("Low[1].Time = %s, want sentinel", day.Low[1].Time)
	}
}

func TestProxyClient_Unconfigured(t *testing.T) {
	client := NewProxyClient("", "strait", 0)
	if _, err := client.GetDay(context.Background(), time.Now()); err == nil {
		t.Error("expected error without a base URL")
	}
}

func TestNOAAClient_GetDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("station") != "9447130" {
			t.Errorf("station param = %s, want 9447130", query.Get("station"))
		}
		if query.Get("interval") != "hilo" {
			t.Error("interval param should be 'hilo'")
		}
		if query.Get("begin_date") != "20251127" || query.Get("end_date") != "20251127" {
			t.Errorf("date range = %s..%s, want a single day", query.Get("begin_date"), query.Get("end_date"))
		}

		w.Header().Set("Content-Type", "application/json")
		data, _ := os.ReadFile("testdata/noaa_hilo.json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewNOAAClient("9447130", 0)
	client.baseURL = server.URL

	day, err := client.GetDay(context.Background(), time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDay() error = %v", err)
	}

	if len(day.High) != 2 || len(day.Low) != 2 {
		t.Fatalf("got %d highs / %d lows, want 2 / 2", len(day.High), len(day.Low))
	}
	if day.High[0] != (models.RawExtremum{Time: "09:31", CM: "159"}) {
		t.Errorf("High[0] = %+v, want 09:31 / 159cm", day.High[0])
	}
	if day.Low[0] != (models.RawExtremum{Time: "03:12", CM: "15"}) {
		t.Errorf("Low[0] = %+v, want 03:12 / 15cm", day.Low[0])
	}
}

func TestNOAAClient_ErrorHandling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Station not found"))
	}))
	defer server.Close()

	client := NewNOAAClient("invalid", 0)
	client.baseURL = server.URL

	if _, err := client.GetDay(context.Background(), time.Now()); err == nil {
		t.Error("Expected error for invalid station, got nil")
	}
}

// countingClient returns a fixed day and counts calls
type countingClient struct {
	calls atomic.Int32
	day   models.RawTideDay
}

func (c *countingClient) GetDay(ctx context.Context, date time.Time) (*models.RawTideDay, error) {
	c.calls.Add(1)
	d := c.day
	d.Date = date
	return &d, nil
}

func TestCachedClient(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	upstream := &countingClient{day: models.RawTideDay{
		High: []models.RawExtremum{{Time: "14:30", CM: "210"}},
		Low:  []models.RawExtremum{{Time: "08:10", CM: "45"}},
	}}
	client := NewCachedClient(db, upstream, "strait", nil)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	first, err := client.GetDay(context.Background(), date)
	if err != nil {
		t.Fatalf("first GetDay() error = %v", err)
	}
	second, err := client.GetDay(context.Background(), date)
	if err != nil {
		t.Fatalf("second GetDay() error = %v", err)
	}

	if n := upstream.calls.Load(); n != 1 {
		t.Errorf("upstream called %d times, want 1", n)
	}
	if len(second.High) != 1 || second.High[0] != first.High[0] {
		t.Errorf("cached day = %+v, want %+v", second, first)
	}

	if _, err := client.GetDay(context.Background(), date.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("GetDay() for another date error = %v", err)
	}
	if n := upstream.calls.Load(); n != 2 {
		t.Errorf("upstream called %d times after a new date, want 2", n)
	}
}

func TestCachedClient_SkipsEmptyDays(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	upstream := &countingClient{}
	client := NewCachedClient(db, upstream, "strait", nil)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	client.GetDay(context.Background(), date)
	client.GetDay(context.Background(), date)

	if n := upstream.calls.Load(); n != 2 {
		t.Errorf("upstream called %d times, want 2 for an uncached empty day", n)
	}
}
