package tidedata

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ngmaloney/strait-current/internal/models"
)

// NOAAClient implements Client using NOAA CO-OPS high/low predictions
type NOAAClient struct {
	baseURL    string
	station    string
	httpClient *http.Client
}

// NewNOAAClient creates a new NOAA tide client. A zero timeout means 30s.
func NewNOAAClient(station string, timeout time.Duration) *NOAAClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &NOAAClient{
		baseURL: "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter",
		station: station,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetDay retrieves the day's hilo predictions and splits them into high
// and low lists with heights in centimeters
func (c *NOAAClient) GetDay(ctx context.Context, date time.Time) (*models.RawTideDay, error) {
	day := date.Format("20060102")

	params := url.Values{}
	params.Add("begin_date", day)
	params.Add("end_date", day)
	params.Add("station", c.station)
	params.Add("product", "predictions")
	params.Add("datum", "MLLW")        // Mean Lower Low Water
	params.Add("time_zone", "lst_ldt") // Local standard/daylight time
	params.Add("interval", "hilo")     // High and low tides only
	params.Add("units", "metric")
	params.Add("format", "json")
	params.Add("application", "StraitCurrent")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tide data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var tideResp noaaResponse
	if err := json.NewDecoder(resp.Body).Decode(&tideResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if tideResp.Error != nil {
		return nil, fmt.Errorf("NOAA error: %s", tideResp.Error.Message)
	}

	out := &models.RawTideDay{Date: date, Station: c.station}
	for _, pred := range tideResp.Predictions {
		eventTime, err := time.Parse("2006-01-02 15:04", pred.Time)
		if err != nil {
			continue // Skip invalid times
		}

		meters, err := strconv.ParseFloat(pred.Height, 64)
		if err != nil {
			continue
		}

		raw := models.RawExtremum{
			Time: eventTime.Format("15:04"),
			CM:   strconv.Itoa(int(math.Round(meters * 100))),
		}
		if pred.Type == "H" {
			out.High = append(out.High, raw)
		} else {
			out.Low = append(out.Low, raw)
		}
	}

	return out, nil
}

// Internal types for NOAA CO-OPS API responses

type noaaResponse struct {
	Predictions []struct {
		Time   string `json:"t"`
		Height string `json:"v"`    // NOAA returns this as string
		Type   string `json:"type"` // "H" or "L"
	} `json:"predictions"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}
