package tidedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ngmaloney/strait-current/internal/models"
)

// ProxyClient implements Client against a JSON proxy that returns the
// day's extrema already split into high and low lists
type ProxyClient struct {
	baseURL    string
	station    string
	httpClient *http.Client
}

// NewProxyClient creates a proxy client. A zero timeout means 30s.
func NewProxyClient(baseURL, station string, timeout time.Duration) *ProxyClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ProxyClient{
		baseURL: baseURL,
		station: station,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetDay retrieves the extrema for one day
func (c *ProxyClient) GetDay(ctx context.Context, date time.Time) (*models.RawTideDay, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("tide proxy URL is not configured")
	}

	params := url.Values{}
	params.Add("station", c.station)
	params.Add("date", date.Format("2006-01-02"))

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

	var body proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &models.RawTideDay{
		Date:    date,
		Station: c.station,
		High:    body.High,
		Low:     body.Low,
	}, nil
}

type proxyResponse struct {
	High []models.RawExtremum `json:"high"`
	Low  []models.RawExtremum `json:"low"`
}
