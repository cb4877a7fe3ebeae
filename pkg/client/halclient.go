// SPDX-License-Identifier: BSD-3-Clause

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HALClient is a typed HTTP client for the HAL service's REST surface.
type HALClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHALClient builds a HALClient against baseURL (e.g. "http://localhost:8001").
func NewHALClient(baseURL string) *HALClient {
	return &HALClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetTemperatures fetches every configured thermometer's latest reading.
// A nil map value means that device's driver failed on its last read.
func (c *HALClient) GetTemperatures(ctx context.Context) (map[string]*float64, error) {
	var out map[string]*float64
	if err := c.getJSON(ctx, "/temperatures", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTemperature fetches a single thermometer's latest reading. Returns
// ErrNullReading if the device's last read failed, ErrNotFound if name is
// not configured.
func (c *HALClient) GetTemperature(ctx context.Context, name string) (float64, error) {
	var out struct {
		Value float64 `json:"value"`
	}
	if err := c.getJSON(ctx, "/temperature/"+name, &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}

// GetHeaterValues fetches every configured heater's last written value.
func (c *HALClient) GetHeaterValues(ctx context.Context) (map[string]float64, error) {
	var out map[string]float64
	if err := c.getJSON(ctx, "/heaters/values", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHeaterValue fetches a single heater's last written value.
func (c *HALClient) GetHeaterValue(ctx context.Context, name string) (float64, error) {
	var out struct {
		Value float64 `json:"value"`
	}
	if err := c.getJSON(ctx, "/heater/"+name+"/value", &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}

// GetHeaterMaxValues fetches the configured upper bound for every heater.
func (c *HALClient) GetHeaterMaxValues(ctx context.Context) (map[string]float64, error) {
	var out map[string]float64
	if err := c.getJSON(ctx, "/heaters/max_values", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetHeaterValue writes value to a heater, clamped to [0, max_value] by the
// HAL service.
func (c *HALClient) SetHeaterValue(ctx context.Context, name string, value float64) error {
	body, err := json.Marshal(struct {
		Value float64 `json:"value"`
	}{Value: value})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/heater/"+name+"/value", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return statusToError(resp.StatusCode)
}

func (c *HALClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := statusToError(resp.StatusCode); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusToError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnprocessableEntity:
		return ErrNullReading
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, code)
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
