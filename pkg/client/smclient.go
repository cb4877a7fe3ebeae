// SPDX-License-Identifier: BSD-3-Clause

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// StateMachineClient is a typed HTTP client for the state machine service,
// mirroring the original process's own client helper method-for-method.
type StateMachineClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewStateMachineClient builds a StateMachineClient against baseURL
// (e.g. "http://localhost:8000").
func NewStateMachineClient(baseURL string) *StateMachineClient {
	return &StateMachineClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetState returns just the current state name.
func (c *StateMachineClient) GetState(ctx context.Context) (string, error) {
	var out struct {
		CurrentState string `json:"current_state"`
	}
	if err := c.getJSON(ctx, "/state", &out); err != nil {
		return "", err
	}
	return out.CurrentState, nil
}

// SetState requests a transition, optionally supplying password.
func (c *StateMachineClient) SetState(ctx context.Context, state string, password *string) error {
	body := map[string]any{"state": state}
	if password != nil {
		body["password"] = *password
	}
	return c.putJSON(ctx, "/state", body, nil)
}

// GetTemperatures returns every sensor's latest reading.
func (c *StateMachineClient) GetTemperatures(ctx context.Context) (map[string]*float64, error) {
	var out map[string]*float64
	if err := c.getJSON(ctx, "/temperatures", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRoot returns the service's root summary document.
func (c *StateMachineClient) GetRoot(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, "/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHeaters returns every heater's latest value.
func (c *StateMachineClient) GetHeaters(ctx context.Context) (map[string]float64, error) {
	var out map[string]float64
	if err := c.getJSON(ctx, "/heaters", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInfo returns the full /info snapshot document.
func (c *StateMachineClient) GetInfo(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, "/info", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Pause requests the system pause via POST /pause.
func (c *StateMachineClient) Pause(ctx context.Context) error {
	return c.postJSON(ctx, "/pause", nil, nil)
}

// Resume requests the system resume via POST /resume, optionally naming a
// target state.
func (c *StateMachineClient) Resume(ctx context.Context, targetState string) error {
	var body map[string]any
	if targetState != "" {
		body = map[string]any{"target_state": targetState}
	}
	return c.postJSON(ctx, "/resume", body, nil)
}

func (c *StateMachineClient) getJSON(ctx context.Context, path string, out any) error {
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

func (c *StateMachineClient) putJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *StateMachineClient) postJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *StateMachineClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := statusToError(resp.StatusCode); err != nil {
		return err
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
