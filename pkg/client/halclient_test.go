// SPDX-License-Identifier: BSD-3-Clause

package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amccaugh/fridgeos/pkg/client"
)

func TestHALClientGetTemperatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/temperatures" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		v := 12.5
		json.NewEncoder(w).Encode(map[string]*float64{"still_plate": &v, "faulty": nil})
	}))
	defer server.Close()

	c := client.NewHALClient(server.URL)
	temps, err := c.GetTemperatures(context.Background())
	if err != nil {
		t.Fatalf("GetTemperatures: %v", err)
	}
	if temps["still_plate"] == nil || *temps["still_plate"] != 12.5 {
		t.Errorf("temps[still_plate] = %v, want 12.5", temps["still_plate"])
	}
	if temps["faulty"] != nil {
		t.Errorf("temps[faulty] = %v, want nil", temps["faulty"])
	}
}

func TestHALClientGetTemperatureNullReading(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	c := client.NewHALClient(server.URL)
	if _, err := c.GetTemperature(context.Background(), "broken"); !errors.Is(err, client.ErrNullReading) {
		t.Errorf("GetTemperature() error = %v, want ErrNullReading", err)
	}
}

func TestHALClientSetHeaterValue(t *testing.T) {
	var gotBody map[string]float64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer server.Close()

	c := client.NewHALClient(server.URL)
	if err := c.SetHeaterValue(context.Background(), "still", 42.0); err != nil {
		t.Fatalf("SetHeaterValue: %v", err)
	}
	if gotBody["value"] != 42.0 {
		t.Errorf("request body value = %v, want 42.0", gotBody["value"])
	}
}

func TestHALClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := client.NewHALClient(server.URL)
	if _, err := c.GetHeaterValue(context.Background(), "nope"); !errors.Is(err, client.ErrNotFound) {
		t.Errorf("GetHeaterValue() error = %v, want ErrNotFound", err)
	}
}
