// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/amccaugh/fridgeos/pkg/hal"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func (s *Service) setupRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /temperatures", s.handleGetTemperatures)
	mux.HandleFunc("GET /temperature/{name}", s.handleGetTemperature)
	mux.HandleFunc("GET /heaters/values", s.handleGetHeaterValues)
	mux.HandleFunc("GET /heater/{name}/value", s.handleGetHeaterValue)
	mux.HandleFunc("PUT /heater/{name}/value", s.handleSetHeaterValue)
	mux.HandleFunc("GET /heaters/max_values", s.handleGetHeaterMaxValues)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	corsMiddleware := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
	})
	handler := corsMiddleware.Handler(mux)
	return otelhttp.NewHandler(handler, s.name)
}

func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":          s.name,
		"version":          "1.0.0",
		"temperatures":     s.hal.GetTemperatures(r.Context()),
		"heater_values":    mustHeaterValues(r, s.hal),
		"heater_max_values": s.hal.GetHeaterMaxValues(),
	})
}

func mustHeaterValues(r *http.Request, h *hal.HAL) map[string]float64 {
	v, err := h.GetHeaterValues(r.Context())
	if err != nil {
		return map[string]float64{}
	}
	return v
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

func (s *Service) handleGetTemperatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.hal.GetTemperatures(r.Context()))
}

func (s *Service) handleGetTemperature(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	value, err := s.hal.GetTemperature(r.Context(), name)
	if err != nil {
		s.metrics.driverErrors.WithLabelValues(name, "read_temperature").Inc()
		writeError(w, err)
		return
	}
	s.metrics.temperatureReads.WithLabelValues(name).Inc()
	if value == nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": "null reading", "name": name})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"value": *value})
}

func (s *Service) handleGetHeaterValues(w http.ResponseWriter, r *http.Request) {
	values, err := s.hal.GetHeaterValues(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

func (s *Service) handleGetHeaterValue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	value, err := s.hal.GetHeaterValue(r.Context(), name)
	if err != nil {
		s.metrics.driverErrors.WithLabelValues(name, "read_heater").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"value": value})
}

func (s *Service) handleSetHeaterValue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var body struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "invalid body"})
		return
	}
	if err := s.hal.SetHeaterValue(r.Context(), name, body.Value); err != nil {
		s.metrics.driverErrors.WithLabelValues(name, "write_heater").Inc()
		writeError(w, err)
		return
	}
	s.metrics.heaterWrites.WithLabelValues(name).Inc()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Service) handleGetHeaterMaxValues(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.hal.GetHeaterMaxValues())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case isNotFound(err):
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, hal.ErrNotFound)
}
