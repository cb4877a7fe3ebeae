// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	enginepkg "github.com/amccaugh/fridgeos/pkg/statemachine"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func (s *Service) setupRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleRootHTML)
	mux.HandleFunc("GET /info", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /state", s.handleGetState)
	mux.HandleFunc("PUT /state", s.handlePutState)
	mux.HandleFunc("GET /statelist", s.handleStateList)
	mux.HandleFunc("GET /temperatures", s.handleTemperatures)
	mux.HandleFunc("GET /heaters", s.handleHeaters)
	mux.HandleFunc("POST /pause", s.handlePause)
	mux.HandleFunc("POST /resume", s.handleResume)
	mux.HandleFunc("GET /heater/set", s.handleHeaterSetForm)
	mux.HandleFunc("POST /heater/set", s.handleHeaterSetSubmit)
	mux.HandleFunc("GET /control", s.handleControlHTML)
	mux.HandleFunc("POST /control/set", s.handleControlSet)
	mux.HandleFunc("GET /control/{state}", s.handleControlState)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	corsMiddleware := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions},
	})
	handler := corsMiddleware.Handler(mux)
	return otelhttp.NewHandler(handler, s.name)
}

func (s *Service) handleInfo(w http.ResponseWriter, r *http.Request) {
	snap := s.engine.Snapshot()
	now := time.Now()
	writeJSON(w, http.StatusOK, map[string]any{
		"service":                          s.name,
		"version":                          "1.0.0",
		"current_state":                    snap.CurrentState,
		"available_states":                 s.engine.StateNames(),
		"state_entry_time":                 snap.StateEntryTime.Unix(),
		"time_in_current_state":            round1(now.Sub(snap.StateEntryTime).Seconds()),
		"current_temperatures":             snap.CurrentTemperatures,
		"current_heater_values":            snap.CurrentHeaterValues,
		"current_state_target_temperatures": snap.CurrentStateTargets,
		"last_temperature_update":          round1(now.Sub(snap.LastTemperatureUpdate).Seconds()),
		"last_temperature_update_datetime":  snap.LastTemperatureUpdate.Format("2006-01-02 15:04:05"),
		"update_num":                       snap.UpdateNum,
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

func (s *Service) handleGetState(w http.ResponseWriter, _ *http.Request) {
	snap := s.engine.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"current_state":          snap.CurrentState,
		"state_entry_time":       snap.StateEntryTime.Unix(),
		"time_in_current_state":  round1(time.Since(snap.StateEntryTime).Seconds()),
	})
}

type stateChangeRequest struct {
	State    string  `json:"state"`
	Password *string `json:"password"`
}

func (s *Service) handlePutState(w http.ResponseWriter, r *http.Request) {
	var req stateChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "invalid body"})
		return
	}
	if !s.engine.ValidatePassword(req.Password) {
		s.metrics.authFailures.Inc()
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "invalid password"})
		return
	}
	if err := s.engine.MakeTransition(req.State); err != nil {
		if errors.Is(err, enginepkg.ErrUnknownState) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"detail":       "unknown state",
				"valid_states": s.engine.StateNames(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
		return
	}
	s.metrics.transitionsTotal.WithLabelValues(req.State).Inc()
	snap := s.engine.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"message":          "transitioned to " + req.State,
		"new_state":        snap.CurrentState,
		"state_entry_time": snap.StateEntryTime.Unix(),
	})
}

func (s *Service) handleStateList(w http.ResponseWriter, _ *http.Request) {
	states := map[string]map[string]float64{}
	for _, name := range s.engine.StateNames() {
		targets, _ := s.engine.StateTargets(name)
		states[name] = targets
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"available_states":    s.engine.StateNames(),
		"state_configurations": states,
	})
}

func (s *Service) handleTemperatures(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Snapshot().CurrentTemperatures)
}

func (s *Service) handleHeaters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Snapshot().CurrentHeaterValues)
}

func (s *Service) handlePause(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.PauseSystem(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "system paused",
		"current_state": s.engine.CurrentState(),
	})
}

func (s *Service) handleResume(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetState string `json:"target_state"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := s.engine.ResumeSystem(req.TargetState); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "system resumed",
		"current_state": s.engine.CurrentState(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
