// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	enginepkg "github.com/amccaugh/fridgeos/pkg/statemachine"
)

var rootTemplate = template.Must(template.New("root").Parse(`<!DOCTYPE html>
<html><head><title>{{.FridgeName}}</title></head>
<body>
<h1>{{.FridgeName}}</h1>
<p>Current state: <b>{{.CurrentState}}</b></p>
<ul>
<li><a href="/info">/info</a></li>
<li><a href="/temperatures">/temperatures</a></li>
<li><a href="/heaters">/heaters</a></li>
<li><a href="/state">/state</a></li>
<li><a href="/statelist">/statelist</a></li>
<li><a href="/health">/health</a></li>
<li><a href="/control">/control</a></li>
<li><a href="/heater/set">/heater/set</a></li>
</ul>
</body></html>`))

func (s *Service) handleRootHTML(w http.ResponseWriter, _ *http.Request) {
	cfg := s.engine.Config()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = rootTemplate.Execute(w, map[string]any{
		"FridgeName":   cfg.FridgeName,
		"CurrentState": s.engine.CurrentState(),
	})
}

var heaterSetFormTemplate = template.Must(template.New("heaterset").Parse(`<!DOCTYPE html>
<html><head><title>Set heater</title></head>
<body>
<h1>Set heater value</h1>
{{range .Heaters}}
<form method="post" action="/heater/set">
<input type="hidden" name="heater_name" value="{{.}}">
<label>{{.}}: <input type="text" name="value"></label>
<button type="submit">Set</button>
</form>
{{end}}
</body></html>`))

func (s *Service) handleHeaterSetForm(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = heaterSetFormTemplate.Execute(w, map[string]any{"Heaters": s.engine.HeaterNames()})
}

func (s *Service) handleHeaterSetSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := r.FormValue("heater_name")
	valueStr := r.FormValue("value")
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		http.Error(w, "value must be numeric", http.StatusBadRequest)
		return
	}
	if err := s.engine.SetHeaterValueDirect(r.Context(), name, value); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body>Heater " + template.HTMLEscapeString(name) + " set to " + template.HTMLEscapeString(valueStr) + "</body></html>"))
}

var controlOpenTemplate = template.Must(template.New("controlopen").Parse(`<!DOCTYPE html>
<html><head><title>Control</title></head>
<body>
<h1>Control</h1>
{{range .States}}<p><a href="/control/{{.}}">{{.}}</a></p>{{end}}
</body></html>`))

var controlGatedTemplate = template.Must(template.New("controlgated").Parse(`<!DOCTYPE html>
<html><head><title>Control</title></head>
<body>
<h1>Control</h1>
<form method="post" action="/control/set">
<label>State:
<select name="state">
{{range .States}}<option value="{{.}}">{{.}}</option>{{end}}
</select>
</label>
<label>Password: <input type="password" name="password"></label>
<button type="submit">Transition</button>
</form>
</body></html>`))

func (s *Service) handleControlHTML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	states := s.engine.StateNames()
	if s.engine.RequiresPassword() {
		_ = controlGatedTemplate.Execute(w, map[string]any{"States": states})
		return
	}
	_ = controlOpenTemplate.Execute(w, map[string]any{"States": states})
}

func (s *Service) handleControlSet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	state := r.FormValue("state")
	password := r.FormValue("password")
	if !s.engine.ValidatePassword(&password) {
		s.metrics.authFailures.Inc()
		http.Error(w, "invalid password", http.StatusUnauthorized)
		return
	}
	if err := s.engine.MakeTransition(state); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.metrics.transitionsTotal.WithLabelValues(state).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body>Transitioned to " + template.HTMLEscapeString(state) + "</body></html>"))
}

func (s *Service) handleControlState(w http.ResponseWriter, r *http.Request) {
	if s.engine.RequiresPassword() {
		http.Error(w, "password required, use /control", http.StatusUnauthorized)
		return
	}
	state := r.PathValue("state")
	if err := s.engine.MakeTransition(state); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, enginepkg.ErrUnknownState) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	s.metrics.transitionsTotal.WithLabelValues(state).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body>Transitioned to " + template.HTMLEscapeString(state) + "</body></html>"))
}
