// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statemachine.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigResolvesConstantsAndOrder(t *testing.T) {
	body := `
[constants]
SETPOINT_HOT = 300.0
SETPOINT_COLD = 4.2

[settings]
fridge_name = "test fridge"
polling_interval = 2.5
state_change_password = "hunter2"

[heaters.still]
pid_coefficients = { P = 1.0, I = 0.1, D = 0.01, max_value = 10.0 }
corresponding_thermometer = "still_plate"

[heaters.switch]

[states.WARM]
still_plate = "SETPOINT_HOT"
switch = 1.0

[states.COLD]
still_plate = "SETPOINT_COLD"
switch = 0.0

[[transitions]]
from = "WARM"
to = "COLD"
criteria = ["still_plate < SETPOINT_COLD"]
max_seconds = 120.0

[[transitions]]
from = ["COLD", "WARM"]
to = "WARM"
criteria = ["still_plate > SETPOINT_HOT"]
`
	path := writeTestConfig(t, body)

	cfg, err := LoadConfig(path, 5*time.Second)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.InitialState != "WARM" {
		t.Errorf("InitialState = %q, want WARM (first declared)", cfg.InitialState)
	}
	if got, want := cfg.StateOrder, []string{"WARM", "COLD", "PAUSED"}; !equalSlices(got, want) {
		t.Errorf("StateOrder = %v, want %v", got, want)
	}
	if cfg.PollingInterval != 2500*time.Millisecond {
		t.Errorf("PollingInterval = %v, want 2.5s", cfg.PollingInterval)
	}
	if cfg.StateChangePassword != "hunter2" {
		t.Errorf("StateChangePassword = %q, want hunter2", cfg.StateChangePassword)
	}
	if cfg.States["WARM"]["still_plate"] != 300.0 {
		t.Errorf("WARM.still_plate = %v, want 300.0 (resolved constant)", cfg.States["WARM"]["still_plate"])
	}
	if cfg.States["PAUSED"] == nil || len(cfg.States["PAUSED"]) != 0 {
		t.Errorf("PAUSED state should be synthesized with empty targets, got %v", cfg.States["PAUSED"])
	}

	still := cfg.Heaters["still"]
	if !still.PID || still.CorrespondingThermometer != "still_plate" || still.MaxValue != 10.0 {
		t.Errorf("still heater = %+v, want PID heater on still_plate with max 10.0", still)
	}
	sw := cfg.Heaters["switch"]
	if sw.PID {
		t.Errorf("switch heater should be direct, got PID=%v", sw.PID)
	}

	key := stateTransitionKey{From: "WARM", To: "COLD"}
	if cfg.StateTimeouts[key] != 120*time.Second {
		t.Errorf("StateTimeouts[WARM->COLD] = %v, want 120s", cfg.StateTimeouts[key])
	}

	if len(cfg.Transitions) != 2 {
		t.Fatalf("len(Transitions) = %d, want 2", len(cfg.Transitions))
	}
	second := cfg.Transitions[1]
	if !equalSlices(second.From, []string{"COLD", "WARM"}) {
		t.Errorf("second transition From = %v, want [COLD WARM]", second.From)
	}
	if second.Criteria[0].Sensor != "still_plate" || second.Criteria[0].Op != OpGreater || second.Criteria[0].Value != 300.0 {
		t.Errorf("second transition criterion = %+v, want still_plate > 300.0", second.Criteria[0])
	}
}

func TestLoadConfigRejectsUnresolvedConstant(t *testing.T) {
	body := `
[settings]
fridge_name = "test fridge"

[heaters.switch]

[states.ON]
switch = "NOT_A_CONSTANT"
`
	path := writeTestConfig(t, body)
	if _, err := LoadConfig(path, time.Second); err == nil {
		t.Fatal("expected error for unresolved constant reference, got nil")
	}
}

func TestLoadConfigRejectsMalformedCriterion(t *testing.T) {
	body := `
[settings]
fridge_name = "test fridge"

[heaters.switch]

[states.ON]
switch = 1.0

[states.OFF]
switch = 0.0

[[transitions]]
from = "ON"
to = "OFF"
criteria = ["switch equals 1"]
`
	path := writeTestConfig(t, body)
	if _, err := LoadConfig(path, time.Second); err == nil {
		t.Fatal("expected error for malformed criterion, got nil")
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
