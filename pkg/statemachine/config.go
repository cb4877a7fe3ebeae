// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the fully resolved form of a state machine TOML document:
// constants substituted into states and criteria, transitions normalized to
// a uniform from-list, and a synthetic PAUSED state present.
type Config struct {
	FridgeName           string
	PollingInterval      time.Duration
	StateChangePassword  string // empty means no password required
	Heaters              map[string]HeaterConfig
	States               map[string]map[string]float64
	StateOrder           []string
	Transitions          []Transition
	StateTimeouts        map[stateTransitionKey]time.Duration
	InitialState         string
}

type stateTransitionKey struct {
	From string
	To   string
}

// HeaterConfig describes one configured heater: either PID-controlled
// against a named thermometer, or a direct-value heater whose output is
// whatever the active state (or a live override) latches.
type HeaterConfig struct {
	PID                      bool
	CorrespondingThermometer string
	P, I, D                  float64
	MaxValue                 float64
}

// CriterionOp is the comparison operator in a transition criterion.
type CriterionOp int

const (
	OpLess CriterionOp = iota
	OpGreater
)

// Criterion is a single parsed "sensor op value" transition condition.
type Criterion struct {
	Sensor string
	Op     CriterionOp
	Value  float64
}

// Transition is one parsed [[transitions]] entry, with "from" always
// normalized to a slice even when the TOML declared a single string.
type Transition struct {
	From     []string
	To       string
	Criteria []Criterion
}

type rawConfig struct {
	Constants   map[string]toml.Primitive            `toml:"constants"`
	Settings    rawSettings                           `toml:"settings"`
	Heaters     map[string]rawHeater                  `toml:"heaters"`
	States      map[string]map[string]toml.Primitive  `toml:"states"`
	Transitions []rawTransition                        `toml:"transitions"`
}

type rawSettings struct {
	FridgeName          string   `toml:"fridge_name"`
	PollingInterval     float64  `toml:"polling_interval"`
	StateChangePassword *string  `toml:"state_change_password"`
}

type rawHeater struct {
	PIDCoefficients          *rawPID `toml:"pid_coefficients"`
	CorrespondingThermometer string  `toml:"corresponding_thermometer"`
}

type rawPID struct {
	P        float64 `toml:"P"`
	I        float64 `toml:"I"`
	D        float64 `toml:"D"`
	MaxValue float64 `toml:"max_value"`
}

type rawTransition struct {
	From       any      `toml:"from"`
	To         string   `toml:"to"`
	Criteria   []string `toml:"criteria"`
	MaxSeconds *float64 `toml:"max_seconds"`
}

// LoadConfig parses and fully resolves a state machine TOML document at
// path. defaultPollingInterval is used unless overridden by
// [settings].polling_interval.
func LoadConfig(path string, defaultPollingInterval time.Duration) (*Config, error) {
	var raw rawConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigMalformed, path, err)
	}

	constants, err := decodeConstants(md, raw.Constants)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		FridgeName:      "FridgeOS",
		PollingInterval: defaultPollingInterval,
		Heaters:         map[string]HeaterConfig{},
		States:          map[string]map[string]float64{},
		StateTimeouts:   map[stateTransitionKey]time.Duration{},
	}
	if raw.Settings.FridgeName != "" {
		cfg.FridgeName = raw.Settings.FridgeName
	}
	if raw.Settings.PollingInterval > 0 {
		cfg.PollingInterval = time.Duration(raw.Settings.PollingInterval * float64(time.Second))
	}
	if raw.Settings.StateChangePassword != nil {
		cfg.StateChangePassword = *raw.Settings.StateChangePassword
	}

	for name, rh := range raw.Heaters {
		if rh.PIDCoefficients != nil {
			cfg.Heaters[name] = HeaterConfig{
				PID:                      true,
				CorrespondingThermometer: rh.CorrespondingThermometer,
				P:                        rh.PIDCoefficients.P,
				I:                        rh.PIDCoefficients.I,
				D:                        rh.PIDCoefficients.D,
				MaxValue:                 rh.PIDCoefficients.MaxValue,
			}
		} else {
			cfg.Heaters[name] = HeaterConfig{PID: false}
		}
	}

	// Go maps don't preserve the TOML document's declaration order, but the
	// first declared state is the initial one and the declaration order
	// also picks the default resume target, so recover it from the
	// decoder's key trace rather than from raw.States's iteration order.
	stateOrder := make([]string, 0, len(raw.States))
	seenState := map[string]bool{}
	for _, k := range md.Keys() {
		if len(k) >= 2 && k[0] == "states" && !seenState[k[1]] {
			stateOrder = append(stateOrder, k[1])
			seenState[k[1]] = true
		}
	}
	for _, name := range stateOrder {
		targets := map[string]float64{}
		for key, prim := range raw.States[name] {
			v, err := decodeNumericOrConstant(md, prim, constants)
			if err != nil {
				return nil, fmt.Errorf("state %q target %q: %w", name, key, err)
			}
			targets[key] = v
		}
		cfg.States[name] = targets
	}
	if _, ok := cfg.States["PAUSED"]; !ok {
		cfg.States["PAUSED"] = map[string]float64{}
		stateOrder = append(stateOrder, "PAUSED")
	}
	cfg.StateOrder = stateOrder

	for _, rt := range raw.Transitions {
		var from []string
		switch v := rt.From.(type) {
		case string:
			from = []string{v}
		case []any:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%w: transition \"from\" entry is not a string", ErrConfigMalformed)
				}
				from = append(from, s)
			}
		default:
			return nil, fmt.Errorf("%w: transition \"from\" must be a string or list of strings", ErrConfigMalformed)
		}

		criteria := make([]Criterion, 0, len(rt.Criteria))
		for _, c := range rt.Criteria {
			parsed, err := parseCriterion(c, constants)
			if err != nil {
				return nil, err
			}
			criteria = append(criteria, parsed)
		}

		cfg.Transitions = append(cfg.Transitions, Transition{
			From:     from,
			To:       rt.To,
			Criteria: criteria,
		})

		if rt.MaxSeconds != nil {
			d := time.Duration(*rt.MaxSeconds * float64(time.Second))
			for _, f := range from {
				cfg.StateTimeouts[stateTransitionKey{From: f, To: rt.To}] = d
			}
		}
	}

	if len(cfg.StateOrder) == 0 {
		return nil, fmt.Errorf("%w: no states declared", ErrConfigMalformed)
	}
	cfg.InitialState = cfg.StateOrder[0]

	return cfg, nil
}

func decodeConstants(md toml.MetaData, raw map[string]toml.Primitive) (map[string]float64, error) {
	constants := make(map[string]float64, len(raw))
	for name, prim := range raw {
		var f float64
		if err := md.PrimitiveDecode(prim, &f); err == nil {
			constants[name] = f
			continue
		}
		var i int64
		if err := md.PrimitiveDecode(prim, &i); err == nil {
			constants[name] = float64(i)
			continue
		}
		return nil, fmt.Errorf("%w: constant %q is not numeric", ErrConfigMalformed, name)
	}
	return constants, nil
}

// decodeNumericOrConstant resolves a state target value that is either a
// bare number or a string token referencing a declared constant.
func decodeNumericOrConstant(md toml.MetaData, prim toml.Primitive, constants map[string]float64) (float64, error) {
	var f float64
	if err := md.PrimitiveDecode(prim, &f); err == nil {
		return f, nil
	}
	var i int64
	if err := md.PrimitiveDecode(prim, &i); err == nil {
		return float64(i), nil
	}
	var s string
	if err := md.PrimitiveDecode(prim, &s); err == nil {
		if v, ok := constants[s]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedConstant, s)
	}
	return 0, fmt.Errorf("%w: value is neither numeric nor a known constant", ErrConfigMalformed)
}

func parseCriterion(raw string, constants map[string]float64) (Criterion, error) {
	parts := strings.Fields(raw)
	if len(parts) != 3 {
		return Criterion{}, fmt.Errorf("%w: %q", ErrInvalidCriterion, raw)
	}
	sensor, opStr, valueStr := parts[0], parts[1], parts[2]

	var op CriterionOp
	switch opStr {
	case "<":
		op = OpLess
	case ">":
		op = OpGreater
	default:
		return Criterion{}, fmt.Errorf("%w: %q", ErrInvalidCriterion, raw)
	}

	value, ok := constants[valueStr]
	if !ok {
		v, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return Criterion{}, fmt.Errorf("%w: %q", ErrUnresolvedConstant, valueStr)
		}
		value = v
	}

	return Criterion{Sensor: sensor, Op: op, Value: value}, nil
}
