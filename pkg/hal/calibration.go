// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// CalibrationTable holds a monotone, non-decreasing (raw, temperature) axis
// pair loaded from a two-column CSV file and provides linear-interpolated
// raw-to-temperature conversion. Values outside the loaded range clamp to
// the nearest endpoint; there is no extrapolation.
type CalibrationTable struct {
	raw  []float64
	temp []float64
}

// LoadCalibrationTable parses a CSV file of `raw,temperature` rows. If the
// raw-value column is monotonically decreasing, both columns are reversed
// in-place so the interpolation axis is non-decreasing.
func LoadCalibrationTable(path string) (*CalibrationTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCalibrationTable, path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCalibrationTable, path, err)
	}

	raw := make([]float64, 0, len(rows))
	temp := make([]float64, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		r, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: invalid raw value %q: %w", ErrCalibrationTable, path, row[0], err)
		}
		t, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: invalid temperature value %q: %w", ErrCalibrationTable, path, row[1], err)
		}
		raw = append(raw, r)
		temp = append(temp, t)
	}

	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: %s: need at least 2 points", ErrCalibrationTable, path)
	}

	if raw[0] > raw[len(raw)-1] {
		reverse(raw)
		reverse(temp)
	}

	return &CalibrationTable{raw: raw, temp: temp}, nil
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Convert maps a raw sensor reading to a physical temperature by linear
// interpolation, clamping to the nearest endpoint outside the table's range.
func (c *CalibrationTable) Convert(raw float64) float64 {
	if raw <= c.raw[0] {
		return c.temp[0]
	}
	last := len(c.raw) - 1
	if raw >= c.raw[last] {
		return c.temp[last]
	}

	for i := 0; i < last; i++ {
		if raw >= c.raw[i] && raw <= c.raw[i+1] {
			span := c.raw[i+1] - c.raw[i]
			if span == 0 {
				return c.temp[i]
			}
			frac := (raw - c.raw[i]) / span
			return c.temp[i] + frac*(c.temp[i+1]-c.temp[i])
		}
	}

	return c.temp[last]
}

// calibrationCache loads and caches calibration tables per file path so
// repeated references to the same conversion_csv in a hardware config only
// parse the file once.
type calibrationCache struct {
	mu     sync.Mutex
	tables map[string]*CalibrationTable
}

func newCalibrationCache() *calibrationCache {
	return &calibrationCache{tables: make(map[string]*CalibrationTable)}
}

func (c *calibrationCache) load(path string) (*CalibrationTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[path]; ok {
		return t, nil
	}

	t, err := LoadCalibrationTable(path)
	if err != nil {
		return nil, err
	}

	c.tables[path] = t
	return t, nil
}
