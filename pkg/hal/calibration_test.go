// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCalibrationCSV(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calibration.csv")
	if err := os.WriteFile(path, []byte(rows), 0o644); err != nil {
		t.Fatalf("write calibration csv: %v", err)
	}
	return path
}

func TestCalibrationTableInterpolates(t *testing.T) {
	path := writeCalibrationCSV(t, "0,0\n10,100\n20,400\n")

	table, err := LoadCalibrationTable(path)
	if err != nil {
		t.Fatalf("LoadCalibrationTable: %v", err)
	}

	cases := []struct {
		raw  float64
		want float64
	}{
		{raw: 5, want: 50},
		{raw: 0, want: 0},
		{raw: 15, want: 250},
		{raw: 20, want: 400},
	}
	for _, c := range cases {
		got := table.Convert(c.raw)
		if got != c.want {
			t.Errorf("Convert(%v) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestCalibrationTableClampsOutOfRange(t *testing.T) {
	path := writeCalibrationCSV(t, "0,32\n100,212\n")

	table, err := LoadCalibrationTable(path)
	if err != nil {
		t.Fatalf("LoadCalibrationTable: %v", err)
	}

	if got := table.Convert(-50); got != 32 {
		t.Errorf("Convert(-50) = %v, want 32 (clamped to lower endpoint)", got)
	}
	if got := table.Convert(1000); got != 212 {
		t.Errorf("Convert(1000) = %v, want 212 (clamped to upper endpoint)", got)
	}
}

func TestCalibrationTableReversesDescendingAxis(t *testing.T) {
	// raw column decreasing as temperature increases, e.g. a thermistor's
	// resistance dropping as it warms up.
	path := writeCalibrationCSV(t, "100,0\n50,50\n0,100\n")

	table, err := LoadCalibrationTable(path)
	if err != nil {
		t.Fatalf("LoadCalibrationTable: %v", err)
	}

	if got := table.Convert(75); got != 25 {
		t.Errorf("Convert(75) = %v, want 25", got)
	}
	if got := table.Convert(0); got != 100 {
		t.Errorf("Convert(0) = %v, want 100", got)
	}
}

func TestCalibrationTableRejectsTooFewPoints(t *testing.T) {
	path := writeCalibrationCSV(t, "0,0\n")

	if _, err := LoadCalibrationTable(path); err == nil {
		t.Fatal("expected error for single-row calibration table, got nil")
	}
}

func TestCalibrationTableRejectsMalformedValue(t *testing.T) {
	path := writeCalibrationCSV(t, "0,0\nabc,100\n")

	if _, err := LoadCalibrationTable(path); err == nil {
		t.Fatal("expected error for non-numeric raw value, got nil")
	}
}

func TestCalibrationCacheLoadsOnce(t *testing.T) {
	path := writeCalibrationCSV(t, "0,0\n10,100\n")

	cache := newCalibrationCache()
	first, err := cache.load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	second, err := cache.load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if first != second {
		t.Error("expected cached calibration table to be reused, got a different pointer")
	}
}
