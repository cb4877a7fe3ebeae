// SPDX-License-Identifier: BSD-3-Clause

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewSupervisionLoggerEmitsDebugRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	oversightLog := NewSupervisionLogger(logger)
	oversightLog("child ", "restarted")

	out := buf.String()
	if !strings.Contains(out, "child restarted") {
		t.Errorf("output = %q, want it to contain %q", out, "child restarted")
	}
	if !strings.Contains(out, "component=oversight") {
		t.Errorf("output = %q, want component=oversight attribute", out)
	}
	if !strings.Contains(out, "level=DEBUG") {
		t.Errorf("output = %q, want level=DEBUG", out)
	}
}
