// SPDX-License-Identifier: BSD-3-Clause

package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogzerolog "github.com/samber/slog-zerolog/v2"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
)

// NewDefaultLogger creates a structured logger that writes human-readable
// console output and forwards the same records to the global OpenTelemetry
// logger provider. It does not write to disk; use NewComponentLogger for a
// logger that also rotates log files for a named subsystem such as "HAL" or
// "statemachine".
func NewDefaultLogger() *slog.Logger {
	zeroLogger := zerolog.
		New(zerolog.NewConsoleWriter()).
		With().
		Timestamp().
		Logger()

	provider := global.GetLoggerProvider()

	otelHandler := otelslog.NewHandler("fridgeos", otelslog.WithLoggerProvider(provider))
	return slog.New(slogmulti.Fanout(
		slogzerolog.Option{Level: slog.LevelDebug, Logger: &zeroLogger}.NewZerologHandler(),
		otelHandler,
	))
}

// GetGlobalLogger returns a structured logger configured for global application use.
// It behaves identically to NewDefaultLogger; callers use whichever name reads
// better at the call site.
func GetGlobalLogger() *slog.Logger {
	return NewDefaultLogger()
}

// ComponentConfig configures a named, rotated multi-sink logger for a single
// FridgeOS component (the HAL server or the state machine server each run
// their own instance). When LogDir is empty no files are written; records
// then go only to the console (Info and above) and to OpenTelemetry.
type ComponentConfig struct {
	// Name identifies the component in log file names, e.g. "hal" or "statemachine".
	Name string
	// LogDir is the directory rotated log files are written under. Created if missing.
	LogDir string
	// Debug enables the separate debug-level rotated file sink.
	Debug bool
	// MaxSizeMB is the size in megabytes a rotated file grows to before rotating.
	// Defaults to 10 when zero.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept. Defaults to 5 when zero.
	MaxBackups int
}

// NewComponentLogger builds a fanned-out logger for one FridgeOS component,
// mirroring the three-sink layout of the original server processes: an
// info-level rotated file, a debug-level rotated file (only when Debug is
// set), and an error-level rotated file, plus a console writer and the
// OpenTelemetry bridge. Each sink is an independently rotated file so an
// operator can tail just the errors without the noise of the full log.
func NewComponentLogger(cfg ComponentConfig) (*slog.Logger, error) {
	name := strings.ToLower(cfg.Name)
	if name == "" {
		name = "fridgeos"
	}
	maxSize := cfg.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := cfg.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	zeroLogger := zerolog.
		New(zerolog.NewConsoleWriter()).
		With().
		Timestamp().
		Logger()
	handlers := []slog.Handler{
		slogzerolog.Option{Level: slog.LevelInfo, Logger: &zeroLogger}.NewZerologHandler(),
	}

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return nil, ErrLogDirectory
		}

		infoSink := rotatedSink(cfg.LogDir, name, "info", maxSize, maxBackups)
		errSink := rotatedSink(cfg.LogDir, name, "errors", maxSize, maxBackups)
		handlers = append(handlers,
			slogzerolog.Option{Level: slog.LevelInfo, Logger: &infoSink}.NewZerologHandler(),
			slogzerolog.Option{Level: slog.LevelError, Logger: &errSink}.NewZerologHandler(),
		)

		if cfg.Debug {
			debugSink := rotatedSink(cfg.LogDir, name, "debug", maxSize, maxBackups)
			handlers = append(handlers,
				slogzerolog.Option{Level: slog.LevelDebug, Logger: &debugSink}.NewZerologHandler(),
			)
		}
	}

	provider := global.GetLoggerProvider()
	handlers = append(handlers, otelslog.NewHandler("fridgeos-"+name, otelslog.WithLoggerProvider(provider)))

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// rotatedSink builds a zerolog.Logger writing JSON lines into a size-rotated
// file named "<name>-<suffix>.log" under dir.
func rotatedSink(dir, name, suffix string, maxSizeMB, maxBackups int) zerolog.Logger {
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+"-"+suffix+".log"),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   false,
	}
	return zerolog.New(writer).With().Timestamp().Logger()
}
