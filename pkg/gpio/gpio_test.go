// SPDX-License-Identifier: BSD-3-Clause

//go:build linux
// +build linux

package gpio

import (
	"errors"
	"testing"
)

func TestWriteLineRejectsNegativeLineNumber(t *testing.T) {
	if err := WriteLine("gpiochip0", -1, 1); !errors.Is(err, ErrInvalidLineNumber) {
		t.Errorf("err = %v, want ErrInvalidLineNumber", err)
	}
}

func TestWriteLineRejectsOutOfRangeValue(t *testing.T) {
	if err := WriteLine("gpiochip0", 0, 2); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v, want ErrInvalidValue", err)
	}
}

func TestReadLineRejectsNegativeLineNumber(t *testing.T) {
	if _, err := ReadLine("gpiochip0", -1); !errors.Is(err, ErrInvalidLineNumber) {
		t.Errorf("err = %v, want ErrInvalidLineNumber", err)
	}
}

func TestWriteLineReportsMissingChip(t *testing.T) {
	err := WriteLine("/dev/gpiochip-does-not-exist", 0, 1)
	if err == nil {
		t.Fatal("expected an error requesting a nonexistent chip")
	}
	if !errors.Is(err, ErrLineNotFound) && !errors.Is(err, ErrOperationFailed) {
		t.Errorf("err = %v, want ErrLineNotFound or ErrOperationFailed", err)
	}
}
