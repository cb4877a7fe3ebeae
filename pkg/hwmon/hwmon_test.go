// SPDX-License-Identifier: BSD-3-Clause

package hwmon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attr")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writeFixture: %v", err)
	}
	return path
}

func TestReadAttrParsesInteger(t *testing.T) {
	path := writeFixture(t, "23500\n")

	v, err := ReadAttr(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadAttr: %v", err)
	}
	if v != 23500 {
		t.Errorf("v = %d, want 23500", v)
	}
}

func TestReadAttrRejectsEmptyPath(t *testing.T) {
	if _, err := ReadAttr(context.Background(), ""); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("err = %v, want ErrInvalidPath", err)
	}
}

func TestReadAttrMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	if _, err := ReadAttr(context.Background(), path); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}
}

func TestReadAttrMalformedContents(t *testing.T) {
	path := writeFixture(t, "not-a-number")

	if _, err := ReadAttr(context.Background(), path); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v, want ErrInvalidValue", err)
	}
}

func TestWriteAttrThenReadAttrRoundTrips(t *testing.T) {
	path := writeFixture(t, "0")

	if err := WriteAttr(context.Background(), path, 128); err != nil {
		t.Fatalf("WriteAttr: %v", err)
	}
	v, err := ReadAttr(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadAttr: %v", err)
	}
	if v != 128 {
		t.Errorf("v = %d, want 128", v)
	}
}

func TestWriteAttrRejectsEmptyPath(t *testing.T) {
	if err := WriteAttr(context.Background(), "", 1); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("err = %v, want ErrInvalidPath", err)
	}
}

func TestReadAttrHonorsCanceledContext(t *testing.T) {
	path := writeFixture(t, "1000")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ReadAttr(ctx, path); err != nil && !errors.Is(err, ErrOperationTimeout) {
		t.Errorf("err = %v, want nil or ErrOperationTimeout", err)
	}
}
