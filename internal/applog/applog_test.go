package applog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, closeFn, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("flow regime changed", "direction", "southward")
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `"direction":"southward"`) {
		t.Errorf("log = %s, want JSON attribute", data)
	}
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := Open("")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if logger == nil || closeFn == nil {
		t.Fatal("Open() should return a usable logger and close func")
	}
	logger.Info("dropped")
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}
}
