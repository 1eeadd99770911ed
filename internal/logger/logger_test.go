package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathPrefersLogFileEnv(t *testing.T) {
	t.Setenv("SEVENGUIS_LOG_FILE", "/tmp/x.log")
	t.Setenv("SEVENGUIS_CONFIG_HOME", "/tmp/cfg")
	got, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if got != "/tmp/x.log" {
		t.Fatalf("Path = %q, want %q", got, "/tmp/x.log")
	}
}

func TestPathUsesConfigHome(t *testing.T) {
	t.Setenv("SEVENGUIS_LOG_FILE", "")
	t.Setenv("SEVENGUIS_CONFIG_HOME", "/tmp/cfg")
	got, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if want := filepath.Join("/tmp/cfg", "sevenguis.log"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.log")
	t.Setenv("SEVENGUIS_LOG_FILE", path)
	if err := Init(true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debug("field action", "action", "paste")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "logger initialized") || !strings.Contains(text, "field action") {
		t.Fatalf("log missing entries:\n%s", text)
	}
	if !strings.Contains(text, "DEBUG") {
		t.Fatalf("log missing debug level:\n%s", text)
	}
}

func TestHelpersSafeWithNop(t *testing.T) {
	Nop()
	Info("ignored", "k", 1)
	Warn("ignored")
	Error("ignored")
	Close()
}
