package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/playhead/internal/shared"
)

func TestNewRunner(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		if runner.config == nil {
			t.Error("expected default config")
		}
		if runner.logger == nil {
			t.Error("expected default logger")
		}
		if runner.output != os.Stdout {
			t.Error("expected stdout output")
		}
		if runner.httpClient == nil {
			t.Error("expected default http client")
		}
	})

	t.Run("keeps provided options", func(t *testing.T) {
		var buf bytes.Buffer
		config := shared.DefaultConfig()
		config.Server.Port = 9999

		runner := NewRunner(RunnerOpts{Config: config, Output: &buf})

		if runner.config.Server.Port != 9999 {
			t.Errorf("expected configured port, got %d", runner.config.Server.Port)
		}
		if runner.output != &buf {
			t.Error("expected provided output writer")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	runner := NewRunner(RunnerOpts{})

	t.Run("reads an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[server]\nport = 7777\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config := runner.loadConfig(path)
		if config.Server.Port != 7777 {
			t.Errorf("expected port 7777, got %d", config.Server.Port)
		}
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		config := runner.loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		if config.Server.Port != 5000 {
			t.Errorf("expected default port, got %d", config.Server.Port)
		}
	})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(RunnerOpts{Output: &buf})

	if err := runner.writeJSON(map[string]string{"status": "ok"}, false); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"status":"ok"}` {
		t.Errorf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	if err := runner.writeJSON(map[string]string{"status": "ok"}, true); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("expected indented output: %q", buf.String())
	}
}
