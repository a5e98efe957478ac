package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Server.Port != 5000 {
		t.Errorf("expected port 5000, got %d", config.Server.Port)
	}
	if config.Server.Environment != "development" {
		t.Errorf("expected development environment, got %q", config.Server.Environment)
	}
	if config.Database.Path != "./playhead.db" {
		t.Errorf("unexpected database path %q", config.Database.Path)
	}
	if config.Cache.Path != "./playhead-cache.db" {
		t.Errorf("unexpected cache path %q", config.Cache.Path)
	}
	if config.Auth.TokenTTLHours != 24 {
		t.Errorf("expected 24h token TTL, got %d", config.Auth.TokenTTLHours)
	}
	if config.Limits.Quota != "60/m" || config.Limits.AuthQuota != "20/h" {
		t.Errorf("unexpected quotas %q / %q", config.Limits.Quota, config.Limits.AuthQuota)
	}
	if config.Catalog.PlayerMode != "EMBED" {
		t.Errorf("expected EMBED player mode, got %q", config.Catalog.PlayerMode)
	}
	if config.Production() {
		t.Error("default config should not be production")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses a TOML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[server]
port = 9000
environment = "production"

[auth]
token_secret = "file-secret"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.Server.Port != 9000 {
			t.Errorf("expected port 9000, got %d", config.Server.Port)
		}
		if !config.Production() {
			t.Error("expected production mode")
		}
		if config.Auth.TokenSecret != "file-secret" {
			t.Errorf("unexpected secret %q", config.Auth.TokenSecret)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid TOML errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("not [ valid"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PLAYHEAD_PORT", "8123")
	t.Setenv("PLAYHEAD_ENV", "production")
	t.Setenv("PLAYHEAD_DATABASE", "/tmp/env.db")
	t.Setenv("PLAYHEAD_CACHE", "")
	t.Setenv("PLAYHEAD_TOKEN_SECRET", "env-secret")
	t.Setenv("PLAYHEAD_RATE_LIMIT", "5/s")

	config := DefaultConfig()

	if config.Server.Port != 8123 {
		t.Errorf("expected env port 8123, got %d", config.Server.Port)
	}
	if !config.Production() {
		t.Error("expected production from env")
	}
	if config.Database.Path != "/tmp/env.db" {
		t.Errorf("expected env database path, got %q", config.Database.Path)
	}
	// Empty env values do not override.
	if config.Cache.Path != "./playhead-cache.db" {
		t.Errorf("empty env should not override, got %q", config.Cache.Path)
	}
	if config.Auth.TokenSecret != "env-secret" {
		t.Errorf("expected env secret, got %q", config.Auth.TokenSecret)
	}
	if config.Limits.Quota != "5/s" {
		t.Errorf("expected env quota, got %q", config.Limits.Quota)
	}
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("writes the template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("created config should load: %v", err)
		}
		if config.Server.Port != 5000 {
			t.Errorf("expected template port, got %d", config.Server.Port)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("# existing"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error for existing file")
		}
	})
}
