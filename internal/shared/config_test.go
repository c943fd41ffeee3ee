package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestServerConfig(t *testing.T) {
	t.Run("LoadServerConfig", func(t *testing.T) {
		t.Run("Valid Config", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "jellycli.conf")

			content := `{"Host": "http://srv:8096", "UserId": "u1", "AuthKey": "k1"}`
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadServerConfig(configPath)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.Host != "http://srv:8096" {
				t.Errorf("expected host http://srv:8096, got %s", config.Host)
			}
			if config.UserID != "u1" {
				t.Errorf("expected user id u1, got %s", config.UserID)
			}
			if config.AuthKey != "k1" {
				t.Errorf("expected auth key k1, got %s", config.AuthKey)
			}
		})

		t.Run("Trailing Slash Stripped From Host", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "jellycli.conf")

			content := `{"Host": "http://srv:8096/", "UserId": "u1", "AuthKey": "k1"}`
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadServerConfig(configPath)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.Host != "http://srv:8096" {
				t.Errorf("expected normalized host http://srv:8096, got %s", config.Host)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			_, err := LoadServerConfig(filepath.Join(t.TempDir(), "nope.conf"))
			if !errors.Is(err, ErrMissingConfig) {
				t.Errorf("expected ErrMissingConfig, got %v", err)
			}
		})

		t.Run("Malformed JSON", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "jellycli.conf")

			if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			_, err := LoadServerConfig(configPath)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("Missing Required Keys", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "jellycli.conf")

			if err := os.WriteFile(configPath, []byte(`{"Host": "http://srv:8096"}`), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			_, err := LoadServerConfig(configPath)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("Generated DeviceId", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "jellycli.conf")

			content := `{"Host": "http://srv:8096", "UserId": "u1", "AuthKey": "k1"}`
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadServerConfig(configPath)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.DeviceID == "" {
				t.Error("expected a generated device id")
			}
		})

		t.Run("Explicit DeviceId Preserved", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "jellycli.conf")

			content := `{"Host": "http://srv:8096", "UserId": "u1", "AuthKey": "k1", "DeviceId": "dev-7"}`
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadServerConfig(configPath)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.DeviceID != "dev-7" {
				t.Errorf("expected device id dev-7, got %s", config.DeviceID)
			}
		})
	})
}

func TestSettings(t *testing.T) {
	t.Run("DefaultSettings", func(t *testing.T) {
		settings := DefaultSettings()

		if settings.Player.Command != "vlc" {
			t.Errorf("expected player command vlc, got %s", settings.Player.Command)
		}
		if len(settings.Player.Args) == 0 {
			t.Error("expected default player args")
		}
		if settings.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", settings.Log.Level)
		}
	})

	t.Run("CreateSettingsFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		settingsPath := filepath.Join(tmpDir, "jellycli", "settings.toml")

		if err := CreateSettingsFile(settingsPath); err != nil {
			t.Fatalf("failed to create settings file: %v", err)
		}

		settings, err := LoadSettings(settingsPath)
		if err != nil {
			t.Fatalf("failed to load created settings: %v", err)
		}

		defaults := DefaultSettings()
		if settings.Player.Command != defaults.Player.Command {
			t.Error("created settings player command doesn't match default")
		}

		if err := CreateSettingsFile(settingsPath); err == nil {
			t.Error("creating settings file again should fail")
		}
	})

	t.Run("LoadSettings", func(t *testing.T) {
		tmpDir := t.TempDir()
		settingsPath := filepath.Join(tmpDir, "settings.toml")

		testSettings := `[player]
command = "mpv"
args = ["{url}", "--title={title}"]

[log]
level = "debug"
`
		if err := os.WriteFile(settingsPath, []byte(testSettings), 0644); err != nil {
			t.Fatalf("failed to write settings: %v", err)
		}

		settings, err := LoadSettings(settingsPath)
		if err != nil {
			t.Fatalf("failed to load settings: %v", err)
		}
		if settings.Player.Command != "mpv" {
			t.Errorf("expected player command mpv, got %s", settings.Player.Command)
		}
		if len(settings.Player.Args) != 2 {
			t.Errorf("expected 2 player args, got %d", len(settings.Player.Args))
		}
		if settings.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", settings.Log.Level)
		}
	})

	t.Run("LoadSettings Missing File", func(t *testing.T) {
		if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing settings file")
		}
	})
}
