package shared

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed settings.example.toml
var exampleSettings []byte

// ExampleServerConfig is the shape expected at the server config path,
// shown to the user when the file is missing.
const ExampleServerConfig = `{"Host": "http://your-server:8096", "UserId": "your-user-id", "AuthKey": "your-api-key"}`

// ServerConfig holds the media server connection details loaded from the JSON
// config file. Immutable after load.
type ServerConfig struct {
	Host     string `json:"Host"`
	UserID   string `json:"UserId"`
	AuthKey  string `json:"AuthKey"`
	DeviceID string `json:"DeviceId,omitempty"`
}

// DefaultServerConfigPath returns the per-user config location,
// ~/.config/jellycli.conf.
func DefaultServerConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "jellycli.conf"), nil
}

// LoadServerConfig reads and parses the JSON server config at path.
//
// The Host value is normalized by stripping any trailing slashes. A missing
// file yields [ErrMissingConfig]; unparsable JSON or missing required keys
// yield [ErrInvalidConfig]. A missing DeviceId is filled with a generated id.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ServerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	config.Host = strings.TrimRight(config.Host, "/")

	if config.Host == "" || config.UserID == "" || config.AuthKey == "" {
		return nil, fmt.Errorf("%w: Host, UserId and AuthKey are required", ErrInvalidConfig)
	}

	if config.DeviceID == "" {
		config.DeviceID = GenerateID()
	}

	return &config, nil
}

// Settings represents optional application settings loaded from a TOML file.
type Settings struct {
	Player PlayerSettings `toml:"player"`
	Log    LogSettings    `toml:"log"`
}

// PlayerSettings configures the external player invocation. Args entries may
// contain {url} and {title} placeholders.
type PlayerSettings struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// LogSettings configures diagnostic output.
type LogSettings struct {
	Level string `toml:"level"`
}

// DefaultSettingsPath returns the per-user settings location,
// ~/.config/jellycli/settings.toml.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "jellycli", "settings.toml"), nil
}

// LoadSettings reads and parses a TOML settings file from the specified path.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &settings, nil
}

// DefaultSettings returns a Settings with sensible defaults loaded from the embedded example file.
func DefaultSettings() *Settings {
	var settings Settings
	if err := toml.Unmarshal(exampleSettings, &settings); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default settings: %v", err))
	}
	return &settings
}

// CreateSettingsFile creates a settings.toml file at the specified path using the embedded example file.
func CreateSettingsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, exampleSettings, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
