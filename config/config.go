package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Settings is the full on-disk configuration. Unset fields fall back to
// DefaultSettings when the file is loaded.
type Settings struct {
	Server       ServerSettings       `json:"server"`
	TMDB         TMDBSettings         `json:"tmdb"`
	Database     DatabaseSettings     `json:"database"`
	Mongo        MongoSettings        `json:"mongo"`
	Auth         AuthSettings         `json:"auth"`
	Connectivity ConnectivitySettings `json:"connectivity"`
	Logging      LoggingSettings      `json:"logging"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	ListenAddr string `json:"listenAddr"`
}

// TMDBSettings configures the upstream catalog client.
type TMDBSettings struct {
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
	Language string `json:"language"`
}

// DatabaseSettings configures the local movie cache.
type DatabaseSettings struct {
	Path string `json:"path"`
}

// MongoSettings configures the user-data document store.
type MongoSettings struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// AuthSettings configures token issuance.
type AuthSettings struct {
	JWTSecret   string `json:"jwtSecret"`
	TokenTTLHrs int    `json:"tokenTtlHours"`
}

// ConnectivitySettings configures the reachability probe.
type ConnectivitySettings struct {
	ProbeURL        string `json:"probeUrl"`
	IntervalSeconds int    `json:"intervalSeconds"`
}

// LoggingSettings configures the rotating log file.
type LoggingSettings struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups"`
}

// TokenTTL returns the configured token lifetime.
func (a AuthSettings) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHrs) * time.Hour
}

// ProbeInterval returns the configured probe interval.
func (c ConnectivitySettings) ProbeInterval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// DefaultSettings returns the configuration used when no file exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			ListenAddr: ":8080",
		},
		TMDB: TMDBSettings{
			BaseURL:  "https://api.themoviedb.org/3",
			Language: "en-US",
		},
		Database: DatabaseSettings{
			Path: "./data/filmora.db",
		},
		Mongo: MongoSettings{
			URI:      "mongodb://localhost:27017",
			Database: "filmora",
		},
		Auth: AuthSettings{
			TokenTTLHrs: 72,
		},
		Connectivity: ConnectivitySettings{
			ProbeURL:        "https://api.themoviedb.org/3",
			IntervalSeconds: 30,
		},
		Logging: LoggingSettings{
			Path:       "./data/filmora.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Manager loads and saves settings from a JSON file. Loads are cached;
// Save writes through and refreshes the cache.
type Manager struct {
	path string

	mu       sync.RWMutex
	settings *Settings
}

// NewManager creates a manager for the settings file at path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load returns the current settings, reading the file on first use. A
// missing file yields defaults. Environment variables override the
// secrets so they can stay out of the file:
//
//	TMDB_API_KEY       -> TMDB.APIKey
//	FILMORA_JWT_SECRET -> Auth.JWTSecret
//	FILMORA_MONGO_URI  -> Mongo.URI
func (m *Manager) Load() (*Settings, error) {
	m.mu.RLock()
	cached := m.settings
	m.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings != nil {
		return m.settings, nil
	}

	settings := DefaultSettings()

	data, err := os.ReadFile(m.path)
	switch {
	case os.IsNotExist(err):
		// First run, keep defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	default:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", err)
		}
	}

	applyEnvOverrides(settings)
	m.settings = settings
	return settings, nil
}

// Save writes the settings to disk and makes them the cached copy.
func (m *Manager) Save(settings *Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	m.settings = settings
	return nil
}

func applyEnvOverrides(settings *Settings) {
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		settings.TMDB.APIKey = v
	}
	if v := os.Getenv("FILMORA_JWT_SECRET"); v != "" {
		settings.Auth.JWTSecret = v
	}
	if v := os.Getenv("FILMORA_MONGO_URI"); v != "" {
		settings.Mongo.URI = v
	}
}
