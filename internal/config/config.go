package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"vanta/internal/domain"
)

// EnvPath names the environment variable holding the config path
const EnvPath = "VANTA_CONFIG"

// LocalPath is the config file looked up in the working directory
const LocalPath = "vanta.toml"

//go:embed config.example.toml
var exampleConf []byte

// Config is the application configuration loaded from a TOML file
type Config struct {
	Log         LogConfig         `toml:"log"`
	UI          UIConfig          `toml:"ui"`
	Player      PlayerConfig      `toml:"player"`
	Suggestions SuggestionsConfig `toml:"suggestions"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// UIConfig controls the terminal UI
type UIConfig struct {
	ViewMode  string `toml:"view_mode"`
	AltScreen bool   `toml:"alt_screen"`
}

// PlayerConfig holds the starting transport values
type PlayerConfig struct {
	Volume   int `toml:"volume"`
	Progress int `toml:"progress"`
}

// SuggestionsConfig overrides the canned suggestion lists. Empty lists keep
// the built-in candidates.
type SuggestionsConfig struct {
	Names []string `toml:"names"`
	Ideas []string `toml:"ideas"`
}

// DefaultConfig returns the configuration of the embedded example file
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Path returns the config file to use: $VANTA_CONFIG, else ./vanta.toml when
// it exists. An empty result means the defaults apply.
func Path() string {
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	if _, err := os.Stat(LocalPath); err == nil {
		return LocalPath
	}
	return ""
}

// Resolve loads the file named by explicit, falling back to Path and then to
// the defaults
func Resolve(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = Path()
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// CreateConfigFile writes the embedded example config to path
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the values that have a closed set of options
func (c *Config) Validate() error {
	if level := strings.TrimSpace(c.Log.Level); level != "" {
		if _, err := log.ParseLevel(level); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	if _, err := domain.ParseViewMode(c.UI.ViewMode); err != nil {
		return fmt.Errorf("invalid view_mode: %w", err)
	}
	if c.Player.Volume < 0 || c.Player.Volume > 100 {
		return fmt.Errorf("invalid player volume: expected 0-100, got: %d", c.Player.Volume)
	}
	if c.Player.Progress < 0 || c.Player.Progress > 100 {
		return fmt.Errorf("invalid player progress: expected 0-100, got: %d", c.Player.Progress)
	}
	return nil
}

// ViewMode returns the configured catalog layout
func (c *Config) ViewMode() domain.ViewMode {
	mode, err := domain.ParseViewMode(c.UI.ViewMode)
	if err != nil {
		return domain.ViewModeGrid
	}
	return mode
}

// Level returns the configured log level, info when unset or unknown
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// NewLogger creates a logger writing to w with timestamps and caller
// reporting. The writer defaults to os.Stderr.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true, Level: level}
	return log.NewWithOptions(w, opts)
}

// OpenLogFile returns the writer configured by [log] file: the opened file,
// or io.Discard when no file is set. The returned closer is never nil.
func (c *Config) OpenLogFile() (io.Writer, io.Closer, error) {
	if c.Log.File == "" {
		return io.Discard, nopCloser{}, nil
	}
	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
