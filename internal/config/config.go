package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config holds every cellvim setting.
type Config struct {
	// Watch reports when the open file changes on disk.
	Watch bool `mapstructure:"watch" toml:"watch"`

	Editor  EditorConfig  `mapstructure:"editor" toml:"editor"`
	History HistoryConfig `mapstructure:"history" toml:"history"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
}

// EditorConfig holds editing behaviour.
type EditorConfig struct {
	// WrapWidth is the line length at which typed text wraps.
	WrapWidth int `mapstructure:"wrap_width" toml:"wrap_width"`
	// HistorySize caps the command history.
	HistorySize int `mapstructure:"history_size" toml:"history_size"`
	// Clipboard mirrors yanks to the system clipboard.
	Clipboard bool `mapstructure:"clipboard" toml:"clipboard"`
}

// HistoryConfig controls command history persistence.
type HistoryConfig struct {
	// File is where history is saved between runs. Empty disables saving.
	File string `mapstructure:"file" toml:"file"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	File  string `mapstructure:"file" toml:"file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Watch: true,
		Editor: EditorConfig{
			WrapWidth:   30,
			HistorySize: 1000,
		},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogFile(),
		},
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.Editor.WrapWidth <= 0 {
		return &ValidationError{Path: "editor.wrap_width", Message: "must be positive", Value: c.Editor.WrapWidth}
	}
	if c.Editor.HistorySize <= 0 {
		return &ValidationError{Path: "editor.history_size", Message: "must be positive", Value: c.Editor.HistorySize}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		return &ValidationError{Path: "log.level", Message: "unknown log level", Value: c.Log.Level}
	}
	return nil
}

// DefaultPath returns the user config file, usually
// ~/.config/cellvim/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "cellvim", "config.toml")
}

// DefaultLogFile returns $XDG_STATE_HOME/cellvim/cellvim.log, falling back
// to ~/.local/state.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "cellvim", "cellvim.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "cellvim.log")
	}
	return filepath.Join(home, ".local", "state", "cellvim", "cellvim.log")
}

// Decode parses TOML data over the defaults. Keys missing from data keep
// their default values.
func Decode(source string, data []byte) (Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return Config{}, pe
	}
	return cfg, nil
}

// Load reads a TOML file. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Decode(path, data)
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault creates a config file holding the defaults, creating the
// parent directory if needed. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := Defaults().Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
