package config

import (
	"fmt"
	"os"
	"time"

	"MiniCheck/internal/logger"

	"github.com/BurntSushi/toml"
)

// Config holds the settings shared by every minicheck front end
type Config struct {
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
	TUI    TUIConfig    `toml:"tui"`
}

type LogConfig struct {
	Dir    string `toml:"dir"`
	Level  string `toml:"level"`
	Prefix string `toml:"prefix"`
}

type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
}

type TUIConfig struct {
	AltScreen   bool   `toml:"alt_screen"`
	Placeholder string `toml:"placeholder"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	cfg := &Config{TUI: TUIConfig{AltScreen: true}}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := &Config{TUI: TUIConfig{AltScreen: true}}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Log.Level == "" {
		c.Log.Level = "error"
	}
	if c.Log.Prefix == "" {
		c.Log.Prefix = logger.DefaultPrefix
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}

	if c.TUI.Placeholder == "" {
		c.TUI.Placeholder = "program\n  value = 32;\nend_program"
	}
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid [log] level: %w", err)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("invalid [server] max_body_bytes: %d", c.Server.MaxBodyBytes)
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		return fmt.Errorf("invalid [server] timeouts: must not be negative")
	}
	return nil
}

// LogLevel is the parsed [log] level; Validate has already vetted it.
func (c *Config) LogLevel() logger.LogLevel {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}

// OpenLogger registers a file logger named name using the [log] settings.
func (c *Config) OpenLogger(name string) (*logger.Logger, error) {
	return logger.NewWithPrefix(name, c.Log.Dir, c.Log.Prefix, c.LogLevel())
}
