// Package config loads the advisor's YAML settings and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Engine back-ends.
const (
	BackendUCI     = "uci"
	BackendMinimax = "minimax"
)

// Config is the root configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// EngineConfig selects and tunes the evaluation back-end.
type EngineConfig struct {
	Backend string `yaml:"backend"`
	// Path is the UCI engine binary; empty means look it up.
	Path    string `yaml:"path,omitempty"`
	Depth   int    `yaml:"depth"`
	Threads int    `yaml:"threads"`
	HashMB  int    `yaml:"hash_mb"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Backend: BackendUCI,
			Depth:   3,
			Threads: 1,
			HashMB:  16,
		},
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("STOCKFISH_PATH"); path != "" {
		c.Engine.Path = path
	}
	if backend := os.Getenv("CHESS_ADVISOR_ENGINE"); backend != "" {
		c.Engine.Backend = backend
	}
	if depth := os.Getenv("CHESS_ADVISOR_DEPTH"); depth != "" {
		if n, err := strconv.Atoi(depth); err == nil {
			c.Engine.Depth = n
		}
	}
	if level := os.Getenv("CHESS_ADVISOR_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if addr := os.Getenv("CHESS_ADVISOR_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Engine.Backend {
	case BackendUCI, BackendMinimax:
	default:
		return fmt.Errorf("%w: engine backend %q (valid: %s, %s)", ErrInvalidConfig, c.Engine.Backend, BackendUCI, BackendMinimax)
	}
	if c.Engine.Depth < 1 {
		return fmt.Errorf("%w: engine depth must be positive, got %d", ErrInvalidConfig, c.Engine.Depth)
	}
	if c.Engine.Threads < 1 || c.Engine.HashMB < 1 {
		return fmt.Errorf("%w: engine threads and hash_mb must be positive", ErrInvalidConfig)
	}

	validLevel := false
	for _, l := range validLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalidConfig, c.Logging.Level, validLevels)
	}
	return nil
}

// commonEnginePaths are checked when stockfish is not on PATH.
var commonEnginePaths = []string{
	"/usr/games/stockfish",
	"/usr/local/bin/stockfish",
	"/usr/bin/stockfish",
	"/opt/homebrew/bin/stockfish",
}

// ResolveEnginePath finds the UCI binary: the configured path if set, then
// stockfish on PATH, then the usual install locations.
func (c *Config) ResolveEnginePath() (string, error) {
	if c.Engine.Path != "" {
		if _, err := os.Stat(c.Engine.Path); err != nil {
			return "", fmt.Errorf("engine binary %s: %w", c.Engine.Path, err)
		}
		return c.Engine.Path, nil
	}
	if path, err := exec.LookPath("stockfish"); err == nil {
		return path, nil
	}
	for _, p := range commonEnginePaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("stockfish not found: install it or set STOCKFISH_PATH")
}
