// Package config loads the settings of the linkedlist command.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-linkedlist/log"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	EnvLogLevel       = "LINKEDLIST_LOG_LEVEL"
	EnvLogDevelopment = "LINKEDLIST_LOG_DEVELOPMENT"
)

type LogConfig struct {
	Level       string   `yaml:"level" json:"level"`
	Development bool     `yaml:"development" json:"development"`
	OutputPaths []string `yaml:"output_paths" json:"output_paths"`
}

type Config struct {
	Log LogConfig `yaml:"log" json:"log"`
	// Values seed the list for commands that are given no values.
	Values []int `yaml:"values" json:"values"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:       "info",
			OutputPaths: []string{"stderr"},
		},
		Values: collections.Range(0, 5),
	}
}

// Load reads the configuration file at path on top of the defaults. Files
// ending in .yaml or .yml are decoded as YAML, files ending in .json as
// JSON. An empty path yields the defaults. Environment overrides are
// applied last and the result is validated.
func Load(path string) (*Config, stackerr.Error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, stackerr.Wrap(err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) stackerr.Error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return stackerr.Wrap(err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return stackerr.Wrap(err)
		}
	default:
		return stackerr.Errorf("Unsupported config file extension '%s' (expected .yaml, .yml or .json)", ext)
	}
	return nil
}

func (c *Config) applyEnvOverrides() stackerr.Error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	if dev := os.Getenv(EnvLogDevelopment); dev != "" {
		b, err := strconv.ParseBool(dev)
		if err != nil {
			return stackerr.Errorf("Invalid %s value '%s': must be a boolean", EnvLogDevelopment, dev)
		}
		c.Log.Development = b
	}
	return nil
}

// Validate checks that the log settings can build a logger.
func (c *Config) Validate() stackerr.Error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if len(c.Log.OutputPaths) == 0 {
		return stackerr.Errorf("No 'output_paths' found in log config")
	}
	for _, p := range c.Log.OutputPaths {
		if strings.TrimSpace(p) == "" {
			return stackerr.Errorf("Empty entry in log 'output_paths'")
		}
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (zapcore.Level, stackerr.Error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, stackerr.Errorf("Invalid log level '%s'", c.Log.Level)
	}
	return level, nil
}

// ToLogInput converts the log section into the input for log.New.
func (c *Config) ToLogInput(name string) (log.NewInput, stackerr.Error) {
	level, err := c.LogLevel()
	if err != nil {
		return log.NewInput{}, err
	}
	return log.NewInput{
		Name:          name,
		Level:         level,
		IsDevelopment: c.Log.Development,
		OutputPaths:   append([]string(nil), c.Log.OutputPaths...),
	}, nil
}
