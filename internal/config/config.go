package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/flashlearn/internal/adapters/env"
	"github.com/3-lines-studio/flashlearn/internal/core"
	"github.com/3-lines-studio/flashlearn/internal/logger"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	AddrVar      = "FLASHLEARN_ADDR"
	PortVar      = "PORT"
	LogLevelVar  = "FLASHLEARN_LOG_LEVEL"
	LogFormatVar = "FLASHLEARN_LOG_FORMAT"
)

type Config struct {
	Addr        string `yaml:"addr"`
	Dev         bool   `yaml:"dev"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	SiteTitle   string `yaml:"site_title"`
	Description string `yaml:"description"`
	ExportDir   string `yaml:"export_dir"`
	AssetsDir   string `yaml:"assets_dir"`
}

func Default() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   logger.FormatText,
		SiteTitle:   "FlashLearn",
		Description: "Upload any PDF and let our AI create perfect study materials.",
		ExportDir:   "dist",
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if env.DetectMode() == core.ModeDev {
		c.Dev = true
	}
	if port := os.Getenv(PortVar); port != "" {
		c.Addr = ":" + port
	}
	if addr := os.Getenv(AddrVar); addr != "" {
		c.Addr = addr
	}
	if level := os.Getenv(LogLevelVar); level != "" {
		c.LogLevel = level
	}
	if format := os.Getenv(LogFormatVar); format != "" {
		c.LogFormat = format
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr cannot be empty", ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func (c Config) Mode() core.Mode {
	if c.Dev {
		return core.ModeDev
	}
	return core.ModeProd
}
