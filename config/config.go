// Package config loads runtime settings and builds the logger.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes environment overrides: WOWA_LOG_LEVEL overrides log.level.
const EnvPrefix = "WOWA"

// Config is the root configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Sheets  SheetsConfig  `mapstructure:"sheets"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// SheetsConfig points at the spreadsheet results are uploaded to.
// Upload is skipped when URL is empty.
type SheetsConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	URL             string `mapstructure:"url"`
	SheetName       string `mapstructure:"sheet_name"`
}

// MetricsConfig sets where the Prometheus textfile is written.
// Nothing is written when TextfilePath is empty.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}

// Load reads analyzer.yaml from path (or from . and ./configs when path is
// empty), applies WOWA_* environment overrides and defaults. A missing
// config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("analyzer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("sheets.credentials_file", "credentials.json")
	v.SetDefault("sheets.url", "")
	v.SetDefault("sheets.sheet_name", "Statistics")
	v.SetDefault("metrics.textfile_path", "")
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: want json or console", c.Log.Format)
	}
	return nil
}

// NewLogger builds a zap logger from the log settings.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
