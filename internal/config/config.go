package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config 应用配置
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Data    DataConfig    `koanf:"data"`
	Map     MapConfig     `koanf:"map"`
	Export  ExportConfig  `koanf:"export"`
	Log     LogConfig     `koanf:"log"`
	Limiter LimiterConfig `koanf:"limiter"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port            string        `koanf:"port"`
	Mode            string        `koanf:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig says where the two startup datasets come from
type DataConfig struct {
	Source     string `koanf:"source"` // csv or sqlite
	RawPath    string `koanf:"raw_path"`
	PivotPath  string `koanf:"pivot_path"`
	SQLitePath string `koanf:"sqlite_path"`
}

// MapConfig configures the map figure
type MapConfig struct {
	BandScheme string `koanf:"band_scheme"` // legacy or contiguous
}

// ExportConfig configures the CSV download
type ExportConfig struct {
	Filename string `koanf:"filename"`
}

// LogConfig configures zerolog
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// LimiterConfig configures the per-client rate limit; Rate 0 disables it
type LimiterConfig struct {
	Rate  float64 `koanf:"rate"` // requests per second
	Burst int     `koanf:"burst"`
}

// ConfigPathEnvVar overrides the config file location
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

// Default 默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			Source:     "csv",
			RawPath:    "raw_data.csv",
			PivotPath:  "pivot_data.csv",
			SQLitePath: "./data/dashboard.db",
		},
		Map:     MapConfig{BandScheme: "legacy"},
		Export:  ExportConfig{Filename: "downloadable_pivot.csv"},
		Log:     LogConfig{Level: "info", Format: "json"},
		Limiter: LimiterConfig{Rate: 20, Burst: 40},
	}
}

// Load 加载配置: defaults, then an optional YAML file, then environment variables
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.Server.Port = normalizePort(cfg.Server.Port)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// envMappings maps environment variables to config paths; others are ignored
var envMappings = map[string]string{
	"PORT":             "server.port",
	"GIN_MODE":         "server.mode",
	"SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"DATA_SOURCE":      "data.source",
	"RAW_DATA_PATH":    "data.raw_path",
	"PIVOT_DATA_PATH":  "data.pivot_path",
	"SQLITE_PATH":      "data.sqlite_path",
	"BAND_SCHEME":      "map.band_scheme",
	"EXPORT_FILENAME":  "export.filename",
	"LOG_LEVEL":        "log.level",
	"LOG_FORMAT":       "log.format",
	"RATE_LIMIT":       "limiter.rate",
	"RATE_BURST":       "limiter.burst",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToUpper(key)]
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// normalizePort accepts "8080" as well as ":8080"
func normalizePort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

// Validate checks the enumerations and required paths
func (c *Config) Validate() error {
	switch c.Data.Source {
	case "csv":
		if c.Data.RawPath == "" || c.Data.PivotPath == "" {
			return fmt.Errorf("data.raw_path and data.pivot_path are required for the csv source")
		}
	case "sqlite":
		if c.Data.SQLitePath == "" {
			return fmt.Errorf("data.sqlite_path is required for the sqlite source")
		}
	default:
		return fmt.Errorf("data.source must be csv or sqlite, got %q", c.Data.Source)
	}

	switch c.Map.BandScheme {
	case "legacy", "contiguous":
	default:
		return fmt.Errorf("map.band_scheme must be legacy or contiguous, got %q", c.Map.BandScheme)
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if c.Export.Filename == "" {
		return fmt.Errorf("export.filename is required")
	}
	if c.Limiter.Rate < 0 || c.Limiter.Burst < 0 {
		return fmt.Errorf("limiter.rate and limiter.burst must not be negative")
	}
	if c.Limiter.Rate > 0 && c.Limiter.Burst == 0 {
		return fmt.Errorf("limiter.burst must be positive when limiter.rate is set")
	}
	return nil
}
