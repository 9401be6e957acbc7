package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Storage     StorageConfig     `yaml:"storage"`
	Logging     LoggingConfig     `yaml:"logging"`
	AI          AIConfig          `yaml:"ai"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	Locale      string            `yaml:"locale"`
}

type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	APIKey              string `yaml:"api_key"` // optional; empty leaves the API open
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// StorageConfig selects the backend for the history and theme slots.
type StorageConfig struct {
	Driver string      `yaml:"driver"` // "sqlite" or "redis"
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type AIConfig struct {
	Provider      string `yaml:"provider"` // "gemini" or "ollama"
	GeminiAPIKey  string `yaml:"gemini_api_key"`
	TextModel     string `yaml:"text_model"`
	ImageModel    string `yaml:"image_model"`
	ImageMIMEType string `yaml:"image_mime_type"`
	AspectRatio   string `yaml:"aspect_ratio"`
	OllamaURL     string `yaml:"ollama_url"`
	OllamaModel   string `yaml:"ollama_model"`
}

// MaintenanceConfig drives the background housekeeping loop.
type MaintenanceConfig struct {
	IntervalMinutes  int `yaml:"interval_minutes"`
	LogRetentionDays int `yaml:"log_retention_days"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:                "0.0.0.0",
			Port:                8080,
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 180,
		},
		Database: DatabaseConfig{
			Path: "./contentspark.db",
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "contentspark:",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		AI: AIConfig{
			Provider:      "gemini",
			TextModel:     "gemini-2.5-flash",
			ImageModel:    "imagen-4.0-generate-001",
			ImageMIMEType: "image/jpeg",
			AspectRatio:   "16:9",
			OllamaURL:     "http://localhost:11434",
			OllamaModel:   "mistral-nemo",
		},
		Maintenance: MaintenanceConfig{
			IntervalMinutes:  60,
			LogRetentionDays: 30,
		},
		Locale: "vi",
	}
}

// Load reads a YAML config file and merges it over defaults.
// If the file does not exist, defaults are returned without error.
// Environment variables are applied last.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
		slog.Info("No config file found, using defaults", "path", path)
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.GeminiAPIKey = v
	} else if v := os.Getenv("API_KEY"); v != "" && cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = v
	}
	if v := os.Getenv("CONTENTSPARK_DB"); v != "" {
		cfg.Database.Path = v
	}
}
