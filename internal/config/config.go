package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// StorageConfig locates the modules document and the bundled template it is
// seeded from on first launch.
type StorageConfig struct {
	DataDir      string `mapstructure:"data_dir"`
	ModulesFile  string `mapstructure:"modules_file"`
	TemplateFile string `mapstructure:"template_file"`
}

// ModulesPath is the full path of the persisted modules document.
func (s StorageConfig) ModulesPath() string {
	return filepath.Join(s.DataDir, s.ModulesFile)
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("QUIZDECK")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	viper.BindEnv("storage.data_dir", "STORAGE_DATA_DIR")
	viper.BindEnv("storage.modules_file", "STORAGE_MODULES_FILE")
	viper.BindEnv("storage.template_file", "STORAGE_TEMPLATE_FILE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("storage.data_dir", "data")
	viper.SetDefault("storage.modules_file", "modules.json")
	viper.SetDefault("storage.template_file", "configs/modules_template.json")
	viper.SetDefault("rate_limit.max_requests", 600)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", cfg.Storage.DataDir, err)
	}

	return &cfg, nil
}
