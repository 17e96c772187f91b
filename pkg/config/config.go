package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read through Viper
// from environment variables and optionally from a config file.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Data DataConfig
	Auth AuthConfig
	Log  LogConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig settings for the HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig locates the JSON data directory (categories and POIs).
type DataConfig struct {
	Dir string
}

// AuthConfig holds the shared secret that gates mutating calls.
// Empty means development mode: no gate.
type AuthConfig struct {
	APIToken string
}

// LogConfig logging settings.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load reads the configuration from environment variables (and
// optionally from .env / config.env files). Env vars take priority.
// Expected names: APP_ENV, APP_NAME, HTTP_HOST, HTTP_PORT, DATA_DIR,
// API_TOKEN, LOG_LEVEL.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config files; missing files are not an error.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tasnifoh-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Data: DataConfig{
			Dir: getString(v, "DATA_DIR", "./data"),
		},
		Auth: AuthConfig{
			APIToken: getString(v, "API_TOKEN", ""),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
