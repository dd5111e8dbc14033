package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Dictionary
		Log
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path           string // Empty means the per-user data directory
		MaxConnections int
		BusyTimeout    time.Duration
		LogQueries     bool
	}
	Dictionary struct {
		BaseURL   string
		Timeout   time.Duration // 0 disables the client-side timeout
		UserAgent string
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // json or console
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("database_path", "")
	v.SetDefault("database_max_connections", 5)
	v.SetDefault("database_busy_timeout", "5s")
	v.SetDefault("database_log_queries", false)

	v.SetDefault("dictionary_base_url", DefaultDictionaryBaseURL)
	v.SetDefault("dictionary_timeout", "10s")
	v.SetDefault("dictionary_user_agent", DefaultDictionaryUserAgent)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:           v.GetString("DATABASE_PATH"),
			MaxConnections: v.GetInt("DATABASE_MAX_CONNECTIONS"),
			BusyTimeout:    v.GetDuration("DATABASE_BUSY_TIMEOUT"),
			LogQueries:     v.GetBool("DATABASE_LOG_QUERIES"),
		},
		Dictionary: Dictionary{
			BaseURL:   v.GetString("DICTIONARY_BASE_URL"),
			Timeout:   v.GetDuration("DICTIONARY_TIMEOUT"),
			UserAgent: v.GetString("DICTIONARY_USER_AGENT"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
