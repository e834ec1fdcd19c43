package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Scheduling assistant specifics
	Gemini   GeminiConfig
	Calendar CalendarConfig
	Session  SessionConfig
	Chat     ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type GeminiConfig struct {
	APIKey   string
	Model    string
	Timezone string
}

type CalendarConfig struct {
	ID         string
	MaxResults int64
}

type SessionConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type ChatConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timezone = viper.GetString("gemini.timezone")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Calendar
	cfg.Calendar.ID = viper.GetString("calendar.id")
	cfg.Calendar.MaxResults = viper.GetInt64("calendar.max_results")

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key not configured - set gemini.api_key in config.yaml or GEMINI_API_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:5173")
	viper.SetDefault("gemini.timezone", "UTC")
	viper.SetDefault("calendar.id", "primary")
	viper.SetDefault("calendar.max_results", 20)
	viper.SetDefault("session.ttl", "12h")
	viper.SetDefault("session.max_entries", 10000)
	viper.SetDefault("chat.rate_limit_per_min", 30)
}
