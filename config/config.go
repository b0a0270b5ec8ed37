package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Assistant
	LLM       LLMConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required,oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port int    `validate:"required,min=1,max=65535"`
	Mode string `validate:"required,oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string `validate:"required,oneof=debug info warn error dpanic panic fatal"`
	Mode         string `validate:"required"`
	Encoding     string `validate:"required,oneof=console json"`
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string `validate:"required"`
}

// LLMConfig selects the single backend provider and tunes requests to it.
type LLMConfig struct {
	Provider    string `validate:"required,oneof=anthropic openai ollama"`
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int           `validate:"min=1"`
	Timeout     time.Duration `validate:"min=1ms"`
	Temperature float64       `validate:"gte=0,lte=2"`
	// RequestsPerSecond caps upstream calls across all users. 0 disables the cap.
	RequestsPerSecond float64 `validate:"gte=0"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `validate:"min=1"`
	MaxIdentities     int `validate:"min=1"`
}

type AuthConfig struct {
	IdentityHeader string `validate:"required"`
	// InternalKey guards /internal routes. Empty disables them.
	InternalKey string
}

var validate = validator.New()

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return load("./config", ".", "/etc/app/")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = v.GetString("database.path")

	// LLM
	cfg.LLM.Provider = strings.ToLower(v.GetString("llm.provider"))
	cfg.LLM.APIKey = expandEnvVar(v, v.GetString("llm.api_key"))
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.RequestsPerSecond = v.GetFloat64("llm.requests_per_second")

	// Rate limit & auth
	cfg.RateLimit.RequestsPerMinute = v.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.MaxIdentities = v.GetInt("rate_limit.max_identities")
	cfg.Auth.IdentityHeader = v.GetString("auth.identity_header")
	cfg.Auth.InternalKey = expandEnvVar(v, v.GetString("auth.internal_key"))

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.path", "data/assistant.db")

	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.requests_per_second", 0)

	v.SetDefault("rate_limit.requests_per_minute", 10)
	v.SetDefault("rate_limit.max_identities", 10000)

	v.SetDefault("auth.identity_header", "X-User-ID")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	// Direct os.Getenv as last resort
	return os.Getenv(envVar)
}
