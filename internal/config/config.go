package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
)

type Config struct {
	AI      AIConfig
	Server  ServerConfig
	Redis   RedisConfig
	Guard   GuardConfig
	Logging LoggingConfig
	Export  ExportConfig
}

// AIConfig selects the generation backend. API keys are not part of the
// config; they are read from the environment on every call.
type AIConfig struct {
	Provider string
	Model    string
}

type ServerConfig struct {
	Addr string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type GuardConfig struct {
	TTL time.Duration
}

type LoggingConfig struct {
	Level string
	File  string
}

type ExportConfig struct {
	Dir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AI: AIConfig{
			Provider: strings.ToLower(getEnv("PERSONA_PROVIDER", constants.GenerationConfig.DefaultProvider)),
			Model:    getEnv("PERSONA_MODEL", ""),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Guard: GuardConfig{
			TTL: time.Duration(getEnvInt("GUARD_TTL_SECONDS", int(constants.GuardConfig.DefaultTTL/time.Second))) * time.Second,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "exports"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.AI.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("PERSONA_PROVIDER must be gemini or openai, got %q", c.AI.Provider)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative")
	}
	if c.Guard.TTL <= 0 {
		return fmt.Errorf("GUARD_TTL_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return defaultValue
}
