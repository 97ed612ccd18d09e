package config

import (
	"log/slog"
	"os"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool

	// RedisURL and PostgresURL are optional, empty means the service is not used.
	RedisURL    string
	PostgresURL string
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("MINIMAX_SERVER_HOST"),
		ServerPort:        getEnvMust("MINIMAX_SERVER_PORT"),
		BasicAuthUsername: getEnvMust("MINIMAX_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("MINIMAX_BASIC_AUTH_PASS"),
		Token:             getEnvMust("MINIMAX_SERVER_TOKEN"),
		Prefork:           getEnvBool("MINIMAX_SERVER_PREFORK", false),
		RedisURL:          os.Getenv("MINIMAX_REDIS_URL"),
		PostgresURL:       os.Getenv("MINIMAX_POSTGRES_URL"),
	}
}

// Address returns the address the server listens on.
func (cfg *ServerConfig) Address() string {
	return cfg.ServerHost + ":" + cfg.ServerPort
}

// ExperimentsConfig holds the optional settings of the experiments command.
type ExperimentsConfig struct {
	PostgresURL string
}

func LoadExperimentsConfig() *ExperimentsConfig {
	return &ExperimentsConfig{
		PostgresURL: os.Getenv("MINIMAX_POSTGRES_URL"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

// getEnvBool returns fallback if key is not set.
func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
