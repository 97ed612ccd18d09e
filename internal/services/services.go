package services

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/minimax-othello/internal/config"
	"github.com/lk16/minimax-othello/internal/models"
	"github.com/redis/go-redis/v9"
)

// localCacheSize is the capacity of the in-process move cache.
const localCacheSize = 10_000

// Services contains the connections to the external services.
// Postgres and Redis are nil when not configured.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client

	// LocalCache replaces Redis when it is not configured.
	LocalCache *models.Cache
}

// NewLocalServices returns services without any external connection.
func NewLocalServices() *Services {
	return &Services{
		LocalCache: models.NewCache(localCacheSize),
	}
}

// InitServices connects to the services that cfg configures.
func InitServices(cfg *config.ServerConfig) (*Services, error) {
	services := NewLocalServices()

	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	} else {
		slog.Info("PostgreSQL is not configured, experiment listing is disabled")
	}

	if cfg.RedisURL != "" {
		redis, err := InitRedis(cfg.RedisURL)
		if err != nil {
			services.Close()
			return nil, err
		}
		services.Redis = redis
		services.LocalCache = nil
	} else {
		slog.Info("Redis is not configured, using in-process move cache")
	}

	return services, nil
}

// Close closes all open connections.
func (s *Services) Close() {
	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			slog.Error("Failed to close PostgreSQL connection", "error", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}
}
