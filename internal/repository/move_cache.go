package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/minimax-othello/internal/models"
	"github.com/lk16/minimax-othello/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	moveKeyPrefix = "move"
	MoveCacheTTL  = 24 * time.Hour
)

// MoveCache stores move suggestions in Redis, or in process if Redis is not configured.
type MoveCache struct {
	services *services.Services
}

// NewMoveCache creates a new MoveCache.
func NewMoveCache(c *fiber.Ctx) *MoveCache {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &MoveCache{
		services: services,
	}
}

func NewMoveCacheFromServices(services *services.Services) *MoveCache {
	return &MoveCache{
		services: services,
	}
}

// MoveCacheKey returns the key for query. Every field that can change the
// search result is part of the key.
func MoveCacheKey(query models.MoveQuery) string {
	return fmt.Sprintf("%s:%s:%s:%d:%t:%d",
		moveKeyPrefix, query.Board.String(), query.Side.Symbol(), int(query.Heuristic), query.Prune, query.Depth)
}

// Get looks up a cached move. The second return value is false on a miss.
func (repo *MoveCache) Get(ctx context.Context, key string) (models.MoveResponse, bool, error) {
	redisConn := repo.services.Redis

	if redisConn == nil {
		if repo.services.LocalCache == nil {
			return models.MoveResponse{}, false, nil
		}
		move, ok := repo.services.LocalCache.Lookup(key)
		return move, ok, nil
	}

	jsonData, err := redisConn.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.MoveResponse{}, false, nil
	}

	if err != nil {
		return models.MoveResponse{}, false, fmt.Errorf("error getting cached move: %w", err)
	}

	var move models.MoveResponse
	if err = json.Unmarshal(jsonData, &move); err != nil {
		return models.MoveResponse{}, false, fmt.Errorf("error unmarshaling cached move: %w", err)
	}

	return move, true, nil
}

// Set stores move under key.
func (repo *MoveCache) Set(ctx context.Context, key string, move models.MoveResponse) error {
	// The cached flag describes a response, not the stored value
	move.Cached = false

	redisConn := repo.services.Redis

	if redisConn == nil {
		if repo.services.LocalCache != nil {
			repo.services.LocalCache.Upsert(key, move)
		}
		return nil
	}

	jsonData, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("error marshaling move: %w", err)
	}

	if err = redisConn.Set(ctx, key, jsonData, MoveCacheTTL).Err(); err != nil {
		return fmt.Errorf("error caching move: %w", err)
	}

	return nil
}
