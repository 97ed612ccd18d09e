package api

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/minimax-othello/internal/middleware"
	"github.com/lk16/minimax-othello/internal/models"
	"github.com/lk16/minimax-othello/internal/repository"
	"github.com/lk16/minimax-othello/internal/search"
)

const (
	// MaxRequestDepth limits the search depth of a single request.
	MaxRequestDepth = 10

	// MaxUnprunedDepth is the deepest search a request may run without pruning.
	MaxUnprunedDepth = 6
)

// SuggestMove searches the requested position and returns the best move.
func SuggestMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	query, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if query.Depth > MaxRequestDepth {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("depth must not exceed %d", MaxRequestDepth),
		})
	}

	if !query.Prune && query.Depth > MaxUnprunedDepth {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("depth above %d requires pruning", MaxUnprunedDepth),
		})
	}

	cache := repository.NewMoveCache(c)
	key := repository.MoveCacheKey(query)

	cached, ok, err := cache.Get(c.Context(), key)
	if err != nil {
		slog.Warn("Move cache lookup failed", "key", key, "error", err)
	} else if ok {
		cached.Cached = true
		c.Set(middleware.CacheHeader, "hit")
		return c.Status(fiber.StatusOK).JSON(cached)
	}

	bot, err := search.NewBot(query.Side, query.Heuristic, query.Prune, query.Depth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := bot.Search(query.Board)
	if !result.Found {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "side has no legal move",
		})
	}

	response := models.MoveResponse{
		Col:   result.Move.Col,
		Row:   result.Move.Row,
		Field: result.Move.String(),
		Nodes: result.Nodes,
	}

	if err = cache.Set(c.Context(), key, response); err != nil {
		slog.Warn("Failed to cache move", "key", key, "error", err)
	}

	c.Set(middleware.CacheHeader, "miss")
	return c.Status(fiber.StatusOK).JSON(response)
}

// ListExperiments returns the most recent experiment records.
func ListExperiments(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", repository.DefaultListLimit)

	repo := repository.NewExperimentRepository(c)
	records, err := repo.List(c.Context(), limit)

	if errors.Is(err, repository.ErrPostgresNotConfigured) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

var (
	version     models.VersionResponse
	versionOnce sync.Once
)

// VersionHandler returns the version of the application.
func VersionHandler(c *fiber.Ctx) error {
	versionOnce.Do(func() {
		output, err := exec.Command("git", "rev-parse", "HEAD").Output()
		if err != nil {
			version.Commit = "unknown"
			return
		}
		version.Commit = strings.TrimSpace(string(output))
	})

	return c.JSON(version)
}
