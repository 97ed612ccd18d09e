package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/minimax-othello/internal/middleware"
)

// SetupRoutes sets up all routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())
	apiGroup.Post("/move", SuggestMove)
	apiGroup.Get("/experiments", ListExperiments)

	// Serve version info
	versionGroup := app.Group("/version")
	versionGroup.Get("/", VersionHandler)
}
