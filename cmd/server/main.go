package main

import (
	"log/slog"
	"os"

	"github.com/lk16/minimax-othello/internal"
	"github.com/lk16/minimax-othello/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg, services := internal.SetupApp()
	defer services.Close()

	// Start server
	if err := app.Listen(cfg.Address()); err != nil {
		slog.Error("Server stopped", "error", err)
		services.Close()
		os.Exit(1)
	}
}
