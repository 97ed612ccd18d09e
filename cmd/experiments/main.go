package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/lk16/minimax-othello/internal/config"
	"github.com/lk16/minimax-othello/internal/experiments"
	"github.com/lk16/minimax-othello/internal/repository"
	"github.com/lk16/minimax-othello/internal/services"
)

func main() {
	name := flag.String("experiment", "search", "experiment to run: search or quality")
	depthsFlag := flag.String("depths", "", "comma separated search depths, empty for the experiment default")
	size := flag.Int("size", experiments.DefaultBoardSize, "board width and height")
	outDir := flag.String("out", "results", "directory for the CSV output")
	flag.Parse()

	config.SetLogLevel()
	cfg := config.LoadExperimentsConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *name, *depthsFlag, *size, *outDir); err != nil {
		slog.Error("Experiment failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ExperimentsConfig, name, depthsFlag string, size int, outDir string) (err error) {
	var (
		defaultDepths []int
		generate      func(depths []int, size int) []experiments.Matchup
	)

	switch name {
	case "search":
		defaultDepths, generate = experiments.DefaultSearchDepths, experiments.SearchVersusDepth
	case "quality":
		defaultDepths, generate = experiments.DefaultQualityDepths, experiments.HeuristicQuality
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}

	depths, err := parseDepths(depthsFlag, defaultDepths)
	if err != nil {
		return err
	}
	matchups := generate(depths, size)

	sinks := make([]experiments.Sink, 0, 2)

	if cfg.PostgresURL != "" {
		postgres, err := services.InitPostgres(cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer postgres.Close()

		repo := repository.NewExperimentRepositoryFromServices(&services.Services{Postgres: postgres})
		if err = repo.CreateSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, repo)
	}

	runner := experiments.NewRunner(sinks...)

	csvWriter, path, err := experiments.CreateCSVFile(outDir, runner.RunID())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := csvWriter.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close CSV file: %w", closeErr))
		}
	}()

	runner.AddSink(csvWriter)

	slog.Info("Starting experiment", "experiment", name, "games", len(matchups), "csv", path)

	records, err := runner.Run(ctx, matchups)
	if err != nil {
		return err
	}

	if name == "search" {
		experiments.WriteNodeTable(os.Stdout, records)
	} else {
		experiments.WriteOutcomes(os.Stdout, records)
	}

	return nil
}

func parseDepths(s string, fallback []int) ([]int, error) {
	if s == "" {
		return fallback, nil
	}

	parts := strings.Split(s, ",")
	depths := make([]int, len(parts))

	for i, part := range parts {
		depth, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid depth %q: %w", part, err)
		}
		depths[i] = depth
	}

	return depths, nil
}
