package main

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lk16/minimax-othello/internal/agent"
	"github.com/lk16/minimax-othello/internal/config"
	"github.com/lk16/minimax-othello/internal/game"
	"github.com/lk16/minimax-othello/internal/othello"
	"github.com/lk16/minimax-othello/internal/search"
)

const defaultDepth = 8

type playerFlags struct {
	kind      *string
	heuristic *string
	prune     *bool
	depth     *int
}

func addPlayerFlags(name, defaultKind string) playerFlags {
	return playerFlags{
		kind:      flag.String(name, defaultKind, "player type: human or alphabeta"),
		heuristic: flag.String(name+"-heuristic", "0", "heuristic for "+name+": 0, 1 or 2"),
		prune:     flag.Bool(name+"-prune", false, "enable alpha-beta pruning for "+name),
		depth:     flag.Int(name+"-depth", defaultDepth, "search depth for "+name),
	}
}

func (f playerFlags) config() (agent.Config, error) {
	kind, err := agent.ParseKind(*f.kind)
	if err != nil {
		return agent.Config{}, err
	}

	heuristic, err := search.ParseHeuristic(*f.heuristic)
	if err != nil {
		return agent.Config{}, err
	}

	return agent.Config{
		Kind:      kind,
		Heuristic: heuristic,
		Prune:     *f.prune,
		Depth:     *f.depth,
	}, nil
}

func main() {
	p1 := addPlayerFlags("p1", "human")
	p2 := addPlayerFlags("p2", "alphabeta")
	cols := flag.Int("cols", 4, "number of columns")
	rows := flag.Int("rows", 4, "number of rows")
	flag.Parse()

	config.SetLogLevel()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, p1, p2, *cols, *rows); err != nil {
		slog.Error("Game failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, p1, p2 playerFlags, cols, rows int) error {
	blackConfig, err := p1.config()
	if err != nil {
		return err
	}

	whiteConfig, err := p2.config()
	if err != nil {
		return err
	}

	// Both humans read from the same buffered stdin
	in := bufio.NewReader(os.Stdin)

	black, err := agent.New(othello.Black, blackConfig, in, os.Stdout)
	if err != nil {
		return err
	}

	white, err := agent.New(othello.White, whiteConfig, in, os.Stdout)
	if err != nil {
		return err
	}

	g, err := game.New(cols, rows, black, white, os.Stdout)
	if err != nil {
		return err
	}

	result, err := g.Run(ctx)
	if err != nil {
		return err
	}

	result.Announce(os.Stdout)
	return nil
}
