package experiments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/minimax-othello/internal/agent"
	"github.com/lk16/minimax-othello/internal/game"
	"github.com/lk16/minimax-othello/internal/othello"
)

var ErrHumanAgent = errors.New("experiments only support automated agents")

// Sink receives every finished record.
type Sink interface {
	Save(ctx context.Context, record Record) error
}

// Runner plays matchups and forwards the records to its sinks.
type Runner struct {
	runID uuid.UUID
	sinks []Sink
}

// NewRunner creates a runner with a fresh run ID.
func NewRunner(sinks ...Sink) *Runner {
	return &Runner{
		runID: uuid.New(),
		sinks: sinks,
	}
}

// AddSink adds a sink that receives all records saved from now on.
func (r *Runner) AddSink(sink Sink) {
	r.sinks = append(r.sinks, sink)
}

// RunID returns the ID shared by all records of this runner.
func (r *Runner) RunID() uuid.UUID {
	return r.runID
}

// Run plays all matchups in order. It stops at the first failing game or sink.
func (r *Runner) Run(ctx context.Context, matchups []Matchup) ([]Record, error) {
	for _, matchup := range matchups {
		if matchup.Black.Kind != agent.KindAlphaBeta || matchup.White.Kind != agent.KindAlphaBeta {
			return nil, fmt.Errorf("%w: %s", ErrHumanAgent, matchup)
		}
	}

	records := make([]Record, 0, len(matchups))

	for i, matchup := range matchups {
		record, err := r.play(ctx, i, matchup)
		if err != nil {
			return records, fmt.Errorf("game %d (%s) failed: %w", i, matchup, err)
		}

		slog.Info("Game finished",
			"run_id", r.runID,
			"game", i+1,
			"of", len(matchups),
			"matchup", matchup.String(),
			"winner", record.Winner,
			"nodes", record.TotalNodes(),
			"duration", record.Duration,
		)

		for _, sink := range r.sinks {
			if err = sink.Save(ctx, record); err != nil {
				return records, fmt.Errorf("failed to save record: %w", err)
			}
		}

		records = append(records, record)
	}

	return records, nil
}

func (r *Runner) play(ctx context.Context, index int, matchup Matchup) (Record, error) {
	black, err := agent.New(othello.Black, matchup.Black, nil, nil)
	if err != nil {
		return Record{}, err
	}

	white, err := agent.New(othello.White, matchup.White, nil, nil)
	if err != nil {
		return Record{}, err
	}

	g, err := game.New(matchup.Cols, matchup.Rows, black, white, nil)
	if err != nil {
		return Record{}, err
	}

	startTime := time.Now()

	result, err := g.Run(ctx)
	if err != nil {
		return Record{}, err
	}

	return Record{
		RunID:      r.runID,
		Game:       index,
		Matchup:    matchup,
		BlackScore: result.BlackScore,
		WhiteScore: result.WhiteScore,
		Winner:     winnerSymbol(result.Winner),
		Turns:      result.Turns,
		BlackNodes: result.BlackNodes,
		WhiteNodes: result.WhiteNodes,
		Duration:   time.Since(startTime),
		Moves:      moveFields(result.Moves),
		CreatedAt:  startTime.UTC(),
	}, nil
}
