package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/lk16/minimax-othello/internal/agent"
	"github.com/lk16/minimax-othello/internal/experiments"
	"github.com/lk16/minimax-othello/internal/search"
	"github.com/lk16/minimax-othello/internal/services"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

var ErrPostgresNotConfigured = errors.New("postgres is not configured")

const createSchemaQuery = `
CREATE TABLE IF NOT EXISTS experiment_records (
	id              BIGSERIAL PRIMARY KEY,
	run_id          UUID        NOT NULL,
	game            INTEGER     NOT NULL,
	cols            INTEGER     NOT NULL,
	rows            INTEGER     NOT NULL,
	black_heuristic INTEGER     NOT NULL,
	black_prune     BOOLEAN     NOT NULL,
	black_depth     INTEGER     NOT NULL,
	white_heuristic INTEGER     NOT NULL,
	white_prune     BOOLEAN     NOT NULL,
	white_depth     INTEGER     NOT NULL,
	black_score     INTEGER     NOT NULL,
	white_score     INTEGER     NOT NULL,
	winner          TEXT        NOT NULL,
	turns           INTEGER     NOT NULL,
	black_nodes     BIGINT      NOT NULL,
	white_nodes     BIGINT      NOT NULL,
	duration_ms     BIGINT      NOT NULL,
	moves           TEXT[]      NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	UNIQUE (run_id, game)
)`

const insertRecordQuery = `
INSERT INTO experiment_records (
	run_id, game, cols, rows,
	black_heuristic, black_prune, black_depth,
	white_heuristic, white_prune, white_depth,
	black_score, white_score, winner, turns,
	black_nodes, white_nodes, duration_ms, moves, created_at
) VALUES (
	:run_id, :game, :cols, :rows,
	:black_heuristic, :black_prune, :black_depth,
	:white_heuristic, :white_prune, :white_depth,
	:black_score, :white_score, :winner, :turns,
	:black_nodes, :white_nodes, :duration_ms, :moves, :created_at
)
ON CONFLICT (run_id, game) DO NOTHING`

const listRecordsQuery = `
SELECT run_id, game, cols, rows,
	black_heuristic, black_prune, black_depth,
	white_heuristic, white_prune, white_depth,
	black_score, white_score, winner, turns,
	black_nodes, white_nodes, duration_ms, moves, created_at
FROM experiment_records
ORDER BY created_at DESC, game DESC
LIMIT $1`

// experimentRow is the database representation of experiments.Record.
type experimentRow struct {
	RunID          uuid.UUID      `db:"run_id"`
	Game           int            `db:"game"`
	Cols           int            `db:"cols"`
	Rows           int            `db:"rows"`
	BlackHeuristic int            `db:"black_heuristic"`
	BlackPrune     bool           `db:"black_prune"`
	BlackDepth     int            `db:"black_depth"`
	WhiteHeuristic int            `db:"white_heuristic"`
	WhitePrune     bool           `db:"white_prune"`
	WhiteDepth     int            `db:"white_depth"`
	BlackScore     int            `db:"black_score"`
	WhiteScore     int            `db:"white_score"`
	Winner         string         `db:"winner"`
	Turns          int            `db:"turns"`
	BlackNodes     int            `db:"black_nodes"`
	WhiteNodes     int            `db:"white_nodes"`
	DurationMS     int64          `db:"duration_ms"`
	Moves          pq.StringArray `db:"moves"`
	CreatedAt      time.Time      `db:"created_at"`
}

func newExperimentRow(record experiments.Record) experimentRow {
	return experimentRow{
		RunID:          record.RunID,
		Game:           record.Game,
		Cols:           record.Cols,
		Rows:           record.Rows,
		BlackHeuristic: int(record.Black.Heuristic),
		BlackPrune:     record.Black.Prune,
		BlackDepth:     record.Black.Depth,
		WhiteHeuristic: int(record.White.Heuristic),
		WhitePrune:     record.White.Prune,
		WhiteDepth:     record.White.Depth,
		BlackScore:     record.BlackScore,
		WhiteScore:     record.WhiteScore,
		Winner:         record.Winner,
		Turns:          record.Turns,
		BlackNodes:     record.BlackNodes,
		WhiteNodes:     record.WhiteNodes,
		DurationMS:     record.Duration.Milliseconds(),
		Moves:          pq.StringArray(record.Moves),
		CreatedAt:      record.CreatedAt,
	}
}

func (row experimentRow) record() experiments.Record {
	moves := []string(row.Moves)
	if moves == nil {
		moves = []string{}
	}

	return experiments.Record{
		RunID: row.RunID,
		Game:  row.Game,
		Matchup: experiments.Matchup{
			Cols: row.Cols,
			Rows: row.Rows,
			Black: agent.Config{
				Kind:      agent.KindAlphaBeta,
				Heuristic: search.Heuristic(row.BlackHeuristic),
				Prune:     row.BlackPrune,
				Depth:     row.BlackDepth,
			},
			White: agent.Config{
				Kind:      agent.KindAlphaBeta,
				Heuristic: search.Heuristic(row.WhiteHeuristic),
				Prune:     row.WhitePrune,
				Depth:     row.WhiteDepth,
			},
		},
		BlackScore: row.BlackScore,
		WhiteScore: row.WhiteScore,
		Winner:     row.Winner,
		Turns:      row.Turns,
		BlackNodes: row.BlackNodes,
		WhiteNodes: row.WhiteNodes,
		Duration:   time.Duration(row.DurationMS) * time.Millisecond,
		Moves:      moves,
		CreatedAt:  row.CreatedAt,
	}
}

// ExperimentRepository stores experiment records in PostgreSQL.
type ExperimentRepository struct {
	services *services.Services
}

// NewExperimentRepository creates a new ExperimentRepository.
func NewExperimentRepository(c *fiber.Ctx) *ExperimentRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &ExperimentRepository{
		services: services,
	}
}

func NewExperimentRepositoryFromServices(services *services.Services) *ExperimentRepository {
	return &ExperimentRepository{
		services: services,
	}
}

// CreateSchema creates the experiment_records table if it does not exist.
func (repo *ExperimentRepository) CreateSchema(ctx context.Context) error {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return ErrPostgresNotConfigured
	}

	if _, err := pgConn.ExecContext(ctx, createSchemaQuery); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}

	return nil
}

// Save inserts record. Saving the same game of a run twice is a no-op.
func (repo *ExperimentRepository) Save(ctx context.Context, record experiments.Record) error {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return ErrPostgresNotConfigured
	}

	if _, err := pgConn.NamedExecContext(ctx, insertRecordQuery, newExperimentRow(record)); err != nil {
		return fmt.Errorf("error saving experiment record: %w", err)
	}

	return nil
}

// List returns the most recent records, newest first.
func (repo *ExperimentRepository) List(ctx context.Context, limit int) ([]experiments.Record, error) {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return nil, ErrPostgresNotConfigured
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	var rows []experimentRow
	if err := pgConn.SelectContext(ctx, &rows, listRecordsQuery, limit); err != nil {
		return nil, fmt.Errorf("error listing experiment records: %w", err)
	}

	records := make([]experiments.Record, len(rows))
	for i, row := range rows {
		records[i] = row.record()
	}

	return records, nil
}
