package experiments

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/lk16/minimax-othello/internal/agent"
	"github.com/lk16/minimax-othello/internal/search"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	records []Record
	err     error
}

func (s *memorySink) Save(_ context.Context, record Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func TestRunner_Run(t *testing.T) {
	sink := &memorySink{}
	runner := NewRunner(sink)

	matchups := SearchVersusDepth([]int{1, 2}, 4)

	records, err := runner.Run(context.Background(), matchups)
	require.NoError(t, err)
	require.Len(t, records, len(matchups))
	require.Equal(t, records, sink.records)

	for i, record := range records {
		require.Equal(t, runner.RunID(), record.RunID)
		require.Equal(t, i, record.Game)
		require.Equal(t, matchups[i], record.Matchup)
		require.Equal(t, 4+record.Turns, record.BlackScore+record.WhiteScore)
		require.Contains(t, []string{"X", "O", "-"}, record.Winner)
		require.Equal(t, "--", record.Moves[len(record.Moves)-1])
	}

	// Self-play with and without pruning plays the same game
	for i := 0; i < len(records); i += 2 {
		require.Equal(t, records[i].Moves, records[i+1].Moves)
		require.LessOrEqual(t, records[i+1].TotalNodes(), records[i].TotalNodes())
	}
}

func TestRunner_RejectsHumans(t *testing.T) {
	sink := &memorySink{}
	matchups := []Matchup{{Cols: 4, Rows: 4, Black: agent.Config{Kind: agent.KindHuman}, White: bot(search.Mobility, true, 2)}}

	_, err := NewRunner(sink).Run(context.Background(), matchups)
	require.ErrorIs(t, err, ErrHumanAgent)
	require.Empty(t, sink.records)
}

func TestRunner_SinkError(t *testing.T) {
	sinkErr := errors.New("disk full")
	sink := &memorySink{err: sinkErr}

	records, err := NewRunner(sink).Run(context.Background(), HeuristicQuality([]int{1}, 4))
	require.ErrorIs(t, err, sinkErr)
	require.Empty(t, records)
}

func TestRunner_InvalidConfig(t *testing.T) {
	matchups := []Matchup{{Cols: 4, Rows: 4, Black: bot(search.Mobility, true, 0), White: bot(search.Mobility, true, 2)}}

	_, err := NewRunner().Run(context.Background(), matchups)
	require.ErrorIs(t, err, search.ErrInvalidDepth)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner().Run(ctx, HeuristicQuality([]int{1}, 4))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewCSVWriter(&buf)
	runner := NewRunner(writer)

	records, err := runner.Run(context.Background(), HeuristicQuality([]int{1}, 4))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)
	require.Equal(t, csvHeader, rows[0])

	row := rows[1]
	require.Len(t, row, len(csvHeader))
	require.Equal(t, runner.RunID().String(), row[0])
	require.Equal(t, "0", row[1])
	require.Equal(t, "H0", row[4])
	require.Equal(t, "true", row[5])
	require.Equal(t, "H1", row[7])
	require.Equal(t, records[0].Winner, row[12])
	require.Equal(t, strings.Join(records[0].Moves, " "), row[17])
}

func TestCreateCSVFile(t *testing.T) {
	runner := NewRunner()

	writer, path, err := CreateCSVFile(t.TempDir(), runner.RunID())
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, runner.RunID().String()+".csv"))

	require.NoError(t, writer.Save(context.Background(), Record{RunID: runner.RunID(), Winner: "-"}))
	require.NoError(t, writer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "run_id,game,cols,rows"))
	require.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestSummaries(t *testing.T) {
	records, err := NewRunner().Run(context.Background(), SearchVersusDepth([]int{1, 2}, 4))
	require.NoError(t, err)

	var table bytes.Buffer
	WriteNodeTable(&table, records)
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "depth  1: "))
	require.Len(t, strings.Fields(lines[1]), 2+6)

	var outcomes bytes.Buffer
	WriteOutcomes(&outcomes, records)
	require.Equal(t, len(records), strings.Count(outcomes.String(), "\n"))
	require.Contains(t, outcomes.String(), "depth 1 H0(X) vs H0(O): ")
}
