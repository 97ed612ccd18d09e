package experiments

import (
	"testing"

	"github.com/lk16/minimax-othello/internal/agent"
	"github.com/lk16/minimax-othello/internal/search"
	"github.com/stretchr/testify/require"
)

func TestSearchVersusDepth(t *testing.T) {
	matchups := SearchVersusDepth(DefaultSearchDepths, DefaultBoardSize)
	require.Len(t, matchups, 6*3*2)

	first := matchups[0]
	require.Equal(t, 6, first.Cols)
	require.Equal(t, 6, first.Rows)
	require.Equal(t, first.Black, first.White)
	require.Equal(t, agent.Config{Kind: agent.KindAlphaBeta, Heuristic: search.PieceDifference, Prune: false, Depth: 2}, first.Black)

	// Pruning alternates fastest, then heuristic, then depth
	require.True(t, matchups[1].Black.Prune)
	require.Equal(t, search.Mobility, matchups[2].Black.Heuristic)
	require.Equal(t, 4, matchups[6].Black.Depth)
	require.Equal(t, 12, matchups[len(matchups)-1].Black.Depth)
}

func TestHeuristicQuality(t *testing.T) {
	matchups := HeuristicQuality([]int{2, 4}, 4)
	require.Len(t, matchups, 2*6)

	for _, matchup := range matchups {
		require.NotEqual(t, matchup.Black.Heuristic, matchup.White.Heuristic)
		require.True(t, matchup.Black.Prune)
		require.True(t, matchup.White.Prune)
		require.Equal(t, matchup.Black.Depth, matchup.White.Depth)
	}

	require.Equal(t, search.PieceDifference, matchups[0].Black.Heuristic)
	require.Equal(t, search.Mobility, matchups[0].White.Heuristic)
	require.Equal(t, "4x4 H0(alphabeta, depth 2) vs H1(alphabeta, depth 2)", matchups[0].String())
}
