package search //nolint:testpackage

import (
	"math"
	"testing"

	"github.com/lk16/minimax-othello/internal/othello"
	"github.com/stretchr/testify/require"
)

func mustParseBoard(t *testing.T, s string) *othello.Board {
	t.Helper()
	b, err := othello.ParseBoard(s)
	require.NoError(t, err)
	return b
}

func mustNewBot(t *testing.T, side othello.Cell, h Heuristic, prune bool, depth int) *Bot {
	t.Helper()
	bot, err := NewBot(side, h, prune, depth)
	require.NoError(t, err)
	return bot
}

func TestNewBot(t *testing.T) {
	tests := []struct {
		name      string
		side      othello.Cell
		heuristic Heuristic
		depth     int
		wantErr   error
	}{
		{"valid", othello.Black, PieceDifference, 4, nil},
		{"valid max depth", othello.White, CornerBonus, MaxDepth, nil},
		{"empty side", othello.Empty, PieceDifference, 4, othello.ErrInvalidSide},
		{"unknown heuristic", othello.Black, Heuristic(3), 4, ErrInvalidHeuristic},
		{"negative heuristic", othello.Black, Heuristic(-1), 4, ErrInvalidHeuristic},
		{"zero depth", othello.Black, Mobility, 0, ErrInvalidDepth},
		{"too deep", othello.Black, Mobility, MaxDepth + 1, ErrInvalidDepth},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bot, err := NewBot(test.side, test.heuristic, true, test.depth)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				require.Nil(t, bot)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.side, bot.Side())
			require.Equal(t, test.side.Opponent(), bot.opponent)
			require.Zero(t, bot.NodesSeen())
		})
	}
}

func TestBot_Opening4x4(t *testing.T) {
	board, err := othello.NewBoard(4, 4)
	require.NoError(t, err)

	// Every opening move gives 4 vs 1 discs, and every reply gets back to 3 vs 3.
	// All openings are worth 0, so the first one in enumeration order wins.
	bot := mustNewBot(t, othello.Black, PieceDifference, false, 2)
	result := bot.Search(board)

	require.True(t, result.Found)
	require.Equal(t, othello.Move{Col: 0, Row: 1}, result.Move)
	require.Equal(t, 0.0, result.Value)
	require.Equal(t, 12, result.Nodes)
	require.Equal(t, 12, bot.NodesSeen())

	// The search works on clones
	require.Equal(t, "..../.OX./.XO./....", board.String())
}

func TestBot_Opening4x4_Pruned(t *testing.T) {
	board, err := othello.NewBoard(4, 4)
	require.NoError(t, err)

	bot := mustNewBot(t, othello.Black, PieceDifference, true, 2)
	result := bot.Search(board)

	// After the first opening alpha is 0, every other opening is cut after one reply.
	require.Equal(t, othello.Move{Col: 0, Row: 1}, result.Move)
	require.Equal(t, 0.0, result.Value)
	require.Equal(t, 6, result.Nodes)
}

func TestBot_PicksBestMove(t *testing.T) {
	// (0, 0) flips one disc, (4, 1) flips three.
	board := mustParseBoard(t, ".OX.../XOOO..")

	bot := mustNewBot(t, othello.Black, PieceDifference, false, 1)
	result := bot.Search(board)

	require.Equal(t, othello.Move{Col: 4, Row: 1}, result.Move)
	require.Equal(t, 5.0, result.Value)

	// Children of the root are not counted
	require.Zero(t, result.Nodes)
}

func TestBot_TieBreak(t *testing.T) {
	// Both moves flip exactly one disc: the lowest column wins.
	board := mustParseBoard(t, "......./XO...OX/.......")
	moves := board.LegalMoves(othello.Black)
	require.Equal(t, []othello.Move{{Col: 2, Row: 1}, {Col: 4, Row: 1}}, moves)

	for _, prune := range []bool{false, true} {
		bot := mustNewBot(t, othello.Black, PieceDifference, prune, 1)
		result := bot.Search(board)
		require.Equal(t, othello.Move{Col: 2, Row: 1}, result.Move)
		require.Equal(t, 3.0, result.Value)
	}
}

func TestBot_TieBreak_SameColumn(t *testing.T) {
	// Both moves are in column 2, the lowest row wins.
	board := mustParseBoard(t, "..X/..O/.../.../..O/..X")
	moves := board.LegalMoves(othello.Black)
	require.Equal(t, []othello.Move{{Col: 2, Row: 2}, {Col: 2, Row: 3}}, moves)

	bot := mustNewBot(t, othello.Black, PieceDifference, false, 1)
	require.Equal(t, othello.Move{Col: 2, Row: 2}, bot.Search(board).Move)
}

func TestBot_ForcedPass(t *testing.T) {
	// After White plays (0, 3), Black cannot move but White can:
	// the position is scored as is, 4 vs 9 discs.
	// After White plays (3, 3), Black has two replies that both end at 3 vs 11.
	board := mustParseBoard(t, "OXXX/XXXX/XXXX/....")
	require.Equal(t, []othello.Move{{Col: 0, Row: 3}, {Col: 3, Row: 3}}, board.LegalMoves(othello.White))

	bot := mustNewBot(t, othello.White, PieceDifference, false, 2)
	result := bot.Search(board)

	require.True(t, result.Found)
	require.Equal(t, othello.Move{Col: 0, Row: 3}, result.Move)
	require.Equal(t, -5.0, result.Value)
	require.Equal(t, 2, result.Nodes)
}

func TestBot_TerminalWin(t *testing.T) {
	// Playing (2, 0) captures White's only disc and ends the game.
	board := mustParseBoard(t, "XO../....")

	bot := mustNewBot(t, othello.Black, Mobility, false, 3)
	result := bot.Search(board)

	require.Equal(t, othello.Move{Col: 2, Row: 0}, result.Move)
	require.True(t, math.IsInf(result.Value, 1))
	require.Zero(t, result.Nodes)
}

func TestBot_TerminalValue(t *testing.T) {
	bot := mustNewBot(t, othello.Black, PieceDifference, false, 2)

	tests := []struct {
		board string
		want  float64
	}{
		{"XXXX/XXXX/OOOO/OOOO", 0},
		{"XXXX/XXXX/XXXO/OOOO", math.Inf(1)},
		{"XXXX/XOOO/OOOO/OOOO", math.Inf(-1)},
	}

	for _, test := range tests {
		board := mustParseBoard(t, test.board)
		require.True(t, board.IsTerminal())
		require.Equal(t, test.want, bot.terminalValue(board))

		// Terminal positions are never expanded
		value, ok := bot.leafValue(board, 0)
		require.True(t, ok)
		require.Equal(t, test.want, value)
	}
}

func TestBot_NoLegalMove(t *testing.T) {
	// White has no move here, the fallback is (0, 0).
	board := mustParseBoard(t, "XXXX/XXXX/XXO./....")

	bot := mustNewBot(t, othello.White, PieceDifference, true, 3)
	result := bot.Search(board)

	require.False(t, result.Found)
	require.Equal(t, othello.Move{}, result.Move)
	require.Zero(t, result.Nodes)

	move, err := bot.GetMove(board)
	require.NoError(t, err)
	require.Equal(t, othello.Move{}, move)
}

func TestBot_Deterministic(t *testing.T) {
	board, err := othello.NewBoard(6, 6)
	require.NoError(t, err)
	require.NoError(t, board.PlayMove(1, 2, othello.Black))

	bot := mustNewBot(t, othello.White, Mobility, false, 3)

	first := bot.Search(board)
	for range 3 {
		again := bot.Search(board)
		require.Equal(t, first.Move, again.Move)
		require.Equal(t, first.Value, again.Value)
		require.Equal(t, first.Nodes, again.Nodes)
	}

	require.Equal(t, 4*first.Nodes, bot.NodesSeen())
}

func TestBot_PruningKeepsResult(t *testing.T) {
	boards := []string{
		"..../.OX./.XO./....",
		"....../....../..OX../..XO../....../......",
		"....../....../.XXX../..XO../....../......",
		"OXXX/XXXX/XXXX/....",
		"......../......../..XOX.../...OXO../..XOOX../....O.../......../........",
	}

	for _, s := range boards {
		for _, side := range []othello.Cell{othello.Black, othello.White} {
			for _, h := range []Heuristic{PieceDifference, Mobility, CornerBonus} {
				for _, depth := range []int{1, 2, 3, 4} {
					board := mustParseBoard(t, s)

					plain := mustNewBot(t, side, h, false, depth).Search(board)
					pruned := mustNewBot(t, side, h, true, depth).Search(board)

					require.Equal(t, plain.Found, pruned.Found)
					require.Equal(t, plain.Move, pruned.Move, "board %s side %s %s depth %d", s, side, h, depth)
					require.Equal(t, plain.Value, pruned.Value)
					require.LessOrEqual(t, pruned.Nodes, plain.Nodes)
				}
			}
		}
	}
}

func TestBot_PruningVisitsFewerNodes(t *testing.T) {
	board, err := othello.NewBoard(6, 6)
	require.NoError(t, err)

	plain := mustNewBot(t, othello.Black, PieceDifference, false, 5)
	pruned := mustNewBot(t, othello.Black, PieceDifference, true, 5)

	plainMove, err := plain.GetMove(board)
	require.NoError(t, err)
	prunedMove, err := pruned.GetMove(board)
	require.NoError(t, err)

	require.Equal(t, plainMove, prunedMove)
	require.Less(t, pruned.NodesSeen(), plain.NodesSeen())
}
