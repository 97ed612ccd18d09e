package search

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lk16/minimax-othello/internal/othello"
)

const cornerBonus = 10

var ErrInvalidHeuristic = errors.New("invalid heuristic")

// Heuristic selects a static evaluation function. Values are always from the
// perspective of the side passed to Evaluate: higher is better for that side.
type Heuristic int

const (
	// PieceDifference (H0) counts own discs minus opponent discs.
	PieceDifference Heuristic = iota

	// Mobility (H1) counts own legal moves minus opponent legal moves.
	Mobility

	// CornerBonus (H2) is PieceDifference plus 10 for every corner that is
	// owned by, or a legal move for, the evaluating side.
	CornerBonus
)

// ParseHeuristic accepts "0", "1", "2" as well as "h0", "h1", "h2".
func ParseHeuristic(s string) (Heuristic, error) {
	if len(s) == 2 && (s[0] == 'h' || s[0] == 'H') {
		s = s[1:]
	}

	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeuristic, s)
	}

	h := Heuristic(id)
	if !h.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHeuristic, id)
	}

	return h, nil
}

// Valid returns whether h is one of the known heuristics.
func (h Heuristic) Valid() bool {
	switch h {
	case PieceDifference, Mobility, CornerBonus:
		return true
	default:
		return false
	}
}

func (h Heuristic) String() string {
	return "H" + strconv.Itoa(int(h))
}

// Evaluate returns the heuristic value of board for side me.
func (h Heuristic) Evaluate(board *othello.Board, me othello.Cell) float64 {
	switch h {
	case PieceDifference:
		return float64(pieceDifference(board, me))
	case Mobility:
		return float64(board.CountLegalMoves(me) - board.CountLegalMoves(me.Opponent()))
	case CornerBonus:
		return float64(pieceDifference(board, me) + cornerBonus*countCorners(board, me))
	default:
		panic(fmt.Sprintf("unknown heuristic %d", h))
	}
}

func pieceDifference(board *othello.Board, me othello.Cell) int {
	return board.CountScore(me) - board.CountScore(me.Opponent())
}

// countCorners returns the number of corners owned by me or playable by me.
// The corners are (0, 0), (0, rows-1), (cols-1, 0) and (cols-1, rows-1).
func countCorners(board *othello.Board, me othello.Cell) int {
	lastCol := board.Cols() - 1
	lastRow := board.Rows() - 1

	corners := [4][2]int{
		{0, 0}, {0, lastRow}, {lastCol, 0}, {lastCol, lastRow},
	}

	count := 0
	for _, corner := range corners {
		// Corners are always in range, boards are at least 2x2.
		cell, _ := board.Cell(corner[0], corner[1])

		if cell == me || board.IsLegalMove(corner[0], corner[1], me) {
			count++
		}
	}

	return count
}
