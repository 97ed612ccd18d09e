package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lk16/minimax-othello/internal/othello"
)

// MaxDepth is the deepest search a Bot accepts. Passes do not recurse, so the
// actual recursion depth is also bounded by the number of empty squares.
const MaxDepth = 64

var ErrInvalidDepth = errors.New("invalid search depth")

// Result describes the outcome of one search.
type Result struct {
	// Move is the chosen move, or (0, 0) if Found is false.
	Move othello.Move

	// Value is the minimax value of Move from the bot's perspective.
	Value float64

	// Nodes is the number of positions visited below the root.
	Nodes int

	// Found is false when the bot had no legal move.
	Found bool
}

// Bot is an automated player that picks moves with depth-bounded minimax,
// optionally with alpha-beta pruning.
type Bot struct {
	side      othello.Cell
	opponent  othello.Cell
	heuristic Heuristic
	prune     bool
	maxDepth  int

	// nodes counts all positions visited below a search root, over the lifetime of the bot.
	nodes int
}

// NewBot creates a new bot playing side.
func NewBot(side othello.Cell, heuristic Heuristic, prune bool, maxDepth int) (*Bot, error) {
	if !side.IsSide() {
		return nil, fmt.Errorf("%w: %s", othello.ErrInvalidSide, side)
	}

	if !heuristic.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeuristic, heuristic)
	}

	if maxDepth < 1 || maxDepth > MaxDepth {
		return nil, fmt.Errorf("%w: %d, must be between 1 and %d", ErrInvalidDepth, maxDepth, MaxDepth)
	}

	return &Bot{
		side:      side,
		opponent:  side.Opponent(),
		heuristic: heuristic,
		prune:     prune,
		maxDepth:  maxDepth,
	}, nil
}

// Side returns the side the bot plays.
func (b *Bot) Side() othello.Cell {
	return b.side
}

// NodesSeen returns the cumulative number of nodes visited by all searches.
func (b *Bot) NodesSeen() int {
	return b.nodes
}

// GetMove returns the best move for the bot on board. The board is not modified.
func (b *Bot) GetMove(board *othello.Board) (othello.Move, error) {
	return b.Search(board).Move, nil
}

// Search runs a full search rooted at board. Moves are tried by column and then
// by row; the first move reaching the best value wins ties.
func (b *Bot) Search(board *othello.Board) Result {
	startTime := time.Now()
	nodesBefore := b.nodes

	alpha := math.Inf(-1)
	beta := math.Inf(1)

	result := Result{Value: math.Inf(-1)}

	for _, move := range board.LegalMoves(b.side) {
		child := b.play(board, move, b.side)
		value := b.minValue(child, 1, alpha, beta)

		// A first move is always taken, even if it loses for sure.
		if !result.Found || value > result.Value {
			result.Move = move
			result.Value = value
			result.Found = true
		}

		if b.prune {
			alpha = max(alpha, result.Value)
		}
	}

	result.Nodes = b.nodes - nodesBefore

	b.logStats(result, time.Since(startTime))

	return result
}

// maxValue evaluates a position where the bot is to move.
func (b *Bot) maxValue(board *othello.Board, depth int, alpha, beta float64) float64 {
	if value, ok := b.leafValue(board, depth); ok {
		return value
	}

	moves := board.LegalMoves(b.side)
	if len(moves) == 0 {
		// forced pass
		return b.heuristic.Evaluate(board, b.side)
	}

	value := math.Inf(-1)

	for _, move := range moves {
		b.nodes++
		value = max(value, b.minValue(b.play(board, move, b.side), depth+1, alpha, beta))

		if b.prune {
			if value >= beta {
				break
			}
			alpha = max(alpha, value)
		}
	}

	return value
}

// minValue evaluates a position where the opponent is to move.
func (b *Bot) minValue(board *othello.Board, depth int, alpha, beta float64) float64 {
	if value, ok := b.leafValue(board, depth); ok {
		return value
	}

	moves := board.LegalMoves(b.opponent)
	if len(moves) == 0 {
		// forced pass
		return b.heuristic.Evaluate(board, b.side)
	}

	value := math.Inf(1)

	for _, move := range moves {
		b.nodes++
		value = min(value, b.maxValue(b.play(board, move, b.opponent), depth+1, alpha, beta))

		if b.prune {
			if value <= alpha {
				break
			}
			beta = min(beta, value)
		}
	}

	return value
}

// leafValue returns the value of board if the search stops here.
func (b *Bot) leafValue(board *othello.Board, depth int) (float64, bool) {
	if board.IsTerminal() {
		return b.terminalValue(board), true
	}

	if depth >= b.maxDepth {
		return b.heuristic.Evaluate(board, b.side), true
	}

	return 0, false
}

// terminalValue scores a finished game: 0 for a draw, +Inf for a win and -Inf for a loss.
func (b *Bot) terminalValue(board *othello.Board) float64 {
	diff := board.CountScore(b.side) - board.CountScore(b.opponent)

	switch {
	case diff > 0:
		return math.Inf(1)
	case diff < 0:
		return math.Inf(-1)
	default:
		return 0
	}
}

// play returns a copy of board with move applied. The move must be legal.
func (b *Bot) play(board *othello.Board, move othello.Move, side othello.Cell) *othello.Board {
	child := board.Clone()
	if err := child.PlayMove(move.Col, move.Row, side); err != nil {
		panic(fmt.Sprintf("search generated illegal move %s: %v", move, err))
	}
	return child
}

func (b *Bot) logStats(result Result, elapsed time.Duration) {
	nodesPerSecond := int64(0)
	if elapsed.Seconds() > 0.000001 {
		nodesPerSecond = int64(float64(result.Nodes) / elapsed.Seconds())
	}

	slog.Debug("search done",
		"side", b.side.Symbol(),
		"heuristic", b.heuristic,
		"prune", b.prune,
		"depth", b.maxDepth,
		"move", result.Move,
		"value", result.Value,
		"nodes", result.Nodes,
		"elapsed", elapsed,
		"nodes_per_second", nodesPerSecond,
	)
}
