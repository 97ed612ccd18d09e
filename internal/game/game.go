package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lk16/minimax-othello/internal/agent"
	"github.com/lk16/minimax-othello/internal/othello"
)

// maxAttempts is the number of illegal moves in a row after which an agent is given up on.
const maxAttempts = 100

var (
	ErrTooManyIllegalMoves = errors.New("too many illegal moves")
	ErrSideMismatch        = errors.New("agent plays the wrong side")
)

// PassMove marks a turn in which the side to move had no legal move.
var PassMove = othello.Move{Col: -1, Row: -1}

// Result summarizes a finished game.
type Result struct {
	BlackScore int `json:"black_score"`
	WhiteScore int `json:"white_score"`

	// Winner is Empty for a draw.
	Winner othello.Cell `json:"winner"`

	// Turns counts played moves, passes excluded.
	Turns  int `json:"turns"`
	Passes int `json:"passes"`

	BlackNodes int `json:"black_nodes"`
	WhiteNodes int `json:"white_nodes"`

	// Moves lists all moves in order, with PassMove for passes.
	Moves []othello.Move `json:"moves"`
}

// Game drives a match between two agents.
type Game struct {
	board *othello.Board

	// agents is indexed by side, index 0 is unused.
	agents [3]agent.Agent

	// turn is the side to move
	turn othello.Cell

	// moves is the list of moves in the game, including passes.
	moves []othello.Move

	// consecutivePasses ends the game when it reaches 2
	consecutivePasses int

	// out receives the board and messages meant for people watching.
	out io.Writer
}

// New creates a game on a new cols×rows board. Black moves first.
func New(cols, rows int, black, white agent.Agent, out io.Writer) (*Game, error) {
	board, err := othello.NewBoard(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return NewWithStart(board, othello.Black, black, white, out)
}

// NewWithStart creates a game from a custom start position with turn to move.
// The game takes ownership of start.
func NewWithStart(start *othello.Board, turn othello.Cell, black, white agent.Agent, out io.Writer) (*Game, error) {
	if black.Side() != othello.Black || white.Side() != othello.White {
		return nil, ErrSideMismatch
	}

	if !turn.IsSide() {
		return nil, fmt.Errorf("%w: %s", othello.ErrInvalidSide, turn)
	}

	if out == nil {
		out = io.Discard
	}

	g := &Game{
		board: start,
		turn:  turn,
		moves: make([]othello.Move, 0),
		out:   out,
	}
	g.agents[othello.Black] = black
	g.agents[othello.White] = white

	return g, nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *othello.Board {
	return g.board.Clone()
}

// Turn returns the side to move.
func (g *Game) Turn() othello.Cell {
	return g.turn
}

// IsOver returns whether both sides passed in a row.
func (g *Game) IsOver() bool {
	return g.consecutivePasses >= 2
}

// Run plays until both sides pass in a row. The context is checked between turns.
func (g *Game) Run(ctx context.Context) (Result, error) {
	g.board.Print(g.out, g.turn)

	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if err := g.Step(); err != nil {
			return Result{}, err
		}
	}

	return g.result(), nil
}

// Step plays a single turn, which is a pass if the side to move has no legal move.
func (g *Game) Step() error {
	if g.IsOver() {
		return nil
	}

	current := g.agents[g.turn]

	if !g.board.HasLegalMovesRemaining(g.turn) {
		fmt.Fprintf(g.out, "Player %s can't move\n", g.turn.Symbol())
		slog.Debug("pass", "side", g.turn.Symbol(), "consecutive", g.consecutivePasses+1)

		g.moves = append(g.moves, PassMove)
		g.consecutivePasses++
		g.turn = g.turn.Opponent()
		return nil
	}

	fmt.Fprintf(g.out, "Player %s move:\n", g.turn.Symbol())

	move, err := g.requestMove(current)
	if err != nil {
		return err
	}

	// requestMove only returns legal moves
	if err = g.board.PlayMove(move.Col, move.Row, g.turn); err != nil {
		return fmt.Errorf("failed to play move: %w", err)
	}

	fmt.Fprintf(g.out, "Move: %s\n\n", move)
	g.board.Print(g.out, g.turn.Opponent())

	g.moves = append(g.moves, move)
	g.consecutivePasses = 0
	g.turn = g.turn.Opponent()
	return nil
}

// requestMove asks current for a move until it returns a legal one.
func (g *Game) requestMove(current agent.Agent) (othello.Move, error) {
	for range maxAttempts {
		move, err := current.GetMove(g.board.Clone())

		if errors.Is(err, agent.ErrInvalidInput) {
			fmt.Fprintln(g.out, "Invalid input")
			slog.Debug("invalid input", "side", g.turn.Symbol(), "error", err)
			continue
		}

		if err != nil {
			return othello.Move{}, fmt.Errorf("failed to get move for %s: %w", g.turn, err)
		}

		if !g.board.IsLegalMove(move.Col, move.Row, g.turn) {
			fmt.Fprintf(g.out, "Col: %d, Row: %d, Player: %s\nInvalid move\n", move.Col, move.Row, g.turn.Symbol())
			slog.Debug("illegal move", "side", g.turn.Symbol(), "move", move)
			continue
		}

		return move, nil
	}

	return othello.Move{}, fmt.Errorf("%w: %s gave %d in a row", ErrTooManyIllegalMoves, g.turn, maxAttempts)
}

func (g *Game) result() Result {
	result := Result{
		BlackScore: g.board.CountScore(othello.Black),
		WhiteScore: g.board.CountScore(othello.White),
		BlackNodes: g.agents[othello.Black].NodesSeen(),
		WhiteNodes: g.agents[othello.White].NodesSeen(),
		Moves:      append([]othello.Move(nil), g.moves...),
	}

	for _, move := range g.moves {
		if move == PassMove {
			result.Passes++
		} else {
			result.Turns++
		}
	}

	switch {
	case result.BlackScore > result.WhiteScore:
		result.Winner = othello.Black
	case result.WhiteScore > result.BlackScore:
		result.Winner = othello.White
	default:
		result.Winner = othello.Empty
	}

	return result
}

// Announce writes the final outcome in the format of the text driver.
func (r Result) Announce(w io.Writer) {
	switch r.Winner {
	case othello.Black:
		fmt.Fprintln(w, "Player 1 Wins!")
	case othello.White:
		fmt.Fprintln(w, "Player 2 Wins!")
	default:
		fmt.Fprintln(w, "Tie game!!")
	}

	fmt.Fprintf(w, "Score: X %d - O %d\n", r.BlackScore, r.WhiteScore)
	fmt.Fprintln(w, "turn count:", r.Turns)
	fmt.Fprintln(w, "total nodes seen by p1", r.BlackNodes)
	fmt.Fprintln(w, "total nodes seen by p2", r.WhiteNodes)
}
