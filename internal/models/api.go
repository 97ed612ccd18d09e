package models

import (
	"errors"
	"fmt"

	"github.com/lk16/minimax-othello/internal/othello"
	"github.com/lk16/minimax-othello/internal/search"
)

var ErrInvalidRequest = errors.New("invalid request")

// MoveRequest represents the payload for a move suggestion.
type MoveRequest struct {
	Board     string `json:"board"`
	Side      string `json:"side"`
	Heuristic string `json:"heuristic"`
	Prune     bool   `json:"prune"`
	Depth     int    `json:"depth"`
}

// MoveQuery is a validated MoveRequest.
type MoveQuery struct {
	Board     *othello.Board
	Side      othello.Cell
	Heuristic search.Heuristic
	Prune     bool
	Depth     int
}

// Validate parses all fields of the request. Errors wrap ErrInvalidRequest.
func (r *MoveRequest) Validate() (MoveQuery, error) {
	board, err := othello.ParseBoard(r.Board)
	if err != nil {
		return MoveQuery{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	side, err := othello.ParseSide(r.Side)
	if err != nil {
		return MoveQuery{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	heuristic, err := search.ParseHeuristic(r.Heuristic)
	if err != nil {
		return MoveQuery{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if r.Depth < 1 || r.Depth > search.MaxDepth {
		return MoveQuery{}, fmt.Errorf("%w: %w: %d", ErrInvalidRequest, search.ErrInvalidDepth, r.Depth)
	}

	return MoveQuery{
		Board:     board,
		Side:      side,
		Heuristic: heuristic,
		Prune:     r.Prune,
		Depth:     r.Depth,
	}, nil
}

// MoveResponse represents the suggested move.
type MoveResponse struct {
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Nodes  int    `json:"nodes"`
	Cached bool   `json:"cached"`
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
