package agent

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lk16/minimax-othello/internal/othello"
	"github.com/lk16/minimax-othello/internal/search"
)

var (
	ErrInvalidKind = errors.New("invalid agent kind")
	ErrNoInput     = errors.New("human agent needs an input reader")
)

// Agent picks moves for one side.
type Agent interface {
	// Side returns the side the agent plays.
	Side() othello.Cell

	// GetMove returns the move the agent wants to play on board.
	GetMove(board *othello.Board) (othello.Move, error)

	// NodesSeen returns the number of search nodes visited over the agent's lifetime.
	NodesSeen() int
}

// Kind selects the agent implementation.
type Kind int

const (
	KindHuman Kind = iota
	KindAlphaBeta
)

// ParseKind converts "human" or "alphabeta" (case insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "human":
		return KindHuman, nil
	case "alphabeta":
		return KindAlphaBeta, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindAlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Config holds the settings for one agent. Heuristic, Prune and Depth are
// ignored for human agents.
type Config struct {
	Kind      Kind             `json:"kind"`
	Heuristic search.Heuristic `json:"heuristic"`
	Prune     bool             `json:"prune"`
	Depth     int              `json:"depth"`
}

// New creates an agent for side. Human agents prompt on out and read from in.
func New(side othello.Cell, cfg Config, in io.Reader, out io.Writer) (Agent, error) {
	switch cfg.Kind {
	case KindHuman:
		if !side.IsSide() {
			return nil, fmt.Errorf("%w: %s", othello.ErrInvalidSide, side)
		}
		if in == nil {
			return nil, ErrNoInput
		}
		return NewHuman(side, in, out), nil
	case KindAlphaBeta:
		bot, err := search.NewBot(side, cfg.Heuristic, cfg.Prune, cfg.Depth)
		if err != nil {
			return nil, fmt.Errorf("failed to create bot: %w", err)
		}
		return bot, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, cfg.Kind)
	}
}
