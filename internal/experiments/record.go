package experiments

import (
	"time"

	"github.com/google/uuid"
	"github.com/lk16/minimax-othello/internal/game"
	"github.com/lk16/minimax-othello/internal/othello"
)

// Record is the outcome of one experiment game.
type Record struct {
	RunID uuid.UUID `json:"run_id"`
	Game  int       `json:"game"`

	Matchup

	BlackScore int `json:"black_score"`
	WhiteScore int `json:"white_score"`

	// Winner is "X", "O" or "-" for a draw.
	Winner string `json:"winner"`

	Turns      int           `json:"turns"`
	BlackNodes int           `json:"black_nodes"`
	WhiteNodes int           `json:"white_nodes"`
	Duration   time.Duration `json:"duration"`

	// Moves uses field notation, "--" marks a pass.
	Moves []string `json:"moves"`

	CreatedAt time.Time `json:"created_at"`
}

// TotalNodes returns the nodes seen by both sides.
func (r Record) TotalNodes() int {
	return r.BlackNodes + r.WhiteNodes
}

func winnerSymbol(winner othello.Cell) string {
	if winner == othello.Empty {
		return "-"
	}
	return winner.Symbol()
}

func moveFields(moves []othello.Move) []string {
	fields := make([]string, len(moves))
	for i, move := range moves {
		if move == game.PassMove {
			fields[i] = "--"
		} else {
			fields[i] = move.String()
		}
	}
	return fields
}
