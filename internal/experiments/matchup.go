package experiments

import (
	"fmt"

	"github.com/lk16/minimax-othello/internal/agent"
	"github.com/lk16/minimax-othello/internal/search"
)

const DefaultBoardSize = 6

var (
	DefaultSearchDepths  = []int{2, 4, 6, 8, 10, 12}
	DefaultQualityDepths = []int{2, 4, 6, 8}
)

var heuristics = []search.Heuristic{search.PieceDifference, search.Mobility, search.CornerBonus}

// Matchup describes one game between two automated agents.
type Matchup struct {
	Cols  int          `json:"cols"`
	Rows  int          `json:"rows"`
	Black agent.Config `json:"black"`
	White agent.Config `json:"white"`
}

func (m Matchup) String() string {
	return fmt.Sprintf("%dx%d %s vs %s", m.Cols, m.Rows, describe(m.Black), describe(m.White))
}

func describe(cfg agent.Config) string {
	if cfg.Kind != agent.KindAlphaBeta {
		return cfg.Kind.String()
	}

	prune := "minimax"
	if cfg.Prune {
		prune = "alphabeta"
	}

	return fmt.Sprintf("%s(%s, depth %d)", cfg.Heuristic, prune, cfg.Depth)
}

func bot(heuristic search.Heuristic, prune bool, depth int) agent.Config {
	return agent.Config{
		Kind:      agent.KindAlphaBeta,
		Heuristic: heuristic,
		Prune:     prune,
		Depth:     depth,
	}
}

// SearchVersusDepth returns self-play matchups for every depth, heuristic and
// pruning setting, used to compare the number of visited nodes.
func SearchVersusDepth(depths []int, size int) []Matchup {
	matchups := make([]Matchup, 0, len(depths)*len(heuristics)*2)

	for _, depth := range depths {
		for _, heuristic := range heuristics {
			for _, prune := range []bool{false, true} {
				cfg := bot(heuristic, prune, depth)
				matchups = append(matchups, Matchup{Cols: size, Rows: size, Black: cfg, White: cfg})
			}
		}
	}

	return matchups
}

// HeuristicQuality returns matchups of every ordered pair of distinct
// heuristics at every depth. Both sides prune.
func HeuristicQuality(depths []int, size int) []Matchup {
	matchups := make([]Matchup, 0, len(depths)*len(heuristics)*(len(heuristics)-1))

	for _, depth := range depths {
		for _, black := range heuristics {
			for _, white := range heuristics {
				if black == white {
					continue
				}

				matchups = append(matchups, Matchup{
					Cols:  size,
					Rows:  size,
					Black: bot(black, true, depth),
					White: bot(white, true, depth),
				})
			}
		}
	}

	return matchups
}
