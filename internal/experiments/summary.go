package experiments

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// WriteNodeTable prints one line per depth with the total nodes seen in each
// game at that depth, in the order the games were played.
func WriteNodeTable(w io.Writer, records []Record) {
	byDepth := make(map[int][]string)
	depths := make([]int, 0)

	for _, record := range records {
		depth := record.Black.Depth
		if _, ok := byDepth[depth]; !ok {
			depths = append(depths, depth)
		}
		byDepth[depth] = append(byDepth[depth], fmt.Sprint(record.TotalNodes()))
	}

	slices.Sort(depths)

	for _, depth := range depths {
		fmt.Fprintf(w, "depth %2d: %s\n", depth, strings.Join(byDepth[depth], " "))
	}
}

// WriteOutcomes prints the winner of every game.
func WriteOutcomes(w io.Writer, records []Record) {
	for _, record := range records {
		outcome := "Tie"
		switch record.Winner {
		case "X":
			outcome = "P1 Wins"
		case "O":
			outcome = "P2 Wins"
		}

		fmt.Fprintf(w, "depth %d %s(X) vs %s(O): %s\n",
			record.Black.Depth, record.Black.Heuristic, record.White.Heuristic, outcome)
	}
}
