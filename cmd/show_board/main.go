package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lk16/minimax-othello/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, rows separated by '/'")
	sideString := flag.String("side", "", "mark the legal moves of this side (X or O)")
	flag.Parse()

	board, err := othello.ParseBoard(*boardString)
	if err != nil {
		slog.Error("Failed to parse board", "error", err)
		os.Exit(1)
	}

	side := othello.Empty
	if *sideString != "" {
		side, err = othello.ParseSide(*sideString)
		if err != nil {
			slog.Error("Failed to parse side", "error", err)
			os.Exit(1)
		}
	}

	board.Print(os.Stdout, side)
	fmt.Printf("X: %d O: %d\n", board.CountScore(othello.Black), board.CountScore(othello.White))
}
