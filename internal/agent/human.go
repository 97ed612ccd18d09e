package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lk16/minimax-othello/internal/othello"
)

var ErrInvalidInput = errors.New("invalid input")

// Human reads moves as a column and a row number from a reader.
type Human struct {
	side othello.Cell
	in   *bufio.Reader
	out  io.Writer
}

// NewHuman creates a human agent that prompts on out and reads from in.
// Two humans can share one *bufio.Reader, no input is read ahead.
func NewHuman(side othello.Cell, in io.Reader, out io.Writer) *Human {
	if out == nil {
		out = io.Discard
	}

	return &Human{
		side: side,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Side returns the side the human plays.
func (h *Human) Side() othello.Cell {
	return h.side
}

// NodesSeen always returns 0, humans do not search.
func (h *Human) NodesSeen() int {
	return 0
}

// GetMove asks for a column and a row. The move is not validated here.
func (h *Human) GetMove(_ *othello.Board) (othello.Move, error) {
	col, err := h.readInt("Enter col:")
	if err != nil {
		return othello.Move{}, err
	}

	row, err := h.readInt("Enter row:")
	if err != nil {
		return othello.Move{}, err
	}

	return othello.Move{Col: col, Row: row}, nil
}

func (h *Human) readInt(prompt string) (int, error) {
	fmt.Fprint(h.out, prompt)

	var word string
	if _, err := fmt.Fscan(h.in, &word); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	value, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, word)
	}

	return value, nil
}
