package othello

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSide = errors.New("invalid side")

// Cell is the content of a square: Empty or one of the two sides.
// Black moves first and uses symbol X, White uses symbol O.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// ParseSide converts a side symbol ("X" or "O", case insensitive) to a Cell.
func ParseSide(s string) (Cell, error) {
	switch strings.ToUpper(s) {
	case "X":
		return Black, nil
	case "O":
		return White, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

func parseCell(c byte) (Cell, error) {
	switch c {
	case '.':
		return Empty, nil
	case 'X', 'x':
		return Black, nil
	case 'O', 'o':
		return White, nil
	default:
		return Empty, fmt.Errorf("invalid cell %q", c)
	}
}

// IsSide returns whether the cell is Black or White.
func (c Cell) IsSide() bool {
	return c == Black || c == White
}

// Opponent returns the other side. Empty has no opponent and returns Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Symbol returns "X", "O" or "." for Empty.
func (c Cell) Symbol() string {
	return string(c.char())
}

func (c Cell) char() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
