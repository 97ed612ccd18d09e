package othello

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidField = errors.New("invalid field")

// Move addresses a square by column and row, both zero based.
type Move struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// String returns field notation, e.g. "c3" for column 2, row 2.
func (m Move) String() string {
	if m.Col < 0 || m.Col >= MaxSize || m.Row < 0 {
		return fmt.Sprintf("(%d,%d)", m.Col, m.Row)
	}
	return string(rune('a'+m.Col)) + strconv.Itoa(m.Row+1)
}

// ParseMove converts field notation (e.g. "a1", "d12") to a Move.
func ParseMove(field string) (Move, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if len(field) < 2 || field[0] < 'a' || field[0] > 'z' {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	row, err := strconv.Atoi(field[1:])
	if err != nil || row < 1 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	return Move{Col: int(field[0] - 'a'), Row: row - 1}, nil
}
