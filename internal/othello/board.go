package othello

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	MinSize = 2
	MaxSize = 26
)

var (
	ErrOutOfRange         = errors.New("coordinates out of range")
	ErrIllegalMove        = errors.New("illegal move")
	ErrInvalidDimensions  = errors.New("invalid board dimensions")
	ErrInvalidBoardString = errors.New("invalid board string")
)

// directions lists the eight compass directions as (dCol, dRow).
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a cols×rows Othello grid. Cells are addressed by (col, row).
type Board struct {
	cols  int
	rows  int
	cells []Cell
}

// NewBoard creates a board in the starting configuration.
func NewBoard(cols, rows int) (*Board, error) {
	b, err := NewBoardEmpty(cols, rows)
	if err != nil {
		return nil, err
	}

	b.Initialize()
	return b, nil
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty(cols, rows int) (*Board, error) {
	if cols < MinSize || cols > MaxSize || rows < MinSize || rows > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d, both must be between %d and %d", ErrInvalidDimensions, cols, rows, MinSize, MaxSize)
	}

	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}, nil
}

// ParseBoard reads the format produced by String: rows separated by '/',
// each cell one of '.', 'X' or 'O'.
func ParseBoard(s string) (*Board, error) {
	lines := strings.Split(s, "/")

	b, err := NewBoardEmpty(len(lines[0]), len(lines))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoardString, err)
	}

	for row, line := range lines {
		if len(line) != b.cols {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrInvalidBoardString, row, len(line), b.cols)
		}

		for col := range line {
			cell, err := parseCell(line[col])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidBoardString, err)
			}
			b.cells[b.index(col, row)] = cell
		}
	}

	return b, nil
}

// Initialize resets the grid to the standard starting configuration.
func (b *Board) Initialize() {
	for i := range b.cells {
		b.cells[i] = Empty
	}

	c, r := b.cols/2, b.rows/2
	b.cells[b.index(c-1, r-1)] = White
	b.cells[b.index(c, r)] = White
	b.cells[b.index(c-1, r)] = Black
	b.cells[b.index(c, r-1)] = Black
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) index(col, row int) int {
	return row*b.cols + col
}

func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// Cell returns the contents of (col, row).
func (b *Board) Cell(col, row int) (Cell, error) {
	if !b.inBounds(col, row) {
		return Empty, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, col, row, b.cols, b.rows)
	}
	return b.cells[b.index(col, row)], nil
}

// SetCell overwrites (col, row) without applying any captures.
func (b *Board) SetCell(col, row int, cell Cell) error {
	if !b.inBounds(col, row) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, col, row, b.cols, b.rows)
	}
	b.cells[b.index(col, row)] = cell
	return nil
}

// captureLength walks from (col, row) in direction (dCol, dRow) and returns the
// number of opponent discs side would capture that way, or 0.
func (b *Board) captureLength(col, row, dCol, dRow int, side Cell) int {
	opponent := side.Opponent()
	n := 0

	for {
		col += dCol
		row += dRow

		if !b.inBounds(col, row) {
			return 0
		}

		switch b.cells[b.index(col, row)] {
		case opponent:
			n++
		case side:
			return n
		default:
			return 0
		}
	}
}

// IsLegalMove checks whether side may place a disc on (col, row).
func (b *Board) IsLegalMove(col, row int, side Cell) bool {
	if !side.IsSide() || !b.inBounds(col, row) || b.cells[b.index(col, row)] != Empty {
		return false
	}

	for _, dir := range directions {
		if b.captureLength(col, row, dir[0], dir[1], side) > 0 {
			return true
		}
	}

	return false
}

// PlayMove places a disc for side on (col, row) and flips all captured discs.
// The board is left untouched if the move is illegal.
func (b *Board) PlayMove(col, row int, side Cell) error {
	if !b.IsLegalMove(col, row, side) {
		return fmt.Errorf("%w: %s at (%d, %d)", ErrIllegalMove, side, col, row)
	}

	for _, dir := range directions {
		n := b.captureLength(col, row, dir[0], dir[1], side)
		for dist := 1; dist <= n; dist++ {
			b.cells[b.index(col+dist*dir[0], row+dist*dir[1])] = side
		}
	}

	b.cells[b.index(col, row)] = side
	return nil
}

// LegalMoves returns all legal moves for side, ordered by column and then by row.
func (b *Board) LegalMoves(side Cell) []Move {
	moves := make([]Move, 0)

	for col := range b.cols {
		for row := range b.rows {
			if b.IsLegalMove(col, row, side) {
				moves = append(moves, Move{Col: col, Row: row})
			}
		}
	}

	return moves
}

// CountLegalMoves returns the number of legal moves for side.
func (b *Board) CountLegalMoves(side Cell) int {
	count := 0

	for col := range b.cols {
		for row := range b.rows {
			if b.IsLegalMove(col, row, side) {
				count++
			}
		}
	}

	return count
}

// HasLegalMovesRemaining checks whether side has any legal move.
func (b *Board) HasLegalMovesRemaining(side Cell) bool {
	for col := range b.cols {
		for row := range b.rows {
			if b.IsLegalMove(col, row, side) {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns whether neither side has a legal move.
func (b *Board) IsTerminal() bool {
	return !b.HasLegalMovesRemaining(Black) && !b.HasLegalMovesRemaining(White)
}

// CountScore returns the number of cells holding cell. Passing Empty counts
// the empty squares.
func (b *Board) CountScore(cell Cell) int {
	count := 0
	for _, c := range b.cells {
		if c == cell {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)

	return &Board{
		cols:  b.cols,
		rows:  b.rows,
		cells: cells,
	}
}

// Equal checks if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.cols != other.cols || b.rows != other.rows {
		return false
	}

	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ASCIIArtLines returns the ascii art lines for the board, marking legal
// moves of side with a dot. Pass Empty to omit move markers.
func (b *Board) ASCIIArtLines(side Cell) []string {
	lines := make([]string, b.rows+2)

	var header strings.Builder
	header.WriteString("   +")
	for col := range b.cols {
		header.WriteByte('-')
		header.WriteByte(byte('a' + col))
	}
	header.WriteString("-+")
	lines[0] = header.String()

	for row := range b.rows {
		var line strings.Builder
		fmt.Fprintf(&line, "%2d | ", row+1)

		for col := range b.cols {
			cell := b.cells[b.index(col, row)]

			switch {
			case cell != Empty:
				line.WriteString(cell.Symbol())
			case side.IsSide() && b.IsLegalMove(col, row, side):
				line.WriteString("·")
			default:
				line.WriteString(" ")
			}
			line.WriteByte(' ')
		}

		lines[row+1] = line.String() + "|"
	}

	lines[b.rows+1] = "   +" + strings.Repeat("-", 2*b.cols+1) + "+"

	return lines
}

// Print writes the ascii art of the board to w.
func (b *Board) Print(w io.Writer, side Cell) {
	for _, line := range b.ASCIIArtLines(side) {
		fmt.Fprintln(w, line)
	}
}

// String returns the compact representation read by ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.rows)

	for row := range b.rows {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range b.cols {
			sb.WriteByte(b.cells[b.index(col, row)].char())
		}
	}

	return sb.String()
}
