// board.go
package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOutOfBounds = errors.New("position out of bounds")

// Position is a square on the board. Only At and MustAt build one, so a
// Position is always inside the grid.
type Position struct {
	row, col int
}

// At returns the position at (row, col)
func At(row, col int) (Position, error) {
	if !inBounds(row, col) {
		return Position{}, fmt.Errorf("at (%d,%d): %w", row, col, ErrOutOfBounds)
	}

	return Position{row: row, col: col}, nil
}

// MustAt is like At but panics on an out-of-range position
func MustAt(row, col int) Position {
	pos, err := At(row, col)
	if err != nil {
		panic(err)
	}

	return pos
}

func (p Position) Row() int { return p.row }
func (p Position) Col() int { return p.col }

// Step returns the neighbouring position in direction d, or false if it
// would leave the board.
func (p Position) Step(d Direction) (Position, bool) {
	row, col := p.row+d.Row, p.col+d.Col
	if !inBounds(row, col) {
		return p, false
	}

	return Position{row: row, col: col}, true
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.row, p.col)
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Board is indexed [row][col]
type Board [BoardSize][BoardSize]Cell

// NewBoard initializes the board with starting positions
func NewBoard() *Board {
	b := &Board{}
	b.ResetOpening()

	return b
}

// ResetOpening clears the board and sets up the four centre stones
func (b *Board) ResetOpening() {
	*b = Board{}

	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = Black, Black
	b[mid-1][mid], b[mid][mid-1] = White, White
}

func (b *Board) Get(pos Position) Cell {
	return b[pos.row][pos.col]
}

// Set overwrites one cell. Legality is the caller's business.
func (b *Board) Set(pos Position, cell Cell) {
	b[pos.row][pos.col] = cell
}

// Count returns how many cells hold the given state
func (b *Board) Count(cell Cell) int {
	n := 0

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == cell {
				n++
			}
		}
	}

	return n
}

func (b *Board) String() string {
	var sb strings.Builder

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
