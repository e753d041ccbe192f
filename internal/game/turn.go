package game

import "github.com/havfo/reversi-board/internal/board"

// Turn is the side to move. The zero value is Black.
type Turn uint8

const (
	Black Turn = iota
	White
)

// Cell returns the stone colour for this side
func (t Turn) Cell() board.Cell {
	if t == White {
		return board.White
	}

	return board.Black
}

func (t Turn) String() string {
	if t == White {
		return "White"
	}

	return "Black"
}

// Advance hands the move to the other side after a legal placement
func (t *Turn) Advance() {
	t.switchSide()
}

// Toggle hands the move to the other side without a placement, for passes
// and manual setup.
func (t *Turn) Toggle() {
	t.switchSide()
}

func (t *Turn) switchSide() {
	if *t == Black {
		*t = White
	} else {
		*t = Black
	}
}
