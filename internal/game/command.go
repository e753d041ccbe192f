package game

import (
	"fmt"

	"github.com/havfo/reversi-board/internal/board"
)

// Command is one already-decoded player action. Game.Dispatch handles the
// types declared in this file and ignores anything else.
type Command interface {
	String() string
}

// MoveCursor moves the cursor one square, stopping at the edge
type MoveCursor struct {
	Dir board.Direction
}

// ForcePlace puts a stone under the cursor and flips what it brackets,
// ignoring legality and whose turn it is.
type ForcePlace struct {
	Color Turn
}

// PlaceIfLegal plays the side to move under the cursor if the move is legal
type PlaceIfLegal struct{}

// Clear empties the square under the cursor
type Clear struct{}

// ToggleTurn passes the move to the other side
type ToggleTurn struct{}

// Quit ends the session
type Quit struct{}

func (c MoveCursor) String() string { return fmt.Sprintf("MoveCursor(%s)", c.Dir) }
func (c ForcePlace) String() string { return fmt.Sprintf("ForcePlace(%s)", c.Color) }
func (PlaceIfLegal) String() string { return "PlaceIfLegal" }
func (Clear) String() string        { return "Clear" }
func (ToggleTurn) String() string   { return "ToggleTurn" }
func (Quit) String() string         { return "Quit" }
