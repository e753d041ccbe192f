package game

import (
	"github.com/google/uuid"

	"github.com/havfo/reversi-board/internal/board"
	"github.com/havfo/reversi-board/internal/log"
)

// Game represents the game state of one session
type Game struct {
	id     string
	board  *board.Board
	turn   Turn
	cursor board.Position
	done   bool
}

// NewGame starts a session from the opening position with Black to move
func NewGame() *Game {
	g := &Game{
		id:    uuid.NewString(),
		board: board.NewBoard(),
	}
	g.Reset()

	return g
}

// Reset resets the game state to the initial state
func (g *Game) Reset() {
	g.board.ResetOpening()
	g.turn = Black
	g.cursor = board.MustAt(0, 0)
	g.done = false
}

func (g *Game) ID() string { return g.id }

// Board returns a copy of the grid for rendering
func (g *Game) Board() board.Board { return *g.board }

func (g *Game) Turn() Turn { return g.turn }

func (g *Game) Cursor() board.Position { return g.cursor }

// Done reports whether a Quit command has been dispatched
func (g *Game) Done() bool { return g.done }

// Dispatch applies a single command. Every command leaves the board and
// turn in a valid state; an illegal placement is silently dropped.
func (g *Game) Dispatch(cmd Command) {
	log.Trace("Session %s: dispatching %s at %s", g.id, cmd, g.cursor)

	switch c := cmd.(type) {
	case MoveCursor:
		if next, ok := g.cursor.Step(c.Dir); ok {
			g.cursor = next
		}
	case ForcePlace:
		g.board.Set(g.cursor, c.Color.Cell())
		flipped := board.Propagate(g.board, g.cursor)
		log.Debug("Session %s: forced %s at %s, flipped %d", g.id, c.Color, g.cursor, flipped)
	case PlaceIfLegal:
		g.placeIfLegal()
	case Clear:
		g.board.Set(g.cursor, board.Empty)
	case ToggleTurn:
		g.turn.Toggle()
		log.Debug("Session %s: turn handed to %s", g.id, g.turn)
	case Quit:
		g.done = true
	default:
		log.Warn("Session %s: ignoring unknown command %v", g.id, cmd)
	}
}

func (g *Game) placeIfLegal() {
	color := g.turn.Cell()
	if !board.IsLegal(g.board, g.cursor, color) {
		log.Debug("Session %s: %s cannot play %s", g.id, g.turn, g.cursor)
		return
	}

	g.board.Set(g.cursor, color)
	flipped := board.Propagate(g.board, g.cursor)
	log.Debug("Session %s: %s played %s, flipped %d", g.id, g.turn, g.cursor, flipped)

	g.turn.Advance()
}
