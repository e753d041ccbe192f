package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/havfo/reversi-board/internal/board"
	"github.com/havfo/reversi-board/internal/game"
)

const keyHelp = "←↑→↓ move   Enter play   b/w force stone\nBackspace clear   p pass   Esc quit"

// KeyCommand decodes a key press. The second result is false for keys
// that have no meaning in the game.
func KeyCommand(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEsc:
		return game.Quit{}, true
	case tcell.KeyUp:
		return game.MoveCursor{Dir: board.Up}, true
	case tcell.KeyDown:
		return game.MoveCursor{Dir: board.Down}, true
	case tcell.KeyLeft:
		return game.MoveCursor{Dir: board.Left}, true
	case tcell.KeyRight:
		return game.MoveCursor{Dir: board.Right}, true
	case tcell.KeyEnter:
		return game.PlaceIfLegal{}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.Clear{}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'b':
			return game.ForcePlace{Color: game.Black}, true
		case 'w':
			return game.ForcePlace{Color: game.White}, true
		case 'p':
			return game.ToggleTurn{}, true
		}
	}

	return nil, false
}
