package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/havfo/reversi-board/internal/board"
	"github.com/havfo/reversi-board/internal/game"
	"github.com/havfo/reversi-board/internal/log"
)

const (
	cursorColor = tcell.ColorGrey
	darkSquare  = tcell.ColorDarkGreen
	lightSquare = tcell.ColorGreen

	// four-cell glyphs plus tview's one-cell column separator and the border
	boardWidth = board.BoardSize*4 + (board.BoardSize - 1) + 2
)

// Options configures the terminal front end
type Options struct {
	// ShowHints marks the legal squares for the side to move
	ShowHints bool
}

// View renders a game session and feeds it key presses. It only reads the
// game's snapshot; every change goes through Game.Dispatch.
type View struct {
	app    *tview.Application
	root   *tview.Flex
	table  *tview.Table
	status *tview.TextView
	game   *game.Game
	opts   Options
}

func New(g *game.Game, opts Options) *View {
	v := &View{
		app:    tview.NewApplication(),
		table:  tview.NewTable(),
		status: tview.NewTextView(),
		game:   g,
		opts:   opts,
	}

	v.table.SetBorder(true)
	v.table.SetTitle(" Reversi ")
	v.table.SetTitleAlign(tview.AlignLeft)
	v.table.SetTitleColor(tcell.ColorGreen)
	v.table.SetBorderColor(tcell.ColorGreen)

	v.status.SetBorder(true)
	v.status.SetTitle("Status")

	// Create a Flex layout to arrange board and status box side by side
	v.root = tview.NewFlex().
		AddItem(v.table, boardWidth, 0, true).
		AddItem(v.status, 0, 1, false)

	v.app.SetRoot(v.root, true).SetFocus(v.table)
	v.app.SetInputCapture(v.handleKey)

	v.draw()

	return v
}

// Run blocks until the player quits or the terminal fails
func (v *View) Run() error {
	log.Info("Session %s started", v.game.ID())

	if err := v.app.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	log.Info("Session %s ended", v.game.ID())

	return nil
}

func (v *View) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	cmd, ok := KeyCommand(ev)
	if !ok {
		// let tview see Ctrl-C so it can stop the application
		if ev.Key() == tcell.KeyCtrlC {
			return ev
		}
		return nil
	}

	v.game.Dispatch(cmd)

	if v.game.Done() {
		v.app.Stop()
		return nil
	}

	v.draw()

	return nil
}

func (v *View) draw() {
	b := v.game.Board()
	cursor := v.game.Cursor()
	turn := v.game.Turn()

	hints := map[board.Position]bool{}
	if v.opts.ShowHints {
		for _, pos := range board.LegalMoves(&b, turn.Cell()) {
			hints[pos] = true
		}
	}

	for row := 0; row < board.BoardSize; row++ {
		for col := 0; col < board.BoardSize; col++ {
			pos := board.MustAt(row, col)

			cell := tview.NewTableCell(getPieceSymbol(b.Get(pos), hints[pos]))
			cell.SetAlign(tview.AlignCenter)
			cell.SetBackgroundColor(squareColor(pos, cursor))

			v.table.SetCell(row, col, cell)
		}
	}

	v.status.SetText(fmt.Sprintf("%s Turn\n\nDiscs on board: ⚫ %d  ⚪ %d\n\n%s",
		turn, b.Count(board.Black), b.Count(board.White), keyHelp))
}

func squareColor(pos, cursor board.Position) tcell.Color {
	switch {
	case pos == cursor:
		return cursorColor
	case (pos.Row()+pos.Col())%2 == 0:
		return darkSquare
	default:
		return lightSquare
	}
}

func getPieceSymbol(piece board.Cell, hint bool) string {
	switch piece {
	case board.Black:
		return " ⚫ "
	case board.White:
		return " ⚪ "
	default:
		if hint {
			return " · "
		}
		return "    "
	}
}
