package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"tictactoe-local/engine"
	"tictactoe-local/types"
)

const sidePanelWidth = 32

// GameInfoPanel displays players, step and status alongside the board.
type GameInfoPanel struct {
	box *tview.TextView
	eng engine.GameEngine
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetEngine updates the panel with the state of the given game.
func (p *GameInfoPanel) SetEngine(e engine.GameEngine) {
	p.eng = e
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	p.box.SetText(infoText(p.eng))
}

// infoText renders the panel contents for a game.
func infoText(e engine.GameEngine) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	cfg := e.Config()

	b.WriteString("[white::b]Game Info[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	b.WriteString(fmt.Sprintf("[white]X:[-:-:-] %s\n", tview.Escape(cfg.PlayerX)))
	b.WriteString(fmt.Sprintf("[white]O:[-:-:-] %s\n", tview.Escape(cfg.PlayerO)))

	moves := len(e.History()) - 1
	if e.Step() == moves {
		b.WriteString(fmt.Sprintf("[white]Move:[-:-:-] %d\n", e.Step()))
	} else {
		b.WriteString(fmt.Sprintf("[white]Move:[-:-:-] %d of %d\n", e.Step(), moves))
	}

	status := e.Status()
	switch e.Phase() {
	case types.Won:
		w, _ := e.Winner()
		b.WriteString(fmt.Sprintf("\n[yellow::b]%s[-:-:-] [dimgray](%s)[-]\n", status, tview.Escape(cfg.Name(w.Player))))
	case types.Drawn:
		b.WriteString(fmt.Sprintf("\n[yellow::b]%s[-:-:-]\n", status))
	default:
		b.WriteString(fmt.Sprintf("\n[white]%s[-]\n", status))
	}
	return b.String()
}

// CreateGameLayout creates the main game layout with board, side panel and move list.
func CreateGameLayout(board *BoardUI, moves *MoveListUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, moves, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, move list and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, moves *MoveListUI, hint *tview.TextView) {
	gameFrame.Clear()

	if board.infoPanel == nil {
		board.infoPanel = NewGameInfoPanel()
	}
	board.SetMoveList(moves)
	board.infoPanel.SetEngine(board.eng)

	// Side column: info on top, move list below
	side := tview.NewFlex().SetDirection(tview.FlexRow)
	side.AddItem(board.infoPanel.Box(), 9, 0, false)
	side.AddItem(moves.List(), 0, 1, false)

	// Board (flexible) | side column (fixed width)
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(side, sidePanelWidth, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	boardWidth := gridLeft + gridWidth + 1
	boardHeight := gridTop + gridHeight

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
	gameFrame.AddItem(hint, 1, 0, false)
}
