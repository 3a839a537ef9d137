package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/engine"
	"tictactoe-local/history"
)

// MoveListUI lists every history entry of the running game. Selecting an
// entry jumps to it; the order can be flipped between oldest and newest first.
type MoveListUI struct {
	list        *tview.List
	eng         engine.GameEngine
	items       []historyItem
	newestFirst bool
	onDone      func()
}

// historyItem is one row of the move list.
type historyItem struct {
	step    int
	label   string
	current bool
}

// NewMoveList creates a new move list. onDone is called when the user leaves the list.
func NewMoveList(newestFirst bool, onDone func()) *MoveListUI {
	ml := &MoveListUI{
		newestFirst: newestFirst,
		onDone:      onDone,
	}

	ml.list = tview.NewList()
	ml.list.SetBorder(true)
	ml.list.ShowSecondaryText(false)
	ml.list.SetHighlightFullLine(true)
	ml.list.SetMainTextColor(MenuColors.Label)
	ml.list.SetSelectedTextColor(MenuColors.ButtonText)
	ml.list.SetSelectedBackgroundColor(MenuColors.ButtonFocus)
	ml.list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		ml.jump(index)
	})
	ml.list.SetInputCapture(ml.handleInput)
	ml.setTitle()

	return ml
}

// List returns the underlying tview component.
func (ml *MoveListUI) List() *tview.List {
	return ml.list
}

// SetEngine attaches the game whose history is listed.
func (ml *MoveListUI) SetEngine(e engine.GameEngine) {
	ml.eng = e
	ml.Refresh()
}

// NewestFirst reports the current display order.
func (ml *MoveListUI) NewestFirst() bool {
	return ml.newestFirst
}

// ToggleOrder flips between oldest-first and newest-first display.
func (ml *MoveListUI) ToggleOrder() {
	ml.newestFirst = !ml.newestFirst
	ml.setTitle()
	ml.Refresh()
}

// Refresh rebuilds the list from the game's history.
func (ml *MoveListUI) Refresh() {
	ml.list.Clear()
	ml.items = nil
	if ml.eng == nil {
		return
	}

	ml.items = historyItems(ml.eng.History(), ml.eng.Step(), ml.newestFirst)
	selected := 0
	for i, item := range ml.items {
		label := item.label
		if item.current {
			label = "[yellow::b]" + label + "[-:-:-]"
			selected = i
		}
		ml.list.AddItem(label, "", 0, nil)
	}
	ml.list.SetCurrentItem(selected)
}

func (ml *MoveListUI) setTitle() {
	if ml.newestFirst {
		ml.list.SetTitle(" Moves ↑ newest first ")
	} else {
		ml.list.SetTitle(" Moves ↓ oldest first ")
	}
}

// jump moves the game to the step shown at list row index.
func (ml *MoveListUI) jump(index int) {
	if ml.eng == nil || index < 0 || index >= len(ml.items) {
		return
	}
	_ = ml.eng.JumpTo(ml.items[index].step)
}

func (ml *MoveListUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyTab:
		if ml.onDone != nil {
			ml.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 's':
			ml.ToggleOrder()
			return nil
		case 'q':
			if ml.onDone != nil {
				ml.onDone()
			}
			return nil
		case 'j':
			return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
		case 'k':
			return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
		}
	}
	return event
}

// historyItems builds the list rows for a history, in display order.
func historyItems(entries []history.Entry, cursor int, newestFirst bool) []historyItem {
	items := make([]historyItem, 0, len(entries))
	for _, step := range historyOrder(len(entries), newestFirst) {
		items = append(items, historyItem{
			step:    step,
			label:   entryLabel(entries[step], step, step == cursor),
			current: step == cursor,
		})
	}
	return items
}

// historyOrder returns the steps 0..n-1 in display order.
func historyOrder(n int, newestFirst bool) []int {
	steps := make([]int, n)
	for i := range steps {
		if newestFirst {
			steps[i] = n - 1 - i
		} else {
			steps[i] = i
		}
	}
	return steps
}

func entryLabel(e history.Entry, step int, current bool) string {
	if e.Move == nil {
		if current {
			return "You are at game start"
		}
		return "Go to game start"
	}
	if current {
		return fmt.Sprintf("You are at move #%d", step)
	}
	return fmt.Sprintf("Go to move #%d %s %s", step, e.Move.Player, e.Move.Location())
}
