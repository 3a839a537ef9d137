package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"tictactoe-local/config"
	"tictactoe-local/types"
)

// paletteEntry is one selectable 256-color palette code.
type paletteEntry struct {
	code int
	name string
}

// colorTarget is one themeable color and the palette offered for it.
type colorTarget struct {
	title   string
	palette []paletteEntry
	field   func(c *config.ConfigColors) *int
}

var boardPalette = []paletteEntry{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{222, "Gold"},
	{180, "Tan"},
	{188, "Light Beige"},
	{223, "Peach"},
	{152, "Pale Teal"},
	{189, "Lavender"},
	{252, "Light Gray"},
	{250, "Gray"},
}

// Checkered cells use a slightly darker shade of the board color.
var boardAltPalette = map[int]int{
	230: 229, 229: 228, 222: 221, 180: 179, 188: 187,
	223: 222, 152: 151, 189: 183, 252: 250, 250: 248,
}

var linePalette = []paletteEntry{
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{22, "Dark Green"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{236, "Dark Gray"},
	{16, "True Black"},
}

var markPalette = []paletteEntry{
	{17, "Navy Blue"},
	{19, "Blue"},
	{88, "Dark Red"},
	{124, "Red"},
	{22, "Dark Green"},
	{90, "Magenta"},
	{130, "Orange"},
	{16, "True Black"},
}

var colorTargets = []colorTarget{
	{"Board", boardPalette, func(c *config.ConfigColors) *int { return &c.BoardColor }},
	{"Grid Lines", linePalette, func(c *config.ConfigColors) *int { return &c.LineColor }},
	{"X Marks", markPalette, func(c *config.ConfigColors) *int { return &c.XColor }},
	{"O Marks", markPalette, func(c *config.ConfigColors) *int { return &c.OColor }},
}

// ColorConfigUI lets the user pick theme colors one target at a time while a
// sample board previews the pending choice.
type ColorConfigUI struct {
	flex    *tview.Flex
	list    *tview.List
	preview *tview.Box
	cfg     *config.Config
	log     *zap.Logger
	onDone  func()

	target  int
	pending config.ConfigColors
	filling bool // list callbacks fire while items are added
}

// NewColorConfig creates the color screen. onDone runs after the last target is confirmed.
func NewColorConfig(cfg *config.Config, logger *zap.Logger, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:     cfg,
		log:     logger,
		onDone:  onDone,
		pending: cfg.Theme.Colors,
	}

	cc.list = tview.NewList()
	cc.list.SetBorder(true)
	cc.list.ShowSecondaryText(false)
	cc.list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
	})
	cc.list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.confirm(index)
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.list, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	cc.fillList()
	return cc
}

// preselect previews the palette entry at index for the current target.
func (cc *ColorConfigUI) preselect(index int) {
	if cc.filling {
		return
	}
	t := colorTargets[cc.target]
	if index < 0 || index >= len(t.palette) {
		return
	}
	*t.field(&cc.pending) = t.palette[index].code
	if t.title == "Board" {
		cc.pending.BoardColorAlt = checkerShade(cc.pending.BoardColor)
	}
}

// confirm applies the pending colors, saves them and moves on to the next target.
func (cc *ColorConfigUI) confirm(index int) {
	cc.preselect(index)
	cc.cfg.Theme.Colors = cc.pending
	if err := cc.cfg.Save(); err != nil {
		cc.log.Warn("could not save config", zap.Error(err))
	} else {
		cc.log.Debug("theme saved", zap.String("target", colorTargets[cc.target].title))
	}

	if cc.target == len(colorTargets)-1 {
		cc.target = 0
		cc.fillList()
		if cc.onDone != nil {
			cc.onDone()
		}
		return
	}
	cc.NextTarget()
}

// NextTarget switches to the next color without applying the pending choice.
func (cc *ColorConfigUI) NextTarget() {
	cc.target = (cc.target + 1) % len(colorTargets)
	cc.fillList()
}

// Cancel drops the unconfirmed choice and starts over at the first target.
func (cc *ColorConfigUI) Cancel() {
	cc.pending = cc.cfg.Theme.Colors
	cc.target = 0
	cc.fillList()
}

func (cc *ColorConfigUI) fillList() {
	t := colorTargets[cc.target]
	cc.filling = true
	defer func() { cc.filling = false }()
	cc.list.Clear()
	cc.list.SetTitle(fmt.Sprintf(" %s (%d/%d, Tab: next) ", t.title, cc.target+1, len(colorTargets)))

	current := *t.field(&cc.pending)
	selected := 0
	for i, c := range t.palette {
		cc.list.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)", tcell.PaletteColor(c.code).Hex(), c.name, c.code), "", rune('a'+i), nil)
		if c.code == current {
			selected = i
		}
	}
	cc.list.SetCurrentItem(selected)
}

// checkerShade returns the alternate cell color for a board color.
func checkerShade(code int) int {
	if alt, ok := boardAltPalette[code]; ok {
		return alt
	}
	return code
}

// drawPreview renders a sample board with the pending colors.
func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < gridLeft+gridWidth+4 || height < gridHeight+4 {
		return x, y, width, height
	}
	c := cc.pending
	left, top := x+2, y+1

	sample := types.Board{types.X, types.O, types.Empty, types.Empty, types.X, types.O, types.Empty, types.Empty, types.X}
	drawGrid(screen, left, top, tcell.StyleDefault.Background(tcell.PaletteColor(c.BoardColor)).Foreground(tcell.PaletteColor(c.LineColor)))
	for index, mark := range sample {
		col, row := index%types.BoardSize, index/types.BoardSize
		bg := c.BoardColor
		if (row+col)%2 == 1 {
			bg = c.BoardColorAlt
		}
		fg := c.LineColor
		switch mark {
		case types.X:
			fg = c.XColor
		case types.O:
			fg = c.OColor
		}
		style := tcell.StyleDefault.Background(tcell.PaletteColor(bg)).Foreground(tcell.PaletteColor(fg)).Bold(true)
		drawCell(screen, style, cc.cfg.Theme.Symbol(mark), left+col*(cellWidth+1), top+row*2)
	}

	info := fmt.Sprintf("Board %d  Lines %d  X %d  O %d", c.BoardColor, c.LineColor, c.XColor, c.OColor)
	drawText(screen, left, top+gridHeight+1, info, tcell.StyleDefault)
	return x, y, width, height
}

// drawText writes a single line of text starting at (x, y).
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.list.SetInputCapture(capture)
}
