package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/engine"
	"tictactoe-local/engine/rules"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	errText  *tview.TextView
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	playerX     string
	playerO     string
	newestFirst bool
	opening     string
}

// NewGameSetup creates a new game setup form prefilled with defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:     onStart,
		onCancel:    onCancel,
		onColors:    onColors,
		playerX:     defaults.PlayerX,
		playerO:     defaults.PlayerO,
		newestFirst: defaults.NewestFirst,
	}

	orders := []string{"Oldest first", "Newest first"}
	initialOrder := 0
	if defaults.NewestFirst {
		initialOrder = 1
	}

	form := tview.NewForm()

	form.AddInputField("Player X", setup.playerX, 20, nil, func(text string) {
		setup.playerX = text
	})

	form.AddInputField("Player O", setup.playerO, 20, nil, func(text string) {
		setup.playerO = text
	})

	form.AddDropDown("Move List", orders, initialOrder, func(option string, index int) {
		setup.newestFirst = index == 1
	})

	form.AddInputField("Opening", "", 20, func(text string, lastChar rune) bool {
		// Digits, separators and spaces: "2,2; 1,3"
		return (lastChar >= '1' && lastChar <= '3') || lastChar == ',' || lastChar == ';' || lastChar == ' '
	}, func(text string) {
		setup.opening = text
	})

	form.AddButton("Start Game", func() {
		cfg, err := setup.gameConfig()
		if err != nil {
			setup.errText.SetText(err.Error())
			return
		}
		setup.errText.SetText("")
		onStart(cfg)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetLabelColor(MenuColors.Label)

	errText := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	errText.SetTextColor(tcell.ColorRed)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Opening: row,col; row,col  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(errText, 1, 0, false).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	setup.errText = errText
	return setup
}

// gameConfig builds the game configuration from the form fields.
func (s *GameSetupUI) gameConfig() (engine.GameConfig, error) {
	cfg := engine.DefaultConfig()
	if name := strings.TrimSpace(s.playerX); name != "" {
		cfg.PlayerX = name
	}
	if name := strings.TrimSpace(s.playerO); name != "" {
		cfg.PlayerO = name
	}
	cfg.NewestFirst = s.newestFirst

	opening, err := rules.ParseOpening(s.opening)
	if err != nil {
		return cfg, err
	}
	cfg.Opening = opening
	return cfg, nil
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
