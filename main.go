// tictactoe-local is a terminal application to play tic-tac-toe between two people
// sharing one keyboard, with a browsable move history.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"tictactoe-local/config"
	"tictactoe-local/engine"
	"tictactoe-local/engine/local"
	"tictactoe-local/engine/rules"
	"tictactoe-local/logging"
	"tictactoe-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagQuickStart  = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus       = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagNewestFirst = flag.Bool("newest-first", false, "List moves newest first")
	flagPlayerX     = flag.String("x", "", "Name of the player using X")
	flagPlayerO     = flag.String("o", "", "Name of the player using O")
	flagOpening     = flag.String("opening", "", `Moves to play before starting, e.g. "2,2; 1,3"`)
	flagVersion     = flag.Bool("version", false, "Print version and exit")
)

// app holds the screens and the shared state of one program run.
type app struct {
	tv     *tview.Application
	pages  *tview.Pages
	board  *ui.BoardUI
	moves  *ui.MoveListUI
	frame  *tview.Flex
	hint   *tview.TextView
	logger *zap.Logger
}

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("tictactoe-local %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		if config.IsInvalid(err) {
			fmt.Fprintf(os.Stderr, "Invalid config: %s\n", err)
			os.Exit(1)
		}
		panic(err)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.Log.Level, logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open log: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	defaults, err := gameConfigFromFlags(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}

	quickStart := *flagQuickStart || *flagFocus || *flagOpening != ""

	a := newApp(cfg, logger, defaults, quickStart)
	logger.Info("starting", zap.String("version", Version), zap.Bool("quick_start", quickStart))

	if quickStart {
		a.startGame(defaults)
		if *flagFocus {
			a.board.SetFocusMode(true)
			ui.BuildFocusLayout(a.frame, a.board, a.hint)
		}
	}

	if err := a.tv.SetRoot(a.pages, true).Run(); err != nil {
		logger.Error("ui stopped", zap.Error(err))
		panic(err)
	}
	a.board.Close()
	logger.Info("exiting")
}

func newApp(cfg *config.Config, logger *zap.Logger, defaults engine.GameConfig, quickStart bool) *app {
	a := &app{
		tv:     tview.NewApplication(),
		pages:  tview.NewPages(),
		logger: logger,
	}
	a.tv.EnableMouse(true)
	a.pages.SetBorder(true).SetTitle(" # tic-tac-toe ")

	// Game view setup
	a.hint = tview.NewTextView()
	a.hint.SetBorder(true)
	a.hint.SetBorderPadding(0, 0, 1, 1)
	a.hint.SetTitle(" Status ")
	a.hint.SetTitleAlign(tview.AlignLeft)
	a.board = ui.NewBoard(cfg, a.hint)
	a.moves = ui.NewMoveList(defaults.NewestFirst, func() {
		a.tv.SetFocus(a.board.Box)
	})
	a.frame = ui.CreateGameLayout(a.board, a.moves, a.hint)
	a.board.Box.SetInputCapture(a.handleBoardKey)

	// Game setup screen
	setupUI := ui.NewGameSetup(
		defaults,
		a.startGame,
		func() {
			a.tv.Stop()
		},
		func() {
			a.pages.SwitchToPage("colors")
		},
	)

	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			a.tv.Stop()
			return nil
		}
		return event
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, logger, func() {
		a.board.SetConfig(cfg)
		a.pages.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			colorConfig.Cancel()
			a.pages.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.NextTarget()
			return nil
		}
		return event
	})

	a.pages.AddPage("setup", setupUI.Form(), true, !quickStart)
	a.pages.AddPage("gameview", a.frame, true, quickStart)
	a.pages.AddPage("colors", colorConfig.Flex(), true, false)
	return a
}

// handleBoardKey handles key presses while the board has focus.
func (a *app) handleBoardKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		a.board.MoveSelection(0, -1)
	case tcell.KeyDown:
		a.board.MoveSelection(0, 1)
	case tcell.KeyLeft:
		a.board.MoveSelection(-1, 0)
	case tcell.KeyRight:
		a.board.MoveSelection(1, 0)
	case tcell.KeyEnter:
		a.playSelected()
	case tcell.KeyTab:
		if !a.board.IsFocusMode() {
			a.tv.SetFocus(a.moves.List())
		}
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		if a.board.PlayKey(r) {
			return nil
		}
		switch r {
		case 'q':
			if a.board.SelectedTile() != nil {
				a.board.ResetSelection()
			} else {
				a.board.Close()
				a.pages.SwitchToPage("setup")
			}
			return nil
		case 'h':
			a.board.MoveSelection(-1, 0)
		case 'j':
			a.board.MoveSelection(0, 1)
		case 'k':
			a.board.MoveSelection(0, -1)
		case 'l':
			a.board.MoveSelection(1, 0)
		case ' ':
			a.playSelected()
		case '[':
			a.board.Back()
		case ']':
			a.board.Forward()
		case 's':
			a.moves.ToggleOrder()
		case 'n':
			if e := a.board.Engine(); e != nil {
				a.startGame(e.Config())
			}
		case 'f':
			if a.board.ToggleFocusMode() {
				ui.BuildFocusLayout(a.frame, a.board, a.hint)
			} else {
				ui.RebuildNormalLayout(a.frame, a.board, a.moves, a.hint)
				a.tv.SetFocus(a.board.Box)
			}
		}
	}
	return event
}

func (a *app) playSelected() {
	sel := a.board.SelectedTile()
	if sel == nil {
		return
	}
	a.board.PlayMove(sel.X, sel.Y)
}

// startGame starts a new session and switches to the game view.
func (a *app) startGame(gameCfg engine.GameConfig) {
	session, err := local.NewSession(gameCfg, a.logger)
	if err != nil {
		a.logger.Warn("failed to start game", zap.Error(err))
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				a.pages.RemovePage("error")
				a.pages.SwitchToPage("setup")
			})
		a.pages.AddPage("error", modal, true, true)
		return
	}
	if a.moves.NewestFirst() != gameCfg.NewestFirst {
		a.moves.ToggleOrder()
	}
	a.board.ConnectEngine(session)
	a.pages.SwitchToPage("gameview")
	a.tv.SetFocus(a.board.Box)
}

// gameConfigFromFlags builds the game settings from the config file defaults
// overridden by command-line flags.
func gameConfigFromFlags(cfg *config.Config) (engine.GameConfig, error) {
	gameCfg := engine.DefaultConfig()
	if cfg.Game.PlayerX != "" {
		gameCfg.PlayerX = cfg.Game.PlayerX
	}
	if cfg.Game.PlayerO != "" {
		gameCfg.PlayerO = cfg.Game.PlayerO
	}
	gameCfg.NewestFirst = cfg.Game.NewestFirst || *flagNewestFirst

	if *flagPlayerX != "" {
		gameCfg.PlayerX = *flagPlayerX
	}
	if *flagPlayerO != "" {
		gameCfg.PlayerO = *flagPlayerO
	}

	opening, err := rules.ParseOpening(*flagOpening)
	if err != nil {
		return gameCfg, fmt.Errorf("--opening: %w", err)
	}
	gameCfg.Opening = opening
	return gameCfg, nil
}
