package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		HighlightWinningLine:     true,
		Colors: ConfigColors{
			BoardColor:        180,
			BoardColorAlt:     179,
			XColor:            17,
			OColor:            88,
			LineColor:         94,
			CursorColorBG:     109,
			LastPlayedColorBG: 151,
			WinLineColorBG:    214,
		},
		Symbols: ConfigSymbols{
			X:     "X",
			O:     "O",
			Empty: " ",
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			PlayerX:     "Player 1",
			PlayerO:     "Player 2",
			NewestFirst: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
