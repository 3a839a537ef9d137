package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"

	"tictactoe-local/types"
)

var (
	cfgFile = "tictactoe-local/config.yml"
	logFile = "tictactoe-local/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `yaml:"board"`
	BoardColorAlt     int `yaml:"board_alt"`
	XColor            int `yaml:"x"`
	OColor            int `yaml:"o"`
	LineColor         int `yaml:"line"`
	CursorColorBG     int `yaml:"cursor_bg"`
	LastPlayedColorBG int `yaml:"last_played_bg"`
	WinLineColorBG    int `yaml:"win_line_bg"`
}

type ConfigSymbols struct {
	X     string `yaml:"x"`
	O     string `yaml:"o"`
	Empty string `yaml:"empty"`
}

type Theme struct {
	DrawCursorBackground     bool          `yaml:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `yaml:"draw_last_played_bg"`
	HighlightWinningLine     bool          `yaml:"highlight_winning_line"`
	Colors                   ConfigColors  `yaml:"colors"`
	Symbols                  ConfigSymbols `yaml:"symbols"`
}

// GameDefaults holds the settings used to prefill the new game form.
type GameDefaults struct {
	PlayerX     string `yaml:"player_x" env:"TICTACTOE_PLAYER_X"`
	PlayerO     string `yaml:"player_o" env:"TICTACTOE_PLAYER_O"`
	NewestFirst bool   `yaml:"newest_first" env:"TICTACTOE_NEWEST_FIRST"`
}

// LogConfig controls the debug log. The terminal is owned by the UI, so logs always go to a file.
type LogConfig struct {
	Level string `yaml:"level" env:"TICTACTOE_LOG_LEVEL"` // debug, info, warn, error or off
	Path  string `yaml:"path" env:"TICTACTOE_LOG_PATH"`   // empty = XDG cache dir
}

type Config struct {
	Theme Theme        `yaml:"theme"`
	Game  GameDefaults `yaml:"game"`
	Log   LogConfig    `yaml:"log"`
}

// InitConfig returns the default config overlaid with the user's config file, if one
// exists, and with environment overrides.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config file at path on top of DefaultConfig. An empty path only
// applies environment overrides.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read config environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, s := range []string{c.Theme.Symbols.X, c.Theme.Symbols.O, c.Theme.Symbols.Empty} {
		if utf8.RuneCountInString(s) != 1 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be exactly one character", s)}
		}
		r, _ := utf8.DecodeRuneInString(s)
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error", "off":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// Symbol returns the configured rune for a cell value.
func (t *Theme) Symbol(mark types.Mark) rune {
	s := t.Symbols.Empty
	switch mark {
	case types.X:
		s = t.Symbols.X
	case types.O:
		s = t.Symbols.O
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Save writes the theme to the config file in the user's XDG config directory.
// Other settings keep whatever the file holds, so environment overrides never
// end up on disk.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveTheme(absPath, c.Theme, 0664)
}

// LogPath returns the configured log path, or the default one in the XDG cache directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	return xdg.CacheFile(logFile)
}

// saveTheme replaces the theme section of the file at filePath, creating the file if needed.
func saveTheme(filePath string, theme Theme, perm fs.FileMode) error {
	var doc yaml.MapSlice
	data, err := os.ReadFile(filePath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decode config %s: %w", filePath, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read config: %w", err)
	}

	for i := range doc {
		if doc[i].Key == "theme" {
			doc[i].Value = theme
			return saveCfgFile(filePath, doc, perm)
		}
	}
	doc = append(doc, yaml.MapItem{Key: "theme", Value: theme})
	return saveCfgFile(filePath, doc, perm)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	yamlData, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, yamlData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// IsInvalid returns true if err is a validation error.
func IsInvalid(err error) bool {
	var invalid *InvalidConfig
	return errors.As(err, &invalid)
}
