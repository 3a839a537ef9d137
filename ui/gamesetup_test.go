package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/engine"
)

func TestGameSetupConfig(t *testing.T) {
	defaults := engine.DefaultConfig()
	defaults.PlayerX = "Ada"
	defaults.NewestFirst = true
	setup := NewGameSetup(defaults, func(engine.GameConfig) {}, func() {}, nil)

	cfg, err := setup.gameConfig()
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.PlayerX)
	assert.Equal(t, "Player 2", cfg.PlayerO)
	assert.True(t, cfg.NewestFirst)
	assert.Empty(t, cfg.Opening)

	setup.playerO = "   "
	setup.opening = "2,2; 1,1"
	cfg, err = setup.gameConfig()
	require.NoError(t, err)
	assert.Equal(t, "Player 2", cfg.PlayerO, "blank names fall back to defaults")
	assert.Equal(t, []int{4, 0}, cfg.Opening)

	setup.opening = "2,2; 3"
	_, err = setup.gameConfig()
	assert.Error(t, err)
}
