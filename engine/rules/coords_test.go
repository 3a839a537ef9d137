package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosToIndex(t *testing.T) {
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{0, 1, 3},
		{1, 1, 4},
		{2, 2, 8},
	}
	for _, tt := range tests {
		got, err := PosToIndex(tt.x, tt.y)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "PosToIndex(%d, %d)", tt.x, tt.y)

		gx, gy := IndexToPos(got)
		assert.Equal(t, tt.x, gx)
		assert.Equal(t, tt.y, gy)
	}

	_, err := PosToIndex(3, 0)
	assert.Error(t, err)
	_, err = PosToIndex(0, -1)
	assert.Error(t, err)
}

func TestKeyToIndex(t *testing.T) {
	i, ok := KeyToIndex('1')
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = KeyToIndex('9')
	assert.True(t, ok)
	assert.Equal(t, 8, i)

	_, ok = KeyToIndex('0')
	assert.False(t, ok)
	_, ok = KeyToIndex('a')
	assert.False(t, ok)
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1,1", 0},
		{"2,2", 4},
		{" 3, 3 ", 8},
		{"1,3", 2},
		{"3,1", 6},
	}
	for _, tt := range tests {
		got, err := ParseNotation(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, bad := range []string{"", "2", "a,1", "1,b", "0,1", "4,4", "1,2,3"} {
		_, err := ParseNotation(bad)
		assert.Error(t, err, "ParseNotation(%q)", bad)
	}
}

func TestParseOpening(t *testing.T) {
	cells, err := ParseOpening("2,2; 1,3 ;3,1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 6}, cells)

	cells, err = ParseOpening("  ")
	require.NoError(t, err)
	assert.Empty(t, cells)

	cells, err = ParseOpening("1,1;;2,2;")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, cells)

	_, err = ParseOpening("1,1; 4,1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening move 2")
}
