package rules

import (
	"fmt"
	"strconv"
	"strings"

	"tictactoe-local/types"
)

// Board coordinate systems:
// - Index: 0-8, row-major from the top-left cell
// - Position: x (column) and y (row), both 0-2 from the top-left cell
// - Key: '1'-'9', the digit row layout 1 2 3 / 4 5 6 / 7 8 9
// - Notation: "row,col" with 1-based numbers, as in move records

// PosToIndex converts a board position to a cell index.
func PosToIndex(x, y int) (int, error) {
	if x < 0 || x >= types.BoardSize || y < 0 || y >= types.BoardSize {
		return 0, fmt.Errorf("position out of bounds: (%d, %d)", x, y)
	}
	return types.BoardPos{X: x, Y: y}.Index(), nil
}

// IndexToPos converts a cell index to a board position.
func IndexToPos(index int) (x, y int) {
	return index % types.BoardSize, index / types.BoardSize
}

// KeyToIndex maps a digit key '1'-'9' to a cell index.
func KeyToIndex(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// ParseNotation converts "row,col" (1-based, e.g. "2,3") to a cell index.
func ParseNotation(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid notation: %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid row in notation: %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid column in notation: %q", s)
	}
	return PosToIndex(col-1, row-1)
}

// ParseOpening parses a list of moves such as "2,2; 1,3" into cell indices.
// Blank entries are skipped.
func ParseOpening(s string) ([]int, error) {
	var cells []int
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		index, err := ParseNotation(part)
		if err != nil {
			return nil, fmt.Errorf("opening move %d: %w", len(cells)+1, err)
		}
		cells = append(cells, index)
	}
	return cells, nil
}
