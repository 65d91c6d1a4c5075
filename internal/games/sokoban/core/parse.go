package core

import (
	"strings"
	"unicode/utf8"
)

// Parse converts level text into a Grid centered in the default arena.
func Parse(text string) (*Grid, error) {
	return ParseIn(text, DefaultArena)
}

// ParseIn converts level text into a Grid centered in the given arena.
//
// Width is the longest line; height is the line count once trailing
// whitespace is trimmed. The map is placed with a left margin of
// (arena.W-width)/2 and a top margin of (arena.H-height)/2. Characters
// outside the level alphabet leave the cell Empty but still advance the column.
func ParseIn(text string, arena Arena) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r", "")

	width, height := Dimensions(text)
	if height == 0 {
		return nil, levelErrorf(CodeEmpty, "level has no rows")
	}
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")

	if width > arena.W {
		return nil, levelErrorf(CodeTooWide, "level width %d exceeds arena width %d", width, arena.W)
	}
	if height > arena.H {
		return nil, levelErrorf(CodeTooTall, "level height %d exceeds arena height %d", height, arena.H)
	}

	g := NewGrid(arena.W, arena.H)
	offX := (arena.W - width) / 2
	offY := (arena.H - height) / 2

	players := 0
	for r, line := range lines {
		y := g.RowY(offY + r)
		x := offX
		for _, ch := range line {
			if k, ok := kindFromRune(ch); ok {
				g.set(Point{X: x, Y: y}, k)
				if k == Player {
					players++
				}
			}
			x++
		}
	}

	switch {
	case players == 0:
		return nil, levelErrorf(CodeNoPlayer, "level has no player '@'")
	case players > 1:
		return nil, levelErrorf(CodeMultiplePlayers, "level has %d players, want exactly 1", players)
	}

	return g, nil
}

// Dimensions reports the width and height Parse would compute for text,
// without placing it in an arena.
func Dimensions(text string) (width, height int) {
	text = strings.ReplaceAll(text, "\r", "")
	for _, line := range strings.Split(text, "\n") {
		width = max(width, utf8.RuneCountInString(line))
	}
	trimmed := strings.TrimRight(text, " \t\n")
	if trimmed == "" {
		return width, 0
	}
	return width, strings.Count(trimmed, "\n") + 1
}
