package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// boardStyles holds one foreground style per palette color.
var boardStyles = func() []lipgloss.Style {
	colors := core.Colors()
	styles := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		styles[i] = lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

// styleFor returns the style of c, plain when the theme is colorless.
func styleFor(c core.Color, colorless bool) lipgloss.Style {
	if colorless || int(c) >= len(boardStyles) {
		return boardStyles[core.ColorDefault]
	}
	return boardStyles[c]
}

// RenderScreen converts a Screen buffer to a string for display.
// Each run of same-colored cells on a row is styled once.
func RenderScreen(s *core.Screen) string {
	colorless := GetTheme().Colorless

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		if colorless {
			for x := range s.Width() {
				sb.WriteRune(s.Get(x, y))
			}
			continue
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(color, false).Render(run.String()))
		}
	}
	return sb.String()
}
