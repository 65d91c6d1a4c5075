package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "##", core.ColorDimGray)
	s.DrawTextColored(2, 0, "$", core.ColorBrown)
	s.DrawText(0, 1, "@ .")

	defer SetTheme(DefaultTheme())
	for _, theme := range []Theme{DefaultTheme(), MonochromeTheme()} {
		SetTheme(theme)
		out := RenderScreen(s)
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
		if !strings.Contains(lines[0], "##") || !strings.Contains(lines[0], "$") {
			t.Errorf("row 0 = %q", lines[0])
		}
		if !strings.Contains(lines[1], "@ .") {
			t.Errorf("row 1 = %q", lines[1])
		}
	}

	// The loop leaves the monochrome theme active
	if got := RenderScreen(s); got != "##$   \n@ .   " {
		t.Errorf("colorless render = %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("mono").Colorless || !ThemeByName("monochrome").Colorless {
		t.Error("mono themes should be colorless")
	}
	if ThemeByName("default").Colorless || ThemeByName("unknown").Colorless {
		t.Error("the default theme draws colors")
	}
}
