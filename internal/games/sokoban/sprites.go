package sokoban

import (
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Player sprite layout: four frames per facing, rows ordered down, right,
// up, left.
const (
	framesPerFacing = 4
	ticksPerFrame   = 8
)

// playerSprites holds the walk cycle for each facing.
var playerSprites = [4 * framesPerFacing]rune{
	'▼', '▽', '▼', '▽', // down
	'▶', '▷', '▶', '▷', // right
	'▲', '△', '▲', '△', // up
	'◀', '◁', '◀', '◁', // left
}

// facingRow returns the first sprite index for a facing.
func facingRow(d core.Dir) int {
	switch d {
	case core.Right:
		return 4
	case core.Up:
		return 8
	case core.Left:
		return 12
	default:
		return 0
	}
}

// PlayerFrame returns the sprite index for the player. While moving the
// frame advances every eight ticks through a four-frame cycle; an idle
// player shows the first frame of its facing.
func PlayerFrame(facing core.Dir, moving bool, tick uint64) int {
	base := facingRow(facing)
	if !moving {
		return base
	}
	return base + int(tick/ticksPerFrame)%framesPerFacing
}

// PlayerSprite returns the rune for a sprite index from PlayerFrame.
func PlayerSprite(frame int) rune {
	if frame < 0 || frame >= len(playerSprites) {
		return '@'
	}
	return playerSprites[frame]
}

// floorGlyphs maps each variant to its terminal glyph. Variant 0 has none.
var floorGlyphs = [core.VariantCount]rune{
	core.VariantNone:        ' ',
	core.LargeCornerNW:      '╭',
	core.LargeCornerNE:      '╮',
	core.LargeCornerSW:      '╰',
	core.LargeCornerSE:      '╯',
	core.BorderWest:         '▏',
	core.BorderEast:         '▕',
	core.BorderNorth:        '▔',
	core.BorderSouth:        '▁',
	core.Interior:           '·',
	core.FloatWestEnd:       '▗',
	core.FloatEastEnd:       '▖',
	core.FloatMiddle:        '▄',
	core.FloatSingle:        '▂',
	core.CorridorHorizontal: '─',
	core.CorridorVertical:   '│',
	core.TightCornerNW:      '┌',
	core.TightCornerNE:      '┐',
	core.TightCornerSW:      '└',
	core.TightCornerSE:      '┘',
	core.DeadEndNorth:       '╷',
	core.DeadEndEast:        '╴',
	core.DeadEndSouth:       '╵',
	core.DeadEndWest:        '╶',
	core.JunctionNoNorth:    '┬',
	core.JunctionNoEast:     '┤',
	core.JunctionNoWest:     '├',
	core.JunctionNoSouth:    '┴',
	core.Cross:              '┼',
	core.IrregularNotchNE:   '┐',
	core.IrregularNotchNW:   '┌',
}

// eastFill is the rune that continues a glyph into the cell's extra
// columns, for glyphs that open to the east.
var eastFill = map[rune]rune{
	'╭': '─', '╰': '─', '┌': '─', '└': '─', '├': '─',
	'┬': '─', '┴': '─', '┼': '─', '─': '─', '╶': '─',
	'▔': '▔', '▁': '▁', '▄': '▄', '▗': '▄',
}

// FloorGlyph returns the glyph for a variant, or ' ' when it has none.
func FloorGlyph(v core.Variant) rune {
	if int(v) >= len(floorGlyphs) {
		return ' '
	}
	return floorGlyphs[v]
}

// FloorTile renders a variant across width terminal columns.
func FloorTile(v core.Variant, width int) string {
	if width < 1 {
		return ""
	}
	g := FloorGlyph(v)
	fill, ok := eastFill[g]
	if !ok {
		fill = ' '
	}
	return string(g) + strings.Repeat(string(fill), width-1)
}
