package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_SetAndClip(t *testing.T) {
	b := NewBuffer(4, 2)

	b.Set(1, 1, WallFov, WallBackgroundFov, '#')
	b.Set(-1, 0, Floor, FloorBackground, 'x') // off-surface
	b.Set(4, 0, Floor, FloorBackground, 'x')  // off-surface

	c := b.At(1, 1)
	assert.Equal(t, '#', c.Glyph)
	assert.Equal(t, WallFov, c.Fg)
	assert.Equal(t, WallBackgroundFov, c.Bg)
	assert.Equal(t, "\n #", b.String())
}

func TestBuffer_PrintAndFill(t *testing.T) {
	b := NewBuffer(10, 1)
	Print(b, 1, 0, "k: Kobolds", Text, FloorBackground)
	assert.Equal(t, " k: Kobol", b.String(), "text is clipped at surface edge")

	Fill(b, 0, 0, 3, Primary)
	assert.Equal(t, Primary, b.At(2, 0).Bg)
	assert.Equal(t, ' ', b.At(2, 0).Glyph)
}

func TestBuffer_Packed(t *testing.T) {
	b := NewBuffer(2, 1)
	b.Set(1, 0, rgb(0x12, 0x34, 0x56), rgb(1, 2, 3), '.')

	glyphs, bgs := b.Packed()
	require.Len(t, glyphs, 2)
	require.Len(t, bgs, 2)

	assert.Zero(t, glyphs[0], "untouched cells stay blank")
	assert.Equal(t, byte('.'), glyphs[1].Char())
	assert.Equal(t, uint32(0x123456), glyphs[1].Color())
	assert.Equal(t, uint32(0x010203), bgs[1])
}

func TestBuffer_ANSIKeepsGlyphs(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(0, 0, WallFov, WallBackgroundFov, '#')
	b.Set(1, 0, FloorFov, FloorBackgroundFov, '.')
	b.Set(2, 1, PlayerColor, FloorBackgroundFov, '@')

	out := b.ANSI()
	assert.Contains(t, out, "#")
	assert.Contains(t, out, ".")
	assert.Contains(t, out, "@")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRGB(t *testing.T) {
	assert.Equal(t, uint32(0), RGB(tcell.ColorDefault))
	assert.Equal(t, uint32(0), RGB(tcell.ColorBlack))
	assert.Equal(t, uint32(0xDEEED6), RGB(DbLight))
}

func TestCellPaletteIsDistinct(t *testing.T) {
	type pair struct{ fg, bg Color }
	states := []pair{
		{Wall, WallBackground},
		{WallFov, WallBackgroundFov},
		{Floor, FloorBackground},
		{FloorFov, FloorBackgroundFov},
	}

	seen := map[pair]bool{}
	for _, p := range states {
		assert.False(t, seen[p], "duplicate colour pair %v", p)
		seen[p] = true
	}
}

func TestScreenSurface(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(30, 10)

	stats := NewScreenSurface(screen, 20, 0, 10, 10)
	stats.Set(0, 0, Text, FloorBackground, 'H')
	stats.Set(10, 0, Text, FloorBackground, 'X') // outside the window

	r, _, _, _ := screen.GetContent(20, 0)
	assert.Equal(t, 'H', r)

	r, _, _, _ = screen.GetContent(29, 0)
	assert.NotEqual(t, 'X', r)
}
