package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpg-world/internal/config"
	"rpg-world/internal/engine"
	"rpg-world/internal/render"
	"rpg-world/pkg/logger"
)

func newGame(t *testing.T) *engine.Game {
	t.Helper()
	return newGameSized(t, 80, 48)
}

func newGameSized(t *testing.T, w, h int) *engine.Game {
	t.Helper()
	logger.Init()
	cfg := config.Default()
	cfg.Seed = 5
	cfg.MapWidth, cfg.MapHeight = w, h
	g, err := engine.NewGame(cfg)
	require.NoError(t, err)
	return g
}

func TestHandleKey(t *testing.T) {
	g := newGame(t)

	assert.True(t, handleKey(g, tcell.KeyRune, 'q'))
	assert.True(t, handleKey(g, tcell.KeyEscape, 0))

	before := g.Tick()
	assert.False(t, handleKey(g, tcell.KeyRune, '.'))
	assert.Greater(t, g.Tick(), before)

	assert.False(t, handleKey(g, tcell.KeyRune, 'x'), "unknown keys are ignored")
}

func TestView_Draw(t *testing.T) {
	g := newGame(t)

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(render.ScreenWidth, render.ScreenHeight)

	l := layoutFor(g.Map.Width(), g.Map.Height())
	newView(screen, l).draw(g, 5)

	pos := g.Player.Pos()
	r, _, _, _ := screen.GetContent(pos.X, l.mapY+pos.Y)
	assert.Equal(t, '@', r)

	// Первая строка журнала под картой
	r, _, _, _ = screen.GetContent(1, l.messageY+1)
	assert.Equal(t, 'R', r, "Rogue arrives on level 1")

	// Имя игрока в панели статистики
	r, _, _, _ = screen.GetContent(l.statX+1, 1)
	assert.Equal(t, 'N', r)
}

func TestLayoutFor(t *testing.T) {
	def := layoutFor(80, 48)
	assert.Equal(t, layout{width: 80, mapY: 11, mapH: 48, messageY: 59, statX: 80}, def)

	small := layoutFor(40, 20)
	assert.Equal(t, def, small, "smaller maps keep the default panes")

	wide := layoutFor(120, 60)
	assert.Equal(t, 120, wide.statX)
	assert.Equal(t, 11+60, wide.messageY)
}

func TestView_DrawWideMap(t *testing.T) {
	g := newGameSized(t, 120, 60)

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	l := layoutFor(g.Map.Width(), g.Map.Height())
	screen.SetSize(l.statX+render.StatWidth, l.messageY+render.MessageHeight)

	newView(screen, l).draw(g, 5)

	// Статистика справа от карты, а не поверх нее
	r, _, _, _ := screen.GetContent(l.statX+1, 1)
	assert.Equal(t, 'N', r)

	pos := g.Player.Pos()
	r, _, _, _ = screen.GetContent(pos.X, l.mapY+pos.Y)
	assert.Equal(t, '@', r)
}
