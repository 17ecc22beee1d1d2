package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpg-world/internal/domain"
	"rpg-world/internal/render"
	"rpg-world/internal/terrain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		cell   domain.Cell
		want   Appearance
		wantOK bool
	}{
		{
			name:   "unexplored",
			cell:   domain.Cell{IsWalkable: true, IsTransparent: true, IsInFov: true},
			wantOK: false,
		},
		{
			name:   "floor in fov",
			cell:   domain.Cell{IsWalkable: true, IsTransparent: true, IsExplored: true, IsInFov: true},
			want:   Appearance{Glyph: '.', Fg: render.FloorFov, Bg: render.FloorBackgroundFov},
			wantOK: true,
		},
		{
			name:   "remembered floor",
			cell:   domain.Cell{IsWalkable: true, IsTransparent: true, IsExplored: true},
			want:   Appearance{Glyph: '.', Fg: render.Floor, Bg: render.FloorBackground},
			wantOK: true,
		},
		{
			name:   "wall in fov",
			cell:   domain.Cell{IsExplored: true, IsInFov: true},
			want:   Appearance{Glyph: '#', Fg: render.WallFov, Bg: render.WallBackgroundFov},
			wantOK: true,
		},
		{
			name:   "remembered wall",
			cell:   domain.Cell{IsExplored: true},
			want:   Appearance{Glyph: '#', Fg: render.Wall, Bg: render.WallBackground},
			wantOK: true,
		},
		{
			name:   "occupied floor looks like wall",
			cell:   domain.Cell{IsTransparent: true, IsExplored: true, IsInFov: true},
			want:   Appearance{Glyph: '#', Fg: render.WallFov, Bg: render.WallBackgroundFov},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// twoRooms: две комнаты 8x5, между ними стена в две клетки (x = 9, 10)
func twoRooms() *terrain.Grid {
	g := terrain.NewGrid(20, 7)
	for y := 1; y <= 5; y++ {
		for x := 1; x <= 8; x++ {
			g.Carve(x, y)
		}
		for x := 11; x <= 18; x++ {
			g.Carve(x, y)
		}
	}
	return g
}

func TestDraw(t *testing.T) {
	m, _ := newTestMap(twoRooms())
	m.AddPlayer(newPlayer(2, 3, 20))

	hidden := newKobold(15, 3)
	near := newKobold(5, 3)
	corner := newKobold(5, 1)
	require.NoError(t, m.AddMonster(hidden))
	require.NoError(t, m.AddMonster(near))
	require.NoError(t, m.AddMonster(corner))

	mapBuf := render.NewBuffer(m.Width(), m.Height())
	statBuf := render.NewBuffer(render.StatWidth, render.StatHeight)
	m.Draw(mapBuf, statBuf)

	// Дальняя комната не исследована
	assert.Zero(t, mapBuf.At(15, 3).Glyph)
	assert.Zero(t, mapBuf.At(12, 2).Glyph)

	assert.Equal(t, render.Cell{Glyph: '.', Fg: render.FloorFov, Bg: render.FloorBackgroundFov}, mapBuf.At(1, 3))
	assert.Equal(t, '#', mapBuf.At(0, 3).Glyph)
	// Клетка игрока занята: под ним стена, самого игрока рисует не карта
	assert.Equal(t, '#', mapBuf.At(2, 3).Glyph)

	assert.Equal(t, render.Cell{Glyph: 'k', Fg: render.DbBrightWood, Bg: render.FloorBackgroundFov}, mapBuf.At(5, 3))
	assert.Equal(t, 'k', mapBuf.At(5, 1).Glyph)

	// Статистика только у видимых монстров, номера подряд
	assert.Equal(t, 'k', statBuf.At(1, 13).Glyph)
	assert.Equal(t, 'k', statBuf.At(1, 15).Glyph)
	assert.Zero(t, statBuf.At(1, 17).Glyph)
}

func TestDraw_RememberedMonsterCell(t *testing.T) {
	m, _ := newTestMap(corridor(20))
	p := newPlayer(1, 2, 4)
	m.AddPlayer(p)
	for x := 2; x <= 10; x++ {
		require.True(t, m.SetActorPosition(p, x, 2))
	}

	kobold := newKobold(2, 2)
	require.NoError(t, m.AddMonster(kobold))

	mapBuf := render.NewBuffer(m.Width(), m.Height())
	statBuf := render.NewBuffer(render.StatWidth, render.StatHeight)
	m.Draw(mapBuf, statBuf)

	// Вне поля зрения вместо монстра - пол по памяти
	assert.Equal(t, render.Cell{Glyph: '.', Fg: render.Floor, Bg: render.FloorBackground}, mapBuf.At(2, 2))
	assert.Zero(t, statBuf.At(1, 13).Glyph)
}
