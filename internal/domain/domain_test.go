package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpg-world/internal/render"
)

func TestPoint(t *testing.T) {
	p := Point{X: 5, Y: 5}

	assert.Equal(t, Point{X: 6, Y: 4}, p.Shift(1, -1))
	assert.Equal(t, 25, p.DistanceSquaredTo(Point{}))
	assert.True(t, p.IsAdjacent(Point{X: 4, Y: 6}))
	assert.False(t, p.IsAdjacent(p), "a point is not adjacent to itself")
	assert.False(t, p.IsAdjacent(Point{X: 7, Y: 5}))

	dx, dy := p.StepToward(Point{X: 1, Y: 5})
	assert.Equal(t, -1, dx)
	assert.Equal(t, 0, dy)
}

func TestRoom(t *testing.T) {
	r := NewRoom(10, 20, 5, 4)

	assert.Equal(t, Point{X: 12, Y: 22}, r.Center())
	assert.True(t, r.HasInterior())
	assert.False(t, NewRoom(0, 0, 2, 5).HasInterior())

	assert.True(t, r.InInterior(Point{X: 11, Y: 21}))
	assert.True(t, r.InInterior(Point{X: 13, Y: 22}))
	assert.False(t, r.InInterior(Point{X: 10, Y: 21}), "border column is not interior")
	assert.False(t, r.InInterior(Point{X: 14, Y: 21}), "border column is not interior")

	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.False(t, r.Contains(Point{X: 15, Y: 20}))
}

func TestRoom_Intersects(t *testing.T) {
	r1 := NewRoom(0, 0, 10, 10)
	r2 := NewRoom(5, 5, 10, 10) // Пересекается
	r3 := NewRoom(20, 20, 5, 5) // Не пересекается

	assert.True(t, r1.Intersects(r2))
	assert.False(t, r1.Intersects(r3))
}

type fakeView struct {
	explored map[Point]bool
	fov      map[Point]bool
}

func (v fakeView) Cell(x, y int) Cell {
	return Cell{X: x, Y: y, IsExplored: v.explored[Point{X: x, Y: y}]}
}

func (v fakeView) IsInFov(x, y int) bool { return v.fov[Point{X: x, Y: y}] }

func TestCharacter_Draw(t *testing.T) {
	m := NewMonster("Kobold", 'k', render.DbBrightWood, Stats{Health: 10, MaxHealth: 10, Speed: 14}, Point{X: 1, Y: 1})
	at := Point{X: 1, Y: 1}

	tests := []struct {
		name      string
		view      fakeView
		wantGlyph rune
		wantFg    render.Color
	}{
		{name: "unexplored draws nothing", view: fakeView{}, wantGlyph: 0},
		{
			name:      "in fov draws the actor",
			view:      fakeView{explored: map[Point]bool{at: true}, fov: map[Point]bool{at: true}},
			wantGlyph: 'k',
			wantFg:    render.DbBrightWood,
		},
		{
			name:      "out of fov draws remembered floor",
			view:      fakeView{explored: map[Point]bool{at: true}},
			wantGlyph: '.',
			wantFg:    render.Floor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := render.NewBuffer(3, 3)
			m.Draw(b, tt.view)

			c := b.At(1, 1)
			assert.Equal(t, tt.wantGlyph, c.Glyph)
			if tt.wantGlyph != 0 {
				assert.Equal(t, tt.wantFg, c.Fg)
			}
		})
	}
}

func TestCharacter_TimeIsSpeed(t *testing.T) {
	p := NewPlayer("Rogue", DefaultPlayerStats(15), Point{})

	var a Actor = p
	assert.Equal(t, 10, a.Time())
	assert.Same(t, &p.Character, a.Base())

	a.SetPosition(Point{X: 3, Y: 4})
	assert.Equal(t, Point{X: 3, Y: 4}, p.Pos())
}

func TestNewActors_GetDistinctIDs(t *testing.T) {
	a := NewPlayer("a", Stats{}, Point{})
	b := NewMonster("b", 'b', render.DbBlood, Stats{}, Point{})

	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMonster_DrawStats(t *testing.T) {
	m := NewMonster("Goblin", 'g', render.DbGrass, Stats{Health: 5, MaxHealth: 10}, Point{})
	b := render.NewBuffer(render.StatWidth, render.StatHeight)

	m.DrawStats(b, 1)

	y := 15 // 13 + 1*2
	assert.Equal(t, 'g', b.At(1, y).Glyph)
	assert.Equal(t, render.DbGrass, b.At(1, y).Fg)
	assert.Equal(t, ':', b.At(2, y).Glyph)
	assert.Equal(t, 'G', b.At(4, y).Glyph)

	// half health: 8 filled cells starting at x=3, 8 empty
	assert.Equal(t, render.Primary, b.At(3, y).Bg)
	assert.Equal(t, render.Primary, b.At(10, y).Bg)
	assert.Equal(t, render.PrimaryDarkest, b.At(11, y).Bg)
	assert.Equal(t, render.PrimaryDarkest, b.At(18, y).Bg)
}

func TestPlayer_DrawStats(t *testing.T) {
	p := NewPlayer("Rogue", DefaultPlayerStats(15), Point{})
	p.Gold = 42
	b := render.NewBuffer(render.StatWidth, render.StatHeight)

	p.DrawStats(b)

	out := b.String()
	assert.Contains(t, out, "Name:    Rogue")
	assert.Contains(t, out, "Health:  100/100")
	assert.Contains(t, out, "Gold:    42")
}

func TestStats_HealthRatio(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.HealthRatio())
	assert.Equal(t, 1.0, Stats{Health: 20, MaxHealth: 10}.HealthRatio())
	assert.Equal(t, 0.25, Stats{Health: 1, MaxHealth: 4}.HealthRatio())
}
