package world

import (
	"rpg-world/internal/domain"
	"rpg-world/internal/render"
)

// Appearance - как рисуется клетка
type Appearance struct {
	Glyph rune
	Fg    render.Color
	Bg    render.Color
}

// Classify выбирает вид клетки: стена или пол, в поле зрения или по памяти.
// Неисследованная клетка не рисуется (false).
// Занятая актором клетка непроходима и выглядит как стена, актор рисуется поверх.
func Classify(c domain.Cell) (Appearance, bool) {
	if !c.IsExplored {
		return Appearance{}, false
	}

	switch {
	case c.IsInFov && c.IsWalkable:
		return Appearance{Glyph: '.', Fg: render.FloorFov, Bg: render.FloorBackgroundFov}, true
	case c.IsInFov:
		return Appearance{Glyph: '#', Fg: render.WallFov, Bg: render.WallBackgroundFov}, true
	case c.IsWalkable:
		return Appearance{Glyph: '.', Fg: render.Floor, Bg: render.FloorBackground}, true
	default:
		return Appearance{Glyph: '#', Fg: render.Wall, Bg: render.WallBackground}, true
	}
}

// Draw рисует карту, затем монстров поверх нее. Строки статистики
// получают только видимые монстры, нумерация идет подряд с нуля.
func (m *Map) Draw(mapSurface, statSurface render.Surface) {
	for _, c := range m.grid.Cells() {
		c.IsInFov = m.grid.IsInFov(c.X, c.Y)
		if a, ok := Classify(c); ok {
			mapSurface.Set(c.X, c.Y, a.Fg, a.Bg, a.Glyph)
		}
	}

	i := 0
	for _, mon := range m.monsters {
		mon.Draw(mapSurface, m)

		pos := mon.Pos()
		if m.IsInFov(pos.X, pos.Y) {
			mon.DrawStats(statSurface, i)
			i++
		}
	}
}
