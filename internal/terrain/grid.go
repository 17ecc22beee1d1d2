package terrain

import (
	"fmt"

	"rpg-world/internal/domain"
)

// Grid - двумерная сетка клеток и расчет поля зрения над ней.
// Реализует world.VisibilityEngine.
type Grid struct {
	width, height int
	cells         []domain.Cell
}

// NewGrid создает сетку, целиком заполненную стенами
// (непрозрачно, непроходимо, не исследовано).
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]domain.Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = domain.Cell{X: x, Y: y}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds проверяет, что координаты лежат на сетке
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("terrain: cell (%d,%d) out of bounds %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Cell возвращает копию клетки
func (g *Grid) Cell(x, y int) domain.Cell {
	return g.cells[g.index(x, y)]
}

// Cells возвращает снимок всех клеток построчно (один полный проход по сетке)
func (g *Grid) Cells() []domain.Cell {
	out := make([]domain.Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// SetCellProperties перезаписывает свойства клетки. IsInFov не трогает.
func (g *Grid) SetCellProperties(x, y int, transparent, walkable, explored bool) {
	c := &g.cells[g.index(x, y)]
	c.IsTransparent = transparent
	c.IsWalkable = walkable
	c.IsExplored = explored
}

func (g *Grid) IsWalkable(x, y int) bool {
	return g.cells[g.index(x, y)].IsWalkable
}

func (g *Grid) IsTransparent(x, y int) bool {
	return g.cells[g.index(x, y)].IsTransparent
}

// IsInFov - видна ли клетка по результатам последнего ComputeFov.
func (g *Grid) IsInFov(x, y int) bool {
	return g.cells[g.index(x, y)].IsInFov
}

// Carve делает клетку полом (прозрачно и проходимо)
func (g *Grid) Carve(x, y int) {
	c := g.Cell(x, y)
	g.SetCellProperties(x, y, true, true, c.IsExplored)
}

// String - рельеф для отладки: '#' стена, '.' пол
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x].IsTransparent {
				buf = append(buf, '.')
			} else {
				buf = append(buf, '#')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
