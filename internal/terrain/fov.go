package terrain

import (
	"github.com/sirupsen/logrus"

	"rpg-world/pkg/logger"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeFov пересчитывает видимые клетки из (x, y) в радиусе radius
// (рекурсивный shadowcasting). Клетка наблюдателя видна всегда.
// lightWalls=false убирает из результата непрозрачные клетки:
// видно только пол, стены по краю обзора остаются темными.
func (g *Grid) ComputeFov(x, y, radius int, lightWalls bool) {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "terrain",
		"observer_pos": [2]int{x, y},
		"radius":       radius,
	})

	for i := range g.cells {
		g.cells[i].IsInFov = false
	}

	// Центр всегда виден
	g.cells[g.index(x, y)].IsInFov = true

	if radius <= 0 {
		fovLogger.Debug("FOV limited to observer cell (radius <= 0).")
		return
	}

	// Запускаем рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		g.castLight(x, y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i])
	}

	if !lightWalls {
		origin := g.index(x, y)
		for i := range g.cells {
			if !g.cells[i].IsTransparent && i != origin {
				g.cells[i].IsInFov = false
			}
		}
	}

	if fovLogger.Logger.IsLevelEnabled(logrus.DebugLevel) {
		visible := 0
		for i := range g.cells {
			if g.cells[i].IsInFov {
				visible++
			}
		}
		fovLogger.WithField("visible_cells", visible).Debug("FOV calculation complete.")
	}
}

func (g *Grid) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if g.InBounds(X, Y) && float64(dx*dx+dy*dy) < radiusSq {
				g.cells[g.index(X, Y)].IsInFov = true
			}

			// Логика теней
			if blocked {
				if g.blocksSight(X, Y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else if g.blocksSight(X, Y) && j < radius {
				// Мы шли по пустоте и наткнулись на стену
				blocked = true
				g.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// blocksSight - выход за границы тоже блокирует взгляд
func (g *Grid) blocksSight(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return !g.cells[y*g.width+x].IsTransparent
}
