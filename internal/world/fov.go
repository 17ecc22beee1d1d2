package world

import "github.com/sirupsen/logrus"

// UpdatePlayerFieldOfView пересчитывает поле зрения игрока и помечает
// все видимые клетки исследованными. Без игрока ничего не делает.
func (m *Map) UpdatePlayerFieldOfView() {
	if m.player == nil {
		m.log.Debug("Поле зрения: игрок не добавлен")
		return
	}

	pos := m.player.Pos()
	m.grid.ComputeFov(pos.X, pos.Y, m.player.Awareness, m.opts.LightWalls)

	explored := 0
	for _, c := range m.grid.Cells() {
		if !m.grid.IsInFov(c.X, c.Y) || c.IsExplored {
			continue
		}
		m.grid.SetCellProperties(c.X, c.Y, c.IsTransparent, c.IsWalkable, true)
		explored++
	}

	if explored > 0 {
		m.log.WithFields(logrus.Fields{
			"x":        pos.X,
			"y":        pos.Y,
			"explored": explored,
		}).Debug("Открыты новые клетки")
	}
}
