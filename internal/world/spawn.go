package world

import "rpg-world/internal/domain"

// RandomWalkableLocationInRoom ищет случайную проходимую клетку внутри
// комнаты (рамка не в счет). Если свободных клеток нет совсем, случайных
// попыток не делает. Иначе пробует не больше Options.SpawnAttempts раз.
func (m *Map) RandomWalkableLocationInRoom(r domain.Room) (domain.Point, bool) {
	if !m.hasWalkableInterior(r) {
		return domain.Point{}, false
	}

	for i := 0; i < m.opts.SpawnAttempts; i++ {
		// Intn(W-2)+1 дает [1, W-2]
		x := r.X + m.rng.Intn(r.Width-2) + 1
		y := r.Y + m.rng.Intn(r.Height-2) + 1
		if m.IsWalkable(x, y) {
			return domain.Point{X: x, Y: y}, true
		}
	}

	m.log.WithField("room", r).Debug("Не нашли свободную клетку за отведенные попытки")
	return domain.Point{}, false
}

func (m *Map) hasWalkableInterior(r domain.Room) bool {
	for x := 1; x <= r.Width-2; x++ {
		for y := 1; y <= r.Height-2; y++ {
			if m.IsWalkable(r.X+x, r.Y+y) {
				return true
			}
		}
	}
	return false
}
