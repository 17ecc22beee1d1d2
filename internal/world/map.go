package world

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"rpg-world/internal/domain"
	"rpg-world/pkg/logger"
)

// ErrMonsterNotFound - монстр не зарегистрирован на карте
var ErrMonsterNotFound = errors.New("monster not found")

// Map - координатор мира: сетка с видимостью, реестр акторов и очередь ходов.
//
// Инварианты:
//   - клетка, на которой стоит актор, непроходима;
//   - монстр есть в реестре тогда и только тогда, когда он в очереди ходов;
//   - IsExplored только растет.
//
// Map не потокобезопасен: им владеет одна горутина.
type Map struct {
	grid      VisibilityEngine
	scheduler Scheduler
	rng       Random
	opts      Options

	rooms    RoomIndex
	player   *domain.Player
	monsters []*domain.Monster

	log *logrus.Entry
}

// New собирает мир из готовых зависимостей.
func New(grid VisibilityEngine, sched Scheduler, rng Random, opts Options) *Map {
	if opts.SpawnAttempts < 1 {
		opts.SpawnAttempts = DefaultSpawnAttempts
	}
	return &Map{
		grid:      grid,
		scheduler: sched,
		rng:       rng,
		opts:      opts,
		log:       logger.For("world"),
	}
}

func (m *Map) Width() int  { return m.grid.Width() }
func (m *Map) Height() int { return m.grid.Height() }

// Options возвращает действующие настройки
func (m *Map) Options() Options { return m.opts }

// Rooms - комнаты уровня
func (m *Map) Rooms() *RoomIndex { return &m.rooms }

// Player возвращает игрока или nil, если он еще не добавлен.
func (m *Map) Player() *domain.Player { return m.player }

// Monsters возвращает копию реестра монстров в порядке добавления.
func (m *Map) Monsters() []*domain.Monster {
	out := make([]*domain.Monster, len(m.monsters))
	copy(out, m.monsters)
	return out
}

// Cell возвращает копию клетки. Выход за границы - паника.
func (m *Map) Cell(x, y int) domain.Cell {
	m.mustInBounds(x, y)
	return m.grid.Cell(x, y)
}

func (m *Map) IsInFov(x, y int) bool {
	m.mustInBounds(x, y)
	return m.grid.IsInFov(x, y)
}

func (m *Map) IsWalkable(x, y int) bool {
	return m.Cell(x, y).IsWalkable
}

// Cells - снимок всей сетки
func (m *Map) Cells() []domain.Cell { return m.grid.Cells() }

// SetIsWalkable меняет только проходимость, прозрачность и исследованность
// клетки сохраняются.
func (m *Map) SetIsWalkable(x, y int, walkable bool) {
	c := m.Cell(x, y)
	m.grid.SetCellProperties(x, y, c.IsTransparent, walkable, c.IsExplored)
}

// AddPlayer назначает игрока, занимает его клетку и считает поле зрения.
// Повторный вызов заменяет игрока, клетка прежнего освобождается.
func (m *Map) AddPlayer(p *domain.Player) {
	pos := p.Pos()
	m.mustInBounds(pos.X, pos.Y)

	if prev := m.player; prev != nil && prev != p {
		old := prev.Pos()
		m.SetIsWalkable(old.X, old.Y, true)
		m.log.WithFields(logrus.Fields{
			"previous": prev.Name,
			"player":   p.Name,
		}).Info("Игрок заменен")
	}

	m.player = p
	m.SetIsWalkable(pos.X, pos.Y, false)
	m.UpdatePlayerFieldOfView()

	m.log.WithFields(logrus.Fields{
		"player": p.Name,
		"x":      pos.X,
		"y":      pos.Y,
	}).Debug("Игрок добавлен")
}

// AddMonster регистрирует монстра, занимает его клетку и ставит в очередь.
// Если очередь отказала, реестр и клетка возвращаются в прежнее состояние.
func (m *Map) AddMonster(mon *domain.Monster) error {
	pos := mon.Pos()
	wasWalkable := m.Cell(pos.X, pos.Y).IsWalkable

	m.monsters = append(m.monsters, mon)
	m.SetIsWalkable(pos.X, pos.Y, false)

	if err := m.scheduler.Add(mon); err != nil {
		m.monsters = m.monsters[:len(m.monsters)-1]
		m.SetIsWalkable(pos.X, pos.Y, wasWalkable)
		m.log.WithFields(logrus.Fields{
			"monster": mon.Name,
			"error":   err,
		}).Warn("Очередь ходов отклонила монстра")
		return fmt.Errorf("add monster %q: %w", mon.Name, err)
	}

	m.log.WithFields(logrus.Fields{
		"monster": mon.Name,
		"x":       pos.X,
		"y":       pos.Y,
	}).Debug("Монстр добавлен")
	return nil
}

// RemoveMonster снимает монстра с карты и из очереди, освобождая клетку.
func (m *Map) RemoveMonster(mon *domain.Monster) error {
	idx := m.indexOf(mon)
	if idx < 0 {
		return fmt.Errorf("remove monster %q: %w", mon.Name, ErrMonsterNotFound)
	}

	pos := mon.Pos()
	wasWalkable := m.Cell(pos.X, pos.Y).IsWalkable

	m.monsters = append(m.monsters[:idx], m.monsters[idx+1:]...)
	m.SetIsWalkable(pos.X, pos.Y, true)

	if err := m.scheduler.Remove(mon); err != nil {
		m.monsters = append(m.monsters[:idx], append([]*domain.Monster{mon}, m.monsters[idx:]...)...)
		m.SetIsWalkable(pos.X, pos.Y, wasWalkable)
		m.log.WithFields(logrus.Fields{
			"monster": mon.Name,
			"error":   err,
		}).Warn("Очередь ходов не смогла снять монстра")
		return fmt.Errorf("remove monster %q: %w", mon.Name, err)
	}

	m.log.WithField("monster", mon.Name).Debug("Монстр удален")
	return nil
}

// MonsterAt ищет монстра в клетке. Игрок сюда не попадает.
func (m *Map) MonsterAt(x, y int) (*domain.Monster, bool) {
	for _, mon := range m.monsters {
		if p := mon.Pos(); p.X == x && p.Y == y {
			return mon, true
		}
	}
	return nil, false
}

// SetActorPosition переставляет актора в (x, y), если клетка проходима.
// При отказе ничего не меняется. Для игрока пересчитывается поле зрения.
func (m *Map) SetActorPosition(a domain.Actor, x, y int) bool {
	if !m.Cell(x, y).IsWalkable {
		m.log.WithFields(logrus.Fields{
			"actor": a.Base().Name,
			"x":     x,
			"y":     y,
		}).Debug("Клетка занята или непроходима")
		return false
	}

	old := a.Pos()
	m.SetIsWalkable(old.X, old.Y, true)
	a.SetPosition(domain.Point{X: x, Y: y})
	m.SetIsWalkable(x, y, false)

	if m.isPlayer(a) {
		m.UpdatePlayerFieldOfView()
	}
	return true
}

func (m *Map) isPlayer(a domain.Actor) bool {
	p, ok := a.(*domain.Player)
	return ok && m.player != nil && p == m.player
}

func (m *Map) indexOf(mon *domain.Monster) int {
	for i, x := range m.monsters {
		if x == mon {
			return i
		}
	}
	return -1
}

func (m *Map) mustInBounds(x, y int) {
	if x < 0 || y < 0 || x >= m.grid.Width() || y >= m.grid.Height() {
		panic(fmt.Sprintf("world: cell (%d,%d) out of bounds %dx%d", x, y, m.grid.Width(), m.grid.Height()))
	}
}
