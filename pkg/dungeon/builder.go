package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"rpg-world/internal/domain"
	"rpg-world/internal/render"
	"rpg-world/internal/terrain"
	"rpg-world/internal/world"
	"rpg-world/pkg/logger"
)

// Константы генерации по умолчанию
const (
	MapWidth  = render.MapWidth
	MapHeight = render.MapHeight
	MaxRooms  = 13
	MinSize   = 7
	MaxSize   = 13
)

// Монстры в комнате: с шансом 1d10 < 7 появляется 1d4 штук
var (
	monsterChance = D(1, 10)
	monsterCount  = D(1, 4)
)

const monsterChanceBelow = 7

// ErrNoRooms - генератор не смог поставить ни одной комнаты
var ErrNoRooms = errors.New("level has no rooms")

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	level   int
	width   int
	height  int
	minSize int
	maxSize int
	opts    world.Options
	rng     *rand.Rand

	grid  *terrain.Grid
	rooms []domain.Room
	log   *logrus.Entry
}

// NewLevel создает новый builder для уровня
func NewLevel(level int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		level:   level,
		width:   MapWidth,
		height:  MapHeight,
		minSize: MinSize,
		maxSize: MaxSize,
		opts:    world.DefaultOptions(),
		rng:     rng,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"level":     level,
		}),
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRoomSizes - границы размеров комнат (вместе с рамкой)
func (b *LevelBuilder) WithRoomSizes(minSize, maxSize int) *LevelBuilder {
	b.minSize = minSize
	b.maxSize = maxSize
	return b
}

// WithOptions - настройки мира, которые получит карта
func (b *LevelBuilder) WithOptions(opts world.Options) *LevelBuilder {
	b.opts = opts
	return b
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.grid = terrain.NewGrid(b.width, b.height)
	b.rooms = make([]domain.Room, 0, max(maxRooms, 0))

	for i := 0; i < maxRooms; i++ {
		w := b.randRange(b.minSize, b.maxSize)
		h := b.randRange(b.minSize, b.maxSize)
		if w > b.width-2 || h > b.height-2 {
			continue
		}
		x := b.randRange(1, b.width-w-1)
		y := b.randRange(1, b.height-h-1)

		newRoom := domain.NewRoom(x, y, w, h)

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.carveRoom(newRoom)

		// Соединяем с предыдущей комнатой
		if len(b.rooms) > 0 {
			prev := b.rooms[len(b.rooms)-1].Center()
			curr := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				b.carveHCorridor(prev.X, curr.X, prev.Y)
				b.carveVCorridor(prev.Y, curr.Y, curr.X)
			} else {
				b.carveVCorridor(prev.Y, curr.Y, prev.X)
				b.carveHCorridor(prev.X, curr.X, curr.Y)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	b.log.WithField("rooms", len(b.rooms)).Debug("Комнаты сгенерированы")
	return b
}

// Rooms возвращает копию списка комнат
func (b *LevelBuilder) Rooms() []domain.Room {
	out := make([]domain.Room, len(b.rooms))
	copy(out, b.rooms)
	return out
}

// StartPos возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) StartPos() domain.Point {
	if len(b.rooms) > 0 {
		return b.rooms[0].Center()
	}
	return domain.Point{X: b.width / 2, Y: b.height / 2}
}

// Build собирает карту: комнаты, игрок в центре первой комнаты, монстры.
// Монстры сразу попадают в sched. Игрока в очередь ставит вызывающий.
// Без комнат уровень сплошная скала, такой уровень не строится (ErrNoRooms).
func (b *LevelBuilder) Build(sched world.Scheduler, player *domain.Player) (*world.Map, error) {
	if len(b.rooms) == 0 {
		return nil, fmt.Errorf("build level %d (%dx%d, rooms %d-%d): %w",
			b.level, b.width, b.height, b.minSize, b.maxSize, ErrNoRooms)
	}

	m := world.New(b.grid, sched, b.rng, b.opts)
	for _, r := range b.rooms {
		m.Rooms().Add(r)
	}

	if player != nil {
		player.SetPosition(b.StartPos())
		m.AddPlayer(player)
	}

	if err := b.placeMonsters(m); err != nil {
		return nil, err
	}

	b.log.WithFields(logrus.Fields{
		"rooms":    m.Rooms().Len(),
		"monsters": len(m.Monsters()),
	}).Info("Уровень построен")
	return m, nil
}

func (b *LevelBuilder) placeMonsters(m *world.Map) error {
	for _, room := range m.Rooms().All() {
		if monsterChance.Roll(b.rng) >= monsterChanceBelow {
			continue
		}

		count := monsterCount.Roll(b.rng)
		for i := 0; i < count; i++ {
			pos, ok := m.RandomWalkableLocationInRoom(room)
			if !ok {
				break
			}
			monster := templateForLevel(b.level, b.rng).Spawn(pos, b.level, b.rng)
			if err := m.AddMonster(monster); err != nil {
				return fmt.Errorf("place monsters: %w", err)
			}
		}
	}
	return nil
}

// carveRoom вырезает внутренность комнаты, рамка остается стеной
func (b *LevelBuilder) carveRoom(room domain.Room) {
	for y := room.Y + 1; y < room.Y+room.Height-1; y++ {
		for x := room.X + 1; x < room.X+room.Width-1; x++ {
			b.grid.Carve(x, y)
		}
	}
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.grid.Carve(x, y)
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.grid.Carve(x, y)
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}
