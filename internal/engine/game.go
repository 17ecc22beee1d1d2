package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"rpg-world/internal/config"
	"rpg-world/internal/domain"
	"rpg-world/internal/render"
	"rpg-world/internal/scheduler"
	"rpg-world/internal/world"
	"rpg-world/pkg/dungeon"
	"rpg-world/pkg/logger"
)

// ErrNoPlayer - на карте нет игрока
var ErrNoPlayer = errors.New("map has no player")

// Game - одна партия: карта, очередь ходов, игрок и журнал.
// Не потокобезопасна, ей владеет Instance.
type Game struct {
	Map       *world.Map
	Scheduler *scheduler.Scheduler
	Player    *domain.Player
	Messages  *MessageLog
	Level     int
	// Seed - зерно, из которого построен уровень (0 для готовых карт)
	Seed int64

	playerTurn bool
	log        *logrus.Entry
}

// NewGame генерирует первый уровень по конфигу.
func NewGame(cfg config.Config) (*Game, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	sched := scheduler.New()
	player := domain.NewPlayer("Rogue", domain.DefaultPlayerStats(cfg.PlayerAwareness), domain.Point{})

	m, err := dungeon.NewLevel(1, rng).
		WithSize(cfg.MapWidth, cfg.MapHeight).
		WithRoomSizes(cfg.RoomMinSize, cfg.RoomMaxSize).
		WithOptions(world.Options{SpawnAttempts: cfg.SpawnAttempts, LightWalls: cfg.LightWalls}).
		WithRooms(cfg.MaxRooms).
		Build(sched, player)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	g, err := NewGameWithMap(m, sched, 1)
	if err != nil {
		return nil, err
	}
	g.Seed = cfg.Seed
	return g, nil
}

// NewGameWithMap запускает партию на готовой карте. Игрок уже должен быть
// добавлен на карту, в очередь его ставит сама партия.
func NewGameWithMap(m *world.Map, sched *scheduler.Scheduler, level int) (*Game, error) {
	player := m.Player()
	if player == nil {
		return nil, ErrNoPlayer
	}
	if err := sched.Add(player); err != nil {
		return nil, fmt.Errorf("schedule player: %w", err)
	}

	g := &Game{
		Map:       m,
		Scheduler: sched,
		Player:    player,
		Messages:  NewMessageLog(MaxMessageLines),
		Level:     level,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"level":     level,
		}),
	}

	g.Messages.Add(fmt.Sprintf("%s arrives on level %d", player.Name, level), LogInfo)
	g.advance()
	return g, nil
}

// IsPlayerTurn - ждет ли партия команды игрока
func (g *Game) IsPlayerTurn() bool { return g.playerTurn }

// Tick - текущее время очереди ходов
func (g *Game) Tick() int { return g.Scheduler.Time() }

// MovePlayer делает шаг игрока. true - ход потрачен.
// Упереться в монстра можно, но ход на это не тратится.
func (g *Game) MovePlayer(dx, dy int) bool {
	if !g.playerTurn {
		return false
	}

	target := g.Player.Pos().Shift(dx, dy)
	if target.X < 0 || target.Y < 0 || target.X >= g.Map.Width() || target.Y >= g.Map.Height() {
		return false
	}

	if mon, ok := g.Map.MonsterAt(target.X, target.Y); ok {
		g.Messages.Add(fmt.Sprintf("%s blocks the way", mon.Name), LogMove)
		return false
	}

	if !g.Map.SetActorPosition(g.Player, target.X, target.Y) {
		return false
	}

	g.endPlayerTurn()
	return true
}

// Wait - игрок пропускает ход
func (g *Game) Wait() bool {
	if !g.playerTurn {
		return false
	}
	g.endPlayerTurn()
	return true
}

// Render рисует весь кадр: карта с монстрами, игрок, статистика и журнал.
func (g *Game) Render(mapSurface, statSurface, messageSurface render.Surface) {
	g.Map.Draw(mapSurface, statSurface)
	g.Player.Draw(mapSurface, g.Map)
	g.Player.DrawStats(statSurface)
	g.Messages.Draw(messageSurface)
}

func (g *Game) endPlayerTurn() {
	g.playerTurn = false
	if err := g.Scheduler.Add(g.Player); err != nil {
		g.log.WithError(err).Error("Не удалось вернуть игрока в очередь")
		return
	}
	g.advance()
}

// advance отдает ходы монстрам, пока очередь не дойдет до игрока.
func (g *Game) advance() {
	for {
		next, ok := g.Scheduler.Next()
		if !ok {
			g.log.Warn("Очередь ходов пуста")
			return
		}

		if next == domain.Schedulable(g.Player) {
			g.playerTurn = true
			return
		}

		mon, ok := next.(*domain.Monster)
		if !ok {
			g.log.WithField("actor", fmt.Sprintf("%T", next)).Warn("Неизвестный актор в очереди")
			continue
		}

		g.processAITurn(mon)

		if err := g.Scheduler.Add(mon); err != nil {
			g.log.WithError(err).WithField("monster", mon.Name).Error("Не удалось вернуть монстра в очередь")
		}
	}
}
