package agent

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rpg-world/internal/core/types"
	"rpg-world/internal/domain"
	"rpg-world/internal/engine"
	"rpg-world/internal/network"
	"rpg-world/pkg/api"
	"rpg-world/pkg/logger"
)

// Commander принимает команды игрока (engine.Instance).
type Commander interface {
	Submit(cmd api.ClientCommand) error
}

// Bot - "игрок-компьютер" (Headless Agent). Он подписан на хаб как обычный
// клиент и видит только то, что приходит в кадре: исследованную карту и
// монстров в поле зрения.
//
// Жизненный цикл:
//  1. NewBot -> бот получает свой ID.
//  2. Run -> регистрируется в хабе и просит кадр (INIT).
//  3. На каждый кадр бот решает, куда идти (decide), и отправляет команду.
type Bot struct {
	ID string
	// Delay - пауза перед каждым ходом, чтобы за ботом можно было следить
	Delay time.Duration

	commander Commander
	hub       *network.Broadcaster
	rng       *rand.Rand
	last      domain.Point
	log       *logrus.Entry
}

func NewBot(commander Commander, hub *network.Broadcaster, seed int64) *Bot {
	id := "bot-" + uuid.NewString()
	return &Bot{
		ID:        id,
		commander: commander,
		hub:       hub,
		rng:       rand.New(rand.NewSource(seed)),
		last:      domain.Point{X: -1, Y: -1},
		log:       logger.Log.WithFields(logrus.Fields{"component": "agent", "bot_id": id}),
	}
}

// Run играет до отмены ctx или закрытия канала хабом.
func (b *Bot) Run(ctx context.Context) error {
	inbox := b.hub.Register(b.ID)
	defer b.hub.Unregister(b.ID)

	b.log.Info("Bot joined the game")
	b.send(api.ClientCommand{Action: api.ActionInit})

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Bot left the game")
			return nil
		case frame, ok := <-inbox:
			if !ok {
				return nil
			}
			if frame.Type != api.TypeFrame || frame.Player == nil {
				continue
			}
			if b.Delay > 0 {
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(b.Delay):
				}
			}
			b.send(b.decide(frame))
		}
	}
}

func (b *Bot) send(cmd api.ClientCommand) {
	err := b.commander.Submit(cmd)
	switch {
	case err == nil:
	case errors.Is(err, engine.ErrInstanceBusy):
		b.log.Debug("Instance busy, move skipped")
	default:
		b.log.WithError(err).Warn("Command rejected")
	}
}

// decide выбирает ход по кадру: к ближайшему видимому монстру, а если
// никого не видно - в случайную свободную соседнюю клетку.
func (b *Bot) decide(frame api.ServerResponse) api.ClientCommand {
	me := domain.Point{X: frame.Player.Pos.X, Y: frame.Player.Pos.Y}
	prev := b.last
	b.last = me

	if target, ok := nearest(me, frame.Monsters); ok {
		if me.IsAdjacent(target) {
			return api.ClientCommand{Action: api.ActionWait}
		}
		dx, dy := me.StepToward(target)
		if isFloor(frame, me.Shift(dx, dy)) {
			return move(dx, dy)
		}
	}

	var options []domain.Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			next := me.Shift(dx, dy)
			if (dx != 0 || dy != 0) && isFloor(frame, next) {
				options = append(options, next)
			}
		}
	}
	// Назад идем, только если больше некуда
	if len(options) > 1 {
		for i, p := range options {
			if p == prev {
				options = append(options[:i], options[i+1:]...)
				break
			}
		}
	}
	if len(options) == 0 {
		return api.ClientCommand{Action: api.ActionWait}
	}

	next := options[b.rng.Intn(len(options))]
	return move(next.X-me.X, next.Y-me.Y)
}

func nearest(me domain.Point, monsters []api.ActorView) (domain.Point, bool) {
	best, found := domain.Point{}, false
	for _, m := range monsters {
		p := domain.Point{X: m.Pos.X, Y: m.Pos.Y}
		if !found || me.DistanceSquaredTo(p) < me.DistanceSquaredTo(best) {
			best, found = p, true
		}
	}
	return best, found
}

// isFloor - клетка исследована и нарисована как пол
func isFloor(frame api.ServerResponse, p domain.Point) bool {
	if frame.Grid == nil || p.X < 0 || p.Y < 0 || p.X >= frame.Grid.Width || p.Y >= frame.Grid.Height {
		return false
	}
	i := p.Y*frame.Grid.Width + p.X
	if i >= len(frame.Glyphs) {
		return false
	}
	return types.Glyph(frame.Glyphs[i]).Char() == '.'
}

func move(dx, dy int) api.ClientCommand {
	payload, _ := json.Marshal(api.DirectionPayload{Dx: dx, Dy: dy})
	return api.ClientCommand{Action: api.ActionMove, Payload: payload}
}
