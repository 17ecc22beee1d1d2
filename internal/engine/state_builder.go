package engine

import (
	"fmt"

	"rpg-world/internal/domain"
	"rpg-world/internal/render"
	"rpg-world/pkg/api"
)

// Snapshot - неизменяемый снимок партии для читателей вне горутины инстанса.
type Snapshot struct {
	// Frame - то, что уходит клиентам
	Frame api.ServerResponse

	// Для debug-эндпоинтов: все монстры (в том числе невидимые) и очередь
	Monsters []api.ActorView
	Queue    []api.QueueEntryView

	// Карта, статистика и журнал как текст
	MapText   string
	MapANSI   string
	StatsText string
}

// BuildSnapshot рисует кадр в буферы и собирает снимок.
func (g *Game) BuildSnapshot() *Snapshot {
	mapBuf := render.NewBuffer(g.Map.Width(), g.Map.Height())
	statBuf := render.NewBuffer(render.StatWidth, render.StatHeight)
	msgBuf := render.NewBuffer(render.MessageWidth, render.MessageHeight)
	g.Render(mapBuf, statBuf, msgBuf)

	glyphs, backgrounds := mapBuf.Packed()
	packed := make([]uint32, len(glyphs))
	for i, gl := range glyphs {
		packed[i] = uint32(gl)
	}

	player := actorView(g.Player.Base())

	// Инициализируем как пустые слайсы, а не nil. Тогда в JSON это будет "[]", а не "null"
	visible := make([]api.ActorView, 0)
	all := make([]api.ActorView, 0)
	for _, mon := range g.Map.Monsters() {
		v := actorView(mon.Base())
		all = append(all, v)
		if pos := mon.Pos(); g.Map.IsInFov(pos.X, pos.Y) {
			visible = append(visible, v)
		}
	}

	return &Snapshot{
		Frame: api.ServerResponse{
			Type:        api.TypeFrame,
			Tick:        g.Tick(),
			Grid:        &api.GridMeta{Width: g.Map.Width(), Height: g.Map.Height()},
			Glyphs:      packed,
			Backgrounds: backgrounds,
			Player:      &player,
			Monsters:    visible,
			Logs:        g.Messages.Entries(),
		},
		Monsters:  all,
		Queue:     g.queueView(),
		MapText:   mapBuf.String(),
		MapANSI:   mapBuf.ANSI(),
		StatsText: statBuf.String(),
	}
}

func (g *Game) queueView() []api.QueueEntryView {
	entries := g.Scheduler.Snapshot()
	out := make([]api.QueueEntryView, 0, len(entries)+1)

	// Во время своего хода игрок вынут из очереди
	if g.playerTurn {
		out = append(out, api.QueueEntryView{ID: g.Player.ID, Name: g.Player.Name, Tick: g.Tick()})
	}
	for _, e := range entries {
		v := api.QueueEntryView{Tick: e.Tick}
		if a, ok := e.Actor.(domain.Actor); ok {
			v.ID = a.Base().ID
			v.Name = a.Base().Name
		}
		out = append(out, v)
	}
	return out
}

func actorView(c *domain.Character) api.ActorView {
	pos := c.Pos()
	return api.ActorView{
		ID:     c.ID,
		Name:   c.Name,
		Symbol: string(c.Symbol),
		Color:  fmt.Sprintf("#%06X", render.RGB(c.Color)),
		Pos:    api.PositionPayload{X: pos.X, Y: pos.Y},
		Stats: api.StatsView{
			HP:            c.Health,
			MaxHP:         c.MaxHealth,
			Attack:        c.Attack,
			AttackChance:  c.AttackChance,
			Defense:       c.Defense,
			DefenseChance: c.DefenseChance,
			Gold:          c.Gold,
			Awareness:     c.Awareness,
			Speed:         c.Speed,
		},
	}
}
