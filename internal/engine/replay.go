package engine

import (
	"encoding/json"
	"fmt"

	"rpg-world/internal/config"
	"rpg-world/pkg/api"
)

// RecordedCommand - исполненная команда игрока и тик, на котором она пришла
type RecordedCommand struct {
	Tick    int             `json:"tick"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Recording - зерно уровня и команды игрока по порядку.
// Уровень детерминирован по зерну, поэтому этого хватает для повтора партии.
type Recording struct {
	Seed     int64             `json:"seed"`
	Level    int               `json:"level"`
	Commands []RecordedCommand `json:"commands"`
}

// Record добавляет команду в конец записи
func (r *Recording) Record(tick int, cmd api.ClientCommand) {
	r.Commands = append(r.Commands, RecordedCommand{
		Tick:    tick,
		Action:  cmd.Action,
		Payload: append(json.RawMessage(nil), cmd.Payload...),
	})
}

// Clone - глубокая копия для читателей из других горутин
func (r *Recording) Clone() *Recording {
	out := &Recording{Seed: r.Seed, Level: r.Level, Commands: make([]RecordedCommand, len(r.Commands))}
	copy(out.Commands, r.Commands)
	return out
}

// Apply исполняет команду клиента. INIT ничего не меняет.
func (g *Game) Apply(cmd api.ClientCommand) error {
	switch cmd.Action {
	case api.ActionMove:
		dir, err := api.DecodePayload[api.DirectionPayload](cmd.Payload)
		if err != nil {
			return err
		}
		g.MovePlayer(dir.Dx, dir.Dy)
	case api.ActionWait:
		g.Wait()
	case api.ActionInit:
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
	return nil
}

// Replay заново строит уровень по зерну записи и проигрывает команды.
// Тик каждой команды сверяется с записью: расхождение значит, что
// генерация или правила изменились с момента записи.
func Replay(cfg config.Config, rec *Recording) (*Game, error) {
	cfg.Seed = rec.Seed
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}

	for n, c := range rec.Commands {
		if g.Tick() != c.Tick {
			return g, fmt.Errorf("replay diverged at command %d: tick %d, recorded %d", n, g.Tick(), c.Tick)
		}
		if err := g.Apply(api.ClientCommand{Action: c.Action, Payload: c.Payload}); err != nil {
			return g, fmt.Errorf("replay command %d: %w", n, err)
		}
	}
	return g, nil
}
