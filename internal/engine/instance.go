package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"rpg-world/internal/network"
	"rpg-world/pkg/api"
	"rpg-world/pkg/logger"
)

// ErrInstanceBusy - очередь команд инстанса переполнена
var ErrInstanceBusy = errors.New("instance command queue is full")

// Instance - запущенная партия. Партией владеет одна горутина (Run),
// остальные общаются с ней через Submit и читают готовые снимки.
type Instance struct {
	ID int

	game     *Game
	commands chan api.ClientCommand
	hub      *network.Broadcaster
	snapshot atomic.Pointer[Snapshot]
	log      *logrus.Entry

	recMu     sync.Mutex
	recording *Recording
}

func NewInstance(id int, game *Game, hub *network.Broadcaster) *Instance {
	i := &Instance{
		ID:        id,
		game:      game,
		commands:  make(chan api.ClientCommand, 100),
		hub:       hub,
		recording: &Recording{Seed: game.Seed, Level: game.Level},
		log: logger.Log.WithFields(logrus.Fields{
			"component":   "engine",
			"instance_id": id,
		}),
	}
	i.snapshot.Store(game.BuildSnapshot())
	return i
}

// Submit проверяет команду и ставит ее в очередь, не блокируясь.
func (i *Instance) Submit(cmd api.ClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	select {
	case i.commands <- cmd:
		return nil
	default:
		return ErrInstanceBusy
	}
}

// Snapshot - последний опубликованный снимок. Безопасно из любой горутины.
func (i *Instance) Snapshot() *Snapshot {
	return i.snapshot.Load()
}

// Recording - копия записи исполненных команд
func (i *Instance) Recording() *Recording {
	i.recMu.Lock()
	defer i.recMu.Unlock()
	return i.recording.Clone()
}

// Run запускает цикл инстанса до отмены ctx.
func (i *Instance) Run(ctx context.Context) error {
	i.log.Info("Instance loop started")
	i.publish()

	for {
		select {
		case <-ctx.Done():
			i.log.Info("Instance loop stopped")
			return nil
		case cmd := <-i.commands:
			i.execute(cmd)
			i.publish()
		}
	}
}

func (i *Instance) execute(cmd api.ClientCommand) {
	if cmd.Action == api.ActionMove || cmd.Action == api.ActionWait {
		i.recMu.Lock()
		i.recording.Record(i.game.Tick(), cmd)
		i.recMu.Unlock()
	}
	if err := i.game.Apply(cmd); err != nil {
		i.log.WithError(err).WithField("action", cmd.Action).Warn("Command rejected")
	}
}

func (i *Instance) publish() {
	snap := i.game.BuildSnapshot()
	i.snapshot.Store(snap)
	i.hub.Broadcast(snap.Frame)
}
