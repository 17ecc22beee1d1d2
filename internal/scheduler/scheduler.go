package scheduler

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"rpg-world/internal/domain"
	"rpg-world/pkg/logger"
)

var (
	ErrAlreadyScheduled = errors.New("actor is already scheduled")
	ErrNotScheduled     = errors.New("actor is not scheduled")
)

// Scheduler - очередь ходов по времени.
// Актор, добавленный в момент T, ходит в тик T + actor.Time().
// Реализует world.Scheduler.
type Scheduler struct {
	queue TurnQueue
	items map[domain.Schedulable]*TurnItem
	time  int
	seq   uint64
	log   *logrus.Entry
}

func New() *Scheduler {
	return &Scheduler{
		queue: make(TurnQueue, 0),
		items: make(map[domain.Schedulable]*TurnItem),
		log:   logger.For("scheduler"),
	}
}

// Add ставит актора в очередь на тик Time() + a.Time().
func (s *Scheduler) Add(a domain.Schedulable) error {
	if _, ok := s.items[a]; ok {
		return fmt.Errorf("add to turn queue: %w", ErrAlreadyScheduled)
	}

	s.seq++
	item := &TurnItem{
		Value:    a,
		Priority: s.time + a.Time(),
		seq:      s.seq,
	}
	heap.Push(&s.queue, item)
	s.items[a] = item

	s.log.WithField("tick", item.Priority).Debug("Actor added to turn queue")
	return nil
}

// Remove убирает актора из очереди (например, при смерти).
func (s *Scheduler) Remove(a domain.Schedulable) error {
	item, ok := s.items[a]
	if !ok {
		return fmt.Errorf("remove from turn queue: %w", ErrNotScheduled)
	}
	heap.Remove(&s.queue, item.Index)
	delete(s.items, a)

	s.log.WithField("tick", item.Priority).Debug("Actor removed from turn queue")
	return nil
}

// Next снимает с очереди актора, чей ход ближе всего, и переводит часы на его тик.
// Чтобы актор сходил снова, его нужно добавить повторно.
func (s *Scheduler) Next() (domain.Schedulable, bool) {
	if s.queue.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&s.queue).(*TurnItem)
	delete(s.items, item.Value)
	s.time = item.Priority
	return item.Value, true
}

// Peek возвращает следующего актора и его тик, не снимая с очереди.
func (s *Scheduler) Peek() (domain.Schedulable, int, bool) {
	if s.queue.Len() == 0 {
		return nil, 0, false
	}
	return s.queue[0].Value, s.queue[0].Priority, true
}

// Contains - стоит ли актор в очереди
func (s *Scheduler) Contains(a domain.Schedulable) bool {
	_, ok := s.items[a]
	return ok
}

// Time - текущий тик (тик последнего выданного хода)
func (s *Scheduler) Time() int { return s.time }

func (s *Scheduler) Len() int { return s.queue.Len() }

// Clear очищает очередь и сбрасывает часы
func (s *Scheduler) Clear() {
	s.queue = s.queue[:0]
	s.items = make(map[domain.Schedulable]*TurnItem)
	s.time = 0
}

// Entry - строка снимка очереди
type Entry struct {
	Actor domain.Schedulable
	Tick  int
}

// Snapshot возвращает очередь в порядке ходов (для отладки).
func (s *Scheduler) Snapshot() []Entry {
	items := make([]*TurnItem, len(s.queue))
	copy(items, s.queue)
	sort.Slice(items, func(i, j int) bool {
		return TurnQueue(items).Less(i, j)
	})

	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]Entry, 0, len(items))
	for _, item := range items {
		result = append(result, Entry{Actor: item.Value, Tick: item.Priority})
	}
	return result
}
