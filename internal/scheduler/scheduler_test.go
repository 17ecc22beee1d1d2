package scheduler

import (
	"container/heap"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpg-world/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type actor struct {
	name  string
	speed int
}

func (a *actor) Time() int { return a.speed }

func TestTurnQueue(t *testing.T) {
	pq := make(TurnQueue, 0)
	heap.Init(&pq)

	heap.Push(&pq, &TurnItem{Value: &actor{name: "e1"}, Priority: 10, seq: 1})
	heap.Push(&pq, &TurnItem{Value: &actor{name: "e2"}, Priority: 5, seq: 2})
	heap.Push(&pq, &TurnItem{Value: &actor{name: "e3"}, Priority: 10, seq: 3})

	require.Equal(t, 3, pq.Len())

	// First pop should be e2 (Tick 5), then e1 and e3 in insertion order
	want := []string{"e2", "e1", "e3"}
	for _, name := range want {
		item := heap.Pop(&pq).(*TurnItem)
		assert.Equal(t, name, item.Value.(*actor).name)
		assert.Equal(t, -1, item.Index)
	}
}

func TestScheduler_OrderByTime(t *testing.T) {
	s := New()
	fast := &actor{name: "fast", speed: 5}
	slow := &actor{name: "slow", speed: 12}

	require.NoError(t, s.Add(slow))
	require.NoError(t, s.Add(fast))

	// fast ходит в 5, 10, 15..., slow в 12, 24...
	var order []string
	for i := 0; i < 4; i++ {
		next, ok := s.Next()
		require.True(t, ok)
		a := next.(*actor)
		order = append(order, a.name)
		require.NoError(t, s.Add(a))
	}

	assert.Equal(t, []string{"fast", "fast", "slow", "fast"}, order)
	assert.Equal(t, 15, s.Time())
}

func TestScheduler_AddTwiceFails(t *testing.T) {
	s := New()
	a := &actor{speed: 1}

	require.NoError(t, s.Add(a))
	err := s.Add(a)
	assert.ErrorIs(t, err, ErrAlreadyScheduled)
	assert.Equal(t, 1, s.Len())
}

func TestScheduler_Remove(t *testing.T) {
	s := New()
	a := &actor{name: "a", speed: 1}
	b := &actor{name: "b", speed: 2}
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	require.NoError(t, s.Remove(a))
	assert.False(t, s.Contains(a))
	assert.ErrorIs(t, s.Remove(a), ErrNotScheduled)

	next, tick, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, b, next)
	assert.Equal(t, 2, tick)
}

func TestScheduler_NextOnEmpty(t *testing.T) {
	s := New()
	_, ok := s.Next()
	assert.False(t, ok)

	_, _, ok = s.Peek()
	assert.False(t, ok)
}

func TestScheduler_SnapshotAndClear(t *testing.T) {
	s := New()
	a := &actor{name: "a", speed: 7}
	b := &actor{name: "b", speed: 3}
	c := &actor{name: "c", speed: 7}
	for _, x := range []*actor{a, b, c} {
		require.NoError(t, s.Add(x))
	}

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Same(t, b, snap[0].Actor)
	assert.Same(t, a, snap[1].Actor)
	assert.Same(t, c, snap[2].Actor)
	assert.Equal(t, 7, snap[2].Tick)

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Snapshot())
	assert.False(t, s.Contains(a))
}
