package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpg-world/pkg/api"
)

func TestBroadcaster_RegisterAndBroadcast(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")

	b.Broadcast(api.ServerResponse{Type: api.TypeFrame, Tick: 7})

	require.Len(t, a, 1)
	require.Len(t, c, 1)
	assert.Equal(t, 7, (<-a).Tick)
	assert.Equal(t, 2, b.SubscriberCount())
}

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")

	b.SendTo("c", api.ServerResponse{Type: api.TypeError, Error: "nope"})
	b.SendTo("missing", api.ServerResponse{})

	assert.Len(t, a, 0)
	require.Len(t, c, 1)
	assert.Equal(t, "nope", (<-c).Error)
}

func TestBroadcaster_ReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("a")
	fresh := b.Register("a")

	_, open := <-old
	assert.False(t, open)
	assert.Equal(t, 1, b.SubscriberCount())

	b.Unregister("a")
	_, open = <-fresh
	assert.False(t, open)
	assert.False(t, b.HasSubscriber("a"))
}

func TestBroadcaster_SlowClientDropsFrames(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")

	for i := 0; i < cap(ch)+10; i++ {
		b.Broadcast(api.ServerResponse{Tick: i})
	}

	assert.Len(t, ch, cap(ch))
	assert.Equal(t, 0, (<-ch).Tick)
}
