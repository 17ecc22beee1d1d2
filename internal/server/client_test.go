package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rpg-world/pkg/api"
	"rpg-world/pkg/logger"
)

func newDetachedClient(sendBuf int) *Client {
	return &Client{
		ID:   "test",
		Send: make(chan api.ServerResponse, sendBuf),
		done: make(chan struct{}),
		log:  logger.For("server"),
	}
}

func TestForward_StopsWhenWriterGone(t *testing.T) {
	c := newDetachedClient(1)
	c.Send <- api.ServerResponse{Tick: 1} // буфер писателя полон

	updates := make(chan api.ServerResponse, 1)
	updates <- api.ServerResponse{Tick: 2}

	finished := make(chan struct{})
	go func() {
		c.forward(updates)
		close(finished)
	}()

	// Писатель упал, канал хаба еще открыт
	close(c.done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("forwarder blocked on a full send buffer after the writer stopped")
	}

	first, ok := <-c.Send
	assert.True(t, ok)
	assert.Equal(t, 1, first.Tick)
	_, ok = <-c.Send
	assert.False(t, ok, "send channel is closed once forwarding ends")
}

func TestForward_ClosesSendWhenHubUnregisters(t *testing.T) {
	c := newDetachedClient(4)
	updates := make(chan api.ServerResponse, 2)
	updates <- api.ServerResponse{Tick: 10}
	close(updates)

	c.forward(updates)

	msg, ok := <-c.Send
	assert.True(t, ok)
	assert.Equal(t, 10, msg.Tick)
	_, ok = <-c.Send
	assert.False(t, ok)
}
