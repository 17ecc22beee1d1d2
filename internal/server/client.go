package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"rpg-world/internal/engine"
	"rpg-world/internal/network"
	"rpg-world/pkg/api"
	"rpg-world/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и инстансом игры
type Client struct {
	ID       string
	Instance *engine.Instance
	Hub      *network.Broadcaster
	Conn     *websocket.Conn
	Send     chan api.ServerResponse

	// done закрывает writePump при выходе: дальше кадры писать некому
	done chan struct{}
	log  *logrus.Entry
}

func NewClient(instance *engine.Instance, hub *network.Broadcaster, conn *websocket.Conn) *Client {
	id := uuid.NewString()
	return &Client{
		ID:       id,
		Instance: instance,
		Hub:      hub,
		Conn:     conn,
		Send:     make(chan api.ServerResponse, 256),
		done:     make(chan struct{}),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "server",
			"client_id": id,
		}),
	}
}

// readPump подписывает клиента на кадры и читает его команды
func (c *Client) readPump() {
	gameUpdates := c.Hub.Register(c.ID)

	defer func() {
		c.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	go c.forward(gameUpdates)

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.log.Info("Client connected")

	// Первый кадр - текущее состояние
	c.Hub.SendTo(c.ID, c.Instance.Snapshot().Frame)

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			return
		}

		if err := c.Instance.Submit(cmd); err != nil {
			c.log.WithError(err).WithField("action", cmd.Action).Debug("Command rejected")
			c.Hub.SendTo(c.ID, api.ServerResponse{Type: api.TypeError, Error: err.Error()})
		}
	}
}

// forward пересылает кадры из хаба в writePump. Канал хаба закроется при
// Unregister; если writePump уже вышел, пересылка останавливается сразу.
func (c *Client) forward(updates <-chan api.ServerResponse) {
	defer close(c.Send)
	for msg := range updates {
		select {
		case c.Send <- msg:
		case <-c.done:
			c.log.Debug("Writer stopped, frame forwarding ended")
			return
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		close(c.done)
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
