// interfaces/websocket/serve.go
package websocket

import (
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pairchat/gofiber-dm-api/pkg/configs"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxFrameSize = 16 * 1024
)

// RegisterWebSocketRoutes mounts the realtime endpoint. The auth middleware
// runs before the upgrade, so every session carries a verified user id.
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub, cfg configs.RealtimeConfig, authMiddleware fiber.Handler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", authMiddleware, websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("user_id").(uuid.UUID)
		if !ok {
			conn.Close()
			return
		}
		hub.serve(conn, userID, cfg)
	}))
}

// serve owns one session for its whole lifetime: it starts the write pump
// and then blocks in the read loop until the connection dies.
func (h *Hub) serve(conn *websocket.Conn, userID uuid.UUID, cfg configs.RealtimeConfig) {
	client := &Client{
		ID:      uuid.New(),
		UserID:  userID,
		Conn:    conn,
		Send:    make(chan []byte, cfg.SendBuffer),
		limiter: rate.NewLimiter(rate.Limit(cfg.EventRate), cfg.EventBurst),
	}

	go client.writePump()
	client.readPump(h)
}

// readPump processes inbound frames serially. Events from one session are
// therefore handled in arrival order, which is what keeps per-sender message
// delivery ordered.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxFrameSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("session closed unexpectedly",
					zap.String("session_id", c.ID.String()), zap.Error(err))
			}
			return
		}

		if !c.limiter.Allow() {
			h.sendToClient(c, EventMessageError, map[string]interface{}{
				"code":    "RESOURCE_EXHAUSTED",
				"message": "too many events, slow down",
			})
			continue
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			h.log.Debug("malformed frame",
				zap.String("session_id", c.ID.String()), zap.Error(err))
			continue
		}
		h.dispatch(c, &env)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
