package websocket

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const ( // ping pong(2-way heartbeat) to keep connection alive
	WriteWait      = 10 * time.Second    // max time write a message to the peer
	PongWait       = 60 * time.Second    // max time to wait for pong from peer => no pong = no connection
	PingPeriod     = (PongWait * 9) / 10 // send pings at 90% of pong wait to absorb network jitter
	MaxMessageSize = 512                 // maximum message size allowed from peer
	sendBuffer     = 32
)

// Client is one websocket connection of an authenticated user.
type Client struct {
	UserID      string
	IsAdmin     bool
	Conn        *websocket.Conn
	SendChannel chan []byte // outbound messages, closed by the hub
	Hub         *Hub
	logger      *zap.Logger
}

func NewClient(userID string, isAdmin bool, conn *websocket.Conn, hub *Hub, logger *zap.Logger) *Client {
	return &Client{
		UserID:      userID,
		IsAdmin:     isAdmin,
		Conn:        conn,
		SendChannel: make(chan []byte, sendBuffer),
		Hub:         hub,
		logger:      logger,
	}
}

func (c *Client) roomIDs() []string {
	if c.IsAdmin {
		return []string{c.UserID, AdminRoomID}
	}
	return []string{c.UserID}
}

// ReadPump drains the connection so control frames are processed, and
// unregisters the client when the peer goes away.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(MaxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(PongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read failed", zap.String("user_id", c.UserID), zap.Error(err))
			}
			return
		}
	}
}

// WritePump forwards queued messages and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.SendChannel:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if !ok {
				// hub closed the channel
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
