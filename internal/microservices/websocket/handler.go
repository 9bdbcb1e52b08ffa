package websocket

import (
	"net/http"
	"slices"

	"kushfilms/internal/microservices/http-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// HTTP upgrade handler to WebSocket connections

func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			// non-browser clients send no Origin
			return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
		},
	}
}

// WSHandler upgrades an authenticated request and subscribes it to order events.
func WSHandler(hub *Hub, allowedOrigins []string, logger *zap.Logger) gin.HandlerFunc {
	upgrader := newUpgrader(allowedOrigins)
	return func(c *gin.Context) {
		requester := middleware.Requester(c)
		if requester.UserID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// Upgrade writes its own error response
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Debug("websocket upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(requester.UserID, requester.IsAdmin(), conn, hub, logger)
		if !hub.register(client) {
			conn.Close()
			return
		}

		go client.WritePump()
		go client.ReadPump()
	}
}
