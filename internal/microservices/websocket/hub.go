package websocket

import (
	"context"

	"kushfilms/internal/metrics"
	"kushfilms/internal/microservices/http-api/models"

	"go.uber.org/zap"
)

// Central hub managing all connections and rooms.
// Each connection runs its own read and write goroutines, but room
// membership is only touched from Run.

const AdminRoomID = "admins"

type delivery struct {
	roomIDs []string
	payload []byte
}

type Hub struct {
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan delivery
	done       chan struct{}
	rooms      map[string]*Room
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan delivery, 256),
		done:       make(chan struct{}),
		rooms:      make(map[string]*Room),
		logger:     logger,
	}
}

// Run serves registrations and deliveries until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.Register:
			h.join(client)
		case client := <-h.Unregister:
			h.leave(client)
		case d := <-h.broadcast:
			h.deliver(d)
		case <-ctx.Done():
			for _, room := range h.rooms {
				for _, client := range room.GetClients() {
					h.leave(client)
				}
			}
			return
		}
	}
}

// NotifyOrder pushes the order to its owner and to every admin.
func (h *Hub) NotifyOrder(order *models.Order) {
	payload, err := NewOrderMessage(order).ToJSON()
	if err != nil {
		h.logger.Error("marshal order message failed", zap.String("order_id", order.ID), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- delivery{roomIDs: []string{order.UserID, AdminRoomID}, payload: payload}:
	default:
		h.logger.Warn("order event dropped, hub is backed up", zap.String("order_id", order.ID))
	}
}

// register hands c to the hub, reporting false once the hub has stopped.
func (h *Hub) register(c *Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregister(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) join(c *Client) {
	for _, id := range c.roomIDs() {
		room, ok := h.rooms[id]
		if !ok {
			room = NewRoom(id)
			h.rooms[id] = room
		}
		room.AddUser(c)
	}
	if ready, err := NewReadyMessage().ToJSON(); err == nil {
		c.SendChannel <- ready
	}
	metrics.WebSocketConnections.Inc()
	h.logger.Debug("websocket client joined", zap.String("user_id", c.UserID), zap.Bool("admin", c.IsAdmin))
}

func (h *Hub) leave(c *Client) {
	present := false
	for _, id := range c.roomIDs() {
		room, ok := h.rooms[id]
		if !ok {
			continue
		}
		if _, in := room.Clients[c]; in {
			present = true
		}
		room.RemoveUser(c)
		if room.GetUserCount() == 0 {
			delete(h.rooms, id)
		}
	}
	if !present {
		return
	}
	close(c.SendChannel)
	metrics.WebSocketConnections.Dec()
	h.logger.Debug("websocket client left", zap.String("user_id", c.UserID))
}

func (h *Hub) deliver(d delivery) {
	// an admin who owns the order sits in both rooms and gets one copy
	seen := make(map[*Client]struct{})
	for _, id := range d.roomIDs {
		room, ok := h.rooms[id]
		if !ok {
			continue
		}
		for _, client := range room.GetClients() {
			if _, dup := seen[client]; dup {
				continue
			}
			seen[client] = struct{}{}
			select {
			case client.SendChannel <- d.payload:
			default:
				// slow consumer
				h.leave(client)
			}
		}
	}
}
