package websocket

import (
	"encoding/json"
	"time"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
)

// Message protocol definitions

type MessageType string

const (
	TypeReady       MessageType = "ready"        // sent once the connection is subscribed
	TypeOrderStatus MessageType = "order.status" // an order was placed or changed status
)

// Message is pushed from server to client; clients never send them.
type Message struct {
	Type      MessageType        `json:"type"`
	Order     *dto.OrderResponse `json:"order,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

func NewOrderMessage(order *models.Order) *Message {
	resp := dto.FromModelToOrderResponse(order)
	// owners already know their own contact details; admins get them from the REST API
	resp.User = nil
	return &Message{
		Type:      TypeOrderStatus,
		Order:     &resp,
		Timestamp: time.Now().UTC(),
	}
}

func NewReadyMessage() *Message {
	return &Message{Type: TypeReady, Timestamp: time.Now().UTC()}
}

// ToJSON: marshal Message struct to JSON
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
