package websocket

import "sync"

// Room groups the connections that share an audience: one room per user,
// plus AdminRoomID for every connected admin.
type Room struct {
	ID      string
	Clients map[*Client]struct{}
	mu      sync.RWMutex
}

func NewRoom(id string) *Room {
	return &Room{ID: id, Clients: make(map[*Client]struct{})}
}

// AddUser: adds new client to the room
func (r *Room) AddUser(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Clients[c] = struct{}{}
}

// RemoveUser: removes client from the room
func (r *Room) RemoveUser(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Clients, c)
}

// GetUserCount: returns the number of clients in the room
func (r *Room) GetUserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Clients)
}

// GetClients: returns copy of clients list in the room
func (r *Room) GetClients() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]*Client, 0, len(r.Clients))
	for client := range r.Clients {
		clients = append(clients, client)
	}
	return clients
}
