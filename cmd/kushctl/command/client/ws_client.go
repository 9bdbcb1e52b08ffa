package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
)

// ws_client.go streams order events from /api/orders/events.

// ErrUnauthorized means the stored token was rejected.
var ErrUnauthorized = errors.New("token rejected by the server, run \"kushctl login\" again")

type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"userId"`
	Status string      `json:"status"`
	Total  string      `json:"total"`
	Items  []OrderItem `json:"items"`
}

type Event struct {
	Type      string    `json:"type"`
	Order     *Order    `json:"order,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventsURL converts the API base URL into the websocket endpoint.
func EventsURL(apiURL string) (string, error) {
	u, err := url.Parse(strings.TrimRight(apiURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported API URL scheme %q", u.Scheme)
	}
	u.Path += "/api/orders/events"
	return u.String(), nil
}

// WatchOrders calls onEvent for every message until ctx is cancelled or the server closes the stream.
func WatchOrders(ctx context.Context, apiURL, token string, onEvent func(Event)) error {
	endpoint, err := EventsURL(apiURL)
	if err != nil {
		return err
	}

	// Connect with auth header
	header := http.Header{}
	header.Add("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// unblock ReadJSON on cancel
	go func() {
		<-ctx.Done()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		conn.Close()
	}()

	for {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}
		onEvent(event)
	}
}

func PrintEvent(event Event) {
	switch event.Type {
	case "ready":
		color.Green("Listening for order updates...")
	case "order.status":
		if event.Order == nil {
			return
		}
		o := event.Order
		statusColor := color.New(color.FgYellow)
		switch o.Status {
		case "DELIVERED":
			statusColor = color.New(color.FgGreen)
		case "CANCELLED":
			statusColor = color.New(color.FgRed)
		case "CONFIRMED":
			statusColor = color.New(color.FgCyan)
		}
		fmt.Printf("[%s] order %s ", event.Timestamp.Local().Format(time.TimeOnly), o.ID)
		statusColor.Printf("%s", o.Status)
		fmt.Printf("  total %s, %d item(s)\n", o.Total, len(o.Items))
	default:
		color.HiBlack("unknown event %q", event.Type)
	}
}
