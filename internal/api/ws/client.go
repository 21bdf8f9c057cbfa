package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection bound to a player identity within a room.
type Client struct {
	playerID string
	roomCode string
	conn     *websocket.Conn
	send     chan []byte

	mu     sync.Mutex
	closed bool
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	c.conn.Close()
}

// writePump drains the send channel onto the connection; all writes go
// through here so no two goroutines write the socket concurrently.
func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// enqueue drops the message if the client is gone or its buffer is full
// rather than blocking the room dispatch path on a slow consumer.
func (c *Client) enqueue(msg []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}
