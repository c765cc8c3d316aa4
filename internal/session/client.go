package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
)

// Client is one live channel. RoomID and Username are bound once at
// join time and never change for the lifetime of the connection.
type Client struct {
	ID       string
	Conn     *websocket.Conn
	RoomID   string
	Username string

	mu   sync.Mutex
	hook func(models.WSFrame)
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{ID: uuid.New().String(), Conn: conn}
}

// Bind records the room and display name for this connection. Must be
// called exactly once, before the client is added to a room.
func (c *Client) Bind(roomID, username string) {
	c.RoomID = roomID
	c.Username = username
}

func (c *Client) Joined() bool { return c.RoomID != "" }

// SetSendHook replaces the default WebSocket sender (used in tests).
func (c *Client) SetSendHook(fn func(models.WSFrame)) {
	c.mu.Lock()
	c.hook = fn
	c.mu.Unlock()
}

func (c *Client) Send(frame models.WSFrame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook != nil {
		c.hook(frame)
		return
	}
	if c.Conn == nil {
		return
	}
	_ = c.Conn.WriteJSON(frame)
}
