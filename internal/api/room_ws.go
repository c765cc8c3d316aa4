package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vijay-kumar-79/ZCoder/internal/history"
	"github.com/vijay-kumar-79/ZCoder/internal/models"
	"github.com/vijay-kumar-79/ZCoder/internal/session"
)

// MessageStore is the durable chat gateway consumed by the room
// protocol. history.Store satisfies it; tests substitute fakes.
type MessageStore interface {
	Append(ctx context.Context, roomID, username, message string) (models.ChatMessage, error)
	Recent(ctx context.Context, roomID string, limit int) ([]models.ChatMessage, error)
}

// Handlers drives the room session protocol over the websocket channel.
type Handlers struct {
	log      *zap.Logger
	hub      *session.Hub
	messages MessageStore
}

func NewHandlers(log *zap.Logger, hub *session.Hub, messages MessageStore) *Handlers {
	return &Handlers{log: log, hub: hub, messages: messages}
}

func (h *Handlers) Hub() *session.Hub { return h.hub }

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// RoomWS upgrades the connection and runs the per-channel event loop.
// The first frame must be "join-room"; chat and edit frames follow
// until the channel closes, which triggers membership cleanup.
func (h *Handlers) RoomWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client := session.NewClient(conn)
	h.ServeClient(r.Context(), client, func(frame *models.WSFrame) error {
		return conn.ReadJSON(frame)
	})
}

// ServeClient runs the protocol against an abstract frame source so the
// loop is testable without a live socket.
func (h *Handlers) ServeClient(ctx context.Context, client *session.Client, read func(*models.WSFrame) error) {
	defer h.disconnect(client)

	var frame models.WSFrame
	if err := read(&frame); err != nil {
		return
	}
	if frame.Type != "join-room" {
		client.Send(errFrame("expected join-room"))
		return
	}
	var join models.JoinRequest
	decode(frame.Data, &join)
	if join.Username == "" || join.RoomID == "" {
		client.Send(errFrame("username and roomId required"))
		return
	}

	h.join(ctx, client, join)

	for {
		var frame models.WSFrame
		if err := read(&frame); err != nil {
			return
		}

		switch frame.Type {
		case "send-msg":
			var msg models.ChatSend
			decode(frame.Data, &msg)
			h.sendChat(ctx, client, msg)

		case "text-edit":
			var edit models.TextEdit
			decode(frame.Data, &edit)
			h.editText(client, edit)

		default:
			client.Send(errFrame("unknown_type"))
		}
	}
}

// join performs the Disconnected -> Joined transition. The init payload
// reflects membership after the joiner's own addition. Creation,
// subscription and membership happen in one hub critical section so a
// concurrent last-member teardown cannot leave the joiner on a room
// the registry already dropped.
func (h *Handlers) join(ctx context.Context, client *session.Client, req models.JoinRequest) {
	client.Bind(req.RoomID, req.Username)
	room := h.hub.Join(req.RoomID, req.Username, client)

	previous, err := h.messages.Recent(ctx, req.RoomID, history.DefaultHistoryLimit)
	if err != nil {
		// Degrade to an empty history rather than failing the join.
		h.log.Warn("history fetch failed",
			zap.String("roomId", req.RoomID), zap.Error(err))
		previous = nil
	}
	if previous == nil {
		previous = []models.ChatMessage{}
	}

	users := room.Members()
	client.Send(models.WSFrame{Type: "room-init", Data: models.RoomInit{
		Users:            users,
		SharedText:       room.SharedText(),
		PreviousMessages: previous,
	}})

	room.Broadcast(client, models.WSFrame{Type: "user-joined", Data: req.Username})
	room.BroadcastAll(models.WSFrame{Type: "room-users", Data: users})
}

// sendChat persists first, then fans out. A persistence failure aborts
// the broadcast and surfaces an error frame to the sender. The room and
// identity come from the connection's bind, never the payload: a frame
// addressed to a room this connection is not joined to is a no-op.
func (h *Handlers) sendChat(ctx context.Context, client *session.Client, msg models.ChatSend) {
	if msg.RoomID != client.RoomID {
		return
	}
	room, ok := h.hub.Get(client.RoomID)
	if !ok {
		return
	}

	stored, err := h.messages.Append(ctx, client.RoomID, client.Username, msg.Message)
	if err != nil {
		h.log.Error("message persistence failed",
			zap.String("roomId", client.RoomID),
			zap.String("username", client.Username),
			zap.Error(err))
		client.Send(errFrame("message_not_delivered"))
		return
	}

	room.BroadcastAll(models.WSFrame{Type: "recieve-msg", Data: models.ChatBroadcast{
		Username:  stored.Username,
		Message:   stored.Message,
		Timestamp: stored.Timestamp,
	}})
}

// editText overwrites the room snapshot and rebroadcasts the text
// verbatim to everyone except the sender. Last writer wins. Like chat,
// only the connection's bound room may be edited.
func (h *Handlers) editText(client *session.Client, edit models.TextEdit) {
	if edit.RoomID != client.RoomID {
		return
	}
	room, ok := h.hub.Get(client.RoomID)
	if !ok {
		return
	}
	h.hub.SetSharedText(client.RoomID, edit.Text)
	room.Broadcast(client, models.WSFrame{Type: "text-edit", Data: edit.Text})
}

// disconnect resolves membership cleanup. Safe no-op when the channel
// never completed a join or the room was already torn down.
func (h *Handlers) disconnect(client *session.Client) {
	if !client.Joined() {
		return
	}
	if room, ok := h.hub.Get(client.RoomID); ok {
		room.Unsubscribe(client)
	}

	room := h.hub.RemoveMember(client.RoomID, client.Username)
	if room == nil {
		return
	}
	room.Broadcast(client, models.WSFrame{Type: "user-left", Data: client.Username})
	room.Broadcast(client, models.WSFrame{Type: "room-users", Data: room.Members()})
}

func decode(in any, out any) { b, _ := json.Marshal(in); _ = json.Unmarshal(b, out) }

func errFrame(msg string) models.WSFrame { return models.WSFrame{Type: "error", Data: msg} }
