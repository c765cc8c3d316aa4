package session

import "sync"

// Hub is the process-wide room registry. Membership mutations go
// through the hub so that GetOrCreate and the room teardown inside
// RemoveMember are serialized: a disconnect emptying a room and a new
// join racing on the same id can never observe two Room objects.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewHub() *Hub { return &Hub{rooms: make(map[string]*Room)} }

// Join creates the room if needed, subscribes the channel and records
// the display name in one critical section. Holding the hub mutex
// across all three keeps a concurrent last-member teardown from
// deleting the room between creation and membership.
func (h *Hub) Join(roomID, name string, c *Client) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rooms[roomID]
	if !ok {
		r = NewRoom(roomID)
		h.rooms[roomID] = r
	}
	r.Subscribe(c)
	r.addMember(name)
	return r
}

func (h *Hub) GetOrCreate(id string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[id]; ok {
		return r
	}
	r := NewRoom(id)
	h.rooms[id] = r
	return r
}

func (h *Hub) Get(id string) (*Room, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rooms[id]
	return r, ok
}

// AddMember adds a display name to a room's presence set. No-op when
// the room does not exist.
func (h *Hub) AddMember(roomID, name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[roomID]; ok {
		r.addMember(name)
	}
}

// RemoveMember drops a display name and deletes the room when its
// member set empties. Returns the surviving room, or nil when the room
// was deleted or never existed. Safe to call after teardown.
func (h *Hub) RemoveMember(roomID, name string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rooms[roomID]
	if !ok {
		return nil
	}
	if r.removeMember(name) == 0 {
		delete(h.rooms, roomID)
		return nil
	}
	return r
}

// SetSharedText overwrites a room's document snapshot wholesale.
// Last writer wins; there is no merge. No-op on an absent room.
func (h *Hub) SetSharedText(roomID, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[roomID]; ok {
		r.SetSharedText(text)
	}
}

func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}
