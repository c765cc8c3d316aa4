package session

import (
	"sync"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
)

// Room holds the presence set, the shared document snapshot and the
// connected channels for one collaboration session. Rooms only live in
// process memory; the snapshot is discarded when the last member leaves.
type Room struct {
	ID string

	mu         sync.Mutex
	clients    map[*Client]struct{}
	members    map[string]struct{}
	sharedText string
}

func NewRoom(id string) *Room {
	return &Room{
		ID:      id,
		clients: make(map[*Client]struct{}),
		members: make(map[string]struct{}),
	}
}

func (r *Room) Subscribe(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = struct{}{}
}

func (r *Room) Unsubscribe(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
}

// addMember inserts a display name. Two connections joining with the
// same name collapse into one presence entry.
func (r *Room) addMember(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[name] = struct{}{}
}

// removeMember drops a display name and reports how many remain.
func (r *Room) removeMember(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, name)
	return len(r.members)
}

// Members returns the presence list as an unordered snapshot.
func (r *Room) Members() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.members))
	for name := range r.members {
		out = append(out, name)
	}
	return out
}

func (r *Room) SetSharedText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sharedText = text
}

func (r *Room) SharedText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sharedText
}

// Broadcast sends a frame to every client except the sender.
func (r *Room) Broadcast(sender *Client, frame models.WSFrame) {
	for _, c := range r.snapshotClients() {
		if c == sender {
			continue
		}
		c.Send(frame)
	}
}

// BroadcastAll sends a frame to every client including the sender.
func (r *Room) BroadcastAll(frame models.WSFrame) {
	for _, c := range r.snapshotClients() {
		c.Send(frame)
	}
}

func (r *Room) snapshotClients() []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		out = append(out, c)
	}
	return out
}
