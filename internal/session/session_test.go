package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
)

type frameCapture struct {
	mu     sync.Mutex
	frames []models.WSFrame
}

func newFrameCapture() *frameCapture { return &frameCapture{} }

func (c *frameCapture) hook(frame models.WSFrame) {
	c.mu.Lock()
	c.frames = append(c.frames, frame)
	c.mu.Unlock()
}

func (c *frameCapture) list() []models.WSFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.WSFrame, len(c.frames))
	copy(out, c.frames)
	return out
}

func TestClientSendWithHook(t *testing.T) {
	client := NewClient(nil)
	capture := newFrameCapture()
	client.SetSendHook(capture.hook)

	client.Send(models.WSFrame{Type: "ping"})

	got := capture.list()
	if len(got) != 1 || got[0].Type != "ping" {
		t.Fatalf("expected frame captured, got %#v", got)
	}
}

func TestClientSendWithoutConnDoesNotPanic(t *testing.T) {
	client := NewClient(nil)
	client.Send(models.WSFrame{Type: "noop"})
}

func TestClientSendWritesToConn(t *testing.T) {
	upgrader := websocket.Upgrader{}
	received := make(chan models.WSFrame, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		var frame models.WSFrame
		if err := conn.ReadJSON(&frame); err == nil {
			received <- frame
		}
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	defer conn.Close()

	client := NewClient(conn)
	client.Send(models.WSFrame{Type: "ping"})

	select {
	case frame := <-received:
		if frame.Type != "ping" {
			t.Fatalf("unexpected frame: %#v", frame)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected frame to be received")
	}
}

func TestClientIDsAreUnique(t *testing.T) {
	a, b := NewClient(nil), NewClient(nil)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct channel ids, got %q and %q", a.ID, b.ID)
	}
}

func TestHubGetOrCreateReturnsSameRoom(t *testing.T) {
	hub := NewHub()
	roomA := hub.GetOrCreate("a")
	roomB := hub.GetOrCreate("a")
	if roomA != roomB {
		t.Fatalf("expected same room instance")
	}
	if _, ok := hub.Get("missing"); ok {
		t.Fatalf("expected missing room")
	}
}

func TestHubGetOrCreateConcurrent(t *testing.T) {
	hub := NewHub()

	const n = 16
	roomsCh := make(chan *Room, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			roomsCh <- hub.GetOrCreate("shared")
		}()
	}
	wg.Wait()
	close(roomsCh)

	first := <-roomsCh
	for r := range roomsCh {
		if r != first {
			t.Fatalf("concurrent joins created more than one room object")
		}
	}
	if hub.RoomCount() != 1 {
		t.Fatalf("expected exactly one room, got %d", hub.RoomCount())
	}
}

func TestHubJoinSubscribesAndRecordsMember(t *testing.T) {
	hub := NewHub()
	c := NewClient(nil)
	capture := newFrameCapture()
	c.SetSendHook(capture.hook)

	room := hub.Join("r", "alice", c)

	if got, ok := hub.Get("r"); !ok || got != room {
		t.Fatalf("expected registry to track the joined room")
	}
	if members := room.Members(); len(members) != 1 || members[0] != "alice" {
		t.Fatalf("expected alice as sole member, got %v", members)
	}
	room.BroadcastAll(models.WSFrame{Type: "ping"})
	if len(capture.list()) != 1 {
		t.Fatalf("joined channel must be subscribed for fan-out")
	}
}

func TestHubJoinSerializedWithTeardown(t *testing.T) {
	// A join racing the last member's leave must never land on a room
	// the registry has already dropped.
	for i := 0; i < 200; i++ {
		hub := NewHub()
		hub.Join("r1", "solo", NewClient(nil))

		joiner := NewClient(nil)
		var joined *Room
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.RemoveMember("r1", "solo")
		}()
		go func() {
			defer wg.Done()
			joined = hub.Join("r1", "bob", joiner)
		}()
		wg.Wait()

		current, ok := hub.Get("r1")
		if !ok {
			t.Fatalf("registry lost room r1 although bob joined it")
		}
		if current != joined {
			t.Fatalf("joiner is subscribed to a room the registry no longer tracks")
		}

		found := false
		for _, name := range joined.Members() {
			if name == "bob" {
				found = true
			}
		}
		if !found {
			t.Fatalf("joiner missing from the surviving member set: %v", joined.Members())
		}
	}
}

func TestHubMembershipLifecycle(t *testing.T) {
	hub := NewHub()
	hub.GetOrCreate("r")
	hub.AddMember("r", "alice")
	hub.AddMember("r", "bob")

	room, ok := hub.Get("r")
	if !ok {
		t.Fatalf("expected room to exist")
	}
	if got := room.Members(); len(got) != 2 {
		t.Fatalf("expected 2 members, got %v", got)
	}

	if survivor := hub.RemoveMember("r", "alice"); survivor == nil {
		t.Fatalf("expected room to survive with one member left")
	}
	if survivor := hub.RemoveMember("r", "bob"); survivor != nil {
		t.Fatalf("expected room deleted when last member left")
	}
	if _, ok := hub.Get("r"); ok {
		t.Fatalf("expected room gone after last member left")
	}
}

func TestHubRemoveMemberAbsentRoomIsNoop(t *testing.T) {
	hub := NewHub()
	if survivor := hub.RemoveMember("ghost", "alice"); survivor != nil {
		t.Fatalf("expected nil for absent room")
	}
	hub.AddMember("ghost", "alice")
	hub.SetSharedText("ghost", "text")
	if hub.RoomCount() != 0 {
		t.Fatalf("mutations on absent rooms must not create them")
	}
}

func TestDuplicateNamesCollapse(t *testing.T) {
	hub := NewHub()
	hub.GetOrCreate("r")
	hub.AddMember("r", "alice")
	hub.AddMember("r", "alice")

	room, _ := hub.Get("r")
	if got := room.Members(); len(got) != 1 || got[0] != "alice" {
		t.Fatalf("expected duplicates to collapse, got %v", got)
	}
}

func TestSharedTextLostOnRoomTeardown(t *testing.T) {
	hub := NewHub()
	hub.GetOrCreate("r2")
	hub.AddMember("r2", "alice")
	hub.SetSharedText("r2", "X")

	room, _ := hub.Get("r2")
	if room.SharedText() != "X" {
		t.Fatalf("expected snapshot to hold the last write")
	}

	hub.RemoveMember("r2", "alice")

	recreated := hub.GetOrCreate("r2")
	if recreated.SharedText() != "" {
		t.Fatalf("recreated room must start with an empty document, got %q", recreated.SharedText())
	}
}

func TestSharedTextLastWriteWins(t *testing.T) {
	room := NewRoom("r")
	room.SetSharedText("A")
	room.SetSharedText("B")
	if got := room.SharedText(); got != "B" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestRoomBroadcastSkipsSender(t *testing.T) {
	room := NewRoom("r")
	frame := models.WSFrame{Type: "text-edit", Data: "hello"}

	c1 := NewClient(nil)
	cap1 := newFrameCapture()
	c1.SetSendHook(cap1.hook)
	c2 := NewClient(nil)
	cap2 := newFrameCapture()
	c2.SetSendHook(cap2.hook)
	sender := NewClient(nil)
	sender.SetSendHook(func(models.WSFrame) { t.Error("sender should not receive broadcast") })

	room.Subscribe(c1)
	room.Subscribe(c2)
	room.Subscribe(sender)

	room.Broadcast(sender, frame)

	if got := cap1.list(); len(got) != 1 || got[0].Type != "text-edit" {
		t.Fatalf("client1 missing frame: %#v", got)
	}
	if got := cap2.list(); len(got) != 1 || got[0].Type != "text-edit" {
		t.Fatalf("client2 missing frame: %#v", got)
	}
}

func TestRoomBroadcastAll(t *testing.T) {
	room := NewRoom("r")

	c1 := NewClient(nil)
	cap1 := newFrameCapture()
	c1.SetSendHook(cap1.hook)
	c2 := NewClient(nil)
	cap2 := newFrameCapture()
	c2.SetSendHook(cap2.hook)

	room.Subscribe(c1)
	room.Subscribe(c2)

	room.BroadcastAll(models.WSFrame{Type: "room-users"})

	if len(cap1.list()) != 1 || len(cap2.list()) != 1 {
		t.Fatalf("expected broadcast to all clients")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	room := NewRoom("r")
	c := NewClient(nil)
	capture := newFrameCapture()
	c.SetSendHook(capture.hook)

	room.Subscribe(c)
	room.Unsubscribe(c)
	room.BroadcastAll(models.WSFrame{Type: "ping"})

	if len(capture.list()) != 0 {
		t.Fatalf("expected no frames after unsubscribe")
	}
}
