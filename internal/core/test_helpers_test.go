package core

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	logger := zerolog.Nop()
	hub := NewHub(&logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub
}

// register connects a client and drains the rooms::list greeting.
func register(t *testing.T, hub *Hub, id string) *Client {
	t.Helper()

	c := NewClient(id, 32)
	hub.Register(c)
	mustEvent(t, c.Events, EventRoomsList)
	return c
}

func createRoom(t *testing.T, hub *Hub, c *Client, room, owner string) {
	t.Helper()

	hub.Submit(&Command{Kind: CommandCreateRoom, Client: c, Room: room, User: owner})
	mustEvent(t, c.Events, EventRoomCreate)
}

func joinRoom(t *testing.T, hub *Hub, c *Client, room, player string) *Event {
	t.Helper()

	hub.Submit(&Command{Kind: CommandJoinRoom, Client: c, Room: room, User: player})
	return mustEvent(t, c.Events, EventRoomJoin)
}

// mustEvent reads events until one of the wanted kind arrives, discarding
// everything else.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// mustNextEvent reads the next event and fails unless it has the wanted
// kind. Used where ordering matters.
func mustNextEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	select {
	case ev := <-ch:
		if ev == nil || ev.Kind != kind {
			t.Fatalf("expected event kind %v, got %+v", kind, ev)
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("expected event kind %v not received", kind)
	}
	return nil
}

// listRooms is a synchronization point: it round-trips through the hub, so
// every previously submitted command has been processed when it returns.
func listRooms(t *testing.T, hub *Hub) []RoomListing {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	listings, err := hub.Rooms(ctx)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	return listings
}

func drainEmpty(t *testing.T, hub *Hub, ch <-chan *Event) {
	t.Helper()

	listRooms(t, hub)
	select {
	case ev := <-ch:
		t.Fatalf("expected no event, got %+v", ev)
	default:
	}
}
