package core

import "testing"

func TestRoomAddRemovePlayer(t *testing.T) {
	owner := NewOwner("dave", NewClient("a", 1))
	room := NewRoom("alpha", owner, "")

	bob := NewPlayer("bob", NewClient("b", 1), nil)
	if !room.AddPlayer(bob) {
		t.Fatal("expected add to succeed")
	}
	if room.AddPlayer(NewPlayer("bob", NewClient("c", 1), nil)) {
		t.Fatal("expected duplicate name to be rejected")
	}
	if got, ok := room.FindPlayerByName("bob"); !ok || got != bob {
		t.Fatalf("lookup returned %v, %v", got, ok)
	}

	if !room.RemovePlayer(bob) {
		t.Fatal("expected remove to succeed")
	}
	if room.RemovePlayer(bob) {
		t.Fatal("expected second remove to fail")
	}
	if _, ok := room.FindPlayerByName("bob"); ok {
		t.Fatal("player still present after removal")
	}
}

func TestRoomOwnerNameNotReserved(t *testing.T) {
	owner := NewOwner("dave", NewClient("a", 1))
	room := NewRoom("alpha", owner, "")

	// A player may take the owner's display name; owner and players are
	// separate namespaces.
	if !room.AddPlayer(NewPlayer("dave", NewClient("b", 1), nil)) {
		t.Fatal("expected player named after the owner to be accepted")
	}
}

func TestRoomPlayersSortedByName(t *testing.T) {
	owner := NewOwner("dave", NewClient("a", 1))
	room := NewRoom("alpha", owner, "")
	for _, name := range []string{"zed", "amy", "mel"} {
		room.AddPlayer(NewPlayer(name, NewClient(name, 1), nil))
	}

	players := room.Players()
	want := []string{"amy", "mel", "zed"}
	for i, p := range players {
		if p.Name != want[i] {
			t.Fatalf("players out of order: got %v at %d", p.Name, i)
		}
	}
}

func TestRoomIsPublic(t *testing.T) {
	owner := NewOwner("dave", NewClient("a", 1))
	if !NewRoom("open", owner, "").IsPublic() {
		t.Fatal("room without password should be public")
	}
	if NewRoom("closed", owner, "hunter2").IsPublic() {
		t.Fatal("room with password should not be public")
	}
}

func TestRoomSnapshot(t *testing.T) {
	ownerClient := NewClient("a", 1)
	owner := NewOwner("dave", ownerClient)
	room := NewRoom("alpha", owner, "")
	character := NewCharacter(CharacterInput{Name: "Bob-R-BOB-1", Rank: "R", Sector: "BOB", CloneNumber: 1})
	room.AddPlayer(NewPlayer("bob", NewClient("b", 1), character))

	snap := room.Snapshot()
	if snap.Name != "alpha" {
		t.Fatalf("unexpected name %q", snap.Name)
	}
	if snap.Owner.Name != "dave" || !snap.Owner.IsOwner || snap.Owner.Character != nil {
		t.Fatalf("unexpected owner view: %+v", snap.Owner)
	}
	if len(snap.Players) != 1 {
		t.Fatalf("unexpected players: %+v", snap.Players)
	}
	player := snap.Players[0]
	if player.Name != "bob" || player.IsOwner {
		t.Fatalf("unexpected player view: %+v", player)
	}
	if player.Character == nil || player.Character.Rank != "R" || player.Character.Sector != "BOB" {
		t.Fatalf("unexpected character view: %+v", player.Character)
	}
}

func TestRoomBroadcast(t *testing.T) {
	owner := NewOwner("dave", NewClient("a", 4))
	room := NewRoom("alpha", owner, "")
	a := NewClient("a", 4)
	b := NewClient("b", 4)
	room.Join(a)
	room.Join(b)

	room.Broadcast(&Event{Kind: EventRoomMessage, Body: "hi"})
	for _, c := range []*Client{a, b} {
		select {
		case ev := <-c.Events:
			if ev.Body != "hi" {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			t.Fatal("missing broadcast event")
		}
	}

	room.BroadcastExcept(&Event{Kind: EventRoomMessage, Body: "psst"}, a)
	select {
	case ev := <-a.Events:
		t.Fatalf("excluded client received %+v", ev)
	default:
	}
	if ev := <-b.Events; ev.Body != "psst" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestRegistryCreateConflict(t *testing.T) {
	reg := NewRegistry()
	owner := NewOwner("dave", NewClient("a", 1))

	room, ok := reg.Create("alpha", owner, "")
	if !ok || room == nil {
		t.Fatal("expected create to succeed")
	}
	if _, ok := reg.Create("alpha", NewOwner("eve", NewClient("b", 1)), ""); ok {
		t.Fatal("expected create on taken name to fail")
	}
	if reg.Len() != 1 {
		t.Fatalf("unexpected registry size %d", reg.Len())
	}

	found, ok := reg.FindByName("alpha")
	if !ok || found != room {
		t.Fatalf("lookup returned %v, %v", found, ok)
	}
}

func TestRegistryDeleteIdempotent(t *testing.T) {
	reg := NewRegistry()
	reg.Create("alpha", NewOwner("dave", NewClient("a", 1)), "")

	if !reg.DeleteByName("alpha") {
		t.Fatal("expected delete to succeed")
	}
	if reg.DeleteByName("alpha") {
		t.Fatal("expected second delete to report absence")
	}
	if _, ok := reg.FindByName("alpha"); ok {
		t.Fatal("room still present after delete")
	}
}
