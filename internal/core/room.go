package core

import "sort"

// Room is a named chat space with one owner, zero or more players keyed by
// name, and the set of connections subscribed to its events. All mutation
// happens on the hub goroutine.
type Room struct {
	Name     string
	owner    *User
	password string
	players  map[string]*User
	members  map[*Client]struct{}
}

// NewRoom constructs a room owned by owner. The owner's connection still has
// to be joined to the broadcast set separately.
func NewRoom(name string, owner *User, password string) *Room {
	return &Room{
		Name:     name,
		owner:    owner,
		password: password,
		players:  make(map[string]*User),
		members:  make(map[*Client]struct{}),
	}
}

// Owner returns the identity that created the room.
func (r *Room) Owner() *User {
	return r.owner
}

// IsPublic reports whether the room has no password.
func (r *Room) IsPublic() bool {
	return r.password == ""
}

// AddPlayer inserts a player keyed by name. Returns false without mutation
// when the name is already taken by another player. The owner's name is
// deliberately not part of this check.
func (r *Room) AddPlayer(u *User) bool {
	if _, exists := r.players[u.Name]; exists {
		return false
	}
	r.players[u.Name] = u
	return true
}

// RemovePlayer deletes a player. Returns false if not present.
func (r *Room) RemovePlayer(u *User) bool {
	if _, exists := r.players[u.Name]; !exists {
		return false
	}
	delete(r.players, u.Name)
	return true
}

// FindPlayerByName looks up a player by exact name.
func (r *Room) FindPlayerByName(name string) (*User, bool) {
	u, ok := r.players[name]
	return u, ok
}

// Players returns the players in name order.
func (r *Room) Players() []*User {
	names := make([]string, 0, len(r.players))
	for name := range r.players {
		names = append(names, name)
	}
	sort.Strings(names)

	players := make([]*User, 0, len(names))
	for _, name := range names {
		players = append(players, r.players[name])
	}
	return players
}

// PlayerCount returns the number of players, not counting the owner.
func (r *Room) PlayerCount() int {
	return len(r.players)
}

// Join subscribes a connection to the room's events.
func (r *Room) Join(c *Client) {
	r.members[c] = struct{}{}
}

// Leave unsubscribes a connection from the room's events.
func (r *Room) Leave(c *Client) {
	delete(r.members, c)
}

// Broadcast sends an event to every subscribed connection.
func (r *Room) Broadcast(event *Event) {
	for client := range r.members {
		client.send(event)
	}
}

// BroadcastExcept sends an event to every subscribed connection but skip.
func (r *Room) BroadcastExcept(event *Event, skip *Client) {
	for client := range r.members {
		if client == skip {
			continue
		}
		client.send(event)
	}
}

// RoomView is the wire projection of a room.
type RoomView struct {
	Name    string     `json:"name"`
	Owner   UserView   `json:"owner"`
	Players []UserView `json:"players"`
}

// Snapshot returns a read-only projection safe to send over the wire.
func (r *Room) Snapshot() RoomView {
	players := r.Players()
	views := make([]UserView, 0, len(players))
	for _, p := range players {
		views = append(views, p.View())
	}
	return RoomView{
		Name:    r.Name,
		Owner:   r.owner.View(),
		Players: views,
	}
}
