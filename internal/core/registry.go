package core

// Registry is the process-wide table of live rooms keyed by name. It is
// owned by the hub goroutine; no other goroutine touches it.
type Registry struct {
	rooms map[string]*Room
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// FindByName looks up a room by exact name.
func (reg *Registry) FindByName(name string) (*Room, bool) {
	room, ok := reg.rooms[name]
	return room, ok
}

// Create inserts a new room under name. Returns false without mutation when
// the name is already taken, so only one caller can win a given name.
func (reg *Registry) Create(name string, owner *User, password string) (*Room, bool) {
	if _, exists := reg.rooms[name]; exists {
		return nil, false
	}
	room := NewRoom(name, owner, password)
	reg.rooms[name] = room
	return room, true
}

// DeleteByName removes a room. Returns false if absent.
func (reg *Registry) DeleteByName(name string) bool {
	if _, exists := reg.rooms[name]; !exists {
		return false
	}
	delete(reg.rooms, name)
	return true
}

// List returns all live rooms, order unspecified.
func (reg *Registry) List() []*Room {
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// Views returns a snapshot of every live room.
func (reg *Registry) Views() []RoomView {
	views := make([]RoomView, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		views = append(views, room.Snapshot())
	}
	return views
}

// Len returns the number of live rooms.
func (reg *Registry) Len() int {
	return len(reg.rooms)
}
