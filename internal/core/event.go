package core

// EventKind is a notification the hub emits to connections.
type EventKind int

const (
	// EventRoomsList carries the current room list.
	EventRoomsList EventKind = iota
	// EventRoomCreate confirms room creation to the creator.
	EventRoomCreate
	// EventRoomCreateError reports a failed create to the caller.
	EventRoomCreateError
	// EventRoomJoin confirms a join to the joiner.
	EventRoomJoin
	// EventRoomJoinError reports a failed join to the caller.
	EventRoomJoinError
	// EventRoomLeave tells a departing player it has left its room.
	EventRoomLeave
	// EventRoomLeaveError reports a failed eviction to the caller.
	EventRoomLeaveError
	// EventRoomDelete tells room members the room has been torn down.
	EventRoomDelete
	// EventPlayerAdd tells room members a player arrived.
	EventPlayerAdd
	// EventPlayerRemove tells room members a player departed.
	EventPlayerRemove
	// EventRoomMessage carries a broadcast chat message.
	EventRoomMessage
	// EventPrivateMessage carries a private message to its target.
	EventPrivateMessage
	// EventPrivateConfirmation confirms a private delivery to its sender.
	EventPrivateConfirmation
	// EventPrivateError reports an unresolvable private target.
	EventPrivateError
)

// Event describes what happened, with only the fields relevant to its kind
// populated.
type Event struct {
	Kind  EventKind
	Rooms []RoomView // rooms list
	Room  *RoomView  // create/join/leave/delete snapshots
	User  *UserView  // player add/remove
	Me    *UserView  // join confirmation
	From  *UserView  // room/private message sender
	To    *UserView  // private confirmation target
	Body  string
	Error string
}
