package core

// CommandKind describes what a connection wants to do.
type CommandKind int

const (
	// CommandRegister announces a new connection; the hub answers with the
	// current room list.
	CommandRegister CommandKind = iota
	// CommandListRooms requests the current room list.
	CommandListRooms
	// CommandCreateRoom creates a room owned by the caller.
	CommandCreateRoom
	// CommandJoinRoom joins the caller to an existing room as a player.
	CommandJoinRoom
	// CommandLeaveRoom removes the caller from its current room.
	CommandLeaveRoom
	// CommandRoomMessage broadcasts a message to the caller's room.
	CommandRoomMessage
	// CommandPrivateMessage delivers a message to one member of the
	// caller's room.
	CommandPrivateMessage
	// CommandDisconnect runs cleanup for a connection that is gone.
	CommandDisconnect
	// commandSnapshot asks for a point-in-time room listing (internal, used
	// by Hub.Rooms).
	commandSnapshot
)

// Target names the recipient of a private message.
type Target struct {
	Name    string
	IsOwner bool
}

// Command is an action requested by a connection, processed in arrival
// order by the hub goroutine.
type Command struct {
	Kind      CommandKind
	Client    *Client
	Room      string
	User      string
	Password  string
	Character *CharacterInput
	Body      string
	To        Target

	reply chan []RoomListing
}
