package core

import "errors"

// Messages surfaced to the offending connection as *::error events. Wording
// is part of the protocol.
const (
	MsgRoomNeedsName   = "A room needs a name."
	MsgRoomExists      = "A room with that name already exists."
	MsgRoomMissing     = "A room with that name doesn't exist."
	MsgUserNameTaken   = "A user with that name already exists in that room."
	MsgEvictionFailed  = "There was a problem removing you from your current room."
	MsgTargetNotInRoom = "A player by that name doesn't exist in that room."
)

// ErrInconsistentSession marks a session holding a room without an identity
// or the reverse. Create and join abort on it rather than proceed halfway.
var ErrInconsistentSession = errors.New("session holds room or identity but not both")
