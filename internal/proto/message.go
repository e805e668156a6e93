// Package proto defines the wire envelope and payload shapes exchanged with
// clients. Both directions use named events: {"event": ..., "data": ...}.
package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Outbound is the envelope for frames sent to the client.
type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Event names, shared by both directions where applicable.
const (
	EventRoomsList           = "rooms::list"
	EventRoomCreate          = "room::create"
	EventRoomCreateError     = "room::create::error"
	EventRoomJoin            = "room::join"
	EventRoomJoinError       = "room::join::error"
	EventRoomLeave           = "room::leave"
	EventRoomLeaveError      = "room::leave::error"
	EventRoomDelete          = "room::delete"
	EventPlayerAdd           = "room::player::add"
	EventPlayerRemove        = "room::player::remove"
	EventRoomMessage         = "room::message"
	EventPrivateMessage      = "room::message::private"
	EventPrivateConfirmation = "room::message::private::confirmation"
	EventPrivateError        = "room::message::private::error"

	// EventProtocolError reports malformed or unknown inbound traffic.
	EventProtocolError = "error"
)

// Protocol error codes.
const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnknownEvent = "unknown_event"
	ErrCodeRateLimited  = "rate_limited"
)

// CreateRoomData is the payload of an inbound room::create.
type CreateRoomData struct {
	Name     string  `json:"name"`
	User     UserRef `json:"user"`
	Password string  `json:"password,omitempty"`
}

// JoinRoomData is the payload of an inbound room::join.
type JoinRoomData struct {
	Name string  `json:"name"`
	User UserRef `json:"user"`
}

// UserRef names the acting user; the character only matters on join.
type UserRef struct {
	Name      string         `json:"name"`
	Character *CharacterData `json:"character,omitempty"`
}

// CharacterData is the untrusted character profile attached to a join.
type CharacterData struct {
	Name          string `json:"name"`
	Rank          string `json:"rank"`
	Sector        string `json:"sector"`
	CloneNumber   int    `json:"cloneNumber"`
	MutantPower   string `json:"mutantPower"`
	SecretSociety string `json:"secretSociety"`
}

// MessageData is the payload of an inbound room::message.
type MessageData struct {
	Body string `json:"body"`
}

// PrivateMessageData is the payload of an inbound room::message::private.
type PrivateMessageData struct {
	To   TargetRef `json:"to"`
	Body string    `json:"body"`
}

// TargetRef names the recipient of a private message.
type TargetRef struct {
	Name    string `json:"name"`
	IsOwner bool   `json:"isOwner"`
}

// JoinedData is the payload of an outbound room::join.
type JoinedData struct {
	Me   any `json:"me"`
	Room any `json:"room"`
}

// RoomMessageData is the payload of an outbound room::message or
// room::message::private.
type RoomMessageData struct {
	From any    `json:"from"`
	Body string `json:"body"`
}

// ConfirmationData is the payload of an outbound
// room::message::private::confirmation.
type ConfirmationData struct {
	To   any    `json:"to"`
	Body string `json:"body"`
}

// Error describes a protocol-level failure.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
