package core

import (
	"context"

	"github.com/rs/zerolog"
)

// RoomListing is the registry projection served to listing queries. It adds
// the fields the HTTP listing exposes on top of the wire snapshot.
type RoomListing struct {
	RoomView
	IsPublic    bool
	PlayerCount int
}

// Hub is the event router. A single Run goroutine drains the command
// channel and is the only writer to the registry, every room, and every
// connection's session pair, which serializes all room mutation and fixes
// the event order every member of a room observes.
type Hub struct {
	registry *Registry
	commands chan *Command
	log      *zerolog.Logger
}

// NewHub constructs a hub with an empty registry.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		registry: NewRegistry(),
		commands: make(chan *Command, 64),
		log:      logger,
	}
}

// Run processes commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-h.commands:
			h.dispatch(cmd)
		}
	}
}

// Submit queues a command for processing.
func (h *Hub) Submit(cmd *Command) {
	h.commands <- cmd
}

// Register announces a new connection. The hub answers with the current
// room list.
func (h *Hub) Register(c *Client) {
	h.Submit(&Command{Kind: CommandRegister, Client: c})
}

// Disconnect runs cleanup for a connection that is gone. It never reports
// failure outward; there is nobody left to tell.
func (h *Hub) Disconnect(c *Client) {
	h.Submit(&Command{Kind: CommandDisconnect, Client: c})
}

// Rooms returns a point-in-time listing of every live room, taken on the
// hub goroutine so it is consistent with command order.
func (h *Hub) Rooms(ctx context.Context) ([]RoomListing, error) {
	reply := make(chan []RoomListing, 1)
	select {
	case h.commands <- &Command{Kind: commandSnapshot, reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case listings := <-reply:
		return listings, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) dispatch(cmd *Command) {
	switch cmd.Kind {
	case CommandRegister, CommandListRooms:
		cmd.Client.send(&Event{Kind: EventRoomsList, Rooms: h.registry.Views()})
	case CommandCreateRoom:
		h.createRoom(cmd)
	case CommandJoinRoom:
		h.joinRoom(cmd)
	case CommandLeaveRoom:
		h.leaveRoom(cmd.Client)
	case CommandRoomMessage:
		h.roomMessage(cmd)
	case CommandPrivateMessage:
		h.privateMessage(cmd)
	case CommandDisconnect:
		h.disconnect(cmd.Client)
	case commandSnapshot:
		cmd.reply <- h.listings()
	}
}

func (h *Hub) createRoom(cmd *Command) {
	c := cmd.Client
	if cmd.Room == "" {
		c.send(&Event{Kind: EventRoomCreateError, Error: MsgRoomNeedsName})
		return
	}
	if _, exists := h.registry.FindByName(cmd.Room); exists {
		c.send(&Event{Kind: EventRoomCreateError, Error: MsgRoomExists})
		return
	}

	if !h.vacateIfNeeded(c) {
		return
	}

	owner := NewOwner(cmd.User, c)
	room, ok := h.registry.Create(cmd.Room, owner, cmd.Password)
	if !ok {
		c.send(&Event{Kind: EventRoomCreateError, Error: MsgRoomExists})
		return
	}

	c.room, c.user = room, owner
	room.Join(c)

	snapshot := room.Snapshot()
	c.send(&Event{Kind: EventRoomCreate, Room: &snapshot})
	h.log.Info().Str("room", room.Name).Str("owner", owner.Name).Msg("room created")
}

func (h *Hub) joinRoom(cmd *Command) {
	c := cmd.Client
	room, exists := h.registry.FindByName(cmd.Room)
	if !exists {
		c.send(&Event{Kind: EventRoomJoinError, Error: MsgRoomMissing})
		return
	}
	if _, taken := room.FindPlayerByName(cmd.User); taken {
		c.send(&Event{Kind: EventRoomJoinError, Error: MsgUserNameTaken})
		return
	}

	if !h.vacateIfNeeded(c) {
		return
	}

	var character *Character
	if cmd.Character != nil {
		character = NewCharacter(*cmd.Character)
	}
	player := NewPlayer(cmd.User, c, character)
	if !room.AddPlayer(player) {
		c.send(&Event{Kind: EventRoomJoinError, Error: MsgUserNameTaken})
		return
	}

	c.room, c.user = room, player
	room.Join(c)

	view := player.View()
	room.Broadcast(&Event{Kind: EventPlayerAdd, User: &view})

	snapshot := room.Snapshot()
	c.send(&Event{Kind: EventRoomJoin, Me: &view, Room: &snapshot})
	h.log.Info().Str("room", room.Name).Str("player", player.Name).Msg("player joined")
}

func (h *Hub) leaveRoom(c *Client) {
	if c.room == nil && c.user == nil {
		return
	}
	if err := h.evict(c); err != nil {
		h.log.Warn().Err(err).Str("client_id", c.ID).Msg("leave failed")
		c.send(&Event{Kind: EventRoomLeaveError, Error: MsgEvictionFailed})
	}
}

func (h *Hub) roomMessage(cmd *Command) {
	c := cmd.Client
	if c.room == nil || c.user == nil {
		// Messages from sessionless connections are dropped, not errored.
		h.log.Debug().Str("client_id", c.ID).Msg("message without a room dropped")
		return
	}
	from := c.user.View()
	c.room.Broadcast(&Event{Kind: EventRoomMessage, From: &from, Body: cmd.Body})
}

func (h *Hub) privateMessage(cmd *Command) {
	c := cmd.Client
	if c.room == nil || c.user == nil {
		c.send(&Event{Kind: EventPrivateError, Error: MsgTargetNotInRoom})
		return
	}

	var target *User
	if cmd.To.IsOwner {
		target = c.room.Owner()
	} else {
		target, _ = c.room.FindPlayerByName(cmd.To.Name)
	}
	if target == nil {
		c.send(&Event{Kind: EventPrivateError, Error: MsgTargetNotInRoom})
		return
	}

	from := c.user.View()
	to := target.View()
	target.Client().send(&Event{Kind: EventPrivateMessage, From: &from, Body: cmd.Body})
	c.send(&Event{Kind: EventPrivateConfirmation, To: &to, Body: cmd.Body})
}

func (h *Hub) disconnect(c *Client) {
	if c.room == nil && c.user == nil {
		return
	}
	if err := h.evict(c); err != nil {
		h.log.Warn().Err(err).Str("client_id", c.ID).Msg("disconnect cleanup failed")
	}
}

// vacateIfNeeded evicts the caller from its current room before a create or
// join attaches it elsewhere. Returns false after emitting the leave error
// when eviction fails, in which case the caller must abort.
func (h *Hub) vacateIfNeeded(c *Client) bool {
	if c.room == nil && c.user == nil {
		return true
	}
	if err := h.evict(c); err != nil {
		h.log.Warn().Err(err).Str("client_id", c.ID).Msg("eviction failed")
		c.send(&Event{Kind: EventRoomLeaveError, Error: MsgEvictionFailed})
		return false
	}
	return true
}

// evict removes the caller's identity from its room. An owner departure
// tears the whole room down: every member is told, every player's session
// is cleared, and the room leaves the registry. A player departure removes
// just that player. The caller's session is cleared in both cases.
func (h *Hub) evict(c *Client) error {
	room, user := c.room, c.user
	if room == nil || user == nil {
		return ErrInconsistentSession
	}

	if user == room.Owner() {
		snapshot := room.Snapshot()
		room.Broadcast(&Event{Kind: EventRoomDelete, Room: &snapshot})

		for _, player := range room.Players() {
			pc := player.Client()
			room.Leave(pc)
			pc.room, pc.user = nil, nil
			room.RemovePlayer(player)
		}
		room.Leave(c)
		h.registry.DeleteByName(room.Name)
		h.log.Info().Str("room", room.Name).Msg("room deleted")
	} else {
		// Snapshot before removal so the departing player sees the room it
		// is leaving.
		snapshot := room.Snapshot()
		c.send(&Event{Kind: EventRoomLeave, Room: &snapshot})

		view := user.View()
		room.BroadcastExcept(&Event{Kind: EventPlayerRemove, User: &view}, c)

		room.Leave(c)
		room.RemovePlayer(user)
		h.log.Info().Str("room", room.Name).Str("player", user.Name).Msg("player left")
	}

	c.room, c.user = nil, nil
	return nil
}

func (h *Hub) listings() []RoomListing {
	rooms := h.registry.List()
	listings := make([]RoomListing, 0, len(rooms))
	for _, room := range rooms {
		listings = append(listings, RoomListing{
			RoomView:    room.Snapshot(),
			IsPublic:    room.IsPublic(),
			PlayerCount: room.PlayerCount(),
		})
	}
	return listings
}
