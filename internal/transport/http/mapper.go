package http

import (
	"encoding/json"

	"github.com/dkravets/gameroom-server/internal/core"
	"github.com/dkravets/gameroom-server/internal/proto"
)

func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, *proto.Error) {
	switch inbound.Event {
	case proto.EventRoomsList:
		return &core.Command{Kind: core.CommandListRooms, Client: client}, nil

	case proto.EventRoomCreate:
		var create proto.CreateRoomData
		if err := json.Unmarshal(inbound.Data, &create); err != nil {
			return nil, badRequest("invalid room::create payload")
		}
		return &core.Command{
			Kind:     core.CommandCreateRoom,
			Client:   client,
			Room:     create.Name,
			User:     create.User.Name,
			Password: create.Password,
		}, nil

	case proto.EventRoomJoin:
		var join proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, badRequest("invalid room::join payload")
		}
		cmd := &core.Command{
			Kind:   core.CommandJoinRoom,
			Client: client,
			Room:   join.Name,
			User:   join.User.Name,
		}
		if ch := join.User.Character; ch != nil {
			cmd.Character = &core.CharacterInput{
				Name:          ch.Name,
				Rank:          ch.Rank,
				Sector:        ch.Sector,
				CloneNumber:   ch.CloneNumber,
				MutantPower:   ch.MutantPower,
				SecretSociety: ch.SecretSociety,
			}
		}
		return cmd, nil

	case proto.EventRoomLeave:
		return &core.Command{Kind: core.CommandLeaveRoom, Client: client}, nil

	case proto.EventRoomMessage:
		var msg proto.MessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, badRequest("invalid room::message payload")
		}
		return &core.Command{
			Kind:   core.CommandRoomMessage,
			Client: client,
			Body:   msg.Body,
		}, nil

	case proto.EventPrivateMessage:
		var private proto.PrivateMessageData
		if err := json.Unmarshal(inbound.Data, &private); err != nil {
			return nil, badRequest("invalid room::message::private payload")
		}
		return &core.Command{
			Kind:   core.CommandPrivateMessage,
			Client: client,
			Body:   private.Body,
			To: core.Target{
				Name:    private.To.Name,
				IsOwner: private.To.IsOwner,
			},
		}, nil

	default:
		return nil, &proto.Error{Code: proto.ErrCodeUnknownEvent, Msg: "unknown event: " + inbound.Event}
	}
}

func badRequest(msg string) *proto.Error {
	return &proto.Error{Code: proto.ErrCodeBadRequest, Msg: msg}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomsList:
		return proto.Outbound{Event: proto.EventRoomsList, Data: event.Rooms}
	case core.EventRoomCreate:
		return proto.Outbound{Event: proto.EventRoomCreate, Data: event.Room}
	case core.EventRoomCreateError:
		return proto.Outbound{Event: proto.EventRoomCreateError, Data: event.Error}
	case core.EventRoomJoin:
		return proto.Outbound{
			Event: proto.EventRoomJoin,
			Data:  proto.JoinedData{Me: event.Me, Room: event.Room},
		}
	case core.EventRoomJoinError:
		return proto.Outbound{Event: proto.EventRoomJoinError, Data: event.Error}
	case core.EventRoomLeave:
		return proto.Outbound{Event: proto.EventRoomLeave, Data: event.Room}
	case core.EventRoomLeaveError:
		return proto.Outbound{Event: proto.EventRoomLeaveError, Data: event.Error}
	case core.EventRoomDelete:
		return proto.Outbound{Event: proto.EventRoomDelete, Data: event.Room}
	case core.EventPlayerAdd:
		return proto.Outbound{Event: proto.EventPlayerAdd, Data: event.User}
	case core.EventPlayerRemove:
		return proto.Outbound{Event: proto.EventPlayerRemove, Data: event.User}
	case core.EventRoomMessage:
		return proto.Outbound{
			Event: proto.EventRoomMessage,
			Data:  proto.RoomMessageData{From: event.From, Body: event.Body},
		}
	case core.EventPrivateMessage:
		return proto.Outbound{
			Event: proto.EventPrivateMessage,
			Data:  proto.RoomMessageData{From: event.From, Body: event.Body},
		}
	case core.EventPrivateConfirmation:
		return proto.Outbound{
			Event: proto.EventPrivateConfirmation,
			Data:  proto.ConfirmationData{To: event.To, Body: event.Body},
		}
	case core.EventPrivateError:
		return proto.Outbound{Event: proto.EventPrivateError, Data: event.Error}
	default:
		return proto.Outbound{Event: proto.EventProtocolError, Data: proto.Error{Code: "unknown", Msg: "unknown event kind"}}
	}
}
