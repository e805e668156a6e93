// Command ws_probe is an interactive client for poking the room protocol.
//
// Commands on stdin:
//
//	/rooms                  list rooms
//	/create <room> [pass]   create a room
//	/join <room>            join a room
//	/leave                  leave the current room
//	/pm <name> <text...>    private message to a player
//	/pmo <text...>          private message to the room owner
//	<text>                  broadcast to the current room
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/dkravets/gameroom-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_probe: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	user := flag.String("user", "probe-user", "user name for create/join")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	fmt.Printf("Connected to %s as %s\n", *addr, *user)

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn, *user)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func writeLoop(ctx context.Context, conn *websocket.Conn, user string) {
	send := func(event string, data any) {
		payload, err := json.Marshal(data)
		if err != nil {
			log.Printf("marshal %s: %v", event, err)
			return
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Event: event, Data: payload}); err != nil {
			log.Printf("send %s: %v", event, err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/rooms":
			if err := wsjson.Write(ctx, conn, proto.Inbound{Event: proto.EventRoomsList}); err != nil {
				log.Printf("send rooms::list: %v", err)
			}
		case strings.HasPrefix(line, "/create "):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				fmt.Println("usage: /create <room> [password]")
				continue
			}
			data := proto.CreateRoomData{Name: fields[1], User: proto.UserRef{Name: user}}
			if len(fields) > 2 {
				data.Password = fields[2]
			}
			send(proto.EventRoomCreate, data)
		case strings.HasPrefix(line, "/join "):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				fmt.Println("usage: /join <room>")
				continue
			}
			send(proto.EventRoomJoin, proto.JoinRoomData{Name: fields[1], User: proto.UserRef{Name: user}})
		case line == "/leave":
			if err := wsjson.Write(ctx, conn, proto.Inbound{Event: proto.EventRoomLeave}); err != nil {
				log.Printf("send room::leave: %v", err)
			}
		case strings.HasPrefix(line, "/pmo "):
			send(proto.EventPrivateMessage, proto.PrivateMessageData{
				To:   proto.TargetRef{IsOwner: true},
				Body: strings.TrimPrefix(line, "/pmo "),
			})
		case strings.HasPrefix(line, "/pm "):
			rest := strings.TrimPrefix(line, "/pm ")
			name, body, ok := strings.Cut(rest, " ")
			if !ok {
				fmt.Println("usage: /pm <name> <text>")
				continue
			}
			send(proto.EventPrivateMessage, proto.PrivateMessageData{
				To:   proto.TargetRef{Name: name},
				Body: body,
			})
		default:
			send(proto.EventRoomMessage, proto.MessageData{Body: line})
		}
	}
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		pretty, err := json.MarshalIndent(outbound.Data, "", "  ")
		if err != nil {
			pretty = []byte(fmt.Sprintf("%v", outbound.Data))
		}
		fmt.Printf("<< %s %s\n", outbound.Event, pretty)
	}
}
