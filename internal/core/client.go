package core

// Client is one live connection as seen by the core layer. Events flow out
// through the buffered Events channel; the transport drains it.
//
// The room/user pair is the connection's session state. Both fields are set
// together on create/join and cleared together on leave, disconnect, or
// room teardown, only ever by the hub goroutine.
type Client struct {
	ID     string
	Events chan *Event

	room *Room
	user *User
}

// NewClient constructs a client with an event buffer of the given size.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = 16
	}
	return &Client{
		ID:     id,
		Events: make(chan *Event, buffer),
	}
}

// send queues an event for delivery without blocking the hub.
func (c *Client) send(event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
	}
}
