package main

import (
	"fmt"
	"net"
)

// Client holds per-connection state (spec.md §3). Registered is
// monotonically false→true; Disconnecting is monotonically false→true.
type Client struct {
	Conn Conn

	// ID is a unique, process-local identifier, assigned at accept time
	// (catbox's Client.ID idiom). It is stable for the client's lifetime and
	// is the key used in channel membership maps; the Nicks registry is keyed
	// by nickname instead.
	ID uint64

	Nickname string
	Username string
	RealName string
	Hostname string

	Registered    bool
	Disconnecting bool

	// inbuf holds bytes read but not yet resolved into complete lines
	// (spec.md §4.1).
	inbuf []byte

	// Channels this client currently belongs to, keyed by canonical name, so
	// teardown (spec.md §4.5) does not need to scan every channel in the
	// registry.
	Channels map[string]*Channel

	// WriteChan decouples the writer goroutine from handler code: handler
	// code (running on the single server loop goroutine) never blocks on a
	// slow client's socket.
	WriteChan chan string

	server *Server
}

// newClient creates a Client for a freshly accepted connection.
func newClient(s *Server, id uint64, conn net.Conn) *Client {
	host := conn.RemoteAddr().String()
	if tcpAddr, ok := conn.RemoteAddr().(*net.TCPAddr); ok {
		host = tcpAddr.IP.String()
	}

	return &Client{
		Conn:      NewConn(conn),
		ID:        id,
		Hostname:  host,
		Channels:  make(map[string]*Channel),
		WriteChan: make(chan string, 100),
		server:    s,
	}
}

func (c *Client) String() string {
	return fmt.Sprintf("%d %s", c.ID, c.Conn.RemoteAddr())
}

// displayNick returns the client's nickname, or "*" if it has none yet
// (spec.md §4.4: "<target> is the client's current nickname or * if
// empty").
func (c *Client) displayNick() string {
	if c.Nickname == "" {
		return "*"
	}
	return c.Nickname
}

// send queues one already-formatted protocol line (including its trailing
// CRLF) for delivery to this client.
func (c *Client) send(line string) {
	select {
	case c.WriteChan <- line:
	default:
		// Client's write side is backed up. spec.md §5 explicitly accepts
		// lost messages under adverse conditions rather than adding an
		// outbound queue with backpressure; drop rather than block the
		// single server loop goroutine.
	}
}

// readLoop reads raw bytes from the connection and forwards them to the
// server's single event loop goroutine, which owns all framing, parsing,
// and dispatch. This, together with writeLoop, is the Go transliteration
// of spec.md §4.6's readiness multiplexer: one goroutine per client blocks
// on its own socket, and a single consumer goroutine serializes all state
// mutation (spec.md §5), grounded on catbox's Client.readLoop.
func (c *Client) readLoop(events chan<- Event) {
	buf := make([]byte, bufferSize)
	for {
		n, err := c.Conn.Read(buf)
		if err != nil || n == 0 {
			events <- Event{Type: EventDead, Client: c}
			return
		}

		data := make([]byte, n)
		copy(data, buf[:n])
		events <- Event{Type: EventData, Client: c, Data: data}
	}
}

// writeLoop drains WriteChan and writes each line to the socket. A write
// failure reports the client dead; spec.md §5 treats send as best-effort
// and does not retry.
func (c *Client) writeLoop(events chan<- Event) {
	for line := range c.WriteChan {
		if err := c.Conn.Write(line); err != nil {
			events <- Event{Type: EventDead, Client: c}
			return
		}
	}
}
