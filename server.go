package main

import (
	"context"
	"log"
	"net"
	"syscall"

	"github.com/pkg/errors"
)

// EventType identifies what kind of Event the single server loop goroutine
// received.
type EventType int

const (
	// EventNewClient announces a freshly accepted connection.
	EventNewClient EventType = iota
	// EventData carries raw bytes read from a client.
	EventData
	// EventDead announces a client whose read or write failed.
	EventDead
)

// Event is what every client goroutine and the acceptor funnel through a
// single channel to the server loop goroutine, which is the sole mutator
// of the Client/Channel registries (spec.md §5). Grounded on catbox's
// Event/newEvent idiom (client.go's readLoop/writeLoop push events rather
// than mutate server state directly).
type Event struct {
	Type   EventType
	Client *Client
	Conn   net.Conn
	Data   []byte
}

// Server holds all process-wide state: the Client registry (insertion
// order preserved), the canonical-nickname-to-Client index, and the
// channel-name-to-Channel map (spec.md §3). It is mutated only by run,
// the single event loop goroutine.
type Server struct {
	Config Config

	listener net.Listener
	events   chan Event
	nextID   uint64

	// Clients preserves insertion (accept) order.
	Clients []*Client

	// Nicks indexes registered and in-progress clients by canonical
	// (case-sensitive here; spec.md does not fold nick case) nickname, so
	// NICK collisions and message-to-nick lookups are O(1).
	Nicks map[string]*Client

	Channels map[string]*Channel
}

// newServer creates a Server ready to start.
func newServer(config Config) *Server {
	return &Server{
		Config:   config,
		events:   make(chan Event, 256),
		Nicks:    make(map[string]*Client),
		Channels: make(map[string]*Channel),
	}
}

// listenConfig sets SO_REUSEADDR on the listening socket so the server can
// restart promptly after a crash, matching the original C++
// setupServerSocket's explicit setsockopt(SO_REUSEADDR). Go's net package
// otherwise leaves this unset for TCP listeners. No pack dependency wraps
// socket options, so this one piece uses the standard library's syscall
// package directly (see DESIGN.md).
var listenConfig = net.ListenConfig{
	Control: func(_, _ string, c syscall.RawConn) error {
		var setErr error
		err := c.Control(func(fd uintptr) {
			setErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
		})
		if err != nil {
			return err
		}
		return setErr
	},
}

// start opens the listening socket. An empty host with network "tcp" has
// Go listen dual-stack (both IPv4 and IPv6) by default on platforms that
// support it, reproducing the original's explicit AF_INET6 +
// !IPV6_V6ONLY preference (spec.md §4.7, SPEC_FULL.md §11) without extra
// code.
func (s *Server) start() error {
	addr := net.JoinHostPort(s.Config.ListenHost, s.Config.ListenPort)

	ln, err := listenConfig.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", addr)
	}
	s.listener = ln

	log.Printf("%s listening on %s", s.Config.ServerName, addr)

	go s.acceptLoop()

	s.run()
	return nil
}

// acceptLoop accepts connections and reports each as an event; it does not
// touch the registries itself.
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			log.Printf("accept: %s", err)
			return
		}
		s.events <- Event{Type: EventNewClient, Conn: conn}
	}
}

// run is the single event loop goroutine: it is the only code that reads
// or writes the Client/Channel registries, reproducing spec.md §4.6's
// readiness-multiplexer semantics (accept, read, dispatch, teardown) as a
// channel-driven select instead of a raw select(2) call (spec.md §5
// explicitly allows this substitution).
func (s *Server) run() {
	for ev := range s.events {
		switch ev.Type {
		case EventNewClient:
			s.handleNewClient(ev.Conn)
		case EventData:
			s.handleData(ev.Client, ev.Data)
		case EventDead:
			ev.Client.Disconnecting = true
		}

		s.reapDisconnecting()
	}
}

func (s *Server) handleNewClient(conn net.Conn) {
	id := s.nextID
	s.nextID++

	c := newClient(s, id, conn)
	s.Clients = append(s.Clients, c)

	go c.readLoop(s.events)
	go c.writeLoop(s.events)

	log.Printf("new connection: %s", c)

	// spec.md §4.6: a one-time welcome NOTICE on accept.
	c.send(":" + s.Config.ServerName + " NOTICE AUTH :Welcome to " + s.Config.ServerName + "!\r\n")
}

// handleData frames and dispatches every complete line newly readable on
// c's connection (spec.md §4.1). If handling a line sets Disconnecting,
// remaining buffered lines are not processed this iteration (spec.md
// §4.1): they are discarded along with the client during the next sweep.
func (s *Server) handleData(c *Client, data []byte) {
	c.inbuf = append(c.inbuf, data...)

	var lines []string
	lines, c.inbuf = extractLines(c.inbuf)

	for _, line := range lines {
		if c.Disconnecting {
			return
		}
		if line == "" {
			continue
		}

		prefix, verb, params, ok := parseLine(line)
		if !ok {
			continue
		}

		log.Printf("client %s: %s", c, asMessage(prefix, verb, params))
		s.dispatch(c, prefix, verb, params)
	}
}

// reapDisconnecting runs teardown (spec.md §4.5) for every client flagged
// Disconnecting, then removes it from the registry.
func (s *Server) reapDisconnecting() {
	var remaining []*Client
	for _, c := range s.Clients {
		if !c.Disconnecting {
			remaining = append(remaining, c)
			continue
		}
		s.teardown(c)
	}
	s.Clients = remaining
}

// teardown removes c from every channel it belongs to (emitting PART to
// the remaining members, destroying channels left empty), frees its
// nickname, and closes its connection (spec.md §4.5).
func (s *Server) teardown(c *Client) {
	for name, ch := range c.Channels {
		ch.removeMember(c)
		ch.broadcast(":"+c.Nickname+" PART "+name+"\r\n", nil)
		if len(ch.Members) == 0 {
			delete(s.Channels, name)
		}
	}
	c.Channels = make(map[string]*Channel)

	if c.Nickname != "" {
		delete(s.Nicks, c.Nickname)
	}

	close(c.WriteChan)
	if err := c.Conn.Close(); err != nil {
		log.Printf("client %s: close: %s", c, err)
	}

	log.Printf("client %s disconnected", c)
}

// lookupByNick finds a client by exact (case-sensitive) nickname match.
func (s *Server) lookupByNick(nick string) (*Client, bool) {
	c, ok := s.Nicks[nick]
	return c, ok
}

// broadcastToAll sends line to every connected client except sender (nil
// to include everyone), per spec.md §4.3/§4.4's NICK-change and QUIT
// fan-out, which (per spec.md §9) reaches every client, not only channel
// peers.
func (s *Server) broadcastToAll(line string, sender *Client) {
	for _, c := range s.Clients {
		if sender != nil && c.ID == sender.ID {
			continue
		}
		c.send(line)
	}
}
