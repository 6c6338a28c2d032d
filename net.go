package main

import (
	"net"
)

// bufferSize is the maximum number of bytes read from a client socket per
// readable event (spec.md §4.1, "BUFFER_SIZE (512)").
const bufferSize = 512

// Conn is the transport handle for a single client connection. It is a
// thin wrapper over net.Conn, grounded on catbox's net.go Conn type, but
// exposes raw reads/writes instead of line buffering: spec.md's line
// framer (framer.go) owns reassembly, not the transport.
type Conn struct {
	conn net.Conn
}

// NewConn wraps an accepted connection.
func NewConn(conn net.Conn) Conn {
	return Conn{conn: conn}
}

// RemoteAddr returns the remote network address.
func (c Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the underlying connection.
func (c Conn) Close() error {
	return c.conn.Close()
}

// Read reads up to bufferSize bytes. A read returning 0 bytes or an error
// means the client is gone (spec.md §4.1).
func (c Conn) Read(buf []byte) (int, error) {
	return c.conn.Read(buf)
}

// Write writes a raw, already-formatted protocol line. This is best-effort:
// spec.md §5 does not require retrying a partial write or transient
// failure.
func (c Conn) Write(line string) error {
	_, err := c.conn.Write([]byte(line))
	return err
}
