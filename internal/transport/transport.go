// Package transport frames whole text messages over byte streams. The
// protocol is deliberately primitive: one logical message per underlying
// receive, at most MaxMessageSize bytes, NUL-terminated on the wire. The
// session layer above never sees partial messages and never frames anything
// itself.
package transport

import (
	"errors"
	"net"
)

// MaxMessageSize bounds every command, argument and response message.
const MaxMessageSize = 1024

// ErrMessageTooLarge is returned when a send would exceed the fixed buffer
// capacity a peer reads with.
var ErrMessageTooLarge = errors.New("message exceeds maximum size")

// Conn is a bidirectional whole-message channel to one peer. Receive blocks
// until the peer sends data or disconnects; there are no timeouts.
type Conn interface {
	// Send delivers one message to the peer.
	Send(msg string) error

	// Receive blocks for the next message from the peer. A closed or broken
	// connection surfaces as an error; the caller must stop using the Conn.
	Receive() (string, error)

	// Close releases the underlying connection.
	Close() error

	// RemoteAddr identifies the peer for logging.
	RemoteAddr() string
}

// Listener accepts connections already wrapped in the message framing, so
// the server never touches a raw net.Conn.
type Listener struct {
	l net.Listener
}

// Listen binds a TCP listener on addr.
func Listen(addr string) (*Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Listener{l: l}, nil
}

// Accept blocks for the next connection. After Close it fails with an error
// matching net.ErrClosed.
func (l *Listener) Accept() (Conn, error) {
	c, err := l.l.Accept()
	if err != nil {
		return nil, err
	}
	return NewConn(c), nil
}

// Close stops the listener; blocked Accept calls return immediately.
func (l *Listener) Close() error {
	return l.l.Close()
}

// Addr returns the bound address, useful when listening on port 0.
func (l *Listener) Addr() string {
	return l.l.Addr().String()
}

// netConn adapts a net.Conn to the message framing.
type netConn struct {
	conn net.Conn
	buf  [MaxMessageSize]byte
}

// NewConn wraps an established network connection.
func NewConn(c net.Conn) Conn {
	return &netConn{conn: c}
}

// Send writes msg followed by the NUL terminator in a single write.
func (c *netConn) Send(msg string) error {
	if len(msg)+1 > MaxMessageSize {
		return ErrMessageTooLarge
	}

	data := make([]byte, 0, len(msg)+1)
	data = append(data, msg...)
	data = append(data, 0)
	_, err := c.conn.Write(data)
	return err
}

// Receive reads one message: all bytes delivered by a single read, trimmed
// at the first NUL.
func (c *netConn) Receive() (string, error) {
	n, err := c.conn.Read(c.buf[:])
	if err != nil {
		return "", err
	}

	data := c.buf[:n]
	for i, b := range data {
		if b == 0 {
			data = data[:i]
			break
		}
	}
	return string(data), nil
}

func (c *netConn) Close() error {
	return c.conn.Close()
}

func (c *netConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
