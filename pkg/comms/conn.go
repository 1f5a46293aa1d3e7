package comms

import (
	"fmt"
	"io"
	"net"
	"sync"
)

// Conn is the single point-to-point channel between the two players.
// Exactly one connection is ever active per game.
type Conn interface {
	// Send writes the whole packet to the peer.
	Send(pkt []byte) error
	// Recv blocks until len(buf) bytes have arrived. A closed or broken
	// peer surfaces as an error, possibly after a short read.
	Recv(buf []byte) (int, error)
	// Close releases the connection and any listening socket behind it.
	// Safe to call more than once.
	Close() error
}

// TCPConn carries shots over a raw TCP stream.
type TCPConn struct {
	conn     net.Conn
	listener net.Listener
	closer   sync.Once
}

// Dial connects to an opponent listening on addr.
func Dial(addr string) (*TCPConn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return &TCPConn{conn: conn}, nil
}

// Listen binds to addr and blocks until a single opponent connects.
func Listen(addr string) (*TCPConn, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}
	return accept(listener)
}

// accept waits for the one opponent of the game on an already bound
// listener, keeping the listener around so Close can release it.
func accept(listener net.Listener) (*TCPConn, error) {
	conn, err := listener.Accept()
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("waiting for the opponent: %w", err)
	}
	return &TCPConn{conn: conn, listener: listener}, nil
}

func (c *TCPConn) Send(pkt []byte) error {
	if _, err := c.conn.Write(pkt); err != nil {
		return fmt.Errorf("sending %d bytes: %w", len(pkt), err)
	}
	return nil
}

func (c *TCPConn) Recv(buf []byte) (int, error) {
	return io.ReadFull(c.conn, buf)
}

func (c *TCPConn) Close() error {
	var err error
	c.closer.Do(func() {
		err = c.conn.Close()
		if c.listener != nil {
			c.listener.Close()
		}
	})
	return err
}
