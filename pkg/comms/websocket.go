package comms

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// WSConn carries shots as binary websocket frames, one packet per frame
// on the sending side. Both ends present the same blocking stream
// contract as TCPConn.
type WSConn struct {
	socket *websocket.Conn
	server *http.Server
	rest   []byte
	closer sync.Once
}

// DialWS connects to an opponent serving a websocket endpoint on addr.
func DialWS(addr string) (*WSConn, error) {
	socket, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("dialing ws://%s: %w", addr, err)
	}
	return &WSConn{socket: socket}, nil
}

// ListenWS serves a websocket endpoint on addr and blocks until a single
// opponent upgrades.
func ListenWS(addr string) (*WSConn, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}
	return serveWS(listener)
}

// serveWS upgrades the first incoming request on an already bound
// listener and hands its socket over. Later arrivals are turned away.
func serveWS(listener net.Listener) (*WSConn, error) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	accepted := make(chan *websocket.Conn, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		socket, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		select {
		case accepted <- socket:
		default:
			socket.Close()
		}
	})

	server := &http.Server{Handler: mux}
	go server.Serve(listener)

	return &WSConn{socket: <-accepted, server: server}, nil
}

func (c *WSConn) Send(pkt []byte) error {
	if err := c.socket.WriteMessage(websocket.BinaryMessage, pkt); err != nil {
		return fmt.Errorf("sending %d bytes: %w", len(pkt), err)
	}
	return nil
}

// Recv fills buf from incoming binary frames, carrying any surplus frame
// bytes over into the next call.
func (c *WSConn) Recv(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		if len(c.rest) == 0 {
			_, frame, err := c.socket.ReadMessage()
			if err != nil {
				return n, err
			}
			c.rest = frame
		}
		copied := copy(buf[n:], c.rest)
		c.rest = c.rest[copied:]
		n += copied
	}
	return n, nil
}

func (c *WSConn) Close() error {
	var err error
	c.closer.Do(func() {
		err = c.socket.Close()
		if c.server != nil {
			c.server.Close()
		}
	})
	return err
}
