package conn

import (
	"io"
	"net"
)

// Socket is an established bidirectional byte channel between two peers.
// On top of the raw Read/Write it offers line-oriented helpers, which is
// all the higher layers of tcplink use.
type Socket interface {
	io.ReadWriteCloser
	ReadLine() ([]byte, error)
	WriteLine([]byte) error
	RemoteAddr() net.Addr
	LocalAddr() net.Addr
	Address() (net.Addr, net.Addr)
}

// Listener accepts incoming sockets on a bound address.
type Listener interface {
	io.Closer
	Accept() (Socket, error)
	Network() string
	Address() net.Addr
}
