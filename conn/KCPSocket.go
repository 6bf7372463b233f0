package conn

import (
	"bufio"
	"net"

	"github.com/pkg/errors"
	"github.com/xtaci/kcp-go/v5"
)

type KCPSocket struct {
	socket    *kcp.UDPSession
	reader    *bufio.Reader
	closeFlag bool
}

func (socket *KCPSocket) GetSocket() *kcp.UDPSession {
	return socket.socket
}

func (socket *KCPSocket) Close() error {
	socket.closeFlag = true
	return socket.socket.Close()
}

func (socket *KCPSocket) Write(p []byte) (n int, err error) {
	return socket.socket.Write(p)
}

func (socket *KCPSocket) Read(p []byte) (n int, err error) {
	return socket.socket.Read(p)
}

func (socket *KCPSocket) ReadLine() (data []byte, err error) {
	data, err = socket.reader.ReadBytes('\n')
	return
}

func (socket *KCPSocket) WriteLine(data []byte) (err error) {
	_, err = socket.socket.Write(append(data, '\n'))
	return
}

func (socket *KCPSocket) RemoteAddr() net.Addr {
	return socket.socket.RemoteAddr()
}

func (socket *KCPSocket) LocalAddr() net.Addr {
	return socket.socket.LocalAddr()
}

func (socket *KCPSocket) Address() (net.Addr, net.Addr) {
	return socket.socket.LocalAddr(), socket.socket.RemoteAddr()
}

type KCPListener struct {
	listener *kcp.Listener
}

func (listener *KCPListener) AcceptKCP() (*KCPSocket, error) {
	kcpConn, err := listener.listener.AcceptKCP()
	if err != nil {
		return nil, &ConnectionError{Op: "accept", Addr: listener.listener.Addr().String(), Err: errors.WithStack(err)}
	}
	return &KCPSocket{
		socket:    kcpConn,
		reader:    bufio.NewReader(kcpConn),
		closeFlag: false,
	}, nil
}

func (listener *KCPListener) Close() error {
	return listener.listener.Close()
}

func (listener *KCPListener) Accept() (Socket, error) {
	return listener.AcceptKCP()
}

func (listener *KCPListener) Network() string {
	return "kcp"
}

func (listener *KCPListener) Address() net.Addr {
	return listener.listener.Addr()
}

// NewKCPSocket dials raddr over KCP. No FEC parity shards are configured;
// the link carries interactive text, not bulk transfer.
func NewKCPSocket(raddr *net.UDPAddr) (Socket, error) {
	kcpConn, err := kcp.DialWithOptions(raddr.String(), nil, 0, 0)
	if err != nil {
		return nil, &ConnectionError{Op: "connect", Addr: raddr.String(), Err: errors.WithStack(err)}
	}
	return &KCPSocket{
		socket:    kcpConn,
		reader:    bufio.NewReader(kcpConn),
		closeFlag: false,
	}, nil
}

func NewKCPListener(addr *net.UDPAddr) (Listener, error) {
	kcpListener, err := kcp.ListenWithOptions(addr.String(), nil, 0, 0)
	if err != nil {
		return nil, &BindError{Addr: addr.String(), Err: errors.WithStack(err)}
	}
	return &KCPListener{
		listener: kcpListener,
	}, nil
}
