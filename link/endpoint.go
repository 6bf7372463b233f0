package link

import (
	"net"
	"strconv"

	"tcplink/utils/consts"
)

// Endpoint identifies a bind or connect target. It is fixed once the
// component holding it is built.
type Endpoint struct {
	Host string
	Port int
}

// DefaultEndpoint is the loopback endpoint used when the caller does not
// care: 127.0.0.1:3000.
func DefaultEndpoint() Endpoint {
	return Endpoint{Host: consts.DefaultHost, Port: consts.DefaultPort}
}

func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	return e.Addr()
}

// State tracks the single lifecycle both components share:
// Unconnected -> Connected -> Closed. The establish call is the only
// automatic transition; everything after that is up to the caller.
type State int

const (
	StateUnconnected State = iota
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}
