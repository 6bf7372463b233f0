// Package link establishes a single client/server text link: one side
// listens and accepts exactly one peer, the other side connects, and both
// end up holding the same kind of buffered line stream. There is no framing,
// no retry and no timeout at this layer; a failed establish is terminal and
// a broken stream stays open until the owner closes it.
package link

import (
	"github.com/pkg/errors"

	"tcplink/conn"
	"tcplink/stream"
	"tcplink/utils/log"
)

// Listener binds an address and waits for exactly one peer. It is single
// use: one Accept, one connection, then Close.
type Listener struct {
	endpoint Endpoint
	network  string
	state    State

	ln     conn.Listener
	peer   conn.Socket
	stream *stream.DataStream
}

// NewListener returns an unconnected handle. network selects the transport
// ("tcp4", "tcp6", "kcp4", "kcp6"); empty means tcp4.
func NewListener(endpoint Endpoint, network string) *Listener {
	if network == "" {
		network = "tcp4"
	}
	return &Listener{
		endpoint: endpoint,
		network:  network,
		state:    StateUnconnected,
	}
}

// Accept binds the endpoint and blocks until one peer connects. Bind
// failures surface as *conn.BindError, accept failures as
// *conn.ConnectionError; in both cases nothing is left bound and the
// listener stays unconnected.
func (l *Listener) Accept() error {
	if l.state != StateUnconnected {
		return errors.Errorf("listener is %s, accept not supported", l.state)
	}
	ln, err := conn.NewListener(l.network, l.endpoint.Host, l.endpoint.Port)
	if err != nil {
		return err
	}
	log.Info("Listening on %s (%s), waiting for a peer", l.endpoint.Addr(), l.network)
	peer, err := ln.Accept()
	if err != nil {
		_ = ln.Close()
		return err
	}
	l.ln = ln
	l.peer = peer
	l.stream = stream.NewDataStream(peer)
	l.state = StateConnected
	log.Info("Peer %s connected", peer.RemoteAddr())
	return nil
}

// GetStream returns the line stream over the accepted connection. It always
// returns the same stream; callers may grab it as often as they like.
// Nil until Accept has succeeded.
func (l *Listener) GetStream() *stream.DataStream {
	return l.stream
}

func (l *Listener) State() State {
	return l.state
}

// Close releases the stream, the peer socket and the listening socket, in
// that order. Every step is attempted even if an earlier one fails; the
// failures come back collected in a *conn.CloseError. Closing twice is a
// no-op.
func (l *Listener) Close() error {
	if l.state == StateClosed {
		return nil
	}
	l.state = StateClosed
	var steps []func() error
	if l.stream != nil {
		steps = append(steps, l.stream.Flush)
	}
	if l.peer != nil {
		steps = append(steps, l.peer.Close)
	}
	if l.ln != nil {
		steps = append(steps, l.ln.Close)
	}
	err := conn.CollectClose(steps...)
	if err != nil {
		log.Warn("Listener teardown reported: %s", err)
	}
	return err
}
