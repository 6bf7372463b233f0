package link

import (
	"github.com/pkg/errors"

	"tcplink/conn"
	"tcplink/stream"
	"tcplink/utils/log"
)

// Connector actively opens the connection to a remote endpoint. Like
// Listener it is single use.
type Connector struct {
	endpoint Endpoint
	network  string
	opts     conn.DialOptions
	state    State

	peer   conn.Socket
	stream *stream.DataStream
}

// NewConnector returns an unconnected handle. network selects the transport
// ("tcp4", "tcp6", "kcp4", "kcp6", "ssh4", "ssh6"); empty means tcp4. SSH
// transports take their credentials from opts.
func NewConnector(endpoint Endpoint, network string, opts conn.DialOptions) *Connector {
	if network == "" {
		network = "tcp4"
	}
	return &Connector{
		endpoint: endpoint,
		network:  network,
		opts:     opts,
		state:    StateUnconnected,
	}
}

// Connect blocks until the connection is established or refused. Failure
// surfaces as *conn.ConnectionError and the connector stays unconnected;
// nothing is retried.
func (c *Connector) Connect() error {
	if c.state != StateUnconnected {
		return errors.Errorf("connector is %s, connect not supported", c.state)
	}
	peer, err := conn.NewSocket(c.network, c.endpoint.Host, c.endpoint.Port, c.opts)
	if err != nil {
		return err
	}
	c.peer = peer
	c.stream = stream.NewDataStream(peer)
	c.state = StateConnected
	log.Info("Connected to %s (%s)", c.endpoint.Addr(), c.network)
	return nil
}

// GetStream returns the line stream over the established connection, always
// the same one. Nil until Connect has succeeded.
func (c *Connector) GetStream() *stream.DataStream {
	return c.stream
}

func (c *Connector) State() State {
	return c.state
}

// Close releases the stream then the socket, attempting both regardless of
// failures, which come back collected in a *conn.CloseError. Closing twice
// is a no-op.
func (c *Connector) Close() error {
	if c.state == StateClosed {
		return nil
	}
	c.state = StateClosed
	var steps []func() error
	if c.stream != nil {
		steps = append(steps, c.stream.Flush)
	}
	if c.peer != nil {
		steps = append(steps, c.peer.Close)
	}
	err := conn.CollectClose(steps...)
	if err != nil {
		log.Warn("Connector teardown reported: %s", err)
	}
	return err
}
