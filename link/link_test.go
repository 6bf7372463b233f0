package link

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcplink/conn"
)

func TestEndpoint_Defaults(t *testing.T) {
	ep := DefaultEndpoint()
	assert.Equal(t, "127.0.0.1:3000", ep.Addr())
}

func TestLink_EndToEnd(t *testing.T) {
	port, err := conn.GetAvailablePort("tcp4")
	require.NoError(t, err)
	ep := Endpoint{Host: "127.0.0.1", Port: port}

	listener := NewListener(ep, "tcp4")
	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- listener.Accept()
	}()

	// Give the listener a moment to bind before dialing.
	time.Sleep(100 * time.Millisecond)

	connector := NewConnector(ep, "tcp4", conn.DialOptions{})
	require.NoError(t, connector.Connect())
	require.NoError(t, <-acceptErr)

	assert.Equal(t, StateConnected, listener.State())
	assert.Equal(t, StateConnected, connector.State())

	// GetStream is idempotent: always the same view over the same connection.
	assert.Same(t, listener.GetStream(), listener.GetStream())
	assert.Same(t, connector.GetStream(), connector.GetStream())

	require.NoError(t, connector.GetStream().WriteLine("hello"))
	line, err := listener.GetStream().ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	require.NoError(t, listener.GetStream().WriteLine("hello back"))
	line, err = connector.GetStream().ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello back", line)

	assert.NoError(t, listener.Close())
	assert.NoError(t, connector.Close())
	assert.Equal(t, StateClosed, listener.State())
	assert.Equal(t, StateClosed, connector.State())

	// A second close must not blow up.
	assert.NoError(t, listener.Close())
	assert.NoError(t, connector.Close())
}

func TestLink_EndToEndKCP(t *testing.T) {
	port, err := conn.GetAvailablePort("udp4")
	require.NoError(t, err)
	ep := Endpoint{Host: "127.0.0.1", Port: port}

	listener := NewListener(ep, "kcp4")
	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- listener.Accept()
	}()
	time.Sleep(100 * time.Millisecond)

	connector := NewConnector(ep, "kcp4", conn.DialOptions{})
	require.NoError(t, connector.Connect())

	// KCP has no connect handshake; the first line is what makes the
	// listener side accept.
	require.NoError(t, connector.GetStream().WriteLine("over kcp"))
	require.NoError(t, <-acceptErr)

	line, err := listener.GetStream().ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "over kcp", line)

	assert.NoError(t, connector.Close())
	assert.NoError(t, listener.Close())
}

func TestListener_BindErrorWhenPortTaken(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()
	port := occupied.Addr().(*net.TCPAddr).Port

	listener := NewListener(Endpoint{Host: "127.0.0.1", Port: port}, "tcp4")
	err = listener.Accept()
	require.Error(t, err)

	var bindErr *conn.BindError
	assert.True(t, errors.As(err, &bindErr))
	assert.Equal(t, StateUnconnected, listener.State())
	assert.Nil(t, listener.GetStream())
}

func TestConnector_ConnectionErrorWhenRefused(t *testing.T) {
	port, err := conn.GetAvailablePort("tcp4")
	require.NoError(t, err)

	connector := NewConnector(Endpoint{Host: "127.0.0.1", Port: port}, "tcp4", conn.DialOptions{})
	err = connector.Connect()
	require.Error(t, err)

	var connErr *conn.ConnectionError
	assert.True(t, errors.As(err, &connErr))
	assert.Equal(t, StateUnconnected, connector.State())
	assert.Nil(t, connector.GetStream())
}

func TestLink_SingleUse(t *testing.T) {
	port, err := conn.GetAvailablePort("tcp4")
	require.NoError(t, err)
	ep := Endpoint{Host: "127.0.0.1", Port: port}

	listener := NewListener(ep, "tcp4")
	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- listener.Accept()
	}()
	time.Sleep(100 * time.Millisecond)

	connector := NewConnector(ep, "tcp4", conn.DialOptions{})
	require.NoError(t, connector.Connect())
	require.NoError(t, <-acceptErr)

	// Established components refuse a second establish call.
	assert.Error(t, listener.Accept())
	assert.Error(t, connector.Connect())

	require.NoError(t, listener.Close())
	require.NoError(t, connector.Close())

	// So do closed ones.
	assert.Error(t, listener.Accept())
	assert.Error(t, connector.Connect())
}

func TestClose_BeforeEstablish(t *testing.T) {
	listener := NewListener(DefaultEndpoint(), "")
	assert.NoError(t, listener.Close())
	assert.Equal(t, StateClosed, listener.State())

	connector := NewConnector(DefaultEndpoint(), "", conn.DialOptions{})
	assert.NoError(t, connector.Close())
	assert.Equal(t, StateClosed, connector.State())
}
