package conn

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailablePort(t *testing.T) {
	port, err := GetAvailablePort("tcp4")
	require.NoError(t, err)
	assert.Greater(t, port, 0)

	_, err = GetAvailablePort("carrier-pigeon")
	assert.Error(t, err)
}

func TestNewTCPListener_AddrInUse(t *testing.T) {
	port, err := GetAvailablePort("tcp4")
	require.NoError(t, err)

	first, err := NewListener("tcp4", "127.0.0.1", port)
	require.NoError(t, err)
	defer first.Close()

	_, err = NewListener("tcp4", "127.0.0.1", port)
	require.Error(t, err)
	var bindErr *BindError
	assert.True(t, errors.As(err, &bindErr))
}

func TestNewTCPSocket_Refused(t *testing.T) {
	port, err := GetAvailablePort("tcp4")
	require.NoError(t, err)

	_, err = NewSocket("tcp4", "127.0.0.1", port, DialOptions{})
	require.Error(t, err)
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, "connect", connErr.Op)
}

func TestTCPSocket_LineRoundTrip(t *testing.T) {
	listener, err := NewListener("tcp4", "127.0.0.1", 0)
	require.NoError(t, err)
	defer listener.Close()

	accepted := make(chan Socket, 1)
	go func() {
		socket, err := listener.Accept()
		if err != nil {
			t.Errorf("accept failed: %v", err)
			close(accepted)
			return
		}
		accepted <- socket
	}()

	port := listener.Address().(*net.TCPAddr).Port
	dialed, err := NewSocket("tcp4", "127.0.0.1", port, DialOptions{})
	require.NoError(t, err)
	defer dialed.Close()

	peer, ok := <-accepted
	require.True(t, ok)
	defer peer.Close()

	require.NoError(t, dialed.WriteLine([]byte("ping")))
	data, err := peer.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ping\n", string(data))

	require.NoError(t, peer.WriteLine([]byte("pong")))
	data, err = dialed.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "pong\n", string(data))
}

func TestUnsupportedTypes(t *testing.T) {
	_, err := NewListener("ssh4", "127.0.0.1", 0)
	assert.Error(t, err)

	_, err = NewSocket("quic", "127.0.0.1", 1, DialOptions{})
	assert.Error(t, err)
}

func TestCollectClose_RunsEveryStep(t *testing.T) {
	var order []string
	err := CollectClose(
		func() error { order = append(order, "stream"); return errors.New("stream busted") },
		nil,
		func() error { order = append(order, "peer"); return nil },
		func() error { order = append(order, "listener"); return errors.New("listener busted") },
	)

	assert.Equal(t, []string{"stream", "peer", "listener"}, order)
	var closeErr *CloseError
	require.True(t, errors.As(err, &closeErr))
	assert.Len(t, closeErr.Errs, 2)
}

func TestCollectClose_AllClean(t *testing.T) {
	assert.NoError(t, CollectClose(func() error { return nil }))
	assert.NoError(t, CollectClose())
}
