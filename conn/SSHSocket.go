package conn

import (
	"bufio"
	"net"
	"strconv"

	"golang.org/x/crypto/ssh"
)

// SSHSocket is a connector-side socket dialed through an SSH tunnel: the SSH
// session terminates on the remote host, which forwards to the target port.
// There is no SSH listener counterpart.
type SSHSocket struct {
	sshClient *ssh.Client
	socket    net.Conn
	reader    *bufio.Reader
	closeFlag bool
}

func (socket *SSHSocket) Close() error {
	socket.closeFlag = true
	return CollectClose(
		socket.socket.Close,
		socket.sshClient.Close,
	)
}

func (socket *SSHSocket) Write(p []byte) (n int, err error) {
	return socket.socket.Write(p)
}

func (socket *SSHSocket) Read(p []byte) (n int, err error) {
	return socket.socket.Read(p)
}

func (socket *SSHSocket) ReadLine() (data []byte, err error) {
	data, err = socket.reader.ReadBytes('\n')
	return
}

func (socket *SSHSocket) WriteLine(data []byte) (err error) {
	_, err = socket.socket.Write(append(data, '\n'))
	return
}

func (socket *SSHSocket) RemoteAddr() net.Addr {
	return socket.socket.RemoteAddr()
}

func (socket *SSHSocket) LocalAddr() net.Addr {
	return socket.socket.LocalAddr()
}

func (socket *SSHSocket) Address() (net.Addr, net.Addr) {
	return socket.socket.LocalAddr(), socket.socket.RemoteAddr()
}

// NewSSHSocket opens an SSH session to raddr's host on sshPort, then dials
// raddr through it. Host keys are not verified; the tunnel is a transport
// convenience, not an authentication boundary.
func NewSSHSocket(raddr *net.TCPAddr, network string, sshPort int, user string, auth []ssh.AuthMethod) (Socket, error) {
	sshAddr := net.JoinHostPort(raddr.IP.String(), strconv.Itoa(sshPort))
	sshClient, err := ssh.Dial(network, sshAddr, &ssh.ClientConfig{
		User:            user,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	})
	if err != nil {
		return nil, &ConnectionError{Op: "connect", Addr: sshAddr, Err: err}
	}
	tunneled, err := sshClient.Dial(network, raddr.String())
	if err != nil {
		_ = sshClient.Close()
		return nil, &ConnectionError{Op: "connect", Addr: raddr.String(), Err: err}
	}
	return &SSHSocket{
		sshClient: sshClient,
		socket:    tunneled,
		reader:    bufio.NewReader(tunneled),
		closeFlag: false,
	}, nil
}
