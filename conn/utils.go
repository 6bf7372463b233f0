package conn

import (
	"fmt"
	"net"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"

	"tcplink/utils/consts"
)

// DialOptions carries the extras only some socket types need. Zero value is
// fine for tcp and kcp.
type DialOptions struct {
	LocalIP   string // consts.Auto lets the OS choose
	LocalPort int
	SSHPort   int
	SSHUser   string
	SSHAuth   []ssh.AuthMethod
}

// NewListener builds a bound, listening socket for the given network type.
// Supported types: tcp4, tcp6, kcp4, kcp6.
func NewListener(lType string, ip string, port int) (Listener, error) {
	switch strings.ToLower(lType) {
	case "tcp4":
		if ip == consts.Auto {
			ip = "0.0.0.0"
		}
		addr, err := net.ResolveTCPAddr("tcp4", fmt.Sprintf("%s:%d", ip, port))
		if err != nil {
			return nil, err
		}
		return NewTCPListener(addr, "tcp4")
	case "tcp6":
		if ip == consts.Auto {
			ip = "[::]"
		}
		addr, err := net.ResolveTCPAddr("tcp6", fmt.Sprintf("%s:%d", ip, port))
		if err != nil {
			return nil, err
		}
		return NewTCPListener(addr, "tcp6")
	case "kcp4":
		if ip == consts.Auto {
			ip = "0.0.0.0"
		}
		addr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf("%s:%d", ip, port))
		if err != nil {
			return nil, err
		}
		return NewKCPListener(addr)
	case "kcp6":
		if ip == consts.Auto {
			ip = "[::]"
		}
		addr, err := net.ResolveUDPAddr("udp6", fmt.Sprintf("%s:%d", ip, port))
		if err != nil {
			return nil, err
		}
		return NewKCPListener(addr)
	default:
		return nil, errors.New("unsupported listener type: " + lType)
	}
}

// NewSocket dials the remote address for the given network type.
// Supported types: tcp4, tcp6, kcp4, kcp6, ssh4, ssh6. SSH types require
// opts.SSHPort, opts.SSHUser and opts.SSHAuth.
func NewSocket(sType string, rip string, rport int, opts DialOptions) (Socket, error) {
	switch strings.ToLower(sType) {
	case "tcp4", "tcp6":
		network := "tcp4"
		if strings.HasSuffix(sType, "6") {
			network = "tcp6"
		}
		var laddr *net.TCPAddr
		if opts.LocalIP != "" && opts.LocalIP != consts.Auto {
			var err error
			laddr, err = net.ResolveTCPAddr(network, fmt.Sprintf("%s:%d", opts.LocalIP, opts.LocalPort))
			if err != nil {
				return nil, err
			}
		}
		raddr, err := net.ResolveTCPAddr(network, fmt.Sprintf("%s:%d", rip, rport))
		if err != nil {
			return nil, err
		}
		return NewTCPSocket(laddr, raddr, network)
	case "kcp4", "kcp6":
		network := "udp4"
		if strings.HasSuffix(sType, "6") {
			network = "udp6"
		}
		raddr, err := net.ResolveUDPAddr(network, fmt.Sprintf("%s:%d", rip, rport))
		if err != nil {
			return nil, err
		}
		return NewKCPSocket(raddr)
	case "ssh4", "ssh6":
		network := "tcp4"
		if strings.HasSuffix(sType, "6") {
			network = "tcp6"
		}
		raddr, err := net.ResolveTCPAddr(network, fmt.Sprintf("%s:%d", rip, rport))
		if err != nil {
			return nil, err
		}
		return NewSSHSocket(raddr, network, opts.SSHPort, opts.SSHUser, opts.SSHAuth)
	default:
		return nil, errors.New("unsupported socket type: " + sType)
	}
}

// GetAvailablePort asks the OS for a free port of the given listener type and
// releases it again. Racy by nature; good enough for tests and local tooling.
func GetAvailablePort(lType string) (port int, err error) {
	switch strings.ToLower(lType) {
	case "tcp4", "tcp6":
		network := "tcp4"
		wildcard := "0.0.0.0:0"
		if strings.HasSuffix(lType, "6") {
			network = "tcp6"
			wildcard = "[::]:0"
		}
		var addr *net.TCPAddr
		addr, err = net.ResolveTCPAddr(network, wildcard)
		if err != nil {
			return
		}
		var listener *net.TCPListener
		listener, err = net.ListenTCP(network, addr)
		if err != nil {
			return
		}
		port = listener.Addr().(*net.TCPAddr).Port
		err = listener.Close()
	case "udp4", "udp6":
		network := "udp4"
		wildcard := "0.0.0.0:0"
		if strings.HasSuffix(lType, "6") {
			network = "udp6"
			wildcard = "[::]:0"
		}
		var addr *net.UDPAddr
		addr, err = net.ResolveUDPAddr(network, wildcard)
		if err != nil {
			return
		}
		var pc *net.UDPConn
		pc, err = net.ListenUDP(network, addr)
		if err != nil {
			return
		}
		port = pc.LocalAddr().(*net.UDPAddr).Port
		err = pc.Close()
	default:
		err = errors.New("unsupported listener type: " + lType)
	}
	return
}
