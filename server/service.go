package server

import (
	"errors"
	"io"

	"github.com/thanhpk/randstr"

	"tcplink/conn"
	"tcplink/link"
	"tcplink/utils/log"
	"tcplink/utils/nat"
)

// Run waits for the one peer, then echoes every received line back until the
// peer hangs up. A session id ties the log lines of one connection together.
func Run() error {
	if StunServer != "" {
		if addr, err := nat.GetPublicAddr(StunServer); err != nil {
			log.Warn("Public address discovery failed: %s", err)
		} else {
			log.Info("Public address: %s", addr)
		}
	}

	listener := link.NewListener(link.Endpoint{Host: BindAddr, Port: BindPort}, Network)
	if err := listener.Accept(); err != nil {
		log.Error("Failed to establish link: %s", err)
		return err
	}
	defer func() {
		if err := listener.Close(); err != nil {
			log.Warn("Close reported: %s", err)
		}
	}()

	session := randstr.Hex(8)
	log.Info("Session [%s] established", session)

	s := listener.GetStream()
	for {
		line, err := s.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info("Session [%s] closed by peer", session)
				return nil
			}
			log.Error("Session [%s] read failed: %s", session, err)
			return err
		}
		log.Debug("Session [%s] received %q", session, line)
		if err := s.WriteLine(line); err != nil {
			log.Error("Session [%s] write failed: %s", session, err)
			return err
		}
	}
}

// IsBindFailure tells the cmd layer whether the failure was the address
// being taken, as opposed to anything that went wrong later.
func IsBindFailure(err error) bool {
	var bindErr *conn.BindError
	return errors.As(err, &bindErr)
}
