package client

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"

	"tcplink/conn"
	"tcplink/link"
	"tcplink/utils/log"
)

// Run connects to the server, forwards each stdin line and prints the echoed
// reply. EOF on stdin ends the session.
func Run() error {
	opts := conn.DialOptions{}
	if strings.HasPrefix(Network, "ssh") {
		opts.SSHPort = SSHPort
		opts.SSHUser = SSHUser
		opts.SSHAuth = []ssh.AuthMethod{ssh.Password(SSHPassword)}
	}

	connector := link.NewConnector(link.Endpoint{Host: ServerAddr, Port: ServerPort}, Network, opts)
	if err := connector.Connect(); err != nil {
		log.Error("Failed to establish link: %s", err)
		return err
	}
	defer func() {
		if err := connector.Close(); err != nil {
			log.Warn("Close reported: %s", err)
		}
	}()

	s := connector.GetStream()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := s.WriteLine(scanner.Text()); err != nil {
			log.Error("Write failed: %s", err)
			return err
		}
		reply, err := s.ReadLine()
		if err != nil {
			log.Error("Read failed: %s", err)
			return err
		}
		fmt.Println(reply)
	}
	return scanner.Err()
}
