// Package nat discovers the address a peer behind NAT is reachable at, so a
// listener on a private network can tell its operator what to hand to the
// remote connector.
package nat

import (
	"net"

	"github.com/pion/stun"
	"github.com/pkg/errors"

	"tcplink/utils/log"
)

// GetPublicAddr sends a single binding request to the STUN server
// (host:port) and returns the XOR-MAPPED-ADDRESS the server saw.
func GetPublicAddr(stunServer string) (*net.UDPAddr, error) {
	client, err := stun.Dial("udp4", stunServer)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		_ = client.Close()
	}()

	request := stun.MustBuild(stun.TransactionID, stun.BindingRequest)

	var mapped *net.UDPAddr
	err = client.Do(request, func(res stun.Event) {
		if res.Error != nil {
			err = res.Error
			return
		}
		var xorAddr stun.XORMappedAddress
		if getErr := xorAddr.GetFrom(res.Message); getErr != nil {
			err = getErr
			return
		}
		mapped = &net.UDPAddr{IP: xorAddr.IP, Port: xorAddr.Port}
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if mapped == nil {
		return nil, errors.Errorf("no XOR-MAPPED-ADDRESS from %s", stunServer)
	}
	log.Debug("STUN %s reports public address %s", stunServer, mapped)
	return mapped, nil
}
