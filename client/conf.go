package client

import (
	"tcplink/utils/log"
)

// Configurations for the client
var (
	ServerAddr  string
	ServerPort  int
	Network     string
	SSHPort     int
	SSHUser     string
	SSHPassword string
	LogFile     string
	LogWay      string
	LogLevel    string
	LogMaxDays  int
)

// InitConf initializes the configurations
func InitConf() error {
	if Network == "" {
		Network = "tcp4"
	}
	log.InitLog(LogWay, LogFile, LogLevel, LogMaxDays)
	return nil
}
