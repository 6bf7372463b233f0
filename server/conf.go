package server

import (
	"tcplink/utils/log"
)

// Configurations for the server
var (
	BindAddr   string
	BindPort   int
	Network    string
	StunServer string
	LogFile    string
	LogWay     string
	LogLevel   string
	LogMaxDays int
)

// InitConf initializes the configurations
func InitConf() error {
	if Network == "" {
		Network = "tcp4"
	}
	log.InitLog(LogWay, LogFile, LogLevel, LogMaxDays)
	return nil
}
