package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vaughan0/go-ini"

	"tcplink/client"
	"tcplink/utils/common"
	"tcplink/utils/consts"
)

var usage = `tcplinkClient connects to a tcplinkServer and sends stdin lines.
Usage:
	tcplinkClient [options]

Options:
	-h --help                      Show help information in screen.
	--version                      Show version.
	-c --config-file=<config-file> Specify the config file path. [default: ./conf/client.ini]
	--server-addr=<server-addr>    Specify the server address.
	--server-port=<server-port>    Specify the server port.
	--network=<network>            Specify the network type. [options: tcp4, tcp6, kcp4, kcp6, ssh4, ssh6]
	--ssh-port=<ssh-port>          Specify the SSH port (ssh networks only). [default: 22]
	--ssh-user=<ssh-user>          Specify the SSH user (ssh networks only).
	--ssh-password=<ssh-password>  Specify the SSH password (ssh networks only).
	-l --log-file=<log-file>       Specify the path to the log file, or "console".
	--log-level=<log-level>        Specify the log level. [options: debug, info, warning, error] [default: info]
	--log-max-days=<log-max-days>  Specify the log max days. [default: 3]
`

func LoadConf(confFile string, args map[string]interface{}) error {
	var conf ini.File
	if common.FileExists(confFile) {
		var err error
		conf, err = ini.LoadFile(confFile)
		if err != nil {
			return err
		}
	}

	// ServerAddr
	if args["--server-addr"] == nil {
		if tmpStr, ok := conf.Get("common", "ServerAddr"); ok {
			args["--server-addr"] = tmpStr
		} else {
			args["--server-addr"] = consts.DefaultHost
		}
	}
	client.ServerAddr = args["--server-addr"].(string)

	// ServerPort
	if args["--server-port"] == nil {
		if tmpStr, ok := conf.Get("common", "ServerPort"); ok {
			args["--server-port"] = tmpStr
		} else {
			args["--server-port"] = strconv.Itoa(consts.DefaultPort)
		}
	}
	port, err := strconv.Atoi(args["--server-port"].(string))
	if err != nil {
		return err
	}
	client.ServerPort = port

	// Network
	if args["--network"] == nil {
		if tmpStr, ok := conf.Get("common", "Network"); ok {
			args["--network"] = tmpStr
		} else {
			args["--network"] = "tcp4"
		}
	}
	client.Network = args["--network"].(string)

	// SSHPort
	client.SSHPort, err = strconv.Atoi(args["--ssh-port"].(string))
	if err != nil {
		return err
	}

	// SSHUser
	if args["--ssh-user"] == nil {
		if tmpStr, ok := conf.Get("common", "SSHUser"); ok {
			args["--ssh-user"] = tmpStr
		} else {
			args["--ssh-user"] = ""
		}
	}
	client.SSHUser = args["--ssh-user"].(string)

	// SSHPassword
	if args["--ssh-password"] == nil {
		if tmpStr, ok := conf.Get("common", "SSHPassword"); ok {
			args["--ssh-password"] = tmpStr
		} else {
			args["--ssh-password"] = ""
		}
	}
	client.SSHPassword = args["--ssh-password"].(string)

	// LogFile
	if args["--log-file"] == nil {
		if tmpStr, ok := conf.Get("common", "LogFile"); ok {
			args["--log-file"] = tmpStr
		} else {
			args["--log-file"] = "console"
		}
	}
	client.LogFile = args["--log-file"].(string)
	if client.LogFile == "console" {
		client.LogWay = "console"
	} else {
		client.LogWay = "file"
	}

	// LogLevel
	client.LogLevel = args["--log-level"].(string)

	// LogMaxDays
	client.LogMaxDays, err = strconv.Atoi(args["--log-max-days"].(string))
	if err != nil {
		return err
	}

	return nil
}

func main() {
	args := common.ParseArgs(&usage)

	err := LoadConf(args["--config-file"].(string), args)
	if err != nil {
		fmt.Printf("Error during loading configurations: %s\n", err.Error())
		os.Exit(1)
	}

	err = client.InitConf()
	if err != nil {
		fmt.Printf("Error during initializing configurations: %s\n", err.Error())
		os.Exit(1)
	}

	if err = client.Run(); err != nil {
		os.Exit(1)
	}
}
