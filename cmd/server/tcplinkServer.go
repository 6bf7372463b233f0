package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/vaughan0/go-ini"

	"tcplink/server"
	"tcplink/utils/common"
	"tcplink/utils/consts"
	"tcplink/utils/version"
)

var usage = `tcplinkServer waits for one peer and echoes its lines back.
Usage:
	tcplinkServer [options]

Options:
	-h --help                      Show help information in screen.
	--version                      Show version.
	-c --config-file=<config-file> Specify the config file path. [default: ./conf/server.ini]
	--bind-addr=<bind-addr>        Specify the address to bind.
	--bind-port=<bind-port>        Specify the port to bind.
	--network=<network>            Specify the network type. [options: tcp4, tcp6, kcp4, kcp6]
	--stun-server=<stun-server>    Discover the public address via this STUN server before listening.
	-l --log-file=<log-file>       Specify the path to the log file, or "console".
	--log-level=<log-level>        Specify the log level. [options: debug, info, warning, error] [default: info]
	--log-max-days=<log-max-days>  Specify the log max days. [default: 3]
`

func ParseArgs() map[string]interface{} {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version.GetVersion())
	if err != nil {
		fmt.Printf("Error during parsing arguments: %s\n", err.Error())
		return nil
	}
	args := make(map[string]interface{})
	for k, v := range opts {
		args[k] = v
	}
	return args
}

func LoadConf(confFile string, args map[string]interface{}) error {
	var conf ini.File
	if common.FileExists(confFile) {
		var err error
		conf, err = ini.LoadFile(confFile)
		if err != nil {
			return err
		}
	}

	// BindAddr
	if args["--bind-addr"] == nil {
		if tmpStr, ok := conf.Get("common", "BindAddr"); ok {
			args["--bind-addr"] = tmpStr
		} else {
			args["--bind-addr"] = consts.DefaultHost
		}
	}
	server.BindAddr = args["--bind-addr"].(string)

	// BindPort
	if args["--bind-port"] == nil {
		if tmpStr, ok := conf.Get("common", "BindPort"); ok {
			args["--bind-port"] = tmpStr
		} else {
			args["--bind-port"] = strconv.Itoa(consts.DefaultPort)
		}
	}
	port, err := strconv.Atoi(args["--bind-port"].(string))
	if err != nil {
		return err
	}
	server.BindPort = port

	// Network
	if args["--network"] == nil {
		if tmpStr, ok := conf.Get("common", "Network"); ok {
			args["--network"] = tmpStr
		} else {
			args["--network"] = "tcp4"
		}
	}
	server.Network = args["--network"].(string)

	// StunServer
	if args["--stun-server"] == nil {
		if tmpStr, ok := conf.Get("common", "StunServer"); ok {
			args["--stun-server"] = tmpStr
		} else {
			args["--stun-server"] = ""
		}
	}
	server.StunServer = args["--stun-server"].(string)

	// LogFile
	if args["--log-file"] == nil {
		if tmpStr, ok := conf.Get("common", "LogFile"); ok {
			args["--log-file"] = tmpStr
		} else {
			args["--log-file"] = "console"
		}
	}
	server.LogFile = args["--log-file"].(string)
	if server.LogFile == "console" {
		server.LogWay = "console"
	} else {
		server.LogWay = "file"
	}

	// LogLevel
	if tmpStr, ok := conf.Get("common", "LogLevel"); ok && args["--log-level"] == nil {
		args["--log-level"] = tmpStr
	}
	server.LogLevel = args["--log-level"].(string)

	// LogMaxDays
	if tmpStr, ok := conf.Get("common", "LogMaxDays"); ok && args["--log-max-days"] == nil {
		args["--log-max-days"] = tmpStr
	}
	server.LogMaxDays, err = strconv.Atoi(args["--log-max-days"].(string))
	if err != nil {
		return err
	}

	return nil
}

func main() {
	args := ParseArgs()

	err := LoadConf(args["--config-file"].(string), args)
	if err != nil {
		fmt.Printf("Error during loading configurations: %s\n", err.Error())
		os.Exit(1)
	}

	err = server.InitConf()
	if err != nil {
		fmt.Printf("Error during initializing configurations: %s\n", err.Error())
		os.Exit(1)
	}

	if err = server.Run(); err != nil {
		if server.IsBindFailure(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
