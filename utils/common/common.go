package common

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"

	"tcplink/utils/version"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

func ParseArgs(usage *string) map[string]interface{} {
	opts, err := docopt.ParseArgs(*usage, os.Args[1:], version.GetVersion())
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
