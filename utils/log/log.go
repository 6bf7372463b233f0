package log

import (
	"fmt"

	"github.com/astaxie/beego/logs"
)

// Log is the shared logger. Packages call the package-level helpers below;
// the cmd entrypoints configure it once via InitLog.
var Log *logs.BeeLogger

func init() {
	Log = logs.NewLogger(200)
	Log.EnableFuncCallDepth(true)
	Log.SetLogFuncCallDepth(5)
	SetLogFile("console", "", 0)
}

func InitLog(logWay string, logFile string, logLevel string, maxdays int) {
	SetLogFile(logWay, logFile, maxdays)
	SetLogLevel(logLevel)
}

// SetLogFile directs output to the console or a file. logWay is "console"
// or "file"; logFile is only used for "file".
func SetLogFile(logWay string, logFile string, maxdays int) {
	if logWay == "console" {
		_ = Log.SetLogger("console", "")
	} else {
		params := fmt.Sprintf(`{"filename": "%s", "maxdays": %d}`, logFile, maxdays)
		_ = Log.SetLogger("file", params)
	}
}

func SetLogLevel(logLevel string) {
	level := 4 // warning
	switch logLevel {
	case "error":
		level = 3
	case "warn", "warning":
		level = 4
	case "info":
		level = 6
	case "debug":
		level = 7
	default:
		level = 6
	}
	Log.SetLevel(level)
}

func Error(format string, v ...interface{}) {
	Log.Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	Log.Warn(format, v...)
}

func Info(format string, v ...interface{}) {
	Log.Info(format, v...)
}

func Debug(format string, v ...interface{}) {
	Log.Debug(format, v...)
}
