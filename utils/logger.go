package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Both loggers are usable before InitLogger runs, with logrus defaults.
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

func InitLogger() {
	ConfigureLogger("info", "text")
}

// ConfigureLogger builds both loggers. level is any logrus level name and only
// affects InfoLogger; ErrorLogger always stays at error level. format "json"
// switches to structured output, anything else uses the text formatter.
func ConfigureLogger(level, format string) {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(os.Stdout)
	ErrorLogger.SetOutput(os.Stderr)

	var formatter logrus.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if strings.EqualFold(format, "json") {
		formatter = &logrus.JSONFormatter{}
	}
	InfoLogger.SetFormatter(formatter)
	ErrorLogger.SetFormatter(formatter)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	InfoLogger.SetLevel(lvl)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}
