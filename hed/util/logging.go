package util

import (
	"go.uber.org/zap"
)

// InitLogger installs the process-wide zap logger. With debug enabled the
// development config prints DEBUG and above to the console, otherwise the
// production config logs structured JSON at INFO and above to stderr.
func InitLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}
