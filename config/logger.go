package config

import "go.uber.org/zap"

var Log *zap.Logger

// InitLogger sets up the process-wide structured logger. Call before InitDB
// so connection failures are reported through it.
func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = logger
}
