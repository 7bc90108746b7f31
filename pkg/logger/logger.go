package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. It is the default for servers built without
// an explicit logger, e.g. in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a logger for the given application environment: human readable
// development output for "local" or an empty env, JSON otherwise.
func New(appEnv string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if appEnv == "" || appEnv == "local" {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar().With("env", appEnv), nil
}
