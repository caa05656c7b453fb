package loggerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
