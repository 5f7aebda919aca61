package logging

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

const EnvLocal = "local"
const logFile string = "drivedl.log"

func getLoggerObject() *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder

	handleSync, _, err := zap.Open(logFile)
	if err != nil {
		log.Println("Cannot open log file for zap :", zap.Error(err),
			zap.String("logFile", logFile),
		)
	}

	logger := zap.New(
		zapcore.NewTee(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), os.Stderr, zap.InfoLevel),
			zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), handleSync, zap.DebugLevel),
		),
		zap.AddCaller(),
	)

	defer func(logger *zap.Logger) {
		err = logger.Sync()
		if err != nil {
			logger.Info("Error while syncing logger", zap.Error(err))
		}
	}(logger)

	return logger
}

func GetLogger() *zap.Logger {
	if Logger == nil {
		Logger = getLoggerObject()
	}

	return Logger
}
