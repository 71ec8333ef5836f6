package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер.
// production - JSON-логгер zap, иначе development-логгер с указанным уровнем (info по умолчанию).
func initLogger(logLevel string) (*zap.Logger, error) {
	var cfg zap.Config

	if logLevel == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		if level, err := zap.ParseAtomicLevel(logLevel); err == nil {
			cfg.Level = level
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger.Named("storefront"), nil
}
