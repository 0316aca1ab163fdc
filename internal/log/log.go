package log

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger диагностический журнал. По умолчанию ничего не пишет.
var Logger *zap.Logger = zap.NewNop()

// Initialize включает журнал с заданным уровнем. Пустой уровень оставляет журнал выключенным.
// При ошибке журнал также выключается.
func Initialize(level string) error {
	const op = "initializing logger"

	Logger = zap.NewNop()
	if level == "" {
		return nil
	}

	lvl, err := zap.ParseAtomicLevel(level)

	if err != nil {
		return errorf(op, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	logger, err := config.Build()

	if err != nil {
		return errorf(op, err)
	}

	Logger = logger
	return nil
}

// Sync сбрасывает буферы журнала.
func Sync() {
	_ = Logger.Sync()
}

func errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
