// Package logger — тонкая обертка над zap: окружение выбирает конфиг,
// уровень задается строкой из конфигурации.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Zap struct {
	*zap.Logger
}

func New(env, level string) (*Zap, error) {
	var cfg zap.Config
	if env == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &Zap{Logger: log}, nil
}

// Nop возвращает логгер, который ничего не пишет. Используется в тестах.
func Nop() *Zap {
	return &Zap{Logger: zap.NewNop()}
}
