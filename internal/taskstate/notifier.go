package taskstate

import (
	"taskManager/internal/logger"

	"go.uber.org/zap"
)

// Notifier показывает пользователю короткие уведомления
type Notifier interface {
	Success(msg string)
	Error(msg string, err error)
}

// LogNotifier пишет уведомления в лог
type LogNotifier struct{}

func (LogNotifier) Success(msg string) {
	logger.Info("Client: "+msg)
}

func (LogNotifier) Error(msg string, err error) {
	logger.Warn("Client: "+msg, zap.Error(err))
}
