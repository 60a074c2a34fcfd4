package worker

import (
	"context"
	"taskManager/internal/logger"
	"time"

	"go.uber.org/zap"
)

const DefaultInterval = 10 * time.Second

// Loader - то, что умеет перечитать список задач (taskstate.Store)
type Loader interface {
	Load(ctx context.Context) error
}

// RefreshWorker периодически перечитывает список задач с сервера
type RefreshWorker struct {
	loader    Loader
	interval  time.Duration
	onRefresh func(err error)
}

func NewRefreshWorker(loader Loader, interval *time.Duration, onRefresh func(err error)) *RefreshWorker {
	intervalToSet := DefaultInterval
	if interval != nil && *interval > 0 {
		intervalToSet = *interval
	}
	return &RefreshWorker{
		loader:    loader,
		interval:  intervalToSet,
		onRefresh: onRefresh,
	}
}

// Interval - период, с которым реально идут обновления
func (w *RefreshWorker) Interval() time.Duration {
	return w.interval
}

// Start блокируется до отмены ctx. Первое обновление - сразу.
func (w *RefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Refresh(ctx)
	for {
		select {
		case <-ticker.C:
			w.Refresh(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновое обновление останавливается")
			return
		}
	}
}

func (w *RefreshWorker) Refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()

	err := w.loader.Load(ctx)
	if err != nil {
		logger.Warn("Worker: ошибка обновления задач", zap.Error(err))
	} else {
		logger.Debug("Worker: Задачи обновлены", zap.Duration("ms", time.Since(start)))
	}

	if w.onRefresh != nil && ctx.Err() == nil {
		w.onRefresh(err)
	}
}
