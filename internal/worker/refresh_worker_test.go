package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls atomic.Int32
	err   error
}

func (l *countingLoader) Load(ctx context.Context) error {
	l.calls.Add(1)
	return l.err
}

func TestNewRefreshWorker_Defaults(t *testing.T) {
	w := NewRefreshWorker(&countingLoader{}, nil, nil)
	assert.Equal(t, DefaultInterval, w.Interval())

	zero := time.Duration(0)
	w = NewRefreshWorker(&countingLoader{}, &zero, nil)
	assert.Equal(t, DefaultInterval, w.Interval())

	negative := -time.Second
	w = NewRefreshWorker(&countingLoader{}, &negative, nil)
	assert.Equal(t, DefaultInterval, w.Interval())

	custom := 3 * time.Second
	w = NewRefreshWorker(&countingLoader{}, &custom, nil)
	assert.Equal(t, custom, w.interval)
}

func TestRefreshWorker_StartRefreshesUntilCancel(t *testing.T) {
	loader := &countingLoader{}
	interval := 10 * time.Millisecond

	var mu sync.Mutex
	var results []error
	w := NewRefreshWorker(loader, &interval, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, err)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return loader.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start не завершился после отмены контекста")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, len(results), 3)
	for _, err := range results {
		assert.NoError(t, err)
	}
}

func TestRefreshWorker_RefreshReportsError(t *testing.T) {
	loader := &countingLoader{err: errors.New("boom")}

	var got error
	w := NewRefreshWorker(loader, nil, func(err error) { got = err })
	w.Refresh(context.Background())

	assert.EqualError(t, got, "boom")
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestRefreshWorker_RefreshSkippedAfterCancel(t *testing.T) {
	loader := &countingLoader{}
	called := false
	w := NewRefreshWorker(loader, nil, func(error) { called = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Refresh(ctx)

	assert.Zero(t, loader.calls.Load())
	assert.False(t, called)
}
