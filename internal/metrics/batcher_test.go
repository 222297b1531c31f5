package metrics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type batchLog struct {
	mu      sync.Mutex
	batches [][]int
}

func (l *batchLog) write(_ context.Context, batch []int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.batches = append(l.batches, append([]int(nil), batch...))
	return nil
}

func (l *batchLog) snapshot() [][]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([][]int(nil), l.batches...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBatcher_FlushesOnInterval(t *testing.T) {
	log := &batchLog{}
	b := newBatcher("test", 10, 100, log.write, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.run(ctx, 10*time.Millisecond, nil)
		close(done)
	}()

	b.add(1)
	b.add(2)

	assert.Eventually(t, func() bool { return len(log.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1, 2}, log.snapshot()[0])

	cancel()
	<-done
}

func TestBatcher_DrainOnShutdown(t *testing.T) {
	log := &batchLog{}
	b := newBatcher("test", 10, 100, log.write, testLogger())

	for i := range 5 {
		b.add(i)
	}

	shutdown := make(chan struct{})
	close(shutdown)
	b.run(context.Background(), time.Hour, shutdown)

	var total int
	for _, batch := range log.snapshot() {
		total += len(batch)
	}
	assert.Equal(t, 5, total)
}

func TestBatcher_DropsWhenFull(t *testing.T) {
	log := &batchLog{}
	b := newBatcher("test", 2, 100, log.write, testLogger())

	b.add(1)
	b.add(2)
	b.add(3)

	b.drain(nil)
	assert.Equal(t, [][]int{{1, 2}}, log.snapshot())
}

func TestBatcher_WriteErrorIsLogged(t *testing.T) {
	b := newBatcher("test", 2, 1, func(context.Context, []int) error {
		return errors.New("copy failed")
	}, testLogger())

	b.add(1)
	assert.NotPanics(t, func() { b.drain(nil) })
}
