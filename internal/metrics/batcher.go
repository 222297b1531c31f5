package metrics

import (
	"context"
	"log/slog"
	"time"
)

// batcher buffers rows of one table and hands them to write either when
// threshold rows are pending or when the flush interval ticks.
type batcher[T any] struct {
	name      string
	ch        chan T
	threshold int
	write     func(ctx context.Context, batch []T) error
	logger    *slog.Logger
}

func newBatcher[T any](
	name string,
	bufferSize, threshold int,
	write func(ctx context.Context, batch []T) error,
	logger *slog.Logger,
) *batcher[T] {
	return &batcher[T]{
		name:      name,
		ch:        make(chan T, bufferSize),
		threshold: max(1, threshold),
		write:     write,
		logger:    logger,
	}
}

func (b *batcher[T]) add(m T) {
	select {
	case b.ch <- m:
	default:
		b.logger.Warn(b.name + " metrics buffer full, dropping metric")
	}
}

func (b *batcher[T]) run(ctx context.Context, interval time.Duration, shutdown <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, b.threshold)

	for {
		select {
		case <-ctx.Done():
			b.drain(batch)
			return
		case <-shutdown:
			b.drain(batch)
			return
		case m := <-b.ch:
			batch = append(batch, m)
			if len(batch) >= b.threshold {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (b *batcher[T]) drain(batch []T) {
	for {
		select {
		case m := <-b.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				b.flush(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (b *batcher[T]) flush(ctx context.Context, batch []T) {
	if len(batch) == 0 {
		return
	}
	if err := b.write(ctx, batch); err != nil {
		b.logger.Error("failed to write "+b.name+" metrics batch", slog.String("error", err.Error()))
	}
}
