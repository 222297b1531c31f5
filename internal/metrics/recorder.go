package metrics

//go:generate go tool mockery

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"chaosshare/internal/config"
)

// Sink receives metric batches through COPY. *pgxpool.Pool satisfies it.
type Sink interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var (
	httpColumns     = []string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"}
	businessColumns = []string{"time", "metric_name", "value", "labels"}
	infraColumns    = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
		"shares_total", "shares_expired",
	}
)

// Recorder feeds metrics to Prometheus immediately and, when a sink is set,
// persists them in batches.
type Recorder struct {
	sink         Sink
	prom         *Prometheus
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *batcher[HTTPMetric]
	business     *batcher[BusinessMetric]
	infra        *batcher[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewRecorder accepts a nil sink or nil prom to disable that output.
func NewRecorder(sink Sink, prom *Prometheus, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		sink:       sink,
		prom:       prom,
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}
	r.http = newBatcher("http", cfg.BufferSize, cfg.FlushThreshold, r.writeHTTPBatch, logger)
	r.business = newBatcher("business", cfg.BufferSize, cfg.FlushThreshold, r.writeBusinessBatch, logger)
	r.infra = newBatcher("infra", cfg.BufferSize, cfg.FlushThreshold, r.writeInfraBatch, logger)
	return r
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	if r.prom != nil {
		r.prom.observeHTTP(m)
	}
	if r.sink != nil {
		r.http.add(m)
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.cfg.Enabled {
		return
	}
	m := BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}
	if r.prom != nil {
		r.prom.observeBusiness(m)
	}
	if r.sink != nil {
		r.business.add(m)
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.cfg.Enabled {
		return
	}
	if r.prom != nil {
		r.prom.observeInfra(m)
	}
	if r.sink != nil {
		r.infra.add(m)
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}
	if r.sink == nil {
		r.logger.Info("metrics persistence disabled, no sink configured")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go func() {
		defer r.wg.Done()
		r.http.run(ctx, flushInterval, r.shutdownCh)
	}()
	go func() {
		defer r.wg.Done()
		r.business.run(ctx, flushInterval, r.shutdownCh)
	}()
	go func() {
		defer r.wg.Done()
		r.infra.run(ctx, flushInterval, r.shutdownCh)
	}()

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) writeHTTPBatch(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}
	_, err := r.sink.CopyFrom(ctx, pgx.Identifier{"http_metrics"}, httpColumns, pgx.CopyFromRows(rows))
	return err
}

func (r *Recorder) writeBusinessBatch(ctx context.Context, batch []BusinessMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		labels := m.Labels
		if labels == nil {
			labels = map[string]string{}
		}
		labelsJSON, _ := json.Marshal(labels)
		rows[i] = []any{m.Time, m.MetricName, m.Value, labelsJSON}
	}
	_, err := r.sink.CopyFrom(ctx, pgx.Identifier{"business_metrics"}, businessColumns, pgx.CopyFromRows(rows))
	return err
}

func (r *Recorder) writeInfraBatch(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{
			m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
			m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
			m.SharesTotal, m.SharesExpired,
		}
	}
	_, err := r.sink.CopyFrom(ctx, pgx.Identifier{"infra_metrics"}, infraColumns, pgx.CopyFromRows(rows))
	return err
}
