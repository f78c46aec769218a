package kmpp

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    seedCounter    prometheus.Counter
//	    seedHistogram  prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSeed(k int, duration time.Duration, err error) {
//	    p.seedCounter.Inc()
//	    p.seedHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordSeed is called after each seeding.
	// k is the number of centroids requested, err is nil if successful.
	RecordSeed(k int, duration time.Duration, err error)

	// RecordConvergenceCheck is called after each convergence check.
	RecordConvergenceCheck(converged bool, duration time.Duration, err error)

	// RecordRestarts is called after each multi-restart seeding.
	RecordRestarts(restarts int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSeed(int, time.Duration, error)              {}
func (NoopMetricsCollector) RecordConvergenceCheck(bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordRestarts(int, time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SeedCount        atomic.Int64
	SeedErrors       atomic.Int64
	SeedCentroids    atomic.Int64
	SeedTotalNanos   atomic.Int64
	CheckCount       atomic.Int64
	CheckErrors      atomic.Int64
	CheckConverged   atomic.Int64
	CheckTotalNanos  atomic.Int64
	RestartsCount    atomic.Int64
	RestartsErrors   atomic.Int64
	RestartsSeedings atomic.Int64
}

// RecordSeed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSeed(k int, duration time.Duration, err error) {
	b.SeedCount.Add(1)
	b.SeedTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SeedErrors.Add(1)
		return
	}
	b.SeedCentroids.Add(int64(k))
}

// RecordConvergenceCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvergenceCheck(converged bool, duration time.Duration, err error) {
	b.CheckCount.Add(1)
	b.CheckTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CheckErrors.Add(1)
		return
	}
	if converged {
		b.CheckConverged.Add(1)
	}
}

// RecordRestarts implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRestarts(restarts int, duration time.Duration, err error) {
	b.RestartsCount.Add(1)
	b.RestartsSeedings.Add(int64(restarts))
	if err != nil {
		b.RestartsErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SeedCount:        b.SeedCount.Load(),
		SeedErrors:       b.SeedErrors.Load(),
		SeedCentroids:    b.SeedCentroids.Load(),
		SeedAvgNanos:     avgNanos(b.SeedTotalNanos.Load(), b.SeedCount.Load()),
		CheckCount:       b.CheckCount.Load(),
		CheckErrors:      b.CheckErrors.Load(),
		CheckConverged:   b.CheckConverged.Load(),
		CheckAvgNanos:    avgNanos(b.CheckTotalNanos.Load(), b.CheckCount.Load()),
		RestartsCount:    b.RestartsCount.Load(),
		RestartsErrors:   b.RestartsErrors.Load(),
		RestartsSeedings: b.RestartsSeedings.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SeedCount        int64
	SeedErrors       int64
	SeedCentroids    int64
	SeedAvgNanos     int64
	CheckCount       int64
	CheckErrors      int64
	CheckConverged   int64
	CheckAvgNanos    int64
	RestartsCount    int64
	RestartsErrors   int64
	RestartsSeedings int64
}
