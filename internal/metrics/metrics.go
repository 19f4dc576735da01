package metrics

import (
	"sync"
	"time"
)

type opStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type storageStats struct {
	writes       int
	errors       int
	bytesWritten int64
}

type runStats struct {
	runs      int
	failures  int
	lastRunMS time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// storage writes, and crawl runs. It fronts otel instruments when telemetry
// is enabled and stays usable (and cheap) when it is not.
type Recorder struct {
	mu      sync.Mutex
	ops     map[string]*opStats
	storage storageStats
	runs    runStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		ops:  make(map[string]*opStats),
		otel: otel,
	}
}

// RecordProviderCall increments counters for a provider operation
// ("schedule" or "boxscore") and stores the last observed latency.
func (r *Recorder) RecordProviderCall(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.ops[op]
	if !ok {
		stats = &opStats{}
		r.ops[op] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderCall(op, duration, err)
	}
}

// RecordStorageWrite tracks one attempted object-store write and its payload size.
func (r *Recorder) RecordStorageWrite(bytes int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.storage.writes++
	if err != nil {
		r.storage.errors++
	} else {
		r.storage.bytesWritten += int64(bytes)
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStorageWrite(bytes, err)
	}
}

// RecordCrawlRun tracks one full crawl attempt.
func (r *Recorder) RecordCrawlRun(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.runs++
	r.runs.lastRunMS = duration
	if err != nil {
		r.runs.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCrawlRun(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for an operation.
func (r *Recorder) ProviderCalls(op string) int {
	return r.snapshotOp(op).calls
}

// ProviderErrors returns the total failed attempts recorded for an operation.
func (r *Recorder) ProviderErrors(op string) int {
	return r.snapshotOp(op).errors
}

// LastCallLatency returns the last recorded latency for an operation.
func (r *Recorder) LastCallLatency(op string) time.Duration {
	return r.snapshotOp(op).lastCallLatency
}

// StorageWrites returns the total writes attempted.
func (r *Recorder) StorageWrites() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storage.writes
}

// StorageErrors returns the total failed writes.
func (r *Recorder) StorageErrors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storage.errors
}

// BytesWritten returns the total payload bytes successfully written.
func (r *Recorder) BytesWritten() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storage.bytesWritten
}

// CrawlRuns returns the total crawl attempts recorded.
func (r *Recorder) CrawlRuns() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs.runs
}

// CrawlFailures returns the total failed crawl attempts recorded.
func (r *Recorder) CrawlFailures() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs.failures
}

func (r *Recorder) snapshotOp(op string) opStats {
	if r == nil {
		return opStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.ops[op]; ok && stats != nil {
		return *stats
	}
	return opStats{}
}
