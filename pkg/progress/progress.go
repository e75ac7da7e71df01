// Package progress implements the atomic counters both pipelines increment
// on every emitted or indexed record (C8). It never blocks the pipeline:
// reporting is a best-effort side channel sampled by an optional observer.
package progress

import (
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/aquasecurity/sbomconv/internal/slogx"
)

var log = slogx.New("progress")

// Counters holds the two monotonic counters named in spec.md §4.7.
type Counters struct {
	Elements      atomic.Int64
	Relationships atomic.Int64
}

// Snapshot is a point-in-time read of Counters.
type Snapshot struct {
	Elements      int64
	Relationships int64
}

// Sink is what the pipelines hold and increment. It is safe to read from
// another goroutine concurrently with the single writer pipeline.
type Sink struct {
	counters Counters
	every    int64
	report   func(Snapshot)
}

// New builds a Sink that calls report every n increments of either counter
// (n <= 0 disables the throughput line entirely; report may be nil).
func New(n int64, report func(Snapshot)) *Sink {
	return &Sink{every: n, report: report}
}

// IncElement increments the element counter and, every N increments, may
// emit a throughput line.
func (s *Sink) IncElement() {
	v := s.counters.Elements.Add(1)
	s.maybeReport(v)
}

// IncRelationship increments the relationship counter and, every N
// increments, may emit a throughput line.
func (s *Sink) IncRelationship() {
	v := s.counters.Relationships.Add(1)
	s.maybeReport(v)
}

func (s *Sink) maybeReport(v int64) {
	if s.every <= 0 || s.report == nil || v%s.every != 0 {
		return
	}
	s.report(s.Snapshot())
}

// Snapshot reads both counters at once. The two reads are not atomic with
// respect to each other, which is fine: this is a rate report, not an
// invariant check.
func (s *Sink) Snapshot() Snapshot {
	return Snapshot{
		Elements:      s.counters.Elements.Load(),
		Relationships: s.counters.Relationships.Load(),
	}
}

// Reporter optionally drives a human-readable progress bar from a Sink,
// sampled on a timer from a goroutine the caller starts and stops. The bar
// is purely an observer: it never gates the pipeline's writes.
type Reporter struct {
	sink *Sink
	bar  *pb.ProgressBar
	stop chan struct{}
}

// NewReporter attaches a textual pb/v3 bar to sink, tracking elements
// processed. total <= 0 means the element count is unknown ahead of time and
// the bar runs in spinner/throughput mode instead of a percentage bar.
func NewReporter(sink *Sink, total int64) *Reporter {
	var bar *pb.ProgressBar
	if total > 0 {
		bar = pb.New64(total)
	} else {
		bar = pb.New64(0)
		bar.Set(pb.Bytes, false)
	}
	bar.SetTemplateString(`{{counters . }} elements {{speed . }} {{rtime . "%s left"}}`)
	return &Reporter{sink: sink, bar: bar, stop: make(chan struct{})}
}

// Start begins sampling the sink every interval until Stop is called.
func (r *Reporter) Start(interval time.Duration) {
	r.bar.Start()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.bar.SetCurrent(r.sink.Snapshot().Elements)
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop finalizes the bar and stops the sampling goroutine.
func (r *Reporter) Stop() {
	close(r.stop)
	r.bar.SetCurrent(r.sink.Snapshot().Elements)
	r.bar.Finish()
}

// LogRate logs a single throughput snapshot at Info level, used by the
// default report callback passed to New.
func LogRate(s Snapshot) {
	log.Info("conversion progress", "elements", s.Elements, "relationships", s.Relationships)
}
