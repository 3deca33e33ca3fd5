// Package profiler times the stages of a pipeline run and reports the
// totals once the run is over.
package profiler

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"
)

// Profiler accumulates wall-clock timings per named operation.
//
// All methods are safe on a nil *Profiler, so pipelines can call them
// unconditionally and callers opt in by passing a non-nil profiler.
type Profiler struct {
	mu        sync.Mutex
	startTime time.Time
	order     []string

	operationTimes map[string]*TimeTracker
}

// TimeTracker tracks timing statistics for one operation name.
type TimeTracker struct {
	name      string
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// OperationStats is a snapshot of one TimeTracker.
type OperationStats struct {
	Name  string
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Avg returns the mean duration of the operation.
func (s OperationStats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// New creates an empty profiler whose uptime starts now.
func New() *Profiler {
	return &Profiler{
		startTime:      time.Now(),
		operationTimes: make(map[string]*TimeTracker),
	}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
//
// @example
// stop := p.StartOperation("resize")
// defer stop()
func (p *Profiler) StartOperation(name string) func() {
	if p == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.recordOperationTime(name, time.Since(start))
	}
}

// recordOperationTime records the completion time of an operation.
func (p *Profiler) recordOperationTime(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.operationTimes[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		p.operationTimes[name] = tracker
		p.order = append(p.order, name)
	}

	tracker.totalTime += duration
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// Stats returns the operations in the order they were first recorded.
func (p *Profiler) Stats() []OperationStats {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]OperationStats, 0, len(p.order))
	for _, name := range p.order {
		t := p.operationTimes[name]
		out = append(out, OperationStats{
			Name:  t.name,
			Count: t.count,
			Total: t.totalTime,
			Min:   t.minTime,
			Max:   t.maxTime,
		})
	}
	return out
}

// Slowest returns up to n operations ordered by total time, longest first.
func (p *Profiler) Slowest(n int) []OperationStats {
	stats := p.Stats()
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// Report writes the operation timings and a memory summary to w.
func (p *Profiler) Report(w io.Writer) {
	if p == nil {
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Fprintf(w, "\n⏱️  Timings (%v total)\n", time.Since(p.startTime).Truncate(time.Millisecond))
	for _, s := range p.Stats() {
		if s.Count == 1 {
			fmt.Fprintf(w, "   %-28s %v\n", s.Name, s.Total.Truncate(time.Microsecond))
			continue
		}
		fmt.Fprintf(w, "   %-28s total=%v avg=%v min=%v max=%v count=%d\n",
			s.Name,
			s.Total.Truncate(time.Microsecond),
			s.Avg().Truncate(time.Microsecond),
			s.Min.Truncate(time.Microsecond),
			s.Max.Truncate(time.Microsecond),
			s.Count)
	}
	fmt.Fprintf(w, "   %-28s %s (total alloc %s)\n", "heap", formatBytes(mem.HeapAlloc), formatBytes(mem.TotalAlloc))
}

// formatBytes formats byte counts in human-readable format.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
