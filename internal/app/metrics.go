package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event loop counters. All methods are safe for concurrent
// use; the input poller records drops from its own goroutine.
type Metrics struct {
	// Key handling
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64
	inputMaxNs   atomic.Int64
	inputDropped atomic.Uint64

	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	// Prefix timer and keymap reloads
	prefixTimeouts atomic.Uint64
	keymapReloads  atomic.Uint64
	keymapRejects  atomic.Uint64

	startTime atomic.Int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.startTime.Store(time.Now().UnixNano())
	return m
}

// RecordInput records the time taken to dispatch and execute one key.
func (m *Metrics) RecordInput(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.inputCount.Add(1)
	m.inputTotalNs.Add(ns)

	for {
		old := m.inputMaxNs.Load()
		if ns <= old {
			break
		}
		if m.inputMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInputDropped records an input event dropped by a full queue.
func (m *Metrics) RecordInputDropped() {
	m.inputDropped.Add(1)
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordPrefixTimeout records a prefix dropped by its timer.
func (m *Metrics) RecordPrefixTimeout() {
	m.prefixTimeouts.Add(1)
}

// RecordKeymapReload records a keymap reload; accepted reports whether
// the new table replaced the old one.
func (m *Metrics) RecordKeymapReload(accepted bool) {
	if accepted {
		m.keymapReloads.Add(1)
	} else {
		m.keymapRejects.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	inputCount := m.inputCount.Load()
	renderCount := m.renderCount.Load()

	var avgInputNs int64
	if inputCount > 0 {
		avgInputNs = m.inputTotalNs.Load() / int64(inputCount)
	}

	var avgRenderNs int64
	if renderCount > 0 {
		avgRenderNs = m.renderTotalNs.Load() / int64(renderCount)
	}

	return MetricsSnapshot{
		Uptime:         time.Since(time.Unix(0, m.startTime.Load())),
		InputCount:     inputCount,
		AvgInputTimeNs: avgInputNs,
		MaxInputTimeNs: m.inputMaxNs.Load(),
		InputDropped:   m.inputDropped.Load(),
		RenderCount:    renderCount,
		AvgRenderNs:    avgRenderNs,
		PrefixTimeouts: m.prefixTimeouts.Load(),
		KeymapReloads:  m.keymapReloads.Load(),
		KeymapRejects:  m.keymapRejects.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.inputCount.Store(0)
	m.inputTotalNs.Store(0)
	m.inputMaxNs.Store(0)
	m.inputDropped.Store(0)
	m.renderCount.Store(0)
	m.renderTotalNs.Store(0)
	m.prefixTimeouts.Store(0)
	m.keymapReloads.Store(0)
	m.keymapRejects.Store(0)
	m.startTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	InputCount     uint64
	AvgInputTimeNs int64
	MaxInputTimeNs int64
	InputDropped   uint64
	RenderCount    uint64
	AvgRenderNs    int64
	PrefixTimeouts uint64
	KeymapReloads  uint64
	KeymapRejects  uint64
}

// DropRate returns the percentage of input events dropped.
func (s MetricsSnapshot) DropRate() float64 {
	total := s.InputCount + s.InputDropped
	if total == 0 {
		return 0
	}
	return float64(s.InputDropped) / float64(total) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop returns the elapsed time and resets the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
