package dispatcher

import (
	"sort"
	"sync"

	"github.com/lxedit/lx/internal/input/prefix"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-operation counts keyed by operation name
	operations map[string]uint64

	// Global counters
	totalKeys       uint64
	totalOperations uint64
	noOps           uint64
	transitions     uint64

	// Prefix counters
	armed   map[prefix.Kind]uint64
	expired uint64
}

// OperationCount is the number of times one operation kind was produced.
type OperationCount struct {
	Name  string
	Count uint64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		operations: make(map[string]uint64),
		armed:      make(map[prefix.Kind]uint64),
	}
}

// RecordKey records one dispatched key and the name of the operation it
// produced, or "" for a no-op.
func (m *Metrics) RecordKey(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalKeys++
	if operation == "" {
		m.noOps++
		return
	}
	m.totalOperations++
	m.operations[operation]++
}

// RecordTransition records a mode change.
func (m *Metrics) RecordTransition() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions++
}

// RecordArm records a prefix being armed.
func (m *Metrics) RecordArm(kind prefix.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armed[kind]++
}

// RecordExpire records a prefix timing out.
func (m *Metrics) RecordExpire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expired++
}

// TotalKeys returns the number of dispatched keys.
func (m *Metrics) TotalKeys() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalKeys
}

// TotalOperations returns the number of keys that produced an operation.
func (m *Metrics) TotalOperations() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalOperations
}

// NoOps returns the number of keys that produced nothing.
func (m *Metrics) NoOps() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.noOps
}

// Transitions returns the number of mode changes.
func (m *Metrics) Transitions() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.transitions
}

// Armed returns how often kind was armed.
func (m *Metrics) Armed(kind prefix.Kind) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.armed[kind]
}

// Expired returns the number of prefix timeouts.
func (m *Metrics) Expired() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.expired
}

// Operation returns how often the named operation was produced.
func (m *Metrics) Operation(name string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.operations[name]
}

// TopOperations returns the n most frequent operations.
func (m *Metrics) TopOperations(n int) []OperationCount {
	m.mu.RLock()
	counts := make([]OperationCount, 0, len(m.operations))
	for name, c := range m.operations {
		counts = append(counts, OperationCount{Name: name, Count: c})
	}
	m.mu.RUnlock()

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	if n > 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.operations = make(map[string]uint64)
	m.armed = make(map[prefix.Kind]uint64)
	m.totalKeys = 0
	m.totalOperations = 0
	m.noOps = 0
	m.transitions = 0
	m.expired = 0
}
