package dispatcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/lxedit/lx/internal/editor"
	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/input/prefix"
	"github.com/lxedit/lx/internal/operation"
)

// Dispatcher resolves key events into operations and applies them.
type Dispatcher struct {
	config  Config
	clock   func() time.Time
	log     Logger
	metrics *Metrics
}

// New creates a dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		config: config,
		clock:  config.Clock,
		log:    config.Logger,
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	if d.log == nil {
		d.log = nopLogger{}
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Metrics returns the metrics collector, or nil if metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch resolves ev against st and returns the resulting operation, or
// nil for a no-op. The event is always appended to the key history. Apart
// from history and prefix bookkeeping, st is not changed.
//
// Resolution order:
//
//  1. an armed prefix consumes ev and yields an operation or a sub-prefix;
//  2. a prefix trigger arms its prefix;
//  3. a global mode switch key;
//  4. the escape, accept and prompt keys of the current mode;
//  5. the table of the current mode.
func (d *Dispatcher) Dispatch(st *editor.State, ev key.Event) operation.Operation {
	st.History().Add(ev)
	op := d.resolve(st, ev)
	if d.metrics != nil {
		d.metrics.RecordKey(operationName(op))
	}
	return op
}

// Handle dispatches ev and executes the result.
func (d *Dispatcher) Handle(st *editor.State, ev key.Event) operation.Operation {
	op := d.Dispatch(st, ev)
	d.Execute(st, op)
	return op
}

// Expire drops an armed prefix whose deadline has passed and reports
// whether it did. The host calls it when the prefix timer fires.
func (d *Dispatcher) Expire(st *editor.State) bool {
	ps := st.Prefix()
	kind := ps.Kind()
	if !ps.Expire(d.clock()) {
		return false
	}
	d.log.Debug("prefix %s timed out", kind)
	if d.metrics != nil {
		d.metrics.RecordExpire()
	}
	return true
}

func (d *Dispatcher) resolve(st *editor.State, ev key.Event) operation.Operation {
	now := d.clock()
	ps := st.Prefix()

	if kind, ok := ps.Armed(now); ok {
		ps.Clear()
		out := prefix.Resolve(kind, ev)
		if out.Next != prefix.None {
			d.arm(st, out.Next, now)
			return nil
		}
		if out.Op != nil {
			d.log.Debug("prefix %s resolved %s to %s", kind, ev, out.Op)
		}
		return out.Op
	}
	d.Expire(st)

	table := st.Keymap()
	if kind, ok := prefix.Trigger(ev, table); ok {
		d.arm(st, kind, now)
		return nil
	}

	if to, ok := mode.GlobalTransition(ev, table); ok {
		return operation.SwitchMode{Mode: to}
	}

	current := st.Mode()
	if to, ok := mode.LocalTransition(current, ev); ok {
		return operation.SwitchMode{Mode: to}
	}

	switch current.Kind() {
	case mode.KindInsert:
		return insertTable(st, ev)
	case mode.KindEdit:
		return editTable(st, ev)
	case mode.KindCommand:
		return commandTable(st, ev)
	case mode.KindOverview:
		return overviewTable(st, ev)
	}
	return nil
}

func (d *Dispatcher) arm(st *editor.State, kind prefix.Kind, now time.Time) {
	st.Prefix().Arm(kind, now, st.PrefixTimeout())
	d.log.Debug("prefix %s armed", kind)
	if d.metrics != nil {
		d.metrics.RecordArm(kind)
	}
}

// operationName returns the type name of op, or "" for nil.
func operationName(op operation.Operation) string {
	if op == nil {
		return ""
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", op), "operation.")
}
