package dispatcher_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/lxedit/lx/internal/dispatcher"
	"github.com/lxedit/lx/internal/editor"
	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/input/prefix"
	"github.com/lxedit/lx/internal/operation"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debug(msg string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

var (
	esc       = key.Special(key.KeyEscape)
	enter     = key.Special(key.KeyEnter)
	backspace = key.Special(key.KeyBackspace)
	tab       = key.Special(key.KeyTab)
	backtab   = key.NewSpecialEvent(key.KeyTab, key.ModShift)
	leader    = key.Ctrl(' ')
	quit      = key.Ctrl('q')
)

type harness struct {
	t     *testing.T
	d     *dispatcher.Dispatcher
	st    *editor.State
	clock *fakeClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	d := dispatcher.New(dispatcher.DefaultConfig().WithClock(clock.Now).WithMetrics())
	return &harness{t: t, d: d, st: editor.New(editor.DefaultOptions()), clock: clock}
}

func (h *harness) press(events ...key.Event) {
	h.t.Helper()
	for _, ev := range events {
		h.d.Handle(h.st, ev)
	}
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		h.press(key.Rune(r))
	}
}

func (h *harness) edit() {
	h.t.Helper()
	h.press(esc)
	if !h.st.Mode().Is(mode.KindEdit) {
		h.t.Fatalf("Mode() = %v, want edit", h.st.Mode())
	}
}

func TestInsertText(t *testing.T) {
	h := newHarness(t)
	h.typeText("abc")

	if got := h.st.Registry().Active().Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
}

func TestInsertQuit(t *testing.T) {
	h := newHarness(t)
	h.press(quit)

	if !h.st.Quit() {
		t.Error("Quit() = false, want true")
	}
}

func TestEditCreateBuffer(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Rune('c'))

	reg := h.st.Registry()
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if reg.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", reg.ActiveIndex())
	}
}

func TestLeaderDigit(t *testing.T) {
	tests := []struct {
		name    string
		buffers int
		digit   rune
		want    int
	}{
		{"existing", 2, '2', 1},
		{"first", 3, '1', 0},
		{"missing", 1, '2', 0},
		{"out of range", 2, '9', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.edit()
			for i := 1; i < tt.buffers; i++ {
				h.press(key.Rune('c'))
			}
			h.press(leader)
			h.clock.Advance(500 * time.Millisecond)
			h.press(key.Rune(tt.digit))

			if got := h.st.Registry().ActiveIndex(); got != tt.want {
				t.Errorf("ActiveIndex() = %d, want %d", got, tt.want)
			}
			if got := h.st.Prefix().Kind(); got != prefix.None {
				t.Errorf("Prefix().Kind() = %v, want None", got)
			}
		})
	}
}

func TestCommandQuit(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Rune(':'))
	if !h.st.Mode().Is(mode.KindCommand) {
		t.Fatalf("Mode() = %v, want command", h.st.Mode())
	}

	h.typeText("quit")
	if got := h.st.Mode().CommandLine(); got != "quit" {
		t.Errorf("CommandLine() = %q, want %q", got, "quit")
	}
	h.press(enter)

	if !h.st.Quit() {
		t.Error("Quit() = false, want true")
	}
	if !h.st.Mode().Is(mode.KindEdit) {
		t.Errorf("Mode() = %v, want edit", h.st.Mode())
	}
}

func TestPrefixTimeout(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(leader)
	if h.st.Prefix().Kind() != prefix.Leader {
		t.Fatalf("Prefix().Kind() = %v, want Leader", h.st.Prefix().Kind())
	}

	h.clock.Advance(999 * time.Millisecond)
	if h.d.Expire(h.st) {
		t.Error("Expire() before deadline = true, want false")
	}

	h.clock.Advance(2 * time.Millisecond)
	if !h.d.Expire(h.st) {
		t.Error("Expire() after deadline = false, want true")
	}
	if h.st.Prefix().Kind() != prefix.None {
		t.Errorf("Prefix().Kind() = %v, want None", h.st.Prefix().Kind())
	}

	h.press(key.Rune('c'))
	if got := h.st.Registry().Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestLateKeyDispatchedNormally(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(leader)
	h.clock.Advance(1500 * time.Millisecond)

	h.press(key.Rune('c'), leader)
	h.clock.Advance(1000 * time.Millisecond)
	op := h.d.Dispatch(h.st, key.Rune('c'))

	if _, ok := op.(operation.CreateBuffer); !ok {
		t.Errorf("Dispatch() = %v, want CreateBuffer", op)
	}
	if h.st.Prefix().Kind() != prefix.None {
		t.Errorf("Prefix().Kind() = %v, want None", h.st.Prefix().Kind())
	}
}

func TestPrefixCapturesNextKey(t *testing.T) {
	tests := []struct {
		name string
		ev   key.Event
		mode mode.Kind
	}{
		{"escape", esc, mode.KindEdit},
		{"global switch", key.Ctrl('v'), mode.KindEdit},
		{"unbound", key.Rune('z'), mode.KindEdit},
		{"trigger", key.Ctrl('e'), mode.KindEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.edit()
			h.press(leader)

			op := h.d.Dispatch(h.st, tt.ev)
			if op != nil {
				t.Errorf("Dispatch() = %v, want nil", op)
			}
			if h.st.Prefix().Kind() != prefix.None {
				t.Errorf("Prefix().Kind() = %v, want None", h.st.Prefix().Kind())
			}
			if !h.st.Mode().Is(tt.mode) {
				t.Errorf("Mode() = %v, want %v", h.st.Mode(), tt.mode)
			}
		})
	}
}

func TestPrefixInInsertDoesNotInsert(t *testing.T) {
	h := newHarness(t)
	h.press(leader, key.Rune('x'))

	if got := h.st.Registry().Active().Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
	h.press(key.Rune('x'))
	if got := h.st.Registry().Active().Text(); got != "x" {
		t.Errorf("Text() = %q, want %q", got, "x")
	}
}

func TestSubPrefix(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Rune('c'), key.Rune('c'))

	h.press(leader, key.Rune('b'))
	if h.st.Prefix().Kind() != prefix.Buffer {
		t.Fatalf("Prefix().Kind() = %v, want Buffer", h.st.Prefix().Kind())
	}

	h.clock.Advance(900 * time.Millisecond)
	h.press(key.Rune('n'))
	if got := h.st.Registry().ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex() = %d, want 0", got)
	}
	if h.st.Prefix().Kind() != prefix.None {
		t.Errorf("Prefix().Kind() = %v, want None", h.st.Prefix().Kind())
	}
}

func TestSubPrefixFreshDeadline(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(leader)
	h.clock.Advance(900 * time.Millisecond)
	h.press(key.Rune('b'))
	h.clock.Advance(900 * time.Millisecond)

	if _, ok := h.st.Prefix().Armed(h.clock.Now()); !ok {
		t.Error("sub-prefix expired with the parent deadline")
	}
}

func TestBufferPrefix(t *testing.T) {
	h := newHarness(t)
	h.edit()

	h.press(key.Ctrl('e'), key.Rune('c'))
	if got := h.st.Registry().Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	h.press(key.Ctrl('e'), key.Rune('p'))
	if got := h.st.Registry().ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex() = %d, want 0", got)
	}
	h.press(key.Ctrl('e'), key.Rune('d'))
	if got := h.st.Registry().Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestSearchPrefix(t *testing.T) {
	h := newHarness(t)
	h.typeText("hello world")
	h.edit()
	h.st.Registry().Active().SetCursor(0)

	h.press(key.Ctrl('s'), key.Rune('w'))
	if got := h.st.Registry().Active().Cursor(); got != 6 {
		t.Errorf("Cursor() = %d, want 6", got)
	}

	h.press(key.Ctrl('s'), key.NewRuneEvent('h', key.ModAlt))
	if got := h.st.Registry().Active().Cursor(); got != 0 {
		t.Errorf("Cursor() = %d, want 0", got)
	}
}

func TestRequestPrefixes(t *testing.T) {
	tests := []struct {
		name    string
		trigger key.Event
		r       rune
		want    string
	}{
		{"find files", key.Ctrl('f'), 'f', operation.RequestFindFiles},
		{"new tab", key.Ctrl('\\'), 'c', operation.RequestTabNew},
		{"vertical split", key.Ctrl('w'), 'v', operation.RequestSplitVertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.edit()
			h.press(tt.trigger, key.Rune(tt.r))

			if got := h.st.TakeRequest(); got != tt.want {
				t.Errorf("TakeRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTabPrefixOverviewPane(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Ctrl('\\'), key.Rune('o'))

	m := h.st.Mode()
	if !m.Is(mode.KindOverview) || m.Pane() != mode.PaneTabs {
		t.Errorf("Mode() = %v pane %v, want overview pane tabs", m, m.Pane())
	}

	h.press(key.Ctrl('f'), key.Rune('b'))
	if got := h.st.Mode().Pane(); got != mode.PaneBuffers {
		t.Errorf("Pane() = %v, want %v", got, mode.PaneBuffers)
	}
}

func TestBackspaceRoundTrip(t *testing.T) {
	h := newHarness(t)
	h.typeText("abc")
	h.press(backspace, backspace, backspace)

	if got := h.st.Registry().Active().Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
	h.press(backspace)
	if got := h.st.Registry().Active().Text(); got != "" {
		t.Errorf("Text() after extra backspace = %q, want empty", got)
	}
}

func TestBackspaceRemovesOneKeystroke(t *testing.T) {
	h := newHarness(t)
	h.typeText("x")
	h.press(key.Rune('e'), key.Rune('\u0301'))
	if got := h.st.Registry().Active().Text(); got != "xe\u0301" {
		t.Fatalf("Text() = %q, want %q", got, "xe\u0301")
	}

	h.press(backspace)
	if got := h.st.Registry().Active().Text(); got != "xe" {
		t.Errorf("Text() after one backspace = %q, want %q", got, "xe")
	}
	h.press(backspace)
	if got := h.st.Registry().Active().Text(); got != "x" {
		t.Errorf("Text() after two backspaces = %q, want %q", got, "x")
	}
}

func TestInsertSpecialKeys(t *testing.T) {
	h := newHarness(t)
	h.typeText("ab")
	h.press(enter, tab)
	h.press(key.NewRuneEvent('c', key.ModShift))

	if got := h.st.Registry().Active().Text(); got != "ab\n\tC" {
		t.Errorf("Text() = %q, want %q", got, "ab\n\tC")
	}

	h.press(key.Ctrl('k'))
	if got := h.st.Registry().Active().Position().Line; got != 0 {
		t.Errorf("Position().Line = %d, want 0", got)
	}
	if !h.st.Mode().Is(mode.KindInsert) {
		t.Errorf("Mode() = %v, want insert", h.st.Mode())
	}
}

func TestEditMotions(t *testing.T) {
	h := newHarness(t)
	h.typeText("one two\nthree")
	h.edit()

	steps := []struct {
		ev   key.Event
		want buffer.Point
	}{
		{key.Rune('0'), buffer.Point{Line: 1, Column: 0}},
		{key.Rune('k'), buffer.Point{Line: 0, Column: 0}},
		{key.Rune('w'), buffer.Point{Line: 0, Column: 4}},
		{key.Rune('$'), buffer.Point{Line: 0, Column: 7}},
		{key.Rune('h'), buffer.Point{Line: 0, Column: 6}},
		{key.Special(key.KeyDown), buffer.Point{Line: 1, Column: 5}},
		{key.Special(key.KeyHome), buffer.Point{Line: 1, Column: 0}},
		{key.Rune('l'), buffer.Point{Line: 1, Column: 1}},
	}
	for i, s := range steps {
		h.press(s.ev)
		if got := h.st.Registry().Active().Position(); got != s.want {
			t.Errorf("step %d %v: Position() = %v, want %v", i, s.ev, got, s.want)
		}
	}
}

func TestScroll(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 20; i++ {
		h.press(enter)
	}
	h.st.Registry().Active().SetCursor(0)

	h.press(key.Special(key.KeyPageDown))
	if got := h.st.Registry().Active().Position().Line; got != h.st.PageSize() {
		t.Errorf("Position().Line = %d, want %d", got, h.st.PageSize())
	}
	h.press(key.Special(key.KeyPageUp))
	if got := h.st.Registry().Active().Position().Line; got != 0 {
		t.Errorf("Position().Line = %d, want 0", got)
	}
}

func TestEditCycleBuffers(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Rune('c'), key.Rune('c'))

	h.press(tab)
	if got := h.st.Registry().ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex() after tab = %d, want 0", got)
	}
	h.press(backtab)
	if got := h.st.Registry().ActiveIndex(); got != 2 {
		t.Errorf("ActiveIndex() after s-tab = %d, want 2", got)
	}
}

func TestCloseBuffer(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Rune('c'), key.Rune('c'))
	h.press(key.Rune('q'))

	reg := h.st.Registry()
	if reg.Len() != 2 || reg.ActiveIndex() != 1 {
		t.Errorf("Len(), ActiveIndex() = %d, %d, want 2, 1", reg.Len(), reg.ActiveIndex())
	}

	h.press(key.Rune('q'), key.Rune('q'))
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
	if !h.st.Quit() {
		t.Error("Quit() = false after closing last buffer, want true")
	}
}

func TestTerminationSignaledOnce(t *testing.T) {
	log := &recordingLogger{}
	d := dispatcher.New(dispatcher.DefaultConfig().WithLogger(log))
	st := editor.New(editor.DefaultOptions())

	events := []key.Event{esc, key.Rune('q'), key.Rune('q'), quit, key.Rune(':')}
	for _, r := range "quit" {
		events = append(events, key.Rune(r))
	}
	events = append(events, enter)
	for _, ev := range events {
		d.Handle(st, ev)
	}

	if !st.Quit() {
		t.Fatal("Quit() = false after closing the last buffer")
	}
	count := 0
	for _, line := range log.lines {
		if line == "termination requested" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("termination logged %d times, want 1 (lines %q)", count, log.lines)
	}
	if st.Registry().Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Registry().Len())
	}
}

func TestPrefixStatusLabels(t *testing.T) {
	tests := []struct {
		trigger key.Event
		want    string
	}{
		{leader, "MODE: INSERT, PRE: Leader, B: 1/1 Q: false"},
		{key.Ctrl('f'), "MODE: INSERT, PRE: Find Files, B: 1/1 Q: false"},
		{key.Ctrl('g'), "MODE: INSERT, PRE: Move FWD, B: 1/1 Q: false"},
		{key.Ctrl('s'), "MODE: INSERT, PRE: Search FWD, B: 1/1 Q: false"},
		{key.Ctrl('w'), "MODE: INSERT, PRE: Win (s: false), B: 1/1 Q: false"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h := newHarness(t)
			h.press(tt.trigger)
			if got := h.st.Snapshot().StatusLine(); got != tt.want {
				t.Errorf("StatusLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloseFirstBufferClamps(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Rune('c'), leader, key.Rune('1'), key.Rune('q'))

	reg := h.st.Registry()
	if reg.Len() != 1 || reg.ActiveIndex() != 0 {
		t.Errorf("Len(), ActiveIndex() = %d, %d, want 1, 0", reg.Len(), reg.ActiveIndex())
	}
	if h.st.Quit() {
		t.Error("Quit() = true, want false")
	}
}

func TestModeTransitions(t *testing.T) {
	tests := []struct {
		name   string
		events []key.Event
		want   mode.Kind
	}{
		{"insert escape", []key.Event{esc}, mode.KindEdit},
		{"edit escape", []key.Event{esc, esc}, mode.KindOverview},
		{"overview enter", []key.Event{esc, esc, enter}, mode.KindEdit},
		{"edit enter", []key.Event{esc, enter}, mode.KindInsert},
		{"command escape", []key.Event{esc, key.Rune(':'), esc}, mode.KindEdit},
		{"global overview", []key.Event{key.Ctrl('o')}, mode.KindOverview},
		{"global command", []key.Event{key.Ctrl('x')}, mode.KindCommand},
		{"global edit", []key.Event{key.Ctrl('c')}, mode.KindEdit},
		{"global insert", []key.Event{esc, key.Ctrl('v')}, mode.KindInsert},
		{"global insert while inserting", []key.Event{key.Ctrl('v')}, mode.KindInsert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.press(tt.events...)
			if got := h.st.Mode().Kind(); got != tt.want {
				t.Errorf("Mode().Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverviewPanes(t *testing.T) {
	h := newHarness(t)
	h.press(key.Ctrl('o'))

	steps := []struct {
		ev   key.Event
		want mode.Pane
	}{
		{key.Rune('j'), mode.PaneTabs},
		{tab, mode.PaneHistory},
		{key.Rune('j'), mode.PaneBuffers},
		{key.Rune('k'), mode.PaneHistory},
		{key.Rune('x'), mode.PaneHistory},
	}
	for i, s := range steps {
		h.press(s.ev)
		if got := h.st.Mode().Pane(); got != s.want {
			t.Errorf("step %d: Pane() = %v, want %v", i, got, s.want)
		}
	}

	h.press(quit)
	if !h.st.Quit() {
		t.Error("Quit() = false, want true")
	}
}

func TestCommandEditing(t *testing.T) {
	h := newHarness(t)
	h.edit()
	h.press(key.Rune(':'))
	h.typeText("nex")
	h.press(backspace, backspace)
	h.typeText("ew")

	if got := h.st.Mode().CommandLine(); got != "new" {
		t.Fatalf("CommandLine() = %q, want %q", got, "new")
	}
	h.press(enter)

	if got := h.st.Registry().Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if !h.st.Mode().Is(mode.KindEdit) {
		t.Errorf("Mode() = %v, want edit", h.st.Mode())
	}
}

func TestExecuteCommand(t *testing.T) {
	tests := []struct {
		line    string
		buffers int
		active  int
		mode    mode.Kind
		quit    bool
	}{
		{"q", 3, 2, mode.KindEdit, true},
		{"insert", 3, 2, mode.KindInsert, false},
		{"overview", 3, 2, mode.KindOverview, false},
		{"edit", 3, 2, mode.KindEdit, false},
		{"command", 3, 2, mode.KindCommand, false},
		{"new", 4, 3, mode.KindEdit, false},
		{"close", 2, 1, mode.KindEdit, false},
		{"bn", 3, 0, mode.KindEdit, false},
		{"bprev", 3, 1, mode.KindEdit, false},
		{"b 1", 3, 0, mode.KindEdit, false},
		{"b 7", 3, 2, mode.KindEdit, false},
		{"frobnicate", 3, 2, mode.KindEdit, false},
		{"", 3, 2, mode.KindEdit, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := newHarness(t)
			h.edit()
			h.press(key.Rune('c'), key.Rune('c'), key.Rune(':'))
			h.typeText(tt.line)
			h.press(enter)

			reg := h.st.Registry()
			if reg.Len() != tt.buffers {
				t.Errorf("Len() = %d, want %d", reg.Len(), tt.buffers)
			}
			if reg.ActiveIndex() != tt.active {
				t.Errorf("ActiveIndex() = %d, want %d", reg.ActiveIndex(), tt.active)
			}
			if got := h.st.Mode().Kind(); got != tt.mode {
				t.Errorf("Mode().Kind() = %v, want %v", got, tt.mode)
			}
			if got := h.st.Mode().CommandLine(); got != "" {
				t.Errorf("CommandLine() = %q, want empty", got)
			}
			if h.st.Quit() != tt.quit {
				t.Errorf("Quit() = %t, want %t", h.st.Quit(), tt.quit)
			}
		})
	}
}

func TestHistoryEveryCycle(t *testing.T) {
	h := newHarness(t)
	events := []key.Event{
		key.Rune('a'), leader, key.Rune('z'), key.Ctrl('y'), esc, key.Rune(':'), backspace,
	}
	h.press(events...)

	hist := h.st.History()
	if hist.Len() != len(events) {
		t.Fatalf("History().Len() = %d, want %d", hist.Len(), len(events))
	}
	last, _ := hist.Last()
	if !last.Equals(backspace) {
		t.Errorf("History().Last() = %v, want %v", last, backspace)
	}
}

func TestRegistryNeverEmpty(t *testing.T) {
	h := newHarness(t)
	h.edit()
	seq := "cqqcccqbqqqcq"
	for _, r := range seq {
		h.press(key.Rune(r))
		if h.st.Registry().Len() < 1 {
			t.Fatalf("Len() = 0 after %q", r)
		}
	}
}

func TestPrefixClearedWithinOneCycle(t *testing.T) {
	h := newHarness(t)
	h.edit()
	keys := []key.Event{
		key.Rune('1'), key.Rune('z'), esc, key.Rune('b'), key.Rune('/'), key.Rune('x'),
	}
	for _, k := range keys {
		h.press(leader)
		h.press(k)
		if kind := h.st.Prefix().Kind(); kind == prefix.Leader {
			t.Errorf("after %v: Prefix().Kind() = %v, want Leader cleared", k, kind)
		}
		h.st.Prefix().Clear()
	}
}

func TestDispatchDoesNotExecute(t *testing.T) {
	h := newHarness(t)
	op := h.d.Dispatch(h.st, key.Rune('a'))

	if want := (operation.InsertChar{Rune: 'a'}); op != want {
		t.Errorf("Dispatch() = %v, want %v", op, want)
	}
	if got := h.st.Registry().Active().Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestUnrecognizedInputNotLogged(t *testing.T) {
	log := &recordingLogger{}
	d := dispatcher.New(dispatcher.DefaultConfig().WithLogger(log))
	st := editor.New(editor.DefaultOptions())

	d.Handle(st, esc)
	n := len(log.lines)
	if n == 0 {
		t.Fatal("mode transition not logged")
	}

	d.Handle(st, key.Ctrl('y'))
	d.Handle(st, key.Special(key.KeyF5))
	if len(log.lines) != n {
		t.Errorf("unrecognized input logged: %v", log.lines[n:])
	}

	d.Handle(st, leader)
	if len(log.lines) != n+1 {
		t.Errorf("prefix arm not logged: %v", log.lines)
	}
}

func TestMetrics(t *testing.T) {
	h := newHarness(t)
	h.typeText("ab")
	h.press(key.Ctrl('y'), esc, leader)
	h.clock.Advance(2 * time.Second)
	h.d.Expire(h.st)

	m := h.d.Metrics()
	if m.TotalKeys() != 5 {
		t.Errorf("TotalKeys() = %d, want 5", m.TotalKeys())
	}
	if m.Operation("InsertChar") != 2 {
		t.Errorf("Operation(InsertChar) = %d, want 2", m.Operation("InsertChar"))
	}
	if m.NoOps() != 2 {
		t.Errorf("NoOps() = %d, want 2", m.NoOps())
	}
	if m.Transitions() != 1 {
		t.Errorf("Transitions() = %d, want 1", m.Transitions())
	}
	if m.Armed(prefix.Leader) != 1 || m.Expired() != 1 {
		t.Errorf("Armed(Leader), Expired() = %d, %d, want 1, 1", m.Armed(prefix.Leader), m.Expired())
	}

	top := m.TopOperations(1)
	if len(top) != 1 || top[0].Name != "InsertChar" {
		t.Errorf("TopOperations(1) = %v", top)
	}

	m.Reset()
	if m.TotalKeys() != 0 {
		t.Errorf("TotalKeys() after Reset = %d, want 0", m.TotalKeys())
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	if d.Metrics() != nil {
		t.Error("expected nil metrics by default")
	}
}
