package keymap

import (
	"sort"

	"github.com/lxedit/lx/internal/input/key"
)

// Section groups related actions in a keymap file.
type Section string

// Keymap sections.
const (
	SectionModes      Section = "modes"
	SectionPrefixes   Section = "prefixes"
	SectionCursor     Section = "cursor"
	SectionNavigation Section = "navigation"
	SectionEditor     Section = "editor"
)

// Action names one bindable entry.
type Action struct {
	Section Section
	Name    string
}

// String returns the dotted form, e.g. "prefixes.leader".
func (a Action) String() string {
	return string(a.Section) + "." + a.Name
}

// Bindable actions.
var (
	ModeInsert   = Action{SectionModes, "insert"}
	ModeEdit     = Action{SectionModes, "edit"}
	ModeCommand  = Action{SectionModes, "command"}
	ModeOverview = Action{SectionModes, "overview"}

	PrefixLeader = Action{SectionPrefixes, "leader"}
	PrefixBuffer = Action{SectionPrefixes, "buffer"}
	PrefixTab    = Action{SectionPrefixes, "tab"}
	PrefixFind   = Action{SectionPrefixes, "find"}
	PrefixWindow = Action{SectionPrefixes, "window"}
	PrefixMotion = Action{SectionPrefixes, "motion"}
	PrefixSearch = Action{SectionPrefixes, "search"}

	CursorUp    = Action{SectionCursor, "up"}
	CursorDown  = Action{SectionCursor, "down"}
	CursorLeft  = Action{SectionCursor, "left"}
	CursorRight = Action{SectionCursor, "right"}

	NavigationNext     = Action{SectionNavigation, "next"}
	NavigationPrevious = Action{SectionNavigation, "previous"}

	EditorQuit = Action{SectionEditor, "quit"}
)

// defaults lists every action with its built-in key, in file order.
var defaults = []struct {
	action Action
	spec   string
}{
	{ModeInsert, "c-v"},
	{ModeEdit, "c-c"},
	{ModeCommand, "c-x"},
	{ModeOverview, "c-o"},

	{PrefixLeader, "c-space"},
	{PrefixBuffer, "c-e"},
	{PrefixTab, "c-\\"},
	{PrefixFind, "c-f"},
	{PrefixWindow, "c-w"},
	{PrefixMotion, "c-g"},
	{PrefixSearch, "c-s"},

	{CursorUp, "k"},
	{CursorDown, "j"},
	{CursorLeft, "h"},
	{CursorRight, "l"},

	{NavigationNext, "tab"},
	{NavigationPrevious, "s-tab"},

	{EditorQuit, "c-q"},
}

// Binding is one resolved table entry.
type Binding struct {
	Action Action
	Spec   string
	Event  key.Event
}

// Table is an immutable, validated set of bindings.
type Table struct {
	bindings map[Action]Binding
	byEvent  map[key.Event]Action
}

// Default returns the built-in table.
func Default() *Table {
	t, err := New(nil)
	if err != nil {
		panic(err)
	}
	return t
}

// New builds a table from the defaults with overrides applied. Overrides are
// keyed by section, then entry name. Every entry must name a known action,
// parse as a key, and not collide with another action's key.
func New(overrides map[string]map[string]string) (*Table, error) {
	specs := make(map[Action]string, len(defaults))
	for _, d := range defaults {
		specs[d.action] = d.spec
	}

	for _, section := range sortedKeys(overrides) {
		entries := overrides[section]
		if !knownSection(Section(section)) {
			cerr := &ConfigError{Section: section, Err: ErrUnknownSection}
			if names := sortedKeys(entries); len(names) > 0 {
				cerr.Entry, cerr.Spec = names[0], entries[names[0]]
			}
			return nil, cerr
		}
		for _, name := range sortedKeys(entries) {
			a := Action{Section(section), name}
			if _, ok := specs[a]; !ok {
				return nil, &ConfigError{Section: section, Entry: name, Spec: entries[name], Err: ErrUnknownEntry}
			}
			specs[a] = entries[name]
		}
	}

	t := &Table{
		bindings: make(map[Action]Binding, len(defaults)),
		byEvent:  make(map[key.Event]Action, len(defaults)),
	}
	for _, d := range defaults {
		spec := specs[d.action]
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, &ConfigError{
				Section: string(d.action.Section),
				Entry:   d.action.Name,
				Spec:    spec,
				Err:     err,
			}
		}
		canon := ev.Canonical()
		if other, taken := t.byEvent[canon]; taken {
			return nil, &ConfigError{
				Section: string(d.action.Section),
				Entry:   d.action.Name,
				Spec:    spec,
				Other:   other.String(),
				Err:     ErrConflict,
			}
		}
		t.byEvent[canon] = d.action
		t.bindings[d.action] = Binding{Action: d.action, Spec: spec, Event: canon}
	}
	return t, nil
}

// Event returns the key bound to an action.
func (t *Table) Event(a Action) (key.Event, bool) {
	b, ok := t.bindings[a]
	return b.Event, ok
}

// Spec returns the specification text an action was bound with.
func (t *Table) Spec(a Action) string {
	return t.bindings[a].Spec
}

// Matches reports whether ev is the key bound to a.
func (t *Table) Matches(a Action, ev key.Event) bool {
	b, ok := t.bindings[a]
	return ok && b.Event.Equals(ev)
}

// Lookup returns the action bound to ev in any section.
func (t *Table) Lookup(ev key.Event) (Action, bool) {
	a, ok := t.byEvent[ev.Canonical()]
	return a, ok
}

// Match returns the action bound to ev within one section.
func (t *Table) Match(section Section, ev key.Event) (Action, bool) {
	a, ok := t.Lookup(ev)
	if !ok || a.Section != section {
		return Action{}, false
	}
	return a, true
}

// Bindings returns all bindings in file order.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, t.bindings[d.action])
	}
	return out
}

// Actions returns the actions of a section in file order.
func Actions(section Section) []Action {
	var out []Action
	for _, d := range defaults {
		if d.action.Section == section {
			out = append(out, d.action)
		}
	}
	return out
}

func knownSection(s Section) bool {
	for _, d := range defaults {
		if d.action.Section == s {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
