package dispatcher

import (
	"strconv"
	"strings"

	"github.com/lxedit/lx/internal/editor"
	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/mode"
)

// CommandKind identifies a command line command.
type CommandKind uint8

const (
	CmdQuit CommandKind = iota + 1
	CmdCommand
	CmdInsert
	CmdEdit
	CmdOverview
	CmdNew
	CmdClose
	CmdNext
	CmdPrevious
	CmdBuffer
)

// Command is a parsed command line.
type Command struct {
	Kind CommandKind

	// Buffer is the one-based buffer number of CmdBuffer.
	Buffer int
}

var commandNames = map[string]CommandKind{
	"quit":     CmdQuit,
	"q":        CmdQuit,
	"command":  CmdCommand,
	"insert":   CmdInsert,
	"edit":     CmdEdit,
	"overview": CmdOverview,
	"new":      CmdNew,
	"close":    CmdClose,
	"bnext":    CmdNext,
	"bn":       CmdNext,
	"bprev":    CmdPrevious,
	"bp":       CmdPrevious,
	"b":        CmdBuffer,
	"buffer":   CmdBuffer,
}

// ParseCommand parses a command line such as "quit" or "b 2".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, &CommandError{Line: line, Err: ErrEmptyCommand}
	}

	kind, ok := commandNames[fields[0]]
	if !ok {
		return Command{}, &CommandError{Line: line, Err: ErrUnknownCommand}
	}

	if kind != CmdBuffer {
		if len(fields) != 1 {
			return Command{}, &CommandError{Line: line, Err: ErrBadArgument}
		}
		return Command{Kind: kind}, nil
	}

	if len(fields) != 2 {
		return Command{}, &CommandError{Line: line, Err: ErrBadArgument}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return Command{}, &CommandError{Line: line, Err: ErrBadArgument}
	}
	return Command{Kind: CmdBuffer, Buffer: n}, nil
}

// executeCommand runs a command line. The mode afterwards is Edit unless
// the command selects a mode itself. Lines that do not parse do nothing
// beyond closing the prompt.
func (d *Dispatcher) executeCommand(st *editor.State, line string) {
	next := mode.Edit()

	cmd, err := ParseCommand(line)
	if err == nil {
		d.log.Debug("command %q", line)
		reg := st.Registry()
		switch cmd.Kind {
		case CmdQuit:
			d.quit(st)
		case CmdCommand:
			next = mode.Command()
		case CmdInsert:
			next = mode.Insert()
		case CmdOverview:
			next = mode.Overview(mode.PaneBuffers)
		case CmdNew:
			reg.Create()
		case CmdClose:
			d.closeBuffer(st)
		case CmdNext:
			reg.Cycle(buffer.Forward)
		case CmdPrevious:
			reg.Cycle(buffer.Backward)
		case CmdBuffer:
			reg.SwitchTo(cmd.Buffer - 1)
		}
	}

	if next.Is(mode.KindCommand) && st.Mode().Is(mode.KindCommand) {
		// Reopen an empty prompt.
		st.Machine().Update(next)
		return
	}
	d.switchMode(st, next)
}
