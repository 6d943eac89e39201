package renderer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lxedit/lx/internal/editor"
	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/renderer/backend"
)

// Options configures the renderer.
type Options struct {
	// TabWidth is the display width of a tab stop.
	TabWidth int

	// ShowDebugLine shows the last key under the status line.
	ShowDebugLine bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		TabWidth:      4,
		ShowDebugLine: true,
	}
}

// Renderer paints snapshots onto a backend.
type Renderer struct {
	opts    Options
	backend backend.Backend

	// First buffer line shown in the text area.
	top int
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	return &Renderer{opts: opts, backend: b}
}

// Top returns the first buffer line shown in the text area.
func (r *Renderer) Top() int {
	return r.top
}

// Render draws snap and flushes it to the display.
func (r *Renderer) Render(snap editor.Snapshot) {
	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.Clear()

	textHeight := height - 2
	if textHeight < 1 {
		textHeight = 1
	}

	if snap.Mode.Is(mode.KindOverview) {
		r.drawOverview(snap, width, textHeight)
	} else {
		r.scrollTo(snap.Cursor.Line, textHeight)
		r.drawText(snap.Text, width, textHeight)
	}

	statusY, promptY := height-2, height-1
	if statusY >= 0 {
		r.drawLine(0, statusY, width, padRight(snap.StatusLine(), width), backend.StyleReverse)
	}
	prompt := ""
	if snap.Mode.Is(mode.KindCommand) || r.opts.ShowDebugLine {
		prompt = snap.DebugLine()
	}
	r.drawLine(0, promptY, width, prompt, backend.StyleDefault)

	r.placeCursor(snap, prompt, width, promptY)
	r.backend.Show()
}

func (r *Renderer) scrollTo(line, textHeight int) {
	if line < r.top {
		r.top = line
	}
	if line >= r.top+textHeight {
		r.top = line - textHeight + 1
	}
	if r.top < 0 {
		r.top = 0
	}
}

func (r *Renderer) drawText(text string, width, textHeight int) {
	lines := strings.Split(text, "\n")
	for y := 0; y < textHeight; y++ {
		n := r.top + y
		if n >= len(lines) {
			r.drawLine(0, y, width, "~", backend.StyleDim)
			continue
		}
		r.drawLine(0, y, width, r.expandTabs(lines[n]), backend.StyleDefault)
	}
}

func (r *Renderer) drawOverview(snap editor.Snapshot, width, textHeight int) {
	var rows []overviewRow
	section := func(p mode.Pane, title string, items []string) {
		marker := "  "
		style := backend.StyleDefault
		if snap.Mode.Pane() == p {
			marker = "> "
			style = backend.StyleBold
		}
		rows = append(rows, overviewRow{marker + title, style})
		for _, it := range items {
			rows = append(rows, overviewRow{"    " + it, backend.StyleDefault})
		}
	}

	buffers := make([]string, snap.BufferCount)
	for i := range buffers {
		mark := " "
		if i == snap.ActiveIndex {
			mark = "*"
		}
		buffers[i] = fmt.Sprintf("%s %d", mark, i+1)
	}
	section(mode.PaneBuffers, "Buffers", buffers)
	section(mode.PaneTabs, "Tabs", nil)
	section(mode.PaneHistory, "History", reversed(snap.History))

	for y := 0; y < textHeight && y < len(rows); y++ {
		r.drawLine(0, y, width, rows[y].text, rows[y].style)
	}
}

type overviewRow struct {
	text  string
	style backend.Style
}

// drawLine draws s from column x, clipped to width. Wide characters take
// two cells; zero-width characters are dropped.
func (r *Renderer) drawLine(x, y, width int, s string, style backend.Style) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > width {
			return
		}
		r.backend.SetCell(x, y, backend.Cell{Rune: ch, Style: style})
		if w == 2 {
			r.backend.SetCell(x+1, y, backend.Cell{Style: style})
		}
		x += w
	}
}

func (r *Renderer) placeCursor(snap editor.Snapshot, prompt string, width, promptY int) {
	switch {
	case snap.CursorStyle == mode.CursorHidden:
		r.backend.HideCursor()
		return
	case snap.StatusRow:
		r.backend.ShowCursor(min(runewidth.StringWidth(prompt), width-1), promptY)
	case snap.Mode.Is(mode.KindOverview):
		r.backend.HideCursor()
		return
	default:
		r.backend.ShowCursor(min(snap.Cursor.Column, width-1), snap.Cursor.Line-r.top)
	}
	r.backend.SetCursorStyle(cursorStyle(snap.CursorStyle))
}

func (r *Renderer) expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, ch := range line {
		if ch == '\t' {
			n := r.opts.TabWidth - col%r.opts.TabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(ch)
		col += runewidth.RuneWidth(ch)
	}
	return sb.String()
}

func cursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	case mode.CursorHidden:
		return backend.CursorHidden
	default:
		return backend.CursorBlock
	}
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func reversed(items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}
