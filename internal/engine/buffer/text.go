package buffer

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// boundaries returns the start offset of every grapheme cluster in s,
// followed by len(s).
func boundaries(s string) []int {
	out := make([]int, 0, len(s)+1)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, _ := g.Positions()
		out = append(out, start)
	}
	return append(out, len(s))
}

// prevBoundary returns the cluster boundary strictly before offset, or 0.
func prevBoundary(s string, offset int) int {
	prev := 0
	for _, b := range boundaries(s) {
		if b >= offset {
			break
		}
		prev = b
	}
	return prev
}

// nextBoundary returns the cluster boundary strictly after offset, or len(s).
func nextBoundary(s string, offset int) int {
	for _, b := range boundaries(s) {
		if b > offset {
			return b
		}
	}
	return len(s)
}

// snapBoundary clamps offset into s and moves it back to a cluster boundary.
func snapBoundary(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return len(s)
	}
	snapped := 0
	for _, b := range boundaries(s) {
		if b > offset {
			break
		}
		snapped = b
	}
	return snapped
}

// displayWidth returns the number of terminal cells s occupies when it
// starts at column zero.
func displayWidth(s string, tabWidth int) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += clusterWidth(g.Str(), width, tabWidth)
	}
	return width
}

// offsetForColumn returns the offset within line of the last cluster that
// starts at or before display column col.
func offsetForColumn(line string, col, tabWidth int) int {
	width := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := clusterWidth(g.Str(), width, tabWidth)
		if width+w > col {
			start, _ := g.Positions()
			return start
		}
		width += w
	}
	return len(line)
}

func clusterWidth(cluster string, at, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 1
		}
		return tabWidth - at%tabWidth
	}
	return runewidth.StringWidth(cluster)
}

// lineStart returns the offset of the start of the line containing offset.
func lineStart(s string, offset int) int {
	return strings.LastIndexByte(s[:offset], '\n') + 1
}

// lineEnd returns the offset of the newline ending the line containing
// offset, or len(s).
func lineEnd(s string, offset int) int {
	if i := strings.IndexByte(s[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(s)
}

// lineBounds returns the byte range of line n, excluding its newline.
func lineBounds(s string, n int) (start, end int, ok bool) {
	if n < 0 {
		return 0, 0, false
	}
	start = 0
	for i := 0; i < n; i++ {
		j := strings.IndexByte(s[start:], '\n')
		if j < 0 {
			return 0, 0, false
		}
		start += j + 1
	}
	return start, lineEnd(s, start), true
}
