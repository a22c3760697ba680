// Package screen provides the ASCII plumbing the menus draw with: a framed
// title box and a best-effort screen clear. Everything writes to an
// injected io.Writer so tests can capture the output.
package screen

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Default dimensions of the title frame. Width is the padding added around
// the title text, not the final box width.
const (
	DefaultWidth  = 22
	DefaultHeight = 7
)

// Clear wipes the terminal when w is one. Non-terminal sinks (pipes, test
// buffers, IDE consoles) get five blank lines instead, which pushes old
// output out of sight without emitting escape codes they cannot interpret.
// Best-effort: never returns an error.
func Clear(w io.Writer) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, "\033[H\033[2J")
		return
	}
	fmt.Fprintln(w, strings.Repeat("\n", 5))
}

// PrintTitle draws name centered in a box of "=" borders and "|" walls.
//
// The box width is width plus the rune length of name, bumped to the next
// even number. The box interior is height blank rows; the row at height/2
// gains an extra line carrying the centered name, with the odd spare space
// (when the name and box parities differ) appended on the right.
func PrintTitle(w io.Writer, name string, width, height int) {
	nameLen := utf8.RuneCountInString(name)
	width += nameLen
	if width%2 != 0 {
		width++
	}

	border := strings.Repeat("=", max(width, 0))
	blank := "|" + strings.Repeat(" ", max(width-2, 0)) + "|"
	centerY := height / 2

	fmt.Fprintln(w, border)
	for y := 0; y < height; y++ {
		if y == centerY {
			padding := max((width-nameLen-2)/2, 0)
			extra := max((width-nameLen-2)%2, 0)
			fmt.Fprintln(w, "|"+strings.Repeat(" ", padding)+name+strings.Repeat(" ", padding+extra)+"|")
		}
		fmt.Fprintln(w, blank)
	}
	fmt.Fprintln(w, border)
}
