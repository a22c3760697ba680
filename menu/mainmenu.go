package menu

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/ghostix/easyconsole/coninput"
	"github.com/ghostix/easyconsole/logger"
	"github.com/ghostix/easyconsole/messages"
	"github.com/ghostix/easyconsole/screen"
)

// Defaults for root menus built without explicit naming.
const (
	DefaultName    = "Main menu"
	DefaultPattern = "Option "
)

var _ Runnable = (*MainMenu)(nil)

// MainMenu loops over an ordered list of runnable sub-targets. Each pass
// renders the list, reads a selection, and hands the shared input source
// to the chosen sub-target's Run. Only the exit selection ends the loop;
// sub-target failures are logged and the loop continues.
type MainMenu struct {
	// id correlates diagnostic log lines coming from this menu.
	id string

	name    string
	pattern string

	// entries maps display label to sub-target. Labels derive from the
	// pattern and construction order; renames move keys.
	entries map[string]Runnable

	handlingTitle bool
	width         int
	height        int

	out  io.Writer
	msgs *messages.Catalog
}

// NewMainMenu builds a root menu labeling each target with pattern plus
// its 1-based position.
func NewMainMenu(name, pattern string, targets ...Runnable) *MainMenu {
	m := &MainMenu{
		id:            uuid.NewString(),
		name:          name,
		pattern:       pattern,
		handlingTitle: true,
		width:         screen.DefaultWidth,
		height:        screen.DefaultHeight,
		out:           os.Stdout,
		msgs:          messages.Default(),
	}
	m.SetTargets(targets...)
	return m
}

// NewDefaultMainMenu builds a root menu with the stock name and label
// pattern.
func NewDefaultMainMenu(targets ...Runnable) *MainMenu {
	return NewMainMenu(DefaultName, DefaultPattern, targets...)
}

// Run loops until the exit selection: render, read, act. An in-range
// selection runs the chosen sub-target over the same input source; a
// sub-target error is logged and the loop continues. The exit selection
// prints the closing message and returns (0, nil). Out-of-range
// selections print the invalid message. Read failures end the loop with
// an error.
func (m *MainMenu) Run(input io.Reader) (int, error) {
	reader := coninput.NewReader(input, m.out)
	reader.SetCatalog(m.msgs)

	for {
		if m.handlingTitle {
			screen.PrintTitle(m.out, m.name, m.width, m.height)
		}
		m.printOptions()

		selection, err := reader.NextInt(m.msgs.SelectOption, false)
		if err != nil {
			return 0, err
		}
		screen.Clear(m.out)

		exit := m.Exit()
		switch {
		case selection == exit:
			fmt.Fprintln(m.out, m.msgs.Closing)
			return 0, nil
		case selection >= 1 && selection < exit:
			m.runTarget(input, selection)
		default:
			fmt.Fprintln(m.out, m.msgs.InvalidOption)
		}
	}
}

// printOptions lists the sub-targets and the exit line.
func (m *MainMenu) printOptions() {
	labels := m.Labels()
	for i, label := range labels {
		fmt.Fprintf(m.out, "%d- %s.\n", i+1, label)
	}
	fmt.Fprintf(m.out, "%d- %s.\n", len(labels)+1, m.msgs.ExitLabel)
	fmt.Fprintln(m.out, separator)
}

// runTarget runs the sub-target at the given 1-based display rank.
func (m *MainMenu) runTarget(input io.Reader, rank int) {
	label := m.Labels()[rank-1]
	if _, err := m.entries[label].Run(input); err != nil {
		logger.Logger.Error().
			Err(err).
			Str("menu", m.name).
			Str("menu_id", m.id).
			Str("option", label).
			Msg("sub-menu failed")
	}
}

// SetTargets replaces the sub-targets, deriving fresh labels from the
// current pattern and the given order.
func (m *MainMenu) SetTargets(targets ...Runnable) {
	m.entries = make(map[string]Runnable, len(targets))
	for i, target := range targets {
		m.entries[fmt.Sprintf("%s%d", m.pattern, i+1)] = target
	}
}

// SetPattern changes the label pattern used by the next SetTargets.
// Current labels are kept: they may have been renamed, so they are not
// re-derived.
func (m *MainMenu) SetPattern(pattern string) {
	m.pattern = pattern
}

// RenameOption relabels the entry at the given zero-based display index.
func (m *MainMenu) RenameOption(index int, label string) error {
	labels := m.Labels()
	if index < 0 || index >= len(labels) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return renameEntry(m.entries, labels[index], label)
}

// RenameOptions relabels every entry positionally: labels[i] becomes the
// label of the i-th entry in current display order.
func (m *MainMenu) RenameOptions(labels []string) error {
	current := m.Labels()
	if len(labels) != len(current) {
		return fmt.Errorf("%w: %d labels for %d options",
			ErrCardinalityMismatch, len(labels), len(current))
	}
	if err := checkDistinct(labels); err != nil {
		return err
	}

	next := make(map[string]Runnable, len(current))
	for i, oldLabel := range current {
		next[labels[i]] = m.entries[oldLabel]
	}
	m.entries = next
	return nil
}

// SetOutput redirects rendering. Nil is ignored.
func (m *MainMenu) SetOutput(w io.Writer) {
	if w != nil {
		m.out = w
	}
}

// SetCatalog replaces the message catalog. Nil is ignored.
func (m *MainMenu) SetCatalog(c *messages.Catalog) {
	if c != nil {
		m.msgs = c
	}
}

// Labels returns the display labels in order.
func (m *MainMenu) Labels() []string { return sortedKeys(m.entries) }

// Exit returns the selection number that closes the menu.
func (m *MainMenu) Exit() int { return len(m.entries) + 1 }

// ID returns the menu's diagnostic correlation id.
func (m *MainMenu) ID() string { return m.id }

// Name returns the title text.
func (m *MainMenu) Name() string { return m.name }

// SetName changes the title text.
func (m *MainMenu) SetName(name string) { m.name = name }

// Pattern returns the label pattern.
func (m *MainMenu) Pattern() string { return m.pattern }

// HandlingTitle reports whether Run renders the framed title.
func (m *MainMenu) HandlingTitle() bool { return m.handlingTitle }

// SetHandlingTitle toggles title rendering.
func (m *MainMenu) SetHandlingTitle(on bool) { m.handlingTitle = on }

// Width returns the base title width.
func (m *MainMenu) Width() int { return m.width }

// SetWidth changes the base title width.
func (m *MainMenu) SetWidth(w int) { m.width = w }

// Height returns the title height.
func (m *MainMenu) Height() int { return m.height }

// SetHeight changes the title height.
func (m *MainMenu) SetHeight(h int) { m.height = h }
