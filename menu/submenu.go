package menu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/ghostix/easyconsole/coninput"
	"github.com/ghostix/easyconsole/logger"
	"github.com/ghostix/easyconsole/messages"
	"github.com/ghostix/easyconsole/screen"
)

// separator closes option lists and frames parameter banners.
const separator = "=========================="

var _ Runnable = (*SubMenu)(nil)

// SubMenu drives a single target: it renders the framed title and the
// numbered option list, reads one selection, collects the chosen
// operation's arguments, and invokes it. Run is single-shot; looping is
// the caller's business, usually the MainMenu that owns the SubMenu.
type SubMenu struct {
	// id correlates diagnostic log lines coming from this menu.
	id string

	name   string
	target Target

	// hidden is retained so every re-discovery applies the same
	// exclusions.
	hidden []string

	options  *OptionSet
	registry *coninput.Registry

	handlingTitle bool
	width         int
	height        int

	out  io.Writer
	msgs *messages.Catalog
}

// NewSubMenu builds a menu over target. hidden lists operation names to
// keep off the menu on top of the built-in filters.
func NewSubMenu(name string, target Target, hidden ...string) *SubMenu {
	return NewCustomSubMenu(name, target, hidden)
}

// NewCustomSubMenu additionally declares custom options. They take the
// numbers after the regular options and are never dispatched here; the
// caller resolves them from Run's returned index. Custom options are in
// place before discovery runs, so a same-named operation is excluded from
// the start.
func NewCustomSubMenu(name string, target Target, hidden []string, customs ...string) *SubMenu {
	m := &SubMenu{
		id:            uuid.NewString(),
		name:          name,
		hidden:        append([]string(nil), hidden...),
		options:       NewOptionSet(),
		registry:      coninput.NewRegistry(),
		handlingTitle: true,
		width:         screen.DefaultWidth,
		height:        screen.DefaultHeight,
		out:           os.Stdout,
		msgs:          messages.Default(),
	}
	m.options.SetCustomOptions(customs)
	m.target = target
	m.options.Discover(target, m.hidden)
	return m
}

// Run renders the menu once, reads a selection from input, acts on it, and
// returns the raw selection. Selections resolve in this order: the exit
// number prints the closing message; a regular option number dispatches
// its operation; numbers below 1 or above the exit print the invalid
// message; the custom range falls through silently for the caller.
//
// An error comes back only when reading input fails (EOF, broken source).
// Construction and invocation failures are logged, summarized on the
// console, and Run still returns the selection normally.
func (m *SubMenu) Run(input io.Reader) (int, error) {
	reader := coninput.NewReader(input, m.out)
	reader.SetCatalog(m.msgs)
	builder := coninput.NewBuilder(reader, m.registry)
	builder.SetHandles(input, m.out)

	if m.handlingTitle {
		screen.PrintTitle(m.out, m.name, m.width, m.height)
	}
	m.printOptions()

	selection, err := reader.NextInt(m.msgs.SelectOption, false)
	if err != nil {
		return 0, err
	}
	screen.Clear(m.out)

	exit := m.options.Exit()
	switch {
	case selection == exit:
		fmt.Fprintln(m.out, m.msgs.Closing)
	case selection >= 1 && selection <= m.options.Len():
		if err := m.dispatch(builder, selection); err != nil {
			return 0, err
		}
	case selection < 1 || selection > exit:
		fmt.Fprintln(m.out, m.msgs.InvalidOption)
	}
	return selection, nil
}

// printOptions lists the regular options, the custom options continuing
// the numbering, and the exit line, closed by the separator.
func (m *SubMenu) printOptions() {
	number := 1
	for _, label := range m.options.Labels() {
		fmt.Fprintf(m.out, "%d- %s.\n", number, label)
		number++
	}
	for _, label := range m.options.CustomLabels() {
		fmt.Fprintf(m.out, "%d- %s.\n", number, label)
		number++
	}
	fmt.Fprintf(m.out, "%d- %s.\n", m.options.Exit(), m.msgs.ExitLabel)
	fmt.Fprintln(m.out, separator)
}

// dispatch collects the selected operation's arguments and invokes it.
// Only read failures come back as errors; everything else is logged with
// a generic console summary so the menu stays usable.
func (m *SubMenu) dispatch(builder *coninput.Builder, selection int) error {
	op, ok := m.options.OperationAt(selection)
	if !ok {
		return nil
	}

	args, err := m.askParameters(builder, op)
	if err != nil {
		if isBuildFailure(err) {
			m.reportFailure(op.Name, err)
			return nil
		}
		return err
	}

	if err := invoke(op, args); err != nil {
		m.reportFailure(op.Name, err)
	}
	return nil
}

// askParameters walks the operation's parameters with the step-back
// protocol. Each round prints the numbered banner, asks for a choice, then
// for the free-text confirmation line. The cancel keyword steps back one
// parameter whatever the choice was; choice 1 collects the current
// parameter; choice 2 steps back; anything else re-asks. Stepping back at
// the first parameter stays there, and values already collected at lower
// indices survive.
func (m *SubMenu) askParameters(builder *coninput.Builder, op Operation) ([]any, error) {
	args := make([]any, len(op.Params))
	for i := 0; i < len(op.Params); {
		m.printBanner(i + 1)

		choice, err := builder.NextInt(m.msgs.SelectOption, false)
		if err != nil {
			return nil, err
		}
		line, err := builder.NextLine(m.msgs.CancelHint, false)
		if err != nil {
			return nil, err
		}
		if line == m.msgs.CancelKeyword {
			fmt.Fprintln(m.out, m.msgs.SteppingBack)
			i = max(i-1, 0)
			continue
		}

		switch choice {
		case 1:
			p := op.Params[i]
			value, err := builder.Build(p.Type, p.Name)
			if err != nil {
				return nil, err
			}
			args[i] = value
			i++
		case 2:
			fmt.Fprintln(m.out, m.msgs.SteppingBackMore)
			i = max(i-1, 0)
		default:
			fmt.Fprintln(m.out, m.msgs.ReenterOption)
		}
	}
	return args, nil
}

// printBanner frames one parameter round.
func (m *SubMenu) printBanner(number int) {
	fmt.Fprintln(m.out, separator)
	fmt.Fprintf(m.out, m.msgs.ArgumentNumber+"\n", number)
	fmt.Fprintln(m.out, separator)
	fmt.Fprintln(m.out, m.msgs.AutoParams)
	fmt.Fprintln(m.out, m.msgs.KeepGoing)
	fmt.Fprintln(m.out, m.msgs.StepBack)
	fmt.Fprintln(m.out, separator)
}

// reportFailure logs the failure with full detail and prints the generic
// summary on the console.
func (m *SubMenu) reportFailure(operation string, err error) {
	logger.Logger.Error().
		Err(err).
		Str("menu", m.name).
		Str("menu_id", m.id).
		Str("operation", operation).
		Msg("operation failed")
	fmt.Fprintln(m.out, m.msgs.GenericFailure)
}

// invoke guards the operation closure: a panic becomes an ordinary error.
func invoke(op Operation, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation panicked: %v", r)
		}
	}()
	if op.Invoke == nil {
		return fmt.Errorf("operation %q has no invocation", op.Name)
	}
	return op.Invoke(args)
}

// isBuildFailure tells recoverable construction failures apart from read
// failures, which must propagate.
func isBuildFailure(err error) bool {
	var noCtor *coninput.NoConstructorError
	var ctor *coninput.ConstructionError
	return errors.As(err, &noCtor) || errors.As(err, &ctor)
}

// SetTarget rebinds the menu and re-discovers with the stored hidden
// names.
func (m *SubMenu) SetTarget(target Target) {
	m.target = target
	m.options.Discover(target, m.hidden)
}

// SetHidden replaces the hidden names and re-discovers.
func (m *SubMenu) SetHidden(hidden []string) {
	m.hidden = append([]string(nil), hidden...)
	m.options.Discover(m.target, m.hidden)
}

// SetCustomOptions replaces the custom options. Regular options are not
// re-filtered.
func (m *SubMenu) SetCustomOptions(names []string) {
	m.options.SetCustomOptions(names)
}

// RenameMethod relabels one regular option.
func (m *SubMenu) RenameMethod(oldLabel, newLabel string) error {
	return m.options.RenameMethod(oldLabel, newLabel)
}

// RenameCustom relabels one custom option.
func (m *SubMenu) RenameCustom(oldLabel, newLabel string) error {
	return m.options.RenameCustom(oldLabel, newLabel)
}

// RenameMethods applies a complete relabeling of the regular options.
func (m *SubMenu) RenameMethods(renames map[string]string) error {
	return m.options.RenameMethods(renames)
}

// RenameCustoms relabels the custom options positionally.
func (m *SubMenu) RenameCustoms(labels []string) error {
	return m.options.RenameCustoms(labels)
}

// Registry returns the factory registry used for object parameters.
// Callers register their constructible types on it.
func (m *SubMenu) Registry() *coninput.Registry { return m.registry }

// SetRegistry shares a registry with this menu. Nil is ignored.
func (m *SubMenu) SetRegistry(r *coninput.Registry) {
	if r != nil {
		m.registry = r
	}
}

// SetOutput redirects rendering. Nil is ignored.
func (m *SubMenu) SetOutput(w io.Writer) {
	if w != nil {
		m.out = w
	}
}

// SetCatalog replaces the message catalog. Nil is ignored.
func (m *SubMenu) SetCatalog(c *messages.Catalog) {
	if c != nil {
		m.msgs = c
	}
}

// ID returns the menu's diagnostic correlation id.
func (m *SubMenu) ID() string { return m.id }

// Name returns the title text.
func (m *SubMenu) Name() string { return m.name }

// SetName changes the title text.
func (m *SubMenu) SetName(name string) { m.name = name }

// Target returns the bound target.
func (m *SubMenu) Target() Target { return m.target }

// Exit returns the selection number that closes the menu.
func (m *SubMenu) Exit() int { return m.options.Exit() }

// Labels returns the regular option labels in display order.
func (m *SubMenu) Labels() []string { return m.options.Labels() }

// CustomLabels returns the custom option labels in display order.
func (m *SubMenu) CustomLabels() []string { return m.options.CustomLabels() }

// CustomAt resolves a custom-range selection to its label. Run returns
// those selections untouched, so callers branch on this after the fact.
func (m *SubMenu) CustomAt(selection int) (string, bool) {
	return m.options.CustomAt(selection)
}

// HandlingTitle reports whether Run renders the framed title.
func (m *SubMenu) HandlingTitle() bool { return m.handlingTitle }

// SetHandlingTitle toggles title rendering.
func (m *SubMenu) SetHandlingTitle(on bool) { m.handlingTitle = on }

// Width returns the base title width.
func (m *SubMenu) Width() int { return m.width }

// SetWidth changes the base title width.
func (m *SubMenu) SetWidth(w int) { m.width = w }

// Height returns the title height.
func (m *SubMenu) Height() int { return m.height }

// SetHeight changes the title height.
func (m *SubMenu) SetHeight(h int) { m.height = h }
