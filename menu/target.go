package menu

import (
	"io"

	"github.com/ghostix/easyconsole/coninput"
)

// Operation is one invocable entry in a target's capability table.
type Operation struct {
	// Name identifies the operation. It is the initial display label and
	// the key used by hidden-name filtering and renames.
	Name string

	// Params describes the arguments Invoke expects, in invocation order.
	// Each parameter is collected from the console before dispatch.
	Params []coninput.Param

	// Invoke runs the operation. args[i] carries the collected value for
	// Params[i]. A returned error (or a panic) is logged and summarized to
	// the operator; it never takes the menu down.
	Invoke func(args []any) error
}

// Target is anything a SubMenu can drive. Implementations enumerate their
// operations explicitly; the menu shows whatever the table declares, minus
// the filtered names.
type Target interface {
	Operations() []Operation
}

// Runnable is the contract MainMenu drives: one interaction pass reading
// from input, returning the selected index. SubMenu and MainMenu both
// satisfy it, so menus nest.
type Runnable interface {
	Run(input io.Reader) (int, error)
}
