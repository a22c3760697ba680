package coninput

import (
	"fmt"
	"io"
	"os"
)

// NoConstructorError reports a KindObject type with no registered factory.
type NoConstructorError struct {
	TypeName string
}

func (e *NoConstructorError) Error() string {
	return "no factory registered for type: " + e.TypeName
}

// ConstructionError wraps a factory failure (returned error or panic) so
// the dispatch boundary can log the cause and keep the menu alive.
type ConstructionError struct {
	TypeName string
	Err      error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct %s: %v", e.TypeName, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Builder assembles whole values from the console: scalars through the
// embedded Reader's typed prompts (always with confirmation), slices
// element by element, and registered object types through their factories,
// recursing for every factory parameter.
type Builder struct {
	*Reader

	registry *Registry

	// stdin and stdout are the ambient pass-through handles returned for
	// KindReader/KindWriter parameters. They are distinct from the prompt
	// source/sink: a test can script prompts while pass-through parameters
	// still receive the real process streams, or fakes.
	stdin  io.Reader
	stdout io.Writer
}

// NewBuilder wraps a Reader with value assembly. A nil registry gets an
// empty one, which makes every object type a no-constructor failure until
// something is registered.
func NewBuilder(r *Reader, registry *Registry) *Builder {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Builder{
		Reader:   r,
		registry: registry,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}
}

// Registry returns the factory registry the builder resolves object types
// against.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// SetHandles replaces the ambient pass-through streams. Nil arguments keep
// the current handle.
func (b *Builder) SetHandles(in io.Reader, out io.Writer) {
	if in != nil {
		b.stdin = in
	}
	if out != nil {
		b.stdout = out
	}
}

// Build collects a value of type t, labeling every prompt with displayName.
//
// Slices prompt for a non-negative size first (with confirmation), then
// build each element as displayName[i]. Object types resolve their factory
// by t.Name; a missing registration returns *NoConstructorError and a
// failing factory returns *ConstructionError. Pass-through kinds return
// the ambient handles without touching the console.
func (b *Builder) Build(t Type, displayName string) (any, error) {
	switch t.Kind {
	case KindSlice:
		values, err := b.buildSlice(t, displayName)
		if err != nil {
			return nil, err
		}
		return values, nil
	case KindObject:
		return b.buildObject(t)
	case KindReader:
		return b.stdin, nil
	case KindWriter:
		return b.stdout, nil
	}
	return b.buildScalar(t, displayName)
}

// FillSlice prompts for every element of dst in place, labeling prompts as
// displayName[i]. The caller owns the allocation; sizes are not prompted.
func (b *Builder) FillSlice(displayName string, dst []any, elem Type) error {
	for i := range dst {
		value, err := b.Build(elem, fmt.Sprintf("%s[%d]", displayName, i))
		if err != nil {
			return err
		}
		dst[i] = value
	}
	return nil
}

func (b *Builder) buildScalar(t Type, displayName string) (any, error) {
	prompt := fmt.Sprintf(b.msgs.ValuePrompt, displayName, t.String())

	switch t.Kind {
	case KindString:
		v, err := b.NextLine(prompt, true)
		return v, err
	case KindInt:
		v, err := b.NextInt(prompt, true)
		return v, err
	case KindInt8:
		v, err := b.NextInt8(prompt, true)
		return v, err
	case KindInt16:
		v, err := b.NextInt16(prompt, true)
		return v, err
	case KindInt64:
		v, err := b.NextInt64(prompt, true)
		return v, err
	case KindFloat32:
		v, err := b.NextFloat32(prompt, true)
		return v, err
	case KindFloat64:
		v, err := b.NextFloat64(prompt, true)
		return v, err
	case KindBool:
		v, err := b.NextBool(prompt, true)
		return v, err
	case KindBigInt:
		v, err := b.NextBigInt(prompt, true)
		return v, err
	case KindDecimal:
		v, err := b.NextDecimal(prompt, true)
		return v, err
	}
	return nil, fmt.Errorf("cannot prompt for type %s", t.String())
}

func (b *Builder) buildSlice(t Type, displayName string) ([]any, error) {
	if t.Elem == nil {
		return nil, fmt.Errorf("slice type %s has no element type", displayName)
	}

	prompt := fmt.Sprintf(b.msgs.SizePrompt, displayName, t.Elem.String())
	var size int
	for {
		n, err := b.NextInt(prompt, true)
		if err != nil {
			return nil, err
		}
		if n >= 0 {
			size = n
			break
		}
		fmt.Fprintln(b.out, b.msgs.InvalidValue)
	}

	values := make([]any, size)
	if err := b.FillSlice(displayName, values, *t.Elem); err != nil {
		return nil, err
	}
	return values, nil
}

func (b *Builder) buildObject(t Type) (any, error) {
	factory, ok := b.registry.Lookup(t.Name)
	if !ok {
		return nil, &NoConstructorError{TypeName: t.Name}
	}

	fmt.Fprintf(b.out, b.msgs.CreatingCustom+"\n", t.Name)

	args := make([]any, len(factory.Params))
	for i, p := range factory.Params {
		fmt.Fprintf(b.out, b.msgs.ParamLabel+"\n", p.Name, p.Type.String())
		value, err := b.Build(p.Type, p.Name)
		if err != nil {
			return nil, err
		}
		args[i] = value
	}

	value, err := callFactory(factory, args)
	if err != nil {
		return nil, &ConstructionError{TypeName: t.Name, Err: err}
	}
	return value, nil
}

// callFactory guards the user-supplied closure: a panic inside a factory
// must not take the menu down with it.
func callFactory(f Factory, args []any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("factory panicked: %v", r)
		}
	}()
	return f.New(args)
}
