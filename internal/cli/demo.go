// Package cli — demo.go assembles the demo session: an address book
// and a calculator, each behind its own sub-menu, under one root menu.
//
// The targets declare their operations as capability tables; the
// constructible types (Contacto, Direccion) register factories in a
// shared registry so any operation can collect them, nesting included.
// Custom options demonstrate the caller-resolved selection range: the
// sub-menus return those selections untouched and the wrappers here
// give them behavior.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/ghostix/easyconsole/coninput"
	"github.com/ghostix/easyconsole/internal/config"
	"github.com/ghostix/easyconsole/internal/model"
	"github.com/ghostix/easyconsole/menu"
	"github.com/ghostix/easyconsole/messages"
)

// NewSession wires the demo menus against the given profile, catalog,
// and output stream. The returned root menu is ready to run; it owns
// no goroutines and reads nothing until Run.
func NewSession(profile *config.Profile, catalog *messages.Catalog, out io.Writer) (*menu.MainMenu, error) {
	registry := coninput.NewRegistry()
	if err := registerFactories(registry); err != nil {
		return nil, err
	}

	agenda := &model.Agenda{}
	agendaMenu := menu.NewCustomSubMenu("Agenda", &agendaTarget{agenda: agenda, out: out}, nil, "estadisticas")
	agendaMenu.SetRegistry(registry)
	agendaMenu.SetOutput(out)
	agendaMenu.SetCatalog(catalog)

	calculadora := &calculadoraTarget{out: out}
	calculadoraMenu := menu.NewCustomSubMenu("Calculadora", calculadora, nil, "historial")
	calculadoraMenu.SetRegistry(registry)
	calculadoraMenu.SetOutput(out)
	calculadoraMenu.SetCatalog(catalog)

	root := menu.NewMainMenu(profile.Title, profile.Pattern,
		&customMenu{SubMenu: agendaMenu, handle: func(_ string) {
			fmt.Fprintf(out, "Contactos: %d. Edad promedio: %.1f.\n",
				agenda.Len(), agenda.EdadPromedio())
		}},
		&customMenu{SubMenu: calculadoraMenu, handle: func(_ string) {
			calculadora.printHistorial()
		}},
	)
	root.SetOutput(out)
	root.SetCatalog(catalog)
	root.SetHandlingTitle(profile.TitleHandling())
	root.SetWidth(profile.Width)
	root.SetHeight(profile.Height)

	if len(profile.OptionNames) > 0 {
		if err := root.RenameOptions(profile.OptionNames); err != nil {
			return nil, model.WrapCLIError(model.ExitProfileError,
				"optionNames does not match the root menu", err)
		}
	}

	return root, nil
}

// registerFactories wires the demo's constructible types. Direccion is
// registered on its own so Contacto can collect it as a nested object.
// Both factories validate before returning, so a bad value surfaces as
// a construction failure instead of a corrupt entry.
func registerFactories(registry *coninput.Registry) error {
	if err := registry.Register("Direccion", coninput.Factory{
		Params: []coninput.Param{
			{Name: "calle", Type: coninput.String()},
			{Name: "numero", Type: coninput.Int()},
		},
		New: func(args []any) (any, error) {
			d := model.Direccion{Calle: args[0].(string), Numero: args[1].(int)}
			if err := d.Validate(); err != nil {
				return nil, err
			}
			return d, nil
		},
	}); err != nil {
		return err
	}

	return registry.Register("Contacto", coninput.Factory{
		Params: []coninput.Param{
			{Name: "nombre", Type: coninput.String()},
			{Name: "edad", Type: coninput.Int()},
			{Name: "direccion", Type: coninput.Object("Direccion")},
		},
		New: func(args []any) (any, error) {
			c := model.Contacto{
				Nombre: args[0].(string),
				Edad:   args[1].(int),
				Dir:    args[2].(model.Direccion),
			}
			if err := c.Validate(); err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}

// customMenu gives behavior to custom options. The wrapped menu returns
// custom-range selections untouched, so Run resolves them to their
// label after the fact and calls the handler.
type customMenu struct {
	*menu.SubMenu
	handle func(label string)
}

// Run delegates to the wrapped menu and reacts to custom selections.
func (m *customMenu) Run(input io.Reader) (int, error) {
	selection, err := m.SubMenu.Run(input)
	if err != nil {
		return selection, err
	}
	if label, ok := m.CustomAt(selection); ok {
		m.handle(label)
	}
	return selection, nil
}

// agendaTarget exposes the address book through a capability table.
// Operation names surface verbatim as menu labels, so they are Spanish
// like the rest of the console.
type agendaTarget struct {
	agenda *model.Agenda
	out    io.Writer
}

// Operations declares the agenda's menu-visible actions.
func (a *agendaTarget) Operations() []menu.Operation {
	return []menu.Operation{
		{
			Name: "agregar",
			Params: []coninput.Param{
				{Name: "contacto", Type: coninput.Object("Contacto")},
			},
			Invoke: func(args []any) error {
				c := args[0].(model.Contacto)
				if err := a.agenda.Agregar(c); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Contacto agregado: %s\n", c.Nombre)
				return nil
			},
		},
		{
			Name: "borrar",
			Params: []coninput.Param{
				{Name: "nombre", Type: coninput.String()},
			},
			Invoke: func(args []any) error {
				nombre := args[0].(string)
				if err := a.agenda.Borrar(nombre); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Contacto borrado: %s\n", nombre)
				return nil
			},
		},
		{
			Name: "buscar",
			Params: []coninput.Param{
				{Name: "nombre", Type: coninput.String()},
			},
			Invoke: func(args []any) error {
				nombre := args[0].(string)
				if c := a.agenda.Buscar(nombre); c != nil {
					fmt.Fprintln(a.out, c)
				} else {
					fmt.Fprintf(a.out, "No existe el contacto: %s\n", nombre)
				}
				return nil
			},
		},
		{
			Name: "exportar",
			Params: []coninput.Param{
				{Name: "destino", Type: coninput.Stdout()},
			},
			Invoke: func(args []any) error {
				// The destination is the pass-through output stream the
				// builder hands out without prompting.
				data, err := json.MarshalIndent(a.agenda.Contactos(), "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(args[0].(io.Writer), string(data))
				return err
			},
		},
		{
			Name: "listar",
			Invoke: func(args []any) error {
				contactos := a.agenda.Contactos()
				if len(contactos) == 0 {
					fmt.Fprintln(a.out, "La agenda está vacía.")
					return nil
				}
				for _, c := range contactos {
					fmt.Fprintln(a.out, c)
				}
				return nil
			},
		},
	}
}

// calculadoraTarget is a small arithmetic menu. It keeps a session
// history of results for the historial custom option.
type calculadoraTarget struct {
	out       io.Writer
	historial []string
}

// Operations declares the calculator's menu-visible actions.
func (c *calculadoraTarget) Operations() []menu.Operation {
	return []menu.Operation{
		{
			Name: "potenciar",
			Params: []coninput.Param{
				{Name: "base", Type: coninput.BigInt()},
				{Name: "exponente", Type: coninput.Int64()},
			},
			Invoke: func(args []any) error {
				base := args[0].(*big.Int)
				exponente := args[1].(int64)
				if exponente < 0 {
					return fmt.Errorf("exponente must not be negative, got %d", exponente)
				}
				resultado := new(big.Int).Exp(base, big.NewInt(exponente), nil)
				c.record(fmt.Sprintf("%s ^ %d = %s", base, exponente, resultado))
				return nil
			},
		},
		{
			Name: "promediar",
			Params: []coninput.Param{
				{Name: "valores", Type: coninput.SliceOf(coninput.Float64())},
			},
			Invoke: func(args []any) error {
				valores := args[0].([]any)
				if len(valores) == 0 {
					return errors.New("cannot average zero values")
				}
				total := 0.0
				for _, v := range valores {
					total += v.(float64)
				}
				c.record(fmt.Sprintf("promedio de %d valores = %.2f",
					len(valores), total/float64(len(valores))))
				return nil
			},
		},
		{
			Name: "sumar",
			Params: []coninput.Param{
				{Name: "a", Type: coninput.Decimal()},
				{Name: "b", Type: coninput.Decimal()},
			},
			Invoke: func(args []any) error {
				a := args[0].(decimal.Decimal)
				b := args[1].(decimal.Decimal)
				c.record(fmt.Sprintf("%s + %s = %s", a, b, a.Add(b)))
				return nil
			},
		},
	}
}

// record prints a result line and remembers it for historial.
func (c *calculadoraTarget) record(line string) {
	fmt.Fprintf(c.out, "Resultado: %s\n", line)
	c.historial = append(c.historial, line)
}

// printHistorial dumps the session's results, oldest first.
func (c *calculadoraTarget) printHistorial() {
	if len(c.historial) == 0 {
		fmt.Fprintln(c.out, "Sin operaciones todavía.")
		return
	}
	for i, line := range c.historial {
		fmt.Fprintf(c.out, "%d) %s\n", i+1, line)
	}
}
