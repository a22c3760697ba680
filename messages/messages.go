// Package messages holds every user-visible string the library prints.
//
// The built-in catalog is Spanish, matching the wording the menus have
// always used. Embedders that want different wording (or another language)
// load a YAML bundle over the defaults with Load; fields missing from the
// bundle keep their default value, so a bundle only needs the strings it
// changes.
package messages

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the full set of operator-facing strings. Prompt fields that
// end in "Prompt" are fmt format strings; their verbs are part of the
// contract and must survive any override.
type Catalog struct {
	// SelectOption asks for a numeric menu selection. Printed verbatim,
	// trailing newline included.
	SelectOption string `yaml:"selectOption"`

	// InvalidValue is printed when a typed prompt fails to parse, right
	// before the prompt is shown again.
	InvalidValue string `yaml:"invalidValue"`

	// ConfirmValue echoes a parsed value back for confirmation. One %v verb.
	ConfirmValue string `yaml:"confirmValue"`

	// Confirm is the value-less confirmation question.
	Confirm string `yaml:"confirm"`

	// Affirmative is the answer that counts as "yes"; only its first rune
	// is compared, case-insensitively.
	Affirmative string `yaml:"affirmative"`

	// Closing is printed when the exit option is selected.
	Closing string `yaml:"closing"`

	// InvalidOption is printed for selections outside the menu range.
	InvalidOption string `yaml:"invalidOption"`

	// ExitLabel is the display label of the exit option.
	ExitLabel string `yaml:"exitLabel"`

	// ArgumentNumber heads the parameter-collection banner. One %d verb,
	// receiving the 1-based parameter number.
	ArgumentNumber string `yaml:"argumentNumber"`

	// AutoParams introduces the parameter-collection choices.
	AutoParams string `yaml:"autoParams"`

	// KeepGoing labels choice 1 (fill the current parameter).
	KeepGoing string `yaml:"keepGoing"`

	// StepBack labels choice 2 (return to the previous parameter).
	StepBack string `yaml:"stepBack"`

	// CancelHint asks for the free-text confirmation that precedes choice 1;
	// typing CancelKeyword instead steps back.
	CancelHint string `yaml:"cancelHint"`

	// CancelKeyword is the literal line that aborts the current parameter.
	CancelKeyword string `yaml:"cancelKeyword"`

	// SteppingBack is printed when the cancel keyword triggers a step back.
	SteppingBack string `yaml:"steppingBack"`

	// SteppingBackMore is printed when choice 2 triggers a step back.
	SteppingBackMore string `yaml:"steppingBackMore"`

	// ReenterOption is printed for an out-of-range collection choice.
	ReenterOption string `yaml:"reenterOption"`

	// GenericFailure is the user-facing summary of a failed invocation.
	// The full detail goes to the diagnostic log, never to the console.
	GenericFailure string `yaml:"genericFailure"`

	// ValuePrompt asks for a scalar value. Two %s verbs: display name and
	// type name.
	ValuePrompt string `yaml:"valuePrompt"`

	// SizePrompt asks for an array size. Two %s verbs: display name and
	// element type name.
	SizePrompt string `yaml:"sizePrompt"`

	// ParamLabel announces a factory parameter before it is collected.
	// Two %s verbs: parameter name and type name.
	ParamLabel string `yaml:"paramLabel"`

	// CreatingCustom announces the construction of a registered type.
	// One %s verb: the type name.
	CreatingCustom string `yaml:"creatingCustom"`
}

// Default returns a fresh catalog with the stock Spanish strings.
func Default() *Catalog {
	return &Catalog{
		SelectOption:     "Selecciona una opción.\n",
		InvalidValue:     "Valor inválido. Por favor, intente de nuevo...",
		ConfirmValue:     "¿Estás seguro? Valor introducido: %v (S/N)...",
		Confirm:          "¿Estás seguro? (S/N)...",
		Affirmative:      "s",
		Closing:          "Cerrando el programa.",
		InvalidOption:    "Opción inválida.",
		ExitLabel:        "Salir",
		ArgumentNumber:   "ARGUMENTO NÚMERO: %d",
		AutoParams:       "Introducción automatica de parametros.",
		KeepGoing:        "1- Seguir introduciendo. ",
		StepBack:         "2- Retroceder. ",
		CancelHint:       "Estas seguro?. Si no es así escribe DESHACER\n",
		CancelKeyword:    "DESHACER",
		SteppingBack:     "Retrocediendo.",
		SteppingBackMore: "Retrocediendo...",
		ReenterOption:    "Opción invalida. Vuelve a ingresarla.",
		GenericFailure:   "Algo salió mal...",
		ValuePrompt:      "Introduzca un valor para: %s (%s): \n",
		SizePrompt:       "Introduzca el tamaño del array para: %s (%s): ",
		ParamLabel:       "Ingrese valor para el parametro: %s (%s)",
		CreatingCustom:   "Creando instancia del tipo personalizado: %s",
	}
}

// Load reads a YAML bundle and overlays it on the default catalog.
// Fields absent from the bundle keep their defaults. The file must exist;
// callers that treat the bundle as optional should check for the path
// themselves before calling.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message bundle: %w", err)
	}

	// Unmarshal on top of the defaults so a partial bundle is valid.
	catalog := Default()
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse message bundle %s: %w", path, err)
	}
	return catalog, nil
}

// AffirmativeRune returns the rune compared against the first rune of a
// confirmation answer. Falls back to 's' when the catalog field is empty,
// so a sparse bundle can never disable confirmations entirely.
func (c *Catalog) AffirmativeRune() rune {
	for _, r := range c.Affirmative {
		return r
	}
	return 's'
}
