package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Direccion is a postal address attached to a contact.
//
// The field names are Spanish on purpose: the demo derives console
// prompts from them, so they surface verbatim in the UI.
type Direccion struct {
	// Calle is the street name. It must not be blank.
	Calle string `json:"calle"`

	// Numero is the street number. Zero is accepted for unnumbered
	// addresses; negative values fail validation.
	Numero int `json:"numero"`
}

// String renders the address as "Calle 123" for listings.
// This method satisfies the fmt.Stringer interface.
func (d Direccion) String() string {
	return fmt.Sprintf("%s %d", d.Calle, d.Numero)
}

// Validate checks the address fields and returns the first problem
// found, or nil when the address is usable.
func (d Direccion) Validate() error {
	if strings.TrimSpace(d.Calle) == "" {
		return fmt.Errorf("calle must not be blank")
	}
	if d.Numero < 0 {
		return fmt.Errorf("numero must not be negative, got %d", d.Numero)
	}
	return nil
}

// Contacto is a single address-book entry.
type Contacto struct {
	// Nombre identifies the contact. Names are unique within an
	// Agenda and must satisfy ValidateNombre.
	Nombre string `json:"nombre"`

	// Edad is the contact's age in years.
	Edad int `json:"edad"`

	// Dir is the contact's postal address.
	Dir Direccion `json:"direccion"`
}

// String renders the contact on one line for listings.
// This method satisfies the fmt.Stringer interface.
func (c Contacto) String() string {
	return fmt.Sprintf("%s (%d) - %s", c.Nombre, c.Edad, c.Dir)
}

// maxEdad is the highest age Validate accepts. Nobody verified older
// than this has ever asked to be in the demo's address book.
const maxEdad = 150

// Validate checks the contact fields, including the nested address,
// and returns the first problem found.
func (c Contacto) Validate() error {
	if err := ValidateNombre(c.Nombre); err != nil {
		return err
	}
	if c.Edad < 0 || c.Edad > maxEdad {
		return fmt.Errorf("edad %d is out of range [0, %d]", c.Edad, maxEdad)
	}
	return c.Dir.Validate()
}

// nombreRegex validates contact names: a letter followed by letters,
// spaces, periods, apostrophes, or hyphens. \p{L} keeps accented
// characters legal, so "José" and "Ángela" pass.
var nombreRegex = regexp.MustCompile(`^\p{L}[\p{L} .'-]*$`)

// ValidateNombre checks if the given name is usable as a contact name.
// Returns nil if valid, or an error describing the problem.
func ValidateNombre(nombre string) error {
	if nombre == "" {
		return fmt.Errorf("nombre must not be empty")
	}
	if !nombreRegex.MatchString(nombre) {
		return fmt.Errorf("nombre %q contains invalid characters", nombre)
	}
	return nil
}

// Agenda is an in-memory address book. Entries keep insertion order
// and names stay unique. It is not safe for concurrent use; the demo
// drives it from a single console session.
type Agenda struct {
	contactos []Contacto
}

// Agregar validates the contact and appends it. Names must be unique
// so that Borrar and Buscar stay unambiguous.
func (a *Agenda) Agregar(c Contacto) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if a.Buscar(c.Nombre) != nil {
		return fmt.Errorf("contacto %q already exists", c.Nombre)
	}
	a.contactos = append(a.contactos, c)
	return nil
}

// Buscar returns a pointer to the contact with the given name, or nil
// when no entry matches. The pointer aliases the agenda's storage.
func (a *Agenda) Buscar(nombre string) *Contacto {
	for i := range a.contactos {
		if a.contactos[i].Nombre == nombre {
			return &a.contactos[i]
		}
	}
	return nil
}

// Borrar removes the named contact, preserving the order of the rest.
// Returns an error when no entry matches.
func (a *Agenda) Borrar(nombre string) error {
	for i := range a.contactos {
		if a.contactos[i].Nombre == nombre {
			a.contactos = append(a.contactos[:i], a.contactos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("contacto %q not found", nombre)
}

// Contactos returns a copy of the entries in insertion order.
func (a *Agenda) Contactos() []Contacto {
	out := make([]Contacto, len(a.contactos))
	copy(out, a.contactos)
	return out
}

// Len returns the number of entries.
func (a *Agenda) Len() int {
	return len(a.contactos)
}

// EdadPromedio returns the average age of the entries, or 0 for an
// empty agenda.
func (a *Agenda) EdadPromedio() float64 {
	if len(a.contactos) == 0 {
		return 0
	}
	total := 0
	for _, c := range a.contactos {
		total += c.Edad
	}
	return float64(total) / float64(len(a.contactos))
}

// ExitCode defines standard exit codes for the demo binary.
// Distinct codes let scripts and CI systems programmatically
// determine the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the session completed normally.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitProfileError indicates the session profile was missing,
	// malformed, or failed validation.
	ExitProfileError ExitCode = 2

	// ExitBundleError indicates a message bundle could not be read
	// or parsed.
	ExitBundleError ExitCode = 3

	// ExitSessionError indicates the interactive session aborted,
	// typically because the input stream closed mid-menu.
	ExitSessionError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
