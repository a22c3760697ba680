// Package model defines the domain types for the easyconsole demo
// binary.
//
// This package contains pure data structures with no external
// dependencies. The demo's address book (Agenda, Contacto, Direccion)
// lives here with its validation and formatting; it knows nothing
// about consoles, prompts, or option tables, so it can be imported
// from anywhere without dragging in the menu machinery.
//
// The package also defines exit codes (ExitCode) and a custom error
// type (CLIError) that carries exit codes for proper OS process exit
// handling.
package model
