// Package menu renders numbered console menus over application objects
// and dispatches selections to them.
//
// A target declares what it can do through an explicit capability table:
// Operations returns {name, typed parameters, invocation closure} entries,
// so the menu never inspects anything at runtime. OptionSet turns that
// table into display labels (accessor-prefixed and blocklisted names are
// filtered out), merges caller-declared custom options, and derives the
// exit index. SubMenu runs one list-select-dispatch pass over a single
// target; MainMenu loops over an ordered list of sub-menus until the exit
// option is chosen.
//
// Selections in the custom-option range are returned to the caller
// untouched: the menu neither dispatches them nor flags them invalid.
// Embedders branch on the returned index to give custom options behavior.
//
// All rendering goes to an injected writer and every interaction reads
// from the io.Reader passed to Run, so sessions can be scripted in tests.
package menu
