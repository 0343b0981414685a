// Package sheetlit converts spreadsheet rows into a JavaScript data literal.
package sheetlit

import (
	"fmt"
	"log/slog"
	"regexp"
)

// Default declaration parts, producing "const data = ...;".
const (
	DefaultKeyword = "const"
	DefaultVarName = "data"
)

// Options configures loading behavior.
type Options struct {
	// Sheet selects a sheet by name. Empty means the first sheet.
	Sheet string
	// Range restricts conversion to a cell range such as A1:D20.
	// Its first non-empty row is the header.
	Range string
	// UsePrintArea converts the sheet's print area when one is defined.
	// Ignored when Range is set.
	UsePrintArea bool
	// RawDates keeps date-formatted cells as serial numbers instead of
	// ISO-8601 text.
	RawDates bool
	// Logger receives progress messages. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Declaration is the variable binding wrapped around the rendered literal.
type Declaration struct {
	// Keyword is const, let or var.
	Keyword string
	// Name is the variable name.
	Name string
}

// DefaultDeclaration returns the "const data" declaration.
func DefaultDeclaration() Declaration {
	return Declaration{Keyword: DefaultKeyword, Name: DefaultVarName}
}

// Validate checks the keyword and that Name is a plain identifier.
func (d Declaration) Validate() error {
	switch d.Keyword {
	case "const", "let", "var":
	default:
		return fmt.Errorf("%w: keyword %q must be const, let or var", ErrInvalidDeclaration, d.Keyword)
	}
	if !identifierRe.MatchString(d.Name) {
		return fmt.Errorf("%w: %q is not an identifier", ErrInvalidDeclaration, d.Name)
	}
	return nil
}

// Prefix returns the text written before the literal.
func (d Declaration) Prefix() string {
	return d.Keyword + " " + d.Name + " = "
}

// Suffix returns the statement terminator written after the literal.
func (d Declaration) Suffix() string {
	return ";"
}
