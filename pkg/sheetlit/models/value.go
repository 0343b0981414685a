// Package models defines data structures for spreadsheet record conversion.
package models

import "strconv"

// Kind identifies which member of the Value union is set.
type Kind uint8

const (
	// KindEmpty marks a blank cell.
	KindEmpty Kind = iota
	// KindText marks a string cell.
	KindText
	// KindInteger marks a numeric cell holding a whole number.
	KindInteger
	// KindFloat marks a numeric cell holding a fractional number.
	KindFloat
	// KindBoolean marks a TRUE/FALSE cell.
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single cell value. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Text  string
	Int   int64
	Float float64
	Bool  bool
}

// Empty returns the empty value.
func Empty() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Integer returns an integer value.
func Integer(i int64) Value { return Value{Kind: KindInteger, Int: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Boolean returns a boolean value.
func Boolean(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// IsEmpty reports whether the value is the empty marker.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// Interface returns the value as nil, string, int64, float64 or bool.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindInteger:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBoolean:
		return v.Bool
	}
	return nil
}
