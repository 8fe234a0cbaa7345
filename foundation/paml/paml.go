// File: paml.go
// Title: PAML Facade
// Description: Single import for the common operations: parsing text into a
//              Value, serializing a Value, and marshaling Go data.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package paml parses and serializes PAML documents.
//
//	v, err := paml.Parse(`{name demo ports [80 443]}`)
//	text := paml.Serialize(v) // {name demo ports [80 443]}
//
// The building blocks live in the sub-packages value, parser, printer and
// codec.
package paml

import (
	"github.com/msto63/paml/foundation/paml/codec"
	"github.com/msto63/paml/foundation/paml/parser"
	"github.com/msto63/paml/foundation/paml/printer"
	"github.com/msto63/paml/foundation/paml/value"
)

// Value is a parsed PAML document or one of its elements
type Value = value.Value

// Options configure ParseWithOptions
type Options = parser.Options

// Parse parses a complete document with default options
func Parse(text string) (Value, error) {
	return parser.Parse(text)
}

// ParseWithOptions parses text with a parser built from opts
func ParseWithOptions(text string, opts Options) (Value, error) {
	p, err := parser.New(opts)
	if err != nil {
		return Value{}, err
	}
	return p.Parse(text)
}

// Serialize returns the canonical single-line text of v
func Serialize(v Value) string {
	return printer.Serialize(v)
}

// SerializeIndent returns v with one element per line
func SerializeIndent(v Value, indent string) string {
	return printer.New(printer.Options{Indent: indent}).Sprint(v)
}

// Marshal returns the PAML text of a Go value
func Marshal(x interface{}) ([]byte, error) {
	return codec.Marshal(x)
}

// Unmarshal parses data into the value pointed to by out
func Unmarshal(data []byte, out interface{}) error {
	return codec.Unmarshal(data, out)
}
