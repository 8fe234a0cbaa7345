// File: printer.go
// Title: PAML Serializer
// Description: Writes value.Value trees back to PAML text. Serialize emits
//              the canonical single-line form; Printer with an indent emits
//              one element per line for human editing. Both forms parse back
//              to an equal tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package printer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/paml/foundation/paml/parser"
	"github.com/msto63/paml/foundation/paml/value"
)

// Options configures a Printer
type Options struct {
	// Indent switches to multi-line output with this indent per level.
	// Empty means canonical single-line output.
	Indent string
}

// Printer serializes values with fixed options
type Printer struct {
	options Options
}

// New creates a Printer
func New(opts Options) *Printer {
	return &Printer{options: opts}
}

// Serialize returns the canonical single-line text of v
func Serialize(v value.Value) string {
	var sb strings.Builder
	w := &writer{out: &sb}
	w.value(v, 0)
	return sb.String()
}

// SerializeTo writes the canonical text of v to out
func SerializeTo(out io.Writer, v value.Value) error {
	return New(Options{}).Print(out, v)
}

// Print writes v to out followed by nothing in single-line mode and by a
// newline in indented mode.
func (p *Printer) Print(out io.Writer, v value.Value) error {
	bw := bufio.NewWriter(out)
	w := &writer{out: bw, indent: p.options.Indent}
	w.value(v, 0)
	if w.indent != "" {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Sprint returns v formatted with the printer's options
func (p *Printer) Sprint(v value.Value) string {
	var sb strings.Builder
	_ = p.Print(&sb, v)
	return sb.String()
}

type stringWriter interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

type writer struct {
	out    stringWriter
	indent string
}

func (w *writer) value(v value.Value, depth int) {
	switch v.Kind() {
	case value.KindNull:
		w.out.WriteString("null")
	case value.KindBool:
		b, _ := v.AsBool()
		w.out.WriteString(strconv.FormatBool(b))
	case value.KindNumber:
		w.out.WriteString(FormatNumber(v))
	case value.KindString:
		s, _ := v.AsString()
		w.out.WriteString(QuoteIfNeeded(s))
	case value.KindList:
		w.list(v, depth)
	case value.KindMap:
		w.mapping(v, depth)
	}
}

func (w *writer) list(v value.Value, depth int) {
	items := v.Items()
	if len(items) == 0 {
		w.out.WriteString("[]")
		return
	}
	w.out.WriteByte('[')
	for i, item := range items {
		w.separator(i, depth+1)
		w.value(item, depth+1)
	}
	w.closing(']', depth)
}

func (w *writer) mapping(v value.Value, depth int) {
	entries := v.Entries()
	if len(entries) == 0 {
		w.out.WriteString("{}")
		return
	}
	w.out.WriteByte('{')
	for i, e := range entries {
		w.separator(i, depth+1)
		w.out.WriteString(QuoteIfNeeded(e.Key))
		w.out.WriteByte(' ')
		w.value(e.Value, depth+1)
	}
	w.closing('}', depth)
}

func (w *writer) separator(i, depth int) {
	if w.indent != "" {
		w.out.WriteByte('\n')
		w.out.WriteString(strings.Repeat(w.indent, depth))
		return
	}
	if i > 0 {
		w.out.WriteByte(' ')
	}
}

func (w *writer) closing(c byte, depth int) {
	if w.indent != "" {
		w.out.WriteByte('\n')
		w.out.WriteString(strings.Repeat(w.indent, depth))
	}
	w.out.WriteByte(c)
}

// FormatNumber renders a number. Integral numbers have no decimal point;
// fractional numbers always carry a point or an exponent. NaN and the
// infinities, which no PAML literal produces, render as NaN, +Inf and -Inf.
func FormatNumber(v value.Value) string {
	f, _ := v.AsFloat()
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if v.IsIntegral() {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// NeedsQuotes reports whether s cannot be written as a bare word that
// parses back to the same string. It quotes more than the scanner strictly
// requires: any quote character and any Unicode space.
func NeedsQuotes(s string) bool {
	if s == "" || parser.IsReserved(s) {
		return true
	}
	for _, r := range s {
		switch r {
		case '{', '}', '[', ']', ',', '#', '"', '\'', '`':
			return true
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == utf8.RuneError {
			return true
		}
	}
	return false
}

// QuoteIfNeeded returns s bare when possible, else Quote(s)
func QuoteIfNeeded(s string) string {
	if NeedsQuotes(s) {
		return Quote(s)
	}
	return s
}

// Quote returns s as a double-quoted PAML string
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '"':
			sb.WriteString(`\"`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == utf8.RuneError && size == 1:
			sb.WriteByte(s[i])
		case unicode.IsControl(r):
			fmt.Fprintf(&sb, `\u{%x}`, r)
		default:
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	sb.WriteByte('"')
	return sb.String()
}
