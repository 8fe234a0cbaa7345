// File: tree.go
// Title: Value Tree Renderer
// Description: Renders a value.Value as an indented tree for `paml parse`,
//              one node per line with its kind, optionally colored.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package render draws values and diagnostics for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/msto63/paml/foundation/paml/printer"
	"github.com/msto63/paml/foundation/paml/value"
)

// Options control the renderer
type Options struct {
	// Color enables ANSI styling through lipgloss
	Color bool
	// Indent is repeated once per nesting level; defaults to two spaces
	Indent string
}

// Tree returns the tree view of v. Every line ends with a newline.
func Tree(v value.Value, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	t := &treeVisitor{opts: opts, st: newStyles(opts.Color)}
	// the visitor never fails
	_ = value.Accept(v, t)
	return t.sb.String()
}

type treeVisitor struct {
	value.BaseVisitor
	opts Options
	st   styles
	sb   strings.Builder
}

func (t *treeVisitor) line(path value.Path, body string) {
	t.sb.WriteString(strings.Repeat(t.opts.Indent, path.Depth()))
	t.sb.WriteString(t.label(path))
	t.sb.WriteString(body)
	t.sb.WriteByte('\n')
}

func (t *treeVisitor) label(path value.Path) string {
	if len(path) == 0 {
		return ""
	}
	last := path[len(path)-1]
	if last.Index >= 0 {
		return t.st.index.Render(fmt.Sprintf("[%d]", last.Index)) + " "
	}
	return t.st.key.Render(printer.QuoteIfNeeded(last.Key)) + ": "
}

func (t *treeVisitor) VisitScalar(path value.Path, v value.Value) error {
	var text string
	switch v.Kind() {
	case value.KindNull:
		text = t.st.null.Render("null")
	case value.KindBool:
		b, _ := v.AsBool()
		text = t.st.boolean.Render(fmt.Sprint(b))
	case value.KindNumber:
		text = t.st.number.Render(printer.FormatNumber(v))
	case value.KindString:
		s, _ := v.AsString()
		text = t.st.str.Render(printer.Quote(s))
	}
	t.line(path, text+" "+t.st.meta.Render("("+v.Kind().String()+")"))
	return nil
}

func (t *treeVisitor) EnterList(path value.Path, v value.Value) error {
	t.line(path, t.st.container.Render("[]")+" "+t.st.meta.Render(count(v.Len(), "item")))
	return nil
}

func (t *treeVisitor) EnterMap(path value.Path, v value.Value) error {
	t.line(path, t.st.container.Render("{}")+" "+t.st.meta.Render(count(v.Len(), "entry")))
	return nil
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if strings.HasSuffix(noun, "y") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(noun, "y"))
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
