// File: status.go
// Title: Check Status Lines
// Description: Formats the per-file ok/FAIL lines of `paml check` with the
//              error position and code, and section titles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package render

import (
	"fmt"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	"github.com/msto63/paml/foundation/paml/parser"
)

// Status returns the one-line result of checking a document: "ok NAME" on
// success, "FAIL NAME:LINE:COL: message [CODE]" on failure.
func Status(name string, err error, opts Options) string {
	st := newStyles(opts.Color)
	if err == nil {
		return st.ok.Render("ok") + "   " + name
	}

	where := name
	if line, col, ok := parser.Location(err); ok {
		where = fmt.Sprintf("%s:%d:%d", name, line, col)
	}
	msg := err.Error()
	if perr, ok := err.(*pamlerror.Error); ok {
		msg = perr.RootCause().Error()
	}
	return fmt.Sprintf("%s %s: %s %s",
		st.errorMsg.Render("FAIL"),
		where,
		msg,
		st.meta.Render("["+pamlerror.GetCode(err).String()+"]"))
}

// Title renders a heading line
func Title(text string, opts Options) string {
	return newStyles(opts.Color).title.Render(text)
}
