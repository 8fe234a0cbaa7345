// File: doc.go
// Title: PAML Parser Package Documentation
// Description: Lexical analyzer, string normalizer and parser for PAML
//              documents.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns PAML text into value.Value trees.

The package has three stages:

  - Lexer splits the input into brackets, commas, bare words and quoted
    strings, dropping whitespace, # line comments and nested #[ ... ]#
    block comments on the way.
  - NormalizeString produces the text of a quoted string: escapes for "..."
    and '...', doubled-delimiter collapsing for `...`, and the unindent and
    singleLine markers.
  - Parser assembles values recursively and classifies bare words as null,
    bool, number or string.

Errors are *LexError or *ParseError values with byte offset, line and
column. Use errors.Is with the Err* sentinels to test the kind:

	_, err := parser.Parse(`{a 1 a 2}`)
	if errors.Is(err, parser.ErrDuplicateKey) {
		// ...
	}
*/
package parser
