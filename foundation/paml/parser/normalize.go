// File: normalize.go
// Title: PAML String Normalizer
// Description: Turns the raw body of a quoted string into its final text:
//              collapses doubled delimiter runs in raw strings, processes
//              backslash escapes in "..." and '...' strings and applies the
//              unindent/singleLine markers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NormalizeString produces the value of a quoted string. Positions in a
// returned *LexError are relative to body: Position is a byte offset into
// body and Line/Column count from the first body character.
func NormalizeString(body string, quote rune, count int, dedent *DedentMarker) (string, error) {
	var s string
	if quote == '`' {
		s = collapseRuns(body, quote, count)
	} else {
		var err error
		if s, err = unescape(body); err != nil {
			return "", err
		}
	}
	if dedent != nil {
		s = applyDedent(s, dedent)
	}
	return s, nil
}

// normalizeToken normalizes a string token and rebases error positions onto
// the whole input.
func normalizeToken(tok Token) (string, error) {
	s, err := NormalizeString(tok.Value, tok.Quote, tok.QuoteCount, tok.Dedent)
	if err == nil {
		return s, nil
	}
	if lexErr, ok := err.(*LexError); ok {
		line, column := advance(tok.bodyLine, tok.bodyColumn, tok.Value[:lexErr.Position])
		lexErr.Position += tok.bodyPos
		lexErr.Line, lexErr.Column = line, column
	}
	return "", err
}

// advance moves a line/column pair over s
func advance(line, column int, s string) (int, int) {
	for _, r := range s {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// collapseRuns replaces every run of exactly 2*count quotes with count quotes
func collapseRuns(body string, quote rune, count int) string {
	if !strings.ContainsRune(body, quote) {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		if r != quote {
			sb.WriteString(body[i : i+size])
			i += size
			continue
		}
		n := 0
		for i < len(body) && rune(body[i]) == quote {
			n++
			i++
		}
		if n == 2*count {
			n = count
		}
		sb.WriteString(strings.Repeat(string(quote), n))
	}
	return sb.String()
}

var simpleEscapes = map[byte]string{
	'n':  "\n",
	't':  "\t",
	'r':  "\r",
	'0':  "\x00",
	'b':  "\b",
	'f':  "\f",
	'\\': "\\",
	'"':  "\"",
	'\'': "'",
	'`':  "`",
	'/':  "/",
}

// unescape processes backslash escapes. \xHH is limited to ASCII and
// \u{H...} takes one to six hex digits naming a non-surrogate code point.
func unescape(body string) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}

		if i+1 >= len(body) {
			return "", escapeError(body, i, "trailing backslash")
		}
		next := body[i+1]
		if rep, ok := simpleEscapes[next]; ok {
			sb.WriteString(rep)
			i += 2
			continue
		}

		switch next {
		case 'x':
			if i+4 > len(body) {
				return "", escapeError(body, i, `\x needs two hex digits`)
			}
			n, err := strconv.ParseUint(body[i+2:i+4], 16, 8)
			if err != nil || n > 0x7F {
				return "", escapeError(body, i, fmt.Sprintf(`\x%s is not an ASCII code`, body[i+2:i+4]))
			}
			sb.WriteByte(byte(n))
			i += 4
		case 'u':
			r, width, msg := parseUnicodeEscape(body[i:])
			if msg != "" {
				return "", escapeError(body, i, msg)
			}
			sb.WriteRune(r)
			i += width
		default:
			r, _ := utf8.DecodeRuneInString(body[i+1:])
			return "", escapeError(body, i, fmt.Sprintf(`unknown escape \%c`, r))
		}
	}
	return sb.String(), nil
}

// parseUnicodeEscape decodes \u{H...} at the start of s
func parseUnicodeEscape(s string) (rune, int, string) {
	if len(s) < 3 || s[2] != '{' {
		return 0, 0, `\u must be followed by {hex}`
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return 0, 0, `unterminated \u{...}`
	}
	digits := s[3:end]
	if len(digits) == 0 || len(digits) > 6 {
		return 0, 0, `\u{...} takes 1 to 6 hex digits`
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, fmt.Sprintf(`\u{%s} is not hexadecimal`, digits)
	}
	if n > utf8.MaxRune || (n >= 0xD800 && n <= 0xDFFF) {
		return 0, 0, fmt.Sprintf(`\u{%s} is not a valid code point`, digits)
	}
	return rune(n), end + 1, ""
}

func escapeError(body string, offset int, msg string) *LexError {
	line, column := advance(1, 1, body[:offset])
	return &LexError{
		Kind:     InvalidEscape,
		Message:  msg,
		Position: offset,
		Line:     line,
		Column:   column,
	}
}

// applyDedent strips indentation and, for SingleLine, joins the lines
func applyDedent(s string, m *DedentMarker) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	// An explicit width keeps every line; only the inferred form trims
	// the blank lines around a block.
	width := m.Width
	if width < 0 {
		width = commonIndent(lines[1:])
		if len(lines) > 1 && isBlank(lines[0]) {
			lines = lines[1:]
		}
		if len(lines) > 1 && isBlank(lines[len(lines)-1]) {
			lines = lines[:len(lines)-1]
		}
	}

	for i, line := range lines {
		lines[i] = stripIndent(line, width)
	}

	if m.Mode == SingleLine {
		return strings.Join(lines, " ")
	}
	return strings.Join(lines, "\n")
}

// commonIndent returns the smallest indentation among non-blank lines
func commonIndent(lines []string) int {
	smallest := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if smallest < 0 || n < smallest {
			smallest = n
		}
	}
	if smallest < 0 {
		return 0
	}
	return smallest
}

// stripIndent removes up to width leading spaces or tabs
func stripIndent(line string, width int) string {
	i := 0
	for i < len(line) && i < width && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[i:]
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
