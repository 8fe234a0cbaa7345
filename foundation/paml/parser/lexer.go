// File: lexer.go
// Title: PAML Lexical Analyzer
// Description: Converts PAML text into a lazy stream of tokens: brackets,
//              commas, bare words and quoted strings. Comments are removed
//              while scanning. Quoted strings are returned with their raw
//              body; escapes and dedent are applied by the normalizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota

	TokenOpenBrace    // {
	TokenCloseBrace   // }
	TokenOpenBracket  // [
	TokenCloseBracket // ]
	TokenComma        // ,

	TokenBareWord     // unquoted run of characters
	TokenQuotedString // "..." '...' `...`
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenOpenBrace:
		return "OPEN_BRACE"
	case TokenCloseBrace:
		return "CLOSE_BRACE"
	case TokenOpenBracket:
		return "OPEN_BRACKET"
	case TokenCloseBracket:
		return "CLOSE_BRACKET"
	case TokenComma:
		return "COMMA"
	case TokenBareWord:
		return "BARE_WORD"
	case TokenQuotedString:
		return "QUOTED_STRING"
	default:
		return "UNKNOWN"
	}
}

// DedentMode selects how a marked string is reshaped
type DedentMode int

const (
	// Unindent strips common indentation
	Unindent DedentMode = iota + 1
	// SingleLine strips indentation and joins lines with spaces
	SingleLine
)

// String returns the marker keyword
func (m DedentMode) String() string {
	switch m {
	case Unindent:
		return "unindent"
	case SingleLine:
		return "singleLine"
	default:
		return ""
	}
}

// DedentMarker is the prefix glued to a quoted string, e.g. unindent>4"..."
type DedentMarker struct {
	Mode DedentMode
	// Width is the explicit column from >N, or -1 to infer it
	Width int
}

// String renders the marker as written in source
func (m *DedentMarker) String() string {
	if m == nil {
		return ""
	}
	if m.Width >= 0 {
		return m.Mode.String() + ">" + strconv.Itoa(m.Width)
	}
	return m.Mode.String()
}

// Token represents a lexical token with position information
type Token struct {
	Type  TokenType
	Value string // bare word text, or the raw body of a quoted string

	// Quoted strings only
	Quote      rune
	QuoteCount int
	Dedent     *DedentMarker

	Position int // Byte offset in input (0-based)
	Line     int // Line number (1-based)
	Column   int // Column in runes (1-based)

	bodyPos    int
	bodyLine   int
	bodyColumn int
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenQuotedString:
		q := strings.Repeat(string(t.Quote), t.QuoteCount)
		return fmt.Sprintf("%s(%s%s%s%s)", t.Type, t.Dedent, q, t.Value, q)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// Raw reports whether the token is a backtick string without escapes
func (t Token) Raw() bool {
	return t.Type == TokenQuotedString && t.Quote == '`'
}

const eof rune = -1

// Lexer performs lexical analysis on PAML input
type Lexer struct {
	input    string
	position int  // byte offset of ch
	readPos  int  // byte offset after ch
	ch       rune // current character, eof at end of input
	line     int  // line of ch (1-based)
	column   int  // column of ch in runes (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.Reset()
	return l
}

// Reset rewinds the lexer to the start of its input
func (l *Lexer) Reset() {
	l.position = 0
	l.readPos = 0
	l.line = 1
	l.column = 0
	l.ch = 0
	l.readChar()
}

// NextToken returns the next token. After the end of input it keeps
// returning TokenEOF.
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipIgnored(); err != nil {
		return Token{}, err
	}

	pos, line, column := l.position, l.line, l.column

	switch l.ch {
	case eof:
		return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}, nil
	case '{':
		return l.single(TokenOpenBrace), nil
	case '}':
		return l.single(TokenCloseBrace), nil
	case '[':
		return l.single(TokenOpenBracket), nil
	case ']':
		return l.single(TokenCloseBracket), nil
	case ',':
		return l.single(TokenComma), nil
	case '"', '\'', '`':
		return l.readQuoted(pos, line, column, nil)
	}

	word, err := l.readBareWord(pos, line, column)
	if err != nil {
		return Token{}, err
	}
	if !isQuote(l.ch) {
		return Token{Type: TokenBareWord, Value: word, Position: pos, Line: line, Column: column}, nil
	}

	marker, _ := parseDedentMarker(word)
	return l.readQuoted(pos, line, column, marker)
}

// Tokenize returns all tokens from the input, ending with TokenEOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) single(tt TokenType) Token {
	tok := Token{Type: tt, Value: string(l.ch), Position: l.position, Line: l.line, Column: l.column}
	l.readChar()
	return tok
}

// readChar advances to the next rune
func (l *Lexer) readChar() {
	if l.ch == eof {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.column++
	if l.readPos >= len(l.input) {
		l.position = len(l.input)
		l.ch = eof
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.position = l.readPos
	l.readPos += size
	l.ch = r
}

// peekChar returns the rune after ch without advancing
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// skipIgnored consumes whitespace and comments
func (l *Lexer) skipIgnored() error {
	for {
		switch {
		case isSpace(l.ch):
			l.readChar()
		case l.ch == '#' && l.peekChar() == '[':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		case l.ch == '#':
			for l.ch != '\n' && l.ch != eof {
				l.readChar()
			}
		default:
			return nil
		}
	}
}

// skipBlockComment consumes a #[ ... ]# comment including nested ones
func (l *Lexer) skipBlockComment() error {
	pos, line, column := l.position, l.line, l.column
	depth := 0
	for {
		switch {
		case l.ch == eof:
			return &LexError{
				Kind:     UnterminatedComment,
				Message:  fmt.Sprintf("%d level(s) still open", depth),
				Position: pos,
				Line:     line,
				Column:   column,
			}
		case l.ch == '#' && l.peekChar() == '[':
			depth++
			l.readChar()
			l.readChar()
		case l.ch == ']' && l.peekChar() == '#':
			depth--
			l.readChar()
			l.readChar()
			if depth == 0 {
				return nil
			}
		default:
			l.readChar()
		}
	}
}

// readBareWord scans a bare word. Quotes inside a word are ordinary
// characters unless the text before them is a dedent marker, in which case
// the word stops at the quote and prefixes the string that follows.
func (l *Lexer) readBareWord(start, line, column int) (string, error) {
	for l.ch != eof && !isDelimiter(l.ch) {
		if isQuote(l.ch) {
			word := l.input[start:l.position]
			if _, ok := parseDedentMarker(word); ok {
				return word, nil
			}
			if name, _, hasWidth := strings.Cut(word, ">"); hasWidth && isMarkerName(name) {
				return "", &LexError{
					Kind:     InvalidStringPrefix,
					Message:  fmt.Sprintf("%q (expected %s>N)", word, name),
					Position: start,
					Line:     line,
					Column:   column,
				}
			}
		}
		l.readChar()
	}
	return l.input[start:l.position], nil
}

// readQuoted scans a quoted string starting at the opening run. start,
// line and column locate the token including any dedent prefix.
func (l *Lexer) readQuoted(start, line, column int, marker *DedentMarker) (Token, error) {
	quote := l.ch
	openPos, openLine, openColumn := l.position, l.line, l.column

	count := l.readRun(quote)

	tok := Token{
		Type:     TokenQuotedString,
		Quote:    quote,
		Dedent:   marker,
		Position: start,
		Line:     line,
		Column:   column,
	}

	// An even run is an empty string: half opens, half closes.
	if count%2 == 0 {
		half := count / 2
		if half%2 == 0 {
			return Token{}, &LexError{
				Kind:     InvalidQuoteRun,
				Message:  fmt.Sprintf("run of %d %c cannot open a string", count, quote),
				Position: openPos,
				Line:     openLine,
				Column:   openColumn,
			}
		}
		tok.QuoteCount = half
		tok.bodyPos, tok.bodyLine, tok.bodyColumn = l.position, l.line, l.column
		return tok, nil
	}

	tok.QuoteCount = count
	tok.bodyPos, tok.bodyLine, tok.bodyColumn = l.position, l.line, l.column
	raw := quote == '`'

	unterminated := func() error {
		return &LexError{
			Kind:     UnterminatedString,
			Message:  fmt.Sprintf("missing closing %s", strings.Repeat(string(quote), count)),
			Position: openPos,
			Line:     openLine,
			Column:   openColumn,
		}
	}

	for {
		switch {
		case l.ch == eof:
			return Token{}, unterminated()
		case l.ch == quote:
			runPos, runLine, runColumn := l.position, l.line, l.column
			n := l.readRun(quote)
			switch {
			case n < count:
				// content
			case n == count:
				tok.Value = l.input[tok.bodyPos:runPos]
				return tok, nil
			case raw && n == 2*count:
				// escaped literal run, collapsed by the normalizer
			default:
				return Token{}, &LexError{
					Kind:     MismatchedQuotes,
					Message:  fmt.Sprintf("string opened with %d %c closed with %d", count, quote, n),
					Position: runPos,
					Line:     runLine,
					Column:   runColumn,
				}
			}
		case !raw && l.ch == '\\':
			l.readChar()
			if l.ch == eof {
				return Token{}, unterminated()
			}
			l.readChar()
		default:
			l.readChar()
		}
	}
}

func (l *Lexer) readRun(r rune) int {
	n := 0
	for l.ch == r {
		n++
		l.readChar()
	}
	return n
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// isSpace reports ASCII whitespace; other Unicode spaces are word characters
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// isDelimiter reports whether r ends a bare word
func isDelimiter(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ',', '#':
		return true
	}
	return isSpace(r)
}

func isMarkerName(name string) bool {
	return name == "unindent" || name == "singleLine"
}

// parseDedentMarker accepts unindent, singleLine, unindent>N and singleLine>N
func parseDedentMarker(word string) (*DedentMarker, bool) {
	name, width, hasWidth := strings.Cut(word, ">")

	var mode DedentMode
	switch name {
	case "unindent":
		mode = Unindent
	case "singleLine":
		mode = SingleLine
	default:
		return nil, false
	}

	if !hasWidth {
		return &DedentMarker{Mode: mode, Width: -1}, true
	}
	if width == "" || strings.TrimLeft(width, "0123456789") != "" {
		return nil, false
	}
	n, err := strconv.Atoi(width)
	if err != nil {
		return nil, false
	}
	return &DedentMarker{Mode: mode, Width: n}, true
}
