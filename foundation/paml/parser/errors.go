// File: errors.go
// Title: PAML Lexer and Parser Errors
// Description: Typed errors for the scanner, the string normalizer and the
//              parser. Every error carries the byte offset, line and column
//              of the failure, matches its kind sentinel with errors.Is and
//              reports a structured error code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"

	pamlerror "github.com/msto63/paml/foundation/core/error"
)

// LexErrorKind classifies scanner and normalizer failures
type LexErrorKind int

const (
	UnterminatedString LexErrorKind = iota + 1
	UnterminatedComment
	InvalidEscape
	MismatchedQuotes
	InvalidQuoteRun
	InvalidStringPrefix
)

// Sentinels for errors.Is
var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrMismatchedQuotes    = errors.New("mismatched closing quotes")
	ErrInvalidQuoteRun     = errors.New("invalid quote run")
	ErrInvalidStringPrefix = errors.New("invalid string prefix")

	ErrInvalidKey            = errors.New("invalid map key")
	ErrDuplicateKey          = errors.New("duplicate map key")
	ErrUnterminatedContainer = errors.New("unterminated container")
	ErrTrailingContent       = errors.New("trailing content after document")
	ErrNestingTooDeep        = errors.New("nesting too deep")
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrEmptyDocument         = errors.New("empty document")
	ErrInputTooLarge         = errors.New("input too large")
)

var lexSentinels = map[LexErrorKind]error{
	UnterminatedString:  ErrUnterminatedString,
	UnterminatedComment: ErrUnterminatedComment,
	InvalidEscape:       ErrInvalidEscape,
	MismatchedQuotes:    ErrMismatchedQuotes,
	InvalidQuoteRun:     ErrInvalidQuoteRun,
	InvalidStringPrefix: ErrInvalidStringPrefix,
}

// String returns the kind's description
func (k LexErrorKind) String() string {
	if err, ok := lexSentinels[k]; ok {
		return err.Error()
	}
	return "lex error"
}

// LexError reports a problem in the character stream: strings, comments and
// escapes.
type LexError struct {
	Kind     LexErrorKind
	Message  string
	Position int
	Line     int
	Column   int
}

func (e *LexError) Error() string {
	msg := e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Line, e.Column, msg)
}

// Is matches the sentinel of the error's kind
func (e *LexError) Is(target error) bool {
	return lexSentinels[e.Kind] == target
}

// Code returns CodeLexError for every lexical failure
func (e *LexError) Code() pamlerror.Code {
	return pamlerror.CodeLexError
}

// ParseErrorKind classifies grammar failures
type ParseErrorKind int

const (
	InvalidKey ParseErrorKind = iota + 1
	DuplicateKey
	UnterminatedContainer
	TrailingContent
	NestingTooDeep
	UnexpectedToken
	EmptyDocument
	InputTooLarge
)

var parseSentinels = map[ParseErrorKind]error{
	InvalidKey:            ErrInvalidKey,
	DuplicateKey:          ErrDuplicateKey,
	UnterminatedContainer: ErrUnterminatedContainer,
	TrailingContent:       ErrTrailingContent,
	NestingTooDeep:        ErrNestingTooDeep,
	UnexpectedToken:       ErrUnexpectedToken,
	EmptyDocument:         ErrEmptyDocument,
	InputTooLarge:         ErrInputTooLarge,
}

// String returns the kind's description
func (k ParseErrorKind) String() string {
	if err, ok := parseSentinels[k]; ok {
		return err.Error()
	}
	return "parse error"
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind     ParseErrorKind
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, msg)
}

// Is matches the sentinel of the error's kind
func (e *ParseError) Is(target error) bool {
	return parseSentinels[e.Kind] == target
}

// Code maps the kind onto the structured error codes
func (e *ParseError) Code() pamlerror.Code {
	switch e.Kind {
	case DuplicateKey:
		return pamlerror.CodeDuplicateKey
	case NestingTooDeep:
		return pamlerror.CodeNestingTooDeep
	case InputTooLarge:
		return pamlerror.CodeInputTooLarge
	default:
		return pamlerror.CodeSyntaxError
	}
}

// Location extracts the position of a LexError or ParseError anywhere in
// err's chain.
func Location(err error) (line, column int, ok bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Line, lexErr.Column, true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Line, parseErr.Column, true
	}
	return 0, 0, false
}
