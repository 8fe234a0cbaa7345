// File: parser.go
// Title: PAML Recursive Descent Parser
// Description: Builds a value.Value tree from the token stream. Bare words
//              are classified as null, bool, number or string; containers
//              are parsed recursively up to a configurable depth. The first
//              error aborts the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	pamllog "github.com/msto63/paml/foundation/core/log"
	"github.com/msto63/paml/foundation/paml/value"
)

// DefaultMaxDepth is used when Options.MaxDepth is zero
const DefaultMaxDepth = 256

var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)

// Parser implements recursive descent parsing for PAML. A Parser only holds
// its options, so one instance can serve concurrent Parse calls.
type Parser struct {
	logger  *pamllog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *pamllog.Logger
	// MaxDepth bounds container nesting; 0 means DefaultMaxDepth
	MaxDepth int
	// MaxInputLength bounds the input in bytes; 0 means unlimited
	MaxInputLength int
}

// New creates a new PAML parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative: %d", opts.MaxDepth)
	}
	if opts.MaxInputLength < 0 {
		return nil, fmt.Errorf("max input length must not be negative: %d", opts.MaxInputLength)
	}
	if opts.Logger == nil {
		opts.Logger = pamllog.GetDefault()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "paml-parser"),
		options: opts,
	}, nil
}

// Parse parses text with default options
func Parse(input string) (value.Value, error) {
	p, _ := New(Options{})
	return p.Parse(input)
}

// Parse parses a PAML document and returns its root value
func (p *Parser) Parse(input string) (value.Value, error) {
	if p.options.MaxInputLength > 0 && len(input) > p.options.MaxInputLength {
		return value.Value{}, &ParseError{
			Kind:    InputTooLarge,
			Message: fmt.Sprintf("%d > %d bytes", len(input), p.options.MaxInputLength),
			Line:    1,
			Column:  1,
		}
	}

	timer := p.logger.StartTimer("parse").WithField("input_bytes", len(input))

	st := &state{
		lexer:    NewLexer(input),
		maxDepth: p.options.MaxDepth,
		logger:   p.logger,
		trace:    p.logger.IsLevelEnabled(pamllog.LevelTrace),
	}

	v, err := st.document()
	if err != nil {
		fields := pamllog.Fields{}
		if line, column, ok := Location(err); ok {
			fields["line"] = line
			fields["column"] = column
		}
		timer.StopWithError(err, fields)
		return value.Value{}, err
	}

	timer.Stop(pamllog.Fields{
		"root_kind": v.Kind().String(),
		"tokens":    st.tokens,
	})
	return v, nil
}

// state holds everything that belongs to a single Parse call
type state struct {
	lexer    *Lexer
	current  Token
	depth    int
	maxDepth int
	tokens   int
	logger   *pamllog.Logger
	trace    bool
}

func (s *state) advance() error {
	tok, err := s.lexer.NextToken()
	if err != nil {
		return err
	}
	s.current = tok
	s.tokens++
	if s.trace {
		s.logger.Trace("token", pamllog.Fields{
			"token":  tok.String(),
			"line":   tok.Line,
			"column": tok.Column,
		})
	}
	return nil
}

func (s *state) document() (value.Value, error) {
	if err := s.advance(); err != nil {
		return value.Value{}, err
	}
	if s.current.Type == TokenEOF {
		return value.Value{}, s.errorAt(s.current, EmptyDocument, "no value found")
	}

	v, err := s.parseValue()
	if err != nil {
		return value.Value{}, err
	}

	if s.current.Type != TokenEOF {
		return value.Value{}, s.errorAt(s.current, TrailingContent, "found "+describe(s.current))
	}
	return v, nil
}

func (s *state) parseValue() (value.Value, error) {
	tok := s.current
	switch tok.Type {
	case TokenOpenBracket:
		return s.parseList()
	case TokenOpenBrace:
		return s.parseMap()
	case TokenBareWord:
		if err := s.advance(); err != nil {
			return value.Value{}, err
		}
		return classify(tok.Value), nil
	case TokenQuotedString:
		str, err := normalizeToken(tok)
		if err != nil {
			return value.Value{}, err
		}
		if err := s.advance(); err != nil {
			return value.Value{}, err
		}
		return value.String(str), nil
	default:
		return value.Value{}, s.errorAt(tok, UnexpectedToken, "expected value, found "+describe(tok))
	}
}

func (s *state) enter(open Token) error {
	s.depth++
	if s.depth > s.maxDepth {
		return s.errorAt(open, NestingTooDeep, fmt.Sprintf("more than %d levels", s.maxDepth))
	}
	return nil
}

func (s *state) parseList() (value.Value, error) {
	open := s.current
	if err := s.enter(open); err != nil {
		return value.Value{}, err
	}
	defer func() { s.depth-- }()

	if err := s.advance(); err != nil {
		return value.Value{}, err
	}

	var items []value.Value
	for {
		switch s.current.Type {
		case TokenEOF:
			return value.Value{}, s.unterminated(open, "list")
		case TokenCloseBracket:
			if err := s.advance(); err != nil {
				return value.Value{}, err
			}
			return value.List(items...), nil
		case TokenCloseBrace, TokenComma:
			return value.Value{}, s.errorAt(s.current, UnexpectedToken,
				fmt.Sprintf("expected value or ']', found %s", describe(s.current)))
		}

		item, err := s.parseValue()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)

		if err := s.skipSeparator(); err != nil {
			return value.Value{}, err
		}
	}
}

func (s *state) parseMap() (value.Value, error) {
	open := s.current
	if err := s.enter(open); err != nil {
		return value.Value{}, err
	}
	defer func() { s.depth-- }()

	if err := s.advance(); err != nil {
		return value.Value{}, err
	}

	b := value.NewMapBuilder()
	for {
		keyTok := s.current
		var key string

		switch keyTok.Type {
		case TokenEOF:
			return value.Value{}, s.unterminated(open, "map")
		case TokenCloseBrace:
			if err := s.advance(); err != nil {
				return value.Value{}, err
			}
			return b.Build(), nil
		case TokenOpenBrace, TokenOpenBracket, TokenComma:
			return value.Value{}, s.errorAt(keyTok, InvalidKey,
				fmt.Sprintf("keys must be strings, found %s", describe(keyTok)))
		case TokenCloseBracket:
			return value.Value{}, s.errorAt(keyTok, UnexpectedToken, "expected key or '}', found ']'")
		case TokenBareWord:
			key = keyTok.Value
		case TokenQuotedString:
			str, err := normalizeToken(keyTok)
			if err != nil {
				return value.Value{}, err
			}
			key = str
		}

		if b.Has(key) {
			return value.Value{}, s.errorAt(keyTok, DuplicateKey, strconv.Quote(key))
		}
		if err := s.advance(); err != nil {
			return value.Value{}, err
		}

		switch s.current.Type {
		case TokenEOF:
			return value.Value{}, s.unterminated(open, "map")
		case TokenCloseBrace, TokenCloseBracket, TokenComma:
			return value.Value{}, s.errorAt(s.current, UnexpectedToken,
				fmt.Sprintf("expected value for key %q, found %s", key, describe(s.current)))
		}

		item, err := s.parseValue()
		if err != nil {
			return value.Value{}, err
		}
		if err := b.Add(key, item); err != nil {
			if errors.Is(err, value.ErrDuplicateKey) {
				return value.Value{}, s.errorAt(keyTok, DuplicateKey, strconv.Quote(key))
			}
			return value.Value{}, err
		}

		if err := s.skipSeparator(); err != nil {
			return value.Value{}, err
		}
	}
}

// skipSeparator consumes one optional comma after an element
func (s *state) skipSeparator() error {
	if s.current.Type == TokenComma {
		return s.advance()
	}
	return nil
}

func (s *state) unterminated(open Token, what string) error {
	return s.errorAt(open, UnterminatedContainer,
		fmt.Sprintf("%s opened here is never closed", what))
}

func (s *state) errorAt(tok Token, kind ParseErrorKind, msg string) *ParseError {
	return &ParseError{
		Kind:     kind,
		Message:  msg,
		Position: tok.Position,
		Line:     tok.Line,
		Column:   tok.Column,
		Token:    tok,
	}
}

func describe(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenBareWord:
		return strconv.Quote(tok.Value)
	case TokenQuotedString:
		return "quoted string"
	default:
		return "'" + tok.Value + "'"
	}
}

// classify turns a bare word into null, bool, number or string
func classify(word string) value.Value {
	switch word {
	case "null":
		return value.Null()
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	if numberPattern.MatchString(word) {
		f, err := strconv.ParseFloat(word, 64)
		if err != nil {
			// out of float64 range; kept verbatim
			return value.String(word)
		}
		return value.Number(f, !strings.ContainsAny(word, ".eE"))
	}
	return value.String(word)
}

// IsReserved reports whether a bare word would not parse as a string
func IsReserved(word string) bool {
	switch word {
	case "null", "true", "false":
		return true
	}
	return numberPattern.MatchString(word)
}
