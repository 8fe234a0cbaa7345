// File: parser_test.go
// Title: PAML Parser Unit Tests
// Description: Tests for value classification, containers, keys, error
//              kinds and positions, limits and logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	pamllog "github.com/msto63/paml/foundation/core/log"
	"github.com/msto63/paml/foundation/paml/value"
)

func mustParse(t *testing.T, input string) value.Value {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	return v
}

func mapOf(t *testing.T, kv ...interface{}) value.Value {
	t.Helper()
	b := value.NewMapBuilder()
	for i := 0; i < len(kv); i += 2 {
		if err := b.Add(kv[i].(string), kv[i+1].(value.Value)); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	return b.Build()
}

func TestParser_Scalars(t *testing.T) {
	tests := []struct {
		input string
		want  value.Value
	}{
		{"null", value.Null()},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"42", value.Int(42)},
		{"-7", value.Int(-7)},
		{"0", value.Int(0)},
		{"007", value.Int(7)},
		{"3.14", value.Float(3.14)},
		{"-0.5", value.Float(-0.5)},
		{"1e3", value.Float(1000)},
		{"2.5E-2", value.Float(0.025)},
		{"1.", value.String("1.")},
		{".5", value.String(".5")},
		{"+1", value.String("+1")},
		{"-", value.String("-")},
		{"0x1F", value.String("0x1F")},
		{"1e999", value.String("1e999")},
		{"True", value.String("True")},
		{"nullable", value.String("nullable")},
		{`"42"`, value.String("42")},
		{`"null"`, value.String("null")},
		{"hello-world", value.String("hello-world")},
		{`'''it's mine'''`, value.String("it's mine")},
		{`""`, value.String("")},
		{`unindent>2"  foo\n  bar"`, value.String("foo\nbar")},
		{`unindent>0"\nfoo\n"`, value.String("\nfoo\n")},
		{"don't", value.String("don't")},
		{`say"hi"`, value.String(`say"hi"`)},
		{"a\u00a0b", value.String("a\u00a0b")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("Expected %s %v, got %s (integral=%v)", tt.want.Kind(), tt.want, got.Kind(), got.IsIntegral())
			}
		})
	}
}

func TestParser_Containers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  value.Value
	}{
		{
			name:  "empty list",
			input: "[]",
			want:  value.List(),
		},
		{
			name:  "empty map",
			input: "{ }",
			want:  value.EmptyMap(),
		},
		{
			name:  "list with commas",
			input: "[1, 2 3,]",
			want:  value.List(value.Int(1), value.Int(2), value.Int(3)),
		},
		{
			name:  "apostrophes in bare words",
			input: "[it's mine]",
			want:  value.List(value.String("it's"), value.String("mine")),
		},
		{
			name:  "nested",
			input: `{name "svc", ports [80 443], tls {enabled true}}`,
			want: mapOf(t,
				"name", value.String("svc"),
				"ports", value.List(value.Int(80), value.Int(443)),
				"tls", mapOf(t, "enabled", value.Bool(true)),
			),
		},
		{
			name:  "bare keys are verbatim",
			input: `{true 1 42 x null y "quoted key" z}`,
			want: mapOf(t,
				"true", value.Int(1),
				"42", value.String("x"),
				"null", value.String("y"),
				"quoted key", value.String("z"),
			),
		},
		{
			name:  "comment transparency",
			input: "{ a 1 # b 2 \n c 3 }",
			want:  mapOf(t, "a", value.Int(1), "c", value.Int(3)),
		},
		{
			name:  "nested block comments",
			input: "#[ outer #[ inner ]# still-outer ]# {}",
			want:  value.EmptyMap(),
		},
		{
			name:  "block comment between key and value",
			input: "{a #[ note ]# 1}",
			want:  mapOf(t, "a", value.Int(1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustParse(t, tt.input); !got.Equal(tt.want) {
				t.Errorf("Parse(%q) did not produce the expected tree", tt.input)
			}
		})
	}
}

func TestParser_KeyOrder(t *testing.T) {
	v := mustParse(t, "{z 1 a 2 m 3}")
	keys := v.Keys()
	if strings.Join(keys, ",") != "z,a,m" {
		t.Errorf("Expected insertion order z,a,m, got %v", keys)
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		line     int
		column   int
	}{
		{"duplicate key", "{a 1 a 2}", ErrDuplicateKey, 1, 6},
		{"duplicate quoted key", "{\"a\" 1\n a 2}", ErrDuplicateKey, 2, 2},
		{"list as key", "{[a] 1}", ErrInvalidKey, 1, 2},
		{"map as key", "{{} 1}", ErrInvalidKey, 1, 2},
		{"comma as key", "{, a 1}", ErrInvalidKey, 1, 2},
		{"unterminated list", "[1 2", ErrUnterminatedContainer, 1, 1},
		{"unterminated map", "{a {b 1}", ErrUnterminatedContainer, 1, 1},
		{"unterminated after key", "{a", ErrUnterminatedContainer, 1, 1},
		{"key without value", "{a}", ErrUnexpectedToken, 1, 3},
		{"wrong closer for list", "[1}", ErrUnexpectedToken, 1, 3},
		{"wrong closer for map", "{a 1]", ErrUnexpectedToken, 1, 5},
		{"double comma", "[1,,2]", ErrUnexpectedToken, 1, 4},
		{"leading comma", "[,]", ErrUnexpectedToken, 1, 2},
		{"stray closer", "]", ErrUnexpectedToken, 1, 1},
		{"trailing value", "1 2", ErrTrailingContent, 1, 3},
		{"trailing map", "{} {}", ErrTrailingContent, 1, 4},
		{"empty input", "", ErrEmptyDocument, 1, 1},
		{"only comments", "# nothing\n#[ here ]#", ErrEmptyDocument, 2, 11},
		{"escape error rebased", `{k "x\q"}`, ErrInvalidEscape, 1, 6},
		{"lex error inside list", `[a "b]`, ErrUnterminatedString, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("Expected %v, got %v", tt.sentinel, err)
			}
			line, column, ok := Location(err)
			if !ok {
				t.Fatalf("Location() found no position in %T", err)
			}
			if line != tt.line || column != tt.column {
				t.Errorf("Expected position %d:%d, got %d:%d (%v)", tt.line, tt.column, line, column, err)
			}
		})
	}
}

func TestParser_ErrorPositionOffset(t *testing.T) {
	_, err := Parse(`{k "x\q"}`)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected *LexError, got %T", err)
	}
	if lexErr.Position != 5 {
		t.Errorf("Expected byte offset 5, got %d", lexErr.Position)
	}
}

func TestParser_ErrorCodes(t *testing.T) {
	tests := []struct {
		input string
		code  pamlerror.Code
	}{
		{"{a 1 a 2}", pamlerror.CodeDuplicateKey},
		{"[1 2", pamlerror.CodeSyntaxError},
		{`"open`, pamlerror.CodeLexError},
		{strings.Repeat("[", 300) + strings.Repeat("]", 300), pamlerror.CodeNestingTooDeep},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		wrapped := pamlerror.Wrap(err, "load").WithSource("doc.paml")
		if !pamlerror.HasCode(wrapped, tt.code) {
			t.Errorf("Expected code %s for %.20q, got %s", tt.code, tt.input, pamlerror.GetCode(wrapped))
		}
	}
}

func TestParser_MaxDepth(t *testing.T) {
	p, err := New(Options{MaxDepth: 3, Logger: pamllog.Discard()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := p.Parse("[[{a [1]}]]"); !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("Expected ErrNestingTooDeep, got %v", err)
	}
	if _, err := p.Parse("[[{a 1}]]"); err != nil {
		t.Errorf("Depth 3 should be accepted, got %v", err)
	}
}

func TestParser_DefaultMaxDepth(t *testing.T) {
	ok := strings.Repeat("[", DefaultMaxDepth) + strings.Repeat("]", DefaultMaxDepth)
	if _, err := Parse(ok); err != nil {
		t.Errorf("Depth %d should be accepted, got %v", DefaultMaxDepth, err)
	}

	deep := "[" + ok + "]"
	_, err := Parse(deep)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Kind != NestingTooDeep {
		t.Fatalf("Expected NestingTooDeep, got %v", err)
	}
	if parseErr.Column != DefaultMaxDepth+1 {
		t.Errorf("Expected error at the first bracket over the limit, got column %d", parseErr.Column)
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	p, _ := New(Options{MaxInputLength: 8, Logger: pamllog.Discard()})

	if _, err := p.Parse("[1 2 3]"); err != nil {
		t.Errorf("Short input should parse, got %v", err)
	}
	_, err := p.Parse("[1 2 3 4 5]")
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Expected ErrInputTooLarge, got %v", err)
	}
	if !pamlerror.HasCode(err, pamlerror.CodeInputTooLarge) {
		t.Error("Expected CodeInputTooLarge")
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	if _, err := New(Options{MaxDepth: -1}); err == nil {
		t.Error("Expected error for negative MaxDepth")
	}
	if _, err := New(Options{MaxInputLength: -1}); err == nil {
		t.Error("Expected error for negative MaxInputLength")
	}
}

func TestParser_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := pamllog.NewWithConfig(pamllog.Config{
		Level:  pamllog.LevelDebug,
		Format: pamllog.FormatLogfmt,
		Output: &buf,
	})
	p, _ := New(Options{Logger: logger})

	if _, err := p.Parse("{a 1}"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`message="parse completed"`, `component="paml-parser"`, "input_bytes=5", `root_kind="map"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %s in log output:\n%s", want, out)
		}
	}

	buf.Reset()
	_, _ = p.Parse("{a 1")
	if !strings.Contains(buf.String(), `message="parse failed"`) || !strings.Contains(buf.String(), "line=1") {
		t.Errorf("Expected failure log with position, got:\n%s", buf.String())
	}
}

func TestParser_ConcurrentUse(t *testing.T) {
	p, _ := New(Options{Logger: pamllog.Discard()})
	inputs := []string{"{a 1}", "[1 2 3]", `"x"`, "{b [true false]}"}

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			if _, err := p.Parse(input); err != nil {
				errs <- err
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Parse() error = %v", err)
	}
}

func TestIsReserved(t *testing.T) {
	for _, word := range []string{"null", "true", "false", "1", "-2.5", "3e4"} {
		if !IsReserved(word) {
			t.Errorf("IsReserved(%q) = false", word)
		}
	}
	for _, word := range []string{"nil", "yes", "1.", "abc", ""} {
		if IsReserved(word) {
			t.Errorf("IsReserved(%q) = true", word)
		}
	}
}
