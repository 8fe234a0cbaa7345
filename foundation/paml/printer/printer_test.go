// File: printer_test.go
// Title: PAML Serializer Tests
// Description: Tests for canonical output, quoting, number formatting,
//              round trips and idempotent reserialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package printer

import (
	"bytes"
	"math"
	"testing"

	"github.com/msto63/paml/foundation/paml/parser"
	"github.com/msto63/paml/foundation/paml/value"
)

func build(t *testing.T, kv ...interface{}) value.Value {
	t.Helper()
	b := value.NewMapBuilder()
	for i := 0; i < len(kv); i += 2 {
		if err := b.Add(kv[i].(string), kv[i+1].(value.Value)); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	return b.Build()
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"null", value.Null(), "null"},
		{"bools", value.List(value.Bool(true), value.Bool(false)), "[true false]"},
		{"integral", value.Int(-42), "-42"},
		{"big integral", value.Number(1e21, true), "1000000000000000000000"},
		{"fraction", value.Float(3.25), "3.25"},
		{"whole float", value.Float(2), "2.0"},
		{"small float", value.Float(1e-7), "1e-07"},
		{"large float", value.Float(1e21), "1e+21"},
		{"NaN", value.Float(math.NaN()), "NaN"},
		{"infinities", value.List(value.Float(math.Inf(1)), value.Float(math.Inf(-1))), "[+Inf -Inf]"},
		{"bare string", value.String("hello-world"), "hello-world"},
		{"empty string", value.String(""), `""`},
		{"string with space", value.String("a b"), `"a b"`},
		{"reserved word", value.String("true"), `"true"`},
		{"numeric string", value.String("12"), `"12"`},
		{"escapes", value.String("q\"\\\n\t\r"), `"q\"\\\n\t\r"`},
		{"control char", value.String("a\x01b"), `"a\u{1}b"`},
		{"punctuation", value.String("a,b"), `"a,b"`},
		{"comment char", value.String("#tag"), `"#tag"`},
		{"unicode bare", value.String("grüße"), "grüße"},
		{"apostrophe quoted", value.String("don't"), `"don't"`},
		{"non-ascii space quoted", value.String("a\u00a0b"), "\"a\u00a0b\""},
		{"empty containers", value.List(value.List(), value.EmptyMap()), "[[] {}]"},
		{
			"map order kept",
			build(t, "z", value.Int(1), "a key", value.String("v"), "list", value.List(value.Int(1), value.Int(2))),
			`{z 1 "a key" v list [1 2]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(tt.v); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSerializeTo(t *testing.T) {
	var buf bytes.Buffer
	if err := SerializeTo(&buf, value.List(value.Int(1), value.String("x y"))); err != nil {
		t.Fatalf("SerializeTo() error = %v", err)
	}
	if buf.String() != `[1 "x y"]` {
		t.Errorf("Expected [1 \"x y\"], got %s", buf.String())
	}
}

func TestPrinter_Indent(t *testing.T) {
	v := build(t,
		"name", value.String("svc"),
		"ports", value.List(value.Int(80), value.Int(443)),
		"empty", value.EmptyMap(),
	)
	got := New(Options{Indent: "  "}).Sprint(v)
	want := "{\n  name svc\n  ports [\n    80\n    443\n  ]\n  empty {}\n}\n"
	if got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}

	back, err := parser.Parse(got)
	if err != nil {
		t.Fatalf("indented output does not parse: %v", err)
	}
	if !back.Equal(v) {
		t.Error("indented output parsed to a different tree")
	}
}

func TestRoundTrip(t *testing.T) {
	trees := []value.Value{
		value.Null(),
		value.String(""),
		value.String("null"),
		value.String("-1.5e3"),
		value.String("multi\nline\ttext with \"quotes\" and 'single' and `ticks`"),
		value.String("#[ not a comment ]#"),
		value.String("it's"),
		value.String(`unindent"x"`),
		value.String("a\u00a0b"),
		value.String("\x00\x7f\u0085"),
		value.Int(0),
		value.Int(-9007199254740991),
		value.Float(0.1),
		value.Float(-2.5e-300),
		value.Float(100),
		value.List(value.String("a"), value.List(value.List()), value.Bool(false)),
		build(t,
			"", value.String("empty key"),
			"with space", value.Int(1),
			"true", value.Null(),
			"nested", build(t, "x", value.List(value.Float(1.5), value.String("]"))),
		),
	}

	for _, v := range trees {
		text := Serialize(v)
		back, err := parser.Parse(text)
		if err != nil {
			t.Errorf("Parse(%s) error = %v", text, err)
			continue
		}
		if !back.Equal(v) {
			t.Errorf("round trip changed the value: %s -> %s", text, Serialize(back))
		}
	}
}

func TestIdempotentReserialization(t *testing.T) {
	inputs := []string{
		"{ a 1, b [x y,], c { } }",
		"#[ header ]# [1.50 2E3 -0 007 '''it's'''  ]",
		`{'''it's''' "x\ty" ` + "`raw``tick`" + ` unindent"
		    indented
		      more
		"}`,
		"[null true false nullx 1. .5]",
	}

	for _, input := range inputs {
		first, err := parser.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		once := Serialize(first)
		second, err := parser.Parse(once)
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", once, err)
		}
		if twice := Serialize(second); twice != once {
			t.Errorf("reserialization not idempotent:\n%s\n%s", once, twice)
		}
	}
}

func TestNeedsQuotes(t *testing.T) {
	bare := []string{"abc", "a-b_c", "x.y", "http://h/p?q=1", "a>b", "日本", "1.", "+1"}
	quoted := []string{"", "a b", "null", "false", "-3", "1e5", "a{", "a}", "[", "]", ",", "#", `"`, "'", "`", "a\nb", "\t", " "}

	for _, s := range bare {
		if NeedsQuotes(s) {
			t.Errorf("NeedsQuotes(%q) = true, want false", s)
		}
	}
	for _, s := range quoted {
		if !NeedsQuotes(s) {
			t.Errorf("NeedsQuotes(%q) = false, want true", s)
		}
	}
}
