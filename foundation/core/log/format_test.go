// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Sorted fields, correlation id, structured error details

package log

import (
	"errors"
	"strings"
	"testing"
	"time"

	pamlerror "github.com/msto63/paml/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "document parsed")
	e.Timestamp = time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
	e.Logger = "paml-parser"
	e.Fields["tokens"] = 12
	e.Fields["bytes"] = 80
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && got.String() == "unknown" {
				t.Errorf("Format(%d).String() = unknown", int(got))
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	e := testEntry()
	e.CorrelationID = "run-1"
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	want := map[string]interface{}{
		"level":          "info",
		"message":        "document parsed",
		"logger":         "paml-parser",
		"correlation_id": "run-1",
		"timestamp":      "2026-10-19T12:30:00Z",
		"tokens":         float64(12),
		"duration_ms":    1.5,
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with newline")
	}
}

func TestJSONFormatter_StructuredError(t *testing.T) {
	e := testEntry()
	e.Error = pamlerror.New("bad input").WithCode(pamlerror.CodeInvalidInput)

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %s", out)
	}
	if details["code"] != "INVALID_INPUT" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestTextFormatter_Format(t *testing.T) {
	e := testEntry()
	e.CorrelationID = "0123456789abcdef"
	e.Error = errors.New("boom")

	out, _ := NewTextFormatter().Format(e)
	want := `12:30:00 [INF] {paml-parser} (run=01234567) document parsed [bytes=80 tokens=12] error="boom"` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true
	e := NewEntry(LevelWarn, "hello")

	out, _ := f.Format(e)
	if string(out) != "[WRN] hello\n" {
		t.Errorf("Format() = %q", out)
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	out, _ := NewConsoleFormatter().Format(testEntry())
	s := string(out)
	if !strings.Contains(s, "INF") || !strings.Contains(s, "document parsed") {
		t.Errorf("Format() = %q", s)
	}
}

func TestLogfmtFormatter_Format(t *testing.T) {
	e := testEntry()
	e.Fields["file"] = "a b.paml"

	out, _ := NewLogfmtFormatter().Format(e)
	want := `timestamp=2026-10-19T12:30:00Z level=info message="document parsed" logger=paml-parser bytes=80 file="a b.paml" tokens=12` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return *JSONFormatter")
	}
	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("GetFormatter(FormatConsole) should return *ConsoleFormatter")
	}
	if _, ok := GetFormatter(FormatLogfmt).(*LogfmtFormatter); !ok {
		t.Error("GetFormatter(FormatLogfmt) should return *LogfmtFormatter")
	}
	if _, ok := GetFormatter(Format(42)).(*TextFormatter); !ok {
		t.Error("GetFormatter(unknown) should fall back to *TextFormatter")
	}
}
