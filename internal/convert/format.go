// File: format.go
// Title: Format Dispatch
// Description: Names the interchange formats the converters understand and
//              dispatches Decode/Encode to the matching implementation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package convert

import (
	"path/filepath"
	"strings"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	"github.com/msto63/paml/foundation/paml/parser"
	"github.com/msto63/paml/foundation/paml/printer"
	"github.com/msto63/paml/foundation/paml/value"
)

// maxDepth bounds nesting for every decoder in this package
const maxDepth = parser.DefaultMaxDepth

// Format identifies an interchange format
type Format string

const (
	FormatPAML      Format = "paml"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
	FormatTOML      Format = "toml"
	FormatProto     Format = "proto"
	FormatProtoJSON Format = "protojson"
)

// Formats lists every supported format
var Formats = []Format{FormatPAML, FormatJSON, FormatYAML, FormatTOML, FormatProto, FormatProtoJSON}

var extensions = map[string]Format{
	".paml": FormatPAML,
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
	".pb":   FormatProto,
	".bin":  FormatProto,
}

// String returns the format name
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "yml" {
		n = "yaml"
	}
	for _, f := range Formats {
		if string(f) == n {
			return f, nil
		}
	}
	return "", pamlerror.Newf("unknown format %q", name).
		WithCode(pamlerror.CodeInvalidInput).
		WithDetail("supported", Formats)
}

// FormatFromPath guesses the format from a file extension
func FormatFromPath(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// EncodeOptions control Encode
type EncodeOptions struct {
	// Pretty selects the multi-line layout where the format has one
	Pretty bool
}

// Decode reads data in format f
func Decode(f Format, data []byte) (value.Value, error) {
	var (
		v   value.Value
		err error
	)
	switch f {
	case FormatPAML:
		v, err = parser.Parse(string(data))
	case FormatJSON:
		v, err = FromJSON(data)
	case FormatYAML:
		v, err = FromYAML(data)
	case FormatTOML:
		v, err = FromTOML(data)
	case FormatProto:
		v, err = FromProtoWire(data)
	case FormatProtoJSON:
		v, err = FromProtoJSON(data)
	default:
		return value.Value{}, pamlerror.Newf("unknown format %q", f).WithCode(pamlerror.CodeInvalidInput)
	}
	if err != nil {
		return value.Value{}, pamlerror.Wrapf(err, "decode %s", f).WithOperation("decode")
	}
	return v, nil
}

// Encode writes v in format f
func Encode(f Format, v value.Value, opts EncodeOptions) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatPAML:
		if opts.Pretty {
			out = []byte(printer.New(printer.Options{Indent: "  "}).Sprint(v))
		} else {
			out = []byte(printer.Serialize(v) + "\n")
		}
	case FormatJSON:
		out, err = ToJSON(v, opts.Pretty)
	case FormatYAML:
		out, err = ToYAML(v)
	case FormatTOML:
		out, err = ToTOML(v)
	case FormatProto:
		out, err = ToProtoWire(v)
	case FormatProtoJSON:
		out, err = ToProtoJSON(v, opts.Pretty)
	default:
		return nil, pamlerror.Newf("unknown format %q", f).WithCode(pamlerror.CodeInvalidInput)
	}
	if err != nil {
		return nil, pamlerror.Wrapf(err, "encode %s", f).WithOperation("encode")
	}
	return out, nil
}

func conversionError(format string, args ...interface{}) *pamlerror.Error {
	return pamlerror.Newf(format, args...).WithCode(pamlerror.CodeConversionFailed)
}

func tooDeep(format Format) *pamlerror.Error {
	return pamlerror.Newf("%s input nests deeper than %d levels", format, maxDepth).
		WithCode(pamlerror.CodeNestingTooDeep)
}

func duplicateKey(format Format, err error) *pamlerror.Error {
	return pamlerror.Wrapf(err, "%s input", format).WithCode(pamlerror.CodeDuplicateKey)
}
