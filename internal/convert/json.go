// File: json.go
// Title: JSON Converter
// Description: JSON to Value and back through the json-iterator streaming
//              API, which exposes object members in document order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package convert

import (
	"io"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/msto63/paml/foundation/paml/printer"
	"github.com/msto63/paml/foundation/paml/value"
)

var (
	jsonCompact = jsoniter.ConfigCompatibleWithStandardLibrary
	jsonPretty  = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		IndentionStep:          2,
	}.Froze()
)

// FromJSON converts a single JSON document. Object member order is kept and
// repeated member names are rejected.
func FromJSON(data []byte) (value.Value, error) {
	iter := jsoniter.ParseBytes(jsonCompact, data)
	d := &jsonDecoder{iter: iter}

	v := d.read(0)
	if d.err != nil {
		return value.Value{}, d.err
	}
	if failed(iter) {
		return value.Value{}, conversionError("invalid JSON: %v", iter.Error)
	}
	// a clean end of input leaves io.EOF behind
	if next := iter.WhatIsNext(); next != jsoniter.InvalidValue || iter.Error != io.EOF {
		return value.Value{}, conversionError("invalid JSON: unexpected content after document")
	}
	return v, nil
}

type jsonDecoder struct {
	iter *jsoniter.Iterator
	err  error
}

func (d *jsonDecoder) read(depth int) value.Value {
	if d.err != nil {
		return value.Value{}
	}
	if depth > maxDepth {
		d.err = tooDeep(FormatJSON)
		return value.Value{}
	}

	iter := d.iter
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return value.Null()
	case jsoniter.BoolValue:
		return value.Bool(iter.ReadBool())
	case jsoniter.StringValue:
		return value.String(iter.ReadString())
	case jsoniter.NumberValue:
		return d.number(string(iter.ReadNumber()))
	case jsoniter.ArrayValue:
		var items []value.Value
		ok := iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			items = append(items, d.read(depth+1))
			return d.err == nil && !failed(it)
		})
		d.check(ok)
		return value.List(items...)
	case jsoniter.ObjectValue:
		b := value.NewMapBuilder()
		ok := iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			item := d.read(depth + 1)
			if d.err != nil || failed(it) {
				return false
			}
			if err := b.Add(key, item); err != nil {
				d.err = duplicateKey(FormatJSON, err)
				return false
			}
			return true
		})
		d.check(ok)
		return b.Build()
	default:
		if iter.Error == nil || iter.Error == io.EOF {
			d.err = conversionError("invalid JSON: expected a value")
		} else {
			d.err = conversionError("invalid JSON: %v", iter.Error)
		}
		return value.Value{}
	}
}

// check records a failed container read that left no error of its own
func (d *jsonDecoder) check(ok bool) {
	if ok || d.err != nil {
		return
	}
	if failed(d.iter) {
		d.err = conversionError("invalid JSON: %v", d.iter.Error)
		return
	}
	d.err = conversionError("invalid JSON: unterminated container")
}

func failed(it *jsoniter.Iterator) bool {
	return it.Error != nil && it.Error != io.EOF
}

func (d *jsonDecoder) number(text string) value.Value {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		d.err = conversionError("invalid JSON number %q", text)
		return value.Value{}
	}
	return value.Number(f, !strings.ContainsAny(text, ".eE"))
}

// ToJSON writes v as JSON. Numbers keep their PAML spelling so fractional
// values stay fractional; NaN and the infinities cannot be written.
func ToJSON(v value.Value, pretty bool) ([]byte, error) {
	cfg := jsonCompact
	if pretty {
		cfg = jsonPretty
	}
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	if err := writeJSON(stream, v); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, conversionError("write JSON: %v", stream.Error)
	}
	out := make([]byte, 0, stream.Buffered()+1)
	out = append(out, stream.Buffer()...)
	return append(out, '\n'), nil
}

func writeJSON(stream *jsoniter.Stream, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		stream.WriteNil()
	case value.KindBool:
		b, _ := v.AsBool()
		stream.WriteBool(b)
	case value.KindNumber:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return conversionError("JSON has no representation for %s", printer.FormatNumber(v)).
				WithDetail("value", printer.FormatNumber(v))
		}
		stream.WriteRaw(printer.FormatNumber(v))
	case value.KindString:
		s, _ := v.AsString()
		stream.WriteString(s)
	case value.KindList:
		items := v.Items()
		if len(items) == 0 {
			stream.WriteEmptyArray()
			return nil
		}
		stream.WriteArrayStart()
		for i, item := range items {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeJSON(stream, item); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case value.KindMap:
		entries := v.Entries()
		if len(entries) == 0 {
			stream.WriteEmptyObject()
			return nil
		}
		stream.WriteObjectStart()
		for i, e := range entries {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(e.Key)
			if err := writeJSON(stream, e.Value); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	}
	return nil
}
