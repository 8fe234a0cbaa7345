// File: codec.go
// Title: PAML Native Codec
// Description: Converts between value.Value trees and ordinary Go data.
//              Marshal walks structs by reflection in field order; Unmarshal
//              decodes through mapstructure using the "paml" struct tag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package codec

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	"github.com/msto63/paml/foundation/paml/parser"
	"github.com/msto63/paml/foundation/paml/printer"
	"github.com/msto63/paml/foundation/paml/value"
)

// TagName is the struct tag read by Marshal and Unmarshal
const TagName = "paml"

// maxDepth stops FromNative on cyclic data
const maxDepth = parser.DefaultMaxDepth

// Marshaler is implemented by types that build their own Value
type Marshaler interface {
	MarshalPAML() (value.Value, error)
}

var (
	valueType         = reflect.TypeOf(value.Value{})
	marshalerType     = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// ToNative converts v into nil, bool, int64, float64, string,
// []interface{} or map[string]interface{}. Integral numbers outside the
// int64 range become float64.
func ToNative(v value.Value) interface{} {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindNumber:
		if n, ok := v.AsInt(); ok {
			return n
		}
		f, _ := v.AsFloat()
		return f
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindList:
		items := v.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = ToNative(item)
		}
		return out
	case value.KindMap:
		out := make(map[string]interface{}, v.Len())
		for _, e := range v.Entries() {
			out[e.Key] = ToNative(e.Value)
		}
		return out
	default:
		return nil
	}
}

// FromNative converts Go data into a Value. Struct fields keep declaration
// order; Go maps are emitted with sorted keys.
func FromNative(x interface{}) (value.Value, error) {
	return fromReflect(reflect.ValueOf(x), 0)
}

func fromReflect(rv reflect.Value, depth int) (value.Value, error) {
	if !rv.IsValid() {
		return value.Null(), nil
	}
	if depth > maxDepth {
		return value.Value{}, unsupported(rv.Type(), "nesting exceeds %d levels", maxDepth)
	}

	if !rv.CanInterface() {
		return fromKind(rv, depth)
	}
	if rv.Type() == valueType {
		return rv.Interface().(value.Value), nil
	}
	if rv.Type().Implements(marshalerType) {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return value.Null(), nil
		}
		v, err := rv.Interface().(Marshaler).MarshalPAML()
		if err != nil {
			return value.Value{}, pamlerror.Wrapf(err, "MarshalPAML of %s", rv.Type()).
				WithCode(pamlerror.CodeConversionFailed)
		}
		return v, nil
	}
	if rv.Type().Implements(textMarshalerType) {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return value.Null(), nil
		}
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return value.Value{}, pamlerror.Wrapf(err, "MarshalText of %s", rv.Type()).
				WithCode(pamlerror.CodeConversionFailed)
		}
		return value.String(string(text)), nil
	}
	return fromKind(rv, depth)
}

func fromKind(rv reflect.Value, depth int) (value.Value, error) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}
		return fromReflect(rv.Elem(), depth+1)
	case reflect.Bool:
		return value.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.Number(float64(rv.Uint()), true), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return value.Value{}, unsupported(rv.Type(), "%v has no PAML literal", f)
		}
		return value.Float(f), nil
	case reflect.String:
		return value.String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return value.Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value.String(string(rv.Bytes())), nil
		}
		return fromSequence(rv, depth)
	case reflect.Array:
		return fromSequence(rv, depth)
	case reflect.Map:
		if rv.IsNil() {
			return value.Null(), nil
		}
		return fromMap(rv, depth)
	case reflect.Struct:
		b := value.NewMapBuilder()
		if err := addStructFields(b, rv, depth); err != nil {
			return value.Value{}, err
		}
		return b.Build(), nil
	default:
		return value.Value{}, unsupported(rv.Type(), "kind %s", rv.Kind())
	}
}

func fromSequence(rv reflect.Value, depth int) (value.Value, error) {
	items := make([]value.Value, rv.Len())
	for i := range items {
		item, err := fromReflect(rv.Index(i), depth+1)
		if err != nil {
			return value.Value{}, err
		}
		items[i] = item
	}
	return value.List(items...), nil
}

func fromMap(rv reflect.Value, depth int) (value.Value, error) {
	type kv struct {
		key string
		val reflect.Value
	}
	pairs := make([]kv, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		var key string
		switch {
		case k.Kind() == reflect.String:
			key = k.String()
		case k.Type().Implements(textMarshalerType):
			text, err := k.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return value.Value{}, pamlerror.Wrapf(err, "map key of %s", rv.Type()).
					WithCode(pamlerror.CodeConversionFailed)
			}
			key = string(text)
		case isIntegerKind(k.Kind()):
			key = fmt.Sprint(k.Interface())
		default:
			return value.Value{}, unsupported(rv.Type(), "map key kind %s", k.Kind())
		}
		pairs = append(pairs, kv{key: key, val: iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	b := value.NewMapBuilder()
	for _, p := range pairs {
		item, err := fromReflect(p.val, depth+1)
		if err != nil {
			return value.Value{}, err
		}
		if err := b.Add(p.key, item); err != nil {
			return value.Value{}, pamlerror.Wrap(err, "convert map").WithCode(pamlerror.CodeDuplicateKey)
		}
	}
	return b.Build(), nil
}

func addStructFields(b *value.MapBuilder, rv reflect.Value, depth int) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name, opts := parseTag(field.Tag.Get(TagName))
		if name == "-" && opts == "" {
			continue
		}
		fv := rv.Field(i)

		if field.Anonymous && name == "" {
			inner := fv
			if inner.Kind() == reflect.Ptr {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if err := addStructFields(b, inner, depth); err != nil {
					return err
				}
				continue
			}
		}
		if field.PkgPath != "" {
			continue
		}

		if name == "" {
			name = field.Name
		}
		if hasOption(opts, "omitempty") && fv.IsZero() {
			continue
		}

		item, err := fromReflect(fv, depth+1)
		if err != nil {
			return err
		}
		if err := b.Add(name, item); err != nil {
			return pamlerror.Wrapf(err, "struct %s", rt).WithCode(pamlerror.CodeDuplicateKey)
		}
	}
	return nil
}

func parseTag(tag string) (string, string) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts
}

func hasOption(opts, want string) bool {
	for _, o := range strings.Split(opts, ",") {
		if o == want {
			return true
		}
	}
	return false
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func unsupported(t reflect.Type, format string, args ...interface{}) error {
	return pamlerror.Newf("cannot convert %s: "+format, append([]interface{}{t}, args...)...).
		WithCode(pamlerror.CodeUnsupportedType).
		WithDetail("type", t.String())
}

// Marshal returns the canonical PAML text of x
func Marshal(x interface{}) ([]byte, error) {
	v, err := FromNative(x)
	if err != nil {
		return nil, err
	}
	return []byte(printer.Serialize(v)), nil
}

// MarshalIndent is like Marshal but writes one element per line
func MarshalIndent(x interface{}, indent string) ([]byte, error) {
	v, err := FromNative(x)
	if err != nil {
		return nil, err
	}
	return []byte(printer.New(printer.Options{Indent: indent}).Sprint(v)), nil
}

// Unmarshal parses data and stores the result in out, which must be a
// non-nil pointer. Unknown map keys are ignored.
func Unmarshal(data []byte, out interface{}) error {
	return unmarshal(data, out, false)
}

// UnmarshalStrict is like Unmarshal but fails on keys that match no field
func UnmarshalStrict(data []byte, out interface{}) error {
	return unmarshal(data, out, true)
}

func unmarshal(data []byte, out interface{}, strict bool) error {
	v, err := parser.Parse(string(data))
	if err != nil {
		return pamlerror.Wrap(err, "unmarshal").WithOperation("parse")
	}
	return Decode(v, out, strict)
}

// Decode stores v in out through mapstructure
func Decode(v value.Value, out interface{}, strict bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		TagName:     TagName,
		Squash:      true,
		ErrorUnused: strict,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return pamlerror.Wrap(err, "create decoder").WithCode(pamlerror.CodeInvalidInput)
	}

	if err := decoder.Decode(ToNative(v)); err != nil {
		return pamlerror.Wrapf(err, "decode into %T", out).
			WithCode(pamlerror.CodeConversionFailed).
			WithOperation("decode")
	}
	return nil
}
