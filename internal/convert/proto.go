// File: proto.go
// Title: Protocol Buffers Converter
// Description: Maps values onto google.protobuf.Value (structpb) and
//              encodes them as protobuf wire bytes or protojson.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package convert

import (
	"math"
	"sort"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/msto63/paml/foundation/paml/value"
)

// maxSafeInteger is the largest integer a double holds exactly
const maxSafeInteger = 1 << 53

// ToProto converts v into a structpb value. Every number becomes a double.
func ToProto(v value.Value) *structpb.Value {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return structpb.NewBoolValue(b)
	case value.KindNumber:
		f, _ := v.AsFloat()
		return structpb.NewNumberValue(f)
	case value.KindString:
		s, _ := v.AsString()
		return structpb.NewStringValue(s)
	case value.KindList:
		items := v.Items()
		list := &structpb.ListValue{Values: make([]*structpb.Value, len(items))}
		for i, item := range items {
			list.Values[i] = ToProto(item)
		}
		return structpb.NewListValue(list)
	case value.KindMap:
		st := &structpb.Struct{Fields: make(map[string]*structpb.Value, v.Len())}
		for _, e := range v.Entries() {
			st.Fields[e.Key] = ToProto(e.Value)
		}
		return structpb.NewStructValue(st)
	default:
		return structpb.NewNullValue()
	}
}

// FromProto converts a structpb value. Struct fields come out sorted by
// name since protobuf maps are unordered. Whole numbers below 2^53 in
// magnitude are integral.
func FromProto(pv *structpb.Value) (value.Value, error) {
	return fromProto(pv, 0)
}

func fromProto(pv *structpb.Value, depth int) (value.Value, error) {
	if depth > maxDepth {
		return value.Value{}, tooDeep(FormatProto)
	}

	switch k := pv.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return value.Null(), nil
	case *structpb.Value_BoolValue:
		return value.Bool(k.BoolValue), nil
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		whole := !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f) && math.Abs(f) < maxSafeInteger
		return value.Number(f, whole), nil
	case *structpb.Value_StringValue:
		return value.String(k.StringValue), nil
	case *structpb.Value_ListValue:
		values := k.ListValue.GetValues()
		items := make([]value.Value, len(values))
		for i, item := range values {
			v, err := fromProto(item, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.List(items...), nil
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b := value.NewMapBuilder()
		for _, key := range keys {
			v, err := fromProto(fields[key], depth+1)
			if err != nil {
				return value.Value{}, err
			}
			if err := b.Add(key, v); err != nil {
				return value.Value{}, duplicateKey(FormatProto, err)
			}
		}
		return b.Build(), nil
	default:
		return value.Value{}, conversionError("unsupported protobuf value kind %T", k)
	}
}

// ToProtoWire encodes v as a serialized google.protobuf.Value
func ToProtoWire(v value.Value) ([]byte, error) {
	out, err := proto.MarshalOptions{Deterministic: true}.Marshal(ToProto(v))
	if err != nil {
		return nil, conversionError("write protobuf: %v", err)
	}
	return out, nil
}

// FromProtoWire decodes a serialized google.protobuf.Value
func FromProtoWire(data []byte) (value.Value, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(data, &pv); err != nil {
		return value.Value{}, conversionError("invalid protobuf: %v", err)
	}
	return FromProto(&pv)
}

// ToProtoJSON encodes v in the protobuf JSON mapping of google.protobuf.Value
func ToProtoJSON(v value.Value, pretty bool) ([]byte, error) {
	out, err := protojson.MarshalOptions{Multiline: pretty}.Marshal(ToProto(v))
	if err != nil {
		return nil, conversionError("write protojson: %v", err)
	}
	return append(out, '\n'), nil
}

// FromProtoJSON decodes the protobuf JSON mapping of google.protobuf.Value
func FromProtoJSON(data []byte) (value.Value, error) {
	var pv structpb.Value
	if err := protojson.Unmarshal(data, &pv); err != nil {
		return value.Value{}, conversionError("invalid protojson: %v", err)
	}
	return FromProto(&pv)
}
