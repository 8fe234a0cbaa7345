// File: toml.go
// Title: TOML Converter
// Description: TOML to Value and back with BurntSushi/toml. Decoding
//              restores document key order from the decoder metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package convert

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/msto63/paml/foundation/paml/value"
)

// tomlOrder maps a table path to its keys in document order. Tables inside
// arrays share the path of the array.
type tomlOrder map[string][]string

func newTOMLOrder(keys []toml.Key) tomlOrder {
	order := make(tomlOrder)
	seen := make(map[string]bool)
	for _, k := range keys {
		if len(k) == 0 {
			continue
		}
		parent := tomlPath(k[:len(k)-1])
		full := tomlPath(k)
		if seen[full] {
			continue
		}
		seen[full] = true
		order[parent] = append(order[parent], k[len(k)-1])
	}
	return order
}

func tomlPath(k []string) string {
	return strings.Join(k, "\x00")
}

// keys returns the keys of m, in document order where known
func (o tomlOrder) keys(path []string, m map[string]interface{}) []string {
	known := o[tomlPath(path)]
	out := make([]string, 0, len(m))
	used := make(map[string]bool, len(m))
	for _, k := range known {
		if _, ok := m[k]; ok && !used[k] {
			out = append(out, k)
			used[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !used[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// FromTOML converts a TOML document. The root is always a map. Duplicate
// keys are rejected by the TOML decoder itself.
func FromTOML(data []byte) (value.Value, error) {
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return value.Value{}, conversionError("invalid TOML: %v", err)
	}
	order := newTOMLOrder(md.Keys())
	return fromTOMLValue(raw, nil, order, 0)
}

func fromTOMLValue(x interface{}, path []string, order tomlOrder, depth int) (value.Value, error) {
	if depth > maxDepth {
		return value.Value{}, tooDeep(FormatTOML)
	}

	switch t := x.(type) {
	case map[string]interface{}:
		b := value.NewMapBuilder()
		for _, k := range order.keys(path, t) {
			child := append(path[:len(path):len(path)], k)
			item, err := fromTOMLValue(t[k], child, order, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			if err := b.Add(k, item); err != nil {
				return value.Value{}, duplicateKey(FormatTOML, err)
			}
		}
		return b.Build(), nil
	case []map[string]interface{}:
		items := make([]value.Value, 0, len(t))
		for _, m := range t {
			item, err := fromTOMLValue(m, path, order, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.List(items...), nil
	case []interface{}:
		items := make([]value.Value, 0, len(t))
		for _, elem := range t {
			item, err := fromTOMLValue(elem, path, order, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.List(items...), nil
	case string:
		return value.String(t), nil
	case bool:
		return value.Bool(t), nil
	case int64:
		return value.Int(t), nil
	case float64:
		return value.Float(t), nil
	case time.Time:
		return value.String(t.Format(time.RFC3339Nano)), nil
	default:
		return value.Value{}, conversionError("unsupported TOML value of type %T", x)
	}
}

// ToTOML writes v as a TOML document. The root must be a map and null has
// no TOML form. The encoder sorts keys within each table.
func ToTOML(v value.Value) ([]byte, error) {
	if v.Kind() != value.KindMap {
		return nil, conversionError("TOML document root must be a map, got %s", v.Kind())
	}
	native, err := toTOMLValue(v, "$")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(native); err != nil {
		return nil, conversionError("write TOML: %v", err)
	}
	return buf.Bytes(), nil
}

func toTOMLValue(v value.Value, path string) (interface{}, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, conversionError("TOML cannot represent null at %s", path).WithDetail("path", path)
	case value.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case value.KindNumber:
		if n, ok := v.AsInt(); ok {
			return n, nil
		}
		f, _ := v.AsFloat()
		return f, nil
	case value.KindString:
		s, _ := v.AsString()
		return s, nil
	case value.KindList:
		items := v.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			x, err := toTOMLValue(item, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out[i] = x
		}
		return out, nil
	default:
		out := make(map[string]interface{}, v.Len())
		for _, e := range v.Entries() {
			x, err := toTOMLValue(e.Value, path+"."+e.Key)
			if err != nil {
				return nil, err
			}
			out[e.Key] = x
		}
		return out, nil
	}
}
