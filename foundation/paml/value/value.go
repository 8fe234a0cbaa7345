// File: value.go
// Title: PAML Value Model
// Description: Defines Value, the immutable tagged union every parsed PAML
//              document is made of, together with its constructors and
//              accessors. Maps keep insertion order and unique keys.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package value

import (
	"math"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a PAML value. The zero Value is Null.
//
// Values never change after construction; the update methods (With,
// Without, Append, SetIndex) return new Values and leave the receiver as is.
type Value struct {
	kind     Kind
	boolean  bool
	number   float64
	integral bool
	str      string
	items    []Value
	entries  []Entry
	index    map[string]int
}

// Entry is one key/value pair of a Map
type Entry struct {
	Key   string
	Value Value
}

// Null returns the null value
func Null() Value {
	return Value{}
}

// Bool returns a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Int returns an integral number
func Int(n int64) Value {
	return Value{kind: KindNumber, number: float64(n), integral: true}
}

// Float returns a fractional number. It serializes with a decimal point or
// exponent even when f has no fractional part.
func Float(f float64) Value {
	return Value{kind: KindNumber, number: f}
}

// Number returns a number with an explicit integral flag. The flag is
// cleared for values that are not whole.
func Number(f float64, integral bool) Value {
	if integral && (math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f)) {
		integral = false
	}
	return Value{kind: KindNumber, number: f, integral: integral}
}

// String returns a string value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// List returns a list holding a copy of items
func List(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, items: copied}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

// AsFloat returns the numeric payload
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.number, true
}

// AsInt returns the number as int64. It fails for fractional numbers and
// for integral numbers outside the int64 range.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber || !v.integral {
		return 0, false
	}
	if v.number < math.MinInt64 || v.number >= math.MaxInt64 {
		return 0, false
	}
	return int64(v.number), true
}

// IsIntegral reports whether v is a number written without fraction or exponent
func (v Value) IsIntegral() bool {
	return v.kind == KindNumber && v.integral
}

// AsString returns the string payload
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Len returns the number of items of a List or entries of a Map, else 0
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.entries)
	default:
		return 0
	}
}

// Index returns the i-th item of a List
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindList || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Items returns a copy of the items of a List, nil for other kinds
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Get returns the value stored under key in a Map
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.entries[i].Value, true
}

// Has reports whether a Map contains key
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the keys of a Map in insertion order
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries of a Map in insertion order
func (v Value) Entries() []Entry {
	if v.kind != KindMap {
		return nil
	}
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Equal reports structural equality. Numbers must agree in value and in
// integral flag; maps compare as sets of entries regardless of order.
// NaN is equal to NaN so that trees holding it compare equal to themselves.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber:
		if v.integral != other.integral {
			return false
		}
		if math.IsNaN(v.number) && math.IsNaN(other.number) {
			return true
		}
		return v.number == other.number
	case KindString:
		return v.str == other.str
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(other.entries) {
			return false
		}
		for _, e := range v.entries {
			o, ok := other.Get(e.Key)
			if !ok || !e.Value.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

// Append returns a new List with item added at the end. It panics if v is
// not a List.
func (v Value) Append(item Value) Value {
	v.mustBe(KindList, "Append")
	items := make([]Value, len(v.items), len(v.items)+1)
	copy(items, v.items)
	return Value{kind: KindList, items: append(items, item)}
}

// SetIndex returns a new List with the i-th item replaced. It panics if v is
// not a List or i is out of range.
func (v Value) SetIndex(i int, item Value) Value {
	v.mustBe(KindList, "SetIndex")
	if i < 0 || i >= len(v.items) {
		panic("paml/value: SetIndex out of range")
	}
	items := v.Items()
	items[i] = item
	return Value{kind: KindList, items: items}
}

func (v Value) mustBe(kind Kind, op string) {
	if v.kind != kind {
		panic("paml/value: " + op + " called on " + v.kind.String() + " value")
	}
}
