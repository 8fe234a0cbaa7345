// File: map.go
// Title: Map Construction
// Description: MapBuilder and MapOf build Map values while enforcing unique
//              keys; With and Without derive updated maps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package value

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when a key is added to a map twice
var ErrDuplicateKey = errors.New("duplicate key")

// MapBuilder accumulates entries for a Map
type MapBuilder struct {
	entries []Entry
	index   map[string]int
}

// NewMapBuilder returns an empty builder
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{index: make(map[string]int)}
}

// Add appends an entry. It fails with an error wrapping ErrDuplicateKey if
// key is already present; the builder is unchanged in that case.
func (b *MapBuilder) Add(key string, v Value) error {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if _, exists := b.index[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, Entry{Key: key, Value: v})
	return nil
}

// Has reports whether key was added already
func (b *MapBuilder) Has(key string) bool {
	_, ok := b.index[key]
	return ok
}

// Len returns the number of entries added so far
func (b *MapBuilder) Len() int {
	return len(b.entries)
}

// Build returns the Map. The builder can keep being used afterwards without
// affecting the returned value.
func (b *MapBuilder) Build() Value {
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)
	return newMap(entries)
}

// MapOf builds a Map from entries in the given order
func MapOf(entries ...Entry) (Value, error) {
	b := NewMapBuilder()
	for _, e := range entries {
		if err := b.Add(e.Key, e.Value); err != nil {
			return Value{}, err
		}
	}
	return b.Build(), nil
}

// EmptyMap returns a Map without entries
func EmptyMap() Value {
	return newMap(nil)
}

func newMap(entries []Entry) Value {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Key] = i
	}
	return Value{kind: KindMap, entries: entries, index: index}
}

// With returns a new Map with key set to item. An existing key keeps its
// position; a new key is appended. It panics if v is not a Map.
func (v Value) With(key string, item Value) Value {
	v.mustBe(KindMap, "With")
	entries := v.Entries()
	if i, ok := v.index[key]; ok {
		entries[i].Value = item
	} else {
		entries = append(entries, Entry{Key: key, Value: item})
	}
	return newMap(entries)
}

// Without returns a new Map with key removed. It panics if v is not a Map.
func (v Value) Without(key string) Value {
	v.mustBe(KindMap, "Without")
	i, ok := v.index[key]
	if !ok {
		return v
	}
	entries := make([]Entry, 0, len(v.entries)-1)
	entries = append(entries, v.entries[:i]...)
	entries = append(entries, v.entries[i+1:]...)
	return newMap(entries)
}
