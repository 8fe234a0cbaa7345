package value

import (
	"errors"
	"math"
	"testing"
)

func mustMap(t *testing.T, entries ...Entry) Value {
	t.Helper()
	v, err := MapOf(entries...)
	if err != nil {
		t.Fatalf("MapOf() error = %v", err)
	}
	return v
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() || v.Kind() != KindNull {
		t.Errorf("zero Value kind = %v, want null", v.Kind())
	}
	if !v.Equal(Null()) {
		t.Error("zero Value should equal Null()")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindNull:   "null",
		KindBool:   "bool",
		KindNumber: "number",
		KindString: "string",
		KindList:   "list",
		KindMap:    "map",
		Kind(42):   "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestScalarAccessors(t *testing.T) {
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("Bool(true).AsBool() = %v, %v", b, ok)
	}
	if _, ok := String("true").AsBool(); ok {
		t.Error("String.AsBool() should fail")
	}
	if s, ok := String("x").AsString(); !ok || s != "x" {
		t.Errorf("AsString() = %q, %v", s, ok)
	}
	if f, ok := Float(2.5).AsFloat(); !ok || f != 2.5 {
		t.Errorf("AsFloat() = %v, %v", f, ok)
	}
	if n, ok := Int(-7).AsInt(); !ok || n != -7 {
		t.Errorf("AsInt() = %v, %v", n, ok)
	}
	if _, ok := Float(3).AsInt(); ok {
		t.Error("Float(3).AsInt() should fail: number is not integral")
	}
	if _, ok := Number(1e300, true).AsInt(); ok {
		t.Error("AsInt() should fail outside the int64 range")
	}
}

func TestNumberIntegralFlag(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"Int", Int(3), true},
		{"Float whole", Float(3), false},
		{"Number integral", Number(3, true), true},
		{"Number fractional forced off", Number(3.5, true), false},
		{"Number NaN forced off", Number(math.NaN(), true), false},
		{"Number Inf forced off", Number(math.Inf(1), true), false},
		{"string", String("3"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsIntegral(); got != tt.want {
				t.Errorf("IsIntegral() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListIsCopied(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	l := List(items...)
	items[0] = Int(99)

	first, _ := l.Index(0)
	if !first.Equal(Int(1)) {
		t.Error("List() should copy its input")
	}

	out := l.Items()
	out[1] = Int(99)
	second, _ := l.Index(1)
	if !second.Equal(Int(2)) {
		t.Error("Items() should return a copy")
	}

	if _, ok := l.Index(2); ok {
		t.Error("Index() out of range should fail")
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestMapBuilder(t *testing.T) {
	b := NewMapBuilder()
	if err := b.Add("b", Int(1)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := b.Add("a", Int(2)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	err := b.Add("b", Int(3))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Add(duplicate) error = %v, want ErrDuplicateKey", err)
	}
	if b.Len() != 2 {
		t.Errorf("failed Add() should not change the builder, Len() = %d", b.Len())
	}

	m := b.Build()
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Keys() = %v, want [b a]", keys)
	}
	if v, _ := m.Get("b"); !v.Equal(Int(1)) {
		t.Errorf("Get(b) = %v, want first value", v)
	}

	_ = b.Add("c", Null())
	if m.Has("c") {
		t.Error("Build() result should not see later Add() calls")
	}
}

func TestMapOfDuplicate(t *testing.T) {
	_, err := MapOf(Entry{"x", Int(1)}, Entry{"x", Int(2)})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("MapOf() error = %v, want ErrDuplicateKey", err)
	}
}

func TestEqual(t *testing.T) {
	m1 := mustMap(t, Entry{"a", Int(1)}, Entry{"b", List(String("x"))})
	m2 := mustMap(t, Entry{"b", List(String("x"))}, Entry{"a", Int(1)})

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null", Null(), Null(), true},
		{"bool", Bool(true), Bool(false), false},
		{"int vs float", Int(1), Float(1), false},
		{"same float", Float(0.5), Float(0.5), true},
		{"NaN", Float(math.NaN()), Float(math.NaN()), true},
		{"string vs number", String("1"), Int(1), false},
		{"lists", List(Int(1), Int(2)), List(Int(1), Int(2)), true},
		{"list order", List(Int(1), Int(2)), List(Int(2), Int(1)), false},
		{"map order ignored", m1, m2, true},
		{"map missing key", m1, mustMap(t, Entry{"a", Int(1)}), false},
		{"empty map vs empty list", EmptyMap(), List(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFunctionalUpdates(t *testing.T) {
	m := mustMap(t, Entry{"a", Int(1)}, Entry{"b", Int(2)})

	replaced := m.With("a", Int(10))
	if v, _ := replaced.Get("a"); !v.Equal(Int(10)) {
		t.Errorf("With() existing key = %v", v)
	}
	if keys := replaced.Keys(); keys[0] != "a" {
		t.Errorf("With() should keep position, keys = %v", keys)
	}
	if v, _ := m.Get("a"); !v.Equal(Int(1)) {
		t.Error("With() modified the receiver")
	}

	added := m.With("c", Null())
	if keys := added.Keys(); len(keys) != 3 || keys[2] != "c" {
		t.Errorf("With() new key, keys = %v", keys)
	}

	removed := m.Without("a")
	if removed.Has("a") || removed.Len() != 1 || !m.Has("a") {
		t.Error("Without() should remove only from the copy")
	}
	if v, _ := removed.Get("b"); !v.Equal(Int(2)) {
		t.Error("Without() should reindex remaining keys")
	}
	if !m.Without("zzz").Equal(m) {
		t.Error("Without(missing) should return an equal map")
	}

	l := List(Int(1))
	l2 := l.Append(Int(2)).SetIndex(0, String("x"))
	if l.Len() != 1 {
		t.Error("Append() modified the receiver")
	}
	if !l2.Equal(List(String("x"), Int(2))) {
		t.Errorf("Append/SetIndex result = %v", l2.Items())
	}
}

func TestUpdatePanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("With() on a list should panic")
		}
	}()
	List().With("a", Null())
}
