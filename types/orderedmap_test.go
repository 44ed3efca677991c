package types

import (
	"reflect"
	"testing"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"z", "a", "m"}) {
		t.Errorf("got %v", got)
	}
	if m.Len() != 3 {
		t.Errorf("got Len() = %d, want 3", m.Len())
	}
}

func TestOrderedMapSetOverwritesWithoutReordering(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 99)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("overwrite reordered keys: %v", got)
	}
	v, _ := m.Get("a")
	if v != 99 {
		t.Errorf("got %d, want 99", v)
	}
}

func TestOrderedMapGetAndHas(t *testing.T) {
	m := NewOrderedMap[string]()
	if m.Has("x") {
		t.Error("empty map should not have x")
	}
	m.Set("x", "hello")
	if !m.Has("x") {
		t.Error("map should have x after Set")
	}
	v, ok := m.Get("x")
	if !ok || v != "hello" {
		t.Errorf("got %q, %v", v, ok)
	}
}

func TestOrderedMapRangeStopsEarly(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Range(func(k string, v int) bool {
		seen = append(seen, k)
		return k != "b"
	})
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Errorf("got %v, want [a b]", seen)
	}
}

func TestOrderedMapCloneIsIndependent(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)

	clone := m.Clone()
	clone.Set("b", 2)

	if m.Has("b") {
		t.Error("mutating the clone mutated the original")
	}
	if !clone.Has("a") {
		t.Error("clone should retain original entries")
	}
}
