package blacklog

import "testing"

func TestMetaLinkForwardOrder(t *testing.T) {
	root := NewMetaLink([]Meta{{Name: "a", Value: 1}, {Name: "b", Value: 2}})
	mid := root.Next([]Meta{{Name: "c", Value: 3}})
	tail := mid.Next([]Meta{{Name: "d", Value: 4}, {Name: "e", Value: 5}})

	var names []string
	for m := range tail.All() {
		names = append(names, m.Name)
	}
	want := []string{"a", "b", "c", "d", "e"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestMetaLinkIDs(t *testing.T) {
	root := NewMetaLink(nil)
	tail := root.Next(nil).Next(nil)
	if root.ID() != 0 || tail.ID() != 2 {
		t.Fatalf("ids = %d, %d", root.ID(), tail.ID())
	}
}

func TestMetaLinkFind(t *testing.T) {
	root := NewMetaLink([]Meta{{Name: "user", Value: "alice"}})
	tail := root.Next([]Meta{{Name: "attempt", Value: 2}})

	m, ok := tail.Find("user")
	if !ok || m.Value != "alice" {
		t.Fatalf("got %+v, %v", m, ok)
	}
	if _, ok := tail.Find("missing"); ok {
		t.Fatal("found an attribute that does not exist")
	}
}

// Duplicate names stack; lookup scans chronologically, so the earliest
// attached attribute wins.
func TestMetaLinkDuplicateEarliestWins(t *testing.T) {
	root := NewMetaLink([]Meta{{Name: "env", Value: "prod"}})
	tail := root.Next([]Meta{{Name: "env", Value: "staging"}})

	m, ok := tail.Find("env")
	if !ok || m.Value != "prod" {
		t.Fatalf("got %+v, want the root's value", m)
	}

	count := 0
	for m := range tail.All() {
		if m.Name == "env" {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("duplicates collapsed: %d", count)
	}
}

func TestMetaLinkNilAndEmpty(t *testing.T) {
	var nilLink *MetaLink
	for range nilLink.All() {
		t.Fatal("nil chain yielded an attribute")
	}
	if _, ok := nilLink.Find("x"); ok {
		t.Fatal("nil chain found an attribute")
	}
	if nilLink.Len() != 0 {
		t.Fatal("nil chain has non-zero length")
	}

	empty := NewMetaLink(nil)
	if empty.Len() != 0 {
		t.Fatal("empty chain has non-zero length")
	}
}

func TestMetaLinkEarlyStop(t *testing.T) {
	tail := NewMetaLink([]Meta{{Name: "a"}}).Next([]Meta{{Name: "b"}})
	seen := 0
	for range tail.All() {
		seen++
		break
	}
	if seen != 1 {
		t.Fatalf("seen = %d", seen)
	}
}

func TestMetaLinkFlatten(t *testing.T) {
	tail := NewMetaLink([]Meta{{Name: "a", Value: 1}}).Next([]Meta{{Name: "b", Value: 2}})
	flat := tail.flatten()
	if len(flat) != 2 || flat[0].Name != "a" || flat[1].Name != "b" {
		t.Fatalf("got %+v", flat)
	}
}
