package obj

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestStoreSetOverwrites(t *testing.T) {
	s := NewStore()
	s.Set("stage", Snapshot{Pos: mgl64.Vec3{1, 2, 0}, Rot: mgl64.QuatIdent(), Size: 5})
	s.Set("stage", Snapshot{Pos: mgl64.Vec3{9, 9, 0}, Rot: mgl64.QuatIdent(), Size: 7})

	snap, ok := s.Get("stage")
	if !ok {
		t.Fatalf("expected stored view")
	}
	if snap.Pos != (mgl64.Vec3{9, 9, 0}) || snap.Size != 7 {
		t.Fatalf("expected later store to win, got %+v", snap)
	}
	if s.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", s.Len())
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get("nope"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}

func TestStoreNamesSorted(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		s.Set(name, Snapshot{Size: 1})
	}
	names := s.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestSnapshotOf(t *testing.T) {
	m := Marker{Pos: mgl64.Vec3{4, 5, 0}, Rot: mgl64.QuatIdent(), Size: 3}
	snap := SnapshotOf(m)
	if snap.Pos != m.Pos || snap.Size != m.Size {
		t.Fatalf("SnapshotOf lost data: %+v vs %+v", snap, m)
	}
}
