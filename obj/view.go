package obj

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// View is a framing marker supplied by the host: a world position and
// orientation plus the orthographic size the camera should adopt to frame
// it.
type View interface {
	Position() mgl64.Vec3
	Orientation() mgl64.Quat
	ViewSize() float64
}

// Marker is the plain value implementation of View used by specs, tools and
// tests.
type Marker struct {
	Pos  mgl64.Vec3
	Rot  mgl64.Quat
	Size float64
}

func (m Marker) Position() mgl64.Vec3    { return m.Pos }
func (m Marker) Orientation() mgl64.Quat { return m.Rot }
func (m Marker) ViewSize() float64       { return m.Size }

// Snapshot is an immutable capture of a viewpoint. It also satisfies View,
// so stored snapshots can be fed back into any transition.
type Snapshot struct {
	Pos  mgl64.Vec3
	Rot  mgl64.Quat
	Size float64
}

func (s Snapshot) Position() mgl64.Vec3    { return s.Pos }
func (s Snapshot) Orientation() mgl64.Quat { return s.Rot }
func (s Snapshot) ViewSize() float64       { return s.Size }

// SnapshotOf captures a View into a Snapshot value.
func SnapshotOf(v View) Snapshot {
	return Snapshot{Pos: v.Position(), Rot: v.Orientation(), Size: v.ViewSize()}
}

// Store keeps named viewpoint snapshots. Storing under an existing name
// replaces the previous snapshot; entries are never merged.
type Store struct {
	views map[string]Snapshot
}

// NewStore creates an empty view store.
func NewStore() *Store {
	return &Store{views: make(map[string]Snapshot)}
}

// Set stores snap under name, replacing any previous entry.
func (s *Store) Set(name string, snap Snapshot) {
	s.views[name] = snap
}

// Get returns the snapshot stored under name.
func (s *Store) Get(name string) (Snapshot, bool) {
	snap, ok := s.views[name]
	return snap, ok
}

// Len returns the number of stored views.
func (s *Store) Len() int {
	return len(s.views)
}

// Names returns the stored view names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
