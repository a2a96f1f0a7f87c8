package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/storyframe/stagecam/obj"
)

// DirectorSpec is the on-disk tuning for the camera director.
type DirectorSpec struct {
	ZPin          float64 `yaml:"z_pin"`
	SwipeScaleX   float64 `yaml:"swipe_scale_x"`
	SwipeScaleY   float64 `yaml:"swipe_scale_y"`
	IndicatorX    float64 `yaml:"indicator_x"`
	IndicatorY    float64 `yaml:"indicator_y"`
	LegacyStopAll bool    `yaml:"legacy_stop_all"`
}

// ViewSpec is one named view marker: a world position, a rotation about the
// view axis in degrees, and the orthographic size framing it.
type ViewSpec struct {
	Name  string  `yaml:"name"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
	Size  float64 `yaml:"size"`
}

// ViewsSpec is the list of named view markers for a presentation.
type ViewsSpec struct {
	Views []ViewSpec `yaml:"views"`
}

// Marker converts the spec into a runtime view marker.
func (v ViewSpec) Marker() obj.Marker {
	return obj.Marker{
		Pos:  mgl64.Vec3{v.X, v.Y, 0},
		Rot:  mgl64.QuatRotate(mgl64.DegToRad(v.Angle), mgl64.Vec3{0, 0, 1}),
		Size: v.Size,
	}
}

// LoadSpec loads and unmarshals a prefab YAML into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadViews loads views.yaml and seeds store with a snapshot per marker.
// Existing entries under the same names are replaced.
func LoadViews(store *obj.Store) error {
	spec, err := LoadSpec[ViewsSpec]("views.yaml")
	if err != nil {
		return err
	}
	for _, v := range spec.Views {
		store.Set(v.Name, obj.SnapshotOf(v.Marker()))
	}
	return nil
}
