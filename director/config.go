package director

import "github.com/storyframe/stagecam/obj"

// Config tunes the director. Zero-value fields are replaced by the defaults
// from DefaultConfig when passed to New.
type Config struct {
	// ZPin is the fixed Z plane the camera is held on.
	ZPin float64

	// SwipeScaleX/SwipeScaleY convert a viewport-relative pointer delta
	// into a world-position delta while swipe panning. The negative signs
	// make the scene follow the finger.
	SwipeScaleX float64
	SwipeScaleY float64

	// IndicatorX/IndicatorY place the swipe-mode indicator in normalized
	// screen coordinates. The indicator is clamped so it never leaves the
	// surface.
	IndicatorX float64
	IndicatorY float64

	// LegacyStopAll restores the legacy coupling where starting any
	// pan-family transition also cancels an in-flight fade. Off by
	// default; fade and pan are independent cancellation domains.
	LegacyStopAll bool
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ZPin:        obj.DefaultZPin,
		SwipeScaleX: -2,
		SwipeScaleY: -1,
		IndicatorX:  0.5,
		IndicatorY:  0.92,
	}
}

// withDefaults fills unset tunables. ZPin keeps its zero value only when the
// caller explicitly selects plane 0 through DefaultConfig-then-override, so
// a fully zero config is treated as "use defaults".
func (c Config) withDefaults() Config {
	if c == (Config{}) {
		return DefaultConfig()
	}
	if c.SwipeScaleX == 0 {
		c.SwipeScaleX = -2
	}
	if c.SwipeScaleY == 0 {
		c.SwipeScaleY = -1
	}
	return c
}
