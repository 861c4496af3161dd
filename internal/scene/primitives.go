// Package scene turns a trajectory dataset into an ordered sequence of
// geometric primitives and delivers them to a rendering sink.
package scene

import "github.com/mknier/gravis/internal/geom"

// Color is an 8-bit RGBA value attached to emitted primitives.
type Color struct {
	R, G, B, A uint8
}

// Styling shared by every emission. Alpha carries the translucency the
// sphere surfaces are drawn with.
var (
	DarkViolet = Color{138, 43, 226, 255}
	Yellow     = Color{255, 255, 0, 255}
	Red        = Color{255, 0, 0, 255}
)

// WithOpacity returns the color with its alpha scaled to the given
// opacity in [0,1].
func (c Color) WithOpacity(o float64) Color {
	if o < 0 {
		o = 0
	} else if o > 1 {
		o = 1
	}
	c.A = uint8(o * 255)
	return c
}

// Primitive is one drawable payload handed to a [Sink]. The renderer
// treats its fields as value data; nothing here is owned state.
type Primitive interface {
	primitive()
}

// LineStrip is an ordered connected path through Cartesian points.
type LineStrip struct {
	Points []geom.Vec3
}

// PointCloud is an unconnected set of styled points, all sharing one
// ui-point radius and color.
type PointCloud struct {
	Points []geom.Vec3
	Radius float64
	Color  Color
}

// Marker is a single styled point, optionally carrying human-readable
// labels.
type Marker struct {
	Pos    geom.Vec3
	Radius float64
	Color  Color
	Labels []string
}

func (LineStrip) primitive()  {}
func (PointCloud) primitive() {}
func (Marker) primitive()     {}

// Sink receives primitives in emission order. Implementations include
// the in-memory [Recorder], the terminal viewer and the remote stream
// sink.
type Sink interface {
	// Log delivers one primitive under an entity path such as
	// "world/trajectory".
	Log(path string, p Primitive) error

	// SetTime tags subsequent Log calls with a position on the named
	// timeline, in seconds.
	SetTime(timeline string, seconds float64) error

	Close() error
}
