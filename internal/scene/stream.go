package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mknier/gravis/internal/geom"
)

// streamMessage is the wire envelope of the JSON-lines sink. Exactly
// one payload field is set per message.
type streamMessage struct {
	Kind   string       `json:"kind"`
	Path   string       `json:"path,omitempty"`
	Points [][3]float64 `json:"points,omitempty"`
	Radius float64      `json:"radius,omitempty"`
	Color  [4]uint8     `json:"color,omitempty"`
	Labels []string     `json:"labels,omitempty"`

	Timeline string  `json:"timeline,omitempty"`
	Seconds  float64 `json:"seconds,omitempty"`
}

// StreamSink encodes primitives as JSON lines onto a writer, typically
// a TCP connection to a remote viewer.
type StreamSink struct {
	w   io.WriteCloser
	enc *json.Encoder
}

// NewStreamSink wraps w. The sink owns w and closes it on Close.
func NewStreamSink(w io.WriteCloser) *StreamSink {
	return &StreamSink{w: w, enc: json.NewEncoder(w)}
}

func (s *StreamSink) Log(path string, p Primitive) error {
	msg := streamMessage{Path: path}
	switch t := p.(type) {
	case LineStrip:
		msg.Kind = "line_strip"
		msg.Points = flatten(t.Points)
	case PointCloud:
		msg.Kind = "point_cloud"
		msg.Points = flatten(t.Points)
		msg.Radius = t.Radius
		msg.Color = [4]uint8{t.Color.R, t.Color.G, t.Color.B, t.Color.A}
	case Marker:
		msg.Kind = "marker"
		msg.Points = flatten([]geom.Vec3{t.Pos})
		msg.Radius = t.Radius
		msg.Color = [4]uint8{t.Color.R, t.Color.G, t.Color.B, t.Color.A}
		msg.Labels = t.Labels
	default:
		return fmt.Errorf("scene: unknown primitive %T", p)
	}
	return s.enc.Encode(msg)
}

func (s *StreamSink) SetTime(timeline string, seconds float64) error {
	return s.enc.Encode(streamMessage{Kind: "set_time", Timeline: timeline, Seconds: seconds})
}

func (s *StreamSink) Close() error { return s.w.Close() }

func flatten(pts []geom.Vec3) [][3]float64 {
	out := make([][3]float64, len(pts))
	for i, p := range pts {
		out[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return out
}
