package view

import (
	"fmt"
	"os"
	"strings"

	"github.com/mknier/gravis/internal/scene"
)

// Snapshot renders the scene once through the default camera and
// returns the canvas, for headless export.
func Snapshot(elems []element, frames []frame) *Canvas {
	m := newModel(elems, frames)
	m.draw()
	return m.canvas
}

// SnapshotSink is a [scene.Sink] writing a single SVG snapshot of the
// emitted scene on Close instead of opening the viewer.
type SnapshotSink struct {
	Sink
	path  string
	scale float64
}

// NewSnapshotSink writes an SVG to path when the emission completes.
func NewSnapshotSink(path string) *SnapshotSink {
	return &SnapshotSink{path: path, scale: 4}
}

func (s *SnapshotSink) Close() error {
	svg := CanvasToSVG(Snapshot(s.elems, s.frames), s.scale)
	return os.WriteFile(s.path, []byte(svg), 0644)
}

// CanvasToSVG converts the Braille canvas to an SVG dot field. Each
// lit sub-pixel becomes one circle, scale pixels apart.
func CanvasToSVG(c *Canvas, scale float64) string {
	width := float64(c.Width) * scale * 2
	height := float64(c.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#b58aff">
`, width, height, width, height))

	dotRadius := scale * 0.4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.cells[row*c.Width+col]
			if r <= 0x2800 {
				continue
			}
			pattern := r - 0x2800
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					cx := float64(col)*scale*2 + float64(dx)*scale + scale/2
					cy := float64(row)*scale*4 + float64(dy)*scale + scale/2
					sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

var _ scene.Sink = (*SnapshotSink)(nil)
