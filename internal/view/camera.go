package view

import (
	"math"

	"github.com/mknier/gravis/internal/geom"
)

// Camera projects world-space scene points onto the canvas with a
// simple rotate-scale-perspective pipeline. Scale is chosen from the
// scene's bounding radius so any trajectory fits the viewport.
type Camera struct {
	RotX, RotY, RotZ float64
	Zoom             float64

	// Dist is the eye distance in normalized scene units.
	Dist float64
}

func NewCamera() *Camera {
	return &Camera{RotX: -0.6, Zoom: 1.0, Dist: 4.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(16, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.05, c.Zoom/1.2) }

func (c *Camera) rotate(p geom.Vec3) geom.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a world point into canvas sub-pixel coordinates. The
// world is normalized by sceneRadius before rotation. ok is false for
// points behind the eye.
func (c *Camera) Project(p geom.Vec3, sceneRadius float64, w, h int) (x, y int, ok bool) {
	if sceneRadius <= 0 {
		sceneRadius = 1
	}
	r := c.rotate(p.Scale(1 / sceneRadius)).Scale(c.Zoom)
	if r.Z >= c.Dist {
		return 0, 0, false
	}
	persp := c.Dist / (c.Dist - r.Z)

	span := float64(h)
	if float64(w) < span {
		span = float64(w)
	}
	scale := span / 2.2
	x = int(r.X*persp*scale) + w/2
	y = int(-r.Y*persp*scale) + h/2
	return x, y, true
}
