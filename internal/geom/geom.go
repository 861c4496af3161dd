// Package geom provides the spherical/Cartesian coordinate transforms
// used throughout gravis.
//
// The physics convention applies everywhere: theta is the polar angle
// measured from the z-axis (colatitude), phi the azimuthal angle in the
// xy-plane. Trajectory points and sphere surface meshes both pass
// through [SphericalToCartesian].
package geom

import "math"

// Vec3 is a point or direction in Cartesian space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// SphericalToCartesian maps (r, theta, phi) to (x, y, z):
//
//	x = r sin(theta) cos(phi)
//	y = r sin(theta) sin(phi)
//	z = r cos(theta)
//
// Inputs may be any finite reals; negative radii and angles outside
// [0,pi]x[0,2pi) follow the natural extension of the formulas.
func SphericalToCartesian(r, theta, phi float64) (x, y, z float64) {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return r * st * cp, r * st * sp, r * ct
}

// CartesianToSpherical inverts [SphericalToCartesian]. At the origin all
// three return values are zero; on the z-axis phi is zero.
func CartesianToSpherical(x, y, z float64) (r, theta, phi float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	theta = math.Acos(z / r)
	phi = math.Atan2(y, x)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return r, theta, phi
}

// SphericalBatch converts equal-length coordinate slices element-wise.
// It panics if the slice lengths differ.
func SphericalBatch(r, theta, phi []float64) []Vec3 {
	if len(theta) != len(r) || len(phi) != len(r) {
		panic("geom: batch slice lengths differ")
	}
	out := make([]Vec3, len(r))
	for i := range r {
		x, y, z := SphericalToCartesian(r[i], theta[i], phi[i])
		out[i] = Vec3{x, y, z}
	}
	return out
}

// SphereMesh samples a sphere surface of the given radius on an n-by-n
// latitude/longitude grid centered at the origin and returns the grid
// points as a flat point cloud.
func SphereMesh(radius float64, n int) []Vec3 {
	if n < 2 {
		n = 2
	}
	points := make([]Vec3, 0, n*n)
	for i := 0; i < n; i++ {
		theta := math.Pi * float64(i) / float64(n-1)
		for j := 0; j < n; j++ {
			phi := 2 * math.Pi * float64(j) / float64(n-1)
			x, y, z := SphericalToCartesian(radius, theta, phi)
			points = append(points, Vec3{x, y, z})
		}
	}
	return points
}
