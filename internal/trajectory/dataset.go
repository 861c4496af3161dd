// Package trajectory holds validated spacetime sample sequences.
//
// A [Dataset] wraps one simulated worldline: rows of (tau, t, r, theta,
// phi) where tau is proper time along the worldline and t coordinate
// time. Construction converts the spatial triple to Cartesian and copies
// everything into an immutable sample slice; the caller's matrix is
// never touched afterwards.
package trajectory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mknier/gravis/internal/geom"
)

// NumColumns is the fixed row width of raw trajectory input:
// tau, t and the three spatial coordinates.
const NumColumns = 5

// DefaultMaxAnimFrames bounds how many animation frames a dataset will
// ever produce.
const DefaultMaxAnimFrames = 100

// Conversion selects how the spatial triple of each input row is
// interpreted at construction time.
type Conversion int

const (
	// SphericalToCartesian treats columns 2..4 as (r, theta, phi) and
	// converts them. This is the default.
	SphericalToCartesian Conversion = iota

	// Identity treats columns 2..4 as already-Cartesian (x, y, z).
	Identity
)

// Sample is one converted point of the worldline.
type Sample struct {
	Tau float64
	T   float64
	Pos geom.Vec3
}

// TimeDilation is the coordinate/proper time rate ratio t/tau at this
// sample. A sample at tau == 0 reports 0 rather than dividing by zero.
func (s Sample) TimeDilation() float64 {
	if s.Tau == 0 {
		return 0
	}
	return s.T / s.Tau
}

// TimeDiff is the absolute divergence |t - tau| accumulated by this
// sample.
func (s Sample) TimeDiff() float64 {
	return math.Abs(s.T - s.Tau)
}

// Dataset is an immutable, validated trajectory. The zero-length state
// (from empty or all-zero input) is valid: Len reports 0 and sampling
// over it is a no-op.
type Dataset struct {
	samples   []Sample
	rs        float64
	maxFrames int
}

// Option adjusts dataset construction.
type Option func(*options)

type options struct {
	conversion Conversion
	maxFrames  int
}

// WithConversion overrides the default spherical-to-Cartesian input
// interpretation.
func WithConversion(c Conversion) Option {
	return func(o *options) { o.conversion = c }
}

// WithMaxAnimFrames overrides [DefaultMaxAnimFrames].
func WithMaxAnimFrames(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFrames = n
		}
	}
}

// New builds a dataset from a dense (N,5) matrix of raw samples and the
// Schwarzschild radius rs of the central mass (meters).
//
// It returns [ErrInvalidType] for a nil matrix and [ErrInvalidShape]
// when the column count is not 5. An input with zero rows, or whose
// values are all zero, yields an empty-state dataset.
func New(m mat.Matrix, rs float64, opts ...Option) (*Dataset, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: got nil", ErrInvalidType)
	}
	if rs <= 0 {
		return nil, fmt.Errorf("trajectory: rs must be positive, got %g", rs)
	}

	// An empty *mat.Dense reports (0,0); that is the legitimate
	// zero-row case, not a shape violation.
	rows, cols := m.Dims()
	if cols != NumColumns && !(rows == 0 && cols == 0) {
		return nil, fmt.Errorf("%w: got (%d,%d)", ErrInvalidShape, rows, cols)
	}

	o := options{conversion: SphericalToCartesian, maxFrames: DefaultMaxAnimFrames}
	for _, opt := range opts {
		opt(&o)
	}

	ds := &Dataset{rs: rs, maxFrames: o.maxFrames}
	if rows == 0 || isAllZero(m) {
		return ds, nil
	}

	ds.samples = make([]Sample, rows)
	for i := 0; i < rows; i++ {
		s := Sample{Tau: m.At(i, 0), T: m.At(i, 1)}
		c1, c2, c3 := m.At(i, 2), m.At(i, 3), m.At(i, 4)
		switch o.conversion {
		case Identity:
			s.Pos = geom.Vec3{X: c1, Y: c2, Z: c3}
		default:
			x, y, z := geom.SphericalToCartesian(c1, c2, c3)
			s.Pos = geom.Vec3{X: x, Y: y, Z: z}
		}
		ds.samples[i] = s
	}
	return ds, nil
}

// NewFromRows builds a dataset from raw row slices, validating that
// every row has exactly [NumColumns] fields before handing off to [New].
func NewFromRows(rows [][]float64, rs float64, opts ...Option) (*Dataset, error) {
	for i, row := range rows {
		if len(row) != NumColumns {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrInvalidShape, i, len(row))
		}
	}
	if len(rows) == 0 {
		return New(&mat.Dense{}, rs, opts...)
	}
	flat := make([]float64, 0, len(rows)*NumColumns)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return New(mat.NewDense(len(rows), NumColumns, flat), rs, opts...)
}

func isAllZero(m mat.Matrix) bool {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// Len reports the number of stored samples.
func (d *Dataset) Len() int { return len(d.samples) }

// Rs reports the Schwarzschild radius supplied at construction.
func (d *Dataset) Rs() float64 { return d.rs }

// MaxAnimFrames reports the configured animation frame bound.
func (d *Dataset) MaxAnimFrames() int { return d.maxFrames }

// Sample returns the i-th sample in worldline order.
func (d *Dataset) Sample(i int) Sample { return d.samples[i] }

// Tau returns the proper-time column.
func (d *Dataset) Tau() []float64 { return d.column(func(s Sample) float64 { return s.Tau }) }

// T returns the coordinate-time column.
func (d *Dataset) T() []float64 { return d.column(func(s Sample) float64 { return s.T }) }

// X returns the Cartesian x column.
func (d *Dataset) X() []float64 { return d.column(func(s Sample) float64 { return s.Pos.X }) }

// Y returns the Cartesian y column.
func (d *Dataset) Y() []float64 { return d.column(func(s Sample) float64 { return s.Pos.Y }) }

// Z returns the Cartesian z column.
func (d *Dataset) Z() []float64 { return d.column(func(s Sample) float64 { return s.Pos.Z }) }

func (d *Dataset) column(f func(Sample) float64) []float64 {
	out := make([]float64, len(d.samples))
	for i, s := range d.samples {
		out[i] = f(s)
	}
	return out
}

// Positions returns all Cartesian positions in worldline order.
func (d *Dataset) Positions() []geom.Vec3 {
	out := make([]geom.Vec3, len(d.samples))
	for i, s := range d.samples {
		out[i] = s.Pos
	}
	return out
}

// MaxTau reports the largest proper-time value, 0 for an empty dataset.
func (d *Dataset) MaxTau() float64 {
	max := 0.0
	for _, s := range d.samples {
		if s.Tau > max {
			max = s.Tau
		}
	}
	return max
}

// MaxT reports the largest coordinate-time value, 0 for an empty dataset.
func (d *Dataset) MaxT() float64 {
	max := 0.0
	for _, s := range d.samples {
		if s.T > max {
			max = s.T
		}
	}
	return max
}
