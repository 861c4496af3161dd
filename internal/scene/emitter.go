package scene

import (
	"fmt"

	"github.com/mknier/gravis/internal/anim"
	"github.com/mknier/gravis/internal/geom"
	"github.com/mknier/gravis/internal/trajectory"
)

// Entity paths within the emitted world.
const (
	PathTrajectory  = "world/trajectory"
	PathSingularity = "world/singularity"
	PathBlackHole   = "world/black_hole"
	PathAttractor   = "world/attractor"
	PathParticle    = "world/particle"
)

// Timeline is the playback timeline animation frames are tagged on.
const Timeline = "tau"

// SphereMeshDivisions is the latitude/longitude resolution of emitted
// sphere surfaces.
const SphereMeshDivisions = 16

// PlotOptions controls the optional parts of a scene emission.
type PlotOptions struct {
	// AttractorRadius > 0 adds a second translucent sphere of that
	// radius (meters), for a physical body distinct from the horizon.
	AttractorRadius float64

	// AnimationStepSize > 0 emits playback frames roughly that many
	// seconds of proper time apart.
	AnimationStepSize float64
}

// Emitter composes a dataset, the frame sampler and a sink into one
// deterministic emission sequence.
type Emitter struct {
	sink Sink
	rep  anim.Reporter
}

// NewEmitter returns an emitter writing to sink. A nil reporter falls
// back to the standard logger.
func NewEmitter(sink Sink, rep anim.Reporter) *Emitter {
	if rep == nil {
		rep = anim.LogReporter{}
	}
	return &Emitter{sink: sink, rep: rep}
}

// Plot emits the full scene for ds: the trajectory path (skipped for an
// empty dataset), the singularity marker at the origin, the horizon
// sphere of radius rs, then the optional attractor sphere and animation
// frames. Each call is independent and assumes a fresh sink session.
func (e *Emitter) Plot(ds *trajectory.Dataset, opts PlotOptions) error {
	if ds.Len() > 0 {
		if err := e.sink.Log(PathTrajectory, LineStrip{Points: ds.Positions()}); err != nil {
			return fmt.Errorf("scene: trajectory: %w", err)
		}
	}

	singularity := Marker{Pos: geom.Vec3{}, Radius: 5, Color: DarkViolet}
	if err := e.sink.Log(PathSingularity, singularity); err != nil {
		return fmt.Errorf("scene: singularity: %w", err)
	}

	if err := e.logSphere(PathBlackHole, ds.Rs(), DarkViolet.WithOpacity(0.2)); err != nil {
		return err
	}

	if opts.AttractorRadius > 0 {
		if err := e.logSphere(PathAttractor, opts.AttractorRadius, Yellow.WithOpacity(0.1)); err != nil {
			return err
		}
	}

	if opts.AnimationStepSize > 0 {
		if err := e.logAnimationFrames(ds, opts.AnimationStepSize); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) logSphere(path string, radius float64, color Color) error {
	cloud := PointCloud{
		Points: geom.SphereMesh(radius, SphereMeshDivisions),
		Radius: 2,
		Color:  color,
	}
	if err := e.sink.Log(path, cloud); err != nil {
		return fmt.Errorf("scene: %s: %w", path, err)
	}
	return nil
}

func (e *Emitter) logAnimationFrames(ds *trajectory.Dataset, stepSize float64) error {
	sampler := anim.NewSampler(ds, e.rep)
	for _, k := range sampler.FrameIndices(stepSize) {
		s := ds.Sample(k)
		if err := e.sink.SetTime(Timeline, s.Tau); err != nil {
			return fmt.Errorf("scene: set time: %w", err)
		}

		frame := Marker{
			Pos:    s.Pos,
			Radius: 6,
			Color:  Red,
			Labels: []string{
				fmt.Sprintf("tau=%gs", s.Tau),
				fmt.Sprintf("t=%gs", s.T),
				fmt.Sprintf("γ=%.6f", s.TimeDilation()),
				fmt.Sprintf("Δt=%gs", s.TimeDiff()),
			},
		}
		if err := e.sink.Log(PathParticle, frame); err != nil {
			return fmt.Errorf("scene: frame %d: %w", k, err)
		}
	}
	return nil
}
