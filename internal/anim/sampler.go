// Package anim selects which dataset samples become animation frames.
//
// A requested step size in seconds of proper time is mapped onto an
// index stride, assuming the worldline is sampled roughly uniformly in
// proper time. The stride is clamped so a playback never exceeds the
// dataset's frame bound.
package anim

import (
	"log"
	"math"

	"github.com/mknier/gravis/internal/trajectory"
)

// Reporter receives recoverable sampling diagnostics. It exists so
// warnings are observable by callers and tests instead of disappearing
// into a global logger.
type Reporter interface {
	Warnf(format string, args ...any)
}

// LogReporter forwards warnings to the standard logger.
type LogReporter struct{}

func (LogReporter) Warnf(format string, args ...any) { log.Printf("warning: "+format, args...) }

// Sampler computes frame index subsequences over one dataset.
type Sampler struct {
	ds  *trajectory.Dataset
	rep Reporter
}

// NewSampler returns a sampler for ds. A nil reporter falls back to
// [LogReporter].
func NewSampler(ds *trajectory.Dataset, rep Reporter) *Sampler {
	if rep == nil {
		rep = LogReporter{}
	}
	return &Sampler{ds: ds, rep: rep}
}

// FrameIndices maps stepSize (seconds of proper time between frames)
// to a strictly increasing sequence of sample indices.
//
// A stepSize <= 0 disables animation and returns nil, as does an empty
// dataset or one whose proper-time span is zero. Index 0, the initial
// sample, is never emitted. When the computed stride exceeds the
// dataset's frame bound it is clamped and a warning is reported; the
// result is still valid.
func (s *Sampler) FrameIndices(stepSize float64) []int {
	if stepSize <= 0 {
		return nil
	}

	n := s.ds.Len()
	tauMax := s.ds.MaxTau()
	if n < 2 || tauMax == 0 {
		return nil
	}

	step := int(math.Ceil(stepSize / tauMax * float64(n)))
	if step < 1 {
		step = 1
	}
	if max := s.ds.MaxAnimFrames(); step > max {
		step = max
		s.rep.Warnf("animation step size too large; number of animation frames will be limited to %d", max)
	}

	indices := make([]int, 0, (n-1+step-1)/step)
	for k := 1; k < n; k += step {
		indices = append(indices, k)
	}
	return indices
}
