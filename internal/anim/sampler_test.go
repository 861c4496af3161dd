package anim

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/mknier/gravis/internal/trajectory"
)

type recordingReporter struct {
	warnings []string
}

func (r *recordingReporter) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// uniformDataset builds n samples with tau spaced uniformly in [0, tauMax].
func uniformDataset(t *testing.T, n int, tauMax float64) *trajectory.Dataset {
	t.Helper()
	flat := make([]float64, 0, n*5)
	for i := 0; i < n; i++ {
		tau := tauMax * float64(i) / float64(n-1)
		flat = append(flat, tau, tau*1.2, 10, math.Pi/2, float64(i)*0.01)
	}
	ds, err := trajectory.New(mat.NewDense(n, 5, flat), 1)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestFrameIndicesDisabled(t *testing.T) {
	ds := uniformDataset(t, 100, 1)
	s := NewSampler(ds, nil)

	if got := s.FrameIndices(0); got != nil {
		t.Errorf("step 0: got %v, want nil", got)
	}
	if got := s.FrameIndices(-1); got != nil {
		t.Errorf("negative step: got %v, want nil", got)
	}
}

func TestFrameIndicesMonotonic(t *testing.T) {
	ds := uniformDataset(t, 500, 2.0)
	s := NewSampler(ds, nil)

	for _, step := range []float64{0.001, 0.01, 0.1, 1.0, 10.0} {
		indices := s.FrameIndices(step)
		if len(indices) == 0 {
			t.Fatalf("step %g: no frames", step)
		}
		if indices[0] < 1 {
			t.Errorf("step %g: first index %d, want >= 1", step, indices[0])
		}
		for i := 1; i < len(indices); i++ {
			if indices[i] <= indices[i-1] {
				t.Fatalf("step %g: indices not strictly increasing at %d", step, i)
			}
		}
		if last := indices[len(indices)-1]; last >= ds.Len() {
			t.Errorf("step %g: last index %d out of range", step, last)
		}
	}
}

func TestFrameIndicesStride(t *testing.T) {
	// 1000 samples over tauMax=1.0; step 0.005 -> stride ceil(0.005*1000) = 5.
	ds := uniformDataset(t, 1000, 1.0)
	rep := &recordingReporter{}
	s := NewSampler(ds, rep)

	indices := s.FrameIndices(0.005)
	if len(indices) == 0 {
		t.Fatal("no frames")
	}
	if indices[0] != 1 || indices[1] != 6 {
		t.Errorf("stride: got first indices %v, want 1,6,...", indices[:2])
	}
	if len(rep.warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.warnings)
	}
}

func TestFrameIndicesClamped(t *testing.T) {
	// 1000 samples over tauMax=1.0; step 0.5 -> stride ceil(500) = 500,
	// clamped to the frame bound of 100.
	ds := uniformDataset(t, 1000, 1.0)
	rep := &recordingReporter{}
	s := NewSampler(ds, rep)

	indices := s.FrameIndices(0.5)
	if len(rep.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", rep.warnings)
	}
	maxFrames := (999 + 99) / 100
	if len(indices) > maxFrames {
		t.Errorf("emitted %d frames, want at most %d", len(indices), maxFrames)
	}
	if indices[0] != 1 {
		t.Errorf("first index %d, want 1", indices[0])
	}
	for i := 1; i < len(indices); i++ {
		if indices[i]-indices[i-1] != 100 {
			t.Errorf("stride at %d is %d, want 100", i, indices[i]-indices[i-1])
		}
	}
}

func TestFrameIndicesDegenerateSpan(t *testing.T) {
	// All tau values zero: sampling must be a no-op, not a fault.
	ds, err := trajectory.New(mat.NewDense(3, 5, []float64{
		0, 1, 10, math.Pi / 2, 0,
		0, 2, 10, math.Pi / 2, 0.1,
		0, 3, 10, math.Pi / 2, 0.2,
	}), 1)
	if err != nil {
		t.Fatal(err)
	}

	s := NewSampler(ds, nil)
	if got := s.FrameIndices(0.1); got != nil {
		t.Errorf("degenerate span: got %v, want nil", got)
	}
}

func TestFrameIndicesEmptyDataset(t *testing.T) {
	ds, err := trajectory.New(mat.NewDense(2, 5, make([]float64, 10)), 1)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSampler(ds, nil)
	if got := s.FrameIndices(1); got != nil {
		t.Errorf("empty dataset: got %v, want nil", got)
	}
}

func TestFrameIndicesSingleSelection(t *testing.T) {
	// Step spanning the whole worldline selects only index 1.
	ds := uniformDataset(t, 3, 2.0)
	s := NewSampler(ds, nil)

	indices := s.FrameIndices(2.0)
	if len(indices) != 1 || indices[0] != 1 {
		t.Errorf("got %v, want [1]", indices)
	}
}
