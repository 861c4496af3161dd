package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mknier/gravis/internal/geom"
	"github.com/mknier/gravis/internal/scene"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(4, 2)

	out := c.String()
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, r := range strings.ReplaceAll(out, "\n", "") {
		if r != 0x2800 {
			t.Fatalf("fresh canvas contains %U", r)
		}
	}

	c.Set(0, 0)
	if c.String()[:3] == string(rune(0x2800)) {
		t.Error("Set(0,0) left the first cell empty")
	}

	// Out of range is ignored.
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(1000, 1000)
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39)

	lit := 0
	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			lit++
		}
	}
	if lit == 0 {
		t.Error("diagonal line lit no cells")
	}
}

func TestCameraProjectCenters(t *testing.T) {
	cam := NewCamera()
	cam.RotX = 0

	x, y, ok := cam.Project(geom.Vec3{}, 10, 160, 96)
	if !ok {
		t.Fatal("origin not visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("origin projected to (%d,%d), want canvas center (80,48)", x, y)
	}

	// +X maps right of center, projection is x-monotone.
	x2, _, ok := cam.Project(geom.Vec3{X: 5}, 10, 160, 96)
	if !ok || x2 <= x {
		t.Errorf("+x point projected to %d, want > %d", x2, x)
	}
}

func TestSinkSeparatesFrames(t *testing.T) {
	s := NewSink()

	if err := s.Log(scene.PathSingularity, scene.Marker{Radius: 5}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTime("tau", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := s.Log(scene.PathParticle, scene.Marker{Radius: 6}); err != nil {
		t.Fatal(err)
	}

	if len(s.elems) != 1 {
		t.Errorf("static elements = %d, want 1", len(s.elems))
	}
	if len(s.frames) != 1 || s.frames[0].tau != 1.5 {
		t.Errorf("frames = %+v, want one at tau=1.5", s.frames)
	}
}

func TestSinkCloseSpawnsViewer(t *testing.T) {
	s := NewSink()
	var got tea.Model
	s.runProgram = func(m tea.Model) error {
		got = m
		return nil
	}

	if err := s.Log(scene.PathTrajectory, scene.LineStrip{Points: []geom.Vec3{{X: 1}, {X: 2}}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	m, ok := got.(model)
	if !ok {
		t.Fatalf("viewer model is %T", got)
	}
	if len(m.elems) != 1 {
		t.Errorf("viewer got %d elements, want 1", len(m.elems))
	}
	if m.sceneRadius != 2 {
		t.Errorf("scene radius = %g, want 2", m.sceneRadius)
	}
}

func TestViewRendersWithoutFrames(t *testing.T) {
	m := newModel([]element{
		{path: scene.PathSingularity, prim: scene.Marker{}},
	}, nil)

	out := m.View()
	if !strings.Contains(out, "GRAVIS") {
		t.Error("header missing from view")
	}
	if strings.Contains(out, "Frame") {
		t.Error("frame stats shown with no animation frames")
	}
}
