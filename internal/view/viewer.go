// Package view is the local rendering sink: an interactive terminal
// viewer for emitted scenes, drawn on a Braille canvas with a
// rotatable camera. It stands in for an external display process when
// gravis runs without one.
package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mknier/gravis/internal/scene"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	frameRate    = 10
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type element struct {
	path string
	prim scene.Primitive
}

type frame struct {
	tau    float64
	marker scene.Marker
}

// Sink collects an emitted scene and opens the interactive viewer when
// the emission is complete. Close blocks until the viewer exits.
type Sink struct {
	elems  []element
	frames []frame
	tau    float64
	timed  bool

	// runProgram is swapped out by tests.
	runProgram func(tea.Model) error
}

func NewSink() *Sink {
	return &Sink{
		runProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

func (s *Sink) Log(path string, p scene.Primitive) error {
	if m, ok := p.(scene.Marker); ok && s.timed {
		s.frames = append(s.frames, frame{tau: s.tau, marker: m})
		return nil
	}
	s.elems = append(s.elems, element{path: path, prim: p})
	return nil
}

func (s *Sink) SetTime(_ string, seconds float64) error {
	s.tau = seconds
	s.timed = true
	return nil
}

// Close spawns the viewer over everything logged so far.
func (s *Sink) Close() error {
	return s.runProgram(newModel(s.elems, s.frames))
}

// Resolver is the local half of sink selection: it hands the emitter an
// in-process terminal viewer.
type Resolver struct{}

func (Resolver) Resolve() (scene.Sink, error) { return NewSink(), nil }

type tickMsg time.Time

type model struct {
	elems  []element
	frames []frame

	canvas      *Canvas
	camera      *Camera
	sceneRadius float64

	playing  bool
	playHead int
}

func newModel(elems []element, frames []frame) model {
	return model{
		elems:       elems,
		frames:      frames,
		canvas:      NewCanvas(canvasWidth, canvasHeight),
		camera:      NewCamera(),
		sceneRadius: boundingRadius(elems),
		playing:     len(frames) > 0,
	}
}

func boundingRadius(elems []element) float64 {
	max := 0.0
	grow := func(l float64) {
		if l > max {
			max = l
		}
	}
	for _, e := range elems {
		switch p := e.prim.(type) {
		case scene.LineStrip:
			for _, pt := range p.Points {
				grow(pt.Length())
			}
		case scene.PointCloud:
			for _, pt := range p.Points {
				grow(pt.Length())
			}
		case scene.Marker:
			grow(p.Pos.Length())
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

func (m model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.playHead = 0
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case tickMsg:
		if m.playing && len(m.frames) > 0 {
			m.playHead = (m.playHead + 1) % len(m.frames)
		}
		return m, tick()
	}
	return m, nil
}

func (m model) draw() {
	m.canvas.Clear()
	w, h := canvasWidth*2, canvasHeight*4

	for _, e := range m.elems {
		switch p := e.prim.(type) {
		case scene.LineStrip:
			prevOK := false
			var px, py int
			for _, pt := range p.Points {
				x, y, ok := m.camera.Project(pt, m.sceneRadius, w, h)
				if ok && prevOK {
					m.canvas.Line(px, py, x, y)
				}
				px, py, prevOK = x, y, ok
			}
		case scene.PointCloud:
			for _, pt := range p.Points {
				if x, y, ok := m.camera.Project(pt, m.sceneRadius, w, h); ok {
					m.canvas.Set(x, y)
				}
			}
		case scene.Marker:
			if x, y, ok := m.camera.Project(p.Pos, m.sceneRadius, w, h); ok {
				m.canvas.Dot(x, y, 1)
			}
		}
	}

	if len(m.frames) > 0 {
		f := m.frames[m.playHead]
		if x, y, ok := m.camera.Project(f.marker.Pos, m.sceneRadius, w, h); ok {
			m.canvas.Dot(x, y, 2)
		}
	}
}

func (m model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVIS") + "\n")
	s.WriteString(canvasStyle.Render(m.canvas.String()))
	s.WriteByte('\n')

	s.WriteString(labelStyle.Render("Entities") + valueStyle.Render(fmt.Sprint(len(m.elems))) + "\n")
	if len(m.frames) > 0 {
		f := m.frames[m.playHead]
		s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", m.playHead+1, len(m.frames))) + "\n")
		s.WriteString(labelStyle.Render("Tau") + valueStyle.Render(fmt.Sprintf("%gs", f.tau)) + "\n")
		for _, l := range f.marker.Labels {
			s.WriteString(labelStyle.Render("") + valueStyle.Render(l) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("x/y/z:rotate  +/-:zoom  SP:pause  r:rewind  q:quit"))
	return s.String()
}
