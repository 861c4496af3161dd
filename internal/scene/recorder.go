package scene

// Entry is one recorded Log call.
type Entry struct {
	Path string
	Prim Primitive

	// Tau is the timeline position in effect when the primitive was
	// logged; Timed reports whether any SetTime preceded it.
	Tau   float64
	Timed bool
}

// Recorder is an in-memory [Sink] capturing the emission sequence. It
// is the reference sink for tests and for headless runs.
type Recorder struct {
	Entries []Entry

	timeline string
	tau      float64
	timed    bool
	closed   bool
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Log(path string, p Primitive) error {
	r.Entries = append(r.Entries, Entry{Path: path, Prim: p, Tau: r.tau, Timed: r.timed})
	return nil
}

func (r *Recorder) SetTime(timeline string, seconds float64) error {
	r.timeline = timeline
	r.tau = seconds
	r.timed = true
	return nil
}

func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool { return r.closed }

// Timeline reports the last timeline name passed to SetTime.
func (r *Recorder) Timeline() string { return r.timeline }

// Paths returns the entity paths in emission order.
func (r *Recorder) Paths() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Path
	}
	return out
}

// ByPath returns all entries logged under one entity path.
func (r *Recorder) ByPath(path string) []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Path == path {
			out = append(out, e)
		}
	}
	return out
}
