package animation

import "math"

// timerEpsilon absorbs float drift from summing many small ticks
const timerEpsilon = 1e-9

// Mode is the playback mode of a timeline
type Mode int

const (
	Once Mode = iota
	Loop
)

// String returns the name of the mode
func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Loop:
		return "loop"
	default:
		return "unknown"
	}
}

// Timeline is a playback cursor over one catalog animation
type Timeline struct {
	catalog *Catalog

	Animation  ID
	Frame      int
	Mode       Mode
	Timer      float64 // time spent on the current frame
	TotalTimer float64
	Speed      float64
}

// NewTimeline creates a timeline playing None at speed 1
func NewTimeline(catalog *Catalog) *Timeline {
	return &Timeline{catalog: catalog, Speed: 1}
}

func (t *Timeline) anim() *Animation {
	if t.catalog == nil {
		return &Animation{Frames: []Frame{{}}}
	}
	return t.catalog.Get(t.Animation)
}

// Set switches to id and restarts playback. Unknown ids play None.
func (t *Timeline) Set(id ID, mode Mode) ID {
	if t.catalog == nil || id < 0 || int(id) >= t.catalog.Len() {
		id = None
	}
	t.Animation = id
	t.Mode = mode
	t.Reset()
	return id
}

// SetOnce is Set unless the timeline already plays id
func (t *Timeline) SetOnce(id ID, mode Mode) ID {
	if t.Animation == id {
		return id
	}
	return t.Set(id, mode)
}

// Reset rewinds to the first frame
func (t *Timeline) Reset() {
	t.Frame = 0
	t.Timer = 0
	t.TotalTimer = 0
}

// Current returns the frame being shown
func (t *Timeline) Current() Frame {
	a := t.anim()
	if len(a.Frames) == 0 {
		return Frame{}
	}
	if t.Frame < 0 || t.Frame >= len(a.Frames) {
		t.Frame = 0
	}
	return a.Frames[t.Frame]
}

// Update advances playback by dt scaled by Speed and returns the frame to show
func (t *Timeline) Update(dt float64) Frame {
	a := t.anim()
	n := len(a.Frames)
	if n == 0 {
		return Frame{}
	}

	step := dt * t.Speed
	t.Timer += step
	t.TotalTimer += step

	// Whole loops land on the same frame, so only the remainder is stepped
	if t.Mode == Loop && a.Length() > 0 && t.Timer >= a.Length()-timerEpsilon {
		t.Timer = math.Mod(t.Timer, a.Length())
		if t.Timer >= a.Length()-timerEpsilon {
			t.Timer = 0
		}
	}

	for i := 0; i < n; i++ {
		d := a.Frames[t.Frame].Duration
		if d > 0 && t.Timer < d-timerEpsilon {
			break
		}
		if d > 0 {
			t.Timer = max(t.Timer-d, 0)
		}
		if !t.advance(n) {
			t.Timer = 0
			break
		}
	}
	return a.Frames[t.Frame]
}

// advance moves to the next frame and reports whether it moved
func (t *Timeline) advance(n int) bool {
	switch t.Mode {
	case Loop:
		t.Frame = (t.Frame + 1) % n
		return true
	default:
		if t.Frame >= n-1 {
			t.Frame = n - 1
			return false
		}
		t.Frame++
		return true
	}
}

// IsComplete reports whether a Once timeline reached its last frame.
// Loop timelines never complete.
func (t *Timeline) IsComplete() bool {
	if t.Mode != Once {
		return false
	}
	n := len(t.anim().Frames)
	if n == 0 {
		return true
	}
	return t.Frame >= n-1
}

// Progress returns elapsed time over the scaled animation length, in [0, 1].
// Animations with no length or a stopped timeline report 1.
func (t *Timeline) Progress() float64 {
	length := t.anim().Length()
	if length == 0 || t.Speed == 0 {
		return 1
	}
	p := t.TotalTimer / (length / t.Speed)
	return math.Max(0, math.Min(1, p))
}
