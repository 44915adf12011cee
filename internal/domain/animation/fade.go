package animation

// Fade is a timer running from 0 to Duration, or back down when Reverse
type Fade struct {
	Duration float64
	Timer    float64
	Reverse  bool
}

// NewFade creates a finished forward fade of the given duration
func NewFade(duration float64) *Fade {
	f := &Fade{Duration: duration}
	f.Timer = f.Duration
	return f
}

// Start restarts the fade in the given direction
func (f *Fade) Start(reverse bool) {
	f.Reverse = reverse
	if reverse {
		f.Timer = f.Duration
	} else {
		f.Timer = 0
	}
}

// Update advances the fade by dt
func (f *Fade) Update(dt float64) {
	if f.Done() {
		return
	}
	if f.Reverse {
		f.Timer -= dt
	} else {
		f.Timer += dt
	}
}

// Done reports whether the fade reached its end
func (f *Fade) Done() bool {
	if f.Duration <= 0 {
		return true
	}
	if f.Reverse {
		return f.Timer <= 0
	}
	return f.Timer >= f.Duration
}

// Fraction returns Timer over Duration clamped to [0, 1]
func (f *Fade) Fraction() float64 {
	if f.Duration <= 0 {
		if f.Reverse {
			return 0
		}
		return 1
	}
	v := f.Timer / f.Duration
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
