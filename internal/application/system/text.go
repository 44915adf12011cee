package system

// DisplayText tracks how much of a line has been revealed
type DisplayText struct {
	Timer    float64
	Revealed int
}

// Reset starts a new line
func (d *DisplayText) Reset() {
	d.Timer = 0
	d.Revealed = 0
}

// Update reveals one character per stepTime seconds, never past total.
// Leftover time carries into the next call so the rate does not depend
// on the tick length.
func (d *DisplayText) Update(dt float64, total int, stepTime float64) {
	if d.Revealed >= total {
		d.Revealed = total
		return
	}
	if stepTime <= 0 {
		d.Revealed = total
		return
	}

	d.Timer += dt
	for d.Timer >= stepTime && d.Revealed < total {
		d.Timer -= stepTime
		d.Revealed++
	}
	if d.Revealed >= total {
		d.Timer = 0
	}
}

// Complete reports whether all total characters are shown
func (d *DisplayText) Complete(total int) bool {
	return d.Revealed >= total
}

// RevealAll shows the whole line at once
func (d *DisplayText) RevealAll(total int) {
	d.Revealed = total
	d.Timer = 0
}
