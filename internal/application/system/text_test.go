package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayText_Update(t *testing.T) {
	tests := []struct {
		name     string
		steps    []float64
		total    int
		stepTime float64
		want     int
	}{
		{"one per step", []float64{0.5, 0.5}, 10, 0.5, 2},
		{"carries remainder", []float64{0.375, 0.375, 0.375, 0.375}, 10, 0.5, 3},
		{"large dt reveals several", []float64{2}, 10, 0.5, 4},
		{"never past total", []float64{100}, 3, 0.5, 3},
		{"zero step time reveals all", []float64{0}, 7, 0, 7},
		{"empty text", []float64{1}, 0, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DisplayText
			for _, dt := range tt.steps {
				d.Update(dt, tt.total, tt.stepTime)
			}
			assert.Equal(t, tt.want, d.Revealed)
		})
	}
}

func TestDisplayText_Monotonic(t *testing.T) {
	var d DisplayText
	prev := 0
	for i := 0; i < 50; i++ {
		d.Update(0.01, 20, 0.03)
		assert.GreaterOrEqual(t, d.Revealed, prev)
		prev = d.Revealed
	}
	assert.LessOrEqual(t, d.Revealed, 20)
}

func TestDisplayText_ResetAndRevealAll(t *testing.T) {
	var d DisplayText
	d.Update(1, 10, 0.25)
	assert.False(t, d.Complete(10))

	d.RevealAll(10)
	assert.True(t, d.Complete(10))
	assert.Equal(t, 0.0, d.Timer)

	d.Reset()
	assert.Equal(t, 0, d.Revealed)
	assert.False(t, d.Complete(10))
	assert.True(t, d.Complete(0))
}
