package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputSystem_TickInput(t *testing.T) {
	sys := NewInputSystem()
	textBox := image.Rect(0, 200, 320, 240)
	options := []image.Rectangle{
		image.Rect(10, 10, 110, 30),
		image.Rect(10, 40, 110, 60),
	}

	tests := []struct {
		name        string
		input       InputState
		wantAdvance bool
		wantSelect  int
	}{
		{"nothing", InputState{Number: NoNumber}, false, NoSelection},
		{"click in text box", InputState{MouseX: 50, MouseY: 220, Click: true, Number: NoNumber}, true, NoSelection},
		{"click outside", InputState{MouseX: 200, MouseY: 100, Click: true, Number: NoNumber}, false, NoSelection},
		{"hover without click", InputState{MouseX: 50, MouseY: 220, Number: NoNumber}, false, NoSelection},
		{"click on option", InputState{MouseX: 20, MouseY: 50, Click: true, Number: NoNumber}, false, 1},
		{"advance key", InputState{AdvanceKey: true, Number: NoNumber}, true, NoSelection},
		{"number key", InputState{Number: 0}, false, 0},
		{"number key out of range", InputState{Number: 5}, false, NoSelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tick := sys.TickInput(tt.input, textBox, options, 0.016)
			assert.Equal(t, tt.wantAdvance, tick.Advance)
			assert.Equal(t, tt.wantSelect, tick.Select)
			assert.Equal(t, 0.016, tick.DT)
		})
	}
}

func TestHover(t *testing.T) {
	options := []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(0, 20, 10, 30)}

	assert.Equal(t, 0, Hover(InputState{MouseX: 5, MouseY: 5}, options))
	assert.Equal(t, 1, Hover(InputState{MouseX: 5, MouseY: 25}, options))
	assert.Equal(t, NoSelection, Hover(InputState{MouseX: 5, MouseY: 15}, options))
	assert.Equal(t, NoSelection, Hover(InputState{MouseX: 5, MouseY: 5}, nil))
}
