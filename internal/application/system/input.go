package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NoNumber means no option number key was pressed
const NoNumber = -1

// InputSystem handles player input
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	MouseX     int
	MouseY     int
	Click      bool // left button pressed this tick
	AdvanceKey bool // Space or Enter pressed this tick
	Pause      bool // Escape pressed this tick
	Number     int  // zero-based option from keys 1-9, NoNumber for none
}

var numberKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	number := NoNumber
	for i, k := range numberKeys {
		if inpututil.IsKeyJustPressed(k) {
			number = i
			break
		}
	}
	return InputState{
		MouseX:     mx,
		MouseY:     my,
		Click:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		AdvanceKey: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Number:     number,
	}
}

// Hover returns the index of the option rect under the pointer, or NoSelection
func Hover(input InputState, options []image.Rectangle) int {
	p := image.Pt(input.MouseX, input.MouseY)
	for i, r := range options {
		if p.In(r) {
			return i
		}
	}
	return NoSelection
}

// TickInput maps raw input to interpreter input. A click advances only
// inside textBox; options are the on-screen rects of the fork options.
func (s *InputSystem) TickInput(input InputState, textBox image.Rectangle, options []image.Rectangle, dt float64) TickInput {
	tick := Idle(dt)

	if input.AdvanceKey {
		tick.Advance = true
	}
	if input.Click {
		if hover := Hover(input, options); hover != NoSelection {
			tick.Select = hover
		} else if image.Pt(input.MouseX, input.MouseY).In(textBox) {
			tick.Advance = true
		}
	}
	if input.Number != NoNumber && input.Number < len(options) {
		tick.Select = input.Number
	}
	return tick
}
