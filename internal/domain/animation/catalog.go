// Package animation holds frame animations, playback timelines and fades.
package animation

import "image"

// DefaultFrameTime is the duration of a frame that does not set one
const DefaultFrameTime = 0.06

// MenuTexture is the sprite sheet the button animations are cut from
const MenuTexture = "menu"

// ID identifies an animation inside a Catalog
type ID int

// None is the empty animation every catalog starts with
const None ID = 0

// Frame is one image of an animation
type Frame struct {
	Src      image.Rectangle
	Texture  string
	Duration float64
}

// Animation is a named sequence of frames
type Animation struct {
	Name   string
	Frames []Frame
	length float64
}

// Length returns the sum of frame durations
func (a *Animation) Length() float64 {
	return a.length
}

// Catalog maps animation ids to animations
type Catalog struct {
	anims  []Animation
	byName map[string]ID
}

// NewCatalog creates a catalog holding only None
func NewCatalog() *Catalog {
	c := &Catalog{byName: make(map[string]ID)}
	c.anims = append(c.anims, Animation{Name: "", Frames: []Frame{{}}})
	return c
}

// Register adds an animation and returns its id. Registering a name again
// replaces the frames and keeps the id.
func (c *Catalog) Register(name string, frames []Frame) ID {
	fs := make([]Frame, len(frames))
	length := 0.0
	for i, f := range frames {
		if f.Texture == "" {
			f.Texture = MenuTexture
		}
		fs[i] = f
		length += f.Duration
	}
	a := Animation{Name: name, Frames: fs, length: length}

	if id, ok := c.byName[name]; ok {
		c.anims[id] = a
		return id
	}
	id := ID(len(c.anims))
	c.anims = append(c.anims, a)
	c.byName[name] = id
	return id
}

// Lookup finds an animation id by name
func (c *Catalog) Lookup(name string) (ID, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// Get returns the animation for id. Unknown ids resolve to None.
func (c *Catalog) Get(id ID) *Animation {
	if id < 0 || int(id) >= len(c.anims) {
		return &c.anims[None]
	}
	return &c.anims[id]
}

// Name returns the registered name of id, empty for None and unknown ids
func (c *Catalog) Name(id ID) string {
	return c.Get(id).Name
}

// Len returns the number of animations including None
func (c *Catalog) Len() int {
	return len(c.anims)
}

// Strip builds count frames of size w x h laid out left to right from (x, y)
func Strip(x, y, w, h, count int) []Frame {
	frames := make([]Frame, count)
	for i := range frames {
		frames[i] = Frame{
			Src:      image.Rect(x+i*w, y, x+(i+1)*w, y+h),
			Duration: DefaultFrameTime,
		}
	}
	return frames
}

func reversed(frames []Frame) []Frame {
	out := make([]Frame, len(frames))
	for i, f := range frames {
		out[len(frames)-1-i] = f
	}
	return out
}

// Button animation names
const (
	ButtonGenericSelect   = "button_generic_select"
	ButtonGenericDeselect = "button_generic_deselect"
)

// ButtonSelect returns the select animation name for a menu button
// ("play", "settings", "credits", "quit"), big or small.
func ButtonSelect(button string, big bool) string {
	if big {
		return "button_" + button + "_big_select"
	}
	return "button_" + button + "_select"
}

// ButtonDeselect returns the deselect animation name for a menu button
func ButtonDeselect(button string, big bool) string {
	if big {
		return "button_" + button + "_big_deselect"
	}
	return "button_" + button + "_deselect"
}

// DefaultCatalog returns a catalog with the menu button animations
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	// Generic button: vertical strip, deselect plays it backwards
	generic := make([]Frame, 5)
	for i := range generic {
		generic[i] = Frame{Src: image.Rect(1304, i*16, 1304+136, i*16+16), Duration: DefaultFrameTime}
	}
	c.Register(ButtonGenericSelect, generic)
	c.Register(ButtonGenericDeselect, reversed(generic))

	for i, name := range []string{"play", "settings", "credits", "quit"} {
		// Big buttons: 180x23, select is frames 0-4, deselect is 4-7 then back to 0
		y := 330 + i*23
		c.Register(ButtonSelect(name, true), Strip(0, y, 180, 23, 5))
		deselect := append(Strip(4*180, y, 180, 23, 4), Strip(0, y, 180, 23, 1)...)
		c.Register(ButtonDeselect(name, true), deselect)

		// Small buttons: 82x12 with a one pixel gap between rows
		y = 543 + i*13
		c.Register(ButtonSelect(name, false), Strip(0, y, 82, 12, 4))
		c.Register(ButtonDeselect(name, false), Strip(3*82, y, 82, 12, 4))
	}
	return c
}
