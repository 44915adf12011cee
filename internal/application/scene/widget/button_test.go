package widget

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/protocolsmile/internal/domain/animation"
)

func newPlayButton() (*Button, *animation.Catalog) {
	cat := animation.DefaultCatalog()
	b := NewButton(cat, "Play", image.Rect(10, 10, 190, 33),
		animation.ButtonSelect("play", true), animation.ButtonDeselect("play", true))
	return b, cat
}

func TestButton_Idle(t *testing.T) {
	b, _ := newPlayButton()
	assert.False(t, b.Hovered())
	assert.Equal(t, animation.None, b.Timeline.Animation)
	assert.Equal(t, 0.0, b.Highlight())
}

func TestButton_HoverAnimates(t *testing.T) {
	b, cat := newPlayButton()
	selectID, _ := cat.Lookup(animation.ButtonSelect("play", true))
	deselectID, _ := cat.Lookup(animation.ButtonDeselect("play", true))

	b.SetHovered(true)
	assert.Equal(t, selectID, b.Timeline.Animation)
	assert.Equal(t, animation.Once, b.Timeline.Mode)

	// Select strip is 5 frames of the default frame time
	b.Update(animation.DefaultFrameTime * 2.5)
	assert.InDelta(t, 0.5, b.Highlight(), 1e-9)

	// Hovering again does not restart the animation
	b.SetHovered(true)
	assert.InDelta(t, 0.5, b.Highlight(), 1e-9)

	b.Update(1)
	assert.Equal(t, 1.0, b.Highlight())
	assert.True(t, b.Timeline.IsComplete())

	b.SetHovered(false)
	assert.Equal(t, deselectID, b.Timeline.Animation)
	assert.Equal(t, 1.0, b.Highlight())
	b.Update(1)
	assert.Equal(t, 0.0, b.Highlight())
}

func TestButton_UnknownAnimations(t *testing.T) {
	b := NewButton(animation.NewCatalog(), "x", image.Rect(0, 0, 10, 10), "nope", "nope")
	b.SetHovered(true)
	assert.Equal(t, 1.0, b.Highlight(), "None has no length")
}

func TestButton_Contains(t *testing.T) {
	b, _ := newPlayButton()
	assert.True(t, b.Contains(10, 10))
	assert.True(t, b.Contains(189, 32))
	assert.False(t, b.Contains(190, 20))
	assert.False(t, b.Contains(5, 20))
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 0, 0, 0}
	b := color.RGBA{200, 100, 50, 255}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, color.RGBA{100, 50, 25, 128}, Lerp(a, b, 0.5))
	assert.Equal(t, b, Lerp(a, b, 3), "clamped")
}
