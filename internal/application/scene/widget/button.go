// Package widget provides the small drawable controls shared by scenes.
package widget

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/protocolsmile/internal/domain/animation"
)

// Button colors
var (
	ColorIdle      = color.RGBA{40, 4, 16, 200}
	ColorHighlight = color.RGBA{176, 40, 88, 230}
	ColorBorder    = color.RGBA{255, 220, 230, 255}
	ColorLabel     = color.RGBA{255, 255, 255, 255}
)

// Button is a rectangle with a label whose highlight follows a
// select/deselect animation pair
type Button struct {
	Rect     image.Rectangle
	Label    string
	Timeline *animation.Timeline

	selectID   animation.ID
	deselectID animation.ID
	hovered    bool
}

// NewButton creates a button animated by the named select/deselect
// animations. Unknown names fall back to None.
func NewButton(cat *animation.Catalog, label string, rect image.Rectangle, selectName, deselectName string) *Button {
	selectID, _ := cat.Lookup(selectName)
	deselectID, _ := cat.Lookup(deselectName)
	return &Button{
		Rect:       rect,
		Label:      label,
		Timeline:   animation.NewTimeline(cat),
		selectID:   selectID,
		deselectID: deselectID,
	}
}

// SetHovered switches between the select and deselect animations
func (b *Button) SetHovered(hovered bool) {
	if hovered == b.hovered {
		return
	}
	b.hovered = hovered
	if hovered {
		b.Timeline.SetOnce(b.selectID, animation.Once)
	} else {
		b.Timeline.SetOnce(b.deselectID, animation.Once)
	}
}

// Hovered reports whether the pointer is over the button
func (b *Button) Hovered() bool {
	return b.hovered
}

// Contains reports whether the point is inside the button
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Update advances the highlight animation
func (b *Button) Update(dt float64) {
	b.Timeline.Update(dt)
}

// Highlight returns 0 for idle and 1 for fully selected
func (b *Button) Highlight() float64 {
	p := b.Timeline.Progress()
	if b.hovered {
		return p
	}
	return 1 - p
}

// Draw renders the button with its label centered
func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, Lerp(ColorIdle, ColorHighlight, b.Highlight()), false)
	vector.StrokeRect(screen, x, y, w, h, 1, ColorBorder, false)

	if face == nil || b.Label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Rect.Min.X+b.Rect.Dx()/2), float64(b.Rect.Min.Y+b.Rect.Dy()/2))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ColorLabel)
	text.Draw(screen, b.Label, face, op)
}

// Lerp blends two colors, t in [0, 1]
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = max(0, min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
