package story

import (
	"image"

	"github.com/younwookim/protocolsmile/internal/application/system"
	"github.com/younwookim/protocolsmile/internal/domain/story"
	"github.com/younwookim/protocolsmile/internal/infrastructure/config"
)

// Layout holds the screen geometry of the story player
type Layout struct {
	ScreenW, ScreenH int
	TextBox          image.Rectangle
	Padding          config.PaddingConfig
	OptionW, OptionH int
	OptionGap        int
}

// NewLayout derives the geometry from settings
func NewLayout(s *config.Settings) Layout {
	w, h := s.Display.ScreenWidth, s.Display.ScreenHeight
	return Layout{
		ScreenW:   w,
		ScreenH:   h,
		TextBox:   image.Rect(0, s.TextBox.Y, w, min(s.TextBox.Y+s.TextBox.Height, h)),
		Padding:   s.TextBox.Padding,
		OptionW:   s.Fork.Width,
		OptionH:   s.Fork.Height,
		OptionGap: s.Fork.Gap,
	}
}

// TextArea returns the text box minus its padding
func (l Layout) TextArea() image.Rectangle {
	return image.Rect(
		l.TextBox.Min.X+l.Padding.Left,
		l.TextBox.Min.Y+l.Padding.Top,
		l.TextBox.Max.X-l.Padding.Right,
		l.TextBox.Max.Y-l.Padding.Bottom,
	)
}

// SpeakerPos returns the top-left of the speaker name, just above the text area
func (l Layout) SpeakerPos(lineHeight float64) (float64, float64) {
	a := l.TextArea()
	return float64(a.Min.X), float64(l.TextBox.Min.Y) - lineHeight - 2
}

// OptionRects lays out n fork options centered above the text box.
// The result is appended to dst[:0].
func (l Layout) OptionRects(n int, dst []image.Rectangle) []image.Rectangle {
	dst = dst[:0]
	if n <= 0 {
		return dst
	}
	total := n*l.OptionH + (n-1)*l.OptionGap
	y := max((l.TextBox.Min.Y-total)/2, 0)
	x := (l.ScreenW - l.OptionW) / 2
	for i := 0; i < n; i++ {
		dst = append(dst, image.Rect(x, y, x+l.OptionW, y+l.OptionH))
		y += l.OptionH + l.OptionGap
	}
	return dst
}

// PortraitRect places a portrait of the given size in a slot, standing on
// the text box
func (l Layout) PortraitRect(slot int, size image.Point) image.Rectangle {
	cx := l.ScreenW * (2*slot + 1) / (2 * system.SlotCount)
	bottom := l.TextBox.Min.Y
	return image.Rect(cx-size.X/2, bottom-size.Y, cx-size.X/2+size.X, bottom)
}

// Line is one wrapped line as a rune range of the plain text
type Line struct {
	Start, End int
}

// Wrap breaks text into lines no wider than maxWidth, at spaces where
// possible. Explicit newlines always break. The result is appended to dst[:0].
func Wrap(text string, maxWidth float64, measure func(string) float64, dst []Line) []Line {
	dst = dst[:0]
	runes := []rune(text)
	if len(runes) == 0 {
		return dst
	}

	start, space := 0, -1
	for i, r := range runes {
		if r == '\n' {
			dst = append(dst, Line{start, i})
			start, space = i+1, -1
			continue
		}
		if r != ' ' && i > start && measure(string(runes[start:i+1])) > maxWidth {
			if space > start {
				dst = append(dst, Line{start, space})
				start = space + 1
			} else {
				dst = append(dst, Line{start, i})
				start = i
			}
			space = -1
		}
		if r == ' ' {
			space = i
		}
	}
	return append(dst, Line{start, len(runes)})
}

// LineSpans returns the colored pieces of spans that fall inside line and
// before revealed runes. The result is appended to dst[:0].
func LineSpans(spans []story.Span, line Line, revealed int, dst []story.Span) []story.Span {
	dst = dst[:0]
	end := min(line.End, revealed)
	offset := 0
	for _, s := range spans {
		runes := []rune(s.Text)
		lo := max(line.Start, offset)
		hi := min(end, offset+len(runes))
		if lo < hi {
			dst = append(dst, story.Span{Text: string(runes[lo-offset : hi-offset]), Color: s.Color})
		}
		offset += len(runes)
		if offset >= end {
			break
		}
	}
	return dst
}
