package story

import (
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultTextColor is the tint used before any color command
var DefaultTextColor = color.RGBA{255, 255, 255, 255}

// Span is a run of dialogue text drawn in one color
type Span struct {
	Text  string
	Color color.RGBA
}

// ParseMarkup splits dialogue text into colored spans.
//
// Commands have the form <rgba:RR,GG,BB,AA> with one or two hex digits per
// component. Unknown commands are dropped. A '<' with no closing '>' is
// kept as literal text.
func ParseMarkup(s string) []Span {
	var spans []Span
	tint := DefaultTextColor
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		spans = append(spans, Span{Text: cur.String(), Color: tint})
		cur.Reset()
	}

	for len(s) > 0 {
		start := strings.IndexByte(s, '<')
		if start < 0 {
			cur.WriteString(s)
			break
		}
		end := strings.IndexByte(s[start:], '>')
		if end < 0 {
			cur.WriteString(s)
			break
		}
		end += start

		cur.WriteString(s[:start])
		cmd := s[start+1 : end]
		if rest, ok := strings.CutPrefix(cmd, "rgba:"); ok {
			flush()
			tint = parseColor(rest)
		}
		s = s[end+1:]
	}
	flush()
	return spans
}

// VisibleLength is the number of runes shown once commands are removed
func VisibleLength(s string) int {
	n := 0
	for _, sp := range ParseMarkup(s) {
		n += utf8.RuneCountInString(sp.Text)
	}
	return n
}

// Truncate keeps the first n visible runes
func Truncate(spans []Span, n int) []Span {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if n <= 0 {
			break
		}
		count := utf8.RuneCountInString(sp.Text)
		if count <= n {
			out = append(out, sp)
			n -= count
			continue
		}
		cut := 0
		for i := 0; i < n; i++ {
			_, size := utf8.DecodeRuneInString(sp.Text[cut:])
			cut += size
		}
		out = append(out, Span{Text: sp.Text[:cut], Color: sp.Color})
		n = 0
	}
	return out
}

// PlainText joins span text without colors
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

func parseColor(s string) color.RGBA {
	var c [4]uint8
	i := 0
	for _, chunk := range strings.Split(s, ",") {
		if i >= len(c) {
			break
		}
		chunk = strings.TrimSpace(chunk)
		if len(chunk) == 0 || len(chunk) > 2 {
			continue
		}
		v, err := strconv.ParseUint(chunk, 16, 8)
		if err != nil {
			continue
		}
		c[i] = uint8(v)
		i++
	}
	return color.RGBA{c[0], c[1], c[2], c[3]}
}
