// Package font provides the embedded UI typeface.
package font

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	sourceOnce sync.Once
	source     *text.GoTextFaceSource
	sourceErr  error
)

// Source returns the Go Regular face source, parsed once
func Source() (*text.GoTextFaceSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if sourceErr != nil {
			sourceErr = fmt.Errorf("failed to load font: %w", sourceErr)
		}
	})
	return source, sourceErr
}

// Face returns a Go Regular face of the given size
func Face(size float64) (*text.GoTextFace, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Measurer returns a width function for layout code
func Measurer(face text.Face) func(string) float64 {
	return func(s string) float64 {
		return text.Advance(s, face)
	}
}
