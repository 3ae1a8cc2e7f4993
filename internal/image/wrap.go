package imagepkg

import (
	"iter"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the rendered advance width of a string.
type Measurer interface {
	Measure(s string) fixed.Int26_6
}

// FaceMeasurer measures with a font face.
type FaceMeasurer struct {
	Face font.Face
}

func (m FaceMeasurer) Measure(s string) fixed.Int26_6 {
	return font.MeasureString(m.Face, s)
}

// WrapText greedily packs the space-separated words of paragraph into lines
// no wider than limit pixels. A word wider than limit gets a line of its own
// and overflows. paragraph must not be empty.
func WrapText(paragraph string, limit int, m Measurer) iter.Seq[string] {
	width := fixed.I(limit)
	return func(yield func(string) bool) {
		words := strings.Split(paragraph, " ")
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if m.Measure(candidate) <= width {
				current = candidate
				continue
			}
			if !yield(current) {
				return
			}
			current = word
		}
		yield(current)
	}
}
