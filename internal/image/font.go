package imagepkg

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ResolveFontFile picks the font for a run. An explicit path must exist.
// Otherwise the first *.ttf in searchDir wins, and "" means the embedded
// Go Regular font.
func ResolveFontFile(explicit, searchDir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrFontNotFound, explicit)
		}
		return explicit, nil
	}
	matches, err := filepath.Glob(filepath.Join(searchDir, "*.ttf"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return matches[0], nil
}

// LoadFont parses the font at path, or the embedded fallback when path is "".
// The result is read-only and can be shared between goroutines.
func LoadFont(path string) (*opentype.Font, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFontNotFound, path)
			}
			return nil, fmt.Errorf("reading font %s: %w", path, err)
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %q: %w", path, err)
	}
	return f, nil
}

// NewFace creates a face at size pixels. Faces are not safe for concurrent
// use, so each render pass makes its own.
func NewFace(f *opentype.Font, size int) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// textHeight is the distance from the top of the line box to the lowest ink
// of s, i.e. ascent plus the string's descent below the baseline.
func textHeight(face font.Face, s string) int {
	bounds, _ := font.BoundString(face, s)
	h := face.Metrics().Ascent.Ceil()
	if d := bounds.Max.Y.Ceil(); d > 0 {
		h += d
	}
	return h
}

// lineHeight is the advance between wrapped lines.
func lineHeight(face font.Face) int {
	return textHeight(face, "hg")
}
