package imagepkg

import (
	"fmt"
	"image"

	"golang.org/x/image/font/opentype"

	"github.com/youruser/cardsheet/internal/cards"
)

// RenderCardback draws the face-down side shared by every card of type t:
// the title alone, at twice the body font size, with no footer.
func RenderCardback(t cards.CardType, cfg SheetConfig, f *opentype.Font) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	face, err := NewFace(f, 2*cfg.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	return RenderCard(t, cfg.Title, CardStyle{
		Width:            cfg.CardWidth,
		Height:           cfg.CardHeight,
		Gap:              cfg.TextGap,
		ParagraphSpacing: cfg.ParagraphSpacing,
		Body:             face,
	}), nil
}

// CreateCardback renders the back for t and saves it to path.
func CreateCardback(path string, t cards.CardType, cfg SheetConfig, f *opentype.Font) error {
	img, err := RenderCardback(t, cfg, f)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := SavePNG(path, img); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
