package imagepkg

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/opentype"

	"github.com/youruser/cardsheet/internal/cards"
	"github.com/youruser/cardsheet/internal/util"
)

// ComposeSheet lays texts out row-major on a grid of cfg.Rows x cfg.Columns,
// widening each blank marker before wrapping.
// The sheet starts filled with the foreground colour, which shows as the
// border between cards and in any cells left empty.
func ComposeSheet(t cards.CardType, texts []string, cfg SheetConfig, f *opentype.Font) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(texts) > cfg.Cells() {
		return nil, fmt.Errorf("%w: %d cards for %d cells", ErrTooManyCards, len(texts), cfg.Cells())
	}

	body, err := NewFace(f, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	footer, err := NewFace(f, cfg.FooterFontSize)
	if err != nil {
		return nil, err
	}
	defer footer.Close()

	style := CardStyle{
		Width:            cfg.CardWidth,
		Height:           cfg.CardHeight,
		Gap:              cfg.TextGap,
		ParagraphSpacing: cfg.ParagraphSpacing,
		Body:             body,
		Footer:           cfg.Title,
		FooterFace:       footer,
	}

	w, h := cfg.SheetSize()
	sheet := imaging.New(w, h, t.Foreground())
	for i, text := range texts {
		card := RenderCard(t, cards.ExpandPlaceholder(text), style)
		// imaging.Paste clones the whole sheet on every call, so paste in place.
		x, y := cfg.CardOrigin(i/cfg.Columns, i%cfg.Columns)
		draw.Draw(sheet, card.Bounds().Add(image.Pt(x, y)), card, image.Point{}, draw.Src)
	}
	return sheet, nil
}

// SavePNG writes img to path. The file only appears once it is complete.
func SavePNG(path string, img image.Image) error {
	return util.WriteFileAtomic(path, func(w io.Writer) error {
		return imaging.Encode(w, img, imaging.PNG)
	})
}

// CreateSheet composes one sheet and saves it to path.
func CreateSheet(path string, t cards.CardType, texts []string, cfg SheetConfig, f *opentype.Font) error {
	sheet, err := ComposeSheet(t, texts, cfg, f)
	if err != nil {
		return fmt.Errorf("composing %s: %w", path, err)
	}
	if err := SavePNG(path, sheet); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
