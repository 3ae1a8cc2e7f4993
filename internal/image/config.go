package imagepkg

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid sheet config")
	ErrFontNotFound  = errors.New("font file not found")
	ErrTooManyCards  = errors.New("more cards than grid cells")
)

const DefaultTitle = "Quips Against Sanity"

// SheetConfig holds the layout of one sheet. It is passed by value and never
// mutated by the renderers.
type SheetConfig struct {
	Rows       int
	Columns    int
	CardWidth  int
	CardHeight int
	Margin     int

	FontSize       int
	FooterFontSize int
	// TextGap insets text from the card edge.
	TextGap int
	// ParagraphSpacing is extra space after each paragraph, as a fraction of
	// the line height. It is also applied after the last paragraph; use 0 to
	// disable.
	ParagraphSpacing float64

	// FontFile is a resolved path, or "" for the embedded fallback font.
	FontFile string
	// Title is stamped as the footer of every sheet card and printed on the backs.
	Title string
}

func DefaultSheetConfig() SheetConfig {
	return SheetConfig{
		Rows:             7,
		Columns:          10,
		CardWidth:        600,
		CardHeight:       900,
		Margin:           1,
		FontSize:         60,
		FooterFontSize:   24,
		TextGap:          60,
		ParagraphSpacing: 0.65,
		Title:            DefaultTitle,
	}
}

// Cells is the number of cards that fit on one sheet.
func (c SheetConfig) Cells() int { return c.Rows * c.Columns }

// SheetSize returns the pixel size of a full sheet.
func (c SheetConfig) SheetSize() (w, h int) {
	return c.Columns * (c.CardWidth + 2*c.Margin), c.Rows * (c.CardHeight + 2*c.Margin)
}

// CardOrigin is the top-left pixel of cell (row, col) on the sheet.
func (c SheetConfig) CardOrigin(row, col int) (x, y int) {
	return c.Margin + col*(c.CardWidth+2*c.Margin), c.Margin + row*(c.CardHeight+2*c.Margin)
}

func (c SheetConfig) Validate() error {
	switch {
	case c.Rows <= 0 || c.Columns <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Rows, c.Columns)
	case c.CardWidth <= 0 || c.CardHeight <= 0:
		return fmt.Errorf("%w: card size %dx%d", ErrInvalidConfig, c.CardWidth, c.CardHeight)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin %d", ErrInvalidConfig, c.Margin)
	case c.FontSize <= 0 || c.FooterFontSize <= 0:
		return fmt.Errorf("%w: font sizes %d/%d", ErrInvalidConfig, c.FontSize, c.FooterFontSize)
	case c.TextGap < 0:
		return fmt.Errorf("%w: text gap %d", ErrInvalidConfig, c.TextGap)
	case c.ParagraphSpacing < 0:
		return fmt.Errorf("%w: paragraph spacing %v", ErrInvalidConfig, c.ParagraphSpacing)
	}
	return nil
}
