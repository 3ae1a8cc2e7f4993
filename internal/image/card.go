package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/cardsheet/internal/cards"
)

// RenderedLine is one wrapped line and the top-left corner of its line box.
type RenderedLine struct {
	Text string
	X, Y int
}

// CardStyle is everything RenderCard needs besides the card itself.
type CardStyle struct {
	Width, Height    int
	Gap              int
	ParagraphSpacing float64
	Body             font.Face
	// Footer is drawn at the bottom left when non-empty.
	Footer     string
	FooterFace font.Face
}

// LayoutText wraps text into a card of the given width and returns where each
// line goes, top-down from (gap, gap). Text is laid out as given; blank
// markers are expanded by the caller.
func LayoutText(text string, width, gap int, spacing float64, face font.Face) []RenderedLine {
	lh := lineHeight(face)
	m := FaceMeasurer{Face: face}
	var out []RenderedLine
	y := gap
	for _, p := range cards.Paragraphs(text) {
		for line := range WrapText(p, width-2*gap, m) {
			out = append(out, RenderedLine{Text: line, X: gap, Y: y})
			y += lh
		}
		y += int(float64(lh) * spacing)
	}
	return out
}

// FooterOrigin is the top-left of the footer so its lowest ink sits gap
// pixels above the card bottom.
func FooterOrigin(footer string, height, gap int, face font.Face) image.Point {
	return image.Pt(gap, height-textHeight(face, footer)-gap)
}

// RenderCard draws a single card.
func RenderCard(t cards.CardType, text string, s CardStyle) *image.NRGBA {
	card := imaging.New(s.Width, s.Height, t.Background())
	fg := image.NewUniform(t.Foreground())

	for _, l := range LayoutText(text, s.Width, s.Gap, s.ParagraphSpacing, s.Body) {
		drawString(card, fg, s.Body, l.Text, image.Pt(l.X, l.Y))
	}
	if s.Footer != "" && s.FooterFace != nil {
		drawString(card, fg, s.FooterFace, s.Footer, FooterOrigin(s.Footer, s.Height, s.Gap, s.FooterFace))
	}
	return card
}

// drawString draws s with its line box top-left at pt.
func drawString(dst *image.NRGBA, src image.Image, face font.Face, s string, pt image.Point) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
