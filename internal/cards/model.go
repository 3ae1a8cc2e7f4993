package cards

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownCardType is returned when a category name does not end in a known card type.
var ErrUnknownCardType = errors.New("unknown card type")

// CardType selects the colour pair a card is printed with.
type CardType int

const (
	Light CardType = iota
	Dark
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

// background, foreground
var palette = map[CardType][2]color.NRGBA{
	Light: {white, black},
	Dark:  {black, white},
}

// AllTypes lists every card type in output order.
var AllTypes = []CardType{Light, Dark}

func (t CardType) Background() color.NRGBA { return palette[t][0] }
func (t CardType) Foreground() color.NRGBA { return palette[t][1] }

// String returns the name used in output file names.
func (t CardType) String() string {
	switch t {
	case Light:
		return "white"
	case Dark:
		return "black"
	}
	return fmt.Sprintf("CardType(%d)", int(t))
}

// ParseCardType accepts white/light and black/dark, ignoring case.
func ParseCardType(s string) (CardType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "light":
		return Light, nil
	case "black", "dark":
		return Dark, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCardType, s)
}

// TypeFromStem maps a category file stem like "base_black" to its card type
// using the segment after the last underscore.
func TypeFromStem(stem string) (CardType, error) {
	i := strings.LastIndex(stem, "_")
	t, err := ParseCardType(stem[i+1:])
	if err != nil {
		return 0, fmt.Errorf("category %q: %w", stem, err)
	}
	return t, nil
}

// Category is one input file: every card in it shares a card type.
type Category struct {
	Name  string   `json:"name"`
	Type  CardType `json:"type"`
	Texts []string `json:"texts"`
}
