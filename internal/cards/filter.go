package cards

import "strings"

const (
	Placeholder      = "_"
	PlaceholderWidth = 8
	// ParagraphEscape is how a paragraph break is written inside a one-line card.
	ParagraphEscape = `\n`
)

// ExpandPlaceholder widens every blank marker into a run of PlaceholderWidth
// markers. The replacement is not rescanned.
func ExpandPlaceholder(text string) string {
	return strings.ReplaceAll(text, Placeholder, strings.Repeat(Placeholder, PlaceholderWidth))
}

// Paragraphs splits card text on paragraph breaks, dropping empty paragraphs.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FilterOptions narrows which categories a run renders.
type FilterOptions struct {
	// Only keeps categories whose name matches one of these; empty keeps all.
	Only []string
}

// Filter drops categories not selected by opt, keeping order.
func Filter(cats []Category, opt FilterOptions) []Category {
	if len(opt.Only) == 0 {
		return cats
	}
	var out []Category
	for _, c := range cats {
		for _, name := range opt.Only {
			if c.Name == name {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// normalizeLine turns one raw file line into card text, or "" if the line is blank.
func normalizeLine(line string) string {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return ""
	}
	return strings.ReplaceAll(line, ParagraphEscape, "\n")
}
