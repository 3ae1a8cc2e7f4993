package cards

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandPlaceholder(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"no blanks", "no blanks"},
		{"I like _.", "I like ________."},
		{"_ and _", "________ and ________"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPlaceholder(tt.in); got != tt.want {
			t.Errorf("ExpandPlaceholder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandPlaceholderOnce(t *testing.T) {
	got := ExpandPlaceholder("a _ b")
	if n := len(got) - len("a  b"); n != PlaceholderWidth {
		t.Errorf("expected %d markers, got %d in %q", PlaceholderWidth, n, got)
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("one\n\ntwo three\n")
	if diff := cmp.Diff([]string{"one", "two three"}, got); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	if got := Paragraphs(""); len(got) != 0 {
		t.Errorf("expected no paragraphs, got %q", got)
	}
}

func TestFilter(t *testing.T) {
	cats := []Category{{Name: "a_white"}, {Name: "b_black"}, {Name: "c_white"}}

	if got := Filter(cats, FilterOptions{}); len(got) != 3 {
		t.Errorf("empty filter should keep all, got %d", len(got))
	}
	got := Filter(cats, FilterOptions{Only: []string{"c_white", "a_white"}})
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"a_white", "c_white"}, names); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
}
