package cards

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadCategory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "base_black.txt", "Why am I _?\r\n\n   \nFirst.\\nSecond.\nlast line")

	c, err := LoadCategory(path)
	if err != nil {
		t.Fatalf("LoadCategory failed: %v", err)
	}
	want := Category{
		Name:  "base_black",
		Type:  Dark,
		Texts: []string{"Why am I _?", "First.\nSecond.", "last line"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("category mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCategoryUnknownType(t *testing.T) {
	path := writeFile(t, t.TempDir(), "base_purple.txt", "x")
	_, err := LoadCategory(path)
	if !errors.Is(err, ErrUnknownCardType) {
		t.Fatalf("expected ErrUnknownCardType, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file, got %q", err)
	}
}

func TestLoadCategoriesFromDir(t *testing.T) {
	dir := t.TempDir()
	lines := make([]string, 75)
	for i := range lines {
		lines[i] = fmt.Sprintf("prompt %d _", i)
	}
	writeFile(t, dir, "cards_black.txt", strings.Join(lines, "\n"))
	writeFile(t, dir, "answers_white.txt", "yes\nno\n")
	writeFile(t, dir, ".hidden_white.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub_white"), 0o755); err != nil {
		t.Fatal(err)
	}

	cats, err := LoadCategoriesFromDir(dir)
	if err != nil {
		t.Fatalf("LoadCategoriesFromDir failed: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Name != "answers_white" || cats[0].Type != Light || len(cats[0].Texts) != 2 {
		t.Errorf("unexpected first category: %+v", cats[0])
	}
	if cats[1].Name != "cards_black" || cats[1].Type != Dark || len(cats[1].Texts) != 75 {
		t.Errorf("unexpected second category: %s %v %d", cats[1].Name, cats[1].Type, len(cats[1].Texts))
	}
}

func TestLoadCategoriesFromMissingDir(t *testing.T) {
	if _, err := LoadCategoriesFromDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
