package cards

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadCategoriesFromDir reads every category file in dir, in lexical order.
// Hidden entries and subdirectories are skipped.
func LoadCategoriesFromDir(dir string) ([]Category, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sets dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []Category
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		c, err := LoadCategory(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadCategory reads one card per line from path. The card type comes from
// the file stem.
func LoadCategory(path string) (Category, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := TypeFromStem(stem)
	if err != nil {
		return Category{}, fmt.Errorf("loading %s: %w", path, err)
	}

	fp, err := os.Open(path)
	if err != nil {
		return Category{}, fmt.Errorf("loading %s: %w", path, err)
	}
	defer fp.Close()

	c := Category{Name: stem, Type: t}
	sc := bufio.NewScanner(fp)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if text := normalizeLine(sc.Text()); text != "" {
			c.Texts = append(c.Texts, text)
		}
	}
	if err := sc.Err(); err != nil {
		return Category{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}
