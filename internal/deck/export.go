package deck

import (
	"fmt"
	"path/filepath"

	"github.com/youruser/cardsheet/internal/cards"
)

// BackFileName is the output name of the card back for t, e.g. back_black.png.
func BackFileName(t cards.CardType) string {
	return fmt.Sprintf("back_%s.png", t)
}

// SheetFileName encodes category, batch index and card count, e.g. base_black_1_5.png.
func SheetFileName(category string, batch, count int) string {
	return fmt.Sprintf("%s_%d_%d.png", category, batch, count)
}

// SheetJob is one sheet to render.
type SheetJob struct {
	Category string
	Batch    int
	Type     cards.CardType
	Texts    []string
	Path     string
}

// PlanSheets batches every category into sheet jobs under outDir.
func PlanSheets(cats []cards.Category, batchSize int, outDir string) ([]SheetJob, error) {
	var jobs []SheetJob
	for _, c := range cats {
		batches, err := cards.Batch(c.Texts, batchSize)
		if err != nil {
			return nil, err
		}
		i := 0
		for b := range batches {
			jobs = append(jobs, SheetJob{
				Category: c.Name,
				Batch:    i,
				Type:     c.Type,
				Texts:    b,
				Path:     filepath.Join(outDir, SheetFileName(c.Name, i, len(b))),
			})
			i++
		}
	}
	return jobs, nil
}
