package deck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/cardsheet/internal/cards"
	imagepkg "github.com/youruser/cardsheet/internal/image"
	"github.com/youruser/cardsheet/internal/util"
)

// SheetError reports which sheet failed.
type SheetError struct {
	Category string
	Batch    int
	Path     string
	Err      error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %d of %q (%s): %v", e.Batch, e.Category, e.Path, e.Err)
}

func (e *SheetError) Unwrap() error { return e.Err }

// Options configures a generation run.
type Options struct {
	SetsDir   string
	OutputDir string
	Sheet     imagepkg.SheetConfig
	// BatchSize defaults to the number of cells on a sheet.
	BatchSize int
	// Workers bounds how many sheets render at once; <= 1 is sequential.
	Workers int
	// ContinueOnError skips failed sheets and reports them all at the end.
	ContinueOnError bool
	Filter          cards.FilterOptions
}

// Result lists the files a run wrote.
type Result struct {
	Backs  []string
	Sheets []string
}

// Generate renders the card backs and every category in opts.SetsDir.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Sheet.Validate(); err != nil {
		return nil, err
	}
	if opts.BatchSize == 0 {
		opts.BatchSize = opts.Sheet.Cells()
	}
	if opts.BatchSize > opts.Sheet.Cells() {
		return nil, fmt.Errorf("batch size %d: %w", opts.BatchSize, imagepkg.ErrTooManyCards)
	}
	f, err := imagepkg.LoadFont(opts.Sheet.FontFile)
	if err != nil {
		return nil, err
	}
	if err := util.EnsureDir(opts.OutputDir); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", opts.OutputDir, err)
	}

	res := &Result{}
	for _, t := range cards.AllTypes {
		path := filepath.Join(opts.OutputDir, BackFileName(t))
		if err := imagepkg.CreateCardback(path, t, opts.Sheet, f); err != nil {
			return nil, err
		}
		log.Println("wrote", path)
		res.Backs = append(res.Backs, path)
	}

	cats, err := cards.LoadCategoriesFromDir(opts.SetsDir)
	if err != nil {
		return nil, err
	}
	jobs, err := PlanSheets(cards.Filter(cats, opts.Filter), opts.BatchSize, opts.OutputDir)
	if err != nil {
		return nil, err
	}

	sheets, err := renderSheets(ctx, jobs, opts, f)
	res.Sheets = sheets
	return res, err
}

func renderSheets(ctx context.Context, jobs []SheetJob, opts Options, f *opentype.Font) ([]string, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu      sync.Mutex
		written = make([]string, len(jobs))
		failed  []error
	)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := imagepkg.CreateSheet(job.Path, job.Type, job.Texts, opts.Sheet, f)
			if err != nil {
				serr := &SheetError{Category: job.Category, Batch: job.Batch, Path: job.Path, Err: err}
				if !opts.ContinueOnError {
					return serr
				}
				log.Println("skipping:", serr)
				mu.Lock()
				failed = append(failed, serr)
				mu.Unlock()
				return nil
			}
			log.Printf("wrote %s (%d cards)", job.Path, len(job.Texts))
			written[i] = job.Path
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	var out []string
	for _, p := range written {
		if p != "" {
			out = append(out, p)
		}
	}
	if err != nil {
		return out, err
	}
	return out, errors.Join(failed...)
}
