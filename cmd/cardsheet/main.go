// Package main provides the cardsheet CLI, which renders printable card sheets.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/youruser/cardsheet/internal/cards"
	"github.com/youruser/cardsheet/internal/deck"
	imagepkg "github.com/youruser/cardsheet/internal/image"
)

var (
	setsDir         string
	outputDir       string
	fontFile        string
	workers         int
	batchSize       int
	continueOnError bool
	only            []string
	sheet           = imagepkg.DefaultSheetConfig()
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Every flag defaults to the directory and layout
// conventions, so a bare "cardsheet run" needs no configuration.
func newRootCmd() *cobra.Command {
	sheet = imagepkg.DefaultSheetConfig()
	rootCmd := &cobra.Command{
		Use:   "cardsheet",
		Short: "Render printable card sheets from text files",
	}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Render card backs and one sheet per batch of every category",
		Long: `run reads one card per line from every file in the sets directory and
writes PNG sheets to the output directory. The card type comes from the
file name suffix, e.g. base_black.txt or extras_white.txt.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	f := runCmd.Flags()
	f.StringVar(&setsDir, "sets", "sets", "Directory of category files")
	f.StringVar(&outputDir, "output", "output", "Directory for rendered PNGs")
	f.StringVar(&fontFile, "font", os.Getenv("CARDSHEET_FONT"), "TrueType font file (default: first *.ttf in the working directory, else Go Regular)")
	f.IntVar(&workers, "workers", envInt("CARDSHEET_WORKERS", 1), "Sheets rendered in parallel")
	f.IntVar(&batchSize, "batch", 0, "Cards per sheet (default: rows*columns)")
	f.BoolVar(&continueOnError, "keep-going", false, "Skip sheets that fail instead of stopping")
	f.StringSliceVar(&only, "only", nil, "Render only these categories (file stems)")
	f.IntVar(&sheet.Rows, "rows", sheet.Rows, "Rows per sheet")
	f.IntVar(&sheet.Columns, "columns", sheet.Columns, "Columns per sheet")
	f.IntVar(&sheet.CardWidth, "card-width", sheet.CardWidth, "Card width in pixels")
	f.IntVar(&sheet.CardHeight, "card-height", sheet.CardHeight, "Card height in pixels")
	f.IntVar(&sheet.Margin, "margin", sheet.Margin, "Margin around each card in pixels")
	f.IntVar(&sheet.FontSize, "font-size", sheet.FontSize, "Body font size")
	f.IntVar(&sheet.FooterFontSize, "footer-font-size", sheet.FooterFontSize, "Footer font size")
	f.IntVar(&sheet.TextGap, "text-gap", 0, "Text inset from the card edge (default: body font size)")
	f.Float64Var(&sheet.ParagraphSpacing, "paragraph-spacing", sheet.ParagraphSpacing, "Space after each paragraph, in line heights")
	f.StringVar(&sheet.Title, "title", sheet.Title, "Title for card backs and footers")

	rootCmd.AddCommand(runCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("text-gap") {
		sheet.TextGap = sheet.FontSize
	}

	resolved, err := imagepkg.ResolveFontFile(fontFile, ".")
	if err != nil {
		return err
	}
	sheet.FontFile = resolved
	if resolved == "" {
		log.Println("no font configured, using Go Regular")
	} else {
		log.Println("using font", resolved)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := deck.Generate(ctx, deck.Options{
		SetsDir:         setsDir,
		OutputDir:       outputDir,
		Sheet:           sheet,
		BatchSize:       batchSize,
		Workers:         workers,
		ContinueOnError: continueOnError,
		Filter:          cards.FilterOptions{Only: only},
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	log.Printf("done: %d backs, %d sheets in %s", len(res.Backs), len(res.Sheets), outputDir)
	return nil
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
