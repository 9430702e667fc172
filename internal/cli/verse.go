package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthseed/truthseed/internal/bible"
	"github.com/truthseed/truthseed/internal/model"
)

var (
	verseEnd         int
	verseTranslation string
	verseTimeout     time.Duration
	verseNoCache     bool
)

// verseCmd represents the verse command
var verseCmd = &cobra.Command{
	Use:   "verse <book> <chapter> <verse>",
	Short: "Fetch verse text for a reference",
	Long: `Fetch verse text for a scripture reference. Book names are Spanish
(accents optional): "Juan", "1 Corintios", "Génesis".

Example:
  truthseed verse Juan 3 16
  truthseed verse "Romanos" 8 38 --end 39 --translation nvi`,
	Args: cobra.ExactArgs(3),
	RunE: runVerse,
}

func init() {
	rootCmd.AddCommand(verseCmd)

	verseCmd.Flags().IntVar(&verseEnd, "end", 0, "last verse of a range (inclusive)")
	verseCmd.Flags().StringVar(&verseTranslation, "translation", "", "translation code (default from config)")
	verseCmd.Flags().DurationVar(&verseTimeout, "timeout", 30*time.Second, "overall lookup timeout")
	verseCmd.Flags().BoolVar(&verseNoCache, "no-cache", false, "disable cache (force fresh fetch)")
}

func runVerse(cmd *cobra.Command, args []string) error {
	book := args[0]
	chapter, err := parsePositive(args[1], "chapter")
	if err != nil {
		return err
	}
	start, err := parsePositive(args[2], "verse")
	if err != nil {
		return err
	}
	if verseEnd != 0 && verseEnd < start {
		return fmt.Errorf("--end %d is before verse %d", verseEnd, start)
	}

	cfg := loadConfig()
	if verseNoCache {
		cfg.Cache.Enabled = false
	}

	display := fmt.Sprintf("%s %d:%d", book, chapter, start)
	if verseEnd != 0 && verseEnd != start {
		display = fmt.Sprintf("%s-%d", display, verseEnd)
	}

	ref := model.Reference{
		Book:        book,
		Chapter:     chapter,
		VerseStart:  start,
		VerseEnd:    verseEnd,
		Display:     display,
		Translation: verseTranslation,
	}
	if problems := ref.Validate(); len(problems) > 0 {
		if ref.Translation != "" || problems[0] != "translation is required" {
			return fmt.Errorf("invalid reference: %v", problems)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), verseTimeout)
	defer cancel()

	service := bible.NewService(cfg)
	if verbose {
		fmt.Fprintf(os.Stderr, "Provider: %s\n", service.ProviderName())
	}

	verse, err := service.Lookup(ctx, ref)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	fmt.Printf("%s (%s)\n%s\n", verse.Reference.Display, verse.Translation, verse.Text)
	return nil
}

func parsePositive(raw, name string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", name, raw)
	}
	return n, nil
}
