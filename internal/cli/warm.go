package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthseed/truthseed/internal/bible"
	"github.com/truthseed/truthseed/internal/content"
	"github.com/truthseed/truthseed/internal/model"
	"github.com/truthseed/truthseed/internal/worker"
)

var (
	warmConcurrency int
	warmTimeout     time.Duration
	warmTranslation string
)

// warmCmd represents the warm command
var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Prefetch every referenced verse into the cache",
	Long: `Warm walks the truth collection and fetches verse text for every
reference concurrently, filling the persistent verse cache so later
lookups are served locally.

Example:
  truthseed warm
  truthseed warm --concurrency 8 --translation nvi`,
	RunE: runWarm,
}

func init() {
	rootCmd.AddCommand(warmCmd)

	warmCmd.Flags().IntVar(&warmConcurrency, "concurrency", 4, "number of concurrent lookups")
	warmCmd.Flags().DurationVar(&warmTimeout, "timeout", 5*time.Minute, "total timeout for the warm-up")
	warmCmd.Flags().StringVar(&warmTranslation, "translation", "", "translation to prefetch (default from config)")
}

func runWarm(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	var refs []model.Reference
	for _, truth := range store.All() {
		for _, ref := range truth.References {
			if warmTranslation != "" {
				ref.Translation = warmTranslation
			}
			refs = append(refs, ref)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Warming %d references with %d workers\n", len(refs), warmConcurrency)
	}

	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	service := bible.NewService(cfg)
	prefetcher := worker.NewPrefetcher(service, warmConcurrency)
	results := prefetcher.Warm(ctx, refs)

	warmed, failed := 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  failed: %s: %v\n", res.Reference.Display, res.Err)
			continue
		}
		warmed++
	}

	fmt.Printf("Warmed %d verses (%d failed)\n", warmed, failed)
	return nil
}
