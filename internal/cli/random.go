package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthseed/truthseed/internal/bible"
	"github.com/truthseed/truthseed/internal/content"
	"github.com/truthseed/truthseed/internal/model"
	"github.com/truthseed/truthseed/internal/prefs"
	"github.com/truthseed/truthseed/internal/selector"
)

var (
	randomSeed    int64
	randomNoVerse bool
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random truth with its verse text",
	Long: `Random picks a truth to display, avoiding the most recently shown
ones, and fetches the verse text for its first reference.

Example:
  truthseed random
  truthseed random --no-verse`,
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "seed for deterministic selection (0 = random)")
	randomCmd.Flags().BoolVar(&randomNoVerse, "no-verse", false, "skip the verse lookup")
}

func runRandom(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	prefStore := prefs.NewStore(filepath.Dir(cfg.Cache.Dir))
	sel := selector.New(prefStore, cfg.Selector.AvoidCount)

	var truth model.Truth
	var ok bool
	if randomSeed != 0 {
		truth, ok = sel.PickSeeded(store.All(), randomSeed)
	} else {
		truth, ok = sel.Pick(store.All())
	}
	if !ok {
		return fmt.Errorf("no truths available")
	}

	fmt.Printf("%s\n", truth.Title)
	fmt.Printf("%s\n", truth.RenounceStatement)

	if randomNoVerse || len(truth.References) == 0 {
		return nil
	}

	ref := truth.References[0]
	ref.Translation = prefStore.Translation()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	service := bible.NewService(cfg)
	verse, err := service.Lookup(ctx, ref)
	if err != nil {
		// Verse lookup failure is not fatal: show the reference alone
		fmt.Printf("\n%s (texto no disponible)\n", ref.Display)
		return nil
	}

	fmt.Printf("\n%s (%s)\n%s\n", verse.Reference.Display, verse.Translation, verse.Text)
	return nil
}
