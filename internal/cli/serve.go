package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/truthseed/truthseed/internal/bible"
	"github.com/truthseed/truthseed/internal/content"
	"github.com/truthseed/truthseed/internal/prefs"
	"github.com/truthseed/truthseed/internal/selector"
	"github.com/truthseed/truthseed/internal/server"
	"github.com/truthseed/truthseed/internal/speech"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the TruthSeed HTTP server",
	Long: `Serve exposes the HTTP API:
  GET  /api/verse          - verse proxy (book, chapter, verseStart, verseEnd, translation)
  GET  /api/truths         - list all truths
  GET  /api/truths/{id}    - one truth
  GET  /api/truths/random  - random truth with recency avoidance
  GET  /api/translations   - supported translations and current preference
  POST /api/translations   - save translation preference
  POST /api/speech         - synthesize verse text to audio

Example:
  truthseed serve
  truthseed serve --addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	store, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d truths\n", store.Len())
	}

	verses := bible.NewService(cfg)

	prefStore := prefs.NewStore(filepath.Dir(cfg.Cache.Dir))
	sel := selector.New(prefStore, cfg.Selector.AvoidCount)

	synth, err := speech.NewSynthesizer(cfg.Speech)
	if err != nil {
		return fmt.Errorf("speech setup: %w", err)
	}

	srv := server.New(store, verses, sel, prefStore, synth, cfg.Bible.BaseURL != "")
	return srv.Start(cfg.Server.Addr)
}
