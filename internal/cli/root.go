package cli

import (
	"errors"
	"io/fs"
	"math/rand/v2"

	"github.com/joho/godotenv"
	"github.com/mgpai22/stylesub/internal/config"
	"github.com/mgpai22/stylesub/internal/logging"
	"github.com/mgpai22/stylesub/internal/subtitle"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     = logging.NewNop()
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "stylesub",
	Short: "Convert SRT subtitles to ASS with randomized styling",
	Long: `Stylesub converts SubRip (SRT) subtitle files into Advanced SubStation
Alpha (ASS) documents and gives every caption a style drawn from a
generated pool, without repeating a style until the whole pool is used.

The style pool and script header are configurable through a TOML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Warnw("Failed to load .env file", "error", err)
		}

		loaded, resolved, exists, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debugw("Configuration loaded",
			"path", resolved,
			"from_file", exists,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to config file (default ~/.config/stylesub/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}

// random source for a seed; zero means a fresh random seed per run
func newRand(seed uint64) subtitle.RandSource {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
