package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/mutant/internal/classifier"
	"svw.info/mutant/internal/config"
	"svw.info/mutant/internal/infrastructure/storage"
	"svw.info/mutant/internal/logging"
	"svw.info/mutant/internal/usecase"
	"svw.info/mutant/internal/validator"
)

var (
	// Global flags
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger

	// exitCode is set by commands that report a verdict through the status.
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "mutant",
	Short: "Detect mutant DNA sequences",
	Long: `mutant classifies square DNA matrices. A matrix is mutant when it holds
more than one run of four identical bases horizontally, vertically or
diagonally.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "mutant.yaml", "path to YAML config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	rootCmd.AddCommand(serveCmd, checkCmd, statsCmd, generateCmd)
}

// newService wires providers into the use case. The caller closes the store.
func newService(c *config.Config, log *zap.Logger) (*usecase.Service, storage.Store, error) {
	st, err := storage.Open(storage.Options{
		Driver:       c.Storage.Driver,
		Path:         c.Storage.Path,
		SQLiteDriver: c.Storage.SQLiteDriver,
		CacheSize:    c.Storage.CacheSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	uc := usecase.NewService(
		classifier.New(c.Classifier.Parallel),
		validator.New(c.Classifier.Alphabet),
		st,
		log,
	)
	return uc, st, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(exitCode)
}
