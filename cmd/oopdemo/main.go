package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quiseymor/repository-2-oop/adapters"
	"github.com/quiseymor/repository-2-oop/internal/config"
	"github.com/quiseymor/repository-2-oop/usecase"
)

var (
	// Global flags
	verbose bool
	envFile string

	logger  *zap.Logger
	service *usecase.ShowcaseService
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "oopdemo",
	Short: "Exercise the computer, library and album entities",
	Long: `oopdemo constructs validated entities and runs their lifecycle operations.

Run without arguments to execute the full demo.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var envFiles []string
		if envFile != "" {
			envFiles = append(envFiles, envFile)
		}
		cfg, err := config.Load(envFiles...)
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = zapcore.DebugLevel
		}

		logger, err = cfg.NewLogger()
		if err != nil {
			return err
		}
		service = newService(cmd, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDemo,
}

func newService(cmd *cobra.Command, logger *zap.Logger) *usecase.ShowcaseService {
	return usecase.NewShowcaseService(
		adapters.NewMemoryComputerRepository(),
		adapters.NewMemoryLibraryRepository(),
		adapters.NewMemoryAlbumRepository(),
		cmd.OutOrStdout(),
		logger,
	)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load (default .env)")

	rootCmd.AddCommand(demoCmd, computerCmd, libraryCmd, albumCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
