package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chessAdvisor/config"
)

var (
	// Global flags
	configPath string
	engineFlag string
	enginePath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chessAdvisor",
	Short: "Chess advisor backed by a UCI engine",
	Long: `chessAdvisor answers questions about a chess position: the best move,
the long-term plan, tactical shots, an overall assessment or why a move works.

Positions are given as FEN. Evaluations come from a UCI engine such as
Stockfish, or from the built-in minimax search.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("engine") {
			cfg.Engine.Backend = engineFlag
		}
		if cmd.Flags().Changed("engine-path") {
			cfg.Engine.Path = enginePath
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	return logCfg.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (missing file means defaults)")
	rootCmd.PersistentFlags().StringVar(&engineFlag, "engine", config.BackendUCI, "Evaluation back-end: uci or minimax")
	rootCmd.PersistentFlags().StringVar(&enginePath, "engine-path", "", "UCI engine binary (or set STOCKFISH_PATH env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
