package main

import (
	"fmt"

	"go.uber.org/zap"

	"chessAdvisor/advisor"
	"chessAdvisor/bots"
	"chessAdvisor/config"
)

// openEngine starts the configured back-end. Tests replace it.
var openEngine = newEngine

func newEngine(cfg *config.Config, logger *zap.Logger) (bots.Engine, error) {
	switch cfg.Engine.Backend {
	case config.BackendMinimax:
		return bots.NewMinimaxBot(cfg.Engine.Depth), nil
	case config.BackendUCI:
		path, err := cfg.ResolveEnginePath()
		if err != nil {
			return nil, err
		}
		logger.Debug("starting UCI engine", zap.String("path", path))
		bot, err := bots.NewUCIBot(path, bots.UCIOptions{
			Threads: cfg.Engine.Threads,
			HashMB:  cfg.Engine.HashMB,
		})
		if err != nil {
			return nil, err
		}
		return bot, nil
	}
	return nil, fmt.Errorf("%w: engine backend %q", config.ErrInvalidConfig, cfg.Engine.Backend)
}

func openSession() (*advisor.Session, error) {
	engine, err := openEngine(cfg, logger)
	if err != nil {
		return nil, err
	}
	return advisor.Open(engine, advisor.WithLogger(logger)), nil
}
