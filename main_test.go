package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chessAdvisor/advisor"
	"chessAdvisor/bots"
	"chessAdvisor/config"
	"chessAdvisor/game"
	"chessAdvisor/server"
)

// execute runs the root command against a scripted engine.
func execute(t *testing.T, bot *bots.ScriptedBot, args ...string) string {
	t.Helper()
	for _, k := range []string{"STOCKFISH_PATH", "CHESS_ADVISOR_ENGINE", "CHESS_ADVISOR_DEPTH", "CHESS_ADVISOR_LOG_LEVEL", "CHESS_ADVISOR_ADDR"} {
		t.Setenv(k, "")
	}
	t.Setenv("CHESS_ADVISOR_LOG_LEVEL", "error")

	orig := openEngine
	openEngine = func(*config.Config, *zap.Logger) (bots.Engine, error) { return bot, nil }
	t.Cleanup(func() {
		openEngine = orig
		askFEN, askJSON, askPlain = game.StartFEN, false, false
		analyzeFEN = game.StartFEN
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func openingBot() *bots.ScriptedBot {
	return bots.NewScriptedBot().Script(game.StartFEN,
		bots.Line{Moves: []string{"e2e4"}, Score: bots.Centipawns(20)},
		bots.Line{Moves: []string{"d2d4"}, Score: bots.Centipawns(15)},
	)
}

func TestAskPlain(t *testing.T) {
	bot := openingBot()
	out := execute(t, bot, "ask", "--plain", "what's", "the", "best", "move?")

	assert.Contains(t, out, "I recommend: e4\n")
	assert.Contains(t, out, "This supports the strategy: Develop pieces and control the center")
	assert.Equal(t, 1, bot.Closes())
}

func TestAskJSON(t *testing.T) {
	out := execute(t, openingBot(), "ask", "--json", "any", "tactics")

	var got server.AskResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, advisor.KindTacticalAdvice, got.Raw.Kind)
	assert.Equal(t, "Tactical opportunity: "+advisor.NoTacticsMessage, got.Formatted)
}

func TestAnalyzeCommand(t *testing.T) {
	out := execute(t, openingBot(), "analyze")

	assert.Contains(t, out, "Long-term goals:\n  [8] Develop pieces and control the center\n")
	assert.Contains(t, out, "Next move: e4 (e2e4)")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = newLogger("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	_, err = newLogger("shouty")
	assert.Error(t, err)
}

func TestNewEngine(t *testing.T) {
	c := config.DefaultConfig()
	c.Engine.Backend = config.BackendMinimax
	c.Engine.Depth = 2

	engine, err := newEngine(c, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Minimax Bot (depth 2)", engine.Name())
	require.NoError(t, engine.Close())

	c.Engine.Backend = "lc0"
	_, err = newEngine(c, zap.NewNop())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
