package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"chessAdvisor/bots"
	"chessAdvisor/game"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	closedFEN   = "rnbqkbnr/ppp2ppp/8/3pp3/3PP3/8/PPP2PPP/RNBQKBNR w KQkq - 0 3"
	endgameFEN  = "8/8/4k3/8/8/4K3/4P3/8 w - - 0 50"
	rookTakeFEN = "3rk3/8/8/8/8/8/8/3RK3 w - - 0 1"
	backRankFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
	foolsMate   = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

func mustParse(t *testing.T, fen string) *game.Position {
	t.Helper()
	pos, err := game.Parse(fen)
	require.NoError(t, err)
	return pos
}

// openingBot scripts the three main first moves for White.
func openingBot() *bots.ScriptedBot {
	return bots.NewScriptedBot().Script(game.StartFEN,
		bots.Line{Moves: []string{"e2e4", "e7e5"}, Score: bots.Centipawns(20)},
		bots.Line{Moves: []string{"d2d4", "d7d5"}, Score: bots.Centipawns(15)},
		bots.Line{Moves: []string{"g1f3"}, Score: bots.Centipawns(10)},
	)
}

func endgameBot(score bots.Score) *bots.ScriptedBot {
	return bots.NewScriptedBot().Script(endgameFEN,
		bots.Line{Moves: []string{"e3f4"}, Score: score},
		bots.Line{Moves: []string{"e3d3"}, Score: bots.Centipawns(50)},
	)
}
