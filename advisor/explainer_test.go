package advisor

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chessAdvisor/bots"
	"chessAdvisor/game"
)

func TestDescribeMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{
			name: "central pawn push",
			fen:  game.StartFEN,
			move: "e2e4",
			want: "The move e4 repositions your white pawn. This move helps control the center.",
		},
		{
			name: "knight development",
			fen:  game.StartFEN,
			move: "g1f3",
			want: "The move Nf3 repositions your white knight. This develops a piece from its starting position.",
		},
		{
			name: "capture with check",
			fen:  rookTakeFEN,
			move: "d1d8",
			want: "The move Rxd8+ captures a black rook. It gives check to the opponent's king.",
		},
		{
			name: "white pawn nears promotion",
			fen:  "4k3/8/4P3/8/8/8/8/K7 w - - 0 1",
			move: "e6e7",
			want: "The move e7 repositions your white pawn. This pawn is now one step away from promotion.",
		},
		{
			name: "black pawn nears promotion",
			fen:  "4k3/8/8/8/8/4p3/8/K7 b - - 0 1",
			move: "e3e2",
			want: "The move e2 repositions your black pawn. This pawn is now one step away from promotion.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustParse(t, tt.fen)
			m, err := pos.ParseUCI(tt.move)
			require.NoError(t, err)
			assert.Equal(t, tt.want, describeMove(pos, m, pos.SAN(m)))
		})
	}
}

func TestExplainEvaluatesBothSides(t *testing.T) {
	pos := mustParse(t, game.StartFEN)
	m, err := pos.ParseUCI("e2e4")
	require.NoError(t, err)
	next, err := pos.Apply(m)
	require.NoError(t, err)

	bot := bots.NewScriptedBot().
		Script(game.StartFEN, bots.Line{Moves: []string{"e2e4"}, Score: bots.Centipawns(30)}).
		Script(next.FEN(), bots.Line{Moves: []string{"c7c5"}, Score: bots.Centipawns(-25)})

	exp, err := NewExplainer(bot).Explain(pos, m)
	require.NoError(t, err)
	assert.Equal(t, "e4", exp.Move)
	assert.Equal(t, "+30", exp.Before.String())
	assert.Equal(t, "-25", exp.After.String())
	assert.Equal(t, 2, bot.Calls)
	assert.Equal(t, game.StartFEN, pos.FEN())
}

func TestExplainMatingMove(t *testing.T) {
	pos := mustParse(t, backRankFEN)
	m, err := pos.ParseUCI("a1a8")
	require.NoError(t, err)

	bot := bots.NewScriptedBot().Script(backRankFEN, bots.Line{Moves: []string{"a1a8"}, Score: bots.MateIn(1)})
	exp, err := NewExplainer(bot).Explain(pos, m)
	require.NoError(t, err)

	assert.Equal(t, "#1", exp.Before.String())
	assert.Equal(t, "#-0", exp.After.String())
	assert.Equal(t, chess.Checkmate, exp.After.Over)
	assert.True(t, exp.After.GameOver())
	assert.Equal(t, 1, bot.Calls)
}

func TestExplainPropagatesEngineFailure(t *testing.T) {
	boom := errors.New("pipe closed")
	bot := bots.NewScriptedBot()
	bot.Err = boom

	pos := mustParse(t, game.StartFEN)
	m, err := pos.ParseUCI("d2d4")
	require.NoError(t, err)

	_, err = NewExplainer(bot).Explain(pos, m)
	assert.ErrorIs(t, err, boom)
}
