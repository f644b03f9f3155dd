package advisor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"chessAdvisor/bots"
	"chessAdvisor/game"
)

func openSession(t *testing.T, bot bots.Engine) *Session {
	t.Helper()
	return Open(bot, WithLogger(zaptest.NewLogger(t)), WithID("test"))
}

func TestHandleBestMoveAtStart(t *testing.T) {
	s := openSession(t, openingBot())

	resp, err := s.Handle(game.StartFEN, "what's the best move")
	require.NoError(t, err)

	assert.Equal(t, KindMoveRecommendation, resp.Kind)
	assert.Contains(t, []string{"e4", "d4", "Nf3"}, resp.Content)
	assert.Equal(t, "e4", resp.Content)
	assert.Equal(t, "Develop pieces and control the center", resp.Strategy)
	assert.Equal(t, "Playing e4 supports our strategy to develop pieces and control the center by making immediate progress.", resp.Reasoning)
}

func TestHandleDefaultOmitsStrategy(t *testing.T) {
	s := openSession(t, openingBot())

	resp, err := s.Handle(game.StartFEN, "hmm?")
	require.NoError(t, err)
	assert.Equal(t, KindMoveRecommendation, resp.Kind)
	assert.Equal(t, "e4", resp.Content)
	assert.Empty(t, resp.Strategy)
	assert.NotEmpty(t, resp.Reasoning)
}

func TestHandleBranchOrder(t *testing.T) {
	s := openSession(t, openingBot())

	resp, err := s.Handle(game.StartFEN, "best move for my strategy")
	require.NoError(t, err)
	assert.Equal(t, KindMoveRecommendation, resp.Kind)
}

func TestHandleMissingPosition(t *testing.T) {
	bot := openingBot()
	s := openSession(t, bot)

	resp, err := s.Handle("  ", "best move")
	require.NoError(t, err)
	assert.Equal(t, KindError, resp.Kind)
	assert.Equal(t, MissingPositionMessage, resp.Content)
	assert.Zero(t, bot.Calls)
}

func TestHandleInvalidPosition(t *testing.T) {
	s := openSession(t, openingBot())

	_, err := s.Handle("nonsense", "best move")
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.ErrorIs(t, err, game.ErrInvalidFEN)
}

func TestHandleStrategy(t *testing.T) {
	s := openSession(t, openingBot())
	resp, err := s.Handle(game.StartFEN, "What's my plan?")
	require.NoError(t, err)
	assert.Equal(t, KindStrategyAdvice, resp.Kind)
	assert.Equal(t, "Develop pieces and control the center", resp.Content)
	assert.Equal(t, []string{"Ensure king safety"}, resp.AdditionalOptions)

	s = openSession(t, endgameBot(bots.Centipawns(250)))
	resp, err = s.Handle(endgameFEN, "strategy?")
	require.NoError(t, err)
	assert.Equal(t, "Activate king and create passed pawns", resp.Content)
	assert.Equal(t, []string{"Exchange pieces but not pawns"}, resp.AdditionalOptions)
}

func TestHandleTactics(t *testing.T) {
	bot := openingBot()
	s := openSession(t, bot)

	resp, err := s.Handle(game.StartFEN, "any tactics?")
	require.NoError(t, err)
	assert.Equal(t, KindTacticalAdvice, resp.Kind)
	assert.Equal(t, NoTacticsMessage, resp.Content)
	assert.Empty(t, resp.Moves)
	// Goals are refreshed even though the tactic scan does not use them.
	assert.Equal(t, 1, bot.Calls)

	resp, err = s.Handle("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1", "see an opportunity?")
	require.NoError(t, err)
	assert.Equal(t, "Capture black queen with Rxd5", resp.Content)
	assert.Equal(t, []string{"d2d5"}, resp.Moves)
}

func TestHandleEvaluation(t *testing.T) {
	bot := openingBot()
	s := openSession(t, bot)

	resp, err := s.Handle(game.StartFEN, "evaluate this position")
	require.NoError(t, err)
	assert.Equal(t, KindPositionEvaluation, resp.Kind)
	assert.Equal(t, "+20", resp.Evaluation)
	assert.Equal(t, OpenPosition, resp.PositionType)
	assert.Equal(t, "The position is roughly equal and open. Focus on piece activity and creating imbalances.", resp.SuggestedApproach)
	assert.Equal(t, 2, bot.Calls)
}

func TestHandleEvaluationMateScore(t *testing.T) {
	bot := bots.NewScriptedBot().Script(backRankFEN, bots.Line{Moves: []string{"a1a8"}, Score: bots.MateIn(1)})
	s := openSession(t, bot)

	resp, err := s.Handle(backRankFEN, "assessment please")
	require.NoError(t, err)
	assert.Equal(t, "#1", resp.Evaluation)
	assert.Equal(t, "There's a forced mate. Follow the tactical sequence.", resp.SuggestedApproach)
}

func TestHandleExplainMove(t *testing.T) {
	s := openSession(t, openingBot())

	resp, err := s.Handle(game.StartFEN, "explain the move Nf3")
	require.NoError(t, err)
	assert.Equal(t, KindMoveExplanation, resp.Kind)
	assert.Equal(t, "Nf3", resp.Move)
	assert.Equal(t, "The move Nf3 repositions your white knight. This develops a piece from its starting position.", resp.Explanation)
	assert.Equal(t, "+20", resp.EvaluationBefore)
	assert.Equal(t, "0", resp.EvaluationAfter)

	resp, err = s.Handle(game.StartFEN, "explain move d2d4")
	require.NoError(t, err)
	assert.Equal(t, "d4", resp.Move)
}

func TestHandleExplainFallsBackToEngineMove(t *testing.T) {
	for _, query := range []string{"explain move zz9", "explain the move", "explain move e5"} {
		t.Run(query, func(t *testing.T) {
			s := openSession(t, openingBot())
			resp, err := s.Handle(game.StartFEN, query)
			require.NoError(t, err)
			assert.Equal(t, KindMoveExplanation, resp.Kind)
			assert.Equal(t, "e4", resp.Move)
		})
	}
}

func TestHandleEngineFailure(t *testing.T) {
	boom := errors.New("engine crashed")
	bot := bots.NewScriptedBot()
	bot.Err = boom
	s := openSession(t, bot)

	_, err := s.Handle(game.StartFEN, "best move")
	assert.ErrorIs(t, err, boom)
	var opErr *bots.OpError
	assert.ErrorAs(t, err, &opErr)
}

func TestAnalyze(t *testing.T) {
	s := openSession(t, openingBot())

	a, err := s.Analyze(game.StartFEN)
	require.NoError(t, err)
	assert.Len(t, a.Tiers.ShortTerm, 3)
	assert.Equal(t, "e4", a.Plan.ImmediateAction)
	assert.Equal(t, []string{"e2e4"}, a.Plan.Moves)

	_, err = s.Analyze("")
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestCloseReleasesEngineOnce(t *testing.T) {
	bot := openingBot()
	s := openSession(t, bot)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Close(), ErrSessionClosed)
	assert.Equal(t, 1, bot.Closes())

	_, err := s.Handle(game.StartFEN, "best move")
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.Handle("", "best move")
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.Analyze(game.StartFEN)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestOpenGeneratesID(t *testing.T) {
	s := Open(openingBot())
	assert.Len(t, s.ID, 36)
	assert.Equal(t, "Scripted", s.EngineName())
}
