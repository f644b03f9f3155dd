package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestPlanSentinels(t *testing.T) {
	empty := BestPlan(Tiers{})
	assert.Equal(t, NoPlan, empty.Description)
	assert.NotNil(t, empty.Moves)
	assert.Empty(t, empty.Moves)
	assert.False(t, empty.Actionable())

	noMoves := BestPlan(Tiers{
		LongTerm:   []Goal{{Description: "Ensure king safety", Priority: 7}},
		MediumTerm: []Goal{{Description: "Develop minor pieces", Priority: 4}},
		ShortTerm:  []Goal{{Description: "Think", Priority: 9}},
	})
	assert.Equal(t, NoMoves, noMoves.Description)
	assert.Empty(t, noMoves.Moves)
}

func TestBestPlanPicksTopActionableShortTermGoal(t *testing.T) {
	tiers := Tiers{
		LongTerm: []Goal{
			{Description: "Ensure king safety", Priority: 7},
			{Description: "Develop pieces and control the center", Priority: 8},
		},
		MediumTerm: []Goal{
			{Description: "Castle to safety", Priority: 6, MoveSequence: []string{"e1g1"}},
		},
		ShortTerm: []Goal{
			{Description: "Hold still", Priority: 5},
			{Description: "Play d4", Priority: 2, MoveSequence: []string{"d2d4"}, Notation: "d4"},
			{Description: "Play e4", Priority: 3, MoveSequence: []string{"e2e4"}, Notation: "e4"},
			{Description: "Play c4", Priority: 3, MoveSequence: []string{"c2c4"}, Notation: "c4"},
		},
	}

	plan := BestPlan(tiers)
	assert.Equal(t, "e4", plan.ImmediateAction)
	assert.Equal(t, []string{"e2e4"}, plan.Moves)
	// The first long-term goal frames the plan, whatever its priority.
	assert.Equal(t, "Ensure king safety", plan.Description)
	assert.Equal(t, "Playing e4 supports our strategy to ensure king safety by making immediate progress.", plan.Reasoning)
	assert.True(t, plan.Actionable())
}

func TestBestPlanWithoutStrategy(t *testing.T) {
	plan := BestPlan(Tiers{
		ShortTerm: []Goal{{Description: "Play Kf4", Priority: 3, MoveSequence: []string{"e3f4"}}},
	})
	assert.Equal(t, NoStrategy, plan.Description)
	// Without a notation the goal description stands in.
	assert.Equal(t, "Play Kf4", plan.ImmediateAction)
	assert.Contains(t, plan.Reasoning, "no long-term strategy")
}

func TestBestPlanDoesNotAliasGoalMoves(t *testing.T) {
	tiers := Tiers{ShortTerm: []Goal{{Description: "Play e4", Priority: 3, MoveSequence: []string{"e2e4"}}}}
	plan := BestPlan(tiers)
	plan.Moves[0] = "a2a3"
	assert.Equal(t, "e2e4", tiers.ShortTerm[0].MoveSequence[0])
}
