package advisor

import (
	"fmt"
	"sort"
	"strings"
)

const (
	NoPlan     = "No clear plan identified"
	NoMoves    = "No clear moves identified"
	NoStrategy = "No specific strategy"
)

// Plan pairs the most urgent playable goal with the leading strategy.
type Plan struct {
	Description     string   `json:"description"`
	ImmediateAction string   `json:"immediate_action,omitempty"`
	Moves           []string `json:"moves"`
	Reasoning       string   `json:"reasoning,omitempty"`
}

// Actionable reports whether the plan recommends a move.
func (p Plan) Actionable() bool {
	return len(p.Moves) > 0
}

// BestPlan picks the highest-priority short-term goal that has moves and
// frames it with the first long-term goal. Goals without moves never supply
// the plan's moves.
func BestPlan(t Tiers) Plan {
	all := t.merged()
	if len(all) == 0 {
		return Plan{Description: NoPlan, Moves: []string{}}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].goal.Priority > all[j].goal.Priority
	})

	var chosen *Goal
	for i := range all {
		if all[i].tier == ShortTerm && all[i].goal.Actionable() {
			chosen = &all[i].goal
			break
		}
	}
	if chosen == nil {
		return Plan{Description: NoMoves, Moves: []string{}}
	}

	strategy := NoStrategy
	if len(t.LongTerm) > 0 {
		strategy = t.LongTerm[0].Description
	}
	action := chosen.Notation
	if action == "" {
		action = chosen.Description
	}
	return Plan{
		Description:     strategy,
		ImmediateAction: action,
		Moves:           append([]string{}, chosen.MoveSequence...),
		Reasoning:       reasoning(action, strategy),
	}
}

func reasoning(action, strategy string) string {
	if strategy == NoStrategy {
		return fmt.Sprintf("Playing %s makes immediate progress, although no long-term strategy stands out in this position.", action)
	}
	return fmt.Sprintf("Playing %s supports our strategy to %s by making immediate progress.", action, strings.ToLower(strategy))
}
