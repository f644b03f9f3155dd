// Package advisor turns engine output and board structure into layered goals,
// a single recommended plan, and answers to free-form questions about a
// position.
package advisor

// Goal priorities. Tiers use disjoint ranges by convention only; goals from
// every tier are merged and compared as plain integers.
const (
	// Short-term goals score 3, 2, 1 for engine lines ranked 0, 1, 2.
	PriorityBestLine = 3

	PriorityDevelopMinors = 4
	PriorityControlCenter = 5
	PriorityCastle        = 6

	PrioritySecondaryStrategy = 7
	PriorityPrimaryStrategy   = 8
)

// Tier names a goal horizon.
type Tier int

const (
	LongTerm Tier = iota
	MediumTerm
	ShortTerm
)

func (t Tier) String() string {
	switch t {
	case LongTerm:
		return "long_term"
	case MediumTerm:
		return "medium_term"
	case ShortTerm:
		return "short_term"
	}
	return "unknown"
}

// Goal is one strategic or tactical intention. Completed and Progress are
// reserved for tracking and are not read anywhere yet.
type Goal struct {
	Description  string   `json:"description"`
	Priority     int      `json:"priority"`
	MoveSequence []string `json:"move_sequence"`
	// Notation is the first move in short algebraic form, for display.
	Notation  string  `json:"notation,omitempty"`
	Completed bool    `json:"completed"`
	Progress  float64 `json:"progress"`
}

// Actionable reports whether the goal carries moves to play.
func (g Goal) Actionable() bool {
	return len(g.MoveSequence) > 0
}

// Tiers holds the three goal horizons in insertion order.
type Tiers struct {
	LongTerm   []Goal `json:"long_term"`
	MediumTerm []Goal `json:"medium_term"`
	ShortTerm  []Goal `json:"short_term"`
}

// Len counts goals across all tiers.
func (t Tiers) Len() int {
	return len(t.LongTerm) + len(t.MediumTerm) + len(t.ShortTerm)
}

// Clone deep-copies the tiers so callers cannot reach the analyzer's state.
func (t Tiers) Clone() Tiers {
	return Tiers{
		LongTerm:   cloneGoals(t.LongTerm),
		MediumTerm: cloneGoals(t.MediumTerm),
		ShortTerm:  cloneGoals(t.ShortTerm),
	}
}

func cloneGoals(goals []Goal) []Goal {
	if goals == nil {
		return nil
	}
	out := make([]Goal, len(goals))
	for i, g := range goals {
		if g.MoveSequence != nil {
			g.MoveSequence = append([]string(nil), g.MoveSequence...)
		}
		out[i] = g
	}
	return out
}

type tieredGoal struct {
	tier Tier
	goal Goal
}

// merged lists every goal: long-term first, then medium, then short.
func (t Tiers) merged() []tieredGoal {
	all := make([]tieredGoal, 0, t.Len())
	for _, g := range t.LongTerm {
		all = append(all, tieredGoal{LongTerm, g})
	}
	for _, g := range t.MediumTerm {
		all = append(all, tieredGoal{MediumTerm, g})
	}
	for _, g := range t.ShortTerm {
		all = append(all, tieredGoal{ShortTerm, g})
	}
	return all
}
