package advisor

import (
	"sort"

	"chessAdvisor/game"
)

// PriorityCheck is the fixed priority of a checking move.
const PriorityCheck = 5

// Tactic is an immediate opportunity: a check, or a capture that wins or
// trades material evenly.
type Tactic struct {
	Description string   `json:"description"`
	Moves       []string `json:"moves"`
	Priority    int      `json:"priority"`
}

// FindTactics scans every legal move, best first. A move that both checks
// and captures favourably is reported once per kind.
func FindTactics(pos *game.Position) []Tactic {
	moves := pos.LegalMoves()
	var tactics []Tactic

	for _, m := range moves {
		if pos.GivesCheck(m) {
			tactics = append(tactics, Tactic{
				Description: "Check with " + pos.SAN(m),
				Moves:       []string{pos.UCI(m)},
				Priority:    PriorityCheck,
			})
		}
	}

	for _, m := range moves {
		if !pos.IsCapture(m) {
			continue
		}
		captured := pos.CapturedPiece(m)
		attacker := pos.PieceAt(m.S1())
		gain := game.Value(captured.Type())
		if gain >= game.Value(attacker.Type()) {
			tactics = append(tactics, Tactic{
				Description: "Capture " + game.PieceName(captured) + " with " + pos.SAN(m),
				Moves:       []string{pos.UCI(m)},
				Priority:    gain,
			})
		}
	}

	sort.SliceStable(tactics, func(i, j int) bool {
		return tactics[i].Priority > tactics[j].Priority
	})
	return tactics
}
