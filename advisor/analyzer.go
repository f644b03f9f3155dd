package advisor

import (
	"fmt"
	"time"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"chessAdvisor/bots"
	"chessAdvisor/game"
)

const (
	// AnalysisBudget is the engine search time for goal analysis.
	AnalysisBudget = 200 * time.Millisecond

	// CandidateLines is how many ranked lines the analyzer requests.
	CandidateLines = 3

	// EndgameExchangeThreshold is the centipawn lead above which an endgame
	// plan adds piece exchanges.
	EndgameExchangeThreshold = 200

	// MaterialEdge is the pawn-unit imbalance that changes middlegame strategy.
	MaterialEdge = 3

	openingOccupancy    = 24
	middlegameOccupancy = 10
	developmentMoves    = 10
)

// Phase is the game stage derived from how many squares are occupied.
type Phase int

const (
	Opening Phase = iota
	Middlegame
	Endgame
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Middlegame:
		return "middlegame"
	}
	return "endgame"
}

// PhaseOf classifies pos as opening (>24 pieces), middlegame (>10) or endgame.
func PhaseOf(pos *game.Position) Phase {
	switch n := pos.Occupied(); {
	case n > openingOccupancy:
		return Opening
	case n > middlegameOccupancy:
		return Middlegame
	}
	return Endgame
}

// Analyzer owns the goal tiers for the most recently analysed position.
type Analyzer struct {
	engine bots.Engine
	logger *zap.Logger
	tiers  Tiers
}

func NewAnalyzer(engine bots.Engine, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{engine: engine, logger: logger}
}

// Tiers returns a copy of the current goals.
func (a *Analyzer) Tiers() Tiers {
	return a.tiers.Clone()
}

// Analyze rebuilds all three tiers for pos. On error the tiers are left
// empty rather than holding goals from an earlier position.
func (a *Analyzer) Analyze(pos *game.Position) (Tiers, error) {
	a.tiers = Tiers{}

	var lines []bots.Line
	if len(pos.LegalMoves()) > 0 {
		var err error
		lines, err = a.engine.Analyse(pos.Chess(), AnalysisBudget, CandidateLines)
		if err != nil {
			return Tiers{}, fmt.Errorf("analyse position: %w", err)
		}
	}

	tiers := Tiers{
		ShortTerm:  a.shortTermGoals(pos, lines),
		MediumTerm: mediumTermGoals(pos),
	}
	var best *bots.Score
	if len(lines) > 0 {
		best = &lines[0].Score
	}
	tiers.LongTerm = longTermGoals(pos, best)

	a.tiers = tiers
	a.logger.Debug("position analysed",
		zap.String("fen", pos.FEN()),
		zap.Int("long_term", len(tiers.LongTerm)),
		zap.Int("medium_term", len(tiers.MediumTerm)),
		zap.Int("short_term", len(tiers.ShortTerm)),
	)
	return tiers.Clone(), nil
}

func (a *Analyzer) shortTermGoals(pos *game.Position, lines []bots.Line) []Goal {
	var goals []Goal
	for rank, line := range lines {
		if rank >= CandidateLines {
			break
		}
		move, err := pos.ParseUCI(line.First())
		if err != nil {
			a.logger.Warn("engine line does not start with a legal move",
				zap.Int("rank", rank), zap.Strings("line", line.Moves), zap.Error(err))
			continue
		}
		san := pos.SAN(move)
		goals = append(goals, Goal{
			Description:  "Play " + san,
			Priority:     PriorityBestLine - rank,
			MoveSequence: []string{pos.UCI(move)},
			Notation:     san,
		})
	}
	return goals
}

func mediumTermGoals(pos *game.Position) []Goal {
	var goals []Goal
	turn := pos.Turn()

	controlled := 0
	for _, sq := range game.CenterSquares {
		if piece := pos.PieceAt(sq); piece != chess.NoPiece && piece.Color() == turn {
			controlled++
		}
	}
	if controlled < 2 {
		goals = append(goals, Goal{
			Description: "Control the center with pawns or pieces",
			Priority:    PriorityControlCenter,
		})
	}

	if pos.MoveNumber() <= developmentMoves {
		developed := 0
		for _, pt := range []chess.PieceType{chess.Knight, chess.Bishop} {
			for _, sq := range pos.Pieces(pt, turn) {
				if !containsSquare(game.MinorStartSquares[turn], sq) {
					developed++
				}
			}
		}
		if developed < 4 {
			goals = append(goals, Goal{
				Description: "Develop minor pieces",
				Priority:    PriorityDevelopMinors,
			})
		}
	}

	home := chess.E1
	if turn == chess.Black {
		home = chess.E8
	}
	if pos.KingSquare(turn) == home && pos.HasCastlingRights(turn) {
		goals = append(goals, Goal{
			Description: "Castle to safety",
			Priority:    PriorityCastle,
		})
	}
	return goals
}

// longTermGoals derives strategy from the game phase. best is the top
// engine score, or nil when the engine offered no line.
func longTermGoals(pos *game.Position, best *bots.Score) []Goal {
	switch PhaseOf(pos) {
	case Opening:
		return []Goal{
			{Description: "Develop pieces and control the center", Priority: PriorityPrimaryStrategy},
			{Description: "Ensure king safety", Priority: PrioritySecondaryStrategy},
		}

	case Middlegame:
		advantage := pos.MaterialBalance()
		switch {
		case advantage > MaterialEdge:
			return []Goal{{Description: "Trade pieces to simplify into a winning endgame", Priority: PriorityPrimaryStrategy}}
		case advantage < -MaterialEdge:
			return []Goal{{Description: "Create complications and tactical opportunities", Priority: PriorityPrimaryStrategy}}
		}
		return []Goal{{Description: "Improve piece positioning and create weaknesses in opponent's camp", Priority: PrioritySecondaryStrategy}}
	}

	goals := []Goal{{Description: "Activate king and create passed pawns", Priority: PriorityPrimaryStrategy}}
	// Mate scores have no centipawn value and skip the exchange plan.
	if best != nil {
		if cp, ok := best.Value(); ok && cp > EndgameExchangeThreshold {
			goals = append(goals, Goal{Description: "Exchange pieces but not pawns", Priority: PrioritySecondaryStrategy})
		}
	}
	return goals
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
