package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/notnil/chess"

	"chessAdvisor/bots"
	"chessAdvisor/game"
)

// ExplainBudget is the engine search time for each side of a move explanation.
const ExplainBudget = 100 * time.Millisecond

// Evaluation is an engine verdict on one position from the mover's side.
// Finished games are scored without consulting the engine.
type Evaluation struct {
	Score bots.Score
	Over  chess.Method
}

// GameOver reports whether the position had no legal moves.
func (e Evaluation) GameOver() bool {
	return e.Over != chess.NoMethod
}

// String is the engine's raw score, "#-0" when the mover is checkmated and
// "0" for other finished games.
func (e Evaluation) String() string {
	switch e.Over {
	case chess.NoMethod:
		return e.Score.String()
	case chess.Checkmate:
		return "#-0"
	}
	return "0"
}

func evaluate(engine bots.Engine, pos *game.Position, budget time.Duration) (Evaluation, error) {
	if len(pos.LegalMoves()) == 0 {
		return Evaluation{Over: pos.Chess().Status()}, nil
	}
	lines, err := engine.Analyse(pos.Chess(), budget, 1)
	if err != nil {
		return Evaluation{}, err
	}
	if len(lines) == 0 {
		return Evaluation{}, ErrNoCandidate
	}
	return Evaluation{Score: lines[0].Score}, nil
}

// Explanation describes one move and the evaluation on either side of it.
type Explanation struct {
	Move   string
	Text   string
	Before Evaluation
	After  Evaluation
}

// Explainer composes move rationales from fixed templates.
type Explainer struct {
	engine bots.Engine
}

func NewExplainer(engine bots.Engine) *Explainer {
	return &Explainer{engine: engine}
}

// Explain evaluates the position before and after m. Each evaluation is
// relative to whoever is to move in that position.
func (e *Explainer) Explain(pos *game.Position, m *chess.Move) (*Explanation, error) {
	san := pos.SAN(m)
	next, err := pos.Apply(m)
	if err != nil {
		return nil, err
	}

	before, err := evaluate(e.engine, pos, ExplainBudget)
	if err != nil {
		return nil, fmt.Errorf("evaluate before %s: %w", san, err)
	}
	after, err := evaluate(e.engine, next, ExplainBudget)
	if err != nil {
		return nil, fmt.Errorf("evaluate after %s: %w", san, err)
	}

	return &Explanation{
		Move:   san,
		Text:   describeMove(pos, m, san),
		Before: before,
		After:  after,
	}, nil
}

func describeMove(pos *game.Position, m *chess.Move, san string) string {
	var b strings.Builder
	piece := pos.PieceAt(m.S1())

	fmt.Fprintf(&b, "The move %s ", san)
	if pos.IsCapture(m) {
		fmt.Fprintf(&b, "captures a %s. ", game.PieceName(pos.CapturedPiece(m)))
	} else {
		fmt.Fprintf(&b, "repositions your %s. ", game.PieceName(piece))
	}

	if pos.GivesCheck(m) {
		b.WriteString("It gives check to the opponent's king. ")
	}

	switch piece.Type() {
	case chess.Pawn:
		if containsSquare(game.CenterSquares, m.S2()) {
			b.WriteString("This move helps control the center. ")
		}
		if m.S2().Rank() == prePromotionRank(piece.Color()) {
			b.WriteString("This pawn is now one step away from promotion. ")
		}
	case chess.Knight, chess.Bishop:
		if containsSquare(game.MinorStartSquares[chess.White], m.S1()) ||
			containsSquare(game.MinorStartSquares[chess.Black], m.S1()) {
			b.WriteString("This develops a piece from its starting position. ")
		}
	}

	return strings.TrimSpace(b.String())
}

func prePromotionRank(c chess.Color) chess.Rank {
	if c == chess.White {
		return chess.Rank7
	}
	return chess.Rank2
}
