package bots

import (
	"fmt"
	"sort"
	"time"

	"github.com/notnil/chess"
)

const (
	mateValue     = 100000
	mateThreshold = mateValue - 1000
)

// MinimaxBot is an in-process fallback for when no UCI engine is installed.
// It runs a fixed-depth alpha-beta search on every root move and ranks them.
type MinimaxBot struct {
	Depth     int
	Evaluator PositionEvaluator
	deadline  time.Time
	closed    bool
}

func NewMinimaxBot(depth int) *MinimaxBot {
	if depth < 1 {
		depth = 1
	}
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: DefaultEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) Close() error {
	b.closed = true
	return nil
}

type scoredLine struct {
	pv    []*chess.Move
	score int
}

// Analyse scores each legal move with a full-window search so that every
// returned line carries an exact score, not just the best one.
func (b *MinimaxBot) Analyse(pos *chess.Position, budget time.Duration, lines int) ([]Line, error) {
	if b.closed {
		return nil, &OpError{Op: "analyse", Err: ErrEngineClosed}
	}
	moves := pos.ValidMoves()
	if len(moves) == 0 {
		return nil, &OpError{Op: "analyse", Err: ErrNoLegalMoves}
	}
	b.deadline = time.Now().Add(budget)

	scored := make([]scoredLine, 0, len(moves))
	for _, move := range moves {
		score, pv := b.negamax(pos.Update(move), b.Depth-1, 1, -mateValue-1, mateValue+1)
		scored = append(scored, scoredLine{
			pv:    append([]*chess.Move{move}, pv...),
			score: -score,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if lines > len(scored) {
		lines = len(scored)
	}
	result := make([]Line, 0, lines)
	for _, s := range scored[:lines] {
		result = append(result, Line{Moves: uciMoves(s.pv), Score: toScore(s.score)})
	}
	return result, nil
}

// negamax returns the score of pos relative to its side to move, and the
// principal variation below it.
func (b *MinimaxBot) negamax(pos *chess.Position, depth, ply, alpha, beta int) (int, []*chess.Move) {
	switch pos.Status() {
	case chess.Checkmate:
		return -(mateValue - ply), nil
	case chess.Stalemate:
		return 0, nil
	}
	if depth <= 0 || time.Now().After(b.deadline) {
		return b.relative(pos), nil
	}

	best := -mateValue - 1
	var bestPV []*chess.Move
	for _, move := range pos.ValidMoves() {
		score, pv := b.negamax(pos.Update(move), depth-1, ply+1, -beta, -alpha)
		score = -score
		if score > best {
			best = score
			bestPV = append([]*chess.Move{move}, pv...)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestPV
}

func (b *MinimaxBot) relative(pos *chess.Position) int {
	score := b.Evaluator.Evaluate(pos)
	if pos.Turn() == chess.Black {
		return -score
	}
	return score
}

// toScore converts a search value into a centipawn or mate-in-N score.
func toScore(v int) Score {
	switch {
	case v > mateThreshold:
		return MateIn((mateValue - v + 1) / 2)
	case v < -mateThreshold:
		return MateIn(-(mateValue + v + 1) / 2)
	default:
		return Centipawns(v)
	}
}

func uciMoves(moves []*chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
