package bots

import (
	"github.com/notnil/chess"

	"chessAdvisor/game"
)

// PositionEvaluator scores a static position in centipawns from White's side.
type PositionEvaluator interface {
	Evaluate(pos *chess.Position) int
}

// DefaultEvaluator is a hand-tuned static evaluation used by MinimaxBot.
type DefaultEvaluator struct{}

const (
	MaterialWeight      = 100
	PawnStructWeight    = 30
	KingSafetyWeight    = 50
	CenterWeight        = 20
	PieceActivityWeight = 15
)

var extendedCenter = []chess.Square{
	chess.C3, chess.D3, chess.E3, chess.F3,
	chess.C4, chess.F4, chess.C5, chess.F5,
	chess.C6, chess.D6, chess.E6, chess.F6,
}

func (e DefaultEvaluator) Evaluate(pos *chess.Position) int {
	board := pos.Board()
	score := e.materialScore(board)*MaterialWeight +
		e.pawnStructure(board)*PawnStructWeight +
		e.kingSafety(board)*KingSafetyWeight +
		e.centerControl(board)*CenterWeight +
		e.pieceActivity(board)*PieceActivityWeight
	return int(score)
}

func (e DefaultEvaluator) materialScore(board *chess.Board) float64 {
	var score float64
	for _, piece := range board.SquareMap() {
		value := float64(game.Value(piece.Type()))
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

func (e DefaultEvaluator) centerControl(board *chess.Board) float64 {
	var score float64
	for _, sq := range game.CenterSquares {
		score += occupant(board, sq)
	}
	for _, sq := range extendedCenter {
		score += occupant(board, sq) * 0.5
	}
	return score
}

// occupant is +1 for a white piece on sq, -1 for black, 0 when empty.
func occupant(board *chess.Board, sq chess.Square) float64 {
	switch board.Piece(sq).Color() {
	case chess.White:
		return 1
	case chess.Black:
		return -1
	}
	return 0
}

func (e DefaultEvaluator) pawnStructure(board *chess.Board) float64 {
	var score float64
	whitePawns := make(map[chess.File]int)
	blackPawns := make(map[chess.File]int)

	for sq, piece := range board.SquareMap() {
		if piece == chess.WhitePawn {
			whitePawns[sq.File()]++
		} else if piece == chess.BlackPawn {
			blackPawns[sq.File()]++
		}
	}

	score -= pawnPenalty(whitePawns)
	score += pawnPenalty(blackPawns)
	return score
}

// pawnPenalty charges doubled and isolated pawns.
func pawnPenalty(pawns map[chess.File]int) float64 {
	var penalty float64
	for file, count := range pawns {
		if count > 1 {
			penalty += 0.3 * float64(count-1)
		}
		prevFile := chess.File(int(file) - 1)
		nextFile := chess.File(int(file) + 1)
		if (file == chess.FileA || pawns[prevFile] == 0) &&
			(file == chess.FileH || pawns[nextFile] == 0) {
			penalty += 0.5
		}
	}
	return penalty
}

func (e DefaultEvaluator) kingSafety(board *chess.Board) float64 {
	var whiteKing, blackKing chess.Square
	for sq, piece := range board.SquareMap() {
		if piece == chess.WhiteKing {
			whiteKing = sq
		} else if piece == chess.BlackKing {
			blackKing = sq
		}
	}
	return e.kingProtection(whiteKing, chess.White, board) -
		e.kingProtection(blackKing, chess.Black, board)
}

func (e DefaultEvaluator) kingProtection(kingSq chess.Square, color chess.Color, board *chess.Board) float64 {
	protection := 0.0
	danger := 0.0

	kingFile := int(kingSq.File())
	kingRank := int(kingSq.Rank())

	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			if x == 0 && y == 0 {
				continue
			}
			file := kingFile + x
			rank := kingRank + y
			if file < 0 || file > 7 || rank < 0 || rank > 7 {
				continue
			}
			piece := board.Piece(chess.NewSquare(chess.File(file), chess.Rank(rank)))
			if piece == chess.NoPiece {
				continue
			}
			if piece.Color() == color {
				protection += 0.2
			} else {
				danger += 0.3
			}
		}
	}
	return protection - danger
}

func (e DefaultEvaluator) pieceActivity(board *chess.Board) float64 {
	var score float64
	for sq, piece := range board.SquareMap() {
		if piece.Type() == chess.King || piece.Type() == chess.Pawn {
			continue
		}
		sign := 1.0
		if piece.Color() == chess.Black {
			sign = -1.0
		}
		if (piece.Color() == chess.White && sq.Rank() >= chess.Rank5) ||
			(piece.Color() == chess.Black && sq.Rank() <= chess.Rank4) {
			score += 0.1 * sign
		}
		file := int(sq.File())
		rank := int(sq.Rank())
		if file >= 2 && file <= 5 && rank >= 2 && rank <= 5 {
			score += 0.15 * sign
		}
	}
	return score
}
