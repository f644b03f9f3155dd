package game

import "github.com/notnil/chess"

// MaterialValues is the conventional piece worth in pawns. Kings are unscored.
var MaterialValues = map[chess.PieceType]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// Value returns the material worth of pt; unknown types count as zero.
func Value(pt chess.PieceType) int {
	return MaterialValues[pt]
}

// Material sums the worth of every piece c has on the board.
func (p *Position) Material(c chess.Color) int {
	total := 0
	for _, piece := range p.pos.Board().SquareMap() {
		if piece.Color() == c {
			total += Value(piece.Type())
		}
	}
	return total
}

// MaterialBalance is the mover's material minus the opponent's.
func (p *Position) MaterialBalance() int {
	return p.Material(p.Turn()) - p.Material(p.Turn().Other())
}

var pieceTypeNames = map[chess.PieceType]string{
	chess.Pawn:   "pawn",
	chess.Knight: "knight",
	chess.Bishop: "bishop",
	chess.Rook:   "rook",
	chess.Queen:  "queen",
	chess.King:   "king",
}

// PieceName renders a piece as "white knight"; an empty square is
// "empty square".
func PieceName(piece chess.Piece) string {
	if piece == chess.NoPiece {
		return "empty square"
	}
	color := "white"
	if piece.Color() == chess.Black {
		color = "black"
	}
	return color + " " + pieceTypeNames[piece.Type()]
}
