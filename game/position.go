// Package game adapts github.com/notnil/chess into the small set of board
// queries the advisor needs. Nothing here implements chess rules itself.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

var (
	// ErrInvalidFEN indicates a position string the rules library rejects.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a notation token that is not a legal move here.
	ErrIllegalMove = errors.New("illegal move")
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CenterSquares are d4, e4, d5 and e5.
var CenterSquares = []chess.Square{chess.D4, chess.E4, chess.D5, chess.E5}

// MinorStartSquares are the home squares of both sides' knights and bishops.
var MinorStartSquares = map[chess.Color][]chess.Square{
	chess.White: {chess.B1, chess.G1, chess.C1, chess.F1},
	chess.Black: {chess.B8, chess.G8, chess.C8, chess.F8},
}

// Position is an immutable view of one board state. Methods that "make a
// move" return a new Position and leave the receiver untouched.
type Position struct {
	pos           *chess.Position
	halfMoveClock int
	moveNumber    int
}

// Parse builds a Position from a FEN string.
func Parse(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return wrap(chess.NewGame(opt).Position())
}

func wrap(pos *chess.Position) (*Position, error) {
	// The library keeps the clocks private; its FEN output always has six fields.
	fields := strings.Fields(pos.String())
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFEN, pos.String())
	}
	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: half-move clock %q", ErrInvalidFEN, fields[4])
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: move number %q", ErrInvalidFEN, fields[5])
	}
	return &Position{pos: pos, halfMoveClock: half, moveNumber: full}, nil
}

// Chess returns the underlying library position for evaluation back-ends.
func (p *Position) Chess() *chess.Position { return p.pos }

// FEN returns the position encoded as FEN.
func (p *Position) FEN() string { return p.pos.String() }

// Turn is the side to move.
func (p *Position) Turn() chess.Color { return p.pos.Turn() }

// MoveNumber is the full-move counter.
func (p *Position) MoveNumber() int { return p.moveNumber }

// HalfMoveClock counts plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// LegalMoves enumerates every legal move in generation order.
func (p *Position) LegalMoves() []*chess.Move { return p.pos.ValidMoves() }

// Apply plays m on a copy of the position.
func (p *Position) Apply(m *chess.Move) (*Position, error) {
	legal, err := p.resolve(m.S1(), m.S2(), m.Promo())
	if err != nil {
		return nil, err
	}
	return wrap(p.pos.Update(legal))
}

// GivesCheck reports whether m leaves the opponent in check. The library
// computes the tag by playing the move on its own copy of the board.
func (p *Position) GivesCheck(m *chess.Move) bool {
	return m.HasTag(chess.Check)
}

// IsCapture reports whether m captures, including en passant.
func (p *Position) IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

// CapturedPiece returns the piece m removes from the board, or chess.NoPiece.
func (p *Position) CapturedPiece(m *chess.Move) chess.Piece {
	if m.HasTag(chess.EnPassant) {
		return pawnOf(p.Turn().Other())
	}
	if !m.HasTag(chess.Capture) {
		return chess.NoPiece
	}
	return p.PieceAt(m.S2())
}

// PieceAt returns the occupant of sq.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.pos.Board().Piece(sq)
}

// Pieces lists the squares holding pieces of the given type and colour.
func (p *Position) Pieces(pt chess.PieceType, c chess.Color) []chess.Square {
	var squares []chess.Square
	for sq, piece := range p.pos.Board().SquareMap() {
		if piece.Type() == pt && piece.Color() == c {
			squares = append(squares, sq)
		}
	}
	return squares
}

// KingSquare returns where c's king stands, or chess.NoSquare.
func (p *Position) KingSquare(c chess.Color) chess.Square {
	for sq, piece := range p.pos.Board().SquareMap() {
		if piece.Type() == chess.King && piece.Color() == c {
			return sq
		}
	}
	return chess.NoSquare
}

// HasCastlingRights reports whether c may still castle on either side.
func (p *Position) HasCastlingRights(c chess.Color) bool {
	cr := p.pos.CastleRights()
	return cr.CanCastle(c, chess.KingSide) || cr.CanCastle(c, chess.QueenSide)
}

// Occupied counts the non-empty squares.
func (p *Position) Occupied() int {
	return len(p.pos.Board().SquareMap())
}

// SAN encodes m in short algebraic notation.
func (p *Position) SAN(m *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(p.pos, m)
}

// UCI encodes m in long-form notation, e.g. "e2e4" or "e7e8q".
func (p *Position) UCI(m *chess.Move) string {
	return chess.UCINotation{}.Encode(p.pos, m)
}

// ParseUCI decodes a long-form move and checks it is legal here.
func (p *Position) ParseUCI(s string) (*chess.Move, error) {
	m, err := chess.UCINotation{}.Decode(p.pos, strings.ToLower(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	return p.resolve(m.S1(), m.S2(), m.Promo())
}

// ParseSAN decodes a short algebraic move and checks it is legal here.
func (p *Position) ParseSAN(s string) (*chess.Move, error) {
	m, err := chess.AlgebraicNotation{}.Decode(p.pos, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	return p.resolve(m.S1(), m.S2(), m.Promo())
}

// resolve returns the generated legal move, which carries the library's tags.
func (p *Position) resolve(from, to chess.Square, promo chess.PieceType) (*chess.Move, error) {
	for _, m := range p.pos.ValidMoves() {
		if m.S1() == from && m.S2() == to && m.Promo() == promo {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
}

func pawnOf(c chess.Color) chess.Piece {
	if c == chess.White {
		return chess.WhitePawn
	}
	return chess.BlackPawn
}
