package advisor

import (
	"github.com/notnil/chess"

	"chessAdvisor/game"
)

// PositionType labels the character of a position.
type PositionType string

const (
	OpenPosition     PositionType = "Open position"
	ClosedPosition   PositionType = "Closed position"
	EndgamePosition  PositionType = "Endgame position"
	TacticalPosition PositionType = "Tactical position"
	SemiOpenPosition PositionType = "Semi-open position"
)

// Classify returns exactly one label; the first matching rule wins.
func Classify(pos *game.Position) PositionType {
	centerPawns := 0
	for _, sq := range game.CenterSquares {
		if pos.PieceAt(sq).Type() == chess.Pawn {
			centerPawns++
		}
	}

	switch {
	case centerPawns <= 1:
		return OpenPosition
	case centerPawns >= 3:
		return ClosedPosition
	case pos.Occupied() <= middlegameOccupancy:
		return EndgamePosition
	case pos.MoveNumber() > developmentMoves && pos.HalfMoveClock() < 3:
		return TacticalPosition
	}
	return SemiOpenPosition
}
