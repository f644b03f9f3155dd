package bots

import (
	"encoding/json"
	"strconv"
)

// Score is a relative evaluation: positive favours the side to move.
// When Mate is non-zero the position is a forced mate in |Mate| moves,
// won by the mover if Mate > 0, and CP is meaningless.
type Score struct {
	CP   int
	Mate int
}

// Centipawns returns a numeric score.
func Centipawns(cp int) Score { return Score{CP: cp} }

// MateIn returns a mate score; negative n means the mover gets mated.
func MateIn(n int) Score { return Score{Mate: n} }

// IsMate reports whether the score is a mate-distance indicator.
func (s Score) IsMate() bool { return s.Mate != 0 }

// Value returns the centipawn score and true, or 0 and false for mates.
func (s Score) Value() (int, bool) {
	if s.IsMate() {
		return 0, false
	}
	return s.CP, true
}

// Negate flips the point of view.
func (s Score) Negate() Score {
	return Score{CP: -s.CP, Mate: -s.Mate}
}

// Less orders scores from the mover's point of view: being mated is worst,
// mating is best, quicker mates are preferred over slower ones.
func (s Score) Less(o Score) bool {
	return s.rank() < o.rank()
}

func (s Score) rank() int {
	const mateBase = 1 << 20
	switch {
	case s.Mate > 0:
		return mateBase - s.Mate
	case s.Mate < 0:
		return -mateBase - s.Mate
	default:
		return s.CP
	}
}

// String renders "+35", "-120", "0", "#3" or "#-2".
func (s Score) String() string {
	if s.IsMate() {
		return "#" + strconv.Itoa(s.Mate)
	}
	if s.CP > 0 {
		return "+" + strconv.Itoa(s.CP)
	}
	return strconv.Itoa(s.CP)
}

// MarshalJSON encodes the score in its display form.
func (s Score) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
