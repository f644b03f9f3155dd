package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chessAdvisor/game"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want PositionType
	}{
		{"start has no center pawns", game.StartFEN, OpenPosition},
		{"four center pawns", closedFEN, ClosedPosition},
		{"two center pawns, few pieces", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 40", EndgamePosition},
		{"recent capture late in the game", "r1bq1rk1/ppp2ppp/2n2n2/3p4/4P3/2N2N2/PPP2PPP/R1BQ1RK1 w - - 0 12", TacticalPosition},
		{"quiet late middlegame", "r1bq1rk1/ppp2ppp/2n2n2/3p4/4P3/2N2N2/PPP2PPP/R1BQ1RK1 w - - 5 12", SemiOpenPosition},
		{"early middlegame", "r1bq1rk1/ppp2ppp/2n2n2/3p4/4P3/2N2N2/PPP2PPP/R1BQ1RK1 w - - 0 8", SemiOpenPosition},
		// Open wins before the endgame rule is reached.
		{"single center pawn endgame", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 60", OpenPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(mustParse(t, tt.fen)))
		})
	}
}
