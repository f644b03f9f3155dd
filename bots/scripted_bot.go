package bots

import (
	"strings"
	"time"

	"github.com/notnil/chess"
)

// ScriptedBot replays canned lines keyed by FEN. Positions without a script
// fall back to the first legal moves in generation order with a zero score,
// so it always answers deterministically without a search.
type ScriptedBot struct {
	Scripts map[string][]Line
	// Err, when set, is returned from every Analyse call.
	Err error

	Calls  int
	closes int
}

func NewScriptedBot() *ScriptedBot {
	return &ScriptedBot{Scripts: make(map[string][]Line)}
}

// Script registers lines for a position; the key ignores the move clocks.
func (b *ScriptedBot) Script(fen string, lines ...Line) *ScriptedBot {
	b.Scripts[scriptKey(fen)] = lines
	return b
}

func (b *ScriptedBot) Name() string {
	return "Scripted"
}

func (b *ScriptedBot) Analyse(pos *chess.Position, _ time.Duration, lines int) ([]Line, error) {
	b.Calls++
	if b.closes > 0 {
		return nil, &OpError{Op: "analyse", Err: ErrEngineClosed}
	}
	if b.Err != nil {
		return nil, &OpError{Op: "analyse", Err: b.Err}
	}

	script, ok := b.Scripts[scriptKey(pos.String())]
	if !ok {
		for _, m := range pos.ValidMoves() {
			script = append(script, Line{Moves: []string{m.String()}})
		}
	}
	if len(script) == 0 {
		return nil, &OpError{Op: "analyse", Err: ErrNoLegalMoves}
	}
	if lines < len(script) {
		script = script[:lines]
	}
	out := make([]Line, len(script))
	copy(out, script)
	return out, nil
}

// Close records the call; Closes reports how many times it happened.
func (b *ScriptedBot) Close() error {
	b.closes++
	return nil
}

func (b *ScriptedBot) Closes() int { return b.closes }

func scriptKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
