package bots

import (
	"strconv"
	"time"

	"github.com/notnil/chess"
	"github.com/notnil/chess/uci"
)

// UCIOptions are passed to the engine with setoption before the first search.
type UCIOptions struct {
	Threads int
	HashMB  int
}

// UCIBot talks to an external UCI engine such as Stockfish. The process is
// started by NewUCIBot and lives until Close.
type UCIBot struct {
	path   string
	eng    *uci.Engine
	closed bool
}

func NewUCIBot(path string, opts UCIOptions) (*UCIBot, error) {
	eng, err := uci.New(path)
	if err != nil {
		return nil, &OpError{Op: "start", Err: err}
	}

	cmds := []uci.Cmd{uci.CmdUCI, uci.CmdIsReady}
	if opts.Threads > 0 {
		cmds = append(cmds, uci.CmdSetOption{Name: "Threads", Value: strconv.Itoa(opts.Threads)})
	}
	if opts.HashMB > 0 {
		cmds = append(cmds, uci.CmdSetOption{Name: "Hash", Value: strconv.Itoa(opts.HashMB)})
	}
	cmds = append(cmds, uci.CmdUCINewGame)

	if err := eng.Run(cmds...); err != nil {
		eng.Close()
		return nil, &OpError{Op: "init", Err: err}
	}
	return &UCIBot{path: path, eng: eng}, nil
}

func (b *UCIBot) Name() string {
	return "UCI engine (" + b.path + ")"
}

// Analyse runs one search per requested line. Each search excludes the root
// moves of the lines already found, which yields the same ranking as MultiPV
// while only needing the engine's final search result.
func (b *UCIBot) Analyse(pos *chess.Position, budget time.Duration, lines int) ([]Line, error) {
	if b.closed {
		return nil, &OpError{Op: "analyse", Err: ErrEngineClosed}
	}
	remaining := pos.ValidMoves()
	if len(remaining) == 0 {
		return nil, &OpError{Op: "analyse", Err: ErrNoLegalMoves}
	}

	var result []Line
	for len(result) < lines && len(remaining) > 0 {
		cmdPos := uci.CmdPosition{Position: pos}
		cmdGo := uci.CmdGo{MoveTime: budget}
		if len(result) > 0 {
			cmdGo.SearchMoves = remaining
		}
		if err := b.eng.Run(cmdPos, cmdGo); err != nil {
			return nil, &OpError{Op: "go", Err: err}
		}

		res := b.eng.SearchResults()
		if res.BestMove == nil {
			break
		}
		best := res.BestMove.String()

		moves := uciMoves(res.Info.PV)
		if len(moves) == 0 || moves[0] != best {
			moves = []string{best}
		}
		result = append(result, Line{
			Moves: moves,
			Score: Score{CP: res.Info.Score.CP, Mate: res.Info.Score.Mate},
		})
		remaining = without(remaining, best)
	}
	return result, nil
}

func (b *UCIBot) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.eng.Close(); err != nil {
		return &OpError{Op: "close", Err: err}
	}
	return nil
}

func without(moves []*chess.Move, uciMove string) []*chess.Move {
	out := make([]*chess.Move, 0, len(moves))
	for _, m := range moves {
		if m.String() != uciMove {
			out = append(out, m)
		}
	}
	return out
}
