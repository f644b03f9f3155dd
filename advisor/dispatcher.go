package advisor

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"chessAdvisor/bots"
	"chessAdvisor/game"
)

// Intent is what a free-text question is asking for.
type Intent int

const (
	IntentMoveRecommendation Intent = iota
	IntentStrategy
	IntentTactics
	IntentEvaluation
	IntentExplainMove
	IntentDefault
)

func (i Intent) String() string {
	switch i {
	case IntentMoveRecommendation:
		return "move_recommendation"
	case IntentStrategy:
		return "strategy"
	case IntentTactics:
		return "tactics"
	case IntentEvaluation:
		return "evaluation"
	case IntentExplainMove:
		return "explain_move"
	}
	return "default"
}

type intentRule struct {
	intent Intent
	match  func(query string) bool
}

func anyOf(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, k := range keywords {
			if strings.Contains(q, k) {
				return true
			}
		}
		return false
	}
}

func allOf(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, k := range keywords {
			if !strings.Contains(q, k) {
				return false
			}
		}
		return true
	}
}

// intentRules are tried in order against the lower-cased query. Keywords
// overlap ("position" appears in many questions) so the order matters.
var intentRules = []intentRule{
	{IntentMoveRecommendation, anyOf("best move", "what should i play", "recommend")},
	{IntentStrategy, anyOf("strategy", "plan")},
	{IntentTactics, anyOf("tactic", "opportunity")},
	{IntentEvaluation, anyOf("evaluate", "assessment", "position")},
	{IntentExplainMove, allOf("explain", "move")},
}

// ClassifyIntent maps a question to an intent; unmatched questions get IntentDefault.
func ClassifyIntent(query string) Intent {
	q := strings.ToLower(query)
	for _, r := range intentRules {
		if r.match(q) {
			return r.intent
		}
	}
	return IntentDefault
}

type handlerFunc func(pos *game.Position, query string) (*Response, error)

type route struct {
	intentRule
	handle handlerFunc
}

// Dispatcher answers questions about a position. It refreshes the goal
// tiers before every answer, whichever intent is taken.
type Dispatcher struct {
	engine    bots.Engine
	analyzer  *Analyzer
	explainer *Explainer
	logger    *zap.Logger
	routes    []route
}

func NewDispatcher(engine bots.Engine, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		engine:    engine,
		analyzer:  NewAnalyzer(engine, logger),
		explainer: NewExplainer(engine),
		logger:    logger,
	}
	handlers := map[Intent]handlerFunc{
		IntentMoveRecommendation: d.recommendMove,
		IntentStrategy:           d.adviseStrategy,
		IntentTactics:            d.adviseTactics,
		IntentEvaluation:         d.evaluatePosition,
		IntentExplainMove:        d.explainMove,
	}
	for _, r := range intentRules {
		d.routes = append(d.routes, route{intentRule: r, handle: handlers[r.intent]})
	}
	return d
}

// Tiers returns the goals from the last answered question.
func (d *Dispatcher) Tiers() Tiers {
	return d.analyzer.Tiers()
}

// Analyze refreshes the goals for pos and returns them with the best plan.
func (d *Dispatcher) Analyze(pos *game.Position) (Tiers, Plan, error) {
	tiers, err := d.analyzer.Analyze(pos)
	if err != nil {
		return Tiers{}, Plan{}, err
	}
	return tiers, BestPlan(tiers), nil
}

// Handle answers query for pos.
func (d *Dispatcher) Handle(pos *game.Position, query string) (*Response, error) {
	if _, err := d.analyzer.Analyze(pos); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	for _, r := range d.routes {
		if r.match(q) {
			d.logger.Debug("query classified", zap.Stringer("intent", r.intent))
			return r.handle(pos, query)
		}
	}
	d.logger.Debug("query classified", zap.Stringer("intent", IntentDefault))
	return d.defaultRecommendation(pos, query)
}

func (d *Dispatcher) recommendMove(_ *game.Position, _ string) (*Response, error) {
	plan := BestPlan(d.analyzer.Tiers())
	return &Response{
		Kind:      KindMoveRecommendation,
		Content:   planContent(plan),
		Reasoning: plan.Reasoning,
		Strategy:  plan.Description,
	}, nil
}

func (d *Dispatcher) defaultRecommendation(_ *game.Position, _ string) (*Response, error) {
	plan := BestPlan(d.analyzer.Tiers())
	return &Response{
		Kind:      KindMoveRecommendation,
		Content:   planContent(plan),
		Reasoning: plan.Reasoning,
	}, nil
}

// planContent is the move to play, or the sentinel text when there is none.
func planContent(p Plan) string {
	if p.ImmediateAction != "" {
		return p.ImmediateAction
	}
	return p.Description
}

func (d *Dispatcher) adviseStrategy(_ *game.Position, _ string) (*Response, error) {
	goals := d.analyzer.Tiers().LongTerm
	if len(goals) == 0 {
		return &Response{Kind: KindStrategyAdvice, Content: NoStrategyMessage}, nil
	}
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].Priority > goals[j].Priority
	})
	var others []string
	for _, g := range goals[1:] {
		others = append(others, g.Description)
	}
	return &Response{
		Kind:              KindStrategyAdvice,
		Content:           goals[0].Description,
		AdditionalOptions: others,
	}, nil
}

func (d *Dispatcher) adviseTactics(pos *game.Position, _ string) (*Response, error) {
	tactics := FindTactics(pos)
	if len(tactics) == 0 {
		return &Response{Kind: KindTacticalAdvice, Content: NoTacticsMessage}, nil
	}
	return &Response{
		Kind:    KindTacticalAdvice,
		Content: tactics[0].Description,
		Moves:   tactics[0].Moves,
	}, nil
}

func (d *Dispatcher) evaluatePosition(pos *game.Position, _ string) (*Response, error) {
	eval, err := evaluate(d.engine, pos, AnalysisBudget)
	if err != nil {
		return nil, fmt.Errorf("evaluate position: %w", err)
	}
	label := Classify(pos)
	return &Response{
		Kind:              KindPositionEvaluation,
		Evaluation:        eval.String(),
		PositionType:      label,
		SuggestedApproach: SuggestApproach(eval, label),
	}, nil
}

// Centipawn bands for suggested approaches.
const (
	EqualityMargin       = 30
	SignificantAdvantage = 200
)

// SuggestApproach turns an evaluation and position label into advice.
func SuggestApproach(eval Evaluation, label PositionType) string {
	switch eval.Over {
	case chess.NoMethod:
	case chess.Checkmate:
		return "The game is over: the side to move has been checkmated."
	default:
		return "The game is over and drawn; there is nothing left to play."
	}

	cp, ok := eval.Score.Value()
	if !ok {
		if eval.Score.Mate > 0 {
			return "There's a forced mate. Follow the tactical sequence."
		}
		return "Your opponent has a forced mate. Look for the most stubborn defence."
	}

	switch {
	case cp > -EqualityMargin && cp < EqualityMargin:
		switch label {
		case OpenPosition:
			return "The position is roughly equal and open. Focus on piece activity and creating imbalances."
		case ClosedPosition:
			return "The position is roughly equal but closed. Consider a positional maneuver or breakthrough."
		case TacticalPosition:
			return "The position is balanced but tactical. Look for combinations and tactical opportunities."
		}
		return "The position is balanced. Focus on improving your worst-placed piece."
	case cp > SignificantAdvantage:
		return "You have a significant advantage. Simplify the position and avoid unnecessary complications."
	case cp < -SignificantAdvantage:
		return "You are at a disadvantage. Create complications and look for tactical chances."
	case cp > 0:
		return "You have a slight advantage. Focus on incrementally improving your position."
	}
	return "You have a slight disadvantage. Focus on equalizing the position through careful defense."
}

func (d *Dispatcher) explainMove(pos *game.Position, query string) (*Response, error) {
	move, err := moveFromQuery(pos, query)
	if err != nil {
		d.logger.Debug("no usable move in query, explaining engine choice", zap.Error(err))
		move, err = d.topCandidate(pos)
		if err != nil {
			return nil, err
		}
	}

	exp, err := d.explainer.Explain(pos, move)
	if err != nil {
		return nil, err
	}
	return &Response{
		Kind:             KindMoveExplanation,
		Move:             exp.Move,
		Explanation:      exp.Text,
		EvaluationBefore: exp.Before.String(),
		EvaluationAfter:  exp.After.String(),
	}, nil
}

func (d *Dispatcher) topCandidate(pos *game.Position) (*chess.Move, error) {
	if len(pos.LegalMoves()) == 0 {
		return nil, ErrNoCandidate
	}
	lines, err := d.engine.Analyse(pos.Chess(), AnalysisBudget, 1)
	if err != nil {
		return nil, fmt.Errorf("find candidate move: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrNoCandidate
	}
	move, err := pos.ParseUCI(lines[0].First())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCandidate, err)
	}
	return move, nil
}

// moveFromQuery parses the first token that mixes letters and digits, first
// as long-form notation and then as short algebraic notation.
func moveFromQuery(pos *game.Position, query string) (*chess.Move, error) {
	token := MoveToken(query)
	if token == "" {
		return nil, fmt.Errorf("%w: no move in query", game.ErrIllegalMove)
	}
	if m, err := pos.ParseUCI(token); err == nil {
		return m, nil
	}
	return pos.ParseSAN(token)
}

// MoveToken returns the first whitespace-separated token of at least two
// characters containing both a letter and a digit, without surrounding
// punctuation. Case is preserved so piece letters survive.
func MoveToken(query string) string {
	for _, field := range strings.Fields(query) {
		tok := strings.Trim(field, `?!.,;:'"()`)
		if len(tok) < 2 {
			continue
		}
		hasLetter := strings.IndexFunc(tok, unicode.IsLetter) >= 0
		hasDigit := strings.IndexFunc(tok, unicode.IsDigit) >= 0
		if hasLetter && hasDigit {
			return tok
		}
	}
	return ""
}
