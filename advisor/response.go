package advisor

// Kind tags the variant of a Response.
type Kind string

const (
	KindMoveRecommendation Kind = "move_recommendation"
	KindStrategyAdvice     Kind = "strategy_advice"
	KindTacticalAdvice     Kind = "tactical_advice"
	KindPositionEvaluation Kind = "position_evaluation"
	KindMoveExplanation    Kind = "move_explanation"
	KindError              Kind = "error"
)

// Fixed response texts.
const (
	MissingPositionMessage = "No chess position provided. Please provide a FEN string."
	NoStrategyMessage      = "No clear strategic goals identified for this position."
	NoTacticsMessage       = "No immediate tactical opportunities found."
)

// Response is the tagged answer to a query. Only the fields of its Kind are
// populated:
//
//	move_recommendation: Content, Reasoning, Strategy (explicit requests only)
//	strategy_advice:     Content, AdditionalOptions
//	tactical_advice:     Content, Moves
//	position_evaluation: Evaluation, PositionType, SuggestedApproach
//	move_explanation:    Move, Explanation, EvaluationBefore, EvaluationAfter
//	error:               Content
type Response struct {
	Kind Kind `json:"type"`

	Content           string   `json:"content,omitempty"`
	Reasoning         string   `json:"reasoning,omitempty"`
	Strategy          string   `json:"strategy,omitempty"`
	AdditionalOptions []string `json:"additional_options,omitempty"`
	Moves             []string `json:"moves,omitempty"`

	Evaluation        string       `json:"evaluation,omitempty"`
	PositionType      PositionType `json:"position_type,omitempty"`
	SuggestedApproach string       `json:"suggested_approach,omitempty"`

	Move             string `json:"move,omitempty"`
	Explanation      string `json:"explanation,omitempty"`
	EvaluationBefore string `json:"evaluation_before,omitempty"`
	EvaluationAfter  string `json:"evaluation_after,omitempty"`
}

// ErrorResponse wraps a message as an error variant.
func ErrorResponse(msg string) *Response {
	return &Response{Kind: KindError, Content: msg}
}
