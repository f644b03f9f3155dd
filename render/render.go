// Package render turns advisor answers into text for people.
package render

import (
	"fmt"
	"strings"

	"chessAdvisor/advisor"
)

// MaxAlternatives caps the strategies listed after the main one.
const MaxAlternatives = 2

// Fallback is shown for responses of an unknown kind without content.
const Fallback = "No specific advice available for this query."

// section is one labelled chunk of a rendered answer. sep holds the line
// breaks before it so styling never spans lines.
type section struct {
	sep   string
	label string
	body  string
}

// Format renders resp as plain text.
func Format(resp *advisor.Response) string {
	return join(sections(resp), plain)
}

// Styled renders resp with terminal colours. Labels are highlighted and the
// move or verdict is emphasised.
func Styled(resp *advisor.Response) string {
	return join(sections(resp), styled)
}

func plain(s section) string {
	return s.sep + s.label + s.body
}

func styled(s section) string {
	out := s.sep
	if s.label != "" {
		out += LabelStyle.Render(s.label)
	}
	if s.body != "" {
		if s.label == "" {
			out += BodyStyle.Render(s.body)
		} else {
			out += ValueStyle.Render(s.body)
		}
	}
	return out
}

func join(secs []section, fn func(section) string) string {
	parts := make([]string, 0, len(secs))
	for _, s := range secs {
		parts = append(parts, fn(s))
	}
	return strings.Join(parts, "")
}

func sections(resp *advisor.Response) []section {
	if resp == nil {
		return []section{{body: Fallback}}
	}
	switch resp.Kind {
	case advisor.KindMoveRecommendation:
		secs := []section{{label: "I recommend: ", body: resp.Content}}
		if resp.Reasoning != "" {
			secs = append(secs, section{sep: "\n\n", label: "Reasoning: ", body: resp.Reasoning})
		}
		if resp.Strategy != "" {
			secs = append(secs, section{sep: "\n\n", label: "This supports the strategy: ", body: resp.Strategy})
		}
		return secs

	case advisor.KindStrategyAdvice:
		secs := []section{{label: "Strategic advice: ", body: resp.Content}}
		if len(resp.AdditionalOptions) > 0 {
			secs = append(secs, section{sep: "\n\n", label: "Alternative strategies to consider:"})
			for i, opt := range resp.AdditionalOptions {
				if i == MaxAlternatives {
					break
				}
				secs = append(secs, section{sep: "\n", body: fmt.Sprintf("%d. %s", i+1, opt)})
			}
		}
		return secs

	case advisor.KindTacticalAdvice:
		return []section{{label: "Tactical opportunity: ", body: resp.Content}}

	case advisor.KindPositionEvaluation:
		return []section{
			{label: "Position evaluation: ", body: resp.Evaluation},
			{sep: "\n", label: "Position type: ", body: string(resp.PositionType)},
			{sep: "\n\n", label: "Suggested approach: ", body: resp.SuggestedApproach},
		}

	case advisor.KindMoveExplanation:
		return []section{
			{label: "Analysis of ", body: resp.Move + ":"},
			{sep: "\n\n", body: resp.Explanation},
			{sep: "\n\n", label: "Evaluation change: ", body: resp.EvaluationBefore + " → " + resp.EvaluationAfter},
		}

	case advisor.KindError:
		msg := resp.Content
		if msg == "" {
			msg = "Unknown error"
		}
		return []section{{label: "Error: ", body: msg}}
	}

	if resp.Content != "" {
		return []section{{body: resp.Content}}
	}
	return []section{{body: Fallback}}
}

// FormatAnalysis renders the goal tiers and the chosen plan.
func FormatAnalysis(a *advisor.Analysis) string {
	var b strings.Builder
	tiers := []struct {
		name  string
		goals []advisor.Goal
	}{
		{"Long-term goals", a.Tiers.LongTerm},
		{"Medium-term goals", a.Tiers.MediumTerm},
		{"Short-term goals", a.Tiers.ShortTerm},
	}
	for _, t := range tiers {
		fmt.Fprintf(&b, "%s:\n", t.name)
		if len(t.goals) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, g := range t.goals {
			fmt.Fprintf(&b, "  [%d] %s\n", g.Priority, g.Description)
		}
	}

	fmt.Fprintf(&b, "\nPlan: %s\n", a.Plan.Description)
	if a.Plan.Actionable() {
		fmt.Fprintf(&b, "Next move: %s (%s)\n", a.Plan.ImmediateAction, strings.Join(a.Plan.Moves, " "))
		fmt.Fprintf(&b, "Reasoning: %s\n", a.Plan.Reasoning)
	}
	return b.String()
}
