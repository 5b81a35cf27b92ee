package clarity

import (
	"fmt"
	"strings"
)

// Vertical selects the question set used to brief the evaluator.
type Vertical string

const (
	VerticalConsultancy Vertical = "consultancy"
	VerticalSaaS        Vertical = "saas"
	VerticalOutdoor     Vertical = "outdoor"
)

// genericScope replaces an empty scope label in questions and quick wins.
const genericScope = "this page"

// normalizeVertical maps unknown context values onto the consultancy set.
func normalizeVertical(raw string) Vertical {
	switch Vertical(strings.ToLower(strings.TrimSpace(raw))) {
	case VerticalSaaS:
		return VerticalSaaS
	case VerticalOutdoor:
		return VerticalOutdoor
	default:
		return VerticalConsultancy
	}
}

// questionSets holds one ordered question per dimension, per vertical.
// %s interpolates the scope label.
var questionSets = map[Vertical][9]string{
	VerticalConsultancy: {
		"Does %s state in one plain sentence what the firm offers and for whom?",
		"Can a first-time visitor find services, cases and contact within two clicks?",
		"Is there one obvious next step, such as booking an intro call?",
		"Do typography, spacing and color feel like one deliberate system?",
		"Does the visual tone match a credible professional advisory brand?",
		"Do imagery and layout reflect the environment the firm works in?",
		"Is it clear why this firm exists beyond making money?",
		"Does the copy evoke the feeling of being in capable hands?",
		"Would a visitor remember who is behind %s after leaving?",
	},
	VerticalSaaS: {
		"Does %s explain the product's job-to-be-done without buzzwords?",
		"Can a visitor reach pricing, docs and a trial without hunting?",
		"Is the primary call to action, like starting a trial, unmistakable?",
		"Do UI screenshots, icons and type form a consistent product identity?",
		"Does the visual tone signal the product's maturity and audience?",
		"Does the page reflect the workflow environment the product lives in?",
		"Is the founding problem the product solves made explicit?",
		"Does the copy make the user feel the pain it removes?",
		"Would a visitor recall the product name and team behind %s?",
	},
	VerticalOutdoor: {
		"Does %s say plainly what gear or experience is on offer?",
		"Can a visitor find products, sizing and contact without friction?",
		"Is there a clear action such as buying or booking a trip?",
		"Do photography and layout feel like one crafted outdoor brand?",
		"Does the visual tone carry the outdoors rather than a generic shop?",
		"Do the visuals place the products in their real environment?",
		"Is the maker's reason for building this brand visible?",
		"Does the page stir the feeling of being out there?",
		"Would a visitor remember who crafted %s and why?",
	},
}

// buildQuestions returns the nine numbered questions for a vertical with
// the scope label interpolated.
func buildQuestions(vertical Vertical, scopeLabel string) []string {
	scope := strings.TrimSpace(scopeLabel)
	if scope == "" {
		scope = genericScope
	}

	set := questionSets[vertical]
	questions := make([]string, 0, len(set))
	for _, tpl := range set {
		if strings.Contains(tpl, "%s") {
			questions = append(questions, fmt.Sprintf(tpl, scope))
			continue
		}
		questions = append(questions, tpl)
	}
	return questions
}
