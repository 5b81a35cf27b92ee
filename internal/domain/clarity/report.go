package clarity

import (
	"fmt"
	"sort"
	"strings"
)

// maxReasonLen bounds every justification string in the report.
const maxReasonLen = 220

type quickWinTemplate struct {
	title string
	tip   string
}

// quickWinTemplates holds one fixed recommendation per lens. The title
// interpolates the scope label.
var quickWinTemplates = map[Lens]quickWinTemplate{
	LensUser: {
		title: "Sharpen the promise on %s",
		tip:   "Rewrite the opening headline as one short sentence that names what you offer, for whom, and the single next step to take.",
	},
	LensVisual: {
		title: "Tighten the visual system of %s",
		tip:   "Reduce to two typefaces and one accent color, align spacing to a fixed grid, and make every button look like the same family.",
	},
	LensStory: {
		title: "Put your why on %s",
		tip:   "Add two sentences near the top that say why you exist and who is behind the work, in the same voice you use with customers.",
	},
}

// buildReport merges LLM scores over heuristic fallbacks, normalizes
// reasons, and synthesizes quick wins from the two weakest lenses.
func buildReport(vec map[Dimension]float64, llm *llmResult, scopeLabel string) Report {
	scores := make(map[Dimension]int, len(vec))
	reasons := make(map[Dimension]string, len(vec))
	for _, lens := range lensOrder {
		for _, dim := range lensDimensions[lens] {
			scores[dim] = mergedScore(vec, llm, dim)
			reasons[dim] = normalizedReason(llm, dim)
		}
	}

	return Report{
		Scores: LensScores{
			User: UserScores{
				Offer:      scores[DimOffer],
				Navigation: scores[DimNavigation],
				Action:     scores[DimAction],
			},
			Visual: VisualScores{
				Consistency: scores[DimConsistency],
				Tone:        scores[DimTone],
				Environment: scores[DimEnvironment],
			},
			Story: StoryScores{
				Purpose:  scores[DimPurpose],
				Emotion:  scores[DimEmotion],
				Identity: scores[DimIdentity],
			},
		},
		Reasons: LensReasons{
			User: UserReasons{
				Offer:      reasons[DimOffer],
				Navigation: reasons[DimNavigation],
				Action:     reasons[DimAction],
			},
			Visual: VisualReasons{
				Consistency: reasons[DimConsistency],
				Tone:        reasons[DimTone],
				Environment: reasons[DimEnvironment],
			},
			Story: StoryReasons{
				Purpose:  reasons[DimPurpose],
				Emotion:  reasons[DimEmotion],
				Identity: reasons[DimIdentity],
			},
		},
		QuickWins: buildQuickWins(scores, scopeLabel),
	}
}

// mergedScore prefers the LLM value per dimension, heuristic otherwise.
func mergedScore(vec map[Dimension]float64, llm *llmResult, dim Dimension) int {
	if llm != nil {
		if score, ok := llm.scores[dim]; ok {
			return score
		}
	}
	return toFivePoint(vec[dim])
}

func normalizedReason(llm *llmResult, dim Dimension) string {
	if llm == nil {
		return ""
	}
	return truncateReason(llm.reasons[dim])
}

func truncateReason(reason string) string {
	runes := []rune(reason)
	if len(runes) <= maxReasonLen {
		return reason
	}
	return string(runes[:maxReasonLen])
}

// buildQuickWins picks the two lenses with the lowest mean score, ties
// broken by the user, visual, story enumeration order.
func buildQuickWins(scores map[Dimension]int, scopeLabel string) []QuickWin {
	type lensMean struct {
		lens Lens
		mean float64
	}

	means := make([]lensMean, 0, len(lensOrder))
	for _, lens := range lensOrder {
		sum := 0
		for _, dim := range lensDimensions[lens] {
			sum += scores[dim]
		}
		means = append(means, lensMean{lens: lens, mean: float64(sum) / 3})
	}
	sort.SliceStable(means, func(i, j int) bool {
		return means[i].mean < means[j].mean
	})

	scope := strings.TrimSpace(scopeLabel)
	if scope == "" {
		scope = genericScope
	}

	wins := make([]QuickWin, 0, 2)
	for _, candidate := range means[:2] {
		tpl := quickWinTemplates[candidate.lens]
		wins = append(wins, QuickWin{
			Title: fmt.Sprintf(tpl.title, scope),
			Tip:   tpl.tip,
		})
	}
	return wins
}
