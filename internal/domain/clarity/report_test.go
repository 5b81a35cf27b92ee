package clarity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func flatVector(v float64) map[Dimension]float64 {
	vec := make(map[Dimension]float64, 9)
	for _, lens := range lensOrder {
		for _, dim := range lensDimensions[lens] {
			vec[dim] = v
		}
	}
	return vec
}

func TestBuildReportHeuristicOnly(t *testing.T) {
	report := buildReport(heuristicVector("", "", nil), nil, "")

	require.Equal(t, 3, report.Scores.User.Offer)
	require.Equal(t, 3, report.Scores.User.Navigation)
	require.Equal(t, 2, report.Scores.User.Action)
	require.Equal(t, 3, report.Scores.Story.Purpose)
	require.Equal(t, 3, report.Scores.Visual.Consistency)

	require.Equal(t, "", report.Reasons.User.Offer)
	require.Equal(t, "", report.Reasons.Story.Identity)
	require.Len(t, report.QuickWins, 2)
}

func TestBuildReportLLMOverridesPerDimension(t *testing.T) {
	llm := &llmResult{
		scores:  map[Dimension]int{DimOffer: 5, DimPurpose: 1},
		reasons: map[Dimension]string{DimOffer: "Strong promise."},
	}

	report := buildReport(flatVector(0.5), llm, "")

	// LLM-provided dimensions win, everything else maps the heuristic.
	require.Equal(t, 5, report.Scores.User.Offer)
	require.Equal(t, 1, report.Scores.Story.Purpose)
	require.Equal(t, 3, report.Scores.User.Navigation)
	require.Equal(t, 3, report.Scores.Visual.Tone)
	require.Equal(t, "Strong promise.", report.Reasons.User.Offer)
	require.Equal(t, "", report.Reasons.Story.Purpose)
}

func TestBuildReportScoresAlwaysInRange(t *testing.T) {
	vec := flatVector(0)
	vec[DimOffer] = 1
	llm := &llmResult{scores: map[Dimension]int{DimTone: 5}, reasons: map[Dimension]string{}}

	report := buildReport(vec, llm, "shop")
	for _, score := range []int{
		report.Scores.User.Offer, report.Scores.User.Navigation, report.Scores.User.Action,
		report.Scores.Visual.Consistency, report.Scores.Visual.Tone, report.Scores.Visual.Environment,
		report.Scores.Story.Purpose, report.Scores.Story.Emotion, report.Scores.Story.Identity,
	} {
		require.GreaterOrEqual(t, score, 1)
		require.LessOrEqual(t, score, 5)
	}
}

func TestBuildReportTruncatesReasons(t *testing.T) {
	llm := &llmResult{
		scores:  map[Dimension]int{DimOffer: 3},
		reasons: map[Dimension]string{DimOffer: strings.Repeat("x", 500)},
	}

	report := buildReport(flatVector(0.5), llm, "")
	require.Len(t, report.Reasons.User.Offer, 220)
}

func TestQuickWinsSelectTwoWeakestLenses(t *testing.T) {
	scores := map[Dimension]int{
		DimOffer: 2, DimNavigation: 2, DimAction: 2, // user mean 2.0
		DimConsistency: 4, DimTone: 4, DimEnvironment: 4, // visual mean 4.0
		DimPurpose: 3, DimEmotion: 3, DimIdentity: 3, // story mean 3.0
	}

	wins := buildQuickWins(scores, "acme.studio")
	require.Len(t, wins, 2)
	require.Equal(t, "Sharpen the promise on acme.studio", wins[0].Title)
	require.Equal(t, "Put your why on acme.studio", wins[1].Title)
}

func TestQuickWinsTieBreakUsesLensOrder(t *testing.T) {
	wins := buildQuickWins(map[Dimension]int{
		DimOffer: 3, DimNavigation: 3, DimAction: 3,
		DimConsistency: 3, DimTone: 3, DimEnvironment: 3,
		DimPurpose: 3, DimEmotion: 3, DimIdentity: 3,
	}, "")

	require.Len(t, wins, 2)
	require.Equal(t, "Sharpen the promise on this page", wins[0].Title)
	require.Equal(t, "Tighten the visual system of this page", wins[1].Title)
}

func TestQuickWinsScopeFallback(t *testing.T) {
	wins := buildQuickWins(map[Dimension]int{
		DimOffer: 1, DimNavigation: 1, DimAction: 1,
		DimConsistency: 5, DimTone: 5, DimEnvironment: 5,
		DimPurpose: 2, DimEmotion: 2, DimIdentity: 2,
	}, "   ")

	require.Contains(t, wins[0].Title, "this page")
	require.NotEmpty(t, wins[0].Tip)
	require.NotEmpty(t, wins[1].Tip)
}
