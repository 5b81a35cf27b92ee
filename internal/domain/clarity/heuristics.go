package clarity

import (
	"regexp"
	"strings"
)

// Fallback scores used when a page yields no usable input.
const (
	emptyTextOfferScore   = 0.4
	emptyHTMLNavScore     = 0.4
	emptyHTMLActionScore  = 0.3
	emptyTextPurposeScore = 0.4
	defaultVisualScore    = 0.5
)

const shortSentenceMaxTokens = 12

// jargonTerms penalize offer clarity; matched case-insensitively as
// substrings anywhere in the page text.
var jargonTerms = []string{
	"synergy",
	"leverage",
	"cutting-edge",
	"paradigm",
	"holistic",
	"best-in-class",
	"disrupt",
	"value-add",
	"turnkey",
	"world-class",
}

// navKeywords are link labels that signal a navigable site.
var navKeywords = []string{"services", "pricing", "about", "contact", "work", "cases"}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	navLandmarkRe   = regexp.MustCompile(`(?i)<nav\b|role\s*=\s*"navigation"|menu`)
	ctaRe           = regexp.MustCompile(`(?i)\b(book|contact|get\s+a\s+quote|get\s+started|start\s+now|try\s+it|buy\s+now|add\s+to\s+cart|schedule|demo)\b`)
	buttonRe        = regexp.MustCompile(`(?i)<button\b|class\s*=\s*"[^"]*\bbtn|type\s*=\s*"submit"|role\s*=\s*"button"`)
	purposeRe       = regexp.MustCompile(`(?i)\b(why|mission|we exist|we believe|our story|purpose)\b`)
	identityHintRe  = regexp.MustCompile(`(?i)\b(we|our team|founded|handmade|crafted|designed)\b`)
)

// offerClarity rewards short declarative sentences and penalizes jargon.
func offerClarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return emptyTextOfferScore
	}

	short := 0
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if len(strings.Fields(sentence)) <= shortSentenceMaxTokens {
			short++
		}
	}

	score := minFloat(1, float64(short)/10)
	score -= minFloat(0.5, 0.05*float64(countJargonHits(text)))
	return clamp01(score)
}

func countJargonHits(text string) int {
	lowered := strings.ToLower(text)
	hits := 0
	for _, term := range jargonTerms {
		if strings.Contains(lowered, term) {
			hits++
		}
	}
	return hits
}

// navigationClarity inspects raw markup for navigation landmarks and
// navigation-intent link keywords.
func navigationClarity(html string) float64 {
	if strings.TrimSpace(html) == "" {
		return emptyHTMLNavScore
	}

	score := 0.2
	if navLandmarkRe.MatchString(html) {
		score += 0.3
	}

	lowered := strings.ToLower(html)
	keyLinks := 0
	for _, keyword := range navKeywords {
		if strings.Contains(lowered, keyword) {
			keyLinks++
		}
	}
	score += minFloat(0.5, 0.1*float64(keyLinks))
	return clamp01(score)
}

// actionClarity counts call-to-action phrases and button-like markup.
func actionClarity(html string) float64 {
	if strings.TrimSpace(html) == "" {
		return emptyHTMLActionScore
	}

	score := 0.2
	score += minFloat(0.5, 0.2*float64(len(ctaRe.FindAllStringIndex(html, -1))))
	score += minFloat(0.3, 0.05*float64(len(buttonRe.FindAllStringIndex(html, -1))))
	return clamp01(score)
}

// storyPurpose looks for why/mission language and a who-we-are voice.
func storyPurpose(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return emptyTextPurposeScore
	}

	score := 0.3
	if purposeRe.MatchString(text) {
		score += 0.3
	}
	if identityHintRe.MatchString(text) {
		score += 0.2
	}
	return clamp01(score)
}

// heuristicVector assembles the nine [0,1] sub-scores. The five
// non-computable dimensions take client metrics when supplied.
func heuristicVector(text, html string, metrics *ClientMetrics) map[Dimension]float64 {
	vec := map[Dimension]float64{
		DimOffer:       offerClarity(text),
		DimNavigation:  navigationClarity(html),
		DimAction:      actionClarity(html),
		DimPurpose:     storyPurpose(text),
		DimConsistency: defaultVisualScore,
		DimTone:        defaultVisualScore,
		DimEnvironment: defaultVisualScore,
		DimEmotion:     defaultVisualScore,
		DimIdentity:    defaultVisualScore,
	}
	if metrics == nil {
		return vec
	}
	applyMetric(vec, DimConsistency, metrics.VisualConsistency)
	applyMetric(vec, DimTone, metrics.VisualTone)
	applyMetric(vec, DimEnvironment, metrics.VisualEnvironment)
	applyMetric(vec, DimEmotion, metrics.StoryEmotion)
	applyMetric(vec, DimIdentity, metrics.StoryIdentity)
	return vec
}

func applyMetric(vec map[Dimension]float64, dim Dimension, value *float64) {
	if value != nil {
		vec[dim] = *value
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
