package clarity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pagelens/clarity-scan/internal/infra/llm/chatgpt"
)

const systemInstruction = "You are a strict website clarity auditor. " +
	"Respond ONLY with valid minified JSON of this shape: " +
	`{"scores":{"user":{"offer":n,"navigation":n,"action":n},` +
	`"visual":{"consistency":n,"tone":n,"environment":n},` +
	`"story":{"purpose":n,"emotion":n,"identity":n}},` +
	`"reasons":{...same keys, short strings...}}. ` +
	"Every score is an integer from 1 to 5. Every reason is at most 30 words. " +
	"Never return text outside the JSON object."

// llmResult holds the sanitized evaluator output. A dimension missing from
// scores falls back to the heuristic value during the merge.
type llmResult struct {
	scores  map[Dimension]int
	reasons map[Dimension]string
}

// evaluate issues the single LLM call and converts every possible failure
// into a nil result so the pipeline can fall back to heuristics.
func (s *service) evaluate(ctx context.Context, text string, vertical Vertical, scopeLabel string, vec map[Dimension]float64) *llmResult {
	if s.chat == nil {
		return nil
	}

	completion, err := s.chat.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: buildEvaluationPrompt(text, vertical, scopeLabel, vec)},
		},
		Temperature: 0,
	})
	if err != nil {
		s.logger.Warn("clarity evaluation request failed, using heuristics", "error", err)
		return nil
	}
	if len(completion.Choices) == 0 {
		s.logger.Warn("clarity evaluation returned no choices, using heuristics")
		return nil
	}
	if usage := completion.Usage.Metrics(); !usage.IsZero() {
		s.logger.Info("clarity evaluation tokens",
			"promptTokens", usage.PromptTokens,
			"completionTokens", usage.CompletionTokens,
			"totalTokens", usage.TotalTokens)
	}

	result, err := parseEvaluation(completion.Choices[0].Message.Content)
	if err != nil {
		s.logger.Warn("clarity evaluation response malformed, using heuristics", "error", err)
		return nil
	}
	return result
}

// buildEvaluationPrompt numbers the vertical's questions and attaches the
// heuristic seeds as a non-binding hint plus the trimmed page text.
func buildEvaluationPrompt(text string, vertical Vertical, scopeLabel string, vec map[Dimension]float64) string {
	var b strings.Builder
	b.WriteString("Evaluate the page against these questions, one score per question in order:\n")
	for i, q := range buildQuestions(vertical, scopeLabel) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	seeds := make(map[Dimension]int, len(vec))
	for dim, v := range vec {
		seeds[dim] = toFivePoint(v)
	}
	if payload, err := json.Marshal(seeds); err == nil {
		b.WriteString("\nRule-based seed scores (hint only, override freely): ")
		b.Write(payload)
		b.WriteString("\n")
	}

	b.WriteString("\nPage text:\n")
	b.WriteString(text)
	return b.String()
}

// evaluationWire tolerates arbitrary shapes per field; each leaf is coerced
// individually instead of trusting the external structure.
type evaluationWire struct {
	Scores  map[string]map[string]json.RawMessage `json:"scores"`
	Reasons map[string]map[string]json.RawMessage `json:"reasons"`
}

func parseEvaluation(content string) (*llmResult, error) {
	sanitized := strings.TrimSpace(content)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	sanitized = strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))

	var wire evaluationWire
	if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
		return nil, err
	}
	if len(wire.Scores) == 0 {
		return nil, errors.New("scores missing")
	}

	result := &llmResult{
		scores:  make(map[Dimension]int),
		reasons: make(map[Dimension]string),
	}
	for _, lens := range lensOrder {
		for _, dim := range lensDimensions[lens] {
			if raw, ok := wire.Scores[string(lens)][string(dim)]; ok {
				if score, ok := coerceScore(raw); ok {
					result.scores[dim] = score
				}
			}
			if raw, ok := wire.Reasons[string(lens)][string(dim)]; ok {
				result.reasons[dim] = coerceReason(raw)
			}
		}
	}
	return result, nil
}

// coerceScore accepts numbers or numeric strings, rounds to the nearest
// integer and clamps to [1,5]. Anything else stays unset so the heuristic
// value wins.
func coerceScore(raw json.RawMessage) (int, bool) {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return clampScore(int(math.Round(num))), true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			return clampScore(parsed), true
		}
	}
	return 0, false
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}

func coerceReason(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return ""
	}
	return str
}
