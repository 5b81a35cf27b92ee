package clarity

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/pagelens/clarity-scan/internal/infra/llm/chatgpt"
)

// Service scores a webpage's clarity across the nine sub-dimensions.
type Service interface {
	Analyze(ctx context.Context, req Request) (Report, error)
}

// ChatClient is the slice of the LLM client the evaluator needs. A nil
// client means heuristic-only operation.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// PageFetcher retrieves raw HTML for a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

var httpURLRe = regexp.MustCompile(`(?i)^https?://\S+$`)

type service struct {
	cfg     Config
	fetcher PageFetcher
	chat    ChatClient
	logger  *slog.Logger
}

// NewService wires up the clarity domain.
func NewService(cfg Config, fetcher PageFetcher, chat ChatClient, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		fetcher: fetcher,
		chat:    chat,
		logger:  logger.With("component", "clarity.service"),
	}
}

// Analyze runs fetch, heuristics, the optional LLM refinement and the merge.
// Fetch and LLM failures never propagate; they degrade to fallback scores so
// the report stays structurally complete.
func (s *service) Analyze(ctx context.Context, req Request) (Report, error) {
	html := s.fetchPage(ctx, req.URL)
	text := ExtractText(html, s.cfg.MaxTextLen)

	vec := heuristicVector(text, html, req.ClientMetrics)

	var llm *llmResult
	if text != "" || html != "" {
		llm = s.evaluate(ctx, text, normalizeVertical(req.Context), req.ScopeLabel, vec)
	}

	report := buildReport(vec, llm, req.ScopeLabel)
	s.logger.Info("clarity analysis completed", "url", req.URL, "llmUsed", llm != nil)
	return report, nil
}

// fetchPage returns empty markup on any failure so text and html dependent
// heuristics fall back to their empty-input defaults.
func (s *service) fetchPage(ctx context.Context, url string) string {
	if !httpURLRe.MatchString(url) {
		return ""
	}
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warn("page fetch failed, scoring without content", "url", url, "error", err)
		return ""
	}
	return html
}
