package main

import (
	"strings"

	"github.com/pagelens/clarity-scan/internal/domain/clarity"
	"github.com/pagelens/clarity-scan/internal/infra/config"
	"github.com/pagelens/clarity-scan/internal/infra/llm/chatgpt"
	"github.com/pagelens/clarity-scan/internal/infra/page"
)

func provideClarityConfig(cfg *config.Config) clarity.Config {
	return clarity.Config{
		Model:      cfg.LLM.Model,
		MaxTextLen: cfg.Clarity.MaxTextLen,
	}
}

// provideChatClient returns nil when no API key is configured; the clarity
// service then runs heuristic-only.
func provideChatClient(cfg *config.Config) (clarity.ChatClient, error) {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		return nil, nil
	}
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
}

func providePageFetcher(cfg *config.Config) *page.Client {
	return page.NewClient(cfg.Clarity.FetchTimeout)
}
