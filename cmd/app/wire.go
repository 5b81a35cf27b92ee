//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/pagelens/clarity-scan/internal/bootstrap"
	"github.com/pagelens/clarity-scan/internal/domain/clarity"
	"github.com/pagelens/clarity-scan/internal/infra/config"
	"github.com/pagelens/clarity-scan/internal/infra/page"
	httpiface "github.com/pagelens/clarity-scan/internal/interface/http"
	"github.com/pagelens/clarity-scan/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideClarityConfig,
		provideChatClient,
		providePageFetcher,
		clarity.NewService,
		wire.Bind(new(clarity.PageFetcher), new(*page.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
