//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/config"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Data sources
		ProvideFinancialSource,
		ProvideNewsSource,
		ProvideCollector,

		// Model and explanation
		ProvideModel,
		ProvideExplainer,

		// Downstream backends
		ProvideHistoryStore,
		ProvideEventPublisher,
		ProvidePipeline,

		// Use cases
		ProvideScoreCardUsecase,
		ProvideCompareUsecase,
		ProvideMapper,
		ProvideQueue,
		ProvideRefresher,

		// HTTP and application server
		ProvideHTTPHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
