package di

import (
	"context"
	"log/slog"
	"time"

	channelRepo "github.com/kentcanonigo/slack-search-generator/internal/modules/channel/repository"
	channelService "github.com/kentcanonigo/slack-search-generator/internal/modules/channel/service"
	queryService "github.com/kentcanonigo/slack-search-generator/internal/modules/query/service"
	"github.com/kentcanonigo/slack-search-generator/internal/shared/config"
	httpServer "github.com/kentcanonigo/slack-search-generator/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container with config
// loaded from the working directory and environment
func Setup() (do.Injector, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, oops.With("context", "failed to load config").Wrap(err)
	}
	return SetupWithConfig(cfg), nil
}

// SetupWithConfig initializes the container around an existing config
func SetupWithConfig(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	// Register Channel Repository
	do.Provide(injector, func(i do.Injector) (channelRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := channelRepo.NewFileStorage(cfg.ChannelsPath())
		if err != nil {
			return nil, oops.With("path", cfg.ChannelsPath(), "context", "failed to initialize channel repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Channel Service
	do.Provide(injector, func(i do.Injector) (*channelService.Service, error) {
		repo := do.MustInvoke[channelRepo.Repository](i)
		return channelService.New(repo), nil
	})

	// Register Query Service
	do.Provide(injector, func(i do.Injector) (*queryService.Service, error) {
		return queryService.New(), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		qs := do.MustInvoke[*queryService.Service](i)
		cs := do.MustInvoke[*channelService.Service](i)
		server := httpServer.New(cfg, qs, cs)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to stop http server").Wrap(err)
		}
	}

	return nil
}
