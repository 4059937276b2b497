// Package app wires configuration, storage, session and market data into the
// services shared by the API server and the command line client.
package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"cryptodash/internal/config"
	"cryptodash/internal/database"
	"cryptodash/internal/market"
	"cryptodash/internal/middleware"
	"cryptodash/internal/services"
	"cryptodash/internal/session"
)

// redisKeyPrefix namespaces the session keys in a shared Redis.
const redisKeyPrefix = "cryptodash:"

// App holds the wired services.
type App struct {
	Config    *config.Config
	Sessions  *session.Manager
	Gateway   *market.Gateway
	Coins     services.CoinServicer
	Portfolio services.PortfolioServicer

	log     *zap.SugaredLogger
	closers []func() error
}

// Open builds every service from cfg, migrates the session database and
// restores a saved session.
func Open(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	a := &App{Config: cfg, log: log}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	a.Sessions = session.NewManager(store, session.NewHTTPAuthenticator(httpClient, cfg.AuthURL), middleware.GenerateToken)
	if err := a.Sessions.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	a.Gateway = market.NewGateway(httpClient,
		market.WithBaseURL(cfg.CoinGeckoURL),
		market.WithAPIKey(cfg.CoinGeckoAPIKey),
		market.WithCurrency(cfg.VSCurrency),
	)
	a.Coins = services.NewCoinService(a.Gateway, cfg.PerPage, cfg.TrendingLimit, log)
	a.Portfolio = services.NewPortfolioService(cfg.SubmitDelay, cfg.RedirectDelay, log)

	return a, nil
}

// RefreshJob returns the periodic market refresh over the app's services.
func (a *App) RefreshJob(onResult func(services.RefreshResult)) *services.RefreshJob {
	return services.NewRefreshJob(a.Coins, a.Portfolio, a.Config.LivePortfolioPrices, a.log, onResult)
}

// Log returns the logger the services were built with.
func (a *App) Log() *zap.SugaredLogger { return a.log }

// Close releases the session store.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warnw("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) openStore(ctx context.Context) (session.Store, error) {
	if a.Config.SessionStore == config.SessionStoreRedis {
		store, err := session.OpenRedisStore(ctx, a.Config.RedisURL, redisKeyPrefix)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		a.log.Infow("Using Redis session store")
		return store, nil
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	a.closers = append(a.closers, dbManager.Close)

	if err := dbManager.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	a.log.Infow("Using database session store", "driver", dbConfig.Driver)
	return session.NewDBStore(dbManager.DB()), nil
}
