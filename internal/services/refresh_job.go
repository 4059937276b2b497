package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RefreshJobName identifies the periodic market refresh in scheduler logs.
const RefreshJobName = "market-refresh"

// RefreshResult contains the outcome of a refresh cycle.
type RefreshResult struct {
	CoinsFetched    int
	TrendingFetched int
	PricesSynced    int
	Duration        time.Duration
}

// RefreshJob reloads the market snapshot and, when enabled, copies the latest
// prices into the portfolio.
type RefreshJob struct {
	coins      CoinServicer
	portfolio  PortfolioServicer
	livePrices bool
	log        *zap.SugaredLogger
	onResult   func(RefreshResult)
}

// NewRefreshJob creates the refresh job. onResult, when not nil, receives the
// outcome of every completed cycle.
func NewRefreshJob(coins CoinServicer, portfolio PortfolioServicer, livePrices bool, log *zap.SugaredLogger, onResult func(RefreshResult)) *RefreshJob {
	return &RefreshJob{
		coins:      coins,
		portfolio:  portfolio,
		livePrices: livePrices,
		log:        log.Named("refresh"),
		onResult:   onResult,
	}
}

// Name returns the job name.
func (j *RefreshJob) Name() string { return RefreshJobName }

// Run executes a single refresh cycle. A partially failed refresh still syncs
// whatever coins the snapshot holds.
func (j *RefreshJob) Run(ctx context.Context) error {
	start := time.Now()

	refreshErr := j.coins.Refresh(ctx)

	snap := j.coins.Snapshot()
	result := RefreshResult{
		CoinsFetched:    len(snap.Coins),
		TrendingFetched: len(snap.Trending),
	}
	if j.livePrices && len(snap.Coins) > 0 {
		result.PricesSynced = j.portfolio.SyncPrices(ctx, snap.Coins)
	}
	result.Duration = time.Since(start)

	j.log.Infow("Refresh complete",
		"coins", result.CoinsFetched,
		"trending", result.TrendingFetched,
		"prices_synced", result.PricesSynced,
		"duration", result.Duration,
	)
	if j.onResult != nil {
		j.onResult(result)
	}
	return refreshErr
}
