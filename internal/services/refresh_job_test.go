package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"cryptodash/internal/models"
	"cryptodash/internal/scheduler"
	"cryptodash/internal/testutil"
)

var _ scheduler.Job = (*RefreshJob)(nil)

func TestRefreshJob_Run(t *testing.T) {
	tests := []struct {
		name       string
		livePrices bool
		wantSynced int
		wantPrice  string
	}{
		{"static_prices", false, 0, "3200"},
		{"live_prices", true, 5, "4000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newMockGateway()
			gw.listCoinsFn = func(ctx context.Context, page, perPage int) ([]models.Coin, error) {
				coins := testutil.SampleCoins()
				coins[1].CurrentPrice = 4000
				return coins, nil
			}
			coins := NewCoinService(gw, 20, 5, zap.NewNop().Sugar())
			portfolio := newTestPortfolioService()

			var got RefreshResult
			job := NewRefreshJob(coins, portfolio, tt.livePrices, zap.NewNop().Sugar(), func(r RefreshResult) { got = r })

			if job.Name() != RefreshJobName {
				t.Errorf("expected name %s, got %s", RefreshJobName, job.Name())
			}
			testutil.AssertNoError(t, job.Run(context.Background()))

			if got.CoinsFetched != 5 || got.TrendingFetched != 5 {
				t.Errorf("unexpected result: %+v", got)
			}
			if got.PricesSynced != tt.wantSynced {
				t.Errorf("expected %d prices synced, got %d", tt.wantSynced, got.PricesSynced)
			}

			eth := portfolio.GetItems(context.Background())[1]
			testutil.AssertDecimal(t, "ethereum price", eth.CurrentPrice, tt.wantPrice)
		})
	}
}

func TestRefreshJob_RunReportsFailure(t *testing.T) {
	gw := newMockGateway()
	gw.listCoinsFn = func(ctx context.Context, page, perPage int) ([]models.Coin, error) {
		return nil, errUpstream
	}
	gw.getTrendingFn = func(ctx context.Context) ([]models.TrendingCoin, error) {
		return nil, errUpstream
	}
	portfolio := newTestPortfolioService()
	job := NewRefreshJob(NewCoinService(gw, 20, 5, zap.NewNop().Sugar()), portfolio, true, zap.NewNop().Sugar(), nil)

	err := job.Run(context.Background())
	testutil.AssertAppError(t, err, "MARKET_DATA_UNAVAILABLE")

	summary := portfolio.GetSummary(context.Background())
	testutil.AssertDecimal(t, "total value", summary.TotalValue, "37550")
}
