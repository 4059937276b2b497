package services

import (
	"context"

	"cryptodash/internal/coinfilter"
	"cryptodash/internal/forms"
	"cryptodash/internal/market"
	"cryptodash/internal/models"
	"cryptodash/internal/pagination"
	"cryptodash/internal/portfolio"
)

// MarketGateway defines the upstream market data operations used by the services.
type MarketGateway interface {
	ListCoins(ctx context.Context, page, perPage int) ([]models.Coin, error)
	GetCoin(ctx context.Context, id string) (*models.CoinDetail, error)
	GetHistory(ctx context.Context, id string, days int) ([]models.PricePoint, error)
	GetTrending(ctx context.Context) ([]models.TrendingCoin, error)
}

// CoinServicer defines the contract for coin-related business logic.
type CoinServicer interface {
	ListCoins(ctx context.Context, page pagination.PageRequest, query coinfilter.Query) (*pagination.PageResponse[models.Coin], error)
	GetCoin(ctx context.Context, id string) (*models.CoinDetail, error)
	GetHistory(ctx context.Context, id string, timeframe market.Timeframe) ([]models.PricePoint, error)
	GetTrending(ctx context.Context) ([]models.TrendingCoin, error)
	Refresh(ctx context.Context) error
	Snapshot() MarketSnapshot
}

// PortfolioServicer defines the contract for portfolio-related business logic.
type PortfolioServicer interface {
	GetItems(ctx context.Context) []portfolio.EnrichedItem
	GetSummary(ctx context.Context) portfolio.Summary
	GetAllocation(ctx context.Context) []portfolio.AllocationSlice
	SyncPrices(ctx context.Context, coins []models.Coin) int
	ValidateItem(input forms.ItemInput) ItemValidation
	SubmitItem(ctx context.Context, input forms.ItemInput) (*forms.Submission, error)
}

// SessionServicer defines the contract for the fake-auth session.
type SessionServicer interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context) error
	Current() (*models.User, bool)
	IsAuthenticated() bool
	Token() string
}
