package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"cryptodash/internal/coinfilter"
	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/market"
	"cryptodash/internal/models"
	"cryptodash/internal/pagination"
)

// MarketSnapshot is the last refreshed first page of coins and trending list.
type MarketSnapshot struct {
	Coins     []models.Coin         `json:"coins"`
	Trending  []models.TrendingCoin `json:"trending"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// CoinService handles coin-related business logic.
type CoinService struct {
	gateway       MarketGateway
	perPage       int
	trendingLimit int
	log           *zap.SugaredLogger

	mu       sync.RWMutex
	snapshot MarketSnapshot
}

// NewCoinService creates a new coin service. perPage is the page size kept in
// the snapshot; trendingLimit caps the trending list.
func NewCoinService(gateway MarketGateway, perPage, trendingLimit int, log *zap.SugaredLogger) CoinServicer {
	return &CoinService{
		gateway:       gateway,
		perPage:       perPage,
		trendingLimit: trendingLimit,
		log:           log.Named("coins"),
	}
}

// ListCoins returns one page of coins filtered and sorted by query. The first
// default-sized page is served from the snapshot when one exists.
func (s *CoinService) ListCoins(ctx context.Context, page pagination.PageRequest, query coinfilter.Query) (*pagination.PageResponse[models.Coin], error) {
	page.Defaults(s.perPage)

	var coins []models.Coin
	if page.Page == 1 && page.PerPage == s.perPage {
		s.mu.RLock()
		if !s.snapshot.UpdatedAt.IsZero() {
			coins = s.snapshot.Coins
		}
		s.mu.RUnlock()
	}

	if coins == nil {
		fetched, err := s.gateway.ListCoins(ctx, page.Page, page.PerPage)
		if err != nil {
			s.log.Errorw("Failed to load coin list", "page", page.Page, "per_page", page.PerPage, "error", err)
			return nil, apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
		}
		coins = fetched
	}

	resp := pagination.NewPageResponse(coinfilter.Apply(coins, query), page.Page, page.PerPage, len(coins))
	return &resp, nil
}

// GetCoin returns the detail of a coin.
func (s *CoinService) GetCoin(ctx context.Context, id string) (*models.CoinDetail, error) {
	detail, err := s.gateway.GetCoin(ctx, id)
	if err != nil {
		return nil, s.upstreamError("Failed to load coin detail", id, err)
	}
	return detail, nil
}

// GetHistory returns the price series of a coin over the timeframe.
func (s *CoinService) GetHistory(ctx context.Context, id string, timeframe market.Timeframe) ([]models.PricePoint, error) {
	points, err := s.gateway.GetHistory(ctx, id, timeframe.Days())
	if err != nil {
		return nil, s.upstreamError("Failed to load price history", id, err)
	}
	return points, nil
}

// GetTrending returns the first trending coins, from the snapshot when one exists.
func (s *CoinService) GetTrending(ctx context.Context) ([]models.TrendingCoin, error) {
	s.mu.RLock()
	trending := s.snapshot.Trending
	s.mu.RUnlock()

	if trending == nil {
		fetched, err := s.gateway.GetTrending(ctx)
		if err != nil {
			s.log.Errorw("Failed to load trending coins", "error", err)
			return nil, apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
		}
		trending = fetched
	}
	return s.limitTrending(trending), nil
}

// Refresh reloads the first page of coins and the trending list concurrently.
// Each part is stored as soon as it arrives; a failed part keeps its previous
// value. Overlapping refreshes are allowed and the last write wins.
func (s *CoinService) Refresh(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		coins, err := s.gateway.ListCoins(ctx, 1, s.perPage)
		if err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("coin list: %w", err))
			mu.Unlock()
			return
		}
		s.mu.Lock()
		s.snapshot.Coins = coins
		s.snapshot.UpdatedAt = time.Now()
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		trending, err := s.gateway.GetTrending(ctx)
		if err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("trending: %w", err))
			mu.Unlock()
			return
		}
		s.mu.Lock()
		s.snapshot.Trending = trending
		s.mu.Unlock()
	}()
	wg.Wait()

	if len(errs) > 0 {
		err := errors.Join(errs...)
		s.log.Warnw("Market refresh incomplete", "error", err)
		return apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
	}
	return nil
}

// Snapshot returns a copy of the current snapshot.
func (s *CoinService) Snapshot() MarketSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MarketSnapshot{
		Coins:     slices.Clone(s.snapshot.Coins),
		Trending:  s.limitTrending(s.snapshot.Trending),
		UpdatedAt: s.snapshot.UpdatedAt,
	}
}

func (s *CoinService) limitTrending(trending []models.TrendingCoin) []models.TrendingCoin {
	if len(trending) > s.trendingLimit {
		trending = trending[:s.trendingLimit]
	}
	return slices.Clone(trending)
}

func (s *CoinService) upstreamError(msg, id string, err error) error {
	if errors.Is(err, market.ErrNotFound) {
		return apperrors.Wrap(apperrors.ErrCoinNotFound, err)
	}
	s.log.Errorw(msg, "coin_id", id, "error", err)
	return apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
}
