package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cryptodash/internal/forms"
	"cryptodash/internal/models"
	"cryptodash/internal/portfolio"
)

// ItemValidation is the live validation state of an add-item form.
type ItemValidation struct {
	Valid      bool                   `json:"valid"`
	Errors     forms.ValidationErrors `json:"errors"`
	TotalValue string                 `json:"total_value"`
}

// PortfolioService handles portfolio-related business logic. Holdings come
// from the static fixture; current prices may be synced from market data.
type PortfolioService struct {
	submitDelay   time.Duration
	redirectDelay time.Duration
	log           *zap.SugaredLogger

	mu    sync.RWMutex
	items []portfolio.Item
}

// NewPortfolioService creates a new portfolio service over the fixture
// holdings. The delays drive the simulated add-item submission.
func NewPortfolioService(submitDelay, redirectDelay time.Duration, log *zap.SugaredLogger) PortfolioServicer {
	return &PortfolioService{
		submitDelay:   submitDelay,
		redirectDelay: redirectDelay,
		log:           log.Named("portfolio"),
		items:         portfolio.Fixture(),
	}
}

// GetItems returns the holdings with their derived values.
func (s *PortfolioService) GetItems(ctx context.Context) []portfolio.EnrichedItem {
	return portfolio.ComputeAll(s.read())
}

// GetSummary returns the totals over all holdings.
func (s *PortfolioService) GetSummary(ctx context.Context) portfolio.Summary {
	return portfolio.ComputeSummary(s.read())
}

// GetAllocation returns each holding's share of the total value.
func (s *PortfolioService) GetAllocation(ctx context.Context) []portfolio.AllocationSlice {
	return portfolio.Allocation(s.read())
}

// SyncPrices copies the current price of every held coin found in coins and
// returns how many holdings were updated.
func (s *PortfolioService) SyncPrices(ctx context.Context, coins []models.Coin) int {
	prices := make(map[string]decimal.Decimal, len(coins))
	for _, c := range coins {
		prices[c.ID] = decimal.NewFromFloat(c.CurrentPrice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for _, item := range s.items {
		if _, ok := prices[item.ID]; ok {
			updated++
		}
	}
	s.items = portfolio.WithPrices(s.items, prices)

	s.log.Debugw("Synced portfolio prices", "updated", updated, "held", len(s.items))
	return updated
}

// ValidateItem checks an add-item form without submitting it.
func (s *PortfolioService) ValidateItem(input forms.ItemInput) ItemValidation {
	errs := forms.Validate(input)
	if errs == nil {
		errs = forms.ValidationErrors{}
	}
	return ItemValidation{
		Valid:      len(errs) == 0,
		Errors:     errs,
		TotalValue: forms.TotalValue(input.Quantity, input.PurchasePrice),
	}
}

// SubmitItem runs the simulated add-item submission. Invalid input returns
// forms.ValidationErrors. Nothing is persisted.
func (s *PortfolioService) SubmitItem(ctx context.Context, input forms.ItemInput) (*forms.Submission, error) {
	flow := forms.NewFlow(forms.WithDelays(s.submitDelay, s.redirectDelay))
	defer flow.Cancel()

	if err := flow.Fill(input); err != nil {
		return nil, err
	}
	sub, err := flow.Submit(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Infow("Accepted portfolio item", "symbol", input.Symbol, "total_value", sub.TotalValue)
	return sub, nil
}

func (s *PortfolioService) read() []portfolio.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}
