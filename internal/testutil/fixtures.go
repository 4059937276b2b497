package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"cryptodash/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SampleCoins returns a small market snapshot ordered by market cap.
func SampleCoins() []models.Coin {
	return []models.Coin{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 52000, MarketCap: 1.02e12, MarketCapRank: 1, TotalVolume: 3.1e10, PriceChangePercentage24h: 2.4},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3200, MarketCap: 3.85e11, MarketCapRank: 2, TotalVolume: 1.6e10, PriceChangePercentage24h: -1.1},
		{ID: "solana", Symbol: "sol", Name: "Solana", CurrentPrice: 180, MarketCap: 8.1e10, MarketCapRank: 5, TotalVolume: 3.2e9, PriceChangePercentage24h: 5.7},
		{ID: "cardano", Symbol: "ada", Name: "Cardano", CurrentPrice: 0.65, MarketCap: 2.3e10, MarketCapRank: 9, TotalVolume: 5.4e8, PriceChangePercentage24h: -3.2},
		{ID: "chainlink", Symbol: "link", Name: "Chainlink", CurrentPrice: 22, MarketCap: 1.3e10, MarketCapRank: 14, TotalVolume: 4.1e8, PriceChangePercentage24h: 0},
	}
}

// SampleTrending returns a trending list longer than the default limit.
func SampleTrending() []models.TrendingCoin {
	out := make([]models.TrendingCoin, 7)
	for i := range out {
		out[i] = models.TrendingCoin{
			ID:            fmt.Sprintf("trend-%d", i),
			CoinID:        1000 + i,
			Name:          fmt.Sprintf("Trend %d", i),
			Symbol:        fmt.Sprintf("TR%d", i),
			MarketCapRank: 100 + i,
			Score:         i,
		}
	}
	return out
}

// SampleCoinDetail returns the detail view of bitcoin.
func SampleCoinDetail() *models.CoinDetail {
	return &models.CoinDetail{
		ID:                       "bitcoin",
		Symbol:                   "btc",
		Name:                     "Bitcoin",
		Description:              "The first decentralized cryptocurrency.",
		Homepage:                 "http://www.bitcoin.org",
		MarketCapRank:            1,
		Currency:                 "usd",
		CurrentPrice:             52000,
		MarketCap:                1.02e12,
		TotalVolume:              3.1e10,
		High24h:                  52800,
		Low24h:                   50900,
		PriceChangePercentage24h: 2.4,
	}
}

// CreateTestKVEntry stores a key/value pair with a unique key.
func CreateTestKVEntry(t *testing.T, db *gorm.DB, value string) *models.KVEntry {
	t.Helper()

	entry := &models.KVEntry{
		Key:   fmt.Sprintf("key-%d", nextID()),
		Value: value,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test kv entry: %v", err)
	}
	return entry
}
