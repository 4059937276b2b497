package portfolio

import "github.com/shopspring/decimal"

// Fixture returns a fresh copy of the static mock portfolio.
func Fixture() []Item {
	return []Item{
		{
			ID:           "bitcoin",
			Name:         "Bitcoin",
			Symbol:       "BTC",
			Image:        "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
			Quantity:     decimal.RequireFromString("0.5"),
			AveragePrice: decimal.NewFromInt(45000),
			CurrentPrice: decimal.NewFromInt(52000),
		},
		{
			ID:           "ethereum",
			Name:         "Ethereum",
			Symbol:       "ETH",
			Image:        "https://assets.coingecko.com/coins/images/279/large/ethereum.png",
			Quantity:     decimal.RequireFromString("2.5"),
			AveragePrice: decimal.NewFromInt(2800),
			CurrentPrice: decimal.NewFromInt(3200),
		},
		{
			ID:           "cardano",
			Name:         "Cardano",
			Symbol:       "ADA",
			Image:        "https://assets.coingecko.com/coins/images/975/large/cardano.png",
			Quantity:     decimal.NewFromInt(1000),
			AveragePrice: decimal.RequireFromString("0.8"),
			CurrentPrice: decimal.RequireFromString("0.65"),
		},
		{
			ID:           "solana",
			Name:         "Solana",
			Symbol:       "SOL",
			Image:        "https://assets.coingecko.com/coins/images/4128/large/solana.png",
			Quantity:     decimal.NewFromInt(10),
			AveragePrice: decimal.NewFromInt(120),
			CurrentPrice: decimal.NewFromInt(180),
		},
		{
			ID:           "chainlink",
			Name:         "Chainlink",
			Symbol:       "LINK",
			Image:        "https://assets.coingecko.com/coins/images/877/large/chainlink-new-logo.png",
			Quantity:     decimal.NewFromInt(50),
			AveragePrice: decimal.NewFromInt(25),
			CurrentPrice: decimal.NewFromInt(22),
		},
	}
}
