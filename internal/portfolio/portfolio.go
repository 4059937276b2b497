// Package portfolio computes the derived values of the mock investment
// portfolio. All functions are pure; derived fields are never stored.
package portfolio

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Item is a holding of a coin with its cost basis.
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Image        string          `json:"image"`
	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"average_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// EnrichedItem is an Item with its derived values.
type EnrichedItem struct {
	Item
	TotalValue           decimal.Decimal `json:"total_value"`
	Invested             decimal.Decimal `json:"invested"`
	ProfitLoss           decimal.Decimal `json:"profit_loss"`
	ProfitLossPercentage decimal.Decimal `json:"profit_loss_percentage"`
}

// Summary aggregates the whole portfolio.
type Summary struct {
	TotalValue                decimal.Decimal `json:"total_value"`
	TotalInvested             decimal.Decimal `json:"total_invested"`
	TotalProfitLoss           decimal.Decimal `json:"total_profit_loss"`
	TotalProfitLossPercentage decimal.Decimal `json:"total_profit_loss_percentage"`
}

// AllocationSlice is the share of one holding in the portfolio's total value.
type AllocationSlice struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ComputeItem derives value, invested cost and profit/loss of a holding.
// The percentage is 0 when the average price is 0.
func ComputeItem(item Item) EnrichedItem {
	totalValue := item.Quantity.Mul(item.CurrentPrice)
	invested := item.Quantity.Mul(item.AveragePrice)

	pct := decimal.Zero
	if !item.AveragePrice.IsZero() {
		pct = item.CurrentPrice.Sub(item.AveragePrice).Div(item.AveragePrice).Mul(hundred)
	}

	return EnrichedItem{
		Item:                 item,
		TotalValue:           totalValue,
		Invested:             invested,
		ProfitLoss:           totalValue.Sub(invested),
		ProfitLossPercentage: pct,
	}
}

// ComputeAll enriches every item, preserving order.
func ComputeAll(items []Item) []EnrichedItem {
	out := make([]EnrichedItem, len(items))
	for i, item := range items {
		out[i] = ComputeItem(item)
	}
	return out
}

// ComputeSummary sums value and invested cost over all items. The percentage
// is 0 unless something was invested.
func ComputeSummary(items []Item) Summary {
	totalValue := decimal.Zero
	totalInvested := decimal.Zero
	for _, e := range ComputeAll(items) {
		totalValue = totalValue.Add(e.TotalValue)
		totalInvested = totalInvested.Add(e.Invested)
	}

	totalPL := totalValue.Sub(totalInvested)
	pct := decimal.Zero
	if totalInvested.IsPositive() {
		pct = totalPL.Div(totalInvested).Mul(hundred)
	}

	return Summary{
		TotalValue:                totalValue,
		TotalInvested:             totalInvested,
		TotalProfitLoss:           totalPL,
		TotalProfitLossPercentage: pct,
	}
}

// Allocation returns each holding's share of the total value in percent.
// Every share is 0 when the portfolio is worth nothing.
func Allocation(items []Item) []AllocationSlice {
	enriched := ComputeAll(items)

	total := decimal.Zero
	for _, e := range enriched {
		total = total.Add(e.TotalValue)
	}

	out := make([]AllocationSlice, len(enriched))
	for i, e := range enriched {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = e.TotalValue.Div(total).Mul(hundred)
		}
		out[i] = AllocationSlice{
			ID:         e.ID,
			Name:       e.Name,
			Symbol:     e.Symbol,
			Value:      e.TotalValue,
			Percentage: pct,
		}
	}
	return out
}

// WithPrices returns a copy of items whose current price is replaced by the
// matching entry of prices, keyed by coin id. Items without a price keep theirs.
func WithPrices(items []Item, prices map[string]decimal.Decimal) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		if p, ok := prices[item.ID]; ok {
			item.CurrentPrice = p
		}
		out[i] = item
	}
	return out
}
