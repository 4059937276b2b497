package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cryptodash/internal/format"
	"cryptodash/internal/forms"
	"cryptodash/internal/models"
	"cryptodash/internal/pagination"
	"cryptodash/internal/portfolio"
)

func renderCoins(page *pagination.PageResponse[models.Coin], currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Coins (page %d)\n\n", page.Page)
	if len(page.Data) == 0 {
		b.WriteString("No coins match.\n")
		return b.String()
	}

	b.WriteString("| # | Coin | Price | 24h | Market Cap |\n")
	b.WriteString("|--:|:-----|------:|----:|-----------:|\n")
	for _, c := range page.Data {
		fmt.Fprintf(&b, "| %d | %s (%s) | %s | %s | %s |\n",
			c.MarketCapRank,
			c.Name, strings.ToUpper(c.Symbol),
			format.Price(c.CurrentPrice, currency),
			format.PercentFloat(c.PriceChangePercentage24h),
			format.MarketCap(c.MarketCap, currency),
		)
	}
	if page.HasMore {
		fmt.Fprintf(&b, "\nMore results: `-page %d`\n", page.Page+1)
	}
	return b.String()
}

func renderTrending(coins []models.TrendingCoin) string {
	var b strings.Builder
	b.WriteString("# Trending\n\n")
	b.WriteString("| Coin | Symbol | Rank |\n")
	b.WriteString("|:-----|:-------|-----:|\n")
	for _, c := range coins {
		rank := "-"
		if c.MarketCapRank > 0 {
			rank = fmt.Sprint(c.MarketCapRank)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Name, strings.ToUpper(c.Symbol), rank)
	}
	return b.String()
}

func renderCoin(c *models.CoinDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", c.Name, strings.ToUpper(c.Symbol))
	b.WriteString("| | |\n|:--|--:|\n")
	fmt.Fprintf(&b, "| Price | %s |\n", format.Price(c.CurrentPrice, c.Currency))
	fmt.Fprintf(&b, "| 24h change | %s |\n", format.PercentFloat(c.PriceChangePercentage24h))
	fmt.Fprintf(&b, "| 24h high | %s |\n", format.Price(c.High24h, c.Currency))
	fmt.Fprintf(&b, "| 24h low | %s |\n", format.Price(c.Low24h, c.Currency))
	fmt.Fprintf(&b, "| Market cap | %s |\n", format.MarketCap(c.MarketCap, c.Currency))
	fmt.Fprintf(&b, "| Volume | %s |\n", format.MarketCap(c.TotalVolume, c.Currency))
	fmt.Fprintf(&b, "| Rank | %d |\n", c.MarketCapRank)
	if c.Homepage != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Homepage)
	}
	if c.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Description)
	}
	return b.String()
}

func renderHistory(id, timeframe string, points []models.PricePoint, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s price, %s\n\n", id, timeframe)
	if len(points) == 0 {
		b.WriteString("No prices.\n")
		return b.String()
	}

	low, high := points[0].Price, points[0].Price
	for _, p := range points {
		low = min(low, p.Price)
		high = max(high, p.Price)
	}
	first, last := points[0].Price, points[len(points)-1].Price
	change := 0.0
	if first != 0 {
		change = (last - first) / first * 100
	}
	fmt.Fprintf(&b, "Open %s, close %s (%s), low %s, high %s.\n\n",
		format.Price(first, currency), format.Price(last, currency), format.PercentFloat(change),
		format.Price(low, currency), format.Price(high, currency))

	b.WriteString("| Time | Price |\n|:-----|------:|\n")
	for _, p := range points {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Time.Local().Format(time.DateTime), format.Price(p.Price, currency))
	}
	return b.String()
}

func renderPortfolio(items []portfolio.EnrichedItem, summary portfolio.Summary, allocation []portfolio.AllocationSlice, currency string) string {
	var b strings.Builder
	b.WriteString("# Portfolio\n\n")
	fmt.Fprintf(&b, "Total value **%s**, invested %s, profit/loss %s (%s).\n\n",
		format.Money(summary.TotalValue, currency),
		format.Money(summary.TotalInvested, currency),
		format.Money(summary.TotalProfitLoss, currency),
		format.Percent(summary.TotalProfitLossPercentage),
	)

	share := make(map[string]decimal.Decimal, len(allocation))
	for _, s := range allocation {
		share[s.ID] = s.Percentage
	}

	b.WriteString("| Coin | Quantity | Avg. price | Price | Value | P/L | Share |\n")
	b.WriteString("|:-----|---------:|-----------:|------:|------:|----:|------:|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s (%s) | %s | %s | %s | %s | %s %s | %s |\n",
			it.Name, it.Symbol,
			format.Quantity(it.Quantity),
			format.Money(it.AveragePrice, currency),
			format.Money(it.CurrentPrice, currency),
			format.Money(it.TotalValue, currency),
			format.Money(it.ProfitLoss, currency), format.Percent(it.ProfitLossPercentage),
			share[it.ID].StringFixed(2)+"%",
		)
	}
	return b.String()
}

func renderFieldErrors(errs forms.ValidationErrors) string {
	var b strings.Builder
	b.WriteString("The item was not added:\n\n")
	for _, fe := range errs {
		fmt.Fprintf(&b, "- **%s**: %s\n", fe.Field, fe.Message)
	}
	return b.String()
}
