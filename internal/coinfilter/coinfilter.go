// Package coinfilter derives the filtered and ordered coin list shown by the
// dashboard from the full list of coins.
package coinfilter

import (
	"cmp"
	"slices"
	"strings"

	"cryptodash/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ChangeFilter selects coins by the sign of their 24h price change.
type ChangeFilter string

const (
	ChangeAll      ChangeFilter = "all"
	ChangePositive ChangeFilter = "positive"
	ChangeNegative ChangeFilter = "negative"
)

// SortKey selects the ordering of the resulting list.
type SortKey string

const (
	SortMarketCapDesc SortKey = "market_cap_desc"
	SortMarketCapAsc  SortKey = "market_cap_asc"
	SortPriceDesc     SortKey = "price_desc"
	SortPriceAsc      SortKey = "price_asc"
	SortNameAsc       SortKey = "name_asc"
	SortNameDesc      SortKey = "name_desc"
	SortChangeDesc    SortKey = "change_desc"
	SortChangeAsc     SortKey = "change_asc"
)

// DefaultSort is used for empty and unknown sort keys.
const DefaultSort = SortMarketCapDesc

// Query is the filter state applied to a coin list.
type Query struct {
	Search string
	Change ChangeFilter
	Sort   SortKey
}

// SortKeys returns every supported sort key.
func SortKeys() []SortKey {
	return []SortKey{
		SortMarketCapDesc, SortMarketCapAsc,
		SortPriceDesc, SortPriceAsc,
		SortNameAsc, SortNameDesc,
		SortChangeDesc, SortChangeAsc,
	}
}

// ChangeFilters returns every supported change filter.
func ChangeFilters() []ChangeFilter {
	return []ChangeFilter{ChangeAll, ChangePositive, ChangeNegative}
}

// ParseSortKey returns the sort key named by s and whether it is known.
// Unknown keys resolve to DefaultSort.
func ParseSortKey(s string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys(), key) {
		return key, true
	}
	return DefaultSort, false
}

// ParseChangeFilter returns the change filter named by s and whether it is known.
// Unknown filters resolve to ChangeAll.
func ParseChangeFilter(s string) (ChangeFilter, bool) {
	f := ChangeFilter(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ChangeFilters(), f) {
		return f, true
	}
	return ChangeAll, false
}

// Apply filters coins by search term, then by change sign, then sorts the result.
// The input slice is never modified.
func Apply(coins []models.Coin, q Query) []models.Coin {
	out := make([]models.Coin, 0, len(coins))

	term := strings.ToLower(q.Search)
	for _, c := range coins {
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Symbol), term) {
			continue
		}
		if !matchesChange(c, q.Change) {
			continue
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, comparator(q.Sort))
	return out
}

func matchesChange(c models.Coin, f ChangeFilter) bool {
	switch f {
	case ChangePositive:
		return c.PriceChangePercentage24h > 0
	case ChangeNegative:
		return c.PriceChangePercentage24h < 0
	default:
		return true
	}
}

func comparator(key SortKey) func(a, b models.Coin) int {
	switch key {
	case SortMarketCapAsc:
		return func(a, b models.Coin) int { return cmp.Compare(a.MarketCap, b.MarketCap) }
	case SortPriceDesc:
		return func(a, b models.Coin) int { return cmp.Compare(b.CurrentPrice, a.CurrentPrice) }
	case SortPriceAsc:
		return func(a, b models.Coin) int { return cmp.Compare(a.CurrentPrice, b.CurrentPrice) }
	case SortNameAsc:
		col := collate.New(language.English)
		return func(a, b models.Coin) int { return col.CompareString(a.Name, b.Name) }
	case SortNameDesc:
		col := collate.New(language.English)
		return func(a, b models.Coin) int { return col.CompareString(b.Name, a.Name) }
	case SortChangeDesc:
		return func(a, b models.Coin) int {
			return cmp.Compare(b.PriceChangePercentage24h, a.PriceChangePercentage24h)
		}
	case SortChangeAsc:
		return func(a, b models.Coin) int {
			return cmp.Compare(a.PriceChangePercentage24h, b.PriceChangePercentage24h)
		}
	default:
		return func(a, b models.Coin) int { return cmp.Compare(b.MarketCap, a.MarketCap) }
	}
}
