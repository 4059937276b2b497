// Package market is a thin HTTP gateway to the CoinGecko public API.
// It performs no retries and no caching; callers decide how to surface failures.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cryptodash/internal/models"
)

// DefaultBaseURL is the public CoinGecko v3 endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

const demoKeyHeader = "x-cg-demo-api-key"

// ErrNotFound is returned when the upstream API answers 404 for a coin.
var ErrNotFound = errors.New("coin not found upstream")

// StatusError reports an unexpected upstream HTTP status.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// Gateway fetches market data from CoinGecko.
type Gateway struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	apiKey     string
	currency   string
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithBaseURL points the gateway at another CoinGecko-compatible endpoint.
func WithBaseURL(baseURL string) Option {
	return func(g *Gateway) { g.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithAPIKey sends a CoinGecko demo API key with every request.
func WithAPIKey(key string) Option {
	return func(g *Gateway) { g.apiKey = key }
}

// WithCurrency sets the quote currency (vs_currency), "usd" by default.
func WithCurrency(currency string) Option {
	return func(g *Gateway) { g.currency = strings.ToLower(currency) }
}

// NewGateway creates a new CoinGecko gateway.
func NewGateway(httpClient *http.Client, opts ...Option) *Gateway {
	g := &Gateway{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		currency:   "usd",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Currency returns the quote currency used for prices.
func (g *Gateway) Currency() string { return g.currency }

// ListCoins fetches one page of coins ordered by market cap.
func (g *Gateway) ListCoins(ctx context.Context, page, perPage int) ([]models.Coin, error) {
	q := url.Values{}
	q.Set("vs_currency", g.currency)
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	q.Set("sparkline", "false")

	var coins []models.Coin
	if err := g.get(ctx, "/coins/markets", q, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// coinDetailResponse mirrors the subset of /coins/{id} the dashboard uses.
type coinDetailResponse struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank int    `json:"market_cap_rank"`
	Description   struct {
		En string `json:"en"`
	} `json:"description"`
	Links struct {
		Homepage []string `json:"homepage"`
	} `json:"links"`
	Image struct {
		Thumb string `json:"thumb"`
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"image"`
	MarketData struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		MarketCap                map[string]float64 `json:"market_cap"`
		TotalVolume              map[string]float64 `json:"total_volume"`
		High24h                  map[string]float64 `json:"high_24h"`
		Low24h                   map[string]float64 `json:"low_24h"`
		PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

// GetCoin fetches the detail of a single coin.
func (g *Gateway) GetCoin(ctx context.Context, id string) (*models.CoinDetail, error) {
	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")

	var resp coinDetailResponse
	if err := g.get(ctx, "/coins/"+url.PathEscape(id), q, &resp); err != nil {
		return nil, err
	}

	detail := &models.CoinDetail{
		ID:                       resp.ID,
		Symbol:                   resp.Symbol,
		Name:                     resp.Name,
		Description:              resp.Description.En,
		Image:                    resp.Image.Large,
		MarketCapRank:            resp.MarketCapRank,
		Currency:                 g.currency,
		CurrentPrice:             resp.MarketData.CurrentPrice[g.currency],
		MarketCap:                resp.MarketData.MarketCap[g.currency],
		TotalVolume:              resp.MarketData.TotalVolume[g.currency],
		High24h:                  resp.MarketData.High24h[g.currency],
		Low24h:                   resp.MarketData.Low24h[g.currency],
		PriceChangePercentage24h: resp.MarketData.PriceChangePercentage24h,
	}
	for _, link := range resp.Links.Homepage {
		if link != "" {
			detail.Homepage = link
			break
		}
	}
	return detail, nil
}

// GetHistory fetches the price series of a coin over the last days.
// Samples are returned in upstream order.
func (g *Gateway) GetHistory(ctx context.Context, id string, days int) ([]models.PricePoint, error) {
	q := url.Values{}
	q.Set("vs_currency", g.currency)
	q.Set("days", strconv.Itoa(days))

	var resp struct {
		Prices [][2]float64 `json:"prices"`
	}
	if err := g.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", q, &resp); err != nil {
		return nil, err
	}
	return PricePoints(resp.Prices), nil
}

// GetTrending fetches the trending coins in upstream order.
func (g *Gateway) GetTrending(ctx context.Context) ([]models.TrendingCoin, error) {
	var resp struct {
		Coins []struct {
			Item struct {
				ID            string  `json:"id"`
				CoinID        int     `json:"coin_id"`
				Name          string  `json:"name"`
				Symbol        string  `json:"symbol"`
				MarketCapRank int     `json:"market_cap_rank"`
				Thumb         string  `json:"thumb"`
				PriceBTC      float64 `json:"price_btc"`
				Score         int     `json:"score"`
			} `json:"item"`
		} `json:"coins"`
	}
	if err := g.get(ctx, "/search/trending", nil, &resp); err != nil {
		return nil, err
	}

	trending := make([]models.TrendingCoin, len(resp.Coins))
	for i, c := range resp.Coins {
		trending[i] = models.TrendingCoin(c.Item)
	}
	return trending, nil
}

// PricePoints converts [timestampMs, price] pairs into price points.
func PricePoints(pairs [][2]float64) []models.PricePoint {
	points := make([]models.PricePoint, len(pairs))
	for i, p := range pairs {
		points[i] = models.PricePoint{
			Time:  time.UnixMilli(int64(p[0])).UTC(),
			Price: p[1],
		}
	}
	return points
}

// get performs a GET request and decodes the JSON body into out.
func (g *Gateway) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if g.apiKey != "" {
		req.Header.Set(demoKeyHeader, g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request for %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
