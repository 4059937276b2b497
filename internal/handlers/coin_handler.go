package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptodash/internal/coinfilter"
	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/market"
	"cryptodash/internal/models"
	"cryptodash/internal/pagination"
	"cryptodash/internal/services"
)

// CoinHandler handles market data requests.
type CoinHandler struct {
	coinService services.CoinServicer
}

// NewCoinHandler creates a new CoinHandler.
func NewCoinHandler(coinService services.CoinServicer) *CoinHandler {
	return &CoinHandler{coinService: coinService}
}

// ListCoinsQuery holds the list filters parsed from the query string.
type ListCoinsQuery struct {
	Search string `form:"search" binding:"max=100"`
	Change string `form:"change" binding:"omitempty,price_change_filter"`
	Sort   string `form:"sort" binding:"omitempty,sort_key"`
}

// HistoryQuery holds the history timeframe parsed from the query string.
type HistoryQuery struct {
	Timeframe string `form:"timeframe" binding:"omitempty,timeframe"`
}

// HistoryResponse is the price series of a coin over a timeframe.
type HistoryResponse struct {
	CoinID    string              `json:"coin_id"`
	Timeframe string              `json:"timeframe"`
	Days      int                 `json:"days"`
	Prices    []models.PricePoint `json:"prices"`
}

// ListCoins handles listing coins by market cap.
// @Summary     List coins
// @Description Get one page of coins by market cap, filtered by name/symbol search and 24h change sign, then sorted
// @Tags        coins
// @Produce     json
// @Param       page     query int    false "Page number (default 1)"
// @Param       per_page query int    false "Items per page (default 20, max 250)"
// @Param       search   query string false "Case-insensitive name or symbol substring"
// @Param       change   query string false "all, positive or negative (default all)"
// @Param       sort     query string false "market_cap_desc, market_cap_asc, price_desc, price_asc, change_desc, change_asc, name_asc or name_desc"
// @Success     200 {object} pagination.PageResponse[models.Coin] "Paginated coins"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /coins [get]
func (h *CoinHandler) ListCoins(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var q ListCoinsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	change, _ := coinfilter.ParseChangeFilter(q.Change)
	sort, _ := coinfilter.ParseSortKey(q.Sort)

	result, err := h.coinService.ListCoins(c.Request.Context(), page, coinfilter.Query{
		Search: q.Search,
		Change: change,
		Sort:   sort,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrending handles listing trending coins.
// @Summary     Trending coins
// @Description Get the first trending coins of the search trending list
// @Tags        coins
// @Produce     json
// @Success     200 {object} map[string][]models.TrendingCoin "Trending coins"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /coins/trending [get]
func (h *CoinHandler) GetTrending(c *gin.Context) {
	trending, err := h.coinService.GetTrending(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coins": trending})
}

// GetCoin handles retrieving a coin's detail.
// @Summary     Get coin
// @Description Get the detail of a coin by its market id
// @Tags        coins
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Coin id, e.g. bitcoin"
// @Success     200 {object} map[string]models.CoinDetail "Coin detail"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Coin not found"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /coins/{id} [get]
func (h *CoinHandler) GetCoin(c *gin.Context) {
	id, err := pathCoinID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.coinService.GetCoin(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coin": detail})
}

// GetHistory handles retrieving a coin's price history.
// @Summary     Coin price history
// @Description Get the price series of a coin over a timeframe
// @Tags        coins
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Coin id, e.g. bitcoin"
// @Param       timeframe query string false "24h, 7d, 30d or 1y (default 7d)"
// @Success     200 {object} HistoryResponse "Price history"
// @Failure     400 {object} ErrorResponse "Invalid timeframe"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Coin not found"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /coins/{id}/history [get]
func (h *CoinHandler) GetHistory(c *gin.Context) {
	id, err := pathCoinID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	timeframe := market.DefaultTimeframe
	if q.Timeframe != "" {
		timeframe = market.Timeframe(q.Timeframe)
	}

	points, err := h.coinService.GetHistory(c.Request.Context(), id, timeframe)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		CoinID:    id,
		Timeframe: string(timeframe),
		Days:      timeframe.Days(),
		Prices:    points,
	})
}
