package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/forms"
	"cryptodash/internal/services"
)

// PortfolioHandler handles portfolio-related requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// SubmitItemResponse is the result of an accepted add-item submission.
type SubmitItemResponse struct {
	Status          string          `json:"status"`
	Persisted       bool            `json:"persisted"`
	RedirectTo      string          `json:"redirect_to"`
	RedirectAfterMs int64           `json:"redirect_after_ms"`
	Item            forms.ItemInput `json:"item"`
	TotalValue      string          `json:"total_value"`
}

// GetItems handles listing the portfolio holdings.
// @Summary     Portfolio holdings
// @Description Get every holding with its total value, invested amount and profit/loss
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} map[string][]portfolio.EnrichedItem "Holdings"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.portfolioService.GetItems(c.Request.Context())})
}

// GetSummary handles the portfolio totals.
// @Summary     Portfolio summary
// @Description Get total value, total invested and total profit/loss of the portfolio
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} map[string]portfolio.Summary "Summary"
// @Router      /portfolio/summary [get]
func (h *PortfolioHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.portfolioService.GetSummary(c.Request.Context())})
}

// GetAllocation handles the portfolio allocation.
// @Summary     Portfolio allocation
// @Description Get each holding's share of the total portfolio value
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} map[string][]portfolio.AllocationSlice "Allocation"
// @Router      /portfolio/allocation [get]
func (h *PortfolioHandler) GetAllocation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"allocation": h.portfolioService.GetAllocation(c.Request.Context())})
}

// ValidateItem handles live validation of the add-item form.
// @Summary     Validate portfolio item
// @Description Check the add-item form fields and compute the derived total value without submitting
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       request body forms.ItemInput true "Form values as entered"
// @Success     200 {object} services.ItemValidation "Validation state"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Router      /portfolio/items/validate [post]
func (h *PortfolioHandler) ValidateItem(c *gin.Context) {
	var input forms.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.portfolioService.ValidateItem(input))
}

// SubmitItem handles the simulated add-item submission.
// @Summary     Submit portfolio item
// @Description Validate and submit the add-item form. The item is not persisted; the response tells the client where to redirect.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       request body forms.ItemInput true "Form values as entered"
// @Success     202 {object} SubmitItemResponse "Accepted, not persisted"
// @Failure     400 {object} ValidationErrorResponse "Invalid fields"
// @Router      /portfolio/items [post]
func (h *PortfolioHandler) SubmitItem(c *gin.Context) {
	var input forms.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sub, err := h.portfolioService.SubmitItem(c.Request.Context(), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, SubmitItemResponse{
		Status:          "success",
		Persisted:       false,
		RedirectTo:      sub.RedirectTo,
		RedirectAfterMs: sub.RedirectAfter.Milliseconds(),
		Item:            sub.Item,
		TotalValue:      sub.TotalValue,
	})
}
