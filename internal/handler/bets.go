package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BetHandler computes what a bet would pay out. Nothing is executed or
// stored; there is no wallet and no order book behind this.
type BetHandler struct{}

func (h *BetHandler) Register(r *gin.Engine) {
	r.POST("/api/bets/simulate", h.simulate)
}

type simulateBetRequest struct {
	MarketID string  `json:"marketId" binding:"required"`
	Outcome  string  `json:"outcome" binding:"required,oneof=yes no"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gte=0,lte=1"`
}

type simulateBetResponse struct {
	MarketID string `json:"marketId"`
	Outcome  string `json:"outcome"`
	Amount   string `json:"amount"`
	Shares   string `json:"shares"`
	Payout   string `json:"payout"`
	Profit   string `json:"profit"`
	ROI      string `json:"roi"`
}

// minSimPrice floors the share price so a near-zero price cannot produce an
// unbounded payout.
var minSimPrice = decimal.NewFromFloat(0.001)

// @Summary Simulate a bet
// @Description Computes shares, payout, profit, and ROI for a hypothetical stake. No order is placed.
// @Tags bets
// @Accept json
// @Produce json
// @Param request body simulateBetRequest true "bet parameters"
// @Success 200 {object} simulateBetResponse
// @Failure 400 {object} map[string]string
// @Router /api/bets/simulate [post]
func (h *BetHandler) simulate(c *gin.Context) {
	var req simulateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bet request"})
		return
	}

	amount := decimal.NewFromFloat(req.Amount)
	price := decimal.NewFromFloat(req.Price)
	if price.LessThan(minSimPrice) {
		price = minSimPrice
	}

	// Each share pays $1 if the chosen outcome resolves true.
	shares := amount.DivRound(price, 4)
	payout := shares
	profit := payout.Sub(amount)
	roi := profit.DivRound(amount, 4).Mul(decimal.NewFromInt(100))

	c.JSON(http.StatusOK, simulateBetResponse{
		MarketID: req.MarketID,
		Outcome:  req.Outcome,
		Amount:   amount.StringFixed(2),
		Shares:   shares.StringFixed(2),
		Payout:   payout.StringFixed(2),
		Profit:   profit.StringFixed(2),
		ROI:      roi.StringFixed(1),
	})
}
