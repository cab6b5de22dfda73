package handler

import (
	"net/http"
	"strconv"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/market"
)

// Default and maximum number of history snapshots returned per request.
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// SellProduceRequest represents the request to sell harvested produce
type SellProduceRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	CropType string `json:"crop_type" validate:"required,croptype,max=50"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// TrendResponse represents the price trend for a crop type
type TrendResponse struct {
	CropType string       `json:"crop_type"`
	Trend    domain.Trend `json:"trend"`
}

// MarketHandler handles market-related HTTP requests
type MarketHandler struct {
	marketSvc market.Service
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketSvc market.Service) *MarketHandler {
	return &MarketHandler{
		marketSvc: marketSvc,
	}
}

// Prices handles the market prices endpoint
// @Summary Get current market prices
// @Description Returns the current price for every crop type
// @Tags market
// @Produce json
// @Success 200 {array} domain.MarketPrice
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /market [get]
func (h *MarketHandler) Prices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.marketSvc.GetPrices(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get prices", err)
		return
	}

	if prices == nil {
		prices = []domain.MarketPrice{}
	}
	respondJSON(w, http.StatusOK, prices)
}

// Trend handles the market trend endpoint
// @Summary Get a crop's price trend
// @Description Classifies recent price movement as increasing, decreasing or stable
// @Tags market
// @Produce json
// @Param crop_type query string true "Crop type"
// @Success 200 {object} TrendResponse
// @Failure 400 {object} ErrorResponse "Missing or unknown crop type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /market/trend [get]
func (h *MarketHandler) Trend(w http.ResponseWriter, r *http.Request) {
	cropType, ok := GetQueryParam(r, w, "crop_type")
	if !ok {
		return
	}

	trend, err := h.marketSvc.GetTrend(r.Context(), cropType)
	if err != nil {
		respondServiceError(w, r, "Get trend", err)
		return
	}

	respondJSON(w, http.StatusOK, TrendResponse{CropType: cropType, Trend: trend})
}

// History handles the market history endpoint
// @Summary Get market price history
// @Description Returns recent price snapshots, newest first
// @Tags market
// @Produce json
// @Param limit query int false "Maximum snapshots to return (default 10, max 100)"
// @Success 200 {array} domain.MarketSnapshot
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /market/history [get]
func (h *MarketHandler) History(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(DefaultHistoryLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		log.Warn("Invalid limit parameter", "limit", limitStr)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	history, err := h.marketSvc.History(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Get history", err)
		return
	}

	if history == nil {
		history = []domain.MarketSnapshot{}
	}
	respondJSON(w, http.StatusOK, history)
}

// Sell handles the sell produce endpoint
// @Summary Sell harvested produce
// @Description Credits the seller at the current market price and records the trade
// @Tags market
// @Accept json
// @Produce json
// @Param request body SellProduceRequest true "Sell request"
// @Success 200 {object} domain.Transaction "Sale recorded"
// @Failure 400 {object} ErrorResponse "Invalid request or unknown crop type"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /market/sell [post]
func (h *MarketHandler) Sell(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SellProduceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell produce"); err != nil {
		return
	}

	transaction, err := h.marketSvc.Sell(r.Context(), req.UserID, req.CropType, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Sell produce", err)
		return
	}

	log.Info("Produce sold",
		"user_id", req.UserID,
		"crop_type", req.CropType,
		"quantity", req.Quantity,
		"earnings", transaction.TotalEarnings)

	respondJSON(w, http.StatusOK, transaction)
}
