package handler

import (
	"net/http"
	"time"

	"github.com/farmverse/farmverse/internal/farm"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/market"
	"github.com/farmverse/farmverse/internal/reward"
)

// AdminHandler exposes manual triggers for the background simulation jobs.
// The scheduler runs the same operations on an interval; these endpoints
// exist for operators and integration environments.
type AdminHandler struct {
	farmSvc   farm.Service
	marketSvc market.Service
	rewardSvc reward.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(farmSvc farm.Service, marketSvc market.Service, rewardSvc reward.Service) *AdminHandler {
	return &AdminHandler{
		farmSvc:   farmSvc,
		marketSvc: marketSvc,
		rewardSvc: rewardSvc,
	}
}

// Reconcile handles the manual growth reconciliation endpoint
// @Summary Run a growth reconciliation pass
// @Description Re-evaluates every growing crop against the clock and persists stage advances
// @Tags admin
// @Produce json
// @Success 200 {object} farm.ReconcileSummary
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/reconcile [post]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	summary, err := h.farmSvc.ReconcileAll(r.Context(), time.Now())
	if err != nil {
		respondServiceError(w, r, "Manual reconcile", err)
		return
	}

	log.Info("Manual reconcile pass completed",
		"evaluated", summary.Evaluated,
		"stage_changes", summary.StageChanges,
		"became_ready", summary.BecameReady)

	respondJSON(w, http.StatusOK, summary)
}

// MarketTick handles the manual market tick endpoint
// @Summary Run a market simulator tick
// @Description Resamples every crop's price and appends a history snapshot
// @Tags admin
// @Produce json
// @Success 200 {array} domain.MarketPrice
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/market/tick [post]
func (h *AdminHandler) MarketTick(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	prices, err := h.marketSvc.Tick(r.Context(), time.Now())
	if err != nil {
		respondServiceError(w, r, "Manual market tick", err)
		return
	}

	log.Info("Manual market tick completed", "crop_types", len(prices))

	respondJSON(w, http.StatusOK, prices)
}

// DailyRewards handles the manual daily reward grant endpoint
// @Summary Grant daily login rewards
// @Description Credits every player's daily reward and notifies them
// @Tags admin
// @Produce json
// @Success 200 {object} reward.Summary
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/rewards/daily [post]
func (h *AdminHandler) DailyRewards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	summary, err := h.rewardSvc.GrantDailyRewards(r.Context(), time.Now())
	if err != nil {
		respondServiceError(w, r, "Manual daily rewards", err)
		return
	}

	log.Info("Manual daily reward grant completed",
		"granted", summary.Granted,
		"failed", summary.Failed)

	respondJSON(w, http.StatusOK, summary)
}
