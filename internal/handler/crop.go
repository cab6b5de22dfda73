package handler

import (
	"net/http"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/farm"
	"github.com/farmverse/farmverse/internal/logger"
)

// PlantCropRequest represents the request to plant a crop
type PlantCropRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	CropType string `json:"crop_type" validate:"required,croptype,max=50"`
	X        int    `json:"x" validate:"gte=0"`
	Y        int    `json:"y" validate:"gte=0"`
}

// HarvestCropRequest represents the request to harvest a crop
type HarvestCropRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	CropID string `json:"crop_id" validate:"required,uuid"`
}

// CropHandler handles crop-related HTTP requests
type CropHandler struct {
	farmSvc farm.Service
}

// NewCropHandler creates a new crop handler
func NewCropHandler(farmSvc farm.Service) *CropHandler {
	return &CropHandler{
		farmSvc: farmSvc,
	}
}

// Plant handles the plant crop endpoint
// @Summary Plant a crop
// @Description Debit the seed cost and plant a crop at a free plot position
// @Tags crops
// @Accept json
// @Produce json
// @Param request body PlantCropRequest true "Plant request"
// @Success 201 {object} domain.Crop "Crop planted"
// @Failure 400 {object} ErrorResponse "Invalid request, unknown crop type or not enough coins"
// @Failure 409 {object} ErrorResponse "Position already occupied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /crops [post]
func (h *CropHandler) Plant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantCropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant crop"); err != nil {
		return
	}

	log.Info("Plant request received", "user_id", req.UserID, "crop_type", req.CropType)

	crop, err := h.farmSvc.Plant(r.Context(), req.UserID, req.CropType, domain.Position{X: req.X, Y: req.Y})
	if err != nil {
		respondServiceError(w, r, "Plant crop", err)
		return
	}

	log.Info("Crop planted", "user_id", req.UserID, "crop_id", crop.ID, "crop_type", crop.CropType)

	respondJSON(w, http.StatusCreated, crop)
}

// List handles the list crops endpoint
// @Summary List a player's crops
// @Description Returns every crop belonging to the given user
// @Tags crops
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} domain.Crop
// @Failure 400 {object} ErrorResponse "Missing user_id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /crops [get]
func (h *CropHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	crops, err := h.farmSvc.ListCrops(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get crops", err)
		return
	}

	if crops == nil {
		crops = []domain.Crop{}
	}
	respondJSON(w, http.StatusOK, crops)
}

// Harvest handles the harvest crop endpoint
// @Summary Harvest a crop
// @Description Pay out the current market price, award experience and remove the crop
// @Tags crops
// @Accept json
// @Produce json
// @Param request body HarvestCropRequest true "Harvest request"
// @Success 200 {object} domain.HarvestResult "Harvest successful"
// @Failure 400 {object} ErrorResponse "Invalid request or crop not ready"
// @Failure 401 {object} ErrorResponse "Crop belongs to another user"
// @Failure 404 {object} ErrorResponse "Crop not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /crops/harvest [post]
func (h *CropHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req HarvestCropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest crop"); err != nil {
		return
	}

	result, err := h.farmSvc.Harvest(r.Context(), req.UserID, req.CropID)
	if err != nil {
		respondServiceError(w, r, "Harvest crop", err)
		return
	}

	log.Info("Crop harvested",
		"user_id", req.UserID,
		"crop_id", result.CropID,
		"payout", result.Payout)

	respondJSON(w, http.StatusOK, result)
}
