package handler

import (
	"net/http"
	"strconv"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/repository"
)

// Default and maximum number of transactions returned per request.
const (
	DefaultTransactionLimit = 20
	MaxTransactionLimit     = 100
)

// UserResponse represents a player's wallet view including derived level
type UserResponse struct {
	domain.User
	Level int `json:"level"`
}

// UserHandler handles user wallet and transaction HTTP requests
type UserHandler struct {
	walletRepo repository.Wallet
	txLog      repository.TransactionLog
}

// NewUserHandler creates a new user handler
func NewUserHandler(walletRepo repository.Wallet, txLog repository.TransactionLog) *UserHandler {
	return &UserHandler{
		walletRepo: walletRepo,
		txLog:      txLog,
	}
}

// Get handles the get user endpoint
// @Summary Get a player's wallet
// @Description Returns the player's coins, experience and derived level
// @Tags users
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse "Missing user_id"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	user, err := h.walletRepo.GetUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get user", err)
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{User: *user, Level: user.Level()})
}

// Transactions handles the list transactions endpoint
// @Summary List a player's market transactions
// @Description Returns the player's trade history, newest first
// @Tags users
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Maximum transactions to return (default 20, max 100)"
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} ErrorResponse "Missing user_id or invalid limit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /transactions [get]
func (h *UserHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(DefaultTransactionLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}

	transactions, err := h.txLog.ListTransactionsByUser(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Get transactions", err)
		return
	}

	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	respondJSON(w, http.StatusOK, transactions)
}
