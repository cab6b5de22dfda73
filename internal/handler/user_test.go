package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/handler"
)

func TestUserHandler_Get(t *testing.T) {
	handler.InitValidator()

	t.Run("returns wallet with derived level", func(t *testing.T) {
		mockWallet := new(MockWalletRepository)
		mockWallet.On("GetUser", mock.Anything, "user-1").Return(&domain.User{
			ID:         "user-1",
			Username:   "farmer_joe",
			Coins:      620,
			Experience: 230,
		}, nil)

		h := handler.NewUserHandler(mockWallet, new(MockTransactionLog))
		req := httptest.NewRequest(http.MethodGet, "/users?user_id=user-1", nil)
		w := httptest.NewRecorder()

		h.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 620, resp.Coins)
		assert.Equal(t, 3, resp.Level)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockWallet := new(MockWalletRepository)
		mockWallet.On("GetUser", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

		h := handler.NewUserHandler(mockWallet, new(MockTransactionLog))
		req := httptest.NewRequest(http.MethodGet, "/users?user_id=ghost", nil)
		w := httptest.NewRecorder()

		h.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, strings.ToLower(w.Body.String()), "user not found")
	})
}

func TestUserHandler_Transactions(t *testing.T) {
	handler.InitValidator()

	t.Run("returns trade history", func(t *testing.T) {
		mockTx := new(MockTransactionLog)
		mockTx.On("ListTransactionsByUser", mock.Anything, "user-1", handler.DefaultTransactionLimit).
			Return([]domain.Transaction{
				{ID: "tx-2", TotalEarnings: 300},
				{ID: "tx-1", TotalEarnings: 200},
			}, nil)

		h := handler.NewUserHandler(new(MockWalletRepository), mockTx)
		req := httptest.NewRequest(http.MethodGet, "/transactions?user_id=user-1", nil)
		w := httptest.NewRecorder()

		h.Transactions(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var transactions []domain.Transaction
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
		assert.Len(t, transactions, 2)
		assert.Equal(t, "tx-2", transactions[0].ID)
	})

	t.Run("invalid limit", func(t *testing.T) {
		mockTx := new(MockTransactionLog)
		h := handler.NewUserHandler(new(MockWalletRepository), mockTx)
		req := httptest.NewRequest(http.MethodGet, "/transactions?user_id=user-1&limit=-3", nil)
		w := httptest.NewRecorder()

		h.Transactions(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockTx.AssertNotCalled(t, "ListTransactionsByUser", mock.Anything, mock.Anything, mock.Anything)
	})
}
