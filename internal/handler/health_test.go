package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farmverse/farmverse/internal/handler"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.HandleHealthz()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.HealthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("storage reachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		handler.HandleReadyz(stubHealthChecker{})(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("storage unreachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		handler.HandleReadyz(stubHealthChecker{err: errors.New("dial timeout")})(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp handler.HealthResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unavailable", resp.Status)
	})
}
