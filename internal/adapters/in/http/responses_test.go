package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "pos/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = httpadapter.NewHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/internal", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "pq: password authentication failed")
	})
	e.GET("/plain", func(echo.Context) error {
		return errors.New("boom")
	})
	e.GET("/too-large", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large")
	})

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/internal", http.StatusInternalServerError, "Internal server error"},
		{"/plain", http.StatusInternalServerError, "Internal server error"},
		{"/too-large", http.StatusRequestEntityTooLarge, "Request Entity Too Large"},
		{"/missing", http.StatusNotFound, "Route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			var env struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tt.code, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}
