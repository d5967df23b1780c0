package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pos/cmd"
	"pos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, mutate func(*cmd.Config)) cmd.CompositionRoot {
	t.Helper()
	cfg := cmd.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	root, err := cmd.NewCompositionRoot(cfg, discardLogger())
	require.NoError(t, err)
	return root
}

func TestCompositionRoot_Policy(t *testing.T) {
	t.Run("lenient by default", func(t *testing.T) {
		root := newRoot(t, nil)
		assert.Equal(t, order.AnyRecognizedStatus, root.Policy())
	})

	t.Run("strict when configured", func(t *testing.T) {
		root := newRoot(t, func(c *cmd.Config) { c.StrictStatusTransitions = true })
		assert.Equal(t, order.ForwardOnly, root.Policy())
	})
}

func TestCompositionRoot_Realtime(t *testing.T) {
	t.Run("enabled exposes the socket route", func(t *testing.T) {
		root := newRoot(t, nil)
		require.NotNil(t, root.Hub())

		rec := serve(root, http.MethodGet, "/ws", "")
		// A plain GET is not an upgrade request.
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("disabled has no hub and no socket route", func(t *testing.T) {
		root := newRoot(t, func(c *cmd.Config) { c.RealtimeEnabled = false })
		assert.Nil(t, root.Hub())

		rec := serve(root, http.MethodGet, "/ws", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("mutations work without a hub", func(t *testing.T) {
		root := newRoot(t, func(c *cmd.Config) { c.RealtimeEnabled = false })

		rec := serve(root, http.MethodPost, "/api/orders",
			`{"customerName":"Ana","tableNumber":4,"items":[{"productId":1,"name":"Coca Cola","price":19,"quantity":2}],"total":38}`)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})
}

func TestCompositionRoot_JobManager(t *testing.T) {
	for _, realtime := range []bool{true, false} {
		root := newRoot(t, func(c *cmd.Config) { c.RealtimeEnabled = realtime })
		jm := root.CreateJobManager()
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	}
}

func serve(root cmd.CompositionRoot, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	root.CreateRouter("127.0.0.1", nil).ServeHTTP(rec, req)
	return rec
}
