package client_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos/cmd"
	"pos/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, mutate func(*cmd.Config)) *httptest.Server {
	t.Helper()
	srv, _ := newRootServer(t, mutate)
	return srv
}

func newRootServer(t *testing.T, mutate func(*cmd.Config)) (*httptest.Server, cmd.CompositionRoot) {
	t.Helper()
	cfg := cmd.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	root, err := cmd.NewCompositionRoot(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	srv := httptest.NewServer(root.CreateRouter("127.0.0.1", nil))
	t.Cleanup(func() {
		if hub := root.Hub(); hub != nil {
			hub.CloseAll()
		}
		srv.Close()
	})
	return srv, root
}

func newClient(t *testing.T, srv *httptest.Server) *client.Client {
	t.Helper()
	c, err := client.New(srv.URL + "/")
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("trailing slash is dropped", func(t *testing.T) {
		c, err := client.New("http://localhost:3001/")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3001", c.BaseURL())
	})

	t.Run("scheme must be http", func(t *testing.T) {
		_, err := client.New("ftp://localhost")
		require.Error(t, err)
	})
}

func TestClient_CheckoutRoundTrip(t *testing.T) {
	srv := newServer(t, nil)
	c := newClient(t, srv)
	ctx := t.Context()

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 10)

	cart := client.NewCart()
	require.NoError(t, cart.Add(products[0], 1))
	require.NoError(t, cart.Add(products[0], 1))

	body, err := cart.Checkout("Ana", 4, "")
	require.NoError(t, err)

	created, err := c.CreateOrder(ctx, body)
	require.NoError(t, err)
	assert.Equal(t, 1, created.OrderId)
	assert.EqualValues(t, "pending", created.Status)

	got, err := c.Order(ctx, created.OrderId)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Coca Cola", got.Items[0].Name)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.InDelta(t, 38.0, got.Total, 1e-9)
	assert.Nil(t, got.UpdatedAt)
}

func TestClient_StatusAndDelete(t *testing.T) {
	srv := newServer(t, nil)
	c := newClient(t, srv)
	ctx := t.Context()

	products, err := c.Products(ctx)
	require.NoError(t, err)
	cart := client.NewCart()
	require.NoError(t, cart.Add(products[4], 3))
	body, err := cart.Checkout("Luis", 2, "sin cebolla")
	require.NoError(t, err)
	created, err := c.CreateOrder(ctx, body)
	require.NoError(t, err)

	updated, err := c.UpdateStatus(ctx, created.OrderId, "ready")
	require.NoError(t, err)
	assert.EqualValues(t, "ready", updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	ready, err := c.Orders(ctx, "ready")
	require.NoError(t, err)
	assert.Len(t, ready, 1)
	pending, err := c.Orders(ctx, "pending")
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = c.UpdateStatus(ctx, created.OrderId, "cooking")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	deleted, err := c.DeleteOrder(ctx, created.OrderId)
	require.NoError(t, err)
	assert.Equal(t, "sin cebolla", deleted.Notes)

	_, err = c.Order(ctx, created.OrderId)
	assert.True(t, client.IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := client.New(url)
	require.NoError(t, err)

	_, err = c.Products(t.Context())
	require.ErrorIs(t, err, client.ErrUnreachable)
}

func TestClient_ErrorResponses(t *testing.T) {
	respond := func(code int, contentType, body string) *client.Client {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Header().Set("Content-Type", contentType)
			w.WriteHeader(code)
			_, _ = io.WriteString(w, body)
		}))
		t.Cleanup(srv.Close)
		c, err := client.New(srv.URL)
		require.NoError(t, err)
		return c
	}

	t.Run("undeclared status keeps the server message", func(t *testing.T) {
		c := respond(http.StatusInternalServerError, "application/json", `{"success":false,"message":"Failed to fetch order"}`)
		_, err := c.Order(t.Context(), 3)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Failed to fetch order", apiErr.Message)
	})

	t.Run("success false on a 200", func(t *testing.T) {
		c := respond(http.StatusOK, "application/json", `{"success":false,"message":"busy"}`)
		_, err := c.Products(t.Context())
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "busy", apiErr.Message)
	})

	t.Run("non json body", func(t *testing.T) {
		c := respond(http.StatusBadGateway, "text/html", `<h1>Bad Gateway</h1>`)
		_, err := c.Orders(t.Context(), "pending")
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "unexpected response from server", apiErr.Message)
		assert.NotErrorIs(t, err, client.ErrUnreachable)
	})

	t.Run("malformed json is not a transport failure", func(t *testing.T) {
		c := respond(http.StatusOK, "application/json", `{"success":`)
		_, err := c.Products(t.Context())
		require.Error(t, err)
		assert.NotErrorIs(t, err, client.ErrUnreachable)
		assert.Contains(t, err.Error(), "decode response")
	})
}

func TestClient_OrdersQuery(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"count":0,"data":[]}`)
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL + "/")
	require.NoError(t, err)

	_, err = c.Orders(t.Context(), "")
	require.NoError(t, err)
	_, err = c.Orders(t.Context(), "ready")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "status=ready"}, queries)
}
