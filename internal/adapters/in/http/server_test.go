package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/memory"
	"pos/internal/adapters/out/memory/productrepo"
	"pos/internal/adapters/out/realtime"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct {
	factory *memory.MemoryUnitOfWorkFactory
}

func (f uowFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type testApp struct {
	router *echo.Echo
	store  *memory.Store
	hub    *realtime.Hub
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, policy order.TransitionPolicy, withSocket bool) testApp {
	t.Helper()
	logger := discardLogger()

	menu, err := catalog.DefaultMenu()
	require.NoError(t, err)
	products := productrepo.NewMemoryProductRepository(menu)

	var hub *realtime.Hub
	var publisher ports.OrderEventPublisher
	if withSocket {
		hub = realtime.NewHub(16, time.Minute, logger)
		publisher = hub
	}
	store := memory.NewStore(publisher)
	factory := uowFactory{factory: memory.NewUnitOfWorkFactory(store)}

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewUpdateOrderStatusCommandHandler(factory, policy),
		commands.NewDeleteOrderCommandHandler(factory),
		queries.NewGetAllProductsQueryHandler(products),
		queries.NewGetOrdersQueryHandler(store.Orders()),
		queries.NewGetOrderQueryHandler(store.Orders()),
		httpadapter.NewApiInfo("192.168.1.20", "3001", withSocket),
		logger,
	)

	opts := httpadapter.RouterOptions{}
	if withSocket {
		opts.Socket = httpadapter.NewSocketHandler(hub, store, queries.NewGetAllProductsQueryHandler(products), logger)
	}

	return testApp{
		router: httpadapter.NewRouter(server, opts, logger),
		store:  store,
		hub:    hub,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func (a testApp) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

const cokeOrder = `{"customerName":"Ana","tableNumber":4,"items":[{"productId":1,"name":"Coca Cola","price":19,"quantity":2}],"total":38}`

type wireOrder struct {
	OrderID      int    `json:"orderId"`
	CustomerName string `json:"customerName"`
	TableNumber  int    `json:"tableNumber"`
	Items        []struct {
		ProductID int     `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	} `json:"items"`
	Total     float64    `json:"total"`
	Notes     string     `json:"notes"`
	Status    string     `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func TestProducts(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)

	code, env := app.do(t, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 10, *env.Count)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 10)
	assert.Equal(t, "Coca Cola", products[0]["name"])
	assert.Equal(t, "Bebidas", products[0]["category"])
}

func TestCreateAndGetOrder_RoundTrip(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)

	code, env := app.do(t, http.MethodPost, "/api/orders", cokeOrder)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, "Order created successfully", env.Message)

	var created struct {
		OrderID   int       `json:"orderId"`
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 1, created.OrderID)
	assert.Equal(t, "pending", created.Status)

	code, env = app.do(t, http.MethodGet, "/api/orders/1", "")
	require.Equal(t, http.StatusOK, code)

	var got wireOrder
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, 4, got.TableNumber)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Coca Cola", got.Items[0].Name)
	assert.InDelta(t, 19.0, got.Items[0].Price, 0)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.InDelta(t, 38.0, got.Total, 0)
	assert.Empty(t, got.Notes)
	assert.Equal(t, "pending", got.Status)
	assert.Nil(t, got.UpdatedAt)
	assert.True(t, created.Timestamp.Equal(got.Timestamp))
}

func TestCreateOrder_Validation(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"customerName":`, "Invalid request body"},
		{"missing table", `{"customerName":"Ana","items":[{"productId":1,"name":"Coca Cola","price":19,"quantity":1}],"total":19}`, "tableNumber is required"},
		{"empty items", `{"customerName":"Ana","tableNumber":4,"items":[],"total":0}`, "items must have at least 1"},
		{"missing total", `{"customerName":"Ana","tableNumber":4,"items":[{"productId":1,"name":"Coca Cola","price":19,"quantity":1}]}`, "total is required"},
		{"negative total", `{"customerName":"Ana","tableNumber":4,"items":[{"productId":1,"name":"Coca Cola","price":19,"quantity":1}],"total":-5}`, "total must be at least 0"},
		{"zero quantity", `{"customerName":"Ana","tableNumber":4,"items":[{"productId":1,"name":"Coca Cola","price":19,"quantity":0}],"total":0}`, "items[0].quantity must be greater than 0"},
		{"item without name", `{"customerName":"Ana","tableNumber":4,"items":[{"productId":1,"price":19,"quantity":1}],"total":19}`, "items[0].name is required"},
		{"empty customer name", `{"customerName":"","tableNumber":4,"items":[{"productId":1,"name":"Coca Cola","price":19,"quantity":1}],"total":19}`, "customerName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := app.do(t, http.MethodPost, "/api/orders", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.Success)
			assert.Contains(t, env.Message, tt.message)
		})
	}

	assert.Equal(t, 0, app.store.Count(), "rejected orders are not stored")
}

func TestCreateOrder_DomainRulesReadLikeValidation(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)

	code, env := app.do(t, http.MethodPost, "/api/orders",
		`{"customerName":"","tableNumber":4,"items":[{"productId":1,"name":"","price":19,"quantity":1}],"total":19}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "customerName is required; items[0].name is required", env.Message)
	assert.Equal(t, 0, app.store.Count())
}

func TestCreateOrder_ZeroTotalAndPriceAreAccepted(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)

	code, _ := app.do(t, http.MethodPost, "/api/orders",
		`{"customerName":"Ana","tableNumber":1,"items":[{"productId":2,"name":"Agua Mineral","price":0,"quantity":1}],"total":0,"notes":"free"}`)
	assert.Equal(t, http.StatusCreated, code)
}

func TestListOrders_StatusFilter(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)
	for range 3 {
		code, _ := app.do(t, http.MethodPost, "/api/orders", cokeOrder)
		require.Equal(t, http.StatusCreated, code)
	}
	code, _ := app.do(t, http.MethodPut, "/api/orders/2", `{"status":"ready"}`)
	require.Equal(t, http.StatusOK, code)

	ids := func(env envelope) []int {
		var orders []wireOrder
		require.NoError(t, json.Unmarshal(env.Data, &orders))
		out := make([]int, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.OrderID)
		}
		return out
	}

	_, env := app.do(t, http.MethodGet, "/api/orders", "")
	assert.Equal(t, []int{1, 2, 3}, ids(env))
	assert.Equal(t, 3, *env.Count)

	_, env = app.do(t, http.MethodGet, "/api/orders?status=pending", "")
	assert.Equal(t, []int{1, 3}, ids(env))
	assert.Equal(t, 2, *env.Count)

	_, env = app.do(t, http.MethodGet, "/api/orders?status=ready", "")
	assert.Equal(t, []int{2}, ids(env))

	code, env = app.do(t, http.MethodGet, "/api/orders?status=cooking", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{}, ids(env))
	assert.Equal(t, 0, *env.Count)
}

func TestUpdateOrderStatus(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)
	code, _ := app.do(t, http.MethodPost, "/api/orders", cokeOrder)
	require.Equal(t, http.StatusCreated, code)

	t.Run("updates status and stamps updatedAt", func(t *testing.T) {
		code, env := app.do(t, http.MethodPut, "/api/orders/1", `{"status":"preparing"}`)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Order updated successfully", env.Message)

		var got wireOrder
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "preparing", got.Status)
		require.NotNil(t, got.UpdatedAt)
		assert.False(t, got.UpdatedAt.Before(got.Timestamp))
	})

	t.Run("invalid status leaves the order unchanged", func(t *testing.T) {
		code, env := app.do(t, http.MethodPut, "/api/orders/1", `{"status":"cooking"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.True(t, strings.HasPrefix(env.Message, "status is invalid: "), env.Message)

		_, env = app.do(t, http.MethodGet, "/api/orders/1", "")
		var got wireOrder
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "preparing", got.Status)
	})

	t.Run("missing status", func(t *testing.T) {
		code, env := app.do(t, http.MethodPut, "/api/orders/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "status is required", env.Message)
	})

	t.Run("unknown order", func(t *testing.T) {
		code, env := app.do(t, http.MethodPut, "/api/orders/99", `{"status":"ready"}`)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Order #99 not found", env.Message)
	})
}

func TestUpdateOrderStatus_ForwardOnly(t *testing.T) {
	app := newTestApp(t, order.ForwardOnly, false)
	code, _ := app.do(t, http.MethodPost, "/api/orders", cokeOrder)
	require.Equal(t, http.StatusCreated, code)

	code, _ = app.do(t, http.MethodPut, "/api/orders/1", `{"status":"delivered"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = app.do(t, http.MethodPut, "/api/orders/1", `{"status":"preparing"}`)
	assert.Equal(t, http.StatusOK, code)
}

func TestDeleteOrder(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)
	for range 3 {
		code, _ := app.do(t, http.MethodPost, "/api/orders", cokeOrder)
		require.Equal(t, http.StatusCreated, code)
	}

	code, env := app.do(t, http.MethodDelete, "/api/orders/2", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Order #2 deleted successfully", env.Message)

	code, env = app.do(t, http.MethodDelete, "/api/orders/2", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Order #2 not found", env.Message)
	assert.Equal(t, 2, app.store.Count())

	code, env = app.do(t, http.MethodPost, "/api/orders", cokeOrder)
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		OrderID int `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 4, created.OrderID)
}

func TestRoutingErrors(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)

	t.Run("non-numeric id", func(t *testing.T) {
		code, env := app.do(t, http.MethodGet, "/api/orders/abc", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid order id", env.Message)
		assert.NotContains(t, env.Message, "strconv")
	})

	t.Run("id out of range", func(t *testing.T) {
		code, env := app.do(t, http.MethodDelete, "/api/orders/99999999999999999999", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid order id", env.Message)
	})

	t.Run("unknown order", func(t *testing.T) {
		code, env := app.do(t, http.MethodGet, "/api/orders/7", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Order #7 not found", env.Message)
	})

	t.Run("unknown route", func(t *testing.T) {
		code, env := app.do(t, http.MethodGet, "/api/tables", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Route not found", env.Message)
	})

	t.Run("wrong method", func(t *testing.T) {
		code, env := app.do(t, http.MethodPatch, "/api/orders/1", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.False(t, env.Success)
	})
}

func TestApiInfoAndHealth(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var info struct {
		Version string `json:"version"`
		LocalIP string `json:"localIP"`
		Urls    struct {
			Local   string `json:"local"`
			Network string `json:"network"`
		} `json:"urls"`
		Websockets struct {
			Path   string   `json:"path"`
			Events []string `json:"events"`
		} `json:"websockets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, httpadapter.Version, info.Version)
	assert.Equal(t, "http://localhost:3001", info.Urls.Local)
	assert.Equal(t, "http://192.168.1.20:3001", info.Urls.Network)
	assert.Equal(t, "/ws", info.Websockets.Path)
	assert.ElementsMatch(t, []string{"newOrder", "orderUpdated", "orderDeleted", "orders", "products"}, info.Websockets.Events)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRequestIDAndCORSHeaders(t *testing.T) {
	app := newTestApp(t, order.AnyRecognizedStatus, false)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(echo.HeaderOrigin, "http://tablet.local")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
