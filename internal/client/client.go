// Package client talks to the POS server on behalf of staff tools. It holds
// the REST client, the local cart and the socket watcher used by cmd/pos.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pos/internal/generated/servers"
)

// ErrUnreachable wraps every transport failure. Callers print a single
// notice for it instead of the low level cause.
var ErrUnreachable = errors.New("cannot reach server")

// APIError is a response with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return e.Message
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client is a REST client of the order API. It wraps the generated client
// and unwraps the response envelopes.
type Client struct {
	baseURL *url.URL
	api     servers.ClientWithResponsesInterface
}

// New returns a client for the server at baseURL, for example
// "http://localhost:3001".
func New(baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q must use http or https", baseURL)
	}

	api, err := servers.NewClientWithResponses(u.String(),
		servers.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
		servers.WithRequestEditorFn(acceptJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	return &Client{baseURL: u, api: api}, nil
}

// BaseURL returns the server url without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Products(ctx context.Context) ([]servers.Product, error) {
	rsp, err := c.api.GetProductsWithResponse(ctx)
	if err != nil {
		return nil, transportError(err)
	}
	if rsp.JSON200 == nil || !rsp.JSON200.Success {
		return nil, apiError(rsp.StatusCode(), rsp.Body)
	}
	return rsp.JSON200.Data, nil
}

// Orders lists orders. An empty status lists every order.
func (c *Client) Orders(ctx context.Context, status string) ([]servers.Order, error) {
	params := &servers.GetOrdersParams{}
	if status != "" {
		params.Status = &status
	}

	rsp, err := c.api.GetOrdersWithResponse(ctx, params)
	if err != nil {
		return nil, transportError(err)
	}
	if rsp.JSON200 == nil || !rsp.JSON200.Success {
		return nil, apiError(rsp.StatusCode(), rsp.Body)
	}
	return rsp.JSON200.Data, nil
}

func (c *Client) Order(ctx context.Context, id int) (servers.Order, error) {
	rsp, err := c.api.GetOrderWithResponse(ctx, id)
	if err != nil {
		return servers.Order{}, transportError(err)
	}
	return orderData(rsp.StatusCode(), rsp.Body, rsp.JSON200)
}

func (c *Client) CreateOrder(ctx context.Context, body servers.NewOrder) (servers.CreatedOrder, error) {
	rsp, err := c.api.CreateOrderWithResponse(ctx, body)
	if err != nil {
		return servers.CreatedOrder{}, transportError(err)
	}
	if rsp.JSON201 == nil || !rsp.JSON201.Success {
		return servers.CreatedOrder{}, apiError(rsp.StatusCode(), rsp.Body)
	}
	return rsp.JSON201.Data, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id int, status string) (servers.Order, error) {
	rsp, err := c.api.UpdateOrderStatusWithResponse(ctx, id, servers.StatusUpdate{Status: &status})
	if err != nil {
		return servers.Order{}, transportError(err)
	}
	return orderData(rsp.StatusCode(), rsp.Body, rsp.JSON200)
}

// DeleteOrder removes an order and returns it as it was.
func (c *Client) DeleteOrder(ctx context.Context, id int) (servers.Order, error) {
	rsp, err := c.api.DeleteOrderWithResponse(ctx, id)
	if err != nil {
		return servers.Order{}, transportError(err)
	}
	return orderData(rsp.StatusCode(), rsp.Body, rsp.JSON200)
}

func orderData(code int, body []byte, ok *servers.OrderResponse) (servers.Order, error) {
	if ok == nil || !ok.Success {
		return servers.Order{}, apiError(code, body)
	}
	return ok.Data, nil
}

func acceptJSON(_ context.Context, req *http.Request) error {
	req.Header.Set("Accept", "application/json")
	return nil
}

// transportError keeps decode failures apart from a server that could not
// be reached.
func transportError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("decode response: %w", err)
	}
	return fmt.Errorf("%w: %w", ErrUnreachable, err)
}

// apiError reads the message of an error envelope. The raw body is used
// because not every status has a declared response.
func apiError(code int, body []byte) error {
	var env servers.ErrorResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return &APIError{StatusCode: code, Message: "unexpected response from server"}
	}
	return &APIError{StatusCode: code, Message: env.Message}
}
