package http

import (
	"fmt"

	"pos/internal/generated/servers"
	"pos/internal/pkg/wire"
)

// Version is reported by GET /.
const Version = "2.0.0"

// NewApiInfo describes the API as reachable on port from this machine and
// from the local network address localIP.
func NewApiInfo(localIP string, port string, realtimeEnabled bool) servers.ApiInfo {
	info := servers.ApiInfo{
		Message: "Restaurant POS REST API",
		Version: Version,
		LocalIP: localIP,
		Urls: servers.ApiInfoUrls{
			Local:   fmt.Sprintf("http://localhost:%s", port),
			Network: fmt.Sprintf("http://%s:%s", localIP, port),
		},
		Endpoints: map[string]string{
			"products":    "GET /api/products",
			"createOrder": "POST /api/orders",
			"listOrders":  "GET /api/orders",
			"getOrder":    "GET /api/orders/:id",
			"updateOrder": "PUT /api/orders/:id",
			"deleteOrder": "DELETE /api/orders/:id",
			"openapi":     "GET /api/openapi.json",
			"swagger":     "GET /swagger/index.html",
			"health":      "GET /health",
		},
		Websockets: servers.ApiInfoWebsockets{
			Path:   "",
			Events: []string{},
		},
	}

	if realtimeEnabled {
		info.Message += " + WebSockets"
		info.Websockets.Path = "/ws"
		info.Websockets.Events = wire.Events()
	}
	return info
}
