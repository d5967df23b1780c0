package http

import (
	"context"
	"log/slog"
	"net/http"

	"pos/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterOptions selects the optional surfaces of the router.
type RouterOptions struct {
	// Socket serves GET /ws when not nil.
	Socket *SocketHandler
	// Document is served at /api/openapi.json and /swagger/* when not nil.
	Document *openapi3.T
}

// NewRouter builds the echo instance with middleware, the API routes and
// the operational endpoints.
func NewRouter(server *Server, opts RouterOptions, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlers(e, server)

	if opts.Document != nil {
		doc := opts.Document
		e.GET("/api/openapi.json", func(c echo.Context) error {
			return c.JSON(http.StatusOK, doc)
		})
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	if opts.Socket != nil {
		e.GET("/ws", opts.Socket.Handle)
	}

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	accessLog := logger.With("component", "http_access")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			accessLog.LogAttrs(context.Background(), level, "Request", attrs...)
			return nil
		},
	})
}
