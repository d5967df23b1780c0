package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pos/internal/generated/servers"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func badRequest(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusBadRequest, servers.ErrorResponse{Success: false, Message: msg})
}

func notFound(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusNotFound, servers.ErrorResponse{Success: false, Message: msg})
}

// fail maps a use case error to its response. Causes of internal errors
// are logged and never sent to the client.
func (s *Server) fail(ctx echo.Context, err error, internalMsg string) error {
	switch {
	case errs.IsValidation(err):
		return badRequest(ctx, errorMessage(err))
	case errs.IsNotFound(err):
		return notFound(ctx, errorMessage(err))
	default:
		s.logger.ErrorContext(ctx.Request().Context(), internalMsg, "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.ErrorResponse{Success: false, Message: internalMsg})
	}
}

// failOrder is fail for operations addressed by order id.
func (s *Server) failOrder(ctx echo.Context, id int, err error, internalMsg string) error {
	if errs.IsNotFound(err) {
		return notFound(ctx, fmt.Sprintf("Order #%d not found", id))
	}
	return s.fail(ctx, err, internalMsg)
}

// errorMessage renders domain errors in the same "field is required" form
// as request validation, one clause per problem.
func errorMessage(err error) string {
	return strings.Join(describe(err), "; ")
}

func describe(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, describe(e)...)
		}
		return out
	}

	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		return []string{required.ParamName + " is required"}
	}
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		if invalid.Cause == nil {
			return []string{invalid.ParamName + " is invalid"}
		}
		return []string{fmt.Sprintf("%s is invalid: %s", invalid.ParamName, oneLine(invalid.Cause.Error()))}
	}
	return []string{oneLine(err.Error())}
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", "; ")
}

// Path parameters that fail to bind are reported by the generated wrapper
// with the parser error attached.
const paramBindingPrefix = "Invalid format for parameter "

// publicMessage is the client facing text of a framework error.
func publicMessage(he *echo.HTTPError) string {
	msg := fmt.Sprint(he.Message)
	if he.Code != http.StatusBadRequest || !strings.HasPrefix(msg, paramBindingPrefix) {
		return msg
	}
	name, _, _ := strings.Cut(strings.TrimPrefix(msg, paramBindingPrefix), ":")
	if name == "id" {
		return "Invalid order id"
	}
	return "Invalid " + name
}

// NewHTTPErrorHandler renders framework errors with the response envelope.
// Unknown routes and known routes with the wrong method are both 404.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code != http.StatusInternalServerError {
			switch he.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				code, msg = http.StatusNotFound, "Route not found"
			default:
				code, msg = he.Code, publicMessage(he)
			}
		}

		if code == http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled request error",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.ErrorResponse{Success: false, Message: msg})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
