package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID to and from clients
	TraceIDHeader = "X-Trace-ID"

	// TraceIDContextKey is where the trace ID lives in the Echo context
	// for error responses and log lines
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID. An incoming X-Trace-ID
// is honored so a caller's trace survives the hop; otherwise a fresh
// UUID is generated. The ID is stored on the context and echoed back
// in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or the empty string when
// the request never passed through RequestID.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
