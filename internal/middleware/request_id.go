package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses. The
	// same value appears in the error envelope, so a client can quote a
	// failed upload back to us.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace ID lives on the Echo context.
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID. A caller-supplied
// X-Trace-ID is kept as-is; otherwise a fresh UUID is minted. The ID is
// stored on the context for the pipeline logs and echoed on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			res.Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored by RequestID, or an empty
// string when the middleware did not run for this request.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
