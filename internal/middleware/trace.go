package middleware

import (
	"context"

	"brewjournal/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const TraceIDHeader = "X-Trace-Id"

// TraceID puts a request-scoped trace id into the context so log lines
// from the service layer can be correlated. An incoming X-Trace-Id is
// honored, otherwise a fresh one is generated.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(TraceIDHeader)
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommend.TraceIDKey, tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceIDHeader, tid)

			return next(c)
		}
	}
}
