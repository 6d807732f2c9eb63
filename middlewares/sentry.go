package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/crm-backend/utils"
)

// SentryMiddleware gives each request its own hub, wraps the request in a
// transaction and reports every error handlers attached with c.Error. Panics
// are reported and then re-raised for gin.Recovery to answer.
func SentryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sentry.CurrentHub().Client() == nil {
			c.Next()
			return
		}

		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)
		hub.Scope().SetContext("Request", map[string]interface{}{
			"Method":  c.Request.Method,
			"URL":     c.Request.URL.String(),
			"Headers": safeHeaders(c.Request.Header),
		})
		hub.Scope().SetTag("http.method", c.Request.Method)
		hub.Scope().SetTag("http.route", c.FullPath())

		ctx := sentry.SetHubOnContext(c.Request.Context(), hub)
		transaction := sentry.StartTransaction(
			ctx,
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			sentry.ContinueFromRequest(c.Request),
		)
		defer func() {
			transaction.Status = sentry.HTTPtoSpanStatus(c.Writer.Status())
			transaction.Finish()
		}()
		defer func() {
			if err := recover(); err != nil {
				hub.RecoverWithContext(
					context.WithValue(transaction.Context(), sentry.RequestContextKey, c.Request),
					err,
				)
				panic(err)
			}
		}()

		c.Request = c.Request.WithContext(transaction.Context())
		c.Next()

		for _, ginErr := range c.Errors {
			utils.CaptureError(hub, ginErr.Err, map[string]interface{}{
				"endpoint":   c.Request.URL.Path,
				"method":     c.Request.Method,
				"status":     c.Writer.Status(),
				"request_id": c.GetString(RequestIDKey),
			})
		}
	}
}

func safeHeaders(h http.Header) map[string]interface{} {
	safe := make(map[string]interface{})
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
		} else {
			safe[k] = v
		}
	}
	return safe
}
