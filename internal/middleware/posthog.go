package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/cashflow_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful authenticated API calls as product analytics events.
// The event name is derived from the route, e.g. "/api/v1/dashboard/summary" -> "api_v1_dashboard_summary".
func PosthogMiddleware(tracker *utils.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracker.Enabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		eventName := EventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		tracker.Capture(userID, eventName, props)
	}
}

// EventNameForRoute turns a route pattern into an analytics event name.
func EventNameForRoute(fullPath string) string {
	name := strings.Trim(fullPath, "/")
	name = strings.ReplaceAll(name, "/:", "_by_")
	return strings.ReplaceAll(name, "/", "_")
}
