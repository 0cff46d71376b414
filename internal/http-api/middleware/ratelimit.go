package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"gamecomment/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit gates a route class behind a fixed-window quota. The window key
// combines the client address with a logical resource: `page-<pageId>` when
// the request names a game (body on POST, query otherwise), `global` when it
// does not. Rejected requests get a 429 with the route's message and are
// never queued or delayed.
func RateLimit(limiter *ratelimit.Limiter, max int, message string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := resourceIdentifier(c)
		key := c.ClientIP() + "-" + identifier

		allowed, err := limiter.Allow(c.Request.Context(), key, max)
		if err != nil {
			// A broken counter store must not take the API down; admit the
			// request and leave a trace.
			logger.Error("rate limiter store failure", "key", identifier, "path", c.FullPath(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			logger.Warn("rate limit exceeded",
				"ip", c.ClientIP(),
				"key", identifier,
				"path", c.FullPath(),
			)
			c.JSON(http.StatusTooManyRequests, gin.H{"message": message})
			c.Abort()
			return
		}

		c.Next()
	}
}

// resourceIdentifier derives the logical key. POST bodies are sniffed for a
// pageId and then restored so binding in the handler still works.
func resourceIdentifier(c *gin.Context) string {
	var pageID string

	if c.Request.Method == http.MethodPost && c.Request.Body != nil {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			var probe struct {
				PageID string `json:"pageId"`
			}
			if json.Unmarshal(bodyBytes, &probe) == nil {
				pageID = probe.PageID
			}
		}
	} else {
		pageID = c.Query("pageId")
	}

	if pageID == "" {
		return "global"
	}
	return "page-" + pageID
}
