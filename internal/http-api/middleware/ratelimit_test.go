package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamecomment/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(max int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	limited := RateLimit(limiter, max, "slow down", logger)
	r.GET("/items", limited, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/items", limited, func(c *gin.Context) {
		var body struct {
			PageID string `json:"pageId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "bad body"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"pageId": body.PageID})
	})
	return r
}

func doGet(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.RemoteAddr = "203.0.113.7:40000"
	r.ServeHTTP(w, req)
	return w
}

func doPost(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.RemoteAddr = "203.0.113.7:40000"
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitRejectsOverQuota(t *testing.T) {
	r := limitedRouter(1)

	first := doGet(r, "/items?pageId=snake")
	assert.Equal(t, http.StatusOK, first.Code)

	second := doGet(r, "/items?pageId=snake")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "slow down")
}

func TestRateLimitKeysAreIndependentPerPage(t *testing.T) {
	r := limitedRouter(1)

	assert.Equal(t, http.StatusOK, doGet(r, "/items?pageId=snake").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/items?pageId=tetris").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "/items?pageId=snake").Code)
}

func TestRateLimitGlobalKeyWithoutPageID(t *testing.T) {
	r := limitedRouter(1)

	assert.Equal(t, http.StatusOK, doGet(r, "/items").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "/items").Code)

	// A named page does not share the global bucket.
	assert.Equal(t, http.StatusOK, doGet(r, "/items?pageId=snake").Code)
}

func TestRateLimitPostBodyIsRestoredForBinding(t *testing.T) {
	r := limitedRouter(5)

	w := doPost(r, `{"pageId":"snake"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "snake")
}

func TestRateLimitPostKeyedByBodyPageID(t *testing.T) {
	r := limitedRouter(1)

	assert.Equal(t, http.StatusCreated, doPost(r, `{"pageId":"snake"}`).Code)
	assert.Equal(t, http.StatusCreated, doPost(r, `{"pageId":"tetris"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, doPost(r, `{"pageId":"snake"}`).Code)
}
