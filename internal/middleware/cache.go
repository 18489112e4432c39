package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/backend/internal/cache"
	"yatube/backend/internal/metrics"
)

type cachedPage struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCache serves GET responses from store for ttl. Only 200 responses are kept.
// A nil store disables caching. Cache errors are logged and the request is served normally.
func PageCache(store cache.Cache, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || ttl <= 0 || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := "page:" + c.Request.URL.RequestURI()

		raw, ok, err := store.Get(ctx, key)
		if err != nil {
			logger.Warn("page cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			var page cachedPage
			if err := json.Unmarshal(raw, &page); err == nil {
				countLookup(m, "hit")
				c.Data(http.StatusOK, page.ContentType, page.Body)
				c.Abort()
				return
			}
		}
		countLookup(m, "miss")

		w := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() != http.StatusOK {
			return
		}
		raw, err = json.Marshal(cachedPage{ContentType: w.Header().Get("Content-Type"), Body: w.body.Bytes()})
		if err != nil {
			return
		}
		if err := store.Set(ctx, key, raw, ttl); err != nil {
			logger.Warn("page cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func countLookup(m *metrics.Metrics, result string) {
	if m != nil {
		m.CacheLookupsTotal.WithLabelValues(result).Inc()
	}
}
