package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/session"
	"github.com/amaumene/cinetro/pkg/logger"
)

const sessionKey = "cinetro.session"

type gzipResponseWriter struct {
	gin.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) WriteString(s string) (int, error) {
	return w.gzipWriter.Write([]byte(s))
}

func Gzip() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")

		gzipWriter := gzip.NewWriter(c.Writer)
		defer gzipWriter.Close()

		c.Writer = &gzipResponseWriter{
			ResponseWriter: c.Writer,
			gzipWriter:     gzipWriter,
		}

		c.Next()
	}
}

// NoStore marks responses as uncacheable. Session state changes on every call.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

// Session attaches the visitor's session to the request, issuing a new cookie when the
// visitor has none or theirs expired.
func Session(store *session.Store, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(constants.SessionCookieName)
		s, created := store.Ensure(id)
		if created {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     constants.SessionCookieName,
				Value:    s.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure || isHTTPS(c.Request),
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// isHTTPS reports whether the visitor reached us over TLS, directly or through a proxy.
func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// SessionFrom returns the session attached by Session.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		switch {
		case statusCode >= 500:
			log.Errorf("[HTTP] %s %s %d %v %s", clientIP, method, statusCode, latency, path)
		case statusCode >= 400:
			log.Warnf("[HTTP] %s %s %d %v %s", clientIP, method, statusCode, latency, path)
		default:
			log.Debugf("[HTTP] %s %s %d %v %s", clientIP, method, statusCode, latency, path)
		}
	}
}
