package middleware

import (
	"bytes"
	"net/http"
	"time"

	"travelbook/atlas/internal/logging"
)

const maxLoggedBody = 2048

type respLogger struct {
	http.ResponseWriter
	status int
	buf    *bytes.Buffer
}

func (l *respLogger) WriteHeader(code int) {
	l.status = code
	l.ResponseWriter.WriteHeader(code)
}

func (l *respLogger) Write(b []byte) (int, error) {
	if room := maxLoggedBody - l.buf.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		l.buf.Write(b[:room])
	}
	return l.ResponseWriter.Write(b)
}

// DebugLogging logs request headers and the start of each response body.
// Only mounted outside production.
func DebugLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := make(map[string]string, len(r.Header))
		for name := range r.Header {
			if name == "Authorization" {
				continue
			}
			headers[name] = r.Header.Get(name)
		}
		logging.Debug("→ request", "method", r.Method, "url", r.URL.String(), "headers", headers)

		lw := &respLogger{ResponseWriter: w, status: http.StatusOK, buf: &bytes.Buffer{}}

		start := time.Now()
		next.ServeHTTP(lw, r)

		logging.Debug("← response",
			"status", lw.status,
			"duration", time.Since(start).String(),
			"body", lw.buf.String(),
		)
	})
}
