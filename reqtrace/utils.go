package reqtrace

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ResolveIP returns the caller address: the first x-forwarded-for entry,
// else the host part of the transport remote address.
func ResolveIP(r *http.Request) (string, bool) {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip, true
		}
	}
	if r.RemoteAddr == "" {
		return "", false
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host, host != ""
	}
	return r.RemoteAddr, true
}

// requestID returns the caller-supplied X-Request-ID when it is a UUID, or a
// fresh one.
func requestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get("X-Request-ID")); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func spanName(r *http.Request) string {
	return r.Method + " " + r.URL.Path
}

func spanAttributes(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"server.address":      r.Host,
		"http.request.method": r.Method,
		"url.path":            r.URL.Path,
		"url.full":            requestURL(r),
	}
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
