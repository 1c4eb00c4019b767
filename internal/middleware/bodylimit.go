package middleware

import "net/http"

// BodyLimit caps request body size. The ceiling is generous because chat
// image turns arrive as base64 data URIs inside the JSON body.
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
