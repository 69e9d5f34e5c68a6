package middlewares

import "net/http"

type Middleware func(http.Handler) http.Handler

// MiddlewaresExcludePaths applies a middleware to every request except those
// whose path matches one of the excluded paths exactly.
func MiddlewaresExcludePaths(middleware Middleware, excludedPaths ...string) Middleware {
	excluded := make(map[string]bool, len(excludedPaths))
	for _, p := range excludedPaths {
		excluded[p] = true
	}

	return func(next http.Handler) http.Handler {
		wrapped := middleware(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if excluded[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}
