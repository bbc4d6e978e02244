package httpx

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORSConfig selects which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string // "*" allows any origin
	MaxAge         int      // preflight cache in seconds
}

// CORS answers preflight requests and decorates responses with the
// Access-Control headers for requests whose path starts with prefix.
// Other paths pass through untouched.
func CORS(prefix string, cfg CORSConfig) Middleware {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 300
	}

	handler := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         maxAge,
	})

	return func(next http.Handler) http.Handler {
		withCORS := handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) {
				withCORS.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
