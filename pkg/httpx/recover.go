package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/memoa/pkg/slogx"
)

// Recover turns a panicking handler into a 500 response and logs the panic
// with its stack on the request logger.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				slogx.FromContext(r.Context()).Error("request panic",
					"panic", p,
					"stack", string(debug.Stack()),
				)
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "server_error",
					"message": "Internal server error.",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
