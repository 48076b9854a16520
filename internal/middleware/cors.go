package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS wraps the whole router rather than being installed as a mux
// middleware: mux skips middleware when no route matches the method, which
// would leave OPTIONS preflights for PATCH/DELETE routes unanswered.
func CORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})(next)
}
