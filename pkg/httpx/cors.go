package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// DefaultAllowedOrigins are the local development front-end origins.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:8080",
}

// CORS returns a middleware answering preflight requests and decorating
// responses for the given origins. Credentials are allowed, so origins are
// echoed back rather than wildcarded.
func CORS(origins []string) Middleware {
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3600,
	})
	return c.Handler
}
