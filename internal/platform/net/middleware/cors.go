package middleware

import (
	"net/http"

	chicors "github.com/go-chi/cors"
)

// CORSOptions configures the CORS middleware
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS wraps go-chi/cors with our defaults; browsers call the query endpoints
// directly from the web app
func CORS(opt CORSOptions) func(http.Handler) http.Handler {
	origins := opt.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	maxAge := opt.MaxAge
	if maxAge == 0 {
		maxAge = 300
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         maxAge,
	})
}
