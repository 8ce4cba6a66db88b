package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORS allows the dashboard frontends in origins to read the API. The API
// is read-mostly, so only GET, POST (alert actions) and preflight are allowed.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	})
}

// AllowedOrigins parses a comma-separated FRONTEND_URL. Local dev servers
// are added in the development environment.
func AllowedOrigins(frontendURLs, environment string) []string {
	seen := make(map[string]struct{})
	var origins []string
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			return
		}
		if _, ok := seen[o]; ok {
			return
		}
		seen[o] = struct{}{}
		origins = append(origins, o)
	}

	for _, o := range strings.Split(frontendURLs, ",") {
		add(o)
	}
	if environment == "development" {
		for _, o := range devOrigins {
			add(o)
		}
	}
	return origins
}
