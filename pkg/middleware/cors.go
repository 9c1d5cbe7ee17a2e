package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows the dashboard origins configured in CORS_ALLOWED_ORIGINS.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"Idempotency-Key",
			"X-Correlation-ID",
		},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	return c.Handler
}
