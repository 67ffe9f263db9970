package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors libera as origens configuradas em CORS_ALLOWED_ORIGINS. A API só expõe leitura e o disparo manual do cron.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
		},
		AllowCredentials: true,
		MaxAge:           86400, // Cache do CORS por 24 horas
	})

	return c.Handler
}
