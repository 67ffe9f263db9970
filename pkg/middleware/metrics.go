package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/payout-insights-api/internal/api/handler/router"
	"github.com/vfg2006/payout-insights-api/pkg/metrics"
)

// Metrics registra contagem e duração por rota, usando o template do caminho como label
func Metrics(collector *metrics.Collector) func(route router.Route) func(http.Handler) http.Handler {
	return func(route router.Route) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				startTime := time.Now()
				lrw := newLoggingResponseWriter(w)

				next.ServeHTTP(lrw, r)

				collector.ObserveRequest(route.Method, route.Path, lrw.statusCode, time.Since(startTime))
			})
		}
	}
}
