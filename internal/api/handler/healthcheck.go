package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/pkg/metrics"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// MetricsHandler expõe as métricas do coletor; sem coletor responde 404
func MetricsHandler(collector *metrics.Collector) http.Handler {
	if collector == nil {
		return http.NotFoundHandler()
	}
	return collector.Handler()
}
