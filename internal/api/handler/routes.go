package handler

import (
	"net/http"

	"github.com/vfg2006/payout-insights-api/internal/api/handler/router"
	"github.com/vfg2006/payout-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/payout-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/payout-insights-api/pkg/metrics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(collector *metrics.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(collector),
		},
	}
}

func Channels(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/channels",
			Method:  http.MethodGet,
			Handler: ListChannels(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/chart",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/transactions/:date",
			Method:  http.MethodGet,
			Handler: GetDayTransactions(service),
		},
	}
}

// RemoteInsights só é registrada quando a fonte de dados é a API financeira
func RemoteInsights(provider insighting.RemoteInsightProvider) []router.Route {
	if provider == nil {
		return nil
	}

	return []router.Route{
		{
			Path:    "/v1/insights/remote",
			Method:  http.MethodGet,
			Handler: GetRemoteInsights(provider),
		},
	}
}

func PlatformRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/platforms/ranking",
			Method:  http.MethodGet,
			Handler: GetPlatformRanking(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
