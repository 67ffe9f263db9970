package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/internal/api/handler"
	"github.com/vfg2006/payout-insights-api/internal/api/handler/router"
	"github.com/vfg2006/payout-insights-api/internal/config"
	"github.com/vfg2006/payout-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/payout-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/payout-insights-api/pkg/apiErrors"
	"github.com/vfg2006/payout-insights-api/pkg/metrics"
	"github.com/vfg2006/payout-insights-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	insightService insighting.Insighter,
	rankingService ranking.RankingService,
	remoteInsights insighting.RemoteInsightProvider,
	collector *metrics.Collector,
	cronServices handler.CronJobServices,
) (*Server, error) {
	rt := NewRouter(insightService, rankingService, remoteInsights, collector, cronServices)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewRouter monta as rotas da API com a métrica por rota aplicada a todas elas
func NewRouter(
	insightService insighting.Insighter,
	rankingService ranking.RankingService,
	remoteInsights insighting.RemoteInsightProvider,
	collector *metrics.Collector,
	cronServices handler.CronJobServices,
) *router.Router {
	return router.New(
		router.WithRouteMiddleware(middleware.Metrics(collector)),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(collector)...),
		router.WithRoutes(handler.Channels(insightService)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.RemoteInsights(remoteInsights)...),
		router.WithRoutes(handler.PlatformRanking(rankingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
		})),
	)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
