package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance"
	"github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/financeclient"
	"github.com/vfg2006/payout-insights-api/infrastructure/mockdata"
	"github.com/vfg2006/payout-insights-api/infrastructure/repository"
	"github.com/vfg2006/payout-insights-api/internal/api"
	"github.com/vfg2006/payout-insights-api/internal/api/handler"
	"github.com/vfg2006/payout-insights-api/internal/config"
	"github.com/vfg2006/payout-insights-api/internal/scheduler"
	"github.com/vfg2006/payout-insights-api/internal/usecases/analytics"
	"github.com/vfg2006/payout-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/payout-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/payout-insights-api/pkg/log"
	"github.com/vfg2006/payout-insights-api/pkg/metrics"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector := metrics.NewCollector()

	mockSource := mockdata.NewSource(mockdata.NewGenerator(mockdata.Options{
		Seed:             cfg.MockData.Seed,
		PayoutsPerMonth:  cfg.MockData.PayoutsPerMonth,
		ExpensesPerMonth: cfg.MockData.ExpensesPerMonth,
	}))

	var (
		source         insighting.FinancialSource
		remoteInsights insighting.RemoteInsightProvider
	)

	switch cfg.App.DataSource {
	case config.DataSourceAPI:
		financeIntegrator := finance.New(cfg, financeclient.NewClient(cfg), mockSource)
		source = financeIntegrator
		remoteInsights = financeIntegrator
	case config.DataSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		source = repository.NewFinancialRepository(pgConn)
	default:
		source = mockSource
	}

	logrus.WithField("source", cfg.App.DataSource).Info("Fonte de dados financeiros configurada")

	engine := analytics.NewEngine(analytics.WithDefaultProbability(cfg.Analytics.DefaultProbability))

	insightService := insighting.NewService(source, engine).
		WithCache(cfg.Analytics.CacheTTL).
		WithMetrics(collector)

	rankingService := ranking.NewPlatformRankingService(insightService, engine)

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(insightService, collector, cfg)
	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de snapshot")
	} else {
		logrus.Info("Agendador de atualização de snapshot iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		rankingService,
		remoteInsights,
		collector,
		handler.CronJobServices{SnapshotRefreshService: snapshotRefreshService},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// changeToSourceDir garante que o .env ao lado do binário seja encontrado em go run
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do main")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
