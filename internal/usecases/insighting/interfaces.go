package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/payout-insights-api/internal/domain"
)

// FinancialSource é qualquer origem de repasses e despesas: API financeira, Postgres ou dados simulados
type FinancialSource interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetFinancialData(ctx context.Context, filters domain.FinancialFilters) (*domain.FinancialData, error)
}

// Insighter expõe KPIs, gráfico e insights de um período
type Insighter interface {
	GetKPIs(ctx context.Context, query domain.InsightQuery) (*domain.KPIData, error)
	GetChart(ctx context.Context, query domain.InsightQuery) ([]domain.ChartDataPoint, error)
	GetInsights(ctx context.Context, query domain.InsightQuery) (*domain.InsightsResult, error)
	GetDashboard(ctx context.Context, query domain.InsightQuery) (*domain.Dashboard, error)

	// GetDayTransactions detalha as movimentações de um único dia
	GetDayTransactions(ctx context.Context, date time.Time, platforms []domain.Platform) (*domain.DayTransactions, error)

	ListChannels(ctx context.Context) ([]domain.Channel, error)

	// RefreshSnapshot recarrega as janelas em cache
	RefreshSnapshot(ctx context.Context) error
}

// RemoteInsightProvider devolve os insights já calculados pela API financeira
type RemoteInsightProvider interface {
	GetRemoteInsights(ctx context.Context, dateRange domain.DateRange) ([]domain.Insight, error)
}
