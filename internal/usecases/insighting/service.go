package insighting

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/internal/usecases/analytics"
	"github.com/vfg2006/payout-insights-api/pkg/log"
	"github.com/vfg2006/payout-insights-api/pkg/metrics"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

const unknownSource = "unknown"

type cachedSnapshot struct {
	filters   domain.FinancialFilters
	data      *domain.FinancialData
	fetchedAt time.Time
}

// Service implementa Insighter sobre uma FinancialSource e o motor de análise
type Service struct {
	source  FinancialSource
	engine  *analytics.Engine
	metrics *metrics.Collector
	now     func() time.Time

	useCache   bool
	cacheTTL   time.Duration
	cacheMutex sync.RWMutex
	cache      map[string]cachedSnapshot
}

// NewService cria uma nova instância do serviço de insights
func NewService(source FinancialSource, engine *analytics.Engine) *Service {
	return &Service{
		source: source,
		engine: engine,
		now:    time.Now,
		cache:  make(map[string]cachedSnapshot),
	}
}

// WithCache mantém em memória cada janela buscada por ttl. ttl <= 0 desabilita o cache.
func (s *Service) WithCache(ttl time.Duration) *Service {
	s.cacheTTL = ttl
	s.useCache = ttl > 0
	return s
}

func (s *Service) WithMetrics(collector *metrics.Collector) *Service {
	s.metrics = collector
	return s
}

// WithClock troca a fonte de "agora", usada pelos presets e pela expiração do cache
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetKPIs(ctx context.Context, query domain.InsightQuery) (*domain.KPIData, error) {
	data, err := s.Snapshot(ctx, query.DateRange, query.ChannelIDs)
	if err != nil {
		return nil, err
	}

	kpis := s.engine.CalculateKPIData(data.Payouts, data.Expenses, query.DateRange, query.Platforms)
	return &kpis, nil
}

func (s *Service) GetChart(ctx context.Context, query domain.InsightQuery) ([]domain.ChartDataPoint, error) {
	interval, err := resolveInterval(query.Interval)
	if err != nil {
		return nil, err
	}

	data, err := s.Snapshot(ctx, query.DateRange, query.ChannelIDs)
	if err != nil {
		return nil, err
	}

	return s.engine.GenerateChartData(data.Payouts, data.Expenses, query.DateRange, query.Platforms, interval), nil
}

// GetInsights gera os seis insights do período. O filtro de plataformas não se aplica;
// categorias e insights dispensados são removidos depois da seleção.
func (s *Service) GetInsights(ctx context.Context, query domain.InsightQuery) (*domain.InsightsResult, error) {
	data, err := s.Snapshot(ctx, query.DateRange, query.ChannelIDs)
	if err != nil {
		return nil, err
	}

	insights := s.generateInsights(ctx, data, query)

	return &domain.InsightsResult{
		Insights: insights,
		Source:   data.Source,
		Fallback: data.Fallback,
	}, nil
}

func (s *Service) GetDashboard(ctx context.Context, query domain.InsightQuery) (*domain.Dashboard, error) {
	interval, err := resolveInterval(query.Interval)
	if err != nil {
		return nil, err
	}

	data, err := s.Snapshot(ctx, query.DateRange, query.ChannelIDs)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Period:   query.DateRange,
		KPIs:     s.engine.CalculateKPIData(data.Payouts, data.Expenses, query.DateRange, query.Platforms),
		Chart:    s.engine.GenerateChartData(data.Payouts, data.Expenses, query.DateRange, query.Platforms, interval),
		Insights: s.generateInsights(ctx, data, query),
		Source:   data.Source,
		Fallback: data.Fallback,
	}, nil
}

func (s *Service) GetDayTransactions(ctx context.Context, date time.Time, platforms []domain.Platform) (*domain.DayTransactions, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	day := domain.DateRange{StartDate: startOfDay, EndDate: utils.EndOfDay(startOfDay)}

	data, err := s.fetch(ctx, domain.FinancialFilters{StartDate: day.StartDate, EndDate: day.EndDate})
	if err != nil {
		return nil, err
	}

	payouts := analytics.FilterByPlatform(analytics.FilterByDateRange(data.Payouts, day), platforms)
	expenses := analytics.FilterByPlatform(analytics.FilterByDateRange(data.Expenses, day), platforms)

	result := &domain.DayTransactions{
		Date:            utils.DayKey(startOfDay),
		ReceivedPayouts: make([]domain.Payout, 0),
		ExpectedPayouts: make([]domain.Payout, 0),
		Expenses:        expenses,
		TotalExpenses:   analytics.CalculateExpenses(expenses),
	}

	for _, payout := range payouts {
		switch {
		case payout.Status == domain.PayoutStatusReceived:
			result.ReceivedPayouts = append(result.ReceivedPayouts, payout)
			result.TotalReceived += payout.NetAmount
		case payout.Status.IsExpected():
			result.ExpectedPayouts = append(result.ExpectedPayouts, payout)
			result.TotalExpected += payout.NetAmount
		}
	}

	return result, nil
}

// ListChannels devolve apenas os canais de plataformas suportadas
func (s *Service) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	channels, err := s.source.ListChannels(ctx)
	if err != nil {
		return nil, err
	}

	supported := make([]domain.Channel, 0, len(channels))
	for _, channel := range channels {
		platform, ok := domain.ParsePlatform(channel.Name)
		if !ok {
			continue
		}
		channel.Platform = platform
		supported = append(supported, channel)
	}

	return supported, nil
}

// RefreshSnapshot busca de novo todas as janelas em cache. Sem cache, carrega a janela do preset padrão.
func (s *Service) RefreshSnapshot(ctx context.Context) error {
	s.cacheMutex.RLock()
	targets := make([]domain.FinancialFilters, 0, len(s.cache))
	for _, entry := range s.cache {
		targets = append(targets, entry.filters)
	}
	s.cacheMutex.RUnlock()

	if len(targets) == 0 {
		dateRange, err := domain.RangeFromPreset(domain.DefaultDatePreset, s.now())
		if err != nil {
			return err
		}
		targets = append(targets, snapshotFilters(dateRange, nil))
	}

	for _, filters := range targets {
		data, err := s.source.GetFinancialData(ctx, filters)
		if err != nil {
			s.metrics.SourceFetch(unknownSource, metrics.OutcomeError)
			return fmt.Errorf("erro ao atualizar snapshot: %w", err)
		}
		s.recordFetch(data)
		s.store(filters, data)
	}

	log.ForContext(ctx).WithField("windows", len(targets)).Info("Snapshot financeiro atualizado")
	return nil
}

// Snapshot devolve os dados do período e do período anterior numa única janela [início anterior, fim]
func (s *Service) Snapshot(ctx context.Context, dateRange domain.DateRange, channelIDs []int) (*domain.FinancialData, error) {
	if err := dateRange.Validate(); err != nil {
		return nil, err
	}

	return s.fetch(ctx, snapshotFilters(dateRange, channelIDs))
}

func (s *Service) fetch(ctx context.Context, filters domain.FinancialFilters) (*domain.FinancialData, error) {
	if data, ok := s.cached(filters); ok {
		return data, nil
	}

	data, err := s.source.GetFinancialData(ctx, filters)
	if err != nil {
		s.metrics.SourceFetch(unknownSource, metrics.OutcomeError)
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"start_date": filters.StartDate,
			"end_date":   filters.EndDate,
		}).Error("Erro ao buscar dados financeiros")
		return nil, err
	}

	s.recordFetch(data)
	if data.Fallback {
		log.ForContext(ctx).WithFields(log.Fields{
			"source":   data.Source,
			"fallback": data.Fallback,
		}).Warn("Dados financeiros servidos pelo fallback")
	}

	s.store(filters, data)
	return data, nil
}

func (s *Service) cached(filters domain.FinancialFilters) (*domain.FinancialData, bool) {
	if !s.useCache {
		return nil, false
	}

	s.cacheMutex.RLock()
	defer s.cacheMutex.RUnlock()

	entry, ok := s.cache[cacheKey(filters)]
	if !ok || s.now().Sub(entry.fetchedAt) > s.cacheTTL {
		return nil, false
	}

	return entry.data, true
}

func (s *Service) store(filters domain.FinancialFilters, data *domain.FinancialData) {
	if !s.useCache {
		return
	}

	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	now := s.now()
	for key, entry := range s.cache {
		if now.Sub(entry.fetchedAt) > s.cacheTTL {
			delete(s.cache, key)
		}
	}

	s.cache[cacheKey(filters)] = cachedSnapshot{filters: filters, data: data, fetchedAt: now}
}

func (s *Service) recordFetch(data *domain.FinancialData) {
	outcome := metrics.OutcomeOK
	if data.Fallback {
		outcome = metrics.OutcomeFallback
	}
	s.metrics.SourceFetch(data.Source, outcome)
}

func (s *Service) generateInsights(ctx context.Context, data *domain.FinancialData, query domain.InsightQuery) []domain.Insight {
	kpis := s.engine.CalculateKPIData(data.Payouts, data.Expenses, query.DateRange, nil)
	insights := s.engine.GenerateInsights(data.Payouts, data.Expenses, query.DateRange, kpis)

	for _, insight := range insights {
		s.metrics.InsightGenerated(string(insight.Category), analytics.IsPlaceholder(insight))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"start_date": utils.DayKey(query.DateRange.StartDate),
		"end_date":   utils.DayKey(query.DateRange.EndDate),
		"source":     data.Source,
	}).Debug("Insights gerados")

	return filterInsights(insights, query.Categories, query.Dismissed)
}

func filterInsights(insights []domain.Insight, categories []domain.InsightCategory, dismissed []string) []domain.Insight {
	if len(categories) == 0 && len(dismissed) == 0 {
		return insights
	}

	allowed := make(map[domain.InsightCategory]struct{}, len(categories))
	for _, category := range categories {
		allowed[category] = struct{}{}
	}

	hidden := make(map[string]struct{}, len(dismissed))
	for _, id := range dismissed {
		hidden[id] = struct{}{}
	}

	filtered := make([]domain.Insight, 0, len(insights))
	for _, insight := range insights {
		if len(allowed) > 0 {
			if _, ok := allowed[insight.Category]; !ok {
				continue
			}
		}
		if _, ok := hidden[insight.ID]; ok {
			continue
		}
		filtered = append(filtered, insight)
	}

	return filtered
}

func resolveInterval(interval domain.ChartInterval) (domain.ChartInterval, error) {
	if interval == "" {
		return domain.ChartIntervalDaily, nil
	}
	if !interval.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedInterval, interval)
	}
	return interval, nil
}

func snapshotFilters(dateRange domain.DateRange, channelIDs []int) domain.FinancialFilters {
	previousPeriod := analytics.GetPreviousPeriod(dateRange)

	return domain.FinancialFilters{
		StartDate:  previousPeriod.StartDate,
		EndDate:    dateRange.EndDate,
		ChannelIDs: channelIDs,
	}
}

func cacheKey(filters domain.FinancialFilters) string {
	channels := make([]int, len(filters.ChannelIDs))
	copy(channels, filters.ChannelIDs)
	sort.Ints(channels)

	parts := make([]string, 0, len(channels))
	for _, id := range channels {
		parts = append(parts, strconv.Itoa(id))
	}

	return fmt.Sprintf("%d|%d|%s", filters.StartDate.UnixNano(), filters.EndDate.UnixNano(), strings.Join(parts, ","))
}

var _ Insighter = (*Service)(nil)
