package finance

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	financedomain "github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/financeclient"
	"github.com/vfg2006/payout-insights-api/infrastructure/mockdata"
	"github.com/vfg2006/payout-insights-api/internal/config"
	"github.com/vfg2006/payout-insights-api/internal/domain"
)

const SourceName = "api"

type FinanceIntegrator interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetFinancialData(ctx context.Context, filters domain.FinancialFilters) (*domain.FinancialData, error)
	GetRemoteInsights(ctx context.Context, dateRange domain.DateRange) ([]domain.Insight, error)
}

type FinanceService struct {
	cfg      *config.Config
	Client   financeclient.Client
	fallback *mockdata.Source
}

// New cria o integrador. fallback pode ser nil; nesse caso falhas da API são sempre propagadas.
func New(cfg *config.Config, client financeclient.Client, fallback *mockdata.Source) FinanceIntegrator {
	return &FinanceService{
		cfg:      cfg,
		Client:   client,
		fallback: fallback,
	}
}

func (s *FinanceService) useFallback() bool {
	return s.cfg.FinanceAPI.UseMockFallback && s.fallback != nil
}

func (s *FinanceService) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	dtos, err := s.Client.GetChannels(ctx)
	if err != nil {
		if !s.useFallback() {
			return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
		}

		logrus.WithError(err).Warn("API financeira indisponível, usando canais simulados")
		return s.fallback.ListChannels(ctx)
	}

	channels := make([]domain.Channel, 0, len(dtos))
	for _, dto := range dtos {
		channels = append(channels, MapChannel(dto))
	}

	return channels, nil
}

// GetFinancialData busca receitas recebidas, esperadas e despesas em paralelo
func (s *FinanceService) GetFinancialData(ctx context.Context, filters domain.FinancialFilters) (*domain.FinancialData, error) {
	params := financedomain.FinancialQueryParams{
		StartDate:  filters.StartDate,
		EndDate:    filters.EndDate,
		ChannelIDs: filters.ChannelIDs,
	}

	var (
		wg                        sync.WaitGroup
		received, expected, spent []financedomain.FinancialRecordDto
		errReceived, errExpected  error
		errExpenses               error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		received, errReceived = s.Client.GetReceivedIncome(ctx, params)
	}()
	go func() {
		defer wg.Done()
		expected, errExpected = s.Client.GetExpectedIncome(ctx, params)
	}()
	go func() {
		defer wg.Done()
		spent, errExpenses = s.Client.GetExpenses(ctx, params)
	}()
	wg.Wait()

	for _, err := range []error{errReceived, errExpected, errExpenses} {
		if err != nil {
			return s.fallbackData(ctx, filters, err)
		}
	}

	data := &domain.FinancialData{
		Payouts:  make([]domain.Payout, 0, len(received)+len(expected)),
		Expenses: make([]domain.Expense, 0, len(spent)),
		Source:   SourceName,
	}

	if err := appendPayouts(&data.Payouts, received, domain.PayoutStatusReceived); err != nil {
		return s.fallbackData(ctx, filters, err)
	}
	if err := appendPayouts(&data.Payouts, expected, domain.PayoutStatusPending); err != nil {
		return s.fallbackData(ctx, filters, err)
	}

	for _, record := range spent {
		expense, err := MapExpense(record)
		if err != nil {
			return s.fallbackData(ctx, filters, err)
		}
		data.Expenses = append(data.Expenses, expense)
	}

	logrus.WithFields(logrus.Fields{
		"start_date": filters.StartDate,
		"end_date":   filters.EndDate,
		"payouts":    len(data.Payouts),
		"expenses":   len(data.Expenses),
	}).Debug("Dados financeiros carregados da API")

	return data, nil
}

func (s *FinanceService) GetRemoteInsights(ctx context.Context, dateRange domain.DateRange) ([]domain.Insight, error) {
	response, err := s.Client.GetInsights(ctx, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	insights := make([]domain.Insight, 0, len(response.Insights))
	for _, dto := range response.Insights {
		insights = append(insights, MapInsight(dto))
	}

	return insights, nil
}

func (s *FinanceService) fallbackData(ctx context.Context, filters domain.FinancialFilters, cause error) (*domain.FinancialData, error) {
	if !s.useFallback() {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, cause)
	}

	logrus.WithError(cause).WithFields(logrus.Fields{
		"start_date": filters.StartDate,
		"end_date":   filters.EndDate,
	}).Warn("API financeira indisponível, usando dados simulados")

	data, err := s.fallback.GetFinancialData(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar dados simulados: %w", err)
	}
	data.Fallback = true

	return data, nil
}

func appendPayouts(payouts *[]domain.Payout, records []financedomain.FinancialRecordDto, status domain.PayoutStatus) error {
	for _, record := range records {
		payout, err := MapPayout(record, status)
		if err != nil {
			return err
		}
		*payouts = append(*payouts, payout)
	}
	return nil
}
