package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	financedomain "github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/mocks"
	"github.com/vfg2006/payout-insights-api/infrastructure/mockdata"
	"github.com/vfg2006/payout-insights-api/internal/config"
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, useFallback bool) (FinanceIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{FinanceAPI: config.FinanceAPI{UseMockFallback: useFallback}}
	fallback := mockdata.NewSource(mockdata.NewGenerator(mockdata.Options{
		Seed:             1,
		PayoutsPerMonth:  40,
		ExpensesPerMonth: 20,
		Now:              func() time.Time { return time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC) },
	}))

	return New(cfg, client, fallback), client
}

func octoberFilters() domain.FinancialFilters {
	return domain.FinancialFilters{
		StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestFinanceService_GetFinancialData(t *testing.T) {
	ctx := context.Background()

	t.Run("Mapeia as três chamadas da API", func(t *testing.T) {
		service, client := newTestService(t, true)

		client.EXPECT().GetReceivedIncome(gomock.Any(), gomock.Any()).Return([]financedomain.FinancialRecordDto{
			{Date: "2025-10-02T00:00:00", Value: 500, ChannelID: 2, ChannelName: stringPtr("Shopify")},
		}, nil)
		client.EXPECT().GetExpectedIncome(gomock.Any(), gomock.Any()).Return([]financedomain.FinancialRecordDto{
			{Date: "2025-10-20T00:00:00", Value: 300, ChannelID: 1, ChannelName: stringPtr("Amazon")},
		}, nil)
		client.EXPECT().GetExpenses(gomock.Any(), gomock.Any()).Return([]financedomain.FinancialRecordDto{
			{Date: "2025-10-05T00:00:00", Value: -40, ChannelID: 2, ChannelName: stringPtr("Shopify")},
		}, nil)

		data, err := service.GetFinancialData(ctx, octoberFilters())
		require.NoError(t, err)

		assert.Equal(t, SourceName, data.Source)
		assert.False(t, data.Fallback)
		require.Len(t, data.Payouts, 2)
		assert.Equal(t, domain.PayoutStatusReceived, data.Payouts[0].Status)
		assert.Equal(t, domain.PayoutStatusPending, data.Payouts[1].Status)
		require.Len(t, data.Expenses, 1)
		assert.Equal(t, 40.0, data.Expenses[0].Amount)
	})

	t.Run("Falha da API usa dados simulados quando habilitado", func(t *testing.T) {
		service, client := newTestService(t, true)

		client.EXPECT().GetReceivedIncome(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
		client.EXPECT().GetExpectedIncome(gomock.Any(), gomock.Any()).Return(nil, nil)
		client.EXPECT().GetExpenses(gomock.Any(), gomock.Any()).Return(nil, nil)

		data, err := service.GetFinancialData(ctx, octoberFilters())
		require.NoError(t, err)

		assert.True(t, data.Fallback)
		assert.Equal(t, mockdata.SourceName, data.Source)
		assert.NotEmpty(t, data.Payouts)
		for _, payout := range data.Payouts {
			assert.Equal(t, time.October, payout.Date.Month())
		}
	})

	t.Run("Falha da API sem fallback retorna fonte indisponível", func(t *testing.T) {
		service, client := newTestService(t, false)

		client.EXPECT().GetReceivedIncome(gomock.Any(), gomock.Any()).Return(nil, nil)
		client.EXPECT().GetExpectedIncome(gomock.Any(), gomock.Any()).Return(nil, errors.New("502"))
		client.EXPECT().GetExpenses(gomock.Any(), gomock.Any()).Return(nil, nil)

		data, err := service.GetFinancialData(ctx, octoberFilters())
		assert.Nil(t, data)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("Registro com data inválida aciona o fallback", func(t *testing.T) {
		service, client := newTestService(t, true)

		client.EXPECT().GetReceivedIncome(gomock.Any(), gomock.Any()).Return([]financedomain.FinancialRecordDto{
			{Date: "ontem", Value: 1, ChannelID: 2},
		}, nil)
		client.EXPECT().GetExpectedIncome(gomock.Any(), gomock.Any()).Return(nil, nil)
		client.EXPECT().GetExpenses(gomock.Any(), gomock.Any()).Return(nil, nil)

		data, err := service.GetFinancialData(ctx, octoberFilters())
		require.NoError(t, err)
		assert.True(t, data.Fallback)
	})
}

func TestFinanceService_ListChannels(t *testing.T) {
	ctx := context.Background()

	t.Run("Canais da API", func(t *testing.T) {
		service, client := newTestService(t, true)
		client.EXPECT().GetChannels(gomock.Any()).Return([]financedomain.ChannelDto{
			{ID: 10, Name: stringPtr("Etsy")},
		}, nil)

		channels, err := service.ListChannels(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Channel{{ID: 10, Name: "Etsy", Platform: domain.PlatformEtsy}}, channels)
	})

	t.Run("Canais simulados quando a API falha", func(t *testing.T) {
		service, client := newTestService(t, true)
		client.EXPECT().GetChannels(gomock.Any()).Return(nil, errors.New("connection refused"))

		channels, err := service.ListChannels(ctx)
		require.NoError(t, err)
		assert.Equal(t, mockdata.Channels, channels)
	})

	t.Run("Sem fallback o erro é propagado", func(t *testing.T) {
		service, client := newTestService(t, false)
		client.EXPECT().GetChannels(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := service.ListChannels(ctx)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})
}

func TestFinanceService_GetRemoteInsights(t *testing.T) {
	service, client := newTestService(t, true)
	dateRange := domain.DateRange{StartDate: octoberFilters().StartDate, EndDate: octoberFilters().EndDate}

	client.EXPECT().GetInsights(gomock.Any(), dateRange.StartDate, dateRange.EndDate).Return(financedomain.InsightResponseDto{
		Insights: []financedomain.InsightDto{{ID: stringPtr("a"), Category: stringPtr("trend")}},
	}, nil)

	insights, err := service.GetRemoteInsights(context.Background(), dateRange)
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, domain.InsightCategoryTrendMomentum, insights[0].Category)
}
